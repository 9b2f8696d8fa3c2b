package auth

// IsAdmin is the single authorization policy for back-office writes.
// Both the route-level middleware and the per-handler check call it, so
// the two enforcement points cannot drift apart.
func IsAdmin(c *Claims) bool {
	return c != nil && c.Role == RoleAdmin
}
