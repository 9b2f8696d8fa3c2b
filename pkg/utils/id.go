package utils

import "github.com/google/uuid"

// NewID returns a fresh opaque identifier for rows and carts.
func NewID() string { return uuid.NewString() }
