package service

import (
	"go.uber.org/zap"

	"quebrada-backend/internal/core/auth"
	"quebrada-backend/internal/core/config"
	"quebrada-backend/internal/domain"
	"quebrada-backend/pkg/utils"
)

// EnsureAdmin creates the bootstrap administrator account, or promotes an
// existing user with that email. Authorization itself runs on the role
// claim; this is only how the first admin comes to exist.
func EnsureAdmin(users domain.UserRepository, b config.Bootstrap, log *zap.Logger) error {
	if b.Email == "" {
		log.Warn("no bootstrap admin configured; back-office will be unreachable until a user is promoted")
		return nil
	}

	u, err := users.FindByEmail(b.Email)
	if err != nil {
		return err
	}
	if u == nil {
		name := b.Name
		if name == "" {
			name = "Admin"
		}
		u = &domain.User{
			ID:           utils.NewID(),
			Email:        b.Email,
			Name:         name,
			PasswordHash: utils.HashPassword(b.Password),
			Role:         auth.RoleAdmin,
		}
		if err := users.Create(u); err != nil {
			return err
		}
		log.Info("bootstrap admin created", zap.String("email", b.Email))
		return nil
	}
	if u.Role != auth.RoleAdmin {
		u.Role = auth.RoleAdmin
		if err := users.Update(u); err != nil {
			return err
		}
		log.Info("existing user promoted to admin", zap.String("email", b.Email))
	}
	return nil
}
