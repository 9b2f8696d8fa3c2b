package service

import (
	"errors"
	"strings"

	"go.uber.org/zap"

	"quebrada-backend/internal/core/auth"
	"quebrada-backend/internal/domain"
	"quebrada-backend/pkg/utils"
)

var (
	ErrEmailTaken = errors.New("email already in use")
	// ErrInvalidCredentials is returned for unknown email AND wrong
	// password alike; callers must not learn which one failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type AccountService struct {
	users domain.UserRepository
	jwter *auth.JWTer
	log   *zap.Logger
}

func NewAccountService(users domain.UserRepository, jwter *auth.JWTer, log *zap.Logger) *AccountService {
	return &AccountService{users: users, jwter: jwter, log: log}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string // defaults to "user"; only the back-office sets it
}

func (s *AccountService) Register(in RegisterInput) (*domain.User, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))

	existing, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	role := in.Role
	if role == "" {
		role = auth.RoleUser
	}
	u := &domain.User{
		ID:           utils.NewID(),
		Email:        email,
		Name:         strings.TrimSpace(in.Name),
		PasswordHash: utils.HashPassword(in.Password),
		Role:         role,
	}
	if err := s.users.Create(u); err != nil {
		if isDupKey(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return u, nil
}

// Login verifies credentials and issues a session token carrying the
// user's id, email and role.
func (s *AccountService) Login(email, password string) (string, *domain.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	u, err := s.users.FindByEmail(email)
	if err != nil {
		return "", nil, err
	}
	if u == nil {
		s.log.Debug("login: unknown email", zap.String("email", email))
		return "", nil, ErrInvalidCredentials
	}
	if !utils.CheckPassword(password, u.PasswordHash) {
		s.log.Debug("login: password mismatch", zap.String("uid", u.ID))
		return "", nil, ErrInvalidCredentials
	}

	tok, err := s.jwter.Issue(u.ID, u.Email, u.Role)
	if err != nil {
		return "", nil, err
	}
	return tok, u, nil
}

// isDupKey matches unique-constraint violations across drivers without
// depending on gorm.ErrDuplicatedKey, which varies by version.
func isDupKey(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation") ||
		strings.Contains(msg, "unique failed")
}
