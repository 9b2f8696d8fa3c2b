package router

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"quebrada-backend/internal/core/auth"
	"quebrada-backend/internal/domain"
	"quebrada-backend/internal/service"
	"quebrada-backend/internal/transport/http/ez"
	"quebrada-backend/pkg/utils"
)

func mountAdminUsers(g *gin.RouterGroup, d AdminDeps) {
	e := ez.New(g, d.Log)

	ez.Register(e, d.DB, ez.Action[struct{}, []domain.User]{
		Method: http.MethodGet, Path: "/users", Binder: ez.BindNone,
		Auth: true, Admin: true,
		Handler: func(c *gin.Context, tx *gorm.DB, _ *struct{}) ([]domain.User, error) {
			users, err := userRepo(tx).List()
			if err != nil {
				return nil, ez.Internal("list users failed", err)
			}
			return users, nil
		},
	})

	type createIn struct {
		Name     string `json:"name"     binding:"required,max=64"`
		Email    string `json:"email"    binding:"required,email"`
		Password string `json:"password" binding:"required,min=1"`
		Role     string `json:"role"     binding:"omitempty,oneof=user admin"`
	}
	ez.Register(e, d.DB, ez.Action[createIn, *domain.User]{
		Method: http.MethodPost, Path: "/users", Binder: ez.BindJSON,
		Auth: true, Admin: true, Status: http.StatusCreated,
		Handler: func(c *gin.Context, tx *gorm.DB, in *createIn) (*domain.User, error) {
			accounts := service.NewAccountService(userRepo(tx), d.JWT, d.Log)
			u, err := accounts.Register(service.RegisterInput{
				Name: in.Name, Email: in.Email, Password: in.Password, Role: in.Role,
			})
			if errors.Is(err, service.ErrEmailTaken) {
				return nil, ez.Conflict("email already in use")
			}
			if err != nil {
				return nil, ez.Internal("create user failed", err)
			}
			return u, nil
		},
	})

	type updateIn struct {
		Name     string `json:"name"     binding:"omitempty,max=64"`
		Email    string `json:"email"    binding:"omitempty,email"`
		Password string `json:"password"` // blank keeps the current hash
		Role     string `json:"role"     binding:"omitempty,oneof=user admin"`
	}
	ez.Register(e, d.DB, ez.Action[updateIn, *domain.User]{
		Method: http.MethodPut, Path: "/users/:id", Binder: ez.BindJSON,
		Auth: true, Admin: true,
		Handler: func(c *gin.Context, tx *gorm.DB, in *updateIn) (*domain.User, error) {
			repo := userRepo(tx)
			u, err := repo.FindByID(c.Param("id"))
			if err != nil {
				return nil, ez.Internal("load user failed", err)
			}
			if u == nil {
				return nil, ez.NotFound("user not found")
			}
			if in.Name != "" {
				u.Name = strings.TrimSpace(in.Name)
			}
			if in.Email != "" {
				u.Email = strings.TrimSpace(strings.ToLower(in.Email))
			}
			if in.Password != "" {
				u.PasswordHash = utils.HashPassword(in.Password)
			}
			if in.Role != "" {
				u.Role = in.Role
			}
			if err := repo.Update(u); err != nil {
				return nil, ez.Internal("update user failed", err)
			}
			return u, nil
		},
	})

	// Admin accounts are never deleted through the API: demote first,
	// then delete. This also blocks an admin removing themselves.
	ez.Register(e, d.DB, ez.Action[struct{}, gin.H]{
		Method: http.MethodDelete, Path: "/users/:id", Binder: ez.BindNone,
		Auth: true, Admin: true,
		Handler: func(c *gin.Context, tx *gorm.DB, _ *struct{}) (gin.H, error) {
			repo := userRepo(tx)
			u, err := repo.FindByID(c.Param("id"))
			if err != nil {
				return nil, ez.Internal("load user failed", err)
			}
			if u == nil {
				return nil, ez.NotFound("user not found")
			}
			if u.Role == auth.RoleAdmin {
				return nil, ez.Forbidden("cannot delete an admin account")
			}
			if err := repo.Delete(u.ID); err != nil {
				return nil, ez.Internal("delete user failed", err)
			}
			return gin.H{"deleted": u.ID}, nil
		},
	})
}
