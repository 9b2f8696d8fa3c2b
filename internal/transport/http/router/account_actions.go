package router

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"quebrada-backend/internal/domain"
	"quebrada-backend/internal/service"
	"quebrada-backend/internal/transport/http/ez"
	mdw "quebrada-backend/internal/transport/http/middleware"
)

func mountAccountActions(api, authed *gin.RouterGroup, d APIDeps) {
	ezPublic := ez.New(api, d.Log)

	type registerIn struct {
		Name     string `json:"name"     binding:"required,max=64"`
		Email    string `json:"email"    binding:"required,email"`
		Password string `json:"password" binding:"required,min=1"`
	}
	ez.Register(ezPublic, d.DB, ez.Action[registerIn, *domain.User]{
		Method: http.MethodPost,
		Path:   "/register",
		Binder: ez.BindJSON,
		Status: http.StatusCreated,
		Handler: func(c *gin.Context, tx *gorm.DB, in *registerIn) (*domain.User, error) {
			accounts := service.NewAccountService(userRepo(tx), d.JWT, d.Log)
			u, err := accounts.Register(service.RegisterInput{
				Name: in.Name, Email: in.Email, Password: in.Password,
			})
			if errors.Is(err, service.ErrEmailTaken) {
				return nil, ez.Conflict("email already in use")
			}
			if err != nil {
				return nil, ez.Internal("register failed", err)
			}
			return u, nil
		},
	})

	type loginIn struct {
		Email    string `json:"email"    binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	type loginOut struct {
		Token string       `json:"token"`
		User  *domain.User `json:"user"`
	}
	ez.Register(ezPublic, d.DB, ez.Action[loginIn, loginOut]{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, tx *gorm.DB, in *loginIn) (loginOut, error) {
			accounts := service.NewAccountService(userRepo(tx), d.JWT, d.Log)
			tok, u, err := accounts.Login(in.Email, in.Password)
			if errors.Is(err, service.ErrInvalidCredentials) {
				return loginOut{}, ez.Unauthorized("invalid credentials")
			}
			if err != nil {
				return loginOut{}, ez.Internal("login failed", err)
			}
			return loginOut{Token: tok, User: u}, nil
		},
	})

	ezAuth := ez.New(authed, d.Log)
	ez.Register(ezAuth, d.DB, ez.Action[struct{}, *domain.User]{
		Method: http.MethodGet,
		Path:   "/me",
		Binder: ez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, tx *gorm.DB, _ *struct{}) (*domain.User, error) {
			claims := mdw.Claims(c)
			u, err := userRepo(tx).FindByID(claims.UID)
			if err != nil {
				return nil, ez.Internal("load profile failed", err)
			}
			if u == nil {
				return nil, ez.NotFound("user not found")
			}
			return u, nil
		},
	})
}
