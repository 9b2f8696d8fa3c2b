package router

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"quebrada-backend/internal/core/auth"
	"quebrada-backend/internal/domain"
	"quebrada-backend/internal/service"
	"quebrada-backend/internal/transport/http/ez"
	mdw "quebrada-backend/internal/transport/http/middleware"
)

// AdminDeps wires the back-office engine.
type AdminDeps struct {
	Log *zap.Logger
	DB  *gorm.DB
	JWT *auth.JWTer
}

// NewAdminEngine serves the back-office: catalog management, user and
// message administration, and the shared task list. Everything under
// /admin/v1 except login requires an admin session; the group
// middleware and each action check the same role policy.
func NewAdminEngine(d AdminDeps) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		cors.Default(),
		mdw.RateLimit(100, 200),
		mdw.ConcurrencyLimit(100),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(d.Log, true),
		mdw.Metrics(),
		mdw.AccessLog(d.Log),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	root := r.Group("/admin/v1")
	mountAdminLogin(root, d)

	g := root.Group("")
	g.Use(mdw.AuthJWT(d.JWT), mdw.RequireAdmin())

	mountAdminCatalog(g, d)
	mountAdminUsers(g, d)
	mountAdminMessages(g, d)
	mountAdminTasks(g, d)

	return r
}

func mountAdminLogin(root *gin.RouterGroup, d AdminDeps) {
	e := ez.New(root, d.Log)

	type loginIn struct {
		Email    string `json:"email"    binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	type loginOut struct {
		Token string       `json:"token"`
		User  *domain.User `json:"user"`
	}
	ez.Register(e, d.DB, ez.Action[loginIn, loginOut]{
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
			if !auth.IsAdmin(&auth.Claims{Role: u.Role}) {
				return loginOut{}, ez.Forbidden("forbidden")
			}
			return loginOut{Token: tok, User: u}, nil
		},
	})
}
