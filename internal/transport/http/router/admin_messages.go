package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"quebrada-backend/internal/domain"
	"quebrada-backend/internal/transport/http/ez"
)

func mountAdminMessages(g *gin.RouterGroup, d AdminDeps) {
	e := ez.New(g, d.Log)

	ez.Register(e, d.DB, ez.Action[struct{}, []domain.ContactMessage]{
		Method: http.MethodGet, Path: "/messages", Binder: ez.BindNone,
		Auth: true, Admin: true,
		Handler: func(c *gin.Context, tx *gorm.DB, _ *struct{}) ([]domain.ContactMessage, error) {
			msgs, err := messageRepo(tx).List()
			if err != nil {
				return nil, ez.Internal("list messages failed", err)
			}
			return msgs, nil
		},
	})

	ez.Register(e, d.DB, ez.Action[struct{}, gin.H]{
		Method: http.MethodDelete, Path: "/messages/:id", Binder: ez.BindNone,
		Auth: true, Admin: true,
		Handler: func(c *gin.Context, tx *gorm.DB, _ *struct{}) (gin.H, error) {
			if err := messageRepo(tx).Delete(c.Param("id")); err != nil {
				if err == domain.ErrNotFound {
					return nil, ez.NotFound("message not found")
				}
				return nil, ez.Internal("delete message failed", err)
			}
			return gin.H{"deleted": c.Param("id")}, nil
		},
	})
}
