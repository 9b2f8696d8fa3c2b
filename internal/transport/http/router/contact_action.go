package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"quebrada-backend/internal/domain"
	"quebrada-backend/internal/transport/http/ez"
	"quebrada-backend/pkg/utils"
)

func mountContactAction(api *gin.RouterGroup, d APIDeps) {
	e := ez.New(api, d.Log)

	type contactIn struct {
		Name    string `json:"name"    binding:"required,max=128"`
		Email   string `json:"email"   binding:"required,email"`
		Message string `json:"message" binding:"required,max=4000"`
	}
	ez.Register(e, d.DB, ez.Action[contactIn, *domain.ContactMessage]{
		Method: http.MethodPost,
		Path:   "/contact",
		Binder: ez.BindJSON,
		Status: http.StatusCreated,
		Handler: func(c *gin.Context, tx *gorm.DB, in *contactIn) (*domain.ContactMessage, error) {
			m := &domain.ContactMessage{
				ID:      utils.NewID(),
				Name:    in.Name,
				Email:   in.Email,
				Message: in.Message,
			}
			if err := messageRepo(tx).Create(m); err != nil {
				return nil, ez.Internal("save message failed", err)
			}
			return m, nil
		},
	})
}
