package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"quebrada-backend/internal/domain"
	"quebrada-backend/internal/transport/http/ez"
	mdw "quebrada-backend/internal/transport/http/middleware"
	"quebrada-backend/pkg/utils"
)

// Tasks are a per-admin todo list; each admin sees only their own.
func mountAdminTasks(g *gin.RouterGroup, d AdminDeps) {
	e := ez.New(g, d.Log)

	type listQ struct {
		Day string `form:"day" binding:"omitempty,max=32"`
	}
	ez.Register(e, d.DB, ez.Action[listQ, []domain.Task]{
		Method: http.MethodGet, Path: "/tasks", Binder: ez.BindQuery,
		Auth: true, Admin: true,
		Handler: func(c *gin.Context, tx *gorm.DB, in *listQ) ([]domain.Task, error) {
			tasks, err := taskRepo(tx).List(mdw.Claims(c).UID, in.Day)
			if err != nil {
				return nil, ez.Internal("list tasks failed", err)
			}
			return tasks, nil
		},
	})

	type createIn struct {
		Text string `json:"text" binding:"required,max=500"`
		Day  string `json:"day"  binding:"omitempty,max=32"`
	}
	ez.Register(e, d.DB, ez.Action[createIn, *domain.Task]{
		Method: http.MethodPost, Path: "/tasks", Binder: ez.BindJSON,
		Auth: true, Admin: true, Status: http.StatusCreated,
		Handler: func(c *gin.Context, tx *gorm.DB, in *createIn) (*domain.Task, error) {
			t := &domain.Task{
				ID:     utils.NewID(),
				UserID: mdw.Claims(c).UID,
				Text:   in.Text,
				Day:    in.Day,
			}
			if err := taskRepo(tx).Create(t); err != nil {
				return nil, ez.Internal("create task failed", err)
			}
			return t, nil
		},
	})

	type updateIn struct {
		Text      *string `json:"text"      binding:"omitempty,max=500"`
		Completed *bool   `json:"completed"`
		Day       *string `json:"day"       binding:"omitempty,max=32"`
	}
	ez.Register(e, d.DB, ez.Action[updateIn, *domain.Task]{
		Method: http.MethodPut, Path: "/tasks/:id", Binder: ez.BindJSON,
		Auth: true, Admin: true,
		Handler: func(c *gin.Context, tx *gorm.DB, in *updateIn) (*domain.Task, error) {
			repo := taskRepo(tx)
			t, err := repo.FindByID(c.Param("id"))
			if err != nil {
				return nil, ez.Internal("load task failed", err)
			}
			if t == nil || t.UserID != mdw.Claims(c).UID {
				return nil, ez.NotFound("task not found")
			}
			if in.Text != nil {
				t.Text = *in.Text
			}
			if in.Completed != nil {
				t.Completed = *in.Completed
			}
			if in.Day != nil {
				t.Day = *in.Day
			}
			if err := repo.Update(t); err != nil {
				return nil, ez.Internal("update task failed", err)
			}
			return t, nil
		},
	})

	ez.Register(e, d.DB, ez.Action[struct{}, gin.H]{
		Method: http.MethodDelete, Path: "/tasks/:id", Binder: ez.BindNone,
		Auth: true, Admin: true,
		Handler: func(c *gin.Context, tx *gorm.DB, _ *struct{}) (gin.H, error) {
			repo := taskRepo(tx)
			t, err := repo.FindByID(c.Param("id"))
			if err != nil {
				return nil, ez.Internal("load task failed", err)
			}
			if t == nil || t.UserID != mdw.Claims(c).UID {
				return nil, ez.NotFound("task not found")
			}
			if err := repo.Delete(t.ID); err != nil {
				return nil, ez.Internal("delete task failed", err)
			}
			return gin.H{"deleted": t.ID}, nil
		},
	})
}
