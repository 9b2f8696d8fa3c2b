// Package ez registers typed request/response actions on a gin group:
// one declaration carries the method, binding, auth requirements,
// optional transaction and the handler itself.
package ez

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"quebrada-backend/internal/core/auth"
	"quebrada-backend/internal/transport/http/middleware"
	"quebrada-backend/internal/transport/http/response"
)

type Binder string

const (
	BindJSON  Binder = "json"
	BindQuery Binder = "query"
	BindNone  Binder = "none" // handler reads c.Param / c.Query itself
)

// AErr carries an HTTP status with the message; wrapped causes stay
// server-side and are only logged.
type AErr struct {
	Status int
	Msg    string
	Err    error
}

func (e *AErr) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "action error"
}

func (e *AErr) Unwrap() error { return e.Err }

func BadRequest(msg string) error   { return &AErr{Status: http.StatusBadRequest, Msg: msg} }
func Unauthorized(msg string) error { return &AErr{Status: http.StatusUnauthorized, Msg: msg} }
func Forbidden(msg string) error    { return &AErr{Status: http.StatusForbidden, Msg: msg} }
func NotFound(msg string) error     { return &AErr{Status: http.StatusNotFound, Msg: msg} }
func Conflict(msg string) error     { return &AErr{Status: http.StatusConflict, Msg: msg} }
func Internal(msg string, err error) error {
	return &AErr{Status: http.StatusInternalServerError, Msg: msg, Err: err}
}

type EZ struct {
	g   *gin.RouterGroup
	log *zap.Logger
}

func New(g *gin.RouterGroup, log *zap.Logger) EZ { return EZ{g: g, log: log} }

// Action declares one endpoint. I is the bound input, O the response body.
type Action[I any, O any] struct {
	Method string
	Path   string
	Binder Binder
	Auth   bool // require a session
	Admin  bool // re-check the admin policy inside the handler path
	UseTx  bool
	Status int // success status; 0 means 200
	Handler func(c *gin.Context, tx *gorm.DB, in *I) (O, error)
}

func Register[I any, O any](e EZ, db *gorm.DB, a Action[I, O]) {
	h := func(c *gin.Context) {
		// Handler-level gate. The admin group middleware already ran the
		// same policy; this second check is deliberate defense-in-depth.
		if a.Auth || a.Admin {
			claims := middleware.Claims(c)
			if claims == nil {
				response.Error(c, http.StatusUnauthorized, "unauthorized")
				return
			}
			if a.Admin && !auth.IsAdmin(claims) {
				response.Error(c, http.StatusForbidden, "forbidden")
				return
			}
		}

		var in I
		var bindErr error
		switch a.Binder {
		case BindJSON:
			bindErr = c.ShouldBindJSON(&in)
		case BindQuery:
			bindErr = c.ShouldBindQuery(&in)
		}
		if bindErr != nil {
			response.Error(c, http.StatusBadRequest, bindErr.Error())
			return
		}

		run := func(tx *gorm.DB) (O, error) { return a.Handler(c, tx, &in) }
		var out O
		var err error
		if a.UseTx {
			err = db.WithContext(c).Transaction(func(tx *gorm.DB) error {
				o, e := run(tx)
				out = o
				return e
			})
		} else {
			var tx *gorm.DB
			if db != nil {
				tx = db.WithContext(c)
			}
			out, err = run(tx)
		}

		if err != nil {
			var ae *AErr
			if errors.As(err, &ae) {
				if ae.Err != nil {
					e.log.Error(ae.Msg, zap.Error(ae.Err),
						zap.String("rid", c.GetString(middleware.KeyRequestID)))
				}
				response.Error(c, ae.Status, ae.Msg)
				return
			}
			e.log.Error("unhandled action error", zap.Error(err),
				zap.String("rid", c.GetString(middleware.KeyRequestID)))
			response.Error(c, http.StatusInternalServerError, "internal error")
			return
		}

		status := a.Status
		if status == 0 {
			status = http.StatusOK
		}
		c.JSON(status, out)
	}

	switch strings.ToUpper(a.Method) {
	case http.MethodGet:
		e.g.GET(a.Path, h)
	case http.MethodPut:
		e.g.PUT(a.Path, h)
	case http.MethodDelete:
		e.g.DELETE(a.Path, h)
	default:
		e.g.POST(a.Path, h)
	}
}
