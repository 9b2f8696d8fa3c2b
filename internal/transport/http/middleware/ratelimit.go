package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"quebrada-backend/internal/transport/http/response"
)

// RateLimit is a global token bucket shared by all clients.
func RateLimit(rps rate.Limit, burst int) gin.HandlerFunc {
	lim := rate.NewLimiter(rps, burst)
	return func(c *gin.Context) {
		if lim.Allow() {
			c.Next()
			return
		}
		response.AbortError(c, http.StatusTooManyRequests, "too many requests")
	}
}
