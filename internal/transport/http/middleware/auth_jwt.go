package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"quebrada-backend/internal/core/auth"
	"quebrada-backend/internal/transport/http/response"
)

const keyClaims = "claims"

// AuthJWT rejects requests without a valid bearer token and stashes the
// parsed claims for the handlers downstream.
func AuthJWT(j *auth.JWTer) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			response.AbortError(c, http.StatusUnauthorized, "missing token")
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "invalid token")
			return
		}
		c.Set(keyClaims, claims)
		c.Next()
	}
}

// RequireAdmin is the edge half of the admin gate. Handlers re-check the
// same auth.IsAdmin policy themselves; keep both layers.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !auth.IsAdmin(Claims(c)) {
			response.AbortError(c, http.StatusForbidden, "forbidden")
			return
		}
		c.Next()
	}
}

// Claims returns the session claims set by AuthJWT, or nil.
func Claims(c *gin.Context) *auth.Claims {
	v, ok := c.Get(keyClaims)
	if !ok {
		return nil
	}
	claims, _ := v.(*auth.Claims)
	return claims
}
