// Package response fixes the error wire shape: a real HTTP status plus a
// JSON body with a single "error" field.
package response

import "github.com/gin-gonic/gin"

type E struct {
	Error string `json:"error"`
}

func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, E{Error: msg})
}

// AbortError is Error for middleware: it also stops the handler chain.
func AbortError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, E{Error: msg})
}
