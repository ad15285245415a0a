package middleware

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/davidpincheira/coding-interview-backend-level-3/internal/services"

	"github.com/gin-gonic/gin"
)

// ErrorHandler converts errors that handlers attached to the context into the
// uniform error envelopes: validation failures become 400 {errors: [...]},
// everything else becomes a generic 500. Handlers that already wrote a
// response are left alone.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err

		var svcErr *services.Error
		if errors.As(err, &svcErr) && svcErr.Kind == services.KindValidation {
			c.JSON(http.StatusBadRequest, gin.H{"errors": svcErr.Fields})
			return
		}

		log.Printf("Unhandled error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "An unexpected error occurred",
			"error":   err.Error(),
		})
	}
}

// RecoveryHandler maps panics to the same generic 500 envelope.
func RecoveryHandler(c *gin.Context, recovered any) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"message": "An unexpected error occurred",
		"error":   fmt.Sprintf("%v", recovered),
	})
}
