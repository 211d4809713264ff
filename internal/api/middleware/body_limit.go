package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mom-portal/backend/pkg/response"
)

// BodyLimit caps request bodies at maxBytes.
// Handlers see *http.MaxBytesError from their bind calls once the cap is hit.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil && c.Request.ContentLength > maxBytes {
			response.Error(c, http.StatusRequestEntityTooLarge, "Request body too large")
			c.Abort()
			return
		}
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}

		c.Next()
	}
}
