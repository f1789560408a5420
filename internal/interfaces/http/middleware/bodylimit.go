package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// BodyLimit caps the request body at maxBytes. Note and chat payloads
// are small, so anything larger is rejected up front with 413 rather
// than buffered.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			abortTooLarge(c)
			return
		}

		// Chunked requests carry no Content-Length, so the reader
		// itself enforces the cap.
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

func abortTooLarge(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "REQUEST_TOO_LARGE",
			"message": "Request body exceeds maximum allowed size",
		},
	})
}
