package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/gridpath/internal/httputil"
)

// ErrCodeBodyTooLarge is the envelope code for requests over the body cap.
const ErrCodeBodyTooLarge = "body_too_large"

// MaxBodySize caps request bodies at maxBytes. A declared Content-Length
// over the cap is refused before the handler runs; bodies of unknown length
// are read through http.MaxBytesReader, and the handler maps the resulting
// *http.MaxBytesError to the same 413.
func MaxBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			httputil.RespondError(c, http.StatusRequestEntityTooLarge, ErrCodeBodyTooLarge,
				fmt.Sprintf("request body of %d bytes exceeds the %d byte limit", c.Request.ContentLength, maxBytes))
			return
		}
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}

		c.Next()
	}
}
