// Package httputil provides the JSON error envelope shared by the API
// handlers and the middleware.
package httputil

import (
	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/gridpath/internal/metrics"
)

// RequestIDKey is the gin context key under which the request ID is stored.
const RequestIDKey = "request_id"

// RespondError writes {"code","message","request_id"}, counts the error by
// code and aborts the request.
func RespondError(c *gin.Context, status int, code, message string) {
	metrics.ErrorsTotal.WithLabelValues(code).Inc()

	resp := map[string]string{
		"code":    code,
		"message": message,
	}
	if rid := c.GetString(RequestIDKey); rid != "" {
		resp["request_id"] = rid
	}

	c.AbortWithStatusJSON(status, resp)
}
