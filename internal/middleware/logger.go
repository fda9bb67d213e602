package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// OutcomeKey is the gin context key a handler sets to the solve outcome
// (found, no_path or rejected) so the request line carries it.
const OutcomeKey = "solve_outcome"

// Logger writes one structured log line per request. Server errors are
// logged at Error, client errors at Warn, everything else at Info.
func Logger(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		fields := logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   status,
			"duration": time.Since(start).String(),
			"client":   c.ClientIP(),
		}
		for _, key := range []string{RequestIDKey, clientRequestIDKey, OutcomeKey} {
			if v, ok := c.Get(key); ok {
				fields[key] = v
			}
		}

		entry := log.WithFields(fields)
		switch {
		case status >= 500:
			entry.Error("request")
		case status >= 400:
			entry.Warn("request")
		default:
			entry.Info("request")
		}
	}
}
