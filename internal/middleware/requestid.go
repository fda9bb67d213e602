// Package middleware holds the gin middleware of the solve API.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/internal/httputil"
)

const (
	// RequestIDKey is the gin context key for the request ID.
	RequestIDKey = httputil.RequestIDKey

	// RequestIDHeader is the HTTP header used to propagate the request ID.
	RequestIDHeader = "X-Request-ID"

	// clientRequestIDKey holds a caller-supplied X-Request-ID for the request log.
	clientRequestIDKey = "client_request_id"
)

// RequestID assigns every request a server-side UUID. The ID is echoed in
// the response header, kept on the gin context for error envelopes and the
// request log, and put on the request context so the solver can tag its
// debug and trace lines with it. A caller-supplied X-Request-ID is recorded
// next to it but never replaces it.
func RequestID(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()

		if clientID := c.GetHeader(RequestIDHeader); clientID != "" {
			c.Set(clientRequestIDKey, clientID)
			log.WithFields(logrus.Fields{
				RequestIDKey:       id,
				clientRequestIDKey: clientID,
			}).Debug("client request ID recorded")
		}

		c.Set(RequestIDKey, id)
		c.Request = c.Request.WithContext(WithRequestID(c.Request.Context(), id))
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}
