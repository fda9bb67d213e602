package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/gridpath/internal/metrics"
)

// unmatchedRoute labels requests that hit no route, keeping scanners from
// minting one series per scanned URL.
const unmatchedRoute = "unmatched"

// PrometheusMiddleware records HTTP request duration and count per route
// pattern. Requests to skip (typically the /metrics scrape itself) pass
// through unmeasured.
func PrometheusMiddleware(skip ...string) gin.HandlerFunc {
	skipped := make(map[string]bool, len(skip))
	for _, p := range skip {
		skipped[p] = true
	}

	return func(c *gin.Context) {
		if skipped[c.Request.URL.Path] {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		status := strconv.Itoa(c.Writer.Status())
		metrics.RequestDuration.WithLabelValues(c.Request.Method, route, status).Observe(time.Since(start).Seconds())
		metrics.RequestsTotal.WithLabelValues(c.Request.Method, route, status).Inc()
	}
}
