package api

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/internal/middleware"
)

// RouterDeps holds all dependencies needed by the router.
type RouterDeps struct {
	Log         *logrus.Logger
	Solver      Solver
	CORSOrigins []string
	Version     string
}

// maxBodySize caps request bodies; a 100×100 layout is well under it.
const maxBodySize = 1 << 20

// metricsPath is the Prometheus scrape route; scrapes are not measured.
const metricsPath = "/metrics"

// NewRouter creates the gin engine with middleware and all routes.
func NewRouter(deps *RouterDeps) *gin.Engine {
	r := gin.New()
	r.SetTrustedProxies(nil) //nolint:errcheck // nil always succeeds.
	r.Use(middleware.RequestID(deps.Log))
	r.Use(middleware.Logger(deps.Log))
	r.Use(gin.Recovery())
	r.Use(middleware.MaxBodySize(maxBodySize))
	if len(deps.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins: deps.CORSOrigins,
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Content-Type"},
			MaxAge:       1 * time.Hour,
		}))
	}
	r.Use(middleware.PrometheusMiddleware(metricsPath))

	health := NewHealthHandler(deps.Version)
	r.GET("/health", health.Liveness)
	r.GET(metricsPath, gin.WrapH(promhttp.Handler()))

	solve := NewSolveHandler(deps.Solver, deps.Log)
	v1 := r.Group("/v1")
	v1.POST("/solve", solve.Solve)

	return r
}
