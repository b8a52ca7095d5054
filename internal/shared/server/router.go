package server

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"syllabus-analyzer/internal/analyses"
	"syllabus-analyzer/internal/extract"
	"syllabus-analyzer/internal/report"
	"syllabus-analyzer/internal/services/health"
	"syllabus-analyzer/internal/shared/config"
	"syllabus-analyzer/internal/shared/metrics"
	"syllabus-analyzer/internal/shared/server/middleware"
	"syllabus-analyzer/internal/web"
)

// RouterDeps carries handlers built by bootstrap.
type RouterDeps struct {
	Config          config.Config
	Health          *health.Service
	AnalysisHandler *analyses.Handler
	ReportHandler   *report.Handler
	ExtractHandler  *extract.Handler
	WebHandler      *web.Handler
	// Limiter defaults to a fresh limiter using the wall clock.
	Limiter *middleware.RateLimiter
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedExtensions([]string{".xlsx"}), gzip.WithExcludedPaths([]string{"/api/v1/analyses/current/xlsx"})),
	)

	limiter := deps.Limiter
	if limiter == nil {
		limiter = middleware.NewRateLimiter(nil)
	}
	// Only routes that reach the provider are limited.
	limit := middleware.RateLimit(limiter, middleware.RateLimitRule{
		Rate:  deps.Config.RateLimitRPS,
		Burst: deps.Config.RateLimitBurst,
	})

	r.GET("/metrics", metrics.Handler())
	if deps.WebHandler != nil {
		deps.WebHandler.RegisterRoutes(r, limit)
	}

	api := r.Group("/api/v1")
	if deps.Health != nil {
		deps.Health.RegisterRoutes(api)
	}
	if deps.AnalysisHandler != nil {
		deps.AnalysisHandler.RegisterRoutes(api, limit)
	}
	if deps.ReportHandler != nil {
		deps.ReportHandler.RegisterRoutes(api)
	}
	if deps.ExtractHandler != nil {
		deps.ExtractHandler.RegisterRoutes(api)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
