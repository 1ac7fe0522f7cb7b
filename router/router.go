package router

import (
	"github.com/jstrehler/portfolio-backend/config"
	"github.com/jstrehler/portfolio-backend/handlers"
	"github.com/jstrehler/portfolio-backend/middleware"
	"github.com/jstrehler/portfolio-backend/services"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Dependencies holds everything required for setting up routes.
type Dependencies struct {
	Config          *config.Config
	RateLimiter     services.RateLimiterInterface
	FeedbackHandler *handlers.FeedbackHandler
	ContentHandler  *handlers.ContentHandler
	HealthHandler   *handlers.HealthHandler
	Logger          *zap.SugaredLogger
}

// SetupRouter configures and returns the main Gin engine with all routes
// defined.
func SetupRouter(deps Dependencies) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// Global middleware
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.SecurityHeadersMiddleware(deps.Config))
	r.Use(middleware.CORSMiddleware(&deps.Config.Server))

	// Health and metrics routes
	r.GET("/health", deps.HealthHandler.DetailedHealth)
	r.GET("/health/liveness", deps.HealthHandler.LivenessCheck)
	r.GET("/health/readiness", deps.HealthHandler.ReadinessCheck)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Contact form endpoint, rate limited per client identifier. The path
	// matches the frontend's fetch("/api/feedback").
	api := r.Group("/api")
	{
		api.POST("/feedback",
			middleware.SubmissionRateLimiter(deps.RateLimiter, deps.Config.RateLimit.MaxSubmissions),
			deps.FeedbackHandler.SubmitFeedback,
		)
	}

	// Versioned catalog API
	v1 := r.Group("/v1")
	{
		v1.GET("/photos", deps.ContentHandler.ListPhotos)
		v1.GET("/photos/:id", deps.ContentHandler.GetPhoto)
		v1.GET("/projects", deps.ContentHandler.ListProjects)
		v1.GET("/projects/:slug", deps.ContentHandler.GetProject)
		v1.GET("/roadmap", deps.ContentHandler.ListRoadmapItems)
	}

	return r
}
