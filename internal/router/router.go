package router

import (
	"github.com/gin-gonic/gin"

	"tourxls/internal/config"
	"tourxls/internal/handler"
	"tourxls/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	conversionH *handler.ConversionHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Conversion routes; no auth, the tool is a single anonymous surface
	conversions := v1.Group("/conversions")
	conversions.POST("/preview", conversionH.Preview)
	conversions.POST("/export", conversionH.Export)

	return r
}
