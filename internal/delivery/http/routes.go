package http

import (
	"github.com/gin-gonic/gin"

	"github.com/rudradcruze/GTRLTD-samsung-phone-advisor/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))
	router.Use(RateLimitMiddleware(cfg.RateLimit.PerIP, cfg.RateLimit.Burst))

	router.GET("/", handler.APIInfo)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.POST("/ask", handler.AskQuestion)
		v1.GET("/phones", handler.ListPhones)
		v1.GET("/phones/:name", handler.GetPhoneByName)
	}

	return router
}
