package api

import (
	"net/http"
	"time"

	"github.com/content-studio-api/internal/service"
	"github.com/content-studio-api/internal/state"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// NewRouter creates and configures the Gin router
func NewRouter(app *state.App, services *service.Services, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware())

	// Handlers
	contentHandler := NewContentHandler(app, log)
	accountHandler := NewAccountHandler(app, log)
	settingsHandler := NewSettingsHandler(app, log)
	generateHandler := NewGenerateHandler(services, log)

	// Health check
	router.GET("/health", healthCheck)
	router.GET("/metrics", metricsHandler(app))

	// API v1
	v1 := router.Group("/v1")
	{
		contents := v1.Group("/contents")
		{
			contents.GET("", contentHandler.List)
			contents.POST("", contentHandler.Save)
			contents.GET("/drafts", contentHandler.Drafts)
			contents.GET("/published", contentHandler.Published)
			contents.GET("/current", contentHandler.Current)
			contents.PUT("/current", contentHandler.SetCurrent)
			contents.DELETE("/:id", contentHandler.Delete)
			contents.POST("/:id/publish", contentHandler.Publish)
		}

		accounts := v1.Group("/accounts")
		{
			accounts.GET("", accountHandler.List)
			accounts.POST("", accountHandler.Add)
			accounts.POST("/:id/connect", accountHandler.Connect)
			accounts.POST("/:id/disconnect", accountHandler.Disconnect)
		}

		aiConfigs := v1.Group("/ai-configs")
		{
			aiConfigs.GET("", settingsHandler.ListAIConfigs)
			aiConfigs.POST("", settingsHandler.AddAIConfig)
			aiConfigs.GET("/active", settingsHandler.GetActiveAIConfig)
			aiConfigs.PUT("/active", settingsHandler.SetActiveAIConfig)
			aiConfigs.PUT("/:id", settingsHandler.UpdateAIConfig)
			aiConfigs.DELETE("/:id", settingsHandler.DeleteAIConfig)
		}

		v1.GET("/news-config", settingsHandler.GetNewsConfig)
		v1.PUT("/news-config", settingsHandler.SaveNewsConfig)
		v1.GET("/settings", settingsHandler.GetUserSettings)
		v1.PUT("/settings", settingsHandler.SaveUserSettings)

		v1.GET("/ui/sidebar", settingsHandler.GetSidebar)
		v1.POST("/ui/sidebar/toggle", settingsHandler.ToggleSidebar)

		v1.POST("/generate/text", generateHandler.GenerateText)
		v1.POST("/generate/images", generateHandler.GenerateImages)
		v1.GET("/news", generateHandler.FetchNews)
	}

	return router
}

// healthCheck returns the health status
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "content-studio-api",
	})
}

// metricsHandler returns entity counts
func metricsHandler(app *state.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"state": gin.H{
				"contents":   app.Contents.Count(),
				"accounts":   app.Accounts.Count(),
				"ai_configs": app.AIConfigs.Count(),
			},
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Msg("Panic recovered")
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Msg("Request completed")
	}
}

// corsMiddleware handles CORS
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
