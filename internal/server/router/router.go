package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/flockbook/internal/server/handlers"
)

// New wires the Gin engine with required routes and middlewares.
func New(farmHandler *handlers.FarmHandler, analyticsHandler *handlers.AnalyticsHandler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	api := r.Group("/api")
	{
		api.POST("/records", farmHandler.CreateRecord)
		api.GET("/records", farmHandler.ListRecords)
		api.GET("/state", farmHandler.GetState)

		api.POST("/schedules", farmHandler.CreateSchedule)
		api.GET("/schedules", farmHandler.ListSchedules)
		api.PATCH("/schedules/:id", farmHandler.UpdateSchedule)
		api.DELETE("/schedules/:id", farmHandler.DeleteSchedule)

		api.GET("/metrics", analyticsHandler.GetMetrics)
		api.GET("/analytics", analyticsHandler.GetAnalytics)
		api.GET("/overview", analyticsHandler.GetOverview)
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
