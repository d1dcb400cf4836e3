package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mamadbah2/bmicare/internal/server/handlers"
)

const requestIDHeader = "X-Request-ID"

// Handlers groups the HTTP adapters mounted by New.
type Handlers struct {
	Assessment *handlers.AssessmentHandler
	History    *handlers.HistoryHandler
}

// New wires the Gin engine with required routes and middlewares.
func New(h Handlers, logger *zap.Logger) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestIDMiddleware())
	r.Use(zapLoggerMiddleware(logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.POST("/assessments", h.Assessment.Assess)
		api.POST("/analyze", h.Assessment.Analyze)

		api.GET("/categories", handlers.Categories)
		api.GET("/knowledge/:category", handlers.Knowledge)

		api.GET("/history", h.History.List)
		api.DELETE("/history", h.History.Clear)
		api.GET("/history/:id", h.History.Get)
		api.POST("/history/:id/recalculate", h.History.Recalculate)
		api.DELETE("/history/:id", h.History.Remove)
	}

	logger.Info("router initialized")

	return r
}

func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
			zap.String("request_id", c.GetString("request_id")))
	}
}
