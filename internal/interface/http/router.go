package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/career-radar/internal/infra/config"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestIDMiddleware(),
		requestLogger(handler.logger),
		errorHandlingMiddleware(handler.logger),
		corsMiddleware(cfg.HTTP.AllowedOrigins),
		rateLimitMiddleware(cfg.HTTP.RateLimit, handler.logger),
	)

	router.GET("/healthz", handler.Health)

	api := router.Group("/api/v1")
	{
		authGroup := api.Group("/auth")
		authGroup.POST("/register", handler.Register)
		authGroup.POST("/login", handler.Login)
		authGroup.POST("/guest", handler.Guest)
		authGroup.POST("/refresh", handler.Refresh)

		secured := api.Group("")
		secured.Use(authMiddleware(handler.authSvc))
		secured.GET("/auth/me", handler.Me)
		secured.POST("/auth/logout", handler.Logout)

		secured.POST("/predictions", handler.Predict)
		secured.GET("/predictions/latest", handler.LatestPrediction)

		secured.GET("/history", handler.History)
		secured.GET("/history/summary", handler.HistorySummary)
		secured.POST("/history/archive", handler.ArchiveHistory)

		insights := secured.Group("/insights")
		insights.GET("/analytics", handler.Analytics)
		insights.GET("/volatility", handler.Volatility)
		insights.POST("/career-risk", handler.CareerRisk)
		insights.POST("/overall-risk", handler.OverallRisk)
		insights.POST("/skill-roi", handler.SkillROI)
		insights.POST("/shock", handler.Shock)
		insights.POST("/decision", handler.Decide)

		secured.POST("/assistant/messages", handler.AssistantMessage)
	}

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        router,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", latency.Milliseconds(),
			"requestId", c.GetString(requestIDKey),
		)
	}
}
