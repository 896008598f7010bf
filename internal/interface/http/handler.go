package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/career-radar/internal/domain/assistant"
	"github.com/yanqian/career-radar/internal/domain/auth"
	"github.com/yanqian/career-radar/internal/domain/insight"
)

// Handler wires the HTTP transport to domain services.
type Handler struct {
	authSvc      auth.Service
	insightSvc   insight.Service
	assistantSvc assistant.Service
	logger       *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(authSvc auth.Service, insightSvc insight.Service, assistantSvc assistant.Service, logger *slog.Logger) *Handler {
	return &Handler{
		authSvc:      authSvc,
		insightSvc:   insightSvc,
		assistantSvc: assistantSvc,
		logger:       logger.With("component", "http.handler"),
	}
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return false
	}
	return true
}

func requireUser(c *gin.Context) (auth.Claims, bool) {
	claims, ok := getClaims(c)
	if !ok {
		abortWithError(c, NewHTTPError(http.StatusUnauthorized, "unauthorized", "missing claims", nil))
		return auth.Claims{}, false
	}
	return claims, true
}
