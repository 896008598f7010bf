package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/career-radar/internal/domain/assistant"
)

// AssistantMessage answers one chat turn.
func (h *Handler) AssistantMessage(c *gin.Context) {
	claims, ok := requireUser(c)
	if !ok {
		return
	}
	var req assistant.Request
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.assistantSvc.Reply(c.Request.Context(), claims.UserID, req)
	if err != nil {
		abortWithError(c, fromAppError(err))
		return
	}
	c.JSON(http.StatusOK, resp)
}
