package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/career-radar/internal/domain/auth"
)

// Register creates a new account.
func (h *Handler) Register(c *gin.Context) {
	var req auth.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}
	view, err := h.authSvc.Register(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, fromAppError(err))
		return
	}
	c.JSON(http.StatusCreated, view)
}

// Login exchanges credentials for a token pair.
func (h *Handler) Login(c *gin.Context) {
	var req auth.LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.authSvc.Login(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, fromAppError(err))
		return
	}
	h.startSession(c, resp)
}

// Guest signs in a fresh guest account.
func (h *Handler) Guest(c *gin.Context) {
	resp, err := h.authSvc.Guest(c.Request.Context())
	if err != nil {
		abortWithError(c, fromAppError(err))
		return
	}
	h.startSession(c, resp)
}

// startSession drops any prediction left from a previous sign-in before
// handing out the tokens.
func (h *Handler) startSession(c *gin.Context, resp auth.LoginResponse) {
	if err := h.insightSvc.Reset(c.Request.Context(), resp.User.ID); err != nil {
		abortWithError(c, fromAppError(err))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Refresh rotates a token pair.
func (h *Handler) Refresh(c *gin.Context) {
	var req auth.RefreshRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.authSvc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		abortWithError(c, fromAppError(err))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Me returns the caller's profile.
func (h *Handler) Me(c *gin.Context) {
	claims, ok := requireUser(c)
	if !ok {
		return
	}
	view, err := h.authSvc.Profile(c.Request.Context(), claims.UserID)
	if err != nil {
		abortWithError(c, fromAppError(err))
		return
	}
	c.JSON(http.StatusOK, view)
}

// Logout forgets the caller's latest prediction.
func (h *Handler) Logout(c *gin.Context) {
	claims, ok := requireUser(c)
	if !ok {
		return
	}
	if err := h.insightSvc.Reset(c.Request.Context(), claims.UserID); err != nil {
		abortWithError(c, fromAppError(err))
		return
	}
	c.Status(http.StatusNoContent)
}
