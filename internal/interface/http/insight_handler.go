package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/career-radar/internal/domain/insight"
)

// Predict scores a job profile for the caller.
func (h *Handler) Predict(c *gin.Context) {
	claims, ok := requireUser(c)
	if !ok {
		return
	}
	var req insight.PredictRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.insightSvc.Predict(c.Request.Context(), claims.UserID, req)
	if err != nil {
		abortWithError(c, fromAppError(err))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// LatestPrediction returns the caller's snapshot.
func (h *Handler) LatestPrediction(c *gin.Context) {
	claims, ok := requireUser(c)
	if !ok {
		return
	}
	snap, err := h.insightSvc.Latest(c.Request.Context(), claims.UserID)
	if err != nil {
		abortWithError(c, fromAppError(err))
		return
	}
	c.JSON(http.StatusOK, snap)
}

// History lists recent predictions.
func (h *Handler) History(c *gin.Context) {
	limit, ok := queryLimit(c)
	if !ok {
		return
	}
	records, err := h.insightSvc.History(c.Request.Context(), limit)
	if err != nil {
		abortWithError(c, fromAppError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"predictions": records})
}

// HistorySummary aggregates the prediction log.
func (h *Handler) HistorySummary(c *gin.Context) {
	summary, err := h.insightSvc.HistorySummary(c.Request.Context())
	if err != nil {
		abortWithError(c, fromAppError(err))
		return
	}
	c.JSON(http.StatusOK, summary)
}

// ArchiveHistory exports recent history to object storage.
func (h *Handler) ArchiveHistory(c *gin.Context) {
	res, err := h.insightSvc.Archive(c.Request.Context())
	if err != nil {
		abortWithError(c, fromAppError(err))
		return
	}
	c.JSON(http.StatusCreated, res)
}

// Analytics composes every analyzer over the caller's snapshot.
func (h *Handler) Analytics(c *gin.Context) {
	claims, ok := requireUser(c)
	if !ok {
		return
	}
	view, err := h.insightSvc.Analytics(c.Request.Context(), claims.UserID)
	if err != nil {
		abortWithError(c, fromAppError(err))
		return
	}
	c.JSON(http.StatusOK, view)
}

// Volatility measures recent demand swings.
func (h *Handler) Volatility(c *gin.Context) {
	limit, ok := queryLimit(c)
	if !ok {
		return
	}
	res, err := h.insightSvc.Volatility(c.Request.Context(), limit)
	if err != nil {
		abortWithError(c, fromAppError(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

// CareerRisk scores the risk of a role from its demand and volatility.
func (h *Handler) CareerRisk(c *gin.Context) {
	var req insight.CareerRiskRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.insightSvc.CareerRisk(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, fromAppError(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

// OverallRisk combines volatility, trend and shock into one labelled score.
func (h *Handler) OverallRisk(c *gin.Context) {
	var req insight.OverallRiskRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.insightSvc.OverallRisk(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, fromAppError(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

// SkillROI estimates the return of learning a skill.
func (h *Handler) SkillROI(c *gin.Context) {
	var req insight.SkillROIRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.insightSvc.SkillROI(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, fromAppError(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

// Shock simulates market shock scenarios for a role.
func (h *Handler) Shock(c *gin.Context) {
	var req insight.ShockRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.insightSvc.Shock(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, fromAppError(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

// Decide compares two roles for a career switch.
func (h *Handler) Decide(c *gin.Context) {
	var req insight.DecisionRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.insightSvc.Decide(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, fromAppError(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

// queryLimit parses ?limit=N; absent means the service default.
func queryLimit(c *gin.Context) (int, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return 0, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "limit must be a positive integer", err))
		return 0, false
	}
	return limit, true
}
