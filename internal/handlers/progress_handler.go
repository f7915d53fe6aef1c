package handlers

import (
	"context"
	"net/http"

	"interview-service/internal/service"

	"github.com/gin-gonic/gin"
)

type ProgressHandler struct {
	Service *service.SessionService
}

func NewProgressHandler(s *service.SessionService) *ProgressHandler {
	return &ProgressHandler{Service: s}
}

// GetUserProgress returns the cross-session rollup for one user.
func (h *ProgressHandler) GetUserProgress(c *gin.Context) {
	progress, err := h.Service.GetUserProgress(context.Background(), c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute progress", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, progress)
}

// GetProgressAnalytics returns the windowed analytics report. The period
// query parameter accepts 7_days, 30_days, 90_days, or all_time.
func (h *ProgressHandler) GetProgressAnalytics(c *gin.Context) {
	analytics, err := h.Service.GetProgressAnalytics(context.Background(), c.Param("userId"), c.Query("period"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to compute analytics", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, analytics)
}

// GenerateLearningPath returns the personalized recommendation bundle.
func (h *ProgressHandler) GenerateLearningPath(c *gin.Context) {
	path, err := h.Service.GenerateLearningPath(context.Background(), c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate learning path", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, path)
}

// GetMilestones evaluates the milestone catalog for one user.
func (h *ProgressHandler) GetMilestones(c *gin.Context) {
	milestones, err := h.Service.GetMilestones(context.Background(), c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to evaluate milestones", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"milestones": milestones})
}

// CompareSessions diffs two of a user's sessions.
func (h *ProgressHandler) CompareSessions(c *gin.Context) {
	comparison, err := h.Service.CompareSessions(context.Background(), c.Query("first"), c.Query("second"))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": "Failed to compare sessions", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, comparison)
}
