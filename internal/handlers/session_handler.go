package handlers

import (
	"context"
	"errors"
	"net/http"

	"interview-service/internal/models"
	"interview-service/internal/service"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	Service *service.SessionService
}

func NewSessionHandler(s *service.SessionService) *SessionHandler {
	return &SessionHandler{Service: s}
}

// statusFor maps service errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidState):
		return http.StatusConflict
	case errors.Is(err, service.ErrIndexOutOfRange),
		errors.Is(err, service.ErrAlreadyResponded),
		errors.Is(err, service.ErrUserMismatch):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// CreateSession creates a new interview session with generated questions.
func (h *SessionHandler) CreateSession(c *gin.Context) {
	var req models.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	if userID := c.GetHeader("X-User-ID"); userID != "" {
		req.UserID = userID
	}

	session, err := h.Service.CreateSession(context.Background(), &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Failed to create session",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"session":   session,
		"message":   "Session created successfully",
		"next_step": "Call /start then answer questions in order",
	})
}

// StartSession moves a scheduled session to in_progress.
func (h *SessionHandler) StartSession(c *gin.Context) {
	session, err := h.Service.StartSession(context.Background(), c.Param("id"))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": "Failed to start session", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, session)
}

// SubmitAnswer records and scores one answer.
func (h *SessionHandler) SubmitAnswer(c *gin.Context) {
	var req models.SubmitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid answer format",
			"details": err.Error(),
		})
		return
	}

	session, evaluation, err := h.Service.SubmitAnswer(context.Background(), c.Param("id"), &req)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": "Failed to process answer", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session":    session,
		"evaluation": evaluation,
	})
}

// SkipQuestion marks one question skipped without scoring.
func (h *SessionHandler) SkipQuestion(c *gin.Context) {
	var req struct {
		QuestionIndex int `json:"question_index"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}

	session, err := h.Service.SkipQuestion(context.Background(), c.Param("id"), req.QuestionIndex)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": "Failed to skip question", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, session)
}

// CompleteSession finalizes the session and updates the user's progress.
func (h *SessionHandler) CompleteSession(c *gin.Context) {
	session, err := h.Service.CompleteSession(context.Background(), c.Param("id"))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": "Failed to complete session", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, session)
}

// PauseSession pauses an in-progress session.
func (h *SessionHandler) PauseSession(c *gin.Context) {
	session, err := h.Service.PauseSession(context.Background(), c.Param("id"))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": "Failed to pause session", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, session)
}

// ResumeSession resumes a paused session.
func (h *SessionHandler) ResumeSession(c *gin.Context) {
	session, err := h.Service.ResumeSession(context.Background(), c.Param("id"))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": "Failed to resume session", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, session)
}

// CancelSession cancels a non-terminal session.
func (h *SessionHandler) CancelSession(c *gin.Context) {
	session, err := h.Service.CancelSession(context.Background(), c.Param("id"))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": "Failed to cancel session", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, session)
}

// GetSession retrieves session information.
func (h *SessionHandler) GetSession(c *gin.Context) {
	session, err := h.Service.GetSession(context.Background(), c.Param("id"))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": "Session not found", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, session)
}

// GetUserSessions lists a user's sessions in creation order.
func (h *SessionHandler) GetUserSessions(c *gin.Context) {
	sessions, err := h.Service.GetUserSessions(context.Background(), c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list sessions", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": sessions, "count": len(sessions)})
}
