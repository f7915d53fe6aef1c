package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"interview-service/internal/evaluator"
	"interview-service/internal/generator"
	"interview-service/internal/models"
	"interview-service/internal/repository"
	"interview-service/internal/service"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testRouter wires the full stack on in-memory stores. With no LLM client
// configured, generation and evaluation run on their deterministic fallbacks.
func testRouter() *gin.Engine {
	svc := service.NewSessionService(
		repository.NewMemorySessionStore(),
		repository.NewMemoryProgressStore(),
		generator.NewGenerator(nil),
		evaluator.NewEvaluator(nil),
	)
	sessionHandler := NewSessionHandler(svc)
	progressHandler := NewProgressHandler(svc)

	r := gin.New()
	session := r.Group("/session")
	{
		session.POST("/", sessionHandler.CreateSession)
		session.POST("/:id/start", sessionHandler.StartSession)
		session.POST("/:id/answer", sessionHandler.SubmitAnswer)
		session.POST("/:id/skip", sessionHandler.SkipQuestion)
		session.POST("/:id/complete", sessionHandler.CompleteSession)
		session.GET("/:id", sessionHandler.GetSession)
	}
	user := r.Group("/user")
	{
		user.GET("/:userId/progress", progressHandler.GetUserProgress)
		user.GET("/:userId/milestones", progressHandler.GetMilestones)
	}
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "user-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createSessionViaHTTP(t *testing.T, r *gin.Engine) *models.InterviewSession {
	t.Helper()
	w := doJSON(t, r, "POST", "/session/", gin.H{
		"candidate_name":   "Ada",
		"target_role":      "Backend Engineer",
		"experience_level": "mid",
		"num_technical":    1,
		"num_behavioral":   1,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Session models.InterviewSession `json:"session"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return &resp.Session
}

func TestSessionLifecycleOverHTTP(t *testing.T) {
	r := testRouter()
	session := createSessionViaHTTP(t, r)

	if session.UserID != "user-1" {
		t.Errorf("Expected user id from header, got %q", session.UserID)
	}
	if session.TotalQuestions != 2 {
		t.Errorf("Expected 2 questions, got %d", session.TotalQuestions)
	}

	if w := doJSON(t, r, "POST", "/session/"+session.ID+"/start", nil); w.Code != http.StatusOK {
		t.Fatalf("Start: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w := doJSON(t, r, "POST", "/session/"+session.ID+"/answer", gin.H{
		"question_index":     0,
		"answer_text":        "First, I would check the logs. For example, a stack trace narrows it down.",
		"time_spent_seconds": 120,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Answer: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var answerResp struct {
		Session    models.InterviewSession `json:"session"`
		Evaluation models.AnswerEvaluation `json:"evaluation"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &answerResp); err != nil {
		t.Fatalf("decode answer response: %v", err)
	}
	if answerResp.Evaluation.OverallScore < 0 || answerResp.Evaluation.OverallScore > 100 {
		t.Errorf("Score %f out of range", answerResp.Evaluation.OverallScore)
	}
	if answerResp.Session.QuestionsAnswered != 1 {
		t.Errorf("Expected 1 answered, got %d", answerResp.Session.QuestionsAnswered)
	}

	if w := doJSON(t, r, "POST", "/session/"+session.ID+"/skip", gin.H{"question_index": 1}); w.Code != http.StatusOK {
		t.Fatalf("Skip: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if w := doJSON(t, r, "POST", "/session/"+session.ID+"/complete", nil); w.Code != http.StatusOK {
		t.Fatalf("Complete: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, "GET", "/session/"+session.ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Get: expected 200, got %d", w.Code)
	}
	var final models.InterviewSession
	json.Unmarshal(w.Body.Bytes(), &final)
	if final.Status != models.StatusCompleted {
		t.Errorf("Expected completed, got %s", final.Status)
	}

	// Completion feeds the progress rollup.
	w = doJSON(t, r, "GET", "/user/user-1/progress", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Progress: expected 200, got %d", w.Code)
	}
	var progress models.UserProgress
	json.Unmarshal(w.Body.Bytes(), &progress)
	if progress.CompletedSessions != 1 {
		t.Errorf("Expected 1 completed session in progress, got %d", progress.CompletedSessions)
	}
}

func TestErrorStatusMapping(t *testing.T) {
	r := testRouter()
	session := createSessionViaHTTP(t, r)

	// Unknown session.
	if w := doJSON(t, r, "POST", "/session/missing/start", nil); w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown session, got %d", w.Code)
	}

	// Invalid transition: answering before start is allowed, but starting twice is not.
	doJSON(t, r, "POST", "/session/"+session.ID+"/start", nil)
	if w := doJSON(t, r, "POST", "/session/"+session.ID+"/start", nil); w.Code != http.StatusConflict {
		t.Errorf("Expected 409 for double start, got %d", w.Code)
	}

	// Out-of-range index.
	w := doJSON(t, r, "POST", "/session/"+session.ID+"/answer", gin.H{
		"question_index": 99,
		"answer_text":    "x",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for out-of-range index, got %d", w.Code)
	}

	// Malformed body.
	req := httptest.NewRequest("POST", fmt.Sprintf("/session/%s/answer", session.ID), bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for malformed body, got %d", rec.Code)
	}
}

func TestCreateSessionValidationOverHTTP(t *testing.T) {
	r := testRouter()

	// Missing required candidate_name fails binding.
	w := doJSON(t, r, "POST", "/session/", gin.H{
		"target_role":      "Backend Engineer",
		"experience_level": "mid",
		"num_technical":    1,
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", w.Code)
	}
}

func TestGetMilestonesOverHTTP(t *testing.T) {
	r := testRouter()

	w := doJSON(t, r, "GET", "/user/user-1/milestones", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	var resp struct {
		Milestones []models.Milestone `json:"milestones"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Milestones) == 0 {
		t.Error("Expected the milestone catalog")
	}
	for _, m := range resp.Milestones {
		if m.Achieved {
			t.Errorf("No milestones should be achieved with no history, got %s", m.ID)
		}
	}
}
