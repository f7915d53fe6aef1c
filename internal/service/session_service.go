package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"interview-service/internal/models"
	"interview-service/internal/repository"

	"github.com/google/uuid"
)

// SessionStore is the persistence contract for sessions: whole-document
// reads and writes, one record per session.
type SessionStore interface {
	FindByID(ctx context.Context, id string) (*models.InterviewSession, error)
	FindByUser(ctx context.Context, userID string) ([]*models.InterviewSession, error)
	Save(ctx context.Context, session *models.InterviewSession) error
}

// ProgressStore persists the per-user rollup, one record per user.
type ProgressStore interface {
	FindByUser(ctx context.Context, userID string) (*models.UserProgress, error)
	Save(ctx context.Context, progress *models.UserProgress) error
}

// QuestionGenerator produces the question set for a new session.
type QuestionGenerator interface {
	GenerateQuestions(ctx context.Context, req *models.GenerationRequest) (*models.QuestionSet, error)
}

// AnswerEvaluator grades answers and aggregates session summaries.
type AnswerEvaluator interface {
	EvaluateAnswer(ctx context.Context, req *models.EvaluationRequest) (*models.AnswerEvaluation, error)
	GenerateSessionSummary(sessionID string, evaluations []models.AnswerEvaluation) *models.SessionSummary
}

// SessionService orchestrates the interview session lifecycle: creation,
// answer submission, skip/complete, metric aggregation, and the per-user
// progress rollup. Mutating operations on one session are serialized by a
// per-session lock so concurrent submissions cannot race on counters.
type SessionService struct {
	Sessions  SessionStore
	Progress  ProgressStore
	Generator QuestionGenerator
	Evaluator AnswerEvaluator

	locksMu sync.Mutex
	locks   map[string]*sync.Mutex

	cacheMu       sync.RWMutex
	progressCache map[string]*models.UserProgress
}

func NewSessionService(sessions SessionStore, progress ProgressStore, generator QuestionGenerator, evaluator AnswerEvaluator) *SessionService {
	return &SessionService{
		Sessions:      sessions,
		Progress:      progress,
		Generator:     generator,
		Evaluator:     evaluator,
		locks:         map[string]*sync.Mutex{},
		progressCache: map[string]*models.UserProgress{},
	}
}

// sessionLock returns the mutex serializing writes for one session id.
func (s *SessionService) sessionLock(sessionID string) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()
	lock, ok := s.locks[sessionID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[sessionID] = lock
	}
	return lock
}

var validLevels = map[string]bool{
	models.LevelJunior: true,
	models.LevelMid:    true,
	models.LevelSenior: true,
}

// CreateSession validates the request, pulls questions from the generator,
// and persists a new SCHEDULED session with one response placeholder per
// question. The question slot count is fixed here and never changes.
func (s *SessionService) CreateSession(ctx context.Context, req *models.CreateSessionRequest) (*models.InterviewSession, error) {
	if req.TargetRole == "" {
		return nil, fmt.Errorf("target role is required")
	}
	if !validLevels[req.ExperienceLevel] {
		return nil, fmt.Errorf("invalid experience level %q", req.ExperienceLevel)
	}

	genReq := &models.GenerationRequest{
		Role:            req.TargetRole,
		Level:           req.ExperienceLevel,
		TargetCompany:   req.TargetCompany,
		ResumeContext:   req.ResumeContext,
		FocusAreas:      req.FocusAreas,
		NumTechnical:    req.NumTechnical,
		NumBehavioral:   req.NumBehavioral,
		NumSituational:  req.NumSituational,
		NumSystemDesign: req.NumSystemDesign,
	}
	if genReq.TotalRequested() <= 0 {
		return nil, fmt.Errorf("at least one question must be requested")
	}

	set, err := s.Generator.GenerateQuestions(ctx, genReq)
	if err != nil {
		return nil, fmt.Errorf("failed to generate questions: %w", err)
	}
	if len(set.Questions) == 0 {
		return nil, fmt.Errorf("question generation produced no questions")
	}

	session := &models.InterviewSession{
		ID:              uuid.NewString(),
		SessionToken:    uuid.NewString(),
		UserID:          req.UserID,
		CandidateName:   req.CandidateName,
		CandidateEmail:  req.CandidateEmail,
		TargetRole:      req.TargetRole,
		TargetCompany:   req.TargetCompany,
		ExperienceLevel: req.ExperienceLevel,
		InterviewMode:   defaultString(req.InterviewMode, models.ModePractice),
		SessionType:     defaultString(req.SessionType, models.SessionMixed),
		Status:          models.StatusScheduled,
		TotalQuestions:  len(set.Questions),
		Responses:       make([]models.QuestionResponse, 0, len(set.Questions)),
		CreatedAt:       time.Now(),
	}

	// One placeholder per generated question, preserving generator order.
	for i, q := range set.Questions {
		session.Responses = append(session.Responses, models.QuestionResponse{
			QuestionID:   fmt.Sprintf("%s-q%d", session.ID, i),
			Question:     q.Question,
			QuestionType: q.Type,
			Difficulty:   q.Difficulty,
		})
	}

	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// StartSession transitions SCHEDULED -> IN_PROGRESS.
func (s *SessionService) StartSession(ctx context.Context, sessionID string) (*models.InterviewSession, error) {
	lock := s.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	session, err := s.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status != models.StatusScheduled {
		return nil, fmt.Errorf("%w: cannot start session in state %s", ErrInvalidState, session.Status)
	}

	now := time.Now()
	session.Status = models.StatusInProgress
	session.StartedAt = &now

	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SubmitAnswer records an answer for one question slot and scores it. The
// evaluation happens before any session mutation is committed: on evaluator
// failure the session is returned to the caller unchanged, never left
// answered-but-unscored.
func (s *SessionService) SubmitAnswer(ctx context.Context, sessionID string, req *models.SubmitAnswerRequest) (*models.InterviewSession, *models.AnswerEvaluation, error) {
	lock := s.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	session, err := s.getSession(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	if session.Status == models.StatusCompleted || session.Status == models.StatusCancelled {
		return nil, nil, fmt.Errorf("%w: session is %s", ErrInvalidState, session.Status)
	}
	if req.QuestionIndex < 0 || req.QuestionIndex >= session.TotalQuestions {
		return nil, nil, fmt.Errorf("%w: index %d, session has %d questions", ErrIndexOutOfRange, req.QuestionIndex, session.TotalQuestions)
	}

	response := &session.Responses[req.QuestionIndex]
	if !response.Untouched() {
		return nil, nil, fmt.Errorf("%w: index %d", ErrAlreadyResponded, req.QuestionIndex)
	}

	evaluation, err := s.Evaluator.EvaluateAnswer(ctx, &models.EvaluationRequest{
		SessionID:        session.ID,
		QuestionID:       response.QuestionID,
		Question:         response.Question,
		QuestionType:     response.QuestionType,
		Difficulty:       response.Difficulty,
		Role:             session.TargetRole,
		Level:            session.ExperienceLevel,
		Answer:           req.AnswerText,
		TimeSpentSeconds: req.TimeSpentSeconds,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("answer evaluation failed: %w", err)
	}

	// Commit the answer and its score together.
	now := time.Now()
	score := evaluation.OverallScore
	response.AnswerText = req.AnswerText
	response.TimeSpentSeconds = req.TimeSpentSeconds
	response.AnsweredAt = &now
	response.EvaluationScore = &score
	response.EvaluationID = evaluation.ID
	response.FeedbackSummary = evaluation.Summary

	session.QuestionsAnswered++
	session.AdvanceTo(req.QuestionIndex + 1)
	s.calculateMetrics(session)

	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, nil, err
	}
	return session, evaluation, nil
}

// SkipQuestion marks one question slot skipped. No evaluator call is made.
func (s *SessionService) SkipQuestion(ctx context.Context, sessionID string, questionIndex int) (*models.InterviewSession, error) {
	lock := s.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	session, err := s.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status == models.StatusCompleted || session.Status == models.StatusCancelled {
		return nil, fmt.Errorf("%w: session is %s", ErrInvalidState, session.Status)
	}
	if questionIndex < 0 || questionIndex >= session.TotalQuestions {
		return nil, fmt.Errorf("%w: index %d, session has %d questions", ErrIndexOutOfRange, questionIndex, session.TotalQuestions)
	}

	response := &session.Responses[questionIndex]
	if !response.Untouched() {
		return nil, fmt.Errorf("%w: index %d", ErrAlreadyResponded, questionIndex)
	}

	now := time.Now()
	response.IsSkipped = true
	response.SkippedAt = &now

	session.QuestionsSkipped++
	session.AdvanceTo(questionIndex + 1)
	s.calculateMetrics(session)

	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// CompleteSession transitions the session to COMPLETED, generates the
// session summary from the stored evaluations, and recomputes the owner's
// progress rollup. Completing with zero answered questions succeeds; the
// summary fields stay empty.
func (s *SessionService) CompleteSession(ctx context.Context, sessionID string) (*models.InterviewSession, error) {
	lock := s.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	session, err := s.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status == models.StatusCompleted || session.Status == models.StatusCancelled {
		return nil, fmt.Errorf("%w: session is %s", ErrInvalidState, session.Status)
	}

	now := time.Now()
	session.Status = models.StatusCompleted
	session.CompletedAt = &now
	s.calculateMetrics(session)

	// Re-derive minimal evaluations from the stored scores for the
	// summary routine.
	var evaluations []models.AnswerEvaluation
	for _, response := range session.Responses {
		if !response.Answered() || response.EvaluationScore == nil {
			continue
		}
		evaluations = append(evaluations, models.AnswerEvaluation{
			ID:           response.EvaluationID,
			SessionID:    session.ID,
			QuestionID:   response.QuestionID,
			QuestionType: response.QuestionType,
			OverallScore: *response.EvaluationScore,
			ScoreLevel:   models.ScoreLevelFor(*response.EvaluationScore),
			Summary:      response.FeedbackSummary,
		})
	}

	if len(evaluations) > 0 {
		summary := s.Evaluator.GenerateSessionSummary(session.ID, evaluations)
		session.SessionSummary = summary.Summary
		session.Strengths = summary.TopStrengths
		session.Weaknesses = summary.TopWeaknesses
		session.Recommendations = summary.Recommendations
	}

	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	if session.UserID != "" {
		if _, err := s.RecomputeProgress(ctx, session.UserID); err != nil {
			return nil, fmt.Errorf("session completed but progress recompute failed: %w", err)
		}
	}
	return session, nil
}

// CancelSession moves a non-terminal session to CANCELLED.
func (s *SessionService) CancelSession(ctx context.Context, sessionID string) (*models.InterviewSession, error) {
	return s.transition(ctx, sessionID, models.StatusCancelled,
		models.StatusScheduled, models.StatusInProgress, models.StatusPaused)
}

// PauseSession moves IN_PROGRESS to PAUSED.
func (s *SessionService) PauseSession(ctx context.Context, sessionID string) (*models.InterviewSession, error) {
	return s.transition(ctx, sessionID, models.StatusPaused, models.StatusInProgress)
}

// ResumeSession moves PAUSED back to IN_PROGRESS.
func (s *SessionService) ResumeSession(ctx context.Context, sessionID string) (*models.InterviewSession, error) {
	return s.transition(ctx, sessionID, models.StatusInProgress, models.StatusPaused)
}

func (s *SessionService) transition(ctx context.Context, sessionID, target string, allowed ...string) (*models.InterviewSession, error) {
	lock := s.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	session, err := s.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	permitted := false
	for _, status := range allowed {
		if session.Status == status {
			permitted = true
			break
		}
	}
	if !permitted {
		return nil, fmt.Errorf("%w: cannot move %s session to %s", ErrInvalidState, session.Status, target)
	}

	session.Status = target
	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// GetSession returns one session by id.
func (s *SessionService) GetSession(ctx context.Context, sessionID string) (*models.InterviewSession, error) {
	return s.getSession(ctx, sessionID)
}

// GetUserSessions returns all of a user's sessions in creation order.
func (s *SessionService) GetUserSessions(ctx context.Context, userID string) ([]*models.InterviewSession, error) {
	return s.Sessions.FindByUser(ctx, userID)
}

func (s *SessionService) getSession(ctx context.Context, sessionID string) (*models.InterviewSession, error) {
	session, err := s.Sessions.FindByID(ctx, sessionID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	if err != nil {
		return nil, err
	}
	return session, nil
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
