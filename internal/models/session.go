package models

import "time"

// QuestionResponse tracks one question's lifecycle within a session. The
// question fields are copied from the generated question at creation time and
// never change; the answer fields are written exactly once, by submit or skip.
type QuestionResponse struct {
	QuestionID       string     `bson:"question_id" json:"question_id"`
	Question         string     `bson:"question" json:"question"`
	QuestionType     string     `bson:"question_type" json:"question_type"`
	Difficulty       string     `bson:"difficulty" json:"difficulty"`
	AnswerText       string     `bson:"answer_text" json:"answer_text"`
	TimeSpentSeconds int        `bson:"time_spent_seconds" json:"time_spent_seconds"`
	AnsweredAt       *time.Time `bson:"answered_at,omitempty" json:"answered_at,omitempty"`
	EvaluationScore  *float64   `bson:"evaluation_score,omitempty" json:"evaluation_score,omitempty"`
	EvaluationID     string     `bson:"evaluation_id" json:"evaluation_id"`
	FeedbackSummary  string     `bson:"feedback_summary" json:"feedback_summary"`
	IsSkipped        bool       `bson:"is_skipped" json:"is_skipped"`
	SkippedAt        *time.Time `bson:"skipped_at,omitempty" json:"skipped_at,omitempty"`
}

// Answered reports whether the response holds a submitted answer.
func (r *QuestionResponse) Answered() bool {
	return r.AnsweredAt != nil && !r.IsSkipped
}

// Untouched reports whether the response has neither been answered nor skipped.
func (r *QuestionResponse) Untouched() bool {
	return r.AnsweredAt == nil && !r.IsSkipped
}

// InterviewSession is the central aggregate: one candidate's practice attempt.
type InterviewSession struct {
	ID           string `bson:"_id,omitempty" json:"id"`
	SessionToken string `bson:"session_token" json:"session_token"`
	UserID       string `bson:"user_id" json:"user_id"`

	// Configuration, immutable after creation.
	CandidateName   string `bson:"candidate_name" json:"candidate_name"`
	CandidateEmail  string `bson:"candidate_email" json:"candidate_email"`
	TargetRole      string `bson:"target_role" json:"target_role"`
	TargetCompany   string `bson:"target_company" json:"target_company"`
	ExperienceLevel string `bson:"experience_level" json:"experience_level"`
	InterviewMode   string `bson:"interview_mode" json:"interview_mode"`
	SessionType     string `bson:"session_type" json:"session_type"`

	// Mutable state.
	Status               string             `bson:"status" json:"status"`
	CurrentQuestionIndex int                `bson:"current_question_index" json:"current_question_index"`
	TotalQuestions       int                `bson:"total_questions" json:"total_questions"`
	QuestionsAnswered    int                `bson:"questions_answered" json:"questions_answered"`
	QuestionsSkipped     int                `bson:"questions_skipped" json:"questions_skipped"`
	Responses            []QuestionResponse `bson:"responses" json:"responses"`

	// Derived metrics, recomputed after every mutation. Nil score pointers
	// mean "no scored answers yet", not zero.
	AverageScore         *float64 `bson:"average_score,omitempty" json:"average_score,omitempty"`
	TechnicalScore       *float64 `bson:"technical_score,omitempty" json:"technical_score,omitempty"`
	BehavioralScore      *float64 `bson:"behavioral_score,omitempty" json:"behavioral_score,omitempty"`
	TotalDurationSeconds int      `bson:"total_duration_seconds" json:"total_duration_seconds"`

	// Summary fields, populated on completion.
	SessionSummary  string   `bson:"session_summary" json:"session_summary"`
	Strengths       []string `bson:"strengths" json:"strengths"`
	Weaknesses      []string `bson:"weaknesses" json:"weaknesses"`
	Recommendations []string `bson:"recommendations" json:"recommendations"`

	CreatedAt   time.Time  `bson:"created_at" json:"created_at"`
	StartedAt   *time.Time `bson:"started_at,omitempty" json:"started_at,omitempty"`
	CompletedAt *time.Time `bson:"completed_at,omitempty" json:"completed_at,omitempty"`
}

// AdvanceTo moves the question cursor forward. The index is monotonically
// non-decreasing: answering an earlier untouched slot never rewinds it.
func (s *InterviewSession) AdvanceTo(index int) {
	if index > s.CurrentQuestionIndex {
		s.CurrentQuestionIndex = index
	}
}

// CreateSessionRequest is the payload for session creation.
type CreateSessionRequest struct {
	UserID          string   `json:"user_id"`
	CandidateName   string   `json:"candidate_name" binding:"required"`
	CandidateEmail  string   `json:"candidate_email"`
	TargetRole      string   `json:"target_role" binding:"required"`
	TargetCompany   string   `json:"target_company"`
	ExperienceLevel string   `json:"experience_level" binding:"required"`
	InterviewMode   string   `json:"interview_mode"`
	SessionType     string   `json:"session_type"`
	ResumeContext   string   `json:"resume_context"`
	FocusAreas      []string `json:"focus_areas"`
	NumTechnical    int      `json:"num_technical"`
	NumBehavioral   int      `json:"num_behavioral"`
	NumSituational  int      `json:"num_situational"`
	NumSystemDesign int      `json:"num_system_design"`
}

// SubmitAnswerRequest is the payload for answering one question.
type SubmitAnswerRequest struct {
	QuestionIndex    int    `json:"question_index"`
	AnswerText       string `json:"answer_text" binding:"required"`
	TimeSpentSeconds int    `json:"time_spent_seconds"`
}
