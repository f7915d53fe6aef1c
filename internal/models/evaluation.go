package models

import "time"

// CriterionScore is a per-rubric-criterion sub-score.
type CriterionScore struct {
	Criterion string  `bson:"criterion" json:"criterion"`
	Score     float64 `bson:"score" json:"score"`
	Comment   string  `bson:"comment" json:"comment"`
}

// FeedbackItem is one categorized piece of feedback on an answer.
type FeedbackItem struct {
	Category string `bson:"category" json:"category"`
	Text     string `bson:"text" json:"text"`
}

// AnswerEvaluation is the scored, annotated result of grading one answer.
type AnswerEvaluation struct {
	ID              string           `bson:"_id,omitempty" json:"id"`
	SessionID       string           `bson:"session_id" json:"session_id"`
	QuestionID      string           `bson:"question_id" json:"question_id"`
	QuestionType    string           `bson:"question_type" json:"question_type"`
	OverallScore    float64          `bson:"overall_score" json:"overall_score"`
	ScoreLevel      string           `bson:"score_level" json:"score_level"`
	CriterionScores []CriterionScore `bson:"criterion_scores" json:"criterion_scores"`
	Strengths       []FeedbackItem   `bson:"strengths" json:"strengths"`
	Weaknesses      []FeedbackItem   `bson:"weaknesses" json:"weaknesses"`
	Suggestions     []FeedbackItem   `bson:"suggestions" json:"suggestions"`
	CoveredPoints   []string         `bson:"covered_points" json:"covered_points"`
	MissingPoints   []string         `bson:"missing_points" json:"missing_points"`
	Summary         string           `bson:"summary" json:"summary"`
	UsedLLM         bool             `bson:"used_llm" json:"used_llm"`
	EvaluatedAt     time.Time        `bson:"evaluated_at" json:"evaluated_at"`
}

// EvaluationRequest carries one question+answer pair to the evaluator.
type EvaluationRequest struct {
	SessionID        string   `json:"session_id"`
	QuestionID       string   `json:"question_id"`
	Question         string   `json:"question" binding:"required"`
	QuestionType     string   `json:"question_type"`
	Difficulty       string   `json:"difficulty"`
	Role             string   `json:"role"`
	Level            string   `json:"level"`
	Answer           string   `json:"answer" binding:"required"`
	ExpectedPoints   []string `json:"expected_points"`
	Criteria         []string `json:"criteria"`
	TimeSpentSeconds int      `json:"time_spent_seconds"`
}

// SessionSummary aggregates all evaluations of one session.
type SessionSummary struct {
	SessionID            string         `bson:"session_id" json:"session_id"`
	QuestionsEvaluated   int            `bson:"questions_evaluated" json:"questions_evaluated"`
	MeanScore            float64        `bson:"mean_score" json:"mean_score"`
	ScoreDistribution    map[string]int `bson:"score_distribution" json:"score_distribution"`
	TechnicalMean        *float64       `bson:"technical_mean,omitempty" json:"technical_mean,omitempty"`
	BehavioralMean       *float64       `bson:"behavioral_mean,omitempty" json:"behavioral_mean,omitempty"`
	TopStrengths         []string       `bson:"top_strengths" json:"top_strengths"`
	TopWeaknesses        []string       `bson:"top_weaknesses" json:"top_weaknesses"`
	Recommendations      []string       `bson:"recommendations" json:"recommendations"`
	ConsistencyScore     float64        `bson:"consistency_score" json:"consistency_score"`
	HiringRecommendation string         `bson:"hiring_recommendation" json:"hiring_recommendation"`
	Summary              string         `bson:"summary" json:"summary"`
	GeneratedAt          time.Time      `bson:"generated_at" json:"generated_at"`
}
