package models

import "time"

// UserProgress is the durable per-user rollup, recomputed wholesale from the
// user's completed-session history. It is derived data only: the session
// history is the source of truth and progress records are never hand-edited.
type UserProgress struct {
	UserID                 string    `bson:"_id,omitempty" json:"user_id"`
	TotalSessions          int       `bson:"total_sessions" json:"total_sessions"`
	CompletedSessions      int       `bson:"completed_sessions" json:"completed_sessions"`
	TotalQuestionsAnswered int       `bson:"total_questions_answered" json:"total_questions_answered"`
	TotalTimeSpentHours    float64   `bson:"total_time_spent_hours" json:"total_time_spent_hours"`
	AverageScore           float64   `bson:"average_score" json:"average_score"`
	BestScore              float64   `bson:"best_score" json:"best_score"`
	WorstScore             float64   `bson:"worst_score" json:"worst_score"`
	TechnicalAverage       float64   `bson:"technical_average" json:"technical_average"`
	BehavioralAverage      float64   `bson:"behavioral_average" json:"behavioral_average"`
	ImprovementRate        float64   `bson:"improvement_rate" json:"improvement_rate"`
	ScoreTrend             []float64 `bson:"score_trend" json:"score_trend"`
	TopStrengths           []string  `bson:"top_strengths" json:"top_strengths"`
	TopWeaknesses          []string  `bson:"top_weaknesses" json:"top_weaknesses"`
	MasteredTopics         []string  `bson:"mastered_topics" json:"mastered_topics"`
	NeedsPractice          []string  `bson:"needs_practice" json:"needs_practice"`
	UpdatedAt              time.Time `bson:"updated_at" json:"updated_at"`
}

// ProgressAnalytics is a point-in-time report over a time window.
type ProgressAnalytics struct {
	UserID                string             `bson:"user_id" json:"user_id"`
	Period                string             `bson:"period" json:"period"`
	TotalSessions         int                `bson:"total_sessions" json:"total_sessions"`
	SessionsByType        map[string]int     `bson:"sessions_by_type" json:"sessions_by_type"`
	SessionsByMode        map[string]int     `bson:"sessions_by_mode" json:"sessions_by_mode"`
	MeanScore             float64            `bson:"mean_score" json:"mean_score"`
	MedianScore           float64            `bson:"median_score" json:"median_score"`
	ScoreVariance         float64            `bson:"score_variance" json:"score_variance"`
	ImprovementPercentage float64            `bson:"improvement_percentage" json:"improvement_percentage"`
	ScoreByDate           map[string]float64 `bson:"score_by_date" json:"score_by_date"`
	QuestionsByDate       map[string]int     `bson:"questions_by_date" json:"questions_by_date"`
	TotalQuestions        int                `bson:"total_questions" json:"total_questions"`
	TotalSkipped          int                `bson:"total_skipped" json:"total_skipped"`
	Recommendations       []string           `bson:"recommendations" json:"recommendations"`
	GeneratedAt           time.Time          `bson:"generated_at" json:"generated_at"`
}

// Analytics windows.
const (
	Period7Days   = "7_days"
	Period30Days  = "30_days"
	Period90Days  = "90_days"
	PeriodAllTime = "all_time"
)

// SessionComparison is a pairwise diff between two sessions of the same user.
type SessionComparison struct {
	UserID           string   `json:"user_id"`
	FirstSessionID   string   `json:"first_session_id"`
	SecondSessionID  string   `json:"second_session_id"`
	FirstScore       float64  `json:"first_score"`
	SecondScore      float64  `json:"second_score"`
	ScoreImprovement float64  `json:"score_improvement"`
	DurationDelta    int      `json:"duration_delta_seconds"`
	ConsistencyScore float64  `json:"consistency_score"`
	BetterSessionID  string   `json:"better_session_id"`
	AreasImproved    []string `json:"areas_improved"`
	AreasRegressed   []string `json:"areas_regressed"`
}

// Milestone is one achievement definition evaluated against UserProgress.
type Milestone struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Threshold   float64    `json:"threshold"`
	Achieved    bool       `json:"achieved"`
	Progress    float64    `json:"progress"`
	AchievedAt  *time.Time `json:"achieved_at,omitempty"`
}

// LearningPath is the generated recommendation bundle for one user.
type LearningPath struct {
	UserID             string             `json:"user_id"`
	CurrentLevel       string             `json:"current_level"`
	TargetLevel        string             `json:"target_level"`
	FocusAreas         []string           `json:"focus_areas"`
	SuggestedFrequency string             `json:"suggested_frequency"`
	EstimatedWeeks     int                `json:"estimated_weeks"`
	Milestones         []Milestone        `json:"milestones"`
	Resources          []LearningResource `json:"resources"`
	GeneratedAt        time.Time          `json:"generated_at"`
}

// Proficiency tiers used by the learning path.
const (
	TierBeginner     = "beginner"
	TierIntermediate = "intermediate"
	TierAdvanced     = "advanced"
	TierExpert       = "expert"
)

// LearningResource is a static pointer to study material.
type LearningResource struct {
	Title string `json:"title"`
	Kind  string `json:"kind"`
	URL   string `json:"url"`
}
