package models

// Session lifecycle states. SCHEDULED is the initial state, COMPLETED and
// CANCELLED are terminal.
const (
	StatusScheduled  = "scheduled"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
	StatusPaused     = "paused"
)

// Question types produced by the generator.
const (
	QuestionTechnical    = "technical"
	QuestionBehavioral   = "behavioral"
	QuestionSituational  = "situational"
	QuestionSystemDesign = "system_design"
)

// Difficulty levels.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Candidate experience levels.
const (
	LevelJunior = "junior"
	LevelMid    = "mid"
	LevelSenior = "senior"
)

// Interview modes.
const (
	ModePractice   = "practice"
	ModeMock       = "mock"
	ModeReal       = "real"
	ModeAssessment = "assessment"
)

// Session types (which question mix dominates).
const (
	SessionTechnical  = "technical"
	SessionBehavioral = "behavioral"
	SessionMixed      = "mixed"
)

// Score levels assigned to an evaluation based on its overall score.
const (
	ScoreExcellent = "excellent" // >= 85
	ScoreGood      = "good"      // >= 70
	ScoreAverage   = "average"   // >= 50
	ScorePoor      = "poor"      // < 50
)

// Feedback item categories.
const (
	FeedbackStrength   = "strength"
	FeedbackWeakness   = "weakness"
	FeedbackSuggestion = "suggestion"
)

// Hiring recommendation tiers emitted by the session summary.
const (
	RecommendStrongYes = "strong_yes"
	RecommendYes       = "yes"
	RecommendMaybe     = "maybe"
	RecommendNo        = "no"
)

// ScoreLevelFor maps a 0-100 score to its score level.
func ScoreLevelFor(score float64) string {
	switch {
	case score >= 85:
		return ScoreExcellent
	case score >= 70:
		return ScoreGood
	case score >= 50:
		return ScoreAverage
	default:
		return ScorePoor
	}
}

// TechnicalTypes and BehavioralTypes partition question types for the
// per-session technical/behavioral sub-scores.
var TechnicalTypes = map[string]bool{
	QuestionTechnical:    true,
	QuestionSystemDesign: true,
}

var BehavioralTypes = map[string]bool{
	QuestionBehavioral:  true,
	QuestionSituational: true,
}
