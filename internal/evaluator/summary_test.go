package evaluator

import (
	"math"
	"testing"

	"interview-service/internal/models"
)

func evalWithScore(qtype string, score float64) models.AnswerEvaluation {
	return models.AnswerEvaluation{
		SessionID:    "session-1",
		QuestionType: qtype,
		OverallScore: score,
		ScoreLevel:   models.ScoreLevelFor(score),
	}
}

func TestGenerateSessionSummary(t *testing.T) {
	eval := NewEvaluator(nil)
	evaluations := []models.AnswerEvaluation{
		evalWithScore(models.QuestionTechnical, 90),
		evalWithScore(models.QuestionTechnical, 70),
		evalWithScore(models.QuestionBehavioral, 50),
	}

	summary := eval.GenerateSessionSummary("session-1", evaluations)

	if summary.QuestionsEvaluated != 3 {
		t.Errorf("Expected 3 evaluated, got %d", summary.QuestionsEvaluated)
	}
	if math.Abs(summary.MeanScore-70.0) > 0.001 {
		t.Errorf("Expected mean 70.0, got %f", summary.MeanScore)
	}
	if summary.TechnicalMean == nil || *summary.TechnicalMean != 80.0 {
		t.Errorf("Expected technical mean 80.0, got %v", summary.TechnicalMean)
	}
	if summary.BehavioralMean == nil || *summary.BehavioralMean != 50.0 {
		t.Errorf("Expected behavioral mean 50.0, got %v", summary.BehavioralMean)
	}
	if summary.ScoreDistribution[models.ScoreExcellent] != 1 ||
		summary.ScoreDistribution[models.ScoreGood] != 1 ||
		summary.ScoreDistribution[models.ScoreAverage] != 1 {
		t.Errorf("Unexpected distribution %v", summary.ScoreDistribution)
	}
	if summary.Summary == "" {
		t.Error("Expected a human-readable summary line")
	}
}

func TestGenerateSessionSummaryEmpty(t *testing.T) {
	summary := NewEvaluator(nil).GenerateSessionSummary("session-1", nil)

	if summary.HiringRecommendation != models.RecommendNo {
		t.Errorf("Empty session must recommend %s, got %s", models.RecommendNo, summary.HiringRecommendation)
	}
	if summary.QuestionsEvaluated != 0 {
		t.Errorf("Expected 0 evaluated, got %d", summary.QuestionsEvaluated)
	}
}

func TestConsistencyFromScores(t *testing.T) {
	if got := consistencyFromScores([]float64{80}); got != 100 {
		t.Errorf("Single score must give consistency 100, got %f", got)
	}
	if got := consistencyFromScores([]float64{75, 75, 75}); got != 100 {
		t.Errorf("Identical scores must give consistency 100, got %f", got)
	}
	if got := consistencyFromScores([]float64{0, 100}); got != 0 {
		t.Errorf("Maximal spread must floor at 0, got %f", got)
	}

	spread := consistencyFromScores([]float64{60, 80})
	tight := consistencyFromScores([]float64{69, 71})
	if tight <= spread {
		t.Errorf("Tighter scores must be more consistent: %f vs %f", tight, spread)
	}
}

func TestHiringRecommendation(t *testing.T) {
	testCases := []struct {
		mean, consistency float64
		expected          string
	}{
		{90, 90, models.RecommendStrongYes},
		{90, 50, models.RecommendYes},
		{75, 95, models.RecommendYes},
		{60, 90, models.RecommendMaybe},
		{40, 100, models.RecommendNo},
		{85, 70, models.RecommendStrongYes},
		{84.9, 100, models.RecommendYes},
	}

	for _, tc := range testCases {
		if got := hiringRecommendation(tc.mean, tc.consistency); got != tc.expected {
			t.Errorf("mean=%f consistency=%f: expected %s, got %s", tc.mean, tc.consistency, tc.expected, got)
		}
	}
}

func TestSummaryRecommendationsCap(t *testing.T) {
	eval := NewEvaluator(nil)
	var evaluations []models.AnswerEvaluation
	for i := 0; i < 4; i++ {
		e := evalWithScore(models.QuestionTechnical, 70)
		e.Suggestions = []models.FeedbackItem{
			{Category: models.FeedbackSuggestion, Text: "suggestion a"},
			{Category: models.FeedbackSuggestion, Text: "suggestion b"},
		}
		evaluations = append(evaluations, e)
	}

	summary := eval.GenerateSessionSummary("session-1", evaluations)
	if len(summary.Recommendations) > 5 {
		t.Errorf("Recommendations must cap at 5, got %d", len(summary.Recommendations))
	}
}
