package evaluator

import (
	"fmt"
	"sort"
	"time"

	"interview-service/internal/models"

	"github.com/montanaflynn/stats"
)

// GenerateSessionSummary aggregates the evaluations of one session into a
// single report: mean score, score-level histogram, technical/behavioral
// sub-means, most common feedback themes, a consistency score derived from
// the score spread, and a hiring recommendation.
func (e *Evaluator) GenerateSessionSummary(sessionID string, evaluations []models.AnswerEvaluation) *models.SessionSummary {
	summary := &models.SessionSummary{
		SessionID:          sessionID,
		QuestionsEvaluated: len(evaluations),
		ScoreDistribution:  map[string]int{},
		GeneratedAt:        time.Now(),
	}

	if len(evaluations) == 0 {
		summary.HiringRecommendation = models.RecommendNo
		summary.Summary = "No answers were evaluated in this session."
		return summary
	}

	scores := make([]float64, 0, len(evaluations))
	var technical, behavioral []float64
	strengthCounts := map[string]int{}
	weaknessCounts := map[string]int{}

	for _, eval := range evaluations {
		scores = append(scores, eval.OverallScore)
		summary.ScoreDistribution[models.ScoreLevelFor(eval.OverallScore)]++

		if models.TechnicalTypes[eval.QuestionType] {
			technical = append(technical, eval.OverallScore)
		}
		if models.BehavioralTypes[eval.QuestionType] {
			behavioral = append(behavioral, eval.OverallScore)
		}
		for _, item := range eval.Strengths {
			strengthCounts[item.Text]++
		}
		for _, item := range eval.Weaknesses {
			weaknessCounts[item.Text]++
		}
		for _, item := range eval.Suggestions {
			if len(summary.Recommendations) < 5 {
				summary.Recommendations = append(summary.Recommendations, item.Text)
			}
		}
	}

	summary.MeanScore, _ = stats.Mean(scores)
	if len(technical) > 0 {
		mean, _ := stats.Mean(technical)
		summary.TechnicalMean = &mean
	}
	if len(behavioral) > 0 {
		mean, _ := stats.Mean(behavioral)
		summary.BehavioralMean = &mean
	}

	summary.ConsistencyScore = consistencyFromScores(scores)
	summary.TopStrengths = topByCount(strengthCounts, 3)
	summary.TopWeaknesses = topByCount(weaknessCounts, 3)
	summary.HiringRecommendation = hiringRecommendation(summary.MeanScore, summary.ConsistencyScore)
	summary.Summary = fmt.Sprintf(
		"Evaluated %d answers with a mean score of %.1f (%s). Recommendation: %s.",
		len(evaluations), summary.MeanScore, models.ScoreLevelFor(summary.MeanScore),
		summary.HiringRecommendation,
	)

	return summary
}

// consistencyFromScores maps the standard deviation of scores onto a 0-100
// scale, 100 meaning all answers scored identically.
func consistencyFromScores(scores []float64) float64 {
	if len(scores) < 2 {
		return 100
	}
	sd, err := stats.StandardDeviation(scores)
	if err != nil {
		return 0
	}
	consistency := 100 - sd*2
	if consistency < 0 {
		return 0
	}
	return consistency
}

// hiringRecommendation gates the four tiers on mean score and consistency.
func hiringRecommendation(mean, consistency float64) string {
	switch {
	case mean >= 85 && consistency >= 70:
		return models.RecommendStrongYes
	case mean >= 70:
		return models.RecommendYes
	case mean >= 55:
		return models.RecommendMaybe
	default:
		return models.RecommendNo
	}
}

// topByCount returns the n most frequent keys, breaking ties alphabetically
// for stable output.
func topByCount(counts map[string]int, n int) []string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})
	if len(keys) > n {
		keys = keys[:n]
	}
	return keys
}
