package service

import (
	"interview-service/internal/models"

	"github.com/montanaflynn/stats"
)

// calculateMetrics recomputes the session's derived fields from its
// responses. Skipped responses are excluded from score averages entirely,
// not zero-scored; a session with no scored answers keeps nil averages.
// Duration is additive over whatever time was recorded on any response.
func (s *SessionService) calculateMetrics(session *models.InterviewSession) {
	var all, technical, behavioral []float64
	duration := 0

	for _, response := range session.Responses {
		duration += response.TimeSpentSeconds
		if !response.Answered() || response.EvaluationScore == nil {
			continue
		}
		score := *response.EvaluationScore
		all = append(all, score)
		if models.TechnicalTypes[response.QuestionType] {
			technical = append(technical, score)
		}
		if models.BehavioralTypes[response.QuestionType] {
			behavioral = append(behavioral, score)
		}
	}

	session.TotalDurationSeconds = duration
	session.AverageScore = meanOrNil(all)
	session.TechnicalScore = meanOrNil(technical)
	session.BehavioralScore = meanOrNil(behavioral)
}

func meanOrNil(scores []float64) *float64 {
	if len(scores) == 0 {
		return nil
	}
	mean, err := stats.Mean(scores)
	if err != nil {
		return nil
	}
	return &mean
}
