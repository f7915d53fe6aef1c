package service

import (
	"context"
	"fmt"
	"math"

	"interview-service/internal/models"
)

// CompareSessions diffs two sessions of the same user. ScoreImprovement is
// order-aware (second minus first); ConsistencyScore is symmetric.
func (s *SessionService) CompareSessions(ctx context.Context, firstID, secondID string) (*models.SessionComparison, error) {
	first, err := s.getSession(ctx, firstID)
	if err != nil {
		return nil, err
	}
	second, err := s.getSession(ctx, secondID)
	if err != nil {
		return nil, err
	}
	if first.UserID == "" || first.UserID != second.UserID {
		return nil, fmt.Errorf("%w: %s vs %s", ErrUserMismatch, firstID, secondID)
	}

	firstScore := scoreOrZero(first.AverageScore)
	secondScore := scoreOrZero(second.AverageScore)

	comparison := &models.SessionComparison{
		UserID:           first.UserID,
		FirstSessionID:   first.ID,
		SecondSessionID:  second.ID,
		FirstScore:       firstScore,
		SecondScore:      secondScore,
		ScoreImprovement: secondScore - firstScore,
		DurationDelta:    second.TotalDurationSeconds - first.TotalDurationSeconds,
		ConsistencyScore: 100 - math.Abs(secondScore-firstScore),
		AreasImproved:    setDifference(first.Weaknesses, second.Weaknesses),
		AreasRegressed:   setDifference(second.Weaknesses, first.Weaknesses),
	}

	if secondScore >= firstScore {
		comparison.BetterSessionID = second.ID
	} else {
		comparison.BetterSessionID = first.ID
	}
	return comparison, nil
}

func scoreOrZero(score *float64) float64 {
	if score == nil {
		return 0
	}
	return *score
}

// setDifference returns the elements of a that are absent from b.
func setDifference(a, b []string) []string {
	inB := make(map[string]bool, len(b))
	for _, item := range b {
		inB[item] = true
	}
	var diff []string
	for _, item := range a {
		if !inB[item] {
			diff = append(diff, item)
		}
	}
	return diff
}
