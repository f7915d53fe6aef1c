package service

import (
	"context"
	"time"

	"interview-service/internal/models"
)

var learningResources = []models.LearningResource{
	{Title: "Cracking the Coding Interview", Kind: "book", URL: "https://www.crackingthecodinginterview.com/"},
	{Title: "System Design Primer", Kind: "repository", URL: "https://github.com/donnemartin/system-design-primer"},
	{Title: "STAR Method Guide", Kind: "article", URL: "https://www.themuse.com/advice/star-interview-method"},
	{Title: "Tech Interview Handbook", Kind: "site", URL: "https://www.techinterviewhandbook.org/"},
}

// GenerateLearningPath derives the recommendation bundle from the user's
// current progress: proficiency tier, focus areas, cadence, and a
// time-to-goal estimate.
func (s *SessionService) GenerateLearningPath(ctx context.Context, userID string) (*models.LearningPath, error) {
	progress, err := s.GetUserProgress(ctx, userID)
	if err != nil {
		return nil, err
	}

	current, target := proficiencyTiers(progress.AverageScore)

	path := &models.LearningPath{
		UserID:             userID,
		CurrentLevel:       current,
		TargetLevel:        target,
		FocusAreas:         progress.NeedsPractice,
		SuggestedFrequency: suggestedFrequency(progress.TotalSessions),
		EstimatedWeeks:     estimateWeeks(progress.CompletedSessions),
		Milestones:         evaluateMilestones(progress),
		Resources:          learningResources,
		GeneratedAt:        time.Now(),
	}
	if len(path.FocusAreas) == 0 {
		path.FocusAreas = []string{"general interview practice"}
	}
	return path, nil
}

// proficiencyTiers buckets the average score into the current tier and the
// next one up.
func proficiencyTiers(averageScore float64) (current, target string) {
	switch {
	case averageScore < 60:
		return models.TierBeginner, models.TierIntermediate
	case averageScore < 80:
		return models.TierIntermediate, models.TierAdvanced
	default:
		return models.TierAdvanced, models.TierExpert
	}
}

func suggestedFrequency(totalSessions int) string {
	switch {
	case totalSessions < 5:
		return "3-4 sessions per week to build momentum"
	case totalSessions < 20:
		return "2-3 sessions per week"
	default:
		return "1-2 maintenance sessions per week"
	}
}

// estimateWeeks floors the remaining effort at two weeks: even experienced
// candidates need a ramp before interviewing.
func estimateWeeks(completedSessions int) int {
	remaining := 12 - completedSessions
	if remaining < 4 {
		remaining = 4
	}
	weeks := remaining / 3
	if weeks < 2 {
		weeks = 2
	}
	return weeks
}
