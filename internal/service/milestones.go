package service

import (
	"context"
	"time"

	"interview-service/internal/models"
)

// The milestone catalog is data, not control flow: each entry names the
// metric it reads from UserProgress and the threshold it must reach. Adding
// a milestone means adding a row.
type milestoneDef struct {
	ID          string
	Name        string
	Description string
	Category    string
	Threshold   float64
	Metric      func(p *models.UserProgress) float64
}

var milestoneCatalog = []milestoneDef{
	{
		ID:          "first_session",
		Name:        "First Session",
		Description: "Complete your first interview session",
		Category:    "sessions",
		Threshold:   1,
		Metric:      func(p *models.UserProgress) float64 { return float64(p.CompletedSessions) },
	},
	{
		ID:          "ten_sessions",
		Name:        "Session Veteran",
		Description: "Complete 10 interview sessions",
		Category:    "sessions",
		Threshold:   10,
		Metric:      func(p *models.UserProgress) float64 { return float64(p.CompletedSessions) },
	},
	{
		ID:          "high_average",
		Name:        "High Performer",
		Description: "Reach an average score of 80",
		Category:    "score",
		Threshold:   80,
		Metric:      func(p *models.UserProgress) float64 { return p.AverageScore },
	},
	{
		ID:          "hundred_questions",
		Name:        "Question Centurion",
		Description: "Answer 100 questions",
		Category:    "questions",
		Threshold:   100,
		Metric:      func(p *models.UserProgress) float64 { return float64(p.TotalQuestionsAnswered) },
	},
	{
		ID:          "improvement_20",
		Name:        "On The Rise",
		Description: "Improve your scores by 20% or more",
		Category:    "improvement",
		Threshold:   20,
		Metric:      func(p *models.UserProgress) float64 { return p.ImprovementRate },
	},
}

// GetMilestones evaluates the catalog against the user's current progress.
// AchievedAt is a best-effort stamp: progress is recomputed from scratch, so
// it marks when the condition was observed, not first reached.
func (s *SessionService) GetMilestones(ctx context.Context, userID string) ([]models.Milestone, error) {
	progress, err := s.GetUserProgress(ctx, userID)
	if err != nil {
		return nil, err
	}
	return evaluateMilestones(progress), nil
}

func evaluateMilestones(progress *models.UserProgress) []models.Milestone {
	now := time.Now()
	milestones := make([]models.Milestone, 0, len(milestoneCatalog))

	for _, def := range milestoneCatalog {
		value := def.Metric(progress)
		fraction := 0.0
		if def.Threshold > 0 {
			fraction = value / def.Threshold
		}
		if fraction > 1 {
			fraction = 1
		}
		if fraction < 0 {
			fraction = 0
		}

		milestone := models.Milestone{
			ID:          def.ID,
			Name:        def.Name,
			Description: def.Description,
			Category:    def.Category,
			Threshold:   def.Threshold,
			Achieved:    value >= def.Threshold,
			Progress:    fraction,
		}
		if milestone.Achieved {
			milestone.AchievedAt = &now
		}
		milestones = append(milestones, milestone)
	}
	return milestones
}
