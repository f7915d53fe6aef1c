package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"interview-service/internal/models"
	"interview-service/internal/repository"

	"github.com/montanaflynn/stats"
)

// GetUserProgress returns the user's rollup, computing it from the full
// session history on first access and serving the in-memory copy afterwards.
// The rollup is recomputed wholesale on every session completion.
func (s *SessionService) GetUserProgress(ctx context.Context, userID string) (*models.UserProgress, error) {
	s.cacheMu.RLock()
	cached, ok := s.progressCache[userID]
	s.cacheMu.RUnlock()
	if ok {
		copied := *cached
		return &copied, nil
	}
	return s.RecomputeProgress(ctx, userID)
}

// RecomputeProgress rebuilds the rollup from the session history, refreshes
// the cache, and writes the record through to the progress store.
func (s *SessionService) RecomputeProgress(ctx context.Context, userID string) (*models.UserProgress, error) {
	sessions, err := s.Sessions.FindByUser(ctx, userID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	progress := computeProgress(userID, sessions)

	s.cacheMu.Lock()
	copied := *progress
	s.progressCache[userID] = &copied
	s.cacheMu.Unlock()

	if err := s.Progress.Save(ctx, progress); err != nil {
		return nil, err
	}
	return progress, nil
}

// computeProgress derives the full rollup from the session history. Only
// COMPLETED sessions contribute to score statistics.
func computeProgress(userID string, sessions []*models.InterviewSession) *models.UserProgress {
	progress := &models.UserProgress{
		UserID:    userID,
		UpdatedAt: time.Now(),
	}

	var completed []*models.InterviewSession
	for _, session := range sessions {
		progress.TotalSessions++
		if session.Status == models.StatusCompleted {
			completed = append(completed, session)
		}
	}
	progress.CompletedSessions = len(completed)

	var scores, technicalScores, behavioralScores []float64
	strengthCounts := map[string]int{}
	weaknessCounts := map[string]int{}

	for _, session := range completed {
		progress.TotalQuestionsAnswered += session.QuestionsAnswered
		progress.TotalTimeSpentHours += float64(session.TotalDurationSeconds) / 3600.0

		if session.AverageScore != nil {
			scores = append(scores, *session.AverageScore)
		}
		if session.TechnicalScore != nil {
			technicalScores = append(technicalScores, *session.TechnicalScore)
		}
		if session.BehavioralScore != nil {
			behavioralScores = append(behavioralScores, *session.BehavioralScore)
		}
		for _, strength := range session.Strengths {
			strengthCounts[strength]++
		}
		for _, weakness := range session.Weaknesses {
			weaknessCounts[weakness]++
		}
	}

	if len(scores) > 0 {
		progress.AverageScore, _ = stats.Mean(scores)
		progress.BestScore, _ = stats.Max(scores)
		progress.WorstScore, _ = stats.Min(scores)
	}
	if len(technicalScores) > 0 {
		progress.TechnicalAverage, _ = stats.Mean(technicalScores)
	}
	if len(behavioralScores) > 0 {
		progress.BehavioralAverage, _ = stats.Mean(behavioralScores)
	}

	progress.ImprovementRate = improvementRate(scores)
	progress.ScoreTrend = lastN(scores, 10)
	progress.TopStrengths = topByCount(strengthCounts, 3)
	progress.TopWeaknesses = topByCount(weaknessCounts, 3)

	// Recurring strengths count as mastered; recurring weaknesses are what
	// the learning path turns into focus areas.
	for _, strength := range progress.TopStrengths {
		if strengthCounts[strength] >= 2 {
			progress.MasteredTopics = append(progress.MasteredTopics, strength)
		}
	}
	progress.NeedsPractice = progress.TopWeaknesses

	return progress
}

// improvementRate splits the chronological score list in half and reports
// the percentage change of the second half's mean over the first half's.
// Requires at least two scores, else 0.
func improvementRate(scores []float64) float64 {
	if len(scores) < 2 {
		return 0
	}
	mid := len(scores) / 2
	firstMean, _ := stats.Mean(scores[:mid])
	secondMean, _ := stats.Mean(scores[mid:])
	if firstMean == 0 {
		return 0
	}
	return (secondMean - firstMean) / firstMean * 100
}

func lastN(values []float64, n int) []float64 {
	if len(values) <= n {
		return values
	}
	return values[len(values)-n:]
}

// topByCount returns the n most frequent keys, ties broken alphabetically.
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

var periodCutoffs = map[string]time.Duration{
	models.Period7Days:  7 * 24 * time.Hour,
	models.Period30Days: 30 * 24 * time.Hour,
	models.Period90Days: 90 * 24 * time.Hour,
}

// GetProgressAnalytics builds a point-in-time report over the given window.
func (s *SessionService) GetProgressAnalytics(ctx context.Context, userID, period string) (*models.ProgressAnalytics, error) {
	if period == "" {
		period = models.PeriodAllTime
	}
	if _, ok := periodCutoffs[period]; !ok && period != models.PeriodAllTime {
		return nil, fmt.Errorf("invalid analytics period %q", period)
	}

	sessions, err := s.Sessions.FindByUser(ctx, userID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	analytics := &models.ProgressAnalytics{
		UserID:          userID,
		Period:          period,
		SessionsByType:  map[string]int{},
		SessionsByMode:  map[string]int{},
		ScoreByDate:     map[string]float64{},
		QuestionsByDate: map[string]int{},
		GeneratedAt:     time.Now(),
	}

	var cutoff time.Time
	if window, ok := periodCutoffs[period]; ok {
		cutoff = time.Now().Add(-window)
	}

	var scores []float64
	scoreSumByDate := map[string]float64{}
	scoreCountByDate := map[string]int{}

	for _, session := range sessions {
		if session.Status != models.StatusCompleted {
			continue
		}
		if !cutoff.IsZero() && session.CreatedAt.Before(cutoff) {
			continue
		}

		analytics.TotalSessions++
		analytics.SessionsByType[session.SessionType]++
		analytics.SessionsByMode[session.InterviewMode]++
		analytics.TotalQuestions += session.QuestionsAnswered
		analytics.TotalSkipped += session.QuestionsSkipped

		day := session.CreatedAt.Format("2006-01-02")
		analytics.QuestionsByDate[day] += session.QuestionsAnswered

		if session.AverageScore != nil {
			scores = append(scores, *session.AverageScore)
			scoreSumByDate[day] += *session.AverageScore
			scoreCountByDate[day]++
		}
	}

	for day, sum := range scoreSumByDate {
		analytics.ScoreByDate[day] = sum / float64(scoreCountByDate[day])
	}

	if len(scores) > 0 {
		analytics.MeanScore, _ = stats.Mean(scores)
		analytics.MedianScore, _ = stats.Median(scores)
		analytics.ScoreVariance, _ = stats.Variance(scores)
	}
	analytics.ImprovementPercentage = improvementRate(scores)
	analytics.Recommendations = analyticsRecommendations(analytics)

	return analytics, nil
}

// analyticsRecommendations is the rule table producing coaching strings.
func analyticsRecommendations(a *models.ProgressAnalytics) []string {
	var recs []string

	if a.TotalSessions == 0 {
		return []string{"Complete your first practice session to start tracking progress."}
	}
	if a.MeanScore < 70 {
		recs = append(recs, "Average score is below 70: focus on fundamentals before advanced topics.")
	}
	if a.TotalQuestions > 0 && float64(a.TotalSkipped) > 0.2*float64(a.TotalQuestions) {
		recs = append(recs, "You skipped more than 20% of questions: work on time management and attempt every question.")
	}
	if a.ImprovementPercentage < 0 {
		recs = append(recs, "Recent scores are trending down: review the feedback from your last sessions.")
	}
	if a.SessionsByType[models.SessionTechnical] == 0 && a.SessionsByType[models.SessionMixed] == 0 {
		recs = append(recs, "No technical practice in this period: schedule a technical session.")
	}
	if len(recs) == 0 {
		recs = append(recs, "Keep up the current practice cadence.")
	}
	return recs
}
