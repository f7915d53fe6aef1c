package repository

import (
	"context"
	"sort"
	"sync"

	"interview-service/internal/models"
)

// In-memory stores, used when the service runs without Mongo and by the
// session manager tests. Safe for concurrent use.

type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*models.InterviewSession
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: map[string]*models.InterviewSession{}}
}

func (s *MemorySessionStore) FindByID(ctx context.Context, id string) (*models.InterviewSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *session
	return &copied, nil
}

func (s *MemorySessionStore) FindByUser(ctx context.Context, userID string) ([]*models.InterviewSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var sessions []*models.InterviewSession
	for _, session := range s.sessions {
		if session.UserID == userID {
			copied := *session
			sessions = append(sessions, &copied)
		}
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].CreatedAt.Before(sessions[j].CreatedAt)
	})
	return sessions, nil
}

func (s *MemorySessionStore) Save(ctx context.Context, session *models.InterviewSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *session
	s.sessions[session.ID] = &copied
	return nil
}

type MemoryProgressStore struct {
	mu       sync.RWMutex
	progress map[string]*models.UserProgress
}

func NewMemoryProgressStore() *MemoryProgressStore {
	return &MemoryProgressStore{progress: map[string]*models.UserProgress{}}
}

func (s *MemoryProgressStore) FindByUser(ctx context.Context, userID string) (*models.UserProgress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	progress, ok := s.progress[userID]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *progress
	return &copied, nil
}

func (s *MemoryProgressStore) Save(ctx context.Context, progress *models.UserProgress) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *progress
	s.progress[progress.UserID] = &copied
	return nil
}
