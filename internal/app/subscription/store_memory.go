package subscription

import (
	"context"
	"sync"

	"github.com/nuworldagency/SpeechScribe/internal/app/model"
)

// MemoryStore is the in-process fallback used in tests and when no redis
// address is configured. Not suitable for real billing.
type MemoryStore struct {
	mu   sync.Mutex
	subs map[string]*model.UserSubscription
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{subs: make(map[string]*model.UserSubscription)}
}

func (s *MemoryStore) Save(_ context.Context, sub *model.UserSubscription) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *sub
	s.subs[sub.UserID] = &clone
	return nil
}

func (s *MemoryStore) Get(_ context.Context, userID string) (*model.UserSubscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sub, ok := s.subs[userID]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *sub
	return &clone, nil
}

func (s *MemoryStore) AddUsage(_ context.Context, userID string, hours float64) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sub, ok := s.subs[userID]
	if !ok {
		return 0, ErrNotFound
	}
	sub.AudioHoursUsed += hours
	return sub.AudioHoursUsed, nil
}
