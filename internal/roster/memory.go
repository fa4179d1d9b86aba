// Package roster holds the in-memory activity roster store.
package roster

import (
	"context"
	"sync"

	"example.com/schoolactivities/internal/domain"
)

// Store keeps all activity records in a mutex-guarded map keyed by activity
// name. Activities are seeded once at construction; only the participant
// rosters mutate afterwards.
type Store struct {
	mu         sync.RWMutex
	activities map[string]*domain.Activity
}

// New constructs a Store populated with the fixed school catalog.
func New() *Store {
	return NewWithCatalog(SeedCatalog())
}

// NewWithCatalog constructs a Store from the given activities. Tests use it
// to build isolated fixtures.
func NewWithCatalog(catalog []domain.Activity) *Store {
	store := &Store{activities: make(map[string]*domain.Activity, len(catalog))}
	for _, activity := range catalog {
		copied := activity
		copied.Participants = append([]string(nil), activity.Participants...)
		store.activities[copied.Name] = &copied
	}
	return store
}

// List returns a snapshot of the full catalog. Returned records own their
// participant slices, so callers cannot mutate store state.
func (s *Store) List(ctx context.Context) (map[string]domain.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]domain.Activity, len(s.activities))
	for name, activity := range s.activities {
		out[name] = snapshot(activity)
	}
	return out, nil
}

// Get returns a snapshot of one activity, or nil when absent.
func (s *Store) Get(ctx context.Context, name string) (*domain.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	activity, ok := s.activities[name]
	if !ok {
		return nil, nil
	}
	copied := snapshot(activity)
	return &copied, nil
}

// Signup appends the email to the activity roster. The maximum participant
// count is not enforced, matching the upstream behavior.
func (s *Store) Signup(ctx context.Context, name, email string) (*domain.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	activity, ok := s.activities[name]
	if !ok {
		return nil, domain.ErrActivityNotFound
	}
	if activity.IsRegistered(email) {
		return nil, domain.ErrAlreadyRegistered
	}

	activity.Participants = append(activity.Participants, email)
	copied := snapshot(activity)
	return &copied, nil
}

// Unregister removes the email from the activity roster, preserving the
// order of the remaining participants.
func (s *Store) Unregister(ctx context.Context, name, email string) (*domain.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	activity, ok := s.activities[name]
	if !ok {
		return nil, domain.ErrActivityNotFound
	}

	idx := -1
	for i, participant := range activity.Participants {
		if participant == email {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, domain.ErrNotRegistered
	}

	activity.Participants = append(activity.Participants[:idx], activity.Participants[idx+1:]...)
	copied := snapshot(activity)
	return &copied, nil
}

func snapshot(activity *domain.Activity) domain.Activity {
	copied := *activity
	copied.Participants = append([]string(nil), activity.Participants...)
	return copied
}
