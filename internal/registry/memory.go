// Package registry holds the in-memory activity store.
package registry

import (
	"context"
	"sync"

	"example.com/schoolactivities/internal/domain"
)

// MemoryRegistry stores activities in memory for the process lifetime. A
// single registry-wide lock serialises roster mutation; reads hand out
// defensive copies so callers never alias shared state.
type MemoryRegistry struct {
	mu         sync.RWMutex
	activities map[string]*domain.Activity
}

// NewMemoryRegistry constructs a registry populated with the school catalogue.
func NewMemoryRegistry() *MemoryRegistry {
	return NewMemoryRegistryWithSeed(DefaultCatalogue())
}

// NewMemoryRegistryWithSeed constructs a registry from the given activities.
// The activity set is fixed after construction; only rosters change.
func NewMemoryRegistryWithSeed(seed []domain.Activity) *MemoryRegistry {
	r := &MemoryRegistry{activities: make(map[string]*domain.Activity, len(seed))}
	for _, activity := range seed {
		stored := activity
		stored.Participants = append([]string(nil), activity.Participants...)
		r.activities[stored.Name] = &stored
	}
	return r
}

// List implements domain.Registry.
func (r *MemoryRegistry) List(ctx context.Context) ([]domain.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Activity, 0, len(r.activities))
	for _, activity := range r.activities {
		snapshot := *activity
		snapshot.Participants = append([]string(nil), activity.Participants...)
		out = append(out, snapshot)
	}
	return out, nil
}

// Signup implements domain.Registry.
func (r *MemoryRegistry) Signup(ctx context.Context, name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[name]
	if !ok {
		return domain.ErrActivityNotFound
	}
	for _, participant := range activity.Participants {
		if participant == email {
			return domain.ErrAlreadySignedUp
		}
	}
	activity.Participants = append(activity.Participants, email)
	return nil
}

// Unregister implements domain.Registry.
func (r *MemoryRegistry) Unregister(ctx context.Context, name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[name]
	if !ok {
		return domain.ErrActivityNotFound
	}
	for i, participant := range activity.Participants {
		if participant == email {
			activity.Participants = append(activity.Participants[:i], activity.Participants[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotSignedUp
}
