// Package repository holds the in-memory activity registry.
package repository

import (
	"fmt"
	"sync"

	"github.com/mishasvintus/mergington_activities/internal/domain"
)

// ActivityRepository keeps activities keyed by name.
// All access goes through mu; stored records never leave the repository uncopied.
type ActivityRepository struct {
	mu         sync.RWMutex
	activities map[string]domain.Activity
}

// NewActivityRepository creates a registry populated with the given activities.
// Returns error if an activity is invalid or a name appears twice.
func NewActivityRepository(seed []domain.Activity) (*ActivityRepository, error) {
	activities := make(map[string]domain.Activity, len(seed))
	for _, a := range seed {
		if err := a.Validate(); err != nil {
			return nil, fmt.Errorf("invalid seed activity: %w", err)
		}
		if _, exists := activities[a.Name]; exists {
			return nil, fmt.Errorf("duplicate seed activity %q", a.Name)
		}
		activities[a.Name] = a.Clone()
	}

	return &ActivityRepository{activities: activities}, nil
}

// List returns a snapshot of every activity keyed by name.
func (r *ActivityRepository) List() map[string]domain.Activity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]domain.Activity, len(r.activities))
	for name, a := range r.activities {
		out[name] = a.Clone()
	}
	return out
}

// Update applies fn to the activity stored under name while holding the write lock.
// fn receives a copy; the copy replaces the stored record only when fn returns nil,
// so a failed update leaves the roster untouched.
func (r *ActivityRepository) Update(name string, fn func(a *domain.Activity) error) (*domain.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.activities[name]
	if !ok {
		return nil, ErrNotFound
	}

	working := current.Clone()
	if err := fn(&working); err != nil {
		return nil, err
	}
	r.activities[name] = working

	result := working.Clone()
	return &result, nil
}
