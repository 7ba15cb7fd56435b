// Package registry implements the in-memory activity registry and the
// registration rules enforced on every signup and unregister.
package registry

import (
	"sync"

	"school-activities/internal/common/errors"
	"school-activities/pkg/catalog"
)

// Registry is the single shared store of activities. The key set is fixed at
// construction; only rosters mutate. A registry-wide mutex keeps every
// check-then-mutate step atomic, so concurrent signups can never overflow an
// activity's capacity.
type Registry struct {
	mu         sync.Mutex
	seed       catalog.Catalog
	activities catalog.Catalog
}

// New creates a registry seeded with the given catalog. The seed is retained
// for Reset; callers must not mutate it afterwards.
func New(seed catalog.Catalog) *Registry {
	return &Registry{
		seed:       seed.Clone(),
		activities: seed.Clone(),
	}
}

// List returns a deep-copied snapshot of every activity.
func (r *Registry) List() catalog.Catalog {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.activities.Clone()
}

// Get returns a copy of a single activity.
func (r *Registry) Get(name string) (catalog.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[name]
	if !ok {
		return catalog.Activity{}, errors.NewActivityNotFoundError(name)
	}
	return activity.Clone(), nil
}

// Signup registers email for the named activity. Preconditions are checked in
// order: the activity exists, the email is not already on the roster, and the
// roster is below capacity. Returns a copy of the updated activity.
func (r *Registry) Signup(name, email string) (catalog.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[name]
	if !ok {
		return catalog.Activity{}, errors.NewActivityNotFoundError(name)
	}
	if activity.HasParticipant(email) {
		return catalog.Activity{}, errors.NewAlreadyRegisteredError(name, email)
	}
	if activity.IsFull() {
		return catalog.Activity{}, errors.NewCapacityExceededError(name, activity.MaxParticipants)
	}

	activity.Participants = append(activity.Participants, email)
	r.activities[name] = activity
	return activity.Clone(), nil
}

// Unregister removes email from the named activity, preserving the order of
// the remaining roster. Returns a copy of the updated activity.
func (r *Registry) Unregister(name, email string) (catalog.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[name]
	if !ok {
		return catalog.Activity{}, errors.NewActivityNotFoundError(name)
	}
	if !activity.HasParticipant(email) {
		return catalog.Activity{}, errors.NewNotRegisteredError(name, email)
	}

	roster := make([]string, 0, len(activity.Participants)-1)
	for _, p := range activity.Participants {
		if p != email {
			roster = append(roster, p)
		}
	}
	activity.Participants = roster
	r.activities[name] = activity
	return activity.Clone(), nil
}

// Reset restores the registry to its seeded contents. Used for test isolation
// and operational resets.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.activities = r.seed.Clone()
}
