// Package registry stores the activity catalog in memory.
package registry

import (
	"context"
	"sync"

	"example.com/signup/internal/domain"
)

// InMemoryDirectory holds the catalog behind a single RWMutex. The set of
// activities is fixed at construction; only participant rosters mutate.
type InMemoryDirectory struct {
	mu         sync.RWMutex
	activities map[string]domain.Activity
}

// NewInMemoryDirectory constructs a directory populated with the school catalog.
func NewInMemoryDirectory() *InMemoryDirectory {
	dir := &InMemoryDirectory{
		activities: make(map[string]domain.Activity),
	}
	dir.seed()
	return dir
}

func (d *InMemoryDirectory) seed() {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, activity := range seedActivities() {
		d.activities[activity.Name] = activity
	}
}

// List returns a copy of the full catalog keyed by activity name. Participant
// slices are copied so callers never alias shared state.
func (d *InMemoryDirectory) List(ctx context.Context) (map[string]domain.Activity, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make(map[string]domain.Activity, len(d.activities))
	for name, activity := range d.activities {
		participants := make([]string, len(activity.Participants))
		copy(participants, activity.Participants)
		activity.Participants = participants
		out[name] = activity
	}
	return out, nil
}

// Signup appends email to the activity roster.
func (d *InMemoryDirectory) Signup(ctx context.Context, name, email string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	activity, ok := d.activities[name]
	if !ok {
		return domain.ErrActivityNotFound
	}
	if activity.HasParticipant(email) {
		return domain.ErrAlreadySignedUp
	}

	activity.Participants = append(activity.Participants, email)
	d.activities[name] = activity
	return nil
}

// Unregister removes email from the activity roster, preserving order.
func (d *InMemoryDirectory) Unregister(ctx context.Context, name, email string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	activity, ok := d.activities[name]
	if !ok {
		return domain.ErrActivityNotFound
	}
	if !activity.HasParticipant(email) {
		return domain.ErrNotSignedUp
	}

	participants := make([]string, 0, len(activity.Participants)-1)
	for _, participant := range activity.Participants {
		if participant != email {
			participants = append(participants, participant)
		}
	}
	activity.Participants = participants
	d.activities[name] = activity
	return nil
}
