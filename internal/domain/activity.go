package domain

import (
	"fmt"

	"github.com/samber/lo"
)

// Activity represents an extracurricular offering with its roster.
// Participants keeps signup order.
type Activity struct {
	Name            string   `json:"-"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// Validate checks that the activity can be placed into a registry.
func (a *Activity) Validate() error {
	if a.Name == "" {
		return fmt.Errorf("activity name cannot be empty")
	}
	if a.MaxParticipants <= 0 {
		return fmt.Errorf("activity %q: max_participants must be positive, got %d", a.Name, a.MaxParticipants)
	}
	if len(lo.Uniq(a.Participants)) != len(a.Participants) {
		return fmt.Errorf("activity %q: duplicate participants", a.Name)
	}
	return nil
}

// Clone returns a deep copy, so the roster can be changed without touching the original.
func (a Activity) Clone() Activity {
	out := a
	out.Participants = make([]string, len(a.Participants))
	copy(out.Participants, a.Participants)
	return out
}

// HasParticipant reports whether email is on the roster.
func (a *Activity) HasParticipant(email string) bool {
	return lo.Contains(a.Participants, email)
}

// IsFull reports whether the roster reached max_participants.
func (a *Activity) IsFull() bool {
	return len(a.Participants) >= a.MaxParticipants
}
