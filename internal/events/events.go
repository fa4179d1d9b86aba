// Package events defines roster event payloads and publication.
package events

import "time"

// Actions recorded on RosterChanged events.
const (
	ActionSignup     = "signup"
	ActionUnregister = "unregister"
)

// RosterChanged is the message emitted when an activity roster mutates.
type RosterChanged struct {
	EventID    string    `json:"event_id"`
	Activity   string    `json:"activity"`
	Email      string    `json:"email"`
	Action     string    `json:"action"`
	RosterSize int       `json:"roster_size"`
	OccurredAt time.Time `json:"occurred_at"`
}
