package countdown

import "time"

// State represents the engine lifecycle.
type State string

const (
	StateUninitialized State = "uninitialized"
	StateRunning       State = "running"
	StateExpired       State = "expired"
)

// EventType defines the type of engine event.
type EventType string

const (
	EventTick    EventType = "tick"
	EventExpired EventType = "expired"
)

// Event represents an engine update for observers.
type Event struct {
	Type      EventType
	State     State
	Remaining time.Duration
	Breakdown Breakdown
	At        time.Time
}
