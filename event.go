package banbridge

import "github.com/n0h4rt/banbridge/models"

// EventType represents the type of an event.
type EventType int64

// Event types.
const (
	// Event triggered after a punishment has been applied.
	OnPostPunish EventType = 1 << iota
	// Event triggered after a punishment has been revoked.
	OnPostPardon
	// Event triggered after a warning has been issued.
	OnPostWarn
)

// String returns a string of said EventType.
func (e EventType) String() string {
	switch e {
	case OnPostPunish:
		return "OnPostPunish"
	case OnPostPardon:
		return "OnPostPardon"
	case OnPostWarn:
		return "OnPostWarn"
	default:
		return "UnknownEvent"
	}
}

// Priority orders listeners of the same event. Lower priorities are called first.
type Priority int8

// Listener priorities.
const (
	PriorityLowest  Priority = -128
	PriorityLow     Priority = -64
	PriorityNormal  Priority = 0
	PriorityHigh    Priority = 63
	PriorityHighest Priority = 127
)

// Event represents a punishment lifecycle event.
type Event struct {
	Type       EventType          // The type of the event.
	Punishment *models.Punishment // The punishment the event is about.
	Error      any                // The error raised while handling the event.
}
