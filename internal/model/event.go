package model

import (
	"time"
)

// EventType is the type of session lifecycle event published to the
// transcript stream.
type EventType string

const (
	EventTypeSessionStarted EventType = "session_started"
	EventTypeSessionCleared EventType = "session_cleared"
	EventTypeSessionEnded   EventType = "session_ended"
	EventTypeLocaleChanged  EventType = "locale_changed"
	EventTypeError          EventType = "error"
)

// ChatEvent is a session lifecycle event.
type ChatEvent struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Type      EventType `json:"type"`
	Locale    string    `json:"locale,omitempty"`
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
