// Package models defines the records stagetimer emits.
package models

import (
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// EventType categorizes events in the system.
type EventType string

const (
	// Timer events
	EventTypeTimerStarted EventType = "timer.started"
	EventTypeTimerPaused  EventType = "timer.paused"
	EventTypeTimerReset   EventType = "timer.reset"
	EventTypeTimerExpired EventType = "timer.expired"

	// Presentation events
	EventTypeAppearanceChanged EventType = "appearance.changed"
	EventTypeFullscreenChanged EventType = "screen.fullscreen_changed"
)

// EntityType identifies the part of the program an event relates to.
type EntityType string

const (
	EntityTypeTimer      EntityType = "timer"
	EntityTypeAppearance EntityType = "appearance"
	EntityTypeScreen     EntityType = "screen"
)

// Event represents an append-only log entry.
type Event struct {
	// ID is the unique identifier for the event.
	ID string `json:"id"`

	// Timestamp is when the event occurred.
	Timestamp time.Time `json:"timestamp"`

	// Type categorizes the event.
	Type EventType `json:"type"`

	// EntityType identifies what kind of entity this event relates to.
	EntityType EntityType `json:"entity_type"`

	// SessionID identifies the running stagetimer process.
	SessionID string `json:"session_id"`

	// Payload contains event-specific data.
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Validate checks if the event is valid.
func (e *Event) Validate() error {
	var problems []string
	if strings.TrimSpace(string(e.Type)) == "" {
		problems = append(problems, "event type is required")
	}
	if strings.TrimSpace(string(e.EntityType)) == "" {
		problems = append(problems, "entity_type is required")
	}
	if strings.TrimSpace(e.SessionID) == "" {
		problems = append(problems, "session_id is required")
	}
	if len(problems) == 0 {
		return nil
	}
	return errors.New(strings.Join(problems, "; "))
}

// TimerPayload is the payload for timer.* events.
type TimerPayload struct {
	Remaining int    `json:"remaining_seconds"`
	Display   string `json:"display"`
	Threshold string `json:"threshold"`
}

// AppearanceChangedPayload is the payload for appearance.changed events.
type AppearanceChangedPayload struct {
	Swatch     string `json:"swatch"`
	Background string `json:"background"`
	Text       string `json:"text"`
	Dark       bool   `json:"dark"`
}

// FullscreenChangedPayload is the payload for screen.fullscreen_changed events.
type FullscreenChangedPayload struct {
	Active bool `json:"active"`
}
