// Package events provides helper functions for logging stagetimer events.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/opencode-ai/stagetimer/internal/models"
)

// Sink is the minimal interface needed to write events.
type Sink interface {
	Record(ctx context.Context, event *models.Event) error
}

// LogSink writes events as structured zerolog entries.
type LogSink struct {
	logger zerolog.Logger
	now    func() time.Time
}

// NewLogSink creates a sink that logs through logger.
func NewLogSink(logger zerolog.Logger) *LogSink {
	return &LogSink{logger: logger, now: time.Now}
}

// Record implements Sink. Missing IDs and timestamps are filled in.
func (s *LogSink) Record(ctx context.Context, event *models.Event) error {
	if event == nil {
		return fmt.Errorf("event is required")
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = s.now().UTC()
	}
	if err := event.Validate(); err != nil {
		return fmt.Errorf("invalid event: %w", err)
	}

	s.logger.Info().
		Str("event_id", event.ID).
		Str("event_type", string(event.Type)).
		Str("entity_type", string(event.EntityType)).
		Str("session_id", event.SessionID).
		Time("at", event.Timestamp).
		RawJSON("payload", payloadOrEmpty(event.Payload)).
		Msg("event")
	return nil
}

func payloadOrEmpty(payload json.RawMessage) json.RawMessage {
	if len(payload) == 0 {
		return json.RawMessage("{}")
	}
	return payload
}

// LogTimerEvent records a timer.* event for a session.
func LogTimerEvent(ctx context.Context, sink Sink, sessionID string, eventType models.EventType, payload models.TimerPayload) error {
	return record(ctx, sink, sessionID, eventType, models.EntityTypeTimer, payload)
}

// LogAppearanceChanged records a palette selection.
func LogAppearanceChanged(ctx context.Context, sink Sink, sessionID string, payload models.AppearanceChangedPayload) error {
	return record(ctx, sink, sessionID, models.EventTypeAppearanceChanged, models.EntityTypeAppearance, payload)
}

// LogFullscreenChanged records a platform fullscreen transition.
func LogFullscreenChanged(ctx context.Context, sink Sink, sessionID string, active bool) error {
	return record(ctx, sink, sessionID, models.EventTypeFullscreenChanged, models.EntityTypeScreen,
		models.FullscreenChangedPayload{Active: active})
}

func record(ctx context.Context, sink Sink, sessionID string, eventType models.EventType, entity models.EntityType, payload any) error {
	if sink == nil {
		return fmt.Errorf("event sink is required")
	}
	if sessionID == "" {
		return fmt.Errorf("session id is required")
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", eventType, err)
	}

	event := &models.Event{
		Type:       eventType,
		EntityType: entity,
		SessionID:  sessionID,
		Payload:    data,
	}

	return sink.Record(ctx, event)
}
