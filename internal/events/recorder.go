package events

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/opencode-ai/stagetimer/internal/models"
)

// Recorder binds a sink to one session. A nil *Recorder discards everything.
type Recorder struct {
	sink      Sink
	sessionID string
	logger    zerolog.Logger
}

// NewRecorder creates a recorder with a fresh session ID.
func NewRecorder(sink Sink, logger zerolog.Logger) *Recorder {
	return &Recorder{sink: sink, sessionID: uuid.NewString(), logger: logger}
}

// SessionID returns the session the recorder tags events with.
func (r *Recorder) SessionID() string {
	if r == nil {
		return ""
	}
	return r.sessionID
}

// Timer records a timer.* event.
func (r *Recorder) Timer(eventType models.EventType, payload models.TimerPayload) {
	if r == nil {
		return
	}
	r.check(LogTimerEvent(context.Background(), r.sink, r.sessionID, eventType, payload))
}

// Appearance records a palette selection.
func (r *Recorder) Appearance(payload models.AppearanceChangedPayload) {
	if r == nil {
		return
	}
	r.check(LogAppearanceChanged(context.Background(), r.sink, r.sessionID, payload))
}

// Fullscreen records a fullscreen transition.
func (r *Recorder) Fullscreen(active bool) {
	if r == nil {
		return
	}
	r.check(LogFullscreenChanged(context.Background(), r.sink, r.sessionID, active))
}

func (r *Recorder) check(err error) {
	if err != nil {
		r.logger.Warn().Err(err).Msg("failed to record event")
	}
}
