package events

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/opencode-ai/stagetimer/internal/models"
)

type fakeSink struct {
	events []*models.Event
}

func (s *fakeSink) Record(ctx context.Context, event *models.Event) error {
	s.events = append(s.events, event)
	return nil
}

func (s *fakeSink) last() *models.Event {
	if len(s.events) == 0 {
		return nil
	}
	return s.events[len(s.events)-1]
}

func TestLogTimerEvent(t *testing.T) {
	sink := &fakeSink{}

	err := LogTimerEvent(context.Background(), sink, "session-1", models.EventTypeTimerPaused,
		models.TimerPayload{Remaining: 299, Display: "04:59", Threshold: "warning"})
	if err != nil {
		t.Fatalf("LogTimerEvent failed: %v", err)
	}

	got := sink.last()
	if got == nil {
		t.Fatal("expected event to be recorded")
	}
	if got.Type != models.EventTypeTimerPaused {
		t.Fatalf("unexpected event type: %q", got.Type)
	}
	if got.EntityType != models.EntityTypeTimer {
		t.Fatalf("unexpected entity type: %q", got.EntityType)
	}

	var payload models.TimerPayload
	if err := json.Unmarshal(got.Payload, &payload); err != nil {
		t.Fatalf("payload decode: %v", err)
	}
	if payload.Remaining != 299 || payload.Display != "04:59" {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}

func TestLogTimerEventRequiresSinkAndSession(t *testing.T) {
	if err := LogTimerEvent(context.Background(), nil, "s", models.EventTypeTimerStarted, models.TimerPayload{}); err == nil {
		t.Fatal("expected error for nil sink")
	}
	if err := LogTimerEvent(context.Background(), &fakeSink{}, "", models.EventTypeTimerStarted, models.TimerPayload{}); err == nil {
		t.Fatal("expected error for empty session id")
	}
}

func TestLogSinkWritesStructuredEntry(t *testing.T) {
	var buf bytes.Buffer
	sink := NewLogSink(zerolog.New(&buf))

	if err := LogFullscreenChanged(context.Background(), sink, "session-2", true); err != nil {
		t.Fatalf("LogFullscreenChanged failed: %v", err)
	}

	line := buf.String()
	for _, want := range []string{`"event_type":"screen.fullscreen_changed"`, `"session_id":"session-2"`, `"active":true`, `"event_id":"`} {
		if !strings.Contains(line, want) {
			t.Errorf("expected %s in %s", want, line)
		}
	}
}

func TestLogSinkRejectsInvalidEvent(t *testing.T) {
	sink := NewLogSink(zerolog.Nop())
	if err := sink.Record(context.Background(), &models.Event{}); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestRecorder(t *testing.T) {
	sink := &fakeSink{}
	rec := NewRecorder(sink, zerolog.Nop())
	if rec.SessionID() == "" {
		t.Fatal("expected generated session id")
	}

	rec.Appearance(models.AppearanceChangedPayload{Swatch: "paper", Background: "#ffffff"})
	if got := sink.last(); got == nil || got.SessionID != rec.SessionID() {
		t.Fatalf("expected event tagged with session %q, got %+v", rec.SessionID(), got)
	}

	var nilRec *Recorder
	nilRec.Timer(models.EventTypeTimerStarted, models.TimerPayload{})
	nilRec.Fullscreen(true)
}
