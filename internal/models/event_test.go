package models

import (
	"strings"
	"testing"
)

func TestEventValidate(t *testing.T) {
	valid := &Event{Type: EventTypeTimerStarted, EntityType: EntityTypeTimer, SessionID: "s-1"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	err := (&Event{}).Validate()
	if err == nil {
		t.Fatal("expected validation error for empty event")
	}
	for _, want := range []string{"event type", "entity_type", "session_id"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected %q in %q", want, err.Error())
		}
	}
}
