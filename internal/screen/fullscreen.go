// Package screen toggles the platform fullscreen mode and tracks its status.
package screen

import (
	"github.com/rs/zerolog"

	"github.com/opencode-ai/stagetimer/internal/events"
	"github.com/opencode-ai/stagetimer/internal/logging"
)

// Platform exposes the host's fullscreen status. The status is owned by the
// platform and may change without going through Toggle.
type Platform interface {
	Fullscreen() bool
	RequestFullscreen() error
	ExitFullscreen() error
}

// Toggle flips the platform fullscreen mode and notifies observers whenever
// the platform status changes.
type Toggle struct {
	platform  Platform
	last      bool
	observers []func(active bool)
	recorder  *events.Recorder
	logger    zerolog.Logger
}

// NewToggle creates a toggle seeded with the current platform status.
func NewToggle(platform Platform, rec *events.Recorder) *Toggle {
	return &Toggle{
		platform: platform,
		last:     platform.Fullscreen(),
		recorder: rec,
		logger:   logging.Component("screen"),
	}
}

// Active reports the platform status.
func (t *Toggle) Active() bool {
	return t.platform.Fullscreen()
}

// Toggle requests fullscreen when inactive and exits it when active.
// Failures are dropped: fullscreen is cosmetic.
func (t *Toggle) Toggle() {
	if !t.platform.Fullscreen() {
		if err := t.platform.RequestFullscreen(); err != nil {
			t.logger.Debug().Err(err).Msg("fullscreen request failed")
		}
	} else {
		if err := t.platform.ExitFullscreen(); err != nil {
			t.logger.Debug().Err(err).Msg("fullscreen exit failed")
		}
	}
	t.Sync()
}

// Observe registers fn to run after every platform status change.
func (t *Toggle) Observe(fn func(active bool)) {
	t.observers = append(t.observers, fn)
}

// Sync re-reads the platform status and notifies observers if it changed.
// Call it whenever the platform may have changed on its own.
func (t *Toggle) Sync() bool {
	active := t.platform.Fullscreen()
	if active == t.last {
		return false
	}
	t.last = active

	t.logger.Debug().Bool("active", active).Msg("fullscreen changed")
	t.recorder.Fullscreen(active)
	for _, fn := range t.observers {
		fn(active)
	}
	return true
}

// Label returns the icon and text for the toggle control.
func Label(active bool) (icon, text string) {
	if active {
		return "⤡", "Exit"
	}
	return "⤢", "Fullscreen"
}
