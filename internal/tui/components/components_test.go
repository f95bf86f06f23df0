package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/stagetimer/internal/appearance"
	"github.com/opencode-ai/stagetimer/internal/countdown"
	"github.com/opencode-ai/stagetimer/internal/tui/styles"
)

func TestRenderBigClock(t *testing.T) {
	out := RenderBigClock(lipgloss.NewStyle(), "18:00")
	lines := strings.Split(out, "\n")
	if len(lines) != BigClockHeight {
		t.Fatalf("expected %d rows, got %d", BigClockHeight, len(lines))
	}
	want := BigClockWidth("18:00")
	for i, line := range lines {
		if got := lipgloss.Width(line); got != want {
			t.Errorf("row %d width = %d, want %d", i, got, want)
		}
	}
	if want != 5*4+3+4 {
		t.Errorf("BigClockWidth = %d", want)
	}
}

func TestRenderRunBadge(t *testing.T) {
	styleSet := styles.DefaultStyles()

	t.Run("running", func(t *testing.T) {
		out := RenderRunBadge(styleSet, countdown.Snapshot{Running: true, Remaining: 10})
		if !strings.Contains(out, "Running") {
			t.Errorf("expected Running, got %q", out)
		}
	})

	t.Run("paused", func(t *testing.T) {
		out := RenderRunBadge(styleSet, countdown.Snapshot{Paused: true, Remaining: 10})
		if !strings.Contains(out, "Paused") {
			t.Errorf("expected Paused, got %q", out)
		}
	})

	t.Run("expired", func(t *testing.T) {
		out := RenderRunBadge(styleSet, countdown.Snapshot{Paused: true, Expired: true})
		if !strings.Contains(out, "Time's up") {
			t.Errorf("expected Time's up, got %q", out)
		}
	})
}

func TestDigitStyle(t *testing.T) {
	styleSet := styles.DefaultStyles()

	warning := DigitStyle(styleSet, countdown.Snapshot{Running: true, Remaining: 200, Threshold: countdown.ThresholdWarning})
	if warning.GetForeground() != styleSet.DigitsWarning.GetForeground() {
		t.Error("expected warning digits")
	}

	even := DigitStyle(styleSet, countdown.Snapshot{Running: true, Remaining: 30, Threshold: countdown.ThresholdDanger})
	odd := DigitStyle(styleSet, countdown.Snapshot{Running: true, Remaining: 29, Threshold: countdown.ThresholdDanger})
	if even.GetFaint() == odd.GetFaint() {
		t.Error("danger digits should pulse between seconds")
	}

	paused := DigitStyle(styleSet, countdown.Snapshot{Paused: true, Remaining: 30, Threshold: countdown.ThresholdDanger})
	if !paused.GetFaint() {
		t.Error("paused digits should be faint")
	}
}

func TestTimerQuickActions(t *testing.T) {
	styleSet := styles.DefaultStyles()

	running := RenderQuickActionBar(styleSet, TimerQuickActions(countdown.Snapshot{Running: true}, false))
	if !strings.Contains(running, "Pause") || strings.Contains(running, "Colors") {
		t.Errorf("unexpected running bar: %q", running)
	}

	paused := RenderQuickActionBar(styleSet, TimerQuickActions(countdown.Snapshot{Paused: true}, true))
	for _, want := range []string{"Resume", "Colors", "Pick"} {
		if !strings.Contains(paused, want) {
			t.Errorf("expected %q in paused bar: %q", want, paused)
		}
	}

	if RenderQuickActionBar(styleSet, nil) != "" {
		t.Error("expected empty bar for no actions")
	}
}

func TestRenderSwatch(t *testing.T) {
	out := RenderSwatch(appearance.Palette[6], 6, true)
	if !strings.Contains(out, "7•paper") {
		t.Errorf("unexpected swatch: %q", out)
	}

	plain := RenderSwatch(appearance.Palette[0], 0, false)
	if !strings.Contains(plain, "1 midnight") {
		t.Errorf("unexpected swatch: %q", plain)
	}
}
