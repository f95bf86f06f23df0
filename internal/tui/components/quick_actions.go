package components

import (
	"fmt"
	"strings"

	"github.com/opencode-ai/stagetimer/internal/countdown"
	"github.com/opencode-ai/stagetimer/internal/tui/styles"
)

// QuickAction represents a keyboard-triggered action.
type QuickAction struct {
	Key     string // Keyboard key (e.g., "Space", "R")
	Label   string // Display label (e.g., "Pause", "Reset")
	Enabled bool   // Whether the action is available
}

// RenderQuickActionBar renders a horizontal bar of available quick actions.
// Format: "Space:Pause  R:Reset  F:Fullscreen  Q:Quit"
func RenderQuickActionBar(styleSet styles.Styles, actions []QuickAction) string {
	if len(actions) == 0 {
		return ""
	}

	var parts []string
	for _, action := range actions {
		if !action.Enabled {
			continue
		}
		keyStyle := styleSet.Accent.Bold(true)
		labelStyle := styleSet.Muted
		part := fmt.Sprintf("%s%s", keyStyle.Render(action.Key), labelStyle.Render(":"+action.Label))
		parts = append(parts, part)
	}

	if len(parts) == 0 {
		return ""
	}

	return strings.Join(parts, styleSet.Muted.Render("  "))
}

// TimerQuickActions returns the actions available for the countdown state.
func TimerQuickActions(snap countdown.Snapshot, pickerOpen bool) []QuickAction {
	toggle := "Pause"
	if !snap.Running {
		toggle = "Resume"
	}
	return []QuickAction{
		{Key: "Space", Label: toggle, Enabled: !snap.Expired},
		{Key: "R", Label: "Reset", Enabled: true},
		{Key: "F", Label: "Fullscreen", Enabled: true},
		{Key: "C", Label: "Colors", Enabled: !snap.Running},
		{Key: "1-9", Label: "Pick", Enabled: pickerOpen},
		{Key: "Q", Label: "Quit", Enabled: true},
	}
}
