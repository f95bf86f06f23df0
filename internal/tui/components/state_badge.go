package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/stagetimer/internal/countdown"
	"github.com/opencode-ai/stagetimer/internal/tui/styles"
)

// RenderRunBadge renders the countdown run state with icon and color.
func RenderRunBadge(styleSet styles.Styles, snap countdown.Snapshot) string {
	icon, label, style := runDescriptor(styleSet, snap)
	return style.Render(fmt.Sprintf("%s %s", icon, label))
}

func runDescriptor(styleSet styles.Styles, snap countdown.Snapshot) (string, string, lipgloss.Style) {
	switch {
	case snap.Expired:
		return "■", "Time's up", styleSet.StatusExpired
	case snap.Running:
		return "▶", "Running", styleSet.StatusRunning
	default:
		return "⏸", "Paused", styleSet.StatusPaused
	}
}

// DigitStyle picks the digit style for a snapshot. pulse alternates the
// danger stage between bright and faint.
func DigitStyle(styleSet styles.Styles, snap countdown.Snapshot) lipgloss.Style {
	if snap.Paused && !snap.Expired {
		return styleSet.DigitsPaused
	}
	switch snap.Threshold {
	case countdown.ThresholdDanger:
		if snap.Remaining%2 == 1 {
			return styleSet.DigitsPulse
		}
		return styleSet.DigitsDanger
	case countdown.ThresholdWarning:
		return styleSet.DigitsWarning
	default:
		return styleSet.DigitsNormal
	}
}
