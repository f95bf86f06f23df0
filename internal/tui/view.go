package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/stagetimer/internal/countdown"
	"github.com/opencode-ai/stagetimer/internal/input"
	"github.com/opencode-ai/stagetimer/internal/tui/components"
	"github.com/opencode-ai/stagetimer/internal/tui/styles"
)

func (m model) View() string {
	swatch := m.picker.Current()
	styleSet := styles.BuildSwatchStyles(m.theme, swatch.Background, swatch.Text)

	if m.width > 0 && m.height > 0 {
		if m.width < minWidth || m.height < minHeight {
			return fmt.Sprintf("%s\n", joinLines(m.smallViewLines(styleSet)))
		}
	}

	snap := m.timer.Snapshot()
	lines := []string{
		styleSet.Title.Render(m.picker.Logo().Art()),
		"",
		m.zones.Mark(string(input.TargetDisplay), m.clockView(styleSet, snap)),
		"",
		components.RenderRunBadge(styleSet, snap),
	}

	if snap.Running {
		lines = append(lines, styleSet.Muted.Render("Click the clock or press space to pause."))
	}

	if snap.ControlsVisible {
		lines = append(lines, "", m.controlsView(styleSet))
	}

	if !snap.Running {
		lines = append(lines, "", m.pickerView(styleSet))
	}

	lines = append(lines,
		"",
		m.zones.Mark(string(input.TargetFullscreen), components.RenderButton(styleSet, m.fsButton.icon, m.fsButton.label)),
		"",
		components.RenderQuickActionBar(styleSet, components.TimerQuickActions(snap, m.picker.IsOpen())),
	)

	body := lipgloss.JoinVertical(lipgloss.Center, lines...)
	if m.width > 0 && m.height > 0 {
		body = lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body,
			lipgloss.WithWhitespaceBackground(lipgloss.Color(swatch.Background)))
	}
	return m.zones.Scan(body)
}

func (m model) clockView(styleSet styles.Styles, snap countdown.Snapshot) string {
	digits := components.DigitStyle(styleSet, snap)
	if m.width >= bigClockMinWidth && m.height >= bigClockMinHeight &&
		components.BigClockWidth(snap.Display) <= m.width {
		clock := components.RenderBigClock(digits, snap.Display)
		if snap.Paused && !snap.Expired {
			clock = lipgloss.JoinVertical(lipgloss.Center, clock, styleSet.Muted.Render("PAUSED"))
		}
		return clock
	}
	clock := digits.Render(snap.Display)
	if snap.Paused && !snap.Expired {
		clock += styleSet.Muted.Render("  PAUSED")
	}
	return clock
}

func (m model) controlsView(styleSet styles.Styles) string {
	resume := m.zones.Mark(string(input.TargetResume), components.RenderButton(styleSet, "▶", "Resume"))
	reset := m.zones.Mark(string(input.TargetReset), components.RenderButton(styleSet, "↺", "Reset"))
	return lipgloss.JoinHorizontal(lipgloss.Center, resume, styleSet.Canvas.Render("  "), reset)
}

// pickerView renders the color picker wrapper: the toggle button and, when
// open, one chip per swatch.
func (m model) pickerView(styleSet styles.Styles) string {
	toggle := m.zones.Mark(string(input.TargetPickerToggle), components.RenderButton(styleSet, "◐", "Colors"))
	parts := []string{toggle}

	if m.picker.IsOpen() {
		current := m.picker.Current()
		chips := make([]string, 0, len(m.picker.Palette()))
		for i, swatch := range m.picker.Palette() {
			chip := components.RenderSwatch(swatch, i, swatch.Name == current.Name)
			chips = append(chips, m.zones.Mark(swatchZone(i), chip))
		}
		parts = append(parts, strings.Join(chips, styleSet.Canvas.Render(" ")))
	}

	return m.zones.Mark(string(input.TargetPicker), lipgloss.JoinVertical(lipgloss.Center, parts...))
}

func (m model) smallViewLines(styleSet styles.Styles) []string {
	snap := m.timer.Snapshot()
	message := fmt.Sprintf("Terminal too small (%dx%d).", m.width, m.height)
	hint := fmt.Sprintf("Resize to at least %dx%d.", minWidth, minHeight)

	return []string{
		components.DigitStyle(styleSet, snap).Render(snap.Display),
		styleSet.Warning.Render(message),
		styleSet.Muted.Render(hint),
		styleSet.Muted.Render("Press q to quit."),
	}
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
