// Package components provides reusable TUI components.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// BigClockHeight is the number of rows a big clock occupies.
const BigClockHeight = 5

var glyphs = map[rune][BigClockHeight]string{
	'0': {"█████", "█   █", "█   █", "█   █", "█████"},
	'1': {"  ██ ", "   █ ", "   █ ", "   █ ", "  ███"},
	'2': {"█████", "    █", "█████", "█    ", "█████"},
	'3': {"█████", "    █", " ████", "    █", "█████"},
	'4': {"█   █", "█   █", "█████", "    █", "    █"},
	'5': {"█████", "█    ", "█████", "    █", "█████"},
	'6': {"█████", "█    ", "█████", "█   █", "█████"},
	'7': {"█████", "    █", "   █ ", "  █  ", "  █  "},
	'8': {"█████", "█   █", "█████", "█   █", "█████"},
	'9': {"█████", "█   █", "█████", "    █", "█████"},
	':': {"   ", " █ ", "   ", " █ ", "   "},
}

// RenderBigClock draws display (e.g. "18:00") in block glyphs.
// Runes without a glyph are skipped.
func RenderBigClock(style lipgloss.Style, display string) string {
	var rows [BigClockHeight][]string
	for _, r := range display {
		g, ok := glyphs[r]
		if !ok {
			continue
		}
		for i := range rows {
			rows[i] = append(rows[i], g[i])
		}
	}

	lines := make([]string, BigClockHeight)
	for i := range rows {
		lines[i] = style.Render(strings.Join(rows[i], " "))
	}
	return strings.Join(lines, "\n")
}

// BigClockWidth returns the cell width of RenderBigClock(display).
func BigClockWidth(display string) int {
	width, count := 0, 0
	for _, r := range display {
		g, ok := glyphs[r]
		if !ok {
			continue
		}
		width += lipgloss.Width(g[0])
		count++
	}
	if count > 1 {
		width += count - 1
	}
	return width
}
