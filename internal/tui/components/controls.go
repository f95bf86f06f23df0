package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/stagetimer/internal/appearance"
	"github.com/opencode-ai/stagetimer/internal/tui/styles"
)

// RenderButton renders a bordered button label.
func RenderButton(styleSet styles.Styles, icon, label string) string {
	text := label
	if icon != "" {
		text = icon + " " + label
	}
	return styleSet.Button.Render(text)
}

// RenderSwatch renders one palette entry as a colored chip numbered for its key.
func RenderSwatch(swatch appearance.Swatch, index int, selected bool) string {
	marker := " "
	if selected {
		marker = "•"
	}
	style := lipgloss.NewStyle().
		Background(lipgloss.Color(swatch.Background)).
		Foreground(lipgloss.Color(swatch.Text)).
		Padding(0, 1)
	return style.Render(fmt.Sprintf("%d%s%s", index+1, marker, swatch.Name))
}
