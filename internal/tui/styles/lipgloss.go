package styles

import "github.com/charmbracelet/lipgloss"

// Styles contains lipgloss styles derived from theme tokens and the selected swatch.
type Styles struct {
	Theme  Theme
	Canvas lipgloss.Style
	Title  lipgloss.Style
	Text   lipgloss.Style
	Muted  lipgloss.Style
	Accent lipgloss.Style
	Button lipgloss.Style
	Border lipgloss.Style
	Focus  lipgloss.Style

	Warning lipgloss.Style
	Error   lipgloss.Style

	// Countdown digits per stage.
	DigitsNormal  lipgloss.Style
	DigitsWarning lipgloss.Style
	DigitsDanger  lipgloss.Style
	DigitsPulse   lipgloss.Style
	DigitsPaused  lipgloss.Style

	StatusRunning lipgloss.Style
	StatusPaused  lipgloss.Style
	StatusExpired lipgloss.Style
}

// DefaultStyles builds styles from the default theme.
func DefaultStyles() Styles {
	return BuildStyles(DefaultTheme)
}

// BuildStyles converts theme tokens into lipgloss styles on the theme background.
func BuildStyles(theme Theme) Styles {
	return BuildSwatchStyles(theme, theme.Tokens.Background, theme.Tokens.Text)
}

// BuildSwatchStyles converts theme tokens into lipgloss styles drawn on the
// given background with the given text color.
func BuildSwatchStyles(theme Theme, background, text string) Styles {
	tokens := theme.Tokens
	bg := lipgloss.Color(background)
	fg := lipgloss.Color(text)
	base := lipgloss.NewStyle().Background(bg)

	return Styles{
		Theme:         theme,
		Canvas:        base.Foreground(fg),
		Title:         base.Foreground(fg).Bold(true),
		Text:          base.Foreground(fg),
		Muted:         base.Foreground(fg).Faint(true),
		Accent:        base.Foreground(lipgloss.Color(tokens.Accent)),
		Button:        base.Foreground(fg).Bold(true).Padding(0, 1).BorderStyle(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(tokens.Border)).BorderBackground(bg),
		Border:        base.Foreground(lipgloss.Color(tokens.Border)),
		Focus:         base.Foreground(lipgloss.Color(tokens.Focus)).Bold(true),
		Warning:       base.Foreground(lipgloss.Color(tokens.Warning)),
		Error:         base.Foreground(lipgloss.Color(tokens.Error)),
		DigitsNormal:  base.Foreground(fg).Bold(true),
		DigitsWarning: base.Foreground(lipgloss.Color(tokens.Warning)).Bold(true),
		DigitsDanger:  base.Foreground(lipgloss.Color(tokens.Error)).Bold(true),
		DigitsPulse:   base.Foreground(lipgloss.Color(tokens.Error)).Faint(true),
		DigitsPaused:  base.Foreground(fg).Faint(true),
		StatusRunning: base.Foreground(lipgloss.Color(tokens.Success)),
		StatusPaused:  base.Foreground(lipgloss.Color(tokens.Warning)),
		StatusExpired: base.Foreground(lipgloss.Color(tokens.Error)).Bold(true),
	}
}
