// Package appearance holds the color palette, the dark-background set and the picker state.
package appearance

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownSwatch is returned when a swatch name or index is not in the palette.
var ErrUnknownSwatch = errors.New("unknown swatch")

// Swatch is one background/text pair offered by the picker.
type Swatch struct {
	Name       string
	Background string
	Text       string
}

// Dark reports whether the background is in the dark set.
func (s Swatch) Dark() bool {
	return IsDark(s.Background)
}

// DarkBackgrounds are the backgrounds that get the dark logo.
var DarkBackgrounds = []string{
	"#000000",
	"#1a1a2e",
	"#0f0f23",
	"#1b1f3b",
	"#0d1117",
	"#282c34",
}

// IsDark reports membership in DarkBackgrounds, ignoring case and surrounding space.
func IsDark(background string) bool {
	bg := strings.ToLower(strings.TrimSpace(background))
	for _, dark := range DarkBackgrounds {
		if bg == dark {
			return true
		}
	}
	return false
}

// Palette is the fixed list of swatches in picker order.
var Palette = []Swatch{
	{Name: "midnight", Background: "#000000", Text: "#FFFFFF"},
	{Name: "night", Background: "#1A1A2E", Text: "#E94560"},
	{Name: "abyss", Background: "#0F0F23", Text: "#CCCCCC"},
	{Name: "indigo", Background: "#1B1F3B", Text: "#F0F0F0"},
	{Name: "github", Background: "#0D1117", Text: "#C9D1D9"},
	{Name: "onedark", Background: "#282C34", Text: "#ABB2BF"},
	{Name: "paper", Background: "#FFFFFF", Text: "#111111"},
	{Name: "cream", Background: "#F5F0E1", Text: "#2B2B2B"},
	{Name: "sky", Background: "#DBEAFE", Text: "#1E3A8A"},
}

// Lookup finds a swatch by name, case-insensitively.
func Lookup(palette []Swatch, name string) (Swatch, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for _, s := range palette {
		if strings.ToLower(s.Name) == want {
			return s, nil
		}
	}
	return Swatch{}, fmt.Errorf("%w: %q", ErrUnknownSwatch, name)
}
