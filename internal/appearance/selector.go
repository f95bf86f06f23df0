package appearance

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/opencode-ai/stagetimer/internal/events"
	"github.com/opencode-ai/stagetimer/internal/logging"
	"github.com/opencode-ai/stagetimer/internal/models"
)

// Selector is the color picker: an open/closed flag plus the applied swatch.
// It has no relation to the countdown.
type Selector struct {
	palette  []Swatch
	current  Swatch
	logo     Logo
	open     bool
	recorder *events.Recorder
	logger   zerolog.Logger
}

// NewSelector creates a closed picker with the named swatch applied.
// An empty name applies the first swatch.
func NewSelector(palette []Swatch, initial string, rec *events.Recorder) (*Selector, error) {
	if len(palette) == 0 {
		return nil, fmt.Errorf("palette is empty")
	}
	current := palette[0]
	if initial != "" {
		s, err := Lookup(palette, initial)
		if err != nil {
			return nil, err
		}
		current = s
	}
	return &Selector{
		palette:  palette,
		current:  current,
		logo:     LogoFor(current),
		recorder: rec,
		logger:   logging.Component("appearance"),
	}, nil
}

// Palette returns the swatches in picker order.
func (s *Selector) Palette() []Swatch {
	return s.palette
}

// Current returns the applied swatch.
func (s *Selector) Current() Swatch {
	return s.current
}

// Logo returns the logo variant for the applied swatch.
func (s *Selector) Logo() Logo {
	return s.logo
}

// IsOpen reports whether the picker is showing its swatches.
func (s *Selector) IsOpen() bool {
	return s.open
}

// Toggle opens a closed picker or closes an open one.
func (s *Selector) Toggle() {
	s.open = !s.open
}

// Close hides the swatches.
func (s *Selector) Close() {
	s.open = false
}

// Select applies the swatch at index and closes the picker.
func (s *Selector) Select(index int) (Swatch, error) {
	if index < 0 || index >= len(s.palette) {
		return Swatch{}, fmt.Errorf("%w: index %d", ErrUnknownSwatch, index)
	}
	s.apply(s.palette[index])
	return s.current, nil
}

// SelectName applies the named swatch and closes the picker.
func (s *Selector) SelectName(name string) (Swatch, error) {
	swatch, err := Lookup(s.palette, name)
	if err != nil {
		return Swatch{}, err
	}
	s.apply(swatch)
	return swatch, nil
}

func (s *Selector) apply(swatch Swatch) {
	s.current = swatch
	s.logo = LogoFor(swatch)
	s.open = false

	s.logger.Debug().
		Str("swatch", swatch.Name).
		Str("logo", s.logo.Asset()).
		Msg("appearance changed")
	if s.recorder != nil {
		s.recorder.Appearance(models.AppearanceChangedPayload{
			Swatch:     swatch.Name,
			Background: swatch.Background,
			Text:       swatch.Text,
			Dark:       swatch.Dark(),
		})
	}
}
