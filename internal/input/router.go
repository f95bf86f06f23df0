// Package input routes clicks and key presses to the timer, the color picker
// and the fullscreen toggle.
//
// Clicks bubble from the clicked element outwards, like DOM events:
//
//	document
//	└── display (timer area)
//	    ├── resume, reset      (controls, shown while paused)
//	    ├── fullscreen
//	    └── picker             (color picker wrapper, shown while paused)
//	        ├── picker-toggle
//	        └── swatch
//
// Controls stop propagation so the display's pause handler never sees them.
package input

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/opencode-ai/stagetimer/internal/appearance"
	"github.com/opencode-ai/stagetimer/internal/logging"
)

// Target names a clickable element.
type Target string

const (
	TargetDocument     Target = "document"
	TargetDisplay      Target = "display"
	TargetResume       Target = "resume"
	TargetReset        Target = "reset"
	TargetFullscreen   Target = "fullscreen"
	TargetPicker       Target = "picker"
	TargetPickerToggle Target = "picker-toggle"
	TargetSwatch       Target = "swatch"
)

var parents = map[Target]Target{
	TargetDisplay:      TargetDocument,
	TargetResume:       TargetDisplay,
	TargetReset:        TargetDisplay,
	TargetFullscreen:   TargetDisplay,
	TargetPicker:       TargetDisplay,
	TargetPickerToggle: TargetPicker,
	TargetSwatch:       TargetPicker,
}

// Path returns target and its ancestors, innermost first.
func Path(target Target) []Target {
	path := []Target{target}
	for {
		parent, ok := parents[path[len(path)-1]]
		if !ok {
			break
		}
		path = append(path, parent)
	}
	if path[len(path)-1] != TargetDocument {
		path = append(path, TargetDocument)
	}
	return path
}

// Timer is the subset of the countdown controller the router drives.
type Timer interface {
	Start()
	Stop()
	Reset()
	Running() bool
}

// Picker is the subset of the appearance selector the router drives.
type Picker interface {
	Toggle()
	Close()
	IsOpen() bool
	Select(index int) (appearance.Swatch, error)
}

// Fullscreen toggles the platform fullscreen mode.
type Fullscreen interface {
	Toggle()
}

// Click is a pointer activation on a target. Swatch is the palette index for TargetSwatch.
type Click struct {
	Target Target
	Swatch int
}

// Result describes how an event was handled.
type Result struct {
	// Handled is set when some handler acted on the event.
	Handled bool

	// PreventDefault asks the host to skip its own default action for the key.
	PreventDefault bool

	// Contained is set when a handler stopped propagation before the document.
	Contained bool
}

// Key names understood by the router, as produced by tea.KeyMsg.String.
const (
	KeyToggle     = " "
	KeyReset      = "r"
	KeyFullscreen = "f"
	KeyPicker     = "c"
	KeyClose      = "esc"
)

// Router maps input to operations.
type Router struct {
	timer      Timer
	picker     Picker
	fullscreen Fullscreen
	logger     zerolog.Logger
}

// NewRouter creates a router. Any dependency may be nil to disable its controls.
func NewRouter(timer Timer, picker Picker, fullscreen Fullscreen) *Router {
	return &Router{
		timer:      timer,
		picker:     picker,
		fullscreen: fullscreen,
		logger:     logging.Component("input"),
	}
}

// Click bubbles a click along the target's path.
func (r *Router) Click(c Click) Result {
	var res Result
	for _, target := range Path(c.Target) {
		stop := r.handleClick(target, c, &res)
		if stop {
			res.Contained = true
			break
		}
	}
	r.logger.Debug().
		Str("target", string(c.Target)).
		Bool("handled", res.Handled).
		Bool("contained", res.Contained).
		Msg("click")
	return res
}

// handleClick runs one element's handler and reports whether it stopped propagation.
func (r *Router) handleClick(target Target, c Click, res *Result) bool {
	switch target {
	case TargetResume:
		if r.timer != nil {
			r.timer.Start()
			res.Handled = true
		}
		return true
	case TargetReset:
		if r.timer != nil {
			r.timer.Reset()
			res.Handled = true
		}
		return true
	case TargetFullscreen:
		if r.fullscreen != nil {
			r.fullscreen.Toggle()
			res.Handled = true
		}
		return true
	case TargetPickerToggle:
		if r.picker != nil {
			r.picker.Toggle()
			res.Handled = true
		}
		return true
	case TargetSwatch:
		if r.picker != nil {
			if _, err := r.picker.Select(c.Swatch); err == nil {
				res.Handled = true
			}
		}
		return true
	case TargetDisplay:
		if r.timer != nil && r.timer.Running() {
			r.timer.Stop()
			res.Handled = true
		}
		return false
	case TargetDocument:
		if r.picker != nil && r.picker.IsOpen() && !inPicker(c.Target) {
			r.picker.Close()
			res.Handled = true
		}
		return false
	default:
		return false
	}
}

func inPicker(target Target) bool {
	for _, t := range Path(target) {
		if t == TargetPicker {
			return true
		}
	}
	return false
}

// Key handles a key press.
func (r *Router) Key(key string) Result {
	var res Result
	switch key {
	case KeyToggle, "space":
		res.PreventDefault = true
		if r.timer != nil {
			if r.timer.Running() {
				r.timer.Stop()
			} else {
				r.timer.Start()
			}
			res.Handled = true
		}
	case KeyReset, strings.ToUpper(KeyReset):
		if r.timer != nil {
			r.timer.Reset()
			res.Handled = true
		}
	case KeyFullscreen, strings.ToUpper(KeyFullscreen):
		if r.fullscreen != nil {
			r.fullscreen.Toggle()
			res.Handled = true
		}
	case KeyPicker, strings.ToUpper(KeyPicker):
		// The picker button is only shown while paused.
		if r.picker != nil && (r.timer == nil || !r.timer.Running()) {
			r.picker.Toggle()
			res.Handled = true
		}
	case KeyClose:
		if r.picker != nil && r.picker.IsOpen() {
			r.picker.Close()
			res.Handled = true
		}
	default:
		if index, ok := swatchKey(key); ok && r.picker != nil && r.picker.IsOpen() {
			if _, err := r.picker.Select(index); err == nil {
				res.Handled = true
			}
		}
	}
	return res
}

// swatchKey maps "1".."9" to palette indexes 0..8.
func swatchKey(key string) (int, bool) {
	if len(key) != 1 || key[0] < '1' || key[0] > '9' {
		return 0, false
	}
	return int(key[0] - '1'), true
}
