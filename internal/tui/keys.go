package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap lists the bindings the model handles itself. Timer, picker and
// fullscreen keys are routed through input.Router; the bindings here exist
// so those keys can be matched and shown in help.
type keyMap struct {
	Toggle     key.Binding
	Reset      key.Binding
	Fullscreen key.Binding
	Picker     key.Binding
	Close      key.Binding
	Swatch     key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Toggle:     key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "pause/resume")),
		Reset:      key.NewBinding(key.WithKeys("r", "R"), key.WithHelp("r", "reset")),
		Fullscreen: key.NewBinding(key.WithKeys("f", "F"), key.WithHelp("f", "fullscreen")),
		Picker:     key.NewBinding(key.WithKeys("c", "C"), key.WithHelp("c", "colors")),
		Close:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close colors")),
		Swatch:     key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "pick color")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// routed reports whether msg belongs to input.Router.
func (k keyMap) routed() []key.Binding {
	return []key.Binding{k.Toggle, k.Reset, k.Fullscreen, k.Picker, k.Close, k.Swatch}
}
