package tui

import tea "github.com/charmbracelet/bubbletea"

// altScreen implements screen.Platform on the terminal alternate screen.
// Requests queue a bubbletea command; the status flips only once the
// program reports the switch with fullscreenChangedMsg.
type altScreen struct {
	active  bool
	pending []tea.Cmd
}

func (a *altScreen) Fullscreen() bool {
	return a.active
}

func (a *altScreen) RequestFullscreen() error {
	a.pending = append(a.pending, tea.Sequence(tea.EnterAltScreen, func() tea.Msg {
		return fullscreenChangedMsg{Active: true}
	}))
	return nil
}

func (a *altScreen) ExitFullscreen() error {
	a.pending = append(a.pending, tea.Sequence(tea.ExitAltScreen, func() tea.Msg {
		return fullscreenChangedMsg{Active: false}
	}))
	return nil
}

// drain returns and clears queued commands.
func (a *altScreen) drain() []tea.Cmd {
	cmds := a.pending
	a.pending = nil
	return cmds
}
