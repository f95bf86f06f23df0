package tui

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/opencode-ai/stagetimer/internal/countdown"
)

// tickMsg carries a countdown tick request into the update loop.
type tickMsg countdown.TickRequest

// waitForTick returns a command that delivers the next tick request.
func waitForTick(ticks <-chan countdown.TickRequest) tea.Cmd {
	return func() tea.Msg {
		req, ok := <-ticks
		if !ok {
			return nil
		}
		return tickMsg(req)
	}
}

// fullscreenChangedMsg reports that the terminal finished switching screens.
type fullscreenChangedMsg struct {
	Active bool
}

// bellCmd rings the terminal bell once.
func bellCmd(out io.Writer) tea.Cmd {
	return func() tea.Msg {
		if out != nil {
			fmt.Fprint(out, "\a")
		}
		return nil
	}
}
