// Package tui implements the stagetimer terminal user interface.
package tui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
	zone "github.com/lrstanley/bubblezone"
	"github.com/rs/zerolog"

	"github.com/opencode-ai/stagetimer/internal/appearance"
	"github.com/opencode-ai/stagetimer/internal/countdown"
	"github.com/opencode-ai/stagetimer/internal/events"
	"github.com/opencode-ai/stagetimer/internal/input"
	"github.com/opencode-ai/stagetimer/internal/logging"
	"github.com/opencode-ai/stagetimer/internal/scheduler"
	"github.com/opencode-ai/stagetimer/internal/screen"
	"github.com/opencode-ai/stagetimer/internal/tui/styles"
)

// Config wires the TUI.
type Config struct {
	Timer countdown.Config

	// Theme names a styles.Themes entry.
	Theme string

	// Color names the initial appearance.Palette swatch.
	Color string

	// Fullscreen starts the program on the alternate screen.
	Fullscreen bool

	// Mouse enables click handling.
	Mouse bool

	// Bell rings the terminal bell when the countdown expires.
	Bell bool

	// Scheduler drives ticks. Nil means a real-clock scheduler.
	Scheduler countdown.Scheduler

	// Recorder receives lifecycle events. May be nil.
	Recorder *events.Recorder

	// Output receives the bell. Nil means stdout.
	Output io.Writer
}

// Run launches the stagetimer TUI program and blocks until it exits.
func Run(cfg Config) error {
	var owned *scheduler.Scheduler
	if cfg.Scheduler == nil {
		owned = scheduler.New(clockwork.NewRealClock())
		cfg.Scheduler = owned
	}
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}

	m, err := newModel(cfg)
	if err != nil {
		return err
	}
	defer m.zones.Close()

	opts := []tea.ProgramOption{}
	if cfg.Fullscreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if cfg.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	program := tea.NewProgram(m, opts...)
	_, err = program.Run()

	m.timer.Stop()
	if owned != nil {
		owned.Close()
		owned.Wait()
	}
	return err
}

type model struct {
	width  int
	height int

	theme      styles.Theme
	timer      *countdown.Controller
	picker     *appearance.Selector
	platform   *altScreen
	fullscreen *screen.Toggle
	fsButton   *fullscreenButton
	router     *input.Router
	zones      *zone.Manager
	keys       keyMap
	ticks      chan countdown.TickRequest

	bell   bool
	mouse  bool
	output io.Writer
	logger zerolog.Logger
}

const (
	minWidth  = 40
	minHeight = 10

	// Big digits need this much room; smaller windows get plain MM:SS.
	bigClockMinWidth  = 44
	bigClockMinHeight = 16
)

func newModel(cfg Config) (model, error) {
	theme, err := styles.ThemeByName(cfg.Theme)
	if err != nil {
		return model{}, err
	}

	picker, err := appearance.NewSelector(appearance.Palette, cfg.Color, cfg.Recorder)
	if err != nil {
		return model{}, err
	}

	ticks := make(chan countdown.TickRequest, 1)
	timer, err := countdown.New(cfg.Timer, cfg.Scheduler,
		countdown.WithRecorder(cfg.Recorder),
		countdown.WithDispatcher(func(req countdown.TickRequest) {
			select {
			case ticks <- req:
			case <-req.Canceled():
			}
		}),
	)
	if err != nil {
		return model{}, err
	}

	// The picker wrapper is only visible while paused.
	timer.Subscribe(func(snap countdown.Snapshot) {
		if snap.Running {
			picker.Close()
		}
	})

	platform := &altScreen{active: cfg.Fullscreen}
	toggle := screen.NewToggle(platform, cfg.Recorder)
	button := newFullscreenButton(toggle.Active())
	toggle.Observe(button.update)

	m := model{
		theme:      theme,
		timer:      timer,
		picker:     picker,
		platform:   platform,
		fullscreen: toggle,
		fsButton:   button,
		router:     input.NewRouter(timer, picker, toggle),
		zones:      zone.New(),
		keys:       defaultKeyMap(),
		ticks:      ticks,
		bell:       cfg.Bell,
		mouse:      cfg.Mouse,
		output:     cfg.Output,
		logger:     logging.Component("tui"),
	}

	// Auto-start on launch.
	timer.Start()
	return m, nil
}

func (m model) Init() tea.Cmd {
	return waitForTick(m.ticks)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.logger.Debug().Int("remaining", m.timer.Remaining()).Msg("quit requested")
			return m, tea.Quit
		}
		if key.Matches(msg, m.keys.routed()...) {
			m.router.Key(msg.String())
			return m, m.platformCmds()
		}
	case tea.MouseMsg:
		if !m.mouse {
			return m, nil
		}
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		m.router.Click(m.hitTest(msg))
		return m, m.platformCmds()
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.fullscreen.Sync()
	case tea.ResumeMsg:
		// The terminal may have left the alternate screen while suspended.
		m.fullscreen.Sync()
	case fullscreenChangedMsg:
		m.platform.active = msg.Active
		m.fullscreen.Sync()
	case tickMsg:
		wasExpired := m.timer.Snapshot().Expired
		m.timer.HandleTick(countdown.TickRequest(msg))
		next := waitForTick(m.ticks)
		if m.bell && !wasExpired && m.timer.Snapshot().Expired {
			return m, tea.Batch(next, bellCmd(m.output))
		}
		return m, next
	}
	return m, nil
}

func (m model) platformCmds() tea.Cmd {
	cmds := m.platform.drain()
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// hitTest maps a mouse event to the innermost clickable target under it.
func (m model) hitTest(msg tea.MouseMsg) input.Click {
	for i := range m.picker.Palette() {
		if m.inZone(swatchZone(i), msg) {
			return input.Click{Target: input.TargetSwatch, Swatch: i}
		}
	}
	for _, target := range []input.Target{
		input.TargetPickerToggle,
		input.TargetResume,
		input.TargetReset,
		input.TargetFullscreen,
		input.TargetPicker,
		input.TargetDisplay,
	} {
		if m.inZone(string(target), msg) {
			return input.Click{Target: target}
		}
	}
	return input.Click{Target: input.TargetDocument}
}

func (m model) inZone(id string, msg tea.MouseMsg) bool {
	info := m.zones.Get(id)
	if info == nil || info.IsZero() {
		return false
	}
	return info.InBounds(msg)
}

func swatchZone(index int) string {
	return fmt.Sprintf("%s-%d", input.TargetSwatch, index)
}

// fullscreenButton holds the toggle control's icon and label. It is updated
// by the fullscreen observer, not recomputed on render.
type fullscreenButton struct {
	icon  string
	label string
}

func newFullscreenButton(active bool) *fullscreenButton {
	b := &fullscreenButton{}
	b.update(active)
	return b
}

func (b *fullscreenButton) update(active bool) {
	b.icon, b.label = screen.Label(active)
}
