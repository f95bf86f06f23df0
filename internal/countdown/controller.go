// Package countdown implements the presentation countdown state machine.
//
// A Controller is either running or stopped. While running it owns exactly one
// repeating scheduler handle that requests a tick every second. Ticks are not
// applied on the scheduler goroutine: each request is handed to a dispatcher
// (normally the UI event loop), which calls HandleTick. Requests carry the
// generation of the handle that produced them, so a tick that was in flight
// when Stop ran is dropped instead of decrementing a paused timer.
//
// Controller is not safe for concurrent use; all methods must be called from
// the goroutine that owns it.
package countdown

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/opencode-ai/stagetimer/internal/events"
	"github.com/opencode-ai/stagetimer/internal/logging"
	"github.com/opencode-ai/stagetimer/internal/models"
	"github.com/opencode-ai/stagetimer/internal/scheduler"
)

// Scheduler starts repeating tasks. *scheduler.Scheduler and *scheduler.Manual implement it.
type Scheduler interface {
	Every(interval time.Duration, fn func()) *scheduler.Handle
}

// Config holds the countdown constants. Durations are truncated to whole seconds.
type Config struct {
	Initial time.Duration
	Warning time.Duration
	Danger  time.Duration

	// Interval is the tick period. Zero means one second.
	Interval time.Duration
}

// TickRequest asks the owner to apply one tick.
type TickRequest struct {
	Generation uint64

	canceled <-chan struct{}
}

// Canceled is closed once the handle that produced the request stops.
// Dispatchers that block must also select on it. Nil for hand-built requests.
func (r TickRequest) Canceled() <-chan struct{} {
	return r.canceled
}

// Option configures a Controller.
type Option func(*Controller)

// WithDispatcher routes tick requests through fn instead of applying them on
// the scheduler goroutine. fn must eventually call HandleTick on the owning
// goroutine, and must return once req.Canceled() is closed.
func WithDispatcher(fn func(TickRequest)) Option {
	return func(c *Controller) {
		c.dispatch = fn
	}
}

// WithRecorder records lifecycle events.
func WithRecorder(rec *events.Recorder) Option {
	return func(c *Controller) {
		c.recorder = rec
	}
}

// WithLogger overrides the component logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// Controller owns one countdown.
type Controller struct {
	initial  int
	warning  int
	danger   int
	interval time.Duration

	remaining  int
	running    bool
	handle     *scheduler.Handle
	stop       chan struct{}
	generation uint64

	sched    Scheduler
	dispatch func(TickRequest)
	recorder *events.Recorder
	logger   zerolog.Logger

	nextSub     int
	subscribers map[int]func(Snapshot)
	order       []int
}

// New creates a stopped controller holding the configured initial time.
// Call Start to begin counting down.
func New(cfg Config, sched Scheduler, opts ...Option) (*Controller, error) {
	if sched == nil {
		return nil, fmt.Errorf("scheduler is required")
	}
	initial := int(cfg.Initial / time.Second)
	if initial < 1 {
		return nil, fmt.Errorf("initial duration must be at least 1s, got %s", cfg.Initial)
	}
	if cfg.Warning < 0 || cfg.Danger < 0 {
		return nil, fmt.Errorf("thresholds must not be negative")
	}
	interval := cfg.Interval
	if interval <= 0 {
		interval = scheduler.DefaultInterval
	}

	c := &Controller{
		initial:     initial,
		warning:     int(cfg.Warning / time.Second),
		danger:      int(cfg.Danger / time.Second),
		interval:    interval,
		remaining:   initial,
		sched:       sched,
		logger:      logging.Component("countdown"),
		subscribers: make(map[int]func(Snapshot)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Start resumes the countdown. It is a no-op while already running.
func (c *Controller) Start() {
	if c.running {
		return
	}
	c.running = true
	c.generation++
	gen := c.generation
	stop := make(chan struct{})
	c.stop = stop
	c.handle = c.sched.Every(c.interval, func() {
		c.deliver(TickRequest{Generation: gen, canceled: stop})
	})

	c.logger.Debug().Int("remaining", c.remaining).Uint64("generation", gen).Msg("countdown started")
	c.record(models.EventTypeTimerStarted)
	c.publish()
}

// Stop pauses the countdown and cancels the repeating tick. Safe to call when stopped.
func (c *Controller) Stop() {
	if c.halt() {
		c.logger.Debug().Int("remaining", c.remaining).Msg("countdown paused")
		c.record(models.EventTypeTimerPaused)
	}
	c.publish()
}

// Toggle stops a running countdown or starts a stopped one.
func (c *Controller) Toggle() {
	if c.running {
		c.Stop()
		return
	}
	c.Start()
}

// Reset restores the initial duration and starts counting down again.
func (c *Controller) Reset() {
	c.halt()
	c.remaining = c.initial
	c.logger.Debug().Int("remaining", c.remaining).Msg("countdown reset")
	c.record(models.EventTypeTimerReset)
	c.publish()
	c.Start()
}

// HandleTick applies a tick request. It reports false for requests from a
// handle that is no longer live.
func (c *Controller) HandleTick(req TickRequest) bool {
	if !c.running || c.handle == nil || req.Generation != c.generation {
		c.logger.Debug().
			Uint64("generation", req.Generation).
			Uint64("live", c.generation).
			Msg("dropping stale tick")
		return false
	}
	c.tick()
	return true
}

func (c *Controller) tick() {
	if c.remaining <= 0 {
		c.Stop()
		return
	}
	c.remaining--
	if c.remaining == 0 {
		c.halt()
		c.logger.Info().Msg("countdown expired")
		c.record(models.EventTypeTimerExpired)
	}
	c.publish()
}

func (c *Controller) deliver(req TickRequest) {
	if c.dispatch != nil {
		c.dispatch(req)
		return
	}
	c.HandleTick(req)
}

// halt stops the repeating task and reports whether the controller was running.
func (c *Controller) halt() bool {
	wasRunning := c.running
	c.running = false
	if c.handle != nil {
		c.handle.Cancel()
		c.handle = nil
	}
	if c.stop != nil {
		close(c.stop)
		c.stop = nil
	}
	return wasRunning
}

// Running reports whether the countdown is active.
func (c *Controller) Running() bool {
	return c.running
}

// Remaining returns the seconds left.
func (c *Controller) Remaining() int {
	return c.remaining
}

// Initial returns the configured starting seconds.
func (c *Controller) Initial() int {
	return c.initial
}

// Snapshot computes the render-ready state.
func (c *Controller) Snapshot() Snapshot {
	return newSnapshot(c.remaining, c.running, c.warning, c.danger)
}

// Subscribe registers fn to receive a snapshot after every state change.
// The returned func removes the subscription.
func (c *Controller) Subscribe(fn func(Snapshot)) func() {
	id := c.nextSub
	c.nextSub++
	c.subscribers[id] = fn
	c.order = append(c.order, id)
	return func() {
		if _, ok := c.subscribers[id]; !ok {
			return
		}
		delete(c.subscribers, id)
		for i, existing := range c.order {
			if existing == id {
				c.order = append(c.order[:i], c.order[i+1:]...)
				break
			}
		}
	}
}

func (c *Controller) publish() {
	if len(c.order) == 0 {
		return
	}
	snap := c.Snapshot()
	ids := append([]int(nil), c.order...)
	for _, id := range ids {
		if fn, ok := c.subscribers[id]; ok {
			fn(snap)
		}
	}
}

func (c *Controller) record(eventType models.EventType) {
	if c.recorder == nil {
		return
	}
	snap := c.Snapshot()
	c.recorder.Timer(eventType, models.TimerPayload{
		Remaining: snap.Remaining,
		Display:   snap.Display,
		Threshold: snap.Threshold.String(),
	})
}
