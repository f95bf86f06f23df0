// Package scheduler provides cancellable repeating tasks on top of a clockwork clock.
package scheduler

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/opencode-ai/stagetimer/internal/logging"
)

// DefaultInterval is the tick period used when a non-positive interval is requested.
const DefaultInterval = time.Second

// Handle is a live repeating task.
// Cancel is idempotent and safe to call from any goroutine.
type Handle struct {
	id       uint64
	interval time.Duration
	done     chan struct{}
	once     sync.Once
	canceled atomic.Bool
	onCancel func(*Handle)
	fn       func()
}

func newHandle(id uint64, interval time.Duration, fn func(), onCancel func(*Handle)) *Handle {
	return &Handle{
		id:       id,
		interval: interval,
		done:     make(chan struct{}),
		onCancel: onCancel,
		fn:       fn,
	}
}

// ID identifies the handle within its scheduler. IDs are never reused.
func (h *Handle) ID() uint64 {
	if h == nil {
		return 0
	}
	return h.id
}

// Interval returns the tick period.
func (h *Handle) Interval() time.Duration {
	if h == nil {
		return 0
	}
	return h.interval
}

// Cancel stops the task. After Cancel returns no new invocation starts;
// one that was already running is allowed to finish.
func (h *Handle) Cancel() {
	if h == nil {
		return
	}
	h.once.Do(func() {
		h.canceled.Store(true)
		close(h.done)
		if h.onCancel != nil {
			h.onCancel(h)
		}
	})
}

// Canceled reports whether Cancel has been called.
func (h *Handle) Canceled() bool {
	if h == nil {
		return true
	}
	return h.canceled.Load()
}

// Done is closed when the handle is canceled.
func (h *Handle) Done() <-chan struct{} {
	if h == nil {
		return nil
	}
	return h.done
}

func (h *Handle) invoke() bool {
	if h.canceled.Load() {
		return false
	}
	h.fn()
	return true
}

// registry tracks live handles for a scheduler.
type registry struct {
	mu     sync.Mutex
	nextID uint64
	live   map[uint64]*Handle
}

func (r *registry) add(interval time.Duration, fn func()) *Handle {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.live == nil {
		r.live = make(map[uint64]*Handle)
	}
	r.nextID++
	h := newHandle(r.nextID, interval, fn, r.remove)
	r.live[h.id] = h
	return h
}

func (r *registry) remove(h *Handle) {
	r.mu.Lock()
	delete(r.live, h.id)
	r.mu.Unlock()
}

func (r *registry) snapshot() []*Handle {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*Handle, 0, len(r.live))
	for _, h := range r.live {
		out = append(out, h)
	}
	return out
}

func (r *registry) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.live)
}

// Scheduler runs each repeating task on its own goroutine driven by a clock ticker.
type Scheduler struct {
	clock  clockwork.Clock
	logger zerolog.Logger
	reg    registry
	wg     sync.WaitGroup
}

// New creates a Scheduler. A nil clock means the real clock.
func New(clock clockwork.Clock) *Scheduler {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Scheduler{
		clock:  clock,
		logger: logging.Component("scheduler"),
	}
}

// Every calls fn once per interval until the returned handle is canceled.
func (s *Scheduler) Every(interval time.Duration, fn func()) *Handle {
	if interval <= 0 {
		interval = DefaultInterval
	}

	h := s.reg.add(interval, fn)
	ticker := s.clock.NewTicker(interval)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer ticker.Stop()
		for {
			select {
			case <-h.done:
				return
			case <-ticker.Chan():
				if !h.invoke() {
					return
				}
			}
		}
	}()

	s.logger.Debug().
		Uint64("handle", h.id).
		Dur("interval", interval).
		Msg("repeating task started")
	return h
}

// Active returns the number of live handles.
func (s *Scheduler) Active() int {
	return s.reg.count()
}

// Close cancels every live handle. It does not wait for their goroutines.
func (s *Scheduler) Close() {
	for _, h := range s.reg.snapshot() {
		h.Cancel()
	}
	s.logger.Debug().Msg("scheduler closed")
}

// Wait blocks until every handle goroutine has exited.
func (s *Scheduler) Wait() {
	s.wg.Wait()
}

// Manual is a scheduler whose handles only fire when Fire is called.
// It is meant for tests and for driving a controller from a single goroutine.
type Manual struct {
	reg registry
}

// NewManual creates an empty Manual scheduler.
func NewManual() *Manual {
	return &Manual{}
}

// Every registers fn. The interval is recorded but not used.
func (m *Manual) Every(interval time.Duration, fn func()) *Handle {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return m.reg.add(interval, fn)
}

// Fire invokes every live handle once and returns how many ran.
func (m *Manual) Fire() int {
	ran := 0
	for _, h := range m.reg.snapshot() {
		if h.invoke() {
			ran++
		}
	}
	return ran
}

// Active returns the number of live handles.
func (m *Manual) Active() int {
	return m.reg.count()
}
