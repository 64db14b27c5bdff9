package timer

import (
	"errors"
	"sync"
	"time"

	"github.com/pomodoro-cli/pomo/internal/ids"
)

// DefaultTickInterval is how often running timers decrement.
const DefaultTickInterval = time.Second

// MaxMinutes is the longest duration a timer may run, in minutes.
const MaxMinutes = 7 * 24 * 60

var (
	// ErrNegativeDuration is returned when a timer is added with a
	// negative duration.
	ErrNegativeDuration = errors.New("timer duration cannot be negative")

	// ErrDurationTooLong is returned when a timer is added with a
	// duration over MaxMinutes.
	ErrDurationTooLong = errors.New("timer duration cannot exceed one week")
)

// TickFunc is invoked after every per-second decrement of any timer.
type TickFunc func()

// CompleteFunc is invoked exactly once when a timer reaches zero, with a
// snapshot of the timer's final state.
type CompleteFunc func(Timer)

// ManagerOptions configures a Manager.
type ManagerOptions struct {
	// TickInterval overrides the countdown interval. Zero means
	// DefaultTickInterval. Tests shrink it to run countdowns quickly.
	TickInterval time.Duration
}

// Manager owns a set of timers and runs one countdown goroutine per
// started timer. All state is guarded by a single mutex; callbacks are
// always invoked outside it.
type Manager struct {
	mu           sync.Mutex
	timers       map[string]*Timer
	order        []string
	runs         map[string]*run
	tickInterval time.Duration
	onTick       TickFunc
	onComplete   CompleteFunc
}

// run tracks a live countdown goroutine. stopped is flipped under the
// manager lock so cancellation never races a decrement.
type run struct {
	stop    chan struct{}
	stopped bool
}

// NewManager creates a Manager with no timers.
func NewManager(opts ManagerOptions) *Manager {
	interval := opts.TickInterval
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &Manager{
		timers:       make(map[string]*Timer),
		runs:         make(map[string]*run),
		tickInterval: interval,
	}
}

// SetCallbacks registers optional tick and completion callbacks. Either
// may be nil.
func (m *Manager) SetCallbacks(onTick TickFunc, onComplete CompleteFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onTick = onTick
	m.onComplete = onComplete
}

// AddTimer creates a new timer. The timer does not count down until
// started.
func (m *Manager) AddTimer(title string, minutes int, todoID string) (Timer, error) {
	if minutes < 0 {
		return Timer{}, ErrNegativeDuration
	}
	if minutes > MaxMinutes {
		return Timer{}, ErrDurationTooLong
	}

	t := newTimer(title, minutes, todoID)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.timers[t.ID] = &t
	m.order = append(m.order, t.ID)
	return t, nil
}

// StartTimer begins the countdown for the timer matching id exactly or
// by prefix. Returns false if there is no match or a countdown for that
// timer is already active.
func (m *Manager) StartTimer(id string) bool {
	m.mu.Lock()
	fullID := m.resolveLocked(id)
	if fullID == "" {
		m.mu.Unlock()
		return false
	}
	if _, active := m.runs[fullID]; active {
		m.mu.Unlock()
		return false
	}

	r := &run{stop: make(chan struct{})}
	m.runs[fullID] = r
	m.mu.Unlock()

	go m.runTimer(fullID, r)
	return true
}

// PauseTimer sets the paused flag on the matching timer. The countdown
// goroutine observes the flag at its next tick and exits; remaining time
// is preserved for a later resume.
func (m *Manager) PauseTimer(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	fullID := m.resolveLocked(id)
	if fullID == "" {
		return false
	}
	m.timers[fullID].Paused = true
	return true
}

// ResumeTimer clears the paused flag and ensures a countdown is active
// for the matching timer. Resuming an already-running timer is a no-op
// success.
func (m *Manager) ResumeTimer(id string) bool {
	m.mu.Lock()
	fullID := m.resolveLocked(id)
	if fullID == "" {
		m.mu.Unlock()
		return false
	}
	m.timers[fullID].Paused = false
	m.mu.Unlock()

	m.StartTimer(fullID)
	return true
}

// RemoveTimer cancels any active countdown for the matching timer and
// deletes it. Cancellation never fires the completion callback.
func (m *Manager) RemoveTimer(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	fullID := m.resolveLocked(id)
	if fullID == "" {
		return false
	}

	m.cancelRunLocked(fullID)
	delete(m.timers, fullID)
	m.order = removeID(m.order, fullID)
	return true
}

// GetTimer returns a snapshot of the matching timer.
func (m *Manager) GetTimer(id string) (Timer, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	fullID := m.resolveLocked(id)
	if fullID == "" {
		return Timer{}, false
	}
	return *m.timers[fullID], true
}

// GetActiveTimers returns snapshots of all incomplete timers in
// insertion order.
func (m *Manager) GetActiveTimers() []Timer {
	m.mu.Lock()
	defer m.mu.Unlock()

	active := make([]Timer, 0, len(m.order))
	for _, id := range m.order {
		if t := m.timers[id]; !t.IsComplete() {
			active = append(active, *t)
		}
	}
	return active
}

// GetAllTimers returns snapshots of all timers in insertion order.
func (m *Manager) GetAllTimers() []Timer {
	m.mu.Lock()
	defer m.mu.Unlock()

	all := make([]Timer, 0, len(m.order))
	for _, id := range m.order {
		all = append(all, *m.timers[id])
	}
	return all
}

// HasActiveTimers reports whether any timer is still counting down.
func (m *Manager) HasActiveTimers() bool {
	return len(m.GetActiveTimers()) > 0
}

// StartAll starts every timer without an active countdown.
func (m *Manager) StartAll() {
	m.mu.Lock()
	pending := make([]string, 0, len(m.order))
	for _, id := range m.order {
		if _, active := m.runs[id]; !active {
			pending = append(pending, id)
		}
	}
	m.mu.Unlock()

	for _, id := range pending {
		m.StartTimer(id)
	}
}

// StopAll cancels every active countdown. Timer state is preserved but
// no further ticks occur.
func (m *Manager) StopAll() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id := range m.runs {
		m.cancelRunLocked(id)
	}
}

// CleanupCompleted removes every complete timer and returns how many
// were removed.
func (m *Manager) CleanupCompleted() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	kept := m.order[:0]
	removed := 0
	for _, id := range m.order {
		if !m.timers[id].IsComplete() {
			kept = append(kept, id)
			continue
		}
		m.cancelRunLocked(id)
		delete(m.timers, id)
		removed++
	}
	m.order = kept
	return removed
}

// PrefixLengths returns the shortest unique prefix length for each
// timer ID.
func (m *Manager) PrefixLengths() map[string]int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return ids.UniquePrefixLengths(m.order)
}

func (m *Manager) runTimer(id string, r *run) {
	ticker := time.NewTicker(m.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stop:
			return
		case <-ticker.C:
			if m.tick(id, r) {
				return
			}
		}
	}
}

// tick advances the timer by one second. It returns true when the
// countdown goroutine should exit: on cancellation, pause, or
// completion.
func (m *Manager) tick(id string, r *run) bool {
	m.mu.Lock()

	if r.stopped {
		m.mu.Unlock()
		return true
	}

	t, ok := m.timers[id]
	if !ok {
		m.mu.Unlock()
		return true
	}

	if t.Paused {
		delete(m.runs, id)
		m.mu.Unlock()
		return true
	}

	if t.RemainingSeconds > 0 {
		t.RemainingSeconds--
	}
	onTick := m.onTick

	var onComplete CompleteFunc
	var final Timer
	done := t.IsComplete()
	if done {
		delete(m.runs, id)
		if !t.fired {
			t.fired = true
			onComplete = m.onComplete
			final = *t
		}
	}
	m.mu.Unlock()

	if onTick != nil {
		onTick()
	}
	if onComplete != nil {
		onComplete(final)
	}
	return done
}

// resolveLocked returns the full ID for an exact or prefix match, or ""
// if nothing matches. Prefix ties resolve to the first-inserted timer.
// Callers must hold the lock.
func (m *Manager) resolveLocked(id string) string {
	match, found := ids.MatchPrefix(m.order, id)
	if !found {
		return ""
	}
	return match
}

// cancelRunLocked stops the countdown goroutine for id, if any.
// Callers must hold the lock.
func (m *Manager) cancelRunLocked(id string) {
	r, ok := m.runs[id]
	if !ok {
		return
	}
	r.stopped = true
	close(r.stop)
	delete(m.runs, id)
}

func removeID(order []string, id string) []string {
	for i, candidate := range order {
		if candidate == id {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}
