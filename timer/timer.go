// Package timer implements countdown timers and the manager that runs
// them concurrently.
//
// Each started timer counts down on its own goroutine, decrementing once
// per tick interval. The Manager owns all mutable timer state; callers
// only ever observe value copies.
package timer

import (
	"fmt"
	"time"

	"github.com/pomodoro-cli/pomo/internal/ids"
)

// Timer is a single countdown toward zero.
type Timer struct {
	// ID is a unique identifier (8-char, freshly generated).
	ID string `json:"id"`

	// Title is the display label.
	Title string `json:"title"`

	// TotalSeconds is the full duration of the countdown.
	TotalSeconds int `json:"total_seconds"`

	// RemainingSeconds counts down from TotalSeconds while running.
	RemainingSeconds int `json:"remaining_seconds"`

	// TodoID links the timer to a todo item (empty if none). The timer
	// does not own the todo; the link is used only on completion.
	TodoID string `json:"todo_id,omitempty"`

	// Paused gates whether the countdown advances.
	Paused bool `json:"paused"`

	// StartedAt is when the timer was created.
	StartedAt time.Time `json:"started_at"`

	// fired records that the completion callback already ran. Owned by
	// the Manager; guarded by its mutex.
	fired bool
}

func newTimer(title string, minutes int, todoID string) Timer {
	totalSeconds := minutes * 60
	return Timer{
		ID:               ids.New(),
		Title:            title,
		TotalSeconds:     totalSeconds,
		RemainingSeconds: totalSeconds,
		TodoID:           todoID,
		StartedAt:        time.Now(),
	}
}

// ElapsedSeconds returns how many seconds have ticked away.
func (t Timer) ElapsedSeconds() int {
	return t.TotalSeconds - t.RemainingSeconds
}

// Progress returns elapsed/total in [0, 1]. A zero-length timer is
// complete by definition, so its progress is 1.
func (t Timer) Progress() float64 {
	if t.TotalSeconds == 0 {
		return 1.0
	}
	return float64(t.ElapsedSeconds()) / float64(t.TotalSeconds)
}

// IsComplete reports whether the countdown has reached zero.
func (t Timer) IsComplete() bool {
	return t.RemainingSeconds <= 0
}

// FormatRemaining formats the remaining time as MM:SS.
func (t Timer) FormatRemaining() string {
	remaining := t.RemainingSeconds
	if remaining < 0 {
		remaining = 0
	}
	return fmt.Sprintf("%02d:%02d", remaining/60, remaining%60)
}
