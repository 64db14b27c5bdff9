// Package todo implements persisted todo items and their manager.
//
// Todos are stored in a single JSON file and written through on every
// mutation. Lookups accept an exact ID or any leading prefix; prefix
// ties resolve to the first-inserted todo.
package todo

import (
	"errors"
	"fmt"
	"time"

	"github.com/pomodoro-cli/pomo/internal/ids"
)

// MaxTitleLength is the maximum allowed length for a todo title.
const MaxTitleLength = 500

var (
	// ErrEmptyTitle is returned when a todo title is empty.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrTitleTooLong is returned when a todo title exceeds MaxTitleLength.
	ErrTitleTooLong = errors.New("title exceeds maximum length")
)

// Todo represents a single task.
type Todo struct {
	// ID is a unique identifier (8-char, freshly generated).
	ID string `json:"id"`

	// Title is the task text, immutable after creation.
	Title string `json:"title"`

	// Completed is set exactly once via Complete.
	Completed bool `json:"completed"`

	// CreatedAt is when the todo was created.
	CreatedAt time.Time `json:"created_at"`

	// CompletedAt is when the todo completed (nil until then).
	CompletedAt *time.Time `json:"completed_at"`

	// TimerMinutes records the duration of a timer requested at
	// creation time (nil if none). Informational only.
	TimerMinutes *int `json:"timer_minutes"`
}

func newTodo(title string, timerMinutes *int) Todo {
	return Todo{
		ID:           ids.New(),
		Title:        title,
		CreatedAt:    time.Now(),
		TimerMinutes: timerMinutes,
	}
}

// ValidateTitle checks if the title is valid.
func ValidateTitle(title string) error {
	if title == "" {
		return ErrEmptyTitle
	}
	if len(title) > MaxTitleLength {
		return fmt.Errorf("%w: %d > %d", ErrTitleTooLong, len(title), MaxTitleLength)
	}
	return nil
}
