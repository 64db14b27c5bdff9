// Package session runs the interactive mode: a command loop, a periodic
// display refresh, and timer completion handling, all multiplexed over
// the shared timer and todo managers.
package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pomodoro-cli/pomo/internal/notify"
	"github.com/pomodoro-cli/pomo/internal/ui"
	"github.com/pomodoro-cli/pomo/timer"
	"github.com/pomodoro-cli/pomo/todo"
)

// DefaultRefreshInterval is how often the display redraws.
const DefaultRefreshInterval = 500 * time.Millisecond

// Notifier delivers a best-effort desktop notification.
type Notifier func(title, message string) error

// Options configures a Session. Zero values fall back to stdin/stdout,
// the default refresh interval, and desktop notifications.
type Options struct {
	Input           io.Reader
	Output          io.Writer
	RefreshInterval time.Duration
	Notify          Notifier
	DefaultMinutes  int
}

// Session owns the interactive loop. Commands and rendering run on the
// loop goroutine; countdown goroutines only touch the session through
// the completions channel.
type Session struct {
	timers *timer.Manager
	todos  *todo.Manager

	in             io.Reader
	out            io.Writer
	refresh        time.Duration
	notify         Notifier
	defaultMinutes int

	completions chan timer.Timer
}

// New wires a session over the given managers and registers the
// completion callback.
func New(timers *timer.Manager, todos *todo.Manager, opts Options) *Session {
	s := &Session{
		timers:         timers,
		todos:          todos,
		in:             opts.Input,
		out:            opts.Output,
		refresh:        opts.RefreshInterval,
		notify:         opts.Notify,
		defaultMinutes: opts.DefaultMinutes,
		completions:    make(chan timer.Timer, 64),
	}
	if s.in == nil {
		s.in = os.Stdin
	}
	if s.out == nil {
		s.out = os.Stdout
	}
	if s.refresh <= 0 {
		s.refresh = DefaultRefreshInterval
	}
	if s.notify == nil {
		s.notify = notify.Send
	}
	if s.defaultMinutes <= 0 {
		s.defaultMinutes = 25
	}

	s.timers.SetCallbacks(nil, s.onComplete)
	return s
}

// onComplete runs on a countdown goroutine. It must not block, so the
// finished timer is handed to the loop over a buffered channel.
func (s *Session) onComplete(t timer.Timer) {
	select {
	case s.completions <- t:
	default:
	}
}

// Run drives the interactive loop until the user quits, input reaches
// EOF, or ctx is cancelled.
func (s *Session) Run(ctx context.Context) error {
	s.print(ui.WelcomePanel())
	s.timers.StartAll()
	defer s.timers.StopAll()

	lines := make(chan string)
	go s.readInput(ctx, lines)

	ticker := time.NewTicker(s.refresh)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.print("\nGoodbye!\n")
			return nil
		case finished := <-s.completions:
			s.handleCompletion(finished)
		case <-ticker.C:
			s.render()
		case line, ok := <-lines:
			if !ok {
				s.print("Goodbye!\n")
				return nil
			}
			if quit := s.dispatch(line); quit {
				s.print("Goodbye!\n")
				return nil
			}
		}
	}
}

func (s *Session) readInput(ctx context.Context, lines chan<- string) {
	defer close(lines)

	scanner := bufio.NewScanner(s.in)
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return
		case lines <- scanner.Text():
		}
	}
}

// render snapshots manager state and redraws the display. Snapshots
// keep the draw independent of concurrent countdown ticks.
func (s *Session) render() {
	timers := s.timers.GetActiveTimers()
	pending := s.todos.ListPending()
	frame := ui.Frame(timers, pending, s.timers.PrefixLengths(), s.todos.PrefixLengths())
	s.print(ui.ClearScreen() + frame)
}

func (s *Session) handleCompletion(finished timer.Timer) {
	s.print(ui.CompletePanel(finished))

	if finished.TodoID != "" {
		if done, ok := s.todos.Complete(finished.TodoID); ok {
			s.printf("%s\n", ui.Success(fmt.Sprintf("Todo complete: %s", done.Title)))
		}
	}

	// Notification failures never surface to the loop.
	_ = s.notify("Timer complete", finished.Title)
}

func (s *Session) print(text string) {
	fmt.Fprint(s.out, text)
}

func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}
