package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/pomodoro-cli/pomo/internal/notify"
	"github.com/pomodoro-cli/pomo/internal/ui"
	"github.com/pomodoro-cli/pomo/timer"
	"github.com/spf13/cobra"
)

var startCmd = &cobra.Command{
	Use:   "start [minutes] [title...]",
	Short: "Run one timer in the foreground",
	Long: `Run one timer in the foreground until it completes or is interrupted.

Without a duration argument, the configured default duration is used.`,
	RunE: runStart,
}

func init() {
	rootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, args []string) error {
	application, err := newApp()
	if err != nil {
		return err
	}

	minutes, title, err := parseStartArgs(args, application.cfg.Timer.DefaultMinutes)
	if err != nil {
		return err
	}

	created, err := application.timers.AddTimer(title, minutes, "")
	if err != nil {
		return err
	}

	return runForegroundTimer(application, created)
}

// runForegroundTimer runs one timer to completion or interruption,
// completing any linked todo when it finishes.
func runForegroundTimer(application *app, created timer.Timer) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	done := make(chan timer.Timer, 1)
	application.timers.SetCallbacks(func() {
		if current, ok := application.timers.GetTimer(created.ID); ok {
			fmt.Printf("\r%s  %s", current.FormatRemaining(), current.Title)
		}
	}, func(finished timer.Timer) {
		done <- finished
	})

	application.timers.StartTimer(created.ID)
	fmt.Printf("Timer started: %s (%dm)\n", created.Title, created.TotalSeconds/60)

	select {
	case <-ctx.Done():
		application.timers.StopAll()
		fmt.Println("\nTimer cancelled.")
		return nil
	case finished := <-done:
		fmt.Printf("\r%s  %s\n", finished.FormatRemaining(), finished.Title)
		fmt.Println(ui.Success("Timer complete!"))
		if finished.TodoID != "" {
			if completed, ok := application.todos.Complete(finished.TodoID); ok {
				fmt.Println(ui.Success(fmt.Sprintf("Todo complete: %s", completed.Title)))
			}
		}
		if application.cfg.Notify.Enabled {
			_ = notify.Send("Timer complete", finished.Title)
		}
		return nil
	}
}

func parseStartArgs(args []string, fallbackMinutes int) (int, string, error) {
	minutes := fallbackMinutes
	rest := args
	if len(args) > 0 {
		parsed, err := strconv.Atoi(args[0])
		if err != nil {
			return 0, "", fmt.Errorf("duration must be a number of minutes, got %q", args[0])
		}
		minutes = parsed
		rest = args[1:]
	}

	if minutes <= 0 {
		return 0, "", fmt.Errorf("duration must be a positive number of minutes, got %d", minutes)
	}

	title := strings.Join(rest, " ")
	if title == "" {
		title = fmt.Sprintf("%d-minute timer", minutes)
	}
	return minutes, title, nil
}
