package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/pomodoro-cli/pomo/internal/notify"
	"github.com/pomodoro-cli/pomo/session"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the interactive timer session",
	Args:  cobra.NoArgs,
	RunE:  runInteractive,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runInteractive(cmd *cobra.Command, args []string) error {
	application, err := newApp()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	notifier := notify.Send
	if !application.cfg.Notify.Enabled {
		notifier = func(title, message string) error { return nil }
	}

	s := session.New(application.timers, application.todos, session.Options{
		RefreshInterval: application.cfg.RefreshInterval(),
		Notify:          notifier,
		DefaultMinutes:  application.cfg.Timer.DefaultMinutes,
	})
	return s.Run(ctx)
}
