package main

import (
	"fmt"
	"os"

	"github.com/pomodoro-cli/pomo/internal/config"
	"github.com/pomodoro-cli/pomo/internal/paths"
	"github.com/pomodoro-cli/pomo/timer"
	"github.com/pomodoro-cli/pomo/todo"
)

// app holds the managers and configuration for one invocation. Commands
// construct it once and pass it along instead of sharing globals.
type app struct {
	cfg    *config.Config
	timers *timer.Manager
	todos  *todo.Manager
}

func newApp() (*app, error) {
	configPath, err := paths.DefaultConfigPath()
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	dataDir := cfg.Storage.DataDir
	if dataDir == "" {
		dataDir, err = paths.DefaultDataDir()
		if err != nil {
			return nil, err
		}
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	return &app{
		cfg:    cfg,
		timers: timer.NewManager(timer.ManagerOptions{}),
		todos:  todo.NewManager(todo.NewStore(dataDir)),
	}, nil
}
