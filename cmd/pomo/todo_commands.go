package main

import (
	"fmt"
	"strings"

	"github.com/pomodoro-cli/pomo/internal/ui"
	"github.com/pomodoro-cli/pomo/timer"
	"github.com/spf13/cobra"
)

var todoCmd = &cobra.Command{
	Use:   "todo",
	Short: "Manage todos",
}

// todo add
var todoAddCmd = &cobra.Command{
	Use:   "add <title>...",
	Short: "Add a new todo",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTodoAdd,
}

var (
	todoAddTimerMinutes int
	todoAddStart        bool
)

// todo list
var todoListCmd = &cobra.Command{
	Use:   "list",
	Short: "List todos",
	Args:  cobra.NoArgs,
	RunE:  runTodoList,
}

var todoListAll bool

// todo done
var todoDoneCmd = &cobra.Command{
	Use:   "done <id>...",
	Short: "Mark one or more todos as completed",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTodoDone,
}

// todo delete
var todoDeleteCmd = &cobra.Command{
	Use:   "delete <id>...",
	Short: "Delete one or more todos",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTodoDelete,
}

// todo clear
var todoClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all completed todos",
	Args:  cobra.NoArgs,
	RunE:  runTodoClear,
}

func init() {
	rootCmd.AddCommand(todoCmd)
	todoCmd.AddCommand(todoAddCmd, todoListCmd, todoDoneCmd, todoDeleteCmd, todoClearCmd)

	todoAddCmd.Flags().IntVarP(&todoAddTimerMinutes, "timer", "t", 0, "associate a timer duration in minutes")
	todoAddCmd.Flags().BoolVarP(&todoAddStart, "start", "s", false, "run the associated timer in the foreground now")
	todoListCmd.Flags().BoolVarP(&todoListAll, "all", "a", false, "include completed todos")

	addTimerFlagAliases(todoAddCmd)
}

func runTodoAdd(cmd *cobra.Command, args []string) error {
	application, err := newApp()
	if err != nil {
		return err
	}

	title := strings.Join(args, " ")
	var timerMinutes *int
	if todoAddTimerMinutes > 0 {
		if todoAddTimerMinutes > timer.MaxMinutes {
			return fmt.Errorf("timer duration must be at most %d minutes, got %d", timer.MaxMinutes, todoAddTimerMinutes)
		}
		minutes := todoAddTimerMinutes
		timerMinutes = &minutes
	}

	created, err := application.todos.Add(title, timerMinutes)
	if err != nil {
		return err
	}

	if timerMinutes == nil {
		fmt.Printf("Added todo %s (%s)\n", created.Title, ui.ShortID(created.ID))
		return nil
	}

	fmt.Printf("Added todo %s with %dm timer (%s)\n", created.Title, *timerMinutes, ui.ShortID(created.ID))
	if !todoAddStart {
		return nil
	}

	linked, err := application.timers.AddTimer(created.Title, *timerMinutes, created.ID)
	if err != nil {
		return err
	}
	return runForegroundTimer(application, linked)
}

func runTodoList(cmd *cobra.Command, args []string) error {
	application, err := newApp()
	if err != nil {
		return err
	}

	fmt.Print(ui.FormatTodoTable(application.todos.ListAll(), application.todos.PrefixLengths(), todoListAll))

	counts := application.todos.Counts()
	fmt.Printf("%d todos: %d pending, %d completed\n", counts.Total, counts.Pending, counts.Completed)
	return nil
}

func runTodoDone(cmd *cobra.Command, args []string) error {
	application, err := newApp()
	if err != nil {
		return err
	}

	for _, id := range args {
		done, ok := application.todos.Complete(id)
		if !ok {
			return fmt.Errorf("no todo matching %q", id)
		}
		fmt.Printf("Completed: %s\n", done.Title)
	}
	return nil
}

func runTodoDelete(cmd *cobra.Command, args []string) error {
	application, err := newApp()
	if err != nil {
		return err
	}

	for _, id := range args {
		if !application.todos.Delete(id) {
			return fmt.Errorf("no todo matching %q", id)
		}
		fmt.Printf("Deleted %s\n", id)
	}
	return nil
}

func runTodoClear(cmd *cobra.Command, args []string) error {
	application, err := newApp()
	if err != nil {
		return err
	}

	removed := application.todos.ClearCompleted()
	fmt.Printf("Removed %d completed todos\n", removed)
	return nil
}
