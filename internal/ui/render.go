package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/muesli/reflow/wordwrap"

	"github.com/pomodoro-cli/pomo/timer"
	"github.com/pomodoro-cli/pomo/todo"
)

const progressBarWidth = 20
const panelWrapWidth = 46

// ProgressBar renders progress in [0, 1] as a fixed-width bar.
func ProgressBar(progress float64, width int) string {
	if width <= 0 {
		width = progressBarWidth
	}
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}

	filled := int(float64(width) * progress)
	empty := width - filled
	return progressFilledStyle.Render(strings.Repeat("=", filled)) +
		progressEmptyStyle.Render(strings.Repeat(".", empty))
}

// FormatTimerTable renders active timers as a table.
func FormatTimerTable(timers []timer.Timer, prefixLengths map[string]int) string {
	if len(timers) == 0 {
		return mutedStyle.Render("No active timers.") + "\n"
	}

	builder := NewTableBuilder([]string{"ID", "TITLE", "PROGRESS", "TIME", "STATUS"}, len(timers))
	for _, t := range timers {
		builder.AddRow([]string{
			HighlightID(t.ID, prefixLengths[strings.ToLower(t.ID)]),
			TruncateTableCell(t.Title),
			ProgressBar(t.Progress(), progressBarWidth),
			t.FormatRemaining(),
			timerStatus(t),
		})
	}
	return builder.String()
}

func timerStatus(t timer.Timer) string {
	switch {
	case t.Paused:
		return statusPausedStyle.Render("PAUSED")
	case t.RemainingSeconds <= 10:
		return statusEndingStyle.Render("ENDING")
	case t.RemainingSeconds <= 60:
		return statusFinalStyle.Render("FINAL")
	default:
		return statusRunningStyle.Render("RUNNING")
	}
}

// FormatTodoTable renders todos as a table. Completed todos are shown
// only when showCompleted is set.
func FormatTodoTable(todos []todo.Todo, prefixLengths map[string]int, showCompleted bool) string {
	visible := make([]todo.Todo, 0, len(todos))
	for _, item := range todos {
		if item.Completed && !showCompleted {
			continue
		}
		visible = append(visible, item)
	}

	if len(visible) == 0 {
		return mutedStyle.Render("No todos.") + "\n"
	}

	builder := NewTableBuilder([]string{"ID", "DONE", "AGE", "TITLE", "TIMER"}, len(visible))
	for _, item := range visible {
		done := "[ ]"
		if item.Completed {
			done = successStyle.Render("[x]")
		}
		age := "-"
		if !item.CreatedAt.IsZero() {
			age = FormatDurationShort(time.Since(item.CreatedAt))
		}
		timerCell := "-"
		if item.TimerMinutes != nil {
			timerCell = fmt.Sprintf("%dm", *item.TimerMinutes)
		}
		builder.AddRow([]string{
			HighlightID(item.ID, prefixLengths[strings.ToLower(item.ID)]),
			done,
			age,
			TruncateTableCell(item.Title),
			timerCell,
		})
	}
	return builder.String()
}

// Frame renders the full interactive display: active timers, pending
// todos, and the command help line.
func Frame(timers []timer.Timer, todos []todo.Todo, timerPrefixes, todoPrefixes map[string]int) string {
	var builder strings.Builder
	builder.WriteString(subtitleStyle.Render("Active Timers") + "\n")
	builder.WriteString(FormatTimerTable(timers, timerPrefixes))
	builder.WriteString("\n")
	builder.WriteString(subtitleStyle.Render("Pending Todos") + "\n")
	builder.WriteString(FormatTodoTable(todos, todoPrefixes, false))
	builder.WriteString("\n")
	builder.WriteString(HelpLine())
	return builder.String()
}

// HelpLine returns a one-line command summary for the interactive mode.
func HelpLine() string {
	return mutedStyle.Render("add <min> [title] | todo [min] <title> | list | done <id> | del <id> | pause <id> | resume <id> | clear | quit") + "\n"
}

// WelcomePanel renders the interactive mode banner.
func WelcomePanel() string {
	body := titleStyle.Render("pomo - terminal pomodoro timer") + "\n\n" +
		subtitleStyle.Render("Interactive mode") + "\n" +
		mutedStyle.Render("Type 'help' for commands, 'quit' to exit")
	return welcomePanelStyle.Render(body) + "\n"
}

// CompletePanel renders the banner shown when a timer finishes.
func CompletePanel(t timer.Timer) string {
	heading := successStyle.Render("Timer complete!")
	total := time.Duration(t.TotalSeconds) * time.Second
	detail := wordwrap.String(fmt.Sprintf("'%s' finished after %s.", t.Title, FormatDurationShort(total)), panelWrapWidth)
	return panelStyle.Render(heading+"\n\n"+detail) + "\n"
}
