package session

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pomodoro-cli/pomo/internal/ui"
	"github.com/pomodoro-cli/pomo/timer"
)

// dispatch parses one input line and executes it. It returns true when
// the session should end.
func (s *Session) dispatch(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		s.render()
		return false
	}

	verb, args := fields[0], fields[1:]
	switch verb {
	case "add":
		s.cmdAdd(args)
	case "todo":
		s.cmdTodo(args)
	case "list":
		s.cmdList()
	case "done":
		s.cmdDone(args)
	case "del":
		s.cmdDelete(args)
	case "pause":
		s.cmdPause(args)
	case "resume":
		s.cmdResume(args)
	case "clear":
		s.cmdClear()
	case "help":
		s.cmdHelp()
	case "quit", "q", "exit":
		return true
	default:
		s.printf("%s\n", ui.Error(fmt.Sprintf("unknown command %q, type 'help' for commands", verb)))
	}
	return false
}

func (s *Session) cmdAdd(args []string) {
	if len(args) == 0 {
		s.printf("%s\n", ui.Error("usage: add <minutes> [title]"))
		return
	}

	minutes, err := strconv.Atoi(args[0])
	if err != nil || minutes <= 0 {
		s.printf("%s\n", ui.Error(fmt.Sprintf("duration must be a positive number of minutes, got %q", args[0])))
		return
	}

	title := strings.Join(args[1:], " ")
	if title == "" {
		title = fmt.Sprintf("%d-minute timer", minutes)
	}

	created, err := s.timers.AddTimer(title, minutes, "")
	if err != nil {
		s.printf("%s\n", ui.Error(err.Error()))
		return
	}
	s.timers.StartTimer(created.ID)
	s.printf("%s\n", ui.Success(fmt.Sprintf("Started %s (%s)", created.Title, ui.ShortID(created.ID))))
}

// cmdTodo adds a todo. A leading positive number is a timer duration:
// the todo gets a linked countdown that starts immediately and marks it
// complete when the timer finishes.
func (s *Session) cmdTodo(args []string) {
	if len(args) == 0 {
		s.printf("%s\n", ui.Error("usage: todo [minutes] <title>"))
		return
	}

	var timerMinutes *int
	if len(args) > 1 {
		if minutes, err := strconv.Atoi(args[0]); err == nil && minutes > 0 {
			if minutes > timer.MaxMinutes {
				s.printf("%s\n", ui.Error(fmt.Sprintf("duration must be at most %d minutes, got %d", timer.MaxMinutes, minutes)))
				return
			}
			timerMinutes = &minutes
			args = args[1:]
		}
	}

	title := strings.Join(args, " ")
	created, err := s.todos.Add(title, timerMinutes)
	if err != nil {
		s.printf("%s\n", ui.Error(err.Error()))
		return
	}

	if timerMinutes == nil {
		s.printf("%s\n", ui.Success(fmt.Sprintf("Added todo %s (%s)", created.Title, ui.ShortID(created.ID))))
		return
	}

	linked, err := s.timers.AddTimer(created.Title, *timerMinutes, created.ID)
	if err != nil {
		s.printf("%s\n", ui.Error(err.Error()))
		return
	}
	s.timers.StartTimer(linked.ID)
	s.printf("%s\n", ui.Success(fmt.Sprintf("Added todo %s with %dm timer (%s)", created.Title, *timerMinutes, ui.ShortID(created.ID))))
}

func (s *Session) cmdList() {
	counts := s.todos.Counts()
	s.print(ui.FormatTodoTable(s.todos.ListAll(), s.todos.PrefixLengths(), true))
	s.printf("%d todos: %d pending, %d completed\n", counts.Total, counts.Pending, counts.Completed)
}

func (s *Session) cmdDone(args []string) {
	if len(args) == 0 {
		s.printf("%s\n", ui.Error("usage: done <id>"))
		return
	}

	done, ok := s.todos.Complete(args[0])
	if !ok {
		s.printf("%s\n", ui.Error(fmt.Sprintf("no todo matching %q", args[0])))
		return
	}
	s.printf("%s\n", ui.Success(fmt.Sprintf("Completed: %s", done.Title)))
}

// cmdDelete tries timers first, then todos.
func (s *Session) cmdDelete(args []string) {
	if len(args) == 0 {
		s.printf("%s\n", ui.Error("usage: del <id>"))
		return
	}

	id := args[0]
	if s.timers.RemoveTimer(id) {
		s.printf("%s\n", ui.Success("Removed timer"))
		return
	}
	if s.todos.Delete(id) {
		s.printf("%s\n", ui.Success("Removed todo"))
		return
	}
	s.printf("%s\n", ui.Error(fmt.Sprintf("no timer or todo matching %q", id)))
}

func (s *Session) cmdPause(args []string) {
	if len(args) == 0 {
		s.printf("%s\n", ui.Error("usage: pause <id>"))
		return
	}
	if !s.timers.PauseTimer(args[0]) {
		s.printf("%s\n", ui.Error(fmt.Sprintf("no timer matching %q", args[0])))
		return
	}
	s.printf("%s\n", ui.Success("Paused"))
}

func (s *Session) cmdResume(args []string) {
	if len(args) == 0 {
		s.printf("%s\n", ui.Error("usage: resume <id>"))
		return
	}
	if !s.timers.ResumeTimer(args[0]) {
		s.printf("%s\n", ui.Error(fmt.Sprintf("no timer matching %q", args[0])))
		return
	}
	s.printf("%s\n", ui.Success("Resumed"))
}

func (s *Session) cmdClear() {
	timers := s.timers.CleanupCompleted()
	todos := s.todos.ClearCompleted()
	s.printf("%s\n", ui.Success(fmt.Sprintf("Cleared %d completed timers and %d completed todos", timers, todos)))
}

func (s *Session) cmdHelp() {
	s.print(strings.Join([]string{
		"Commands:",
		"  add <minutes> [title]   start a new timer",
		"  todo [minutes] <title>  add a todo, with a started timer if a duration is given",
		"  list                    list all todos",
		"  done <id>               complete a todo",
		"  del <id>                remove a timer or todo",
		"  pause <id>              pause a timer",
		"  resume <id>             resume a paused timer",
		"  clear                   drop completed timers and todos",
		"  help                    show this help",
		"  quit                    exit",
		"",
	}, "\n"))
}
