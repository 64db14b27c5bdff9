package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/pomodoro-cli/pomo/timer"
	"github.com/pomodoro-cli/pomo/todo"
)

func TestProgressBar(t *testing.T) {
	tests := []struct {
		name     string
		progress float64
		filled   int
		empty    int
	}{
		{"fresh", 0, 0, 20},
		{"halfway", 0.5, 10, 10},
		{"complete", 1, 20, 0},
		{"clamped low", -0.5, 0, 20},
		{"clamped high", 1.5, 20, 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			bar := stripANSICodes(ProgressBar(test.progress, 20))
			if got := strings.Count(bar, "="); got != test.filled {
				t.Fatalf("expected %d filled cells, got %d (%q)", test.filled, got, bar)
			}
			if got := strings.Count(bar, "."); got != test.empty {
				t.Fatalf("expected %d empty cells, got %d (%q)", test.empty, got, bar)
			}
		})
	}
}

func TestTimerStatus(t *testing.T) {
	tests := []struct {
		name      string
		remaining int
		paused    bool
		want      string
	}{
		{"running", 300, false, "RUNNING"},
		{"final minute", 60, false, "FINAL"},
		{"ending", 10, false, "ENDING"},
		{"paused wins", 5, true, "PAUSED"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			tm := timer.Timer{RemainingSeconds: test.remaining, Paused: test.paused}
			got := stripANSICodes(timerStatus(tm))
			if got != test.want {
				t.Fatalf("expected status %q, got %q", test.want, got)
			}
		})
	}
}

func TestFormatTimerTableEmpty(t *testing.T) {
	out := stripANSICodes(FormatTimerTable(nil, nil))
	if !strings.Contains(out, "No active timers.") {
		t.Fatalf("expected empty-state message, got %q", out)
	}
}

func TestFormatTimerTableColumns(t *testing.T) {
	timers := []timer.Timer{
		{ID: "abcd1234", Title: "write report", TotalSeconds: 1500, RemainingSeconds: 750},
	}

	out := stripANSICodes(FormatTimerTable(timers, nil))
	for _, want := range []string{"ID", "TITLE", "PROGRESS", "TIME", "STATUS", "abcd1234", "write report", "12:30", "RUNNING"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected table to contain %q, got:\n%s", want, out)
		}
	}
}

func TestFormatTodoTable(t *testing.T) {
	minutes := 25
	todos := []todo.Todo{
		{ID: "aaaa1111", Title: "pending task", TimerMinutes: &minutes},
		{ID: "bbbb2222", Title: "finished task", Completed: true},
	}

	out := stripANSICodes(FormatTodoTable(todos, nil, false))
	if !strings.Contains(out, "pending task") {
		t.Fatalf("expected pending todo in output, got:\n%s", out)
	}
	if !strings.Contains(out, "25m") {
		t.Fatalf("expected timer column value, got:\n%s", out)
	}
	if strings.Contains(out, "finished task") {
		t.Fatalf("expected completed todo hidden, got:\n%s", out)
	}

	all := stripANSICodes(FormatTodoTable(todos, nil, true))
	if !strings.Contains(all, "finished task") || !strings.Contains(all, "[x]") {
		t.Fatalf("expected completed todo with checkbox, got:\n%s", all)
	}
}

func TestFrameSections(t *testing.T) {
	out := stripANSICodes(Frame(nil, nil, nil, nil))
	for _, want := range []string{"Active Timers", "Pending Todos", "No active timers.", "No todos.", "quit"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected frame to contain %q, got:\n%s", want, out)
		}
	}
}

func TestCompletePanel(t *testing.T) {
	tm := timer.Timer{Title: "deep work", TotalSeconds: 1500}
	out := stripANSICodes(CompletePanel(tm))
	if !strings.Contains(out, "Timer complete!") || !strings.Contains(out, "deep work") || !strings.Contains(out, "25m") {
		t.Fatalf("unexpected completion panel:\n%s", out)
	}
}

func TestFormatDurationShort(t *testing.T) {
	tests := []struct {
		duration time.Duration
		want     string
	}{
		{45 * time.Second, "45s"},
		{25 * time.Minute, "25m"},
		{3 * time.Hour, "3h"},
		{48 * time.Hour, "2d"},
		{-time.Second, "0s"},
	}

	for _, test := range tests {
		if got := FormatDurationShort(test.duration); got != test.want {
			t.Fatalf("expected %q for %v, got %q", test.want, test.duration, got)
		}
	}
}

func TestTruncateTableCell(t *testing.T) {
	long := strings.Repeat("x", 80)
	got := TruncateTableCell(long)
	if len(got) != tableCellMaxWidth {
		t.Fatalf("expected width %d, got %d", tableCellMaxWidth, len(got))
	}
	if !strings.HasSuffix(got, tableCellEllipsis) {
		t.Fatalf("expected ellipsis suffix, got %q", got)
	}

	short := "keep me"
	if got := TruncateTableCell(short); got != short {
		t.Fatalf("expected %q unchanged, got %q", short, got)
	}
}

func TestFormatTableAlignsANSICells(t *testing.T) {
	rows := [][]string{
		{ansiBold + "ab" + ansiReset + "cd", "one"},
		{"wxyz", "two"},
	}

	out := FormatTable([]string{"ID", "VALUE"}, rows)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}

	first := strings.Index(stripANSICodes(lines[1]), "one")
	second := strings.Index(stripANSICodes(lines[2]), "two")
	if first != second {
		t.Fatalf("expected aligned value column, got offsets %d and %d", first, second)
	}
}
