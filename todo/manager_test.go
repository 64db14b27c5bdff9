package todo

import (
	"strings"
	"testing"
	"time"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	return NewManager(NewStore(t.TempDir()))
}

// seedManager persists fixed-ID todos, then opens a manager over them.
func seedManager(t *testing.T, todos []Todo) *Manager {
	t.Helper()
	store := NewStore(t.TempDir())
	if err := store.Save(todos); err != nil {
		t.Fatalf("seed store: %v", err)
	}
	return NewManager(store)
}

func TestAddPersists(t *testing.T) {
	store := NewStore(t.TempDir())
	m := NewManager(store)

	minutes := 25
	item, err := m.Add("write tests", &minutes)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if item.Completed {
		t.Fatalf("expected new todo pending")
	}
	if item.TimerMinutes == nil || *item.TimerMinutes != 25 {
		t.Fatalf("timer_minutes mismatch: %v", item.TimerMinutes)
	}
	if item.CreatedAt.IsZero() {
		t.Fatalf("expected created_at to be set")
	}

	// A fresh manager over the same store sees the write-through.
	reloaded := NewManager(store)
	got, ok := reloaded.Get(item.ID)
	if !ok {
		t.Fatalf("todo not persisted")
	}
	if got.Title != "write tests" {
		t.Fatalf("expected title to round-trip, got %q", got.Title)
	}
}

func TestAddValidatesTitle(t *testing.T) {
	m := newTestManager(t)

	if _, err := m.Add("", nil); err != ErrEmptyTitle {
		t.Fatalf("expected ErrEmptyTitle, got %v", err)
	}
	if _, err := m.Add(strings.Repeat("x", MaxTitleLength+1), nil); err == nil {
		t.Fatalf("expected error for oversized title")
	}
}

func TestCompleteSetsTimestamp(t *testing.T) {
	m := newTestManager(t)

	item, err := m.Add("task", nil)
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	completed, ok := m.Complete(item.ID)
	if !ok {
		t.Fatalf("complete failed")
	}
	if !completed.Completed {
		t.Fatalf("expected completed flag")
	}
	if completed.CompletedAt == nil {
		t.Fatalf("expected completed_at to be set")
	}
}

func TestCompleteTwiceKeepsFirstTimestamp(t *testing.T) {
	m := newTestManager(t)

	item, err := m.Add("task", nil)
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	first, ok := m.Complete(item.ID)
	if !ok {
		t.Fatalf("first complete failed")
	}
	second, ok := m.Complete(item.ID)
	if !ok {
		t.Fatalf("second complete failed")
	}
	if !second.CompletedAt.Equal(*first.CompletedAt) {
		t.Fatalf("completed_at changed on re-complete: %v -> %v", first.CompletedAt, second.CompletedAt)
	}
}

func TestCompleteNotFound(t *testing.T) {
	m := newTestManager(t)

	if _, ok := m.Complete("zzzz"); ok {
		t.Fatalf("expected not-found")
	}
}

func TestCompleteByUnambiguousPrefix(t *testing.T) {
	m := seedManager(t, []Todo{
		{ID: "abcd1234", Title: "first", CreatedAt: time.Now()},
		{ID: "wxyz5678", Title: "second", CreatedAt: time.Now()},
	})

	completed, ok := m.Complete("abcd")
	if !ok {
		t.Fatalf("expected prefix complete to succeed")
	}
	if completed.ID != "abcd1234" {
		t.Fatalf("expected abcd1234, got %s", completed.ID)
	}
}

func TestCompleteAmbiguousPrefixFirstInsertedWins(t *testing.T) {
	m := seedManager(t, []Todo{
		{ID: "abcd1234", Title: "first", CreatedAt: time.Now()},
		{ID: "abcd5678", Title: "second", CreatedAt: time.Now()},
	})

	completed, ok := m.Complete("abcd")
	if !ok {
		t.Fatalf("expected ambiguous prefix complete to succeed")
	}
	if completed.ID != "abcd1234" {
		t.Fatalf("expected first-inserted abcd1234 to win, got %s", completed.ID)
	}

	second, ok := m.Get("abcd5678")
	if !ok {
		t.Fatalf("second todo missing")
	}
	if second.Completed {
		t.Fatalf("expected abcd5678 to stay pending")
	}
}

func TestDelete(t *testing.T) {
	m := newTestManager(t)

	item, err := m.Add("task", nil)
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if !m.Delete(item.ID) {
		t.Fatalf("delete failed")
	}
	if _, ok := m.Get(item.ID); ok {
		t.Fatalf("expected todo to be gone")
	}
	if m.Delete(item.ID) {
		t.Fatalf("expected second delete to fail")
	}
}

func TestListsPreserveInsertionOrder(t *testing.T) {
	m := newTestManager(t)

	first, _ := m.Add("first", nil)
	second, _ := m.Add("second", nil)
	third, _ := m.Add("third", nil)
	if _, ok := m.Complete(second.ID); !ok {
		t.Fatalf("complete failed")
	}

	all := m.ListAll()
	if len(all) != 3 {
		t.Fatalf("expected 3 todos, got %d", len(all))
	}
	for i, want := range []string{first.ID, second.ID, third.ID} {
		if all[i].ID != want {
			t.Fatalf("expected %s at position %d, got %s", want, i, all[i].ID)
		}
	}

	pending := m.ListPending()
	if len(pending) != 2 || pending[0].ID != first.ID || pending[1].ID != third.ID {
		t.Fatalf("pending mismatch: %+v", pending)
	}

	completed := m.ListCompleted()
	if len(completed) != 1 || completed[0].ID != second.ID {
		t.Fatalf("completed mismatch: %+v", completed)
	}
}

func TestClearCompleted(t *testing.T) {
	store := NewStore(t.TempDir())
	m := NewManager(store)

	var items []Todo
	for _, title := range []string{"a", "b", "c", "d", "e"} {
		item, err := m.Add(title, nil)
		if err != nil {
			t.Fatalf("add: %v", err)
		}
		items = append(items, item)
	}
	for _, i := range []int{0, 2, 4} {
		if _, ok := m.Complete(items[i].ID); !ok {
			t.Fatalf("complete failed")
		}
	}

	if got := m.ClearCompleted(); got != 3 {
		t.Fatalf("expected 3 cleared, got %d", got)
	}

	remaining := m.ListAll()
	if len(remaining) != 2 {
		t.Fatalf("expected 2 remaining, got %d", len(remaining))
	}
	if remaining[0].ID != items[1].ID || remaining[1].ID != items[3].ID {
		t.Fatalf("wrong survivors: %+v", remaining)
	}

	// The removal is persisted.
	reloaded := NewManager(store)
	if got := reloaded.Counts().Total; got != 2 {
		t.Fatalf("expected 2 persisted, got %d", got)
	}

	if got := m.ClearCompleted(); got != 0 {
		t.Fatalf("expected 0 cleared on second run, got %d", got)
	}
}

func TestCounts(t *testing.T) {
	m := newTestManager(t)

	first, _ := m.Add("first", nil)
	m.Add("second", nil)
	if _, ok := m.Complete(first.ID); !ok {
		t.Fatalf("complete failed")
	}

	counts := m.Counts()
	if counts.Total != 2 || counts.Pending != 1 || counts.Completed != 1 {
		t.Fatalf("counts mismatch: %+v", counts)
	}
}

func TestListAllIsSnapshot(t *testing.T) {
	m := newTestManager(t)

	item, _ := m.Add("task", nil)
	snapshot := m.ListAll()

	if !m.Delete(item.ID) {
		t.Fatalf("delete failed")
	}
	if len(snapshot) != 1 || snapshot[0].ID != item.ID {
		t.Fatalf("expected snapshot to be unaffected by later mutation")
	}
}
