package todo

import (
	"fmt"
	"sync"
	"time"

	"github.com/pomodoro-cli/pomo/internal/ids"
)

// Counts summarizes the todo collection.
type Counts struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Completed int `json:"completed"`
}

// Manager owns the todo collection. Every mutation writes the full
// collection through to the store; the mutex serializes mutations so
// the store never sees conflicting writes.
type Manager struct {
	mu    sync.Mutex
	store *Store
	todos []Todo
}

// NewManager creates a manager backed by store, loading any persisted
// todos.
func NewManager(store *Store) *Manager {
	return &Manager{
		store: store,
		todos: store.Load(),
	}
}

// Add appends a new todo and persists the collection. timerMinutes
// records an associated timer duration; pass nil for none.
func (m *Manager) Add(title string, timerMinutes *int) (Todo, error) {
	if err := ValidateTitle(title); err != nil {
		return Todo{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	item := newTodo(title, timerMinutes)
	m.todos = append(m.todos, item)
	if err := m.store.Save(m.todos); err != nil {
		return Todo{}, fmt.Errorf("save todos: %w", err)
	}
	return item, nil
}

// Complete marks the matching todo as completed and persists. Completing
// an already-completed todo succeeds again and re-saves.
func (m *Manager) Complete(id string) (Todo, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i, ok := m.indexOfLocked(id)
	if !ok {
		return Todo{}, false
	}

	if !m.todos[i].Completed {
		now := time.Now()
		m.todos[i].Completed = true
		m.todos[i].CompletedAt = &now
	}
	if err := m.store.Save(m.todos); err != nil {
		return Todo{}, false
	}
	return m.todos[i], true
}

// Delete removes the matching todo and persists.
func (m *Manager) Delete(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	i, ok := m.indexOfLocked(id)
	if !ok {
		return false
	}

	m.todos = append(m.todos[:i], m.todos[i+1:]...)
	return m.store.Save(m.todos) == nil
}

// Get returns a copy of the matching todo.
func (m *Manager) Get(id string) (Todo, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i, ok := m.indexOfLocked(id)
	if !ok {
		return Todo{}, false
	}
	return m.todos[i], true
}

// ListAll returns all todos in insertion order.
func (m *Manager) ListAll() []Todo {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Todo(nil), m.todos...)
}

// ListPending returns todos that are not completed.
func (m *Manager) ListPending() []Todo {
	return m.list(func(item Todo) bool { return !item.Completed })
}

// ListCompleted returns completed todos.
func (m *Manager) ListCompleted() []Todo {
	return m.list(func(item Todo) bool { return item.Completed })
}

func (m *Manager) list(keep func(Todo) bool) []Todo {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := make([]Todo, 0, len(m.todos))
	for _, item := range m.todos {
		if keep(item) {
			result = append(result, item)
		}
	}
	return result
}

// ClearCompleted removes all completed todos in one persisted operation
// and returns how many were removed.
func (m *Manager) ClearCompleted() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	kept := make([]Todo, 0, len(m.todos))
	for _, item := range m.todos {
		if !item.Completed {
			kept = append(kept, item)
		}
	}

	removed := len(m.todos) - len(kept)
	if removed == 0 {
		return 0
	}

	m.todos = kept
	if err := m.store.Save(m.todos); err != nil {
		return 0
	}
	return removed
}

// Counts returns totals for the collection.
func (m *Manager) Counts() Counts {
	m.mu.Lock()
	defer m.mu.Unlock()

	counts := Counts{Total: len(m.todos)}
	for _, item := range m.todos {
		if item.Completed {
			counts.Completed++
		} else {
			counts.Pending++
		}
	}
	return counts
}

// PrefixLengths returns the shortest unique prefix length for each
// todo ID.
func (m *Manager) PrefixLengths() map[string]int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return ids.UniquePrefixLengths(m.idsLocked())
}

// indexOfLocked resolves id (exact or prefix, first-inserted wins) to a
// slice index. Callers must hold the lock.
func (m *Manager) indexOfLocked(id string) (int, bool) {
	match, found := ids.MatchPrefix(m.idsLocked(), id)
	if !found {
		return 0, false
	}
	for i, item := range m.todos {
		if item.ID == match {
			return i, true
		}
	}
	return 0, false
}

func (m *Manager) idsLocked() []string {
	all := make([]string, 0, len(m.todos))
	for _, item := range m.todos {
		all = append(all, item.ID)
	}
	return all
}
