package todo

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// TodosFile is the name of the JSON file containing todos.
const TodosFile = "todos.json"

// Store persists the todo collection as a JSON file under a data
// directory. Unreadable or corrupt data loads as an empty collection;
// losing a broken file is preferred over refusing to start.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir. The directory is created on
// the first save.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) todosPath() string {
	return filepath.Join(s.dir, TodosFile)
}

// Load reads all todos. A missing or corrupt file yields an empty
// collection, never an error.
func (s *Store) Load() []Todo {
	data, err := os.ReadFile(s.todosPath())
	if err != nil {
		return nil
	}

	var todos []Todo
	if err := json.Unmarshal(data, &todos); err != nil {
		return nil
	}
	return todos
}

// Save writes all todos, replacing any existing content. The write is
// atomic: a temp file is renamed into place.
func (s *Store) Save(todos []Todo) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	if todos == nil {
		todos = []Todo{}
	}
	data, err := json.MarshalIndent(todos, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal todos: %w", err)
	}

	tmpFile, err := os.CreateTemp(s.dir, TodosFile+".tmp")
	if err != nil {
		return fmt.Errorf("create temp todos file: %w", err)
	}
	name := tmpFile.Name()
	_, err = tmpFile.Write(data)
	if closeErr := tmpFile.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(name)
		return fmt.Errorf("write temp todos file: %w", err)
	}

	if err := os.Rename(name, s.todosPath()); err != nil {
		os.Remove(name)
		return fmt.Errorf("rename todos file: %w", err)
	}

	return nil
}

// Clear removes all persisted todos.
func (s *Store) Clear() error {
	return s.Save(nil)
}
