package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/eve-task/eve-cli/internal/model"
)

var (
	// ErrCorrupt marks a task file that exists but cannot be parsed as a
	// task collection. The load fails whole; no partial collection is
	// ever returned.
	ErrCorrupt = errors.New("task file is corrupt")
	// ErrWrite marks any I/O failure while replacing the task file.
	ErrWrite = errors.New("failed to write task file")
)

// TaskStore persists the full task collection as one JSON document.
// It is the sole writer of that file.
type TaskStore struct {
	path string
}

func NewTaskStore(path string) *TaskStore {
	return &TaskStore{path: path}
}

func (s *TaskStore) Path() string {
	return s.path
}

// Load reads the whole collection. A missing file is the first-run case
// and yields an empty collection. Unknown fields in a record are ignored
// and missing optional fields read as unset, but a record with a
// malformed id or empty title fails the whole load.
func (s *TaskStore) Load() ([]model.Task, error) {
	jsonBytes, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []model.Task{}, nil
		}
		return nil, fmt.Errorf("failed to read task file (%s): %w", s.path, err)
	}

	tasks := []model.Task{}
	if len(jsonBytes) > 0 {
		if err := json.Unmarshal(jsonBytes, &tasks); err != nil {
			return nil, fmt.Errorf("failed to parse %s (%v): %w", s.path, err, ErrCorrupt)
		}
	}

	seen := make(map[int]bool, len(tasks))
	for i := range tasks {
		if tasks[i].ID <= 0 {
			return nil, fmt.Errorf("record %d in %s has invalid id %d: %w", i, s.path, tasks[i].ID, ErrCorrupt)
		}
		if seen[tasks[i].ID] {
			return nil, fmt.Errorf("duplicate task id %d in %s: %w", tasks[i].ID, s.path, ErrCorrupt)
		}
		seen[tasks[i].ID] = true
		if tasks[i].Title == "" {
			return nil, fmt.Errorf("task %d in %s has an empty title: %w", tasks[i].ID, s.path, ErrCorrupt)
		}
	}

	return tasks, nil
}

// Save replaces the task file atomically: the collection is written to a
// temporary file in the same directory and renamed over the target, so a
// crash mid-write never leaves a truncated file behind.
func (s *TaskStore) Save(tasks []model.Task) error {
	jsonBytes, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to convert tasks to JSON: %w", err)
	}
	jsonBytes = append(jsonBytes, '\n')

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory (%s): %v: %w", dir, err, ErrWrite)
	}

	tmp, err := os.CreateTemp(dir, ".tasks-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file in %s: %v: %w", dir, err, ErrWrite)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(jsonBytes); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write %s: %v: %w", tmpPath, err, ErrWrite)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close %s: %v: %w", tmpPath, err, ErrWrite)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to set permissions on %s: %v: %w", tmpPath, err, ErrWrite)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace %s: %v: %w", s.path, err, ErrWrite)
	}

	return nil
}
