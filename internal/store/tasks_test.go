package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/eve-task/eve-cli/internal/model"
)

func newTestStore(t *testing.T) *TaskStore {
	t.Helper()
	return NewTaskStore(filepath.Join(t.TempDir(), "tasks.json"))
}

func sampleTasks() []model.Task {
	return []model.Task{
		{ID: 1, Title: "Buy milk", Priority: model.PriorityMedium, Category: "General", Status: model.StatusPending, CreatedAt: time.Now()},
		{ID: 2, Title: "Call dentist", Priority: model.PriorityHigh, Category: "Health", Status: model.StatusPending, CreatedAt: time.Now()},
	}
}

func TestLoadFirstRun(t *testing.T) {
	s := newTestStore(t)

	tasks, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("Load: got %d tasks, want 0", len(tasks))
	}
}

func TestSaveAndLoad(t *testing.T) {
	s := newTestStore(t)

	if err := s.Save(sampleTasks()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("Load: got %d tasks, want 2", len(loaded))
	}
	if loaded[0].Title != "Buy milk" {
		t.Errorf("Title: got %q, want %q", loaded[0].Title, "Buy milk")
	}
	if loaded[1].Category != "Health" {
		t.Errorf("Category: got %q, want %q", loaded[1].Category, "Health")
	}
}

func TestSaveCreatesDataDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "tasks.json")
	s := NewTaskStore(path)

	if err := s.Save(sampleTasks()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Stat: %v", err)
	}
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s := NewTaskStore(filepath.Join(dir, "tasks.json"))

	for i := 0; i < 3; i++ {
		if err := s.Save(sampleTasks()); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".tasks-") {
			t.Errorf("leftover temp file: %s", e.Name())
		}
	}
	if len(entries) != 1 {
		t.Errorf("ReadDir: got %d entries, want 1", len(entries))
	}
}

func TestSaveWriteFailure(t *testing.T) {
	// A regular file where the data directory should be blocks MkdirAll
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	s := NewTaskStore(filepath.Join(blocker, "tasks.json"))
	if err := s.Save(sampleTasks()); !errors.Is(err, ErrWrite) {
		t.Fatalf("Save: got %v, want ErrWrite", err)
	}
}

func TestLoadCorrupt(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed json", `{not json`},
		{"object instead of array", `{"id": 1}`},
		{"invalid id", `[{"id": 0, "title": "x", "priority": "Low", "category": "General", "status": "Pending"}]`},
		{"duplicate id", `[{"id": 1, "title": "a", "priority": "Low", "category": "General", "status": "Pending"},
			{"id": 1, "title": "b", "priority": "Low", "category": "General", "status": "Pending"}]`},
		{"empty title", `[{"id": 1, "title": "", "priority": "Low", "category": "General", "status": "Pending"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "tasks.json")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}

			tasks, err := NewTaskStore(path).Load()
			if !errors.Is(err, ErrCorrupt) {
				t.Fatalf("Load: got %v, want ErrCorrupt", err)
			}
			if tasks != nil {
				t.Error("Load: expected no partial collection on corruption")
			}
		})
	}
}

func TestLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	tasks, err := NewTaskStore(path).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("Load: got %d tasks, want 0", len(tasks))
	}
}

func TestSaveOverwrites(t *testing.T) {
	s := newTestStore(t)

	if err := s.Save(sampleTasks()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Save(sampleTasks()[:1]); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded) != 1 {
		t.Errorf("Load: got %d tasks, want 1", len(loaded))
	}
}
