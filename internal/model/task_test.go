package model

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func validTask() Task {
	return Task{
		ID:        1,
		Title:     "Buy milk",
		Priority:  PriorityMedium,
		Category:  "General",
		Status:    StatusPending,
		CreatedAt: time.Now(),
	}
}

func TestValidate(t *testing.T) {
	completedAt := time.Now()
	badQuadrant := Quadrant("Q5")

	tests := []struct {
		name      string
		mutate    func(*Task)
		wantField string
	}{
		{"valid", func(task *Task) {}, ""},
		{"zero id", func(task *Task) { task.ID = 0 }, "id"},
		{"negative id", func(task *Task) { task.ID = -3 }, "id"},
		{"empty title", func(task *Task) { task.Title = "" }, "title"},
		{"whitespace title", func(task *Task) { task.Title = "   " }, "title"},
		{"bad priority", func(task *Task) { task.Priority = "Urgent" }, "priority"},
		{"bad status", func(task *Task) { task.Status = "Done" }, "status"},
		{"empty category", func(task *Task) { task.Category = "" }, "category"},
		{"bad quadrant", func(task *Task) { task.Eisenhower = &badQuadrant }, "eisenhower"},
		{"completed without timestamp", func(task *Task) { task.Status = StatusCompleted }, "completed_at"},
		{"pending with timestamp", func(task *Task) { task.CompletedAt = &completedAt }, "completed_at"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := validTask()
			tt.mutate(&task)

			err := task.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Validate: unexpected error: %v", err)
				}
				return
			}

			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("Validate: got %v, want *ValidationError", err)
			}
			if vErr.Field != tt.wantField {
				t.Errorf("Field: got %q, want %q", vErr.Field, tt.wantField)
			}
		})
	}
}

func TestParsePriority(t *testing.T) {
	tests := []struct {
		in      string
		want    Priority
		wantErr bool
	}{
		{"High", PriorityHigh, false},
		{"high", PriorityHigh, false},
		{"MEDIUM", PriorityMedium, false},
		{"low", PriorityLow, false},
		{"urgent", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParsePriority(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParsePriority(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParsePriority(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParsePriority(%q): got %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseStatus(t *testing.T) {
	if got, err := ParseStatus("completed"); err != nil || got != StatusCompleted {
		t.Errorf("ParseStatus(completed): got %q, %v", got, err)
	}
	if _, err := ParseStatus("done"); err == nil {
		t.Error("ParseStatus(done): expected error")
	}
}

func TestParseQuadrant(t *testing.T) {
	if got, err := ParseQuadrant("q2"); err != nil || got != QuadrantQ2 {
		t.Errorf("ParseQuadrant(q2): got %q, %v", got, err)
	}
	if _, err := ParseQuadrant("Q5"); err == nil {
		t.Error("ParseQuadrant(Q5): expected error")
	}
}

func TestMarkCompleteAndPending(t *testing.T) {
	task := validTask()

	task.MarkComplete()
	if task.Status != StatusCompleted {
		t.Errorf("Status: got %q, want %q", task.Status, StatusCompleted)
	}
	if task.CompletedAt == nil {
		t.Fatal("CompletedAt: got nil, want a timestamp")
	}
	if err := task.Validate(); err != nil {
		t.Errorf("Validate after MarkComplete: %v", err)
	}

	task.MarkPending()
	if task.Status != StatusPending {
		t.Errorf("Status: got %q, want %q", task.Status, StatusPending)
	}
	if task.CompletedAt != nil {
		t.Error("CompletedAt: expected nil after MarkPending")
	}
}

func TestTaskJSONContract(t *testing.T) {
	due := NewDate(2026, time.September, 1)
	task := validTask()
	task.DueDate = &due

	data, err := json.Marshal(task)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("Unmarshal into map: %v", err)
	}

	if got := string(raw["due_date"]); got != `"2026-09-01"` {
		t.Errorf("due_date: got %s, want \"2026-09-01\"", got)
	}
	for _, absent := range []string{"completed_at", "eisenhower", "depends_on", "projects", "contexts"} {
		if _, ok := raw[absent]; ok {
			t.Errorf("%s: present in JSON, want omitted", absent)
		}
	}

	var back Task
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back.DueDate == nil || !back.DueDate.Equal(due) {
		t.Errorf("DueDate: got %v, want %s", back.DueDate, due)
	}
	if back.Title != task.Title || back.Priority != task.Priority {
		t.Errorf("round trip: got %+v", back)
	}
}

func TestTaskJSONUnknownFields(t *testing.T) {
	var task Task
	data := []byte(`{"id": 7, "title": "Call dentist", "priority": "Low", "category": "Health", "status": "Pending", "legacy_field": true}`)
	if err := json.Unmarshal(data, &task); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if task.ID != 7 || task.Title != "Call dentist" {
		t.Errorf("got %+v", task)
	}
	if task.DueDate != nil {
		t.Error("DueDate: expected nil when absent")
	}
}
