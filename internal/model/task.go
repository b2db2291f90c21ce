package model

import (
	"fmt"
	"strings"
	"time"
)

type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

type Status string

const (
	StatusPending   Status = "Pending"
	StatusCompleted Status = "Completed"
)

// Quadrant classifies a task on the Eisenhower matrix (Q1..Q4).
type Quadrant string

const (
	QuadrantQ1 Quadrant = "Q1" // urgent and important
	QuadrantQ2 Quadrant = "Q2" // important, not urgent
	QuadrantQ3 Quadrant = "Q3" // urgent, not important
	QuadrantQ4 Quadrant = "Q4" // neither
)

var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}
var Statuses = []Status{StatusPending, StatusCompleted}
var Quadrants = []Quadrant{QuadrantQ1, QuadrantQ2, QuadrantQ3, QuadrantQ4}

// Task is one to-do record. The json tags are the compatibility contract
// for tasks.json; optional fields are omitted entirely when unset.
type Task struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *Date      `json:"due_date,omitempty"`
	Priority    Priority   `json:"priority"`
	Category    string     `json:"category"`
	Status      Status     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Eisenhower  *Quadrant  `json:"eisenhower,omitempty"`
	DependsOn   []int      `json:"depends_on,omitempty"`
	Projects    []string   `json:"projects,omitempty"`
	Contexts    []string   `json:"contexts,omitempty"`
}

// ValidationError reports a task field that is out of its domain.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Err)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func ParsePriority(s string) (Priority, error) {
	for _, p := range Priorities {
		if strings.EqualFold(s, string(p)) {
			return p, nil
		}
	}
	return "", &ValidationError{Field: "priority", Err: fmt.Errorf("invalid priority %q, use one of Low, Medium, High", s)}
}

func ParseStatus(s string) (Status, error) {
	for _, st := range Statuses {
		if strings.EqualFold(s, string(st)) {
			return st, nil
		}
	}
	return "", &ValidationError{Field: "status", Err: fmt.Errorf("invalid status %q, use Pending or Completed", s)}
}

func ParseQuadrant(s string) (Quadrant, error) {
	for _, q := range Quadrants {
		if strings.EqualFold(s, string(q)) {
			return q, nil
		}
	}
	return "", &ValidationError{Field: "eisenhower", Err: fmt.Errorf("invalid quadrant %q, use Q1, Q2, Q3 or Q4", s)}
}

// Validate checks every field against its domain, including the coupling
// between status and completed_at.
func (t *Task) Validate() error {
	if t.ID <= 0 {
		return &ValidationError{Field: "id", Err: fmt.Errorf("must be a positive integer, got %d", t.ID)}
	}
	if strings.TrimSpace(t.Title) == "" {
		return &ValidationError{Field: "title", Err: fmt.Errorf("must not be empty")}
	}
	if _, err := ParsePriority(string(t.Priority)); err != nil {
		return err
	}
	if _, err := ParseStatus(string(t.Status)); err != nil {
		return err
	}
	if t.Category == "" {
		return &ValidationError{Field: "category", Err: fmt.Errorf("must not be empty")}
	}
	if t.Eisenhower != nil {
		if _, err := ParseQuadrant(string(*t.Eisenhower)); err != nil {
			return err
		}
	}
	if t.Status == StatusCompleted && t.CompletedAt == nil {
		return &ValidationError{Field: "completed_at", Err: fmt.Errorf("must be set while status is Completed")}
	}
	if t.Status == StatusPending && t.CompletedAt != nil {
		return &ValidationError{Field: "completed_at", Err: fmt.Errorf("must be unset while status is Pending")}
	}
	return nil
}

// MarkComplete flips the task to Completed and stamps completed_at.
func (t *Task) MarkComplete() {
	if t.Status == StatusPending {
		now := time.Now()
		t.Status = StatusCompleted
		t.CompletedAt = &now
	}
}

// MarkPending reverts the task to Pending and clears completed_at.
func (t *Task) MarkPending() {
	if t.Status == StatusCompleted {
		t.Status = StatusPending
		t.CompletedAt = nil
	}
}

func (t *Task) DependsOnID(id int) bool {
	for _, dep := range t.DependsOn {
		if dep == id {
			return true
		}
	}
	return false
}
