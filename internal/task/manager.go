// Package task implements CRUD and filtered retrieval over the task
// collection. Every operation performs one load from storage, at most one
// mutation, and (for mutating calls) one save.
package task

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/eve-task/eve-cli/internal/model"
	"github.com/eve-task/eve-cli/internal/store"
	"github.com/eve-task/eve-cli/internal/util"
)

var (
	ErrNotFound            = errors.New("task not found")
	ErrAlreadyCompleted    = errors.New("task is already completed")
	ErrAlreadyPending      = errors.New("task is already pending")
	ErrDependencyCycle     = errors.New("dependency would create a cycle")
	ErrDependenciesPending = errors.New("task has pending dependencies")
	ErrHasDependents       = errors.New("other tasks depend on this task")
	ErrCompletedDependents = errors.New("completed tasks depend on this task")
)

// Manager owns the in-memory collection for the duration of one call.
// It keeps an id high-water mark across calls so a deleted id is never
// reissued within the same process run, even when it was the maximum.
type Manager struct {
	store  *store.TaskStore
	lastID int
}

func NewManager(s *store.TaskStore) *Manager {
	return &Manager{store: s}
}

func (m *Manager) load() ([]model.Task, error) {
	tasks, err := m.store.Load()
	if err != nil {
		return nil, err
	}
	for i := range tasks {
		if tasks[i].ID > m.lastID {
			m.lastID = tasks[i].ID
		}
	}
	return tasks, nil
}

func indexOf(tasks []model.Task, id int) int {
	for i := range tasks {
		if tasks[i].ID == id {
			return i
		}
	}
	return -1
}

type AddParams struct {
	Title       string
	Description string
	DueDate     string // YYYY-MM-DD, empty for none
	Priority    string // defaults to Medium
	Category    string // defaults to General
	Eisenhower  string // Q1..Q4, empty for unclassified
	DependsOn   []int
	Projects    []string
	Contexts    []string
}

// Add validates the input, assigns the next id, and persists the new task.
func (m *Manager) Add(p AddParams) (model.Task, error) {
	tasks, err := m.load()
	if err != nil {
		return model.Task{}, err
	}

	priority := model.PriorityMedium
	if p.Priority != "" {
		if priority, err = model.ParsePriority(p.Priority); err != nil {
			return model.Task{}, err
		}
	}
	category := p.Category
	if category == "" {
		category = "General"
	}

	t := model.Task{
		ID:          m.lastID + 1,
		Title:       p.Title,
		Description: p.Description,
		Priority:    priority,
		Category:    category,
		Status:      model.StatusPending,
		CreatedAt:   time.Now(),
	}

	if p.DueDate != "" {
		due, err := model.ParseDate(p.DueDate)
		if err != nil {
			return model.Task{}, &model.ValidationError{Field: "due_date", Err: err}
		}
		t.DueDate = &due
	}
	if p.Eisenhower != "" {
		quadrant, err := model.ParseQuadrant(p.Eisenhower)
		if err != nil {
			return model.Task{}, err
		}
		t.Eisenhower = &quadrant
	}

	for _, depID := range p.DependsOn {
		if indexOf(tasks, depID) == -1 {
			return model.Task{}, fmt.Errorf("dependency %d: %w", depID, ErrNotFound)
		}
		if !t.DependsOnID(depID) {
			t.DependsOn = append(t.DependsOn, depID)
		}
	}
	if t.Projects, err = normalizeTags(p.Projects, "project"); err != nil {
		return model.Task{}, err
	}
	if t.Contexts, err = normalizeTags(p.Contexts, "context"); err != nil {
		return model.Task{}, err
	}

	if err := t.Validate(); err != nil {
		return model.Task{}, err
	}

	tasks = append(tasks, t)
	if err := m.store.Save(tasks); err != nil {
		return model.Task{}, err
	}
	m.lastID = t.ID
	return t, nil
}

func normalizeTags(tags []string, field string) ([]string, error) {
	var normalized []string
	for _, tag := range tags {
		name := util.NormalizeTag(tag)
		if name == "" {
			return nil, &model.ValidationError{Field: field, Err: fmt.Errorf("name must not be empty")}
		}
		if !util.HasTag(normalized, name) {
			normalized = append(normalized, name)
		}
	}
	return normalized, nil
}

// Get returns the task with the given id.
func (m *Manager) Get(id int) (model.Task, error) {
	tasks, err := m.load()
	if err != nil {
		return model.Task{}, err
	}
	idx := indexOf(tasks, id)
	if idx == -1 {
		return model.Task{}, fmt.Errorf("task %d: %w", id, ErrNotFound)
	}
	return tasks[idx], nil
}

const (
	DueOverdue  = "overdue"
	DueToday    = "today"
	DueUpcoming = "upcoming"
)

const (
	SortByDue      = "due"
	SortByPriority = "priority"
	SortByCreated  = "created"
)

// Filters narrow the result of List. All supplied filters combine with
// logical AND; zero values mean "no filter". Category, project, and
// context match case-insensitively.
type Filters struct {
	Status     string
	Priority   string
	Category   string
	Due        string // overdue, today, upcoming
	Eisenhower string // Q1..Q4, or "none" for unclassified
	Project    string
	Context    string
	SortBy     string // due, priority, created; default id ascending
}

// List returns the filtered collection in a stable order: id ascending
// unless SortBy is set. Tasks without a due date are excluded from every
// due filter and sort last under SortByDue.
func (m *Manager) List(f Filters) ([]model.Task, error) {
	tasks, err := m.load()
	if err != nil {
		return nil, err
	}

	var status model.Status
	if f.Status != "" {
		if status, err = model.ParseStatus(f.Status); err != nil {
			return nil, err
		}
	}
	var priority model.Priority
	if f.Priority != "" {
		if priority, err = model.ParsePriority(f.Priority); err != nil {
			return nil, err
		}
	}
	var quadrant model.Quadrant
	if f.Eisenhower != "" && !strings.EqualFold(f.Eisenhower, "none") {
		if quadrant, err = model.ParseQuadrant(f.Eisenhower); err != nil {
			return nil, err
		}
	}
	switch f.Due {
	case "", DueOverdue, DueToday, DueUpcoming:
	default:
		return nil, &model.ValidationError{Field: "due", Err: fmt.Errorf("invalid filter %q, use overdue, today or upcoming", f.Due)}
	}

	today := model.Today()
	filtered := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if f.Status != "" && t.Status != status {
			continue
		}
		if f.Priority != "" && t.Priority != priority {
			continue
		}
		if f.Category != "" && !strings.EqualFold(t.Category, f.Category) {
			continue
		}
		if f.Due != "" {
			if t.DueDate == nil {
				continue
			}
			switch f.Due {
			case DueOverdue:
				if !t.DueDate.Before(today) || t.Status == model.StatusCompleted {
					continue
				}
			case DueToday:
				if !t.DueDate.Equal(today) {
					continue
				}
			case DueUpcoming:
				if !t.DueDate.After(today) {
					continue
				}
			}
		}
		if f.Eisenhower != "" {
			if strings.EqualFold(f.Eisenhower, "none") {
				if t.Eisenhower != nil {
					continue
				}
			} else if t.Eisenhower == nil || *t.Eisenhower != quadrant {
				continue
			}
		}
		if f.Project != "" && !util.HasTag(t.Projects, f.Project) {
			continue
		}
		if f.Context != "" && !util.HasTag(t.Contexts, f.Context) {
			continue
		}
		filtered = append(filtered, t)
	}

	sortTasks(filtered, f.SortBy)
	return filtered, nil
}

func priorityRank(p model.Priority) int {
	switch p {
	case model.PriorityHigh:
		return 0
	case model.PriorityMedium:
		return 1
	default:
		return 2
	}
}

func sortTasks(tasks []model.Task, sortBy string) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].ID < tasks[j].ID
	})
	switch sortBy {
	case SortByDue:
		// Undated tasks go last
		sort.SliceStable(tasks, func(i, j int) bool {
			if tasks[i].DueDate == nil {
				return false
			}
			if tasks[j].DueDate == nil {
				return true
			}
			return tasks[i].DueDate.Before(*tasks[j].DueDate)
		})
	case SortByPriority:
		sort.SliceStable(tasks, func(i, j int) bool {
			return priorityRank(tasks[i].Priority) < priorityRank(tasks[j].Priority)
		})
	case SortByCreated:
		sort.SliceStable(tasks, func(i, j int) bool {
			return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
		})
	}
}

// Update carries an edit. A nil field is left unchanged; DueDate and
// Eisenhower distinguish "clear" from "not supplied": an empty string (or
// N/A for the due date, none for the quadrant) unsets the field. Id and
// created_at are immutable and have no update slot.
type Update struct {
	Title       *string
	Description *string
	DueDate     *string
	Priority    *string
	Category    *string
	Status      *string
	Eisenhower  *string
}

// Edit applies only the supplied fields, revalidates the whole task, and
// persists. On a validation failure nothing is written.
func (m *Manager) Edit(id int, u Update) (model.Task, error) {
	tasks, err := m.load()
	if err != nil {
		return model.Task{}, err
	}
	idx := indexOf(tasks, id)
	if idx == -1 {
		return model.Task{}, fmt.Errorf("task %d: %w", id, ErrNotFound)
	}
	t := tasks[idx]

	if u.Title != nil {
		t.Title = *u.Title
	}
	if u.Description != nil {
		// An empty string sets an empty description, it does not "clear"
		t.Description = *u.Description
	}
	if u.DueDate != nil {
		if isClearSentinel(*u.DueDate) || strings.EqualFold(*u.DueDate, "N/A") {
			t.DueDate = nil
		} else {
			due, err := model.ParseDate(*u.DueDate)
			if err != nil {
				return model.Task{}, &model.ValidationError{Field: "due_date", Err: err}
			}
			t.DueDate = &due
		}
	}
	if u.Priority != nil {
		if t.Priority, err = model.ParsePriority(*u.Priority); err != nil {
			return model.Task{}, err
		}
	}
	if u.Category != nil {
		t.Category = *u.Category
	}
	if u.Eisenhower != nil {
		if isClearSentinel(*u.Eisenhower) {
			t.Eisenhower = nil
		} else {
			quadrant, err := model.ParseQuadrant(*u.Eisenhower)
			if err != nil {
				return model.Task{}, err
			}
			t.Eisenhower = &quadrant
		}
	}
	if u.Status != nil {
		status, err := model.ParseStatus(*u.Status)
		if err != nil {
			return model.Task{}, err
		}
		if status != t.Status {
			switch status {
			case model.StatusCompleted:
				pruneDangling(tasks, &t)
				if pending := pendingDependencies(tasks, &t); len(pending) > 0 {
					return model.Task{}, fmt.Errorf("task %d blocked by %v: %w", id, pending, ErrDependenciesPending)
				}
				t.MarkComplete()
			case model.StatusPending:
				if dependents := completedDependents(tasks, id); len(dependents) > 0 {
					return model.Task{}, fmt.Errorf("task %d is required by %v: %w", id, dependents, ErrCompletedDependents)
				}
				t.MarkPending()
			}
		}
	}

	if err := t.Validate(); err != nil {
		return model.Task{}, err
	}

	tasks[idx] = t
	if err := m.store.Save(tasks); err != nil {
		return model.Task{}, err
	}
	return t, nil
}

func isClearSentinel(s string) bool {
	return s == "" || strings.EqualFold(s, "none")
}

// Complete marks a task Completed. It fails while the task has Pending
// dependencies; dependency ids that no longer exist are pruned and the
// prune persisted.
func (m *Manager) Complete(id int) (model.Task, error) {
	tasks, err := m.load()
	if err != nil {
		return model.Task{}, err
	}
	idx := indexOf(tasks, id)
	if idx == -1 {
		return model.Task{}, fmt.Errorf("task %d: %w", id, ErrNotFound)
	}
	if tasks[idx].Status == model.StatusCompleted {
		return model.Task{}, fmt.Errorf("task %d: %w", id, ErrAlreadyCompleted)
	}

	pruned := pruneDangling(tasks, &tasks[idx])

	if pending := pendingDependencies(tasks, &tasks[idx]); len(pending) > 0 {
		if pruned {
			if err := m.store.Save(tasks); err != nil {
				return model.Task{}, err
			}
		}
		return model.Task{}, fmt.Errorf("task %d blocked by %v: %w", id, pending, ErrDependenciesPending)
	}

	tasks[idx].MarkComplete()
	if err := m.store.Save(tasks); err != nil {
		return model.Task{}, err
	}
	return tasks[idx], nil
}

// Undo reverts a Completed task to Pending. It fails while a Completed
// task still depends on this one.
func (m *Manager) Undo(id int) (model.Task, error) {
	tasks, err := m.load()
	if err != nil {
		return model.Task{}, err
	}
	idx := indexOf(tasks, id)
	if idx == -1 {
		return model.Task{}, fmt.Errorf("task %d: %w", id, ErrNotFound)
	}
	if tasks[idx].Status == model.StatusPending {
		return model.Task{}, fmt.Errorf("task %d: %w", id, ErrAlreadyPending)
	}
	if dependents := completedDependents(tasks, id); len(dependents) > 0 {
		return model.Task{}, fmt.Errorf("task %d is required by %v: %w", id, dependents, ErrCompletedDependents)
	}

	tasks[idx].MarkPending()
	if err := m.store.Save(tasks); err != nil {
		return model.Task{}, err
	}
	return tasks[idx], nil
}

// Delete removes a task permanently. The id is never reused within this
// process run. Deletion is refused while other tasks depend on the task.
func (m *Manager) Delete(id int) error {
	tasks, err := m.load()
	if err != nil {
		return err
	}
	idx := indexOf(tasks, id)
	if idx == -1 {
		return fmt.Errorf("task %d: %w", id, ErrNotFound)
	}
	if dependents := dependentsOf(tasks, id); len(dependents) > 0 {
		return fmt.Errorf("task %d is required by %v: %w", id, dependents, ErrHasDependents)
	}

	tasks = append(tasks[:idx], tasks[idx+1:]...)
	return m.store.Save(tasks)
}

// AddDependency records that task id depends on depID. Adding an already
// recorded dependency is a no-op.
func (m *Manager) AddDependency(id, depID int) (model.Task, error) {
	tasks, err := m.load()
	if err != nil {
		return model.Task{}, err
	}
	idx := indexOf(tasks, id)
	if idx == -1 {
		return model.Task{}, fmt.Errorf("task %d: %w", id, ErrNotFound)
	}
	if indexOf(tasks, depID) == -1 {
		return model.Task{}, fmt.Errorf("dependency %d: %w", depID, ErrNotFound)
	}
	if id == depID {
		return model.Task{}, fmt.Errorf("task %d cannot depend on itself: %w", id, ErrDependencyCycle)
	}
	if tasks[idx].DependsOnID(depID) {
		return tasks[idx], nil
	}
	if wouldCycle(tasks, id, depID) {
		return model.Task{}, fmt.Errorf("task %d -> %d: %w", id, depID, ErrDependencyCycle)
	}

	tasks[idx].DependsOn = append(tasks[idx].DependsOn, depID)
	if err := m.store.Save(tasks); err != nil {
		return model.Task{}, err
	}
	return tasks[idx], nil
}

func (m *Manager) RemoveDependency(id, depID int) (model.Task, error) {
	tasks, err := m.load()
	if err != nil {
		return model.Task{}, err
	}
	idx := indexOf(tasks, id)
	if idx == -1 {
		return model.Task{}, fmt.Errorf("task %d: %w", id, ErrNotFound)
	}
	if !tasks[idx].DependsOnID(depID) {
		return model.Task{}, fmt.Errorf("task %d does not depend on task %d", id, depID)
	}

	kept := tasks[idx].DependsOn[:0]
	for _, existing := range tasks[idx].DependsOn {
		if existing != depID {
			kept = append(kept, existing)
		}
	}
	tasks[idx].DependsOn = kept
	if err := m.store.Save(tasks); err != nil {
		return model.Task{}, err
	}
	return tasks[idx], nil
}

// AddProject tags a task with a normalized project name. Adding a project
// the task already carries is a no-op.
func (m *Manager) AddProject(id int, name string) (model.Task, error) {
	return m.addTag(id, name, "project")
}

func (m *Manager) RemoveProject(id int, name string) (model.Task, error) {
	return m.removeTag(id, name, "project")
}

func (m *Manager) AddContext(id int, name string) (model.Task, error) {
	return m.addTag(id, name, "context")
}

func (m *Manager) RemoveContext(id int, name string) (model.Task, error) {
	return m.removeTag(id, name, "context")
}

func (m *Manager) addTag(id int, name, field string) (model.Task, error) {
	tasks, err := m.load()
	if err != nil {
		return model.Task{}, err
	}
	idx := indexOf(tasks, id)
	if idx == -1 {
		return model.Task{}, fmt.Errorf("task %d: %w", id, ErrNotFound)
	}
	normalized := util.NormalizeTag(name)
	if normalized == "" {
		return model.Task{}, &model.ValidationError{Field: field, Err: fmt.Errorf("name must not be empty")}
	}

	tags := &tasks[idx].Projects
	if field == "context" {
		tags = &tasks[idx].Contexts
	}
	if util.HasTag(*tags, normalized) {
		return tasks[idx], nil
	}
	*tags = append(*tags, normalized)

	if err := m.store.Save(tasks); err != nil {
		return model.Task{}, err
	}
	return tasks[idx], nil
}

func (m *Manager) removeTag(id int, name, field string) (model.Task, error) {
	tasks, err := m.load()
	if err != nil {
		return model.Task{}, err
	}
	idx := indexOf(tasks, id)
	if idx == -1 {
		return model.Task{}, fmt.Errorf("task %d: %w", id, ErrNotFound)
	}

	tags := &tasks[idx].Projects
	if field == "context" {
		tags = &tasks[idx].Contexts
	}
	if !util.HasTag(*tags, name) {
		return model.Task{}, fmt.Errorf("task %d has no %s %q", id, field, util.NormalizeTag(name))
	}
	*tags = util.RemoveTag(*tags, name)

	if err := m.store.Save(tasks); err != nil {
		return model.Task{}, err
	}
	return tasks[idx], nil
}

// pruneDangling drops dependency ids that no longer exist in the
// collection (a hand-edited file can reference deleted ids), reporting
// whether anything was removed.
func pruneDangling(tasks []model.Task, t *model.Task) bool {
	kept := t.DependsOn[:0]
	pruned := false
	for _, depID := range t.DependsOn {
		if indexOf(tasks, depID) == -1 {
			pruned = true
			continue
		}
		kept = append(kept, depID)
	}
	t.DependsOn = kept
	return pruned
}

func pendingDependencies(tasks []model.Task, t *model.Task) []int {
	var pending []int
	for _, depID := range t.DependsOn {
		idx := indexOf(tasks, depID)
		if idx != -1 && tasks[idx].Status == model.StatusPending {
			pending = append(pending, depID)
		}
	}
	return pending
}

func dependentsOf(tasks []model.Task, id int) []int {
	var dependents []int
	for i := range tasks {
		if tasks[i].DependsOnID(id) {
			dependents = append(dependents, tasks[i].ID)
		}
	}
	return dependents
}

func completedDependents(tasks []model.Task, id int) []int {
	var dependents []int
	for i := range tasks {
		if tasks[i].DependsOnID(id) && tasks[i].Status == model.StatusCompleted {
			dependents = append(dependents, tasks[i].ID)
		}
	}
	return dependents
}

// wouldCycle reports whether making taskID depend on depID closes a loop
// in the dependency graph (DFS from depID back to taskID).
func wouldCycle(tasks []model.Task, taskID, depID int) bool {
	visited := make(map[int]bool)
	var visit func(id int) bool
	visit = func(id int) bool {
		if id == taskID {
			return true
		}
		if visited[id] {
			return false
		}
		visited[id] = true
		idx := indexOf(tasks, id)
		if idx == -1 {
			return false
		}
		for _, next := range tasks[idx].DependsOn {
			if visit(next) {
				return true
			}
		}
		return false
	}
	return visit(depID)
}
