// Package task defines the planner's domain model: tasks, categories and
// the parse helpers shared by the CLI, the TUI and the calendar engine.
package task

import (
	"fmt"
	"strings"
)

// Priority orders tasks by severity for display only.
type Priority int

const (
	Low Priority = iota
	Medium
	High
	Urgent
)

// AllPriorities returns the supported priorities from least to most severe.
func AllPriorities() []Priority {
	return []Priority{Low, Medium, High, Urgent}
}

func (p Priority) String() string {
	switch p {
	case Low:
		return "low"
	case Medium:
		return "medium"
	case High:
		return "high"
	case Urgent:
		return "urgent"
	}
	return "medium"
}

// ParsePriority converts a string to a Priority or returns an error for
// unknown values. Empty input defaults to Medium.
func ParsePriority(raw string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return Medium, nil
	case "low", "l":
		return Low, nil
	case "medium", "med", "m":
		return Medium, nil
	case "high", "h":
		return High, nil
	case "urgent", "u":
		return Urgent, nil
	}
	return Medium, fmt.Errorf("task: unknown priority %q", raw)
}

// MustPriority parses the input and panics on error. Intended for tests/config.
func MustPriority(raw string) Priority {
	p, err := ParsePriority(raw)
	if err != nil {
		panic(err)
	}
	return p
}

// Status tracks where a task is in its lifecycle.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in-progress"
	StatusDone       Status = "done"
)

// AllStatuses returns the list of supported statuses.
func AllStatuses() []Status {
	return []Status{StatusTodo, StatusInProgress, StatusDone}
}

// ParseStatus converts a string to a Status. Empty input defaults to Todo.
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToLower(strings.TrimSpace(raw)))
	if s == "" {
		return StatusTodo, nil
	}
	for _, candidate := range AllStatuses() {
		if candidate == s {
			return candidate, nil
		}
	}
	return StatusTodo, fmt.Errorf("task: unknown status %q", raw)
}

// Task is a single planner item. DueDate holds the raw ISO-8601 string as
// entered; the calendar engine buckets on its date component and a value
// that does not parse simply never lands on a calendar day.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	DueDate     string    `json:"dueDate,omitempty"`
	Priority    Priority  `json:"priority"`
	Status      Status    `json:"status"`
	Category    string    `json:"category,omitempty"`
	Recurrence  string    `json:"recurrence,omitempty"`
	Created     Timestamp `json:"created"`
}

// New creates a task with defaults applied. The ID is assigned by the store.
func New(title string) *Task {
	return &Task{
		Title:    title,
		Priority: Medium,
		Status:   StatusTodo,
	}
}

// Done reports whether the task is completed.
func (t *Task) Done() bool {
	return t.Status == StatusDone
}

func (t *Task) String() string {
	if t.Category == "" {
		return t.Title
	}
	return fmt.Sprintf("%s [%s]", t.Title, t.Category)
}
