// Package app provides high-level operations over the task store so the
// CLI, the TUI and the capture pipeline can share logic.
package app

import (
	"context"
	"errors"
	"strings"

	"tableflip.dev/planner/pkg/store"
	"tableflip.dev/planner/pkg/task"
)

// Service wraps persistence and task transformations.
type Service struct {
	Persistence store.Persistence
}

var errNoPersistence = errors.New("app: no persistence configured")

// ErrNotFound is returned when a task id has no match.
var ErrNotFound = errors.New("app: task not found")

// Tasks returns the full task snapshot in stored order.
func (s *Service) Tasks(ctx context.Context) ([]*task.Task, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	return s.Persistence.Tasks(ctx), nil
}

// Categories returns the category snapshot as a lookup palette.
func (s *Service) Categories(ctx context.Context) (task.Palette, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	return task.Palette(s.Persistence.Categories(ctx)), nil
}

// Add creates and stores a new task. The due date is stored verbatim; an
// unparsable value keeps the task out of the calendar views but never
// fails the add.
func (s *Service) Add(ctx context.Context, t *task.Task) (*task.Task, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	if t == nil || strings.TrimSpace(t.Title) == "" {
		return nil, errors.New("app: task title required")
	}
	if t.Status == "" {
		t.Status = task.StatusTodo
	}
	if err := s.Persistence.Store(t); err != nil {
		return nil, err
	}
	return t, nil
}

// Edit updates the title and description for the task with the given id.
func (s *Service) Edit(ctx context.Context, id, title, description string) (*task.Task, error) {
	return s.update(ctx, id, func(t *task.Task) error {
		if strings.TrimSpace(title) == "" {
			return errors.New("app: task title required")
		}
		t.Title = title
		t.Description = description
		return nil
	})
}

// SetStatus moves the task to the given lifecycle status.
func (s *Service) SetStatus(ctx context.Context, id string, status task.Status) (*task.Task, error) {
	return s.update(ctx, id, func(t *task.Task) error {
		t.Status = status
		return nil
	})
}

// Complete marks the task done.
func (s *Service) Complete(ctx context.Context, id string) (*task.Task, error) {
	return s.SetStatus(ctx, id, task.StatusDone)
}

// SetPriority assigns the display priority for the task id.
func (s *Service) SetPriority(ctx context.Context, id string, p task.Priority) (*task.Task, error) {
	return s.update(ctx, id, func(t *task.Task) error {
		t.Priority = p
		return nil
	})
}

// Reschedule replaces the task's due date. An empty value removes the task
// from every calendar view.
func (s *Service) Reschedule(ctx context.Context, id, due string) (*task.Task, error) {
	return s.update(ctx, id, func(t *task.Task) error {
		t.DueDate = due
		return nil
	})
}

// SetCategory points the task at a category name. The name is not required
// to exist; a dangling reference renders with the default color.
func (s *Service) SetCategory(ctx context.Context, id, category string) (*task.Task, error) {
	return s.update(ctx, id, func(t *task.Task) error {
		t.Category = category
		return nil
	})
}

// Delete removes a task permanently.
func (s *Service) Delete(ctx context.Context, id string) error {
	if s.Persistence == nil {
		return errNoPersistence
	}
	for _, t := range s.Persistence.Tasks(ctx) {
		if t.ID == id {
			return s.Persistence.Delete(t)
		}
	}
	return ErrNotFound
}

// AddCategory creates or updates a named category.
func (s *Service) AddCategory(ctx context.Context, name, color string) error {
	if s.Persistence == nil {
		return errNoPersistence
	}
	return s.Persistence.StoreCategory(task.Category{Name: name, Color: color})
}

// DeleteCategory removes a category. Tasks referencing it keep the name and
// degrade to the default color.
func (s *Service) DeleteCategory(ctx context.Context, name string) error {
	if s.Persistence == nil {
		return errNoPersistence
	}
	return s.Persistence.DeleteCategory(name)
}

func (s *Service) update(ctx context.Context, id string, mutate func(*task.Task) error) (*task.Task, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	for _, t := range s.Persistence.Tasks(ctx) {
		if t.ID == id {
			if err := mutate(t); err != nil {
				return nil, err
			}
			if err := s.Persistence.Store(t); err != nil {
				return nil, err
			}
			return t, nil
		}
	}
	return nil, ErrNotFound
}
