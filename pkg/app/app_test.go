package app

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"tableflip.dev/planner/pkg/task"
)

type memoryPersistence struct {
	mu         sync.Mutex
	counter    int
	tasks      map[string]*task.Task
	categories map[string]task.Category
}

func newMemoryPersistence(tasks ...*task.Task) *memoryPersistence {
	mp := &memoryPersistence{
		tasks:      make(map[string]*task.Task),
		categories: make(map[string]task.Category),
	}
	for _, t := range tasks {
		if t == nil {
			continue
		}
		if t.ID == "" {
			t.ID = mp.newID()
		}
		mp.tasks[t.ID] = cloneTask(t)
	}
	return mp
}

func (m *memoryPersistence) newID() string {
	m.counter++
	return fmt.Sprintf("id-%d", m.counter)
}

func (m *memoryPersistence) Tasks(_ context.Context) []*task.Task {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*task.Task, 0, len(m.tasks))
	for _, t := range m.tasks {
		out = append(out, cloneTask(t))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (m *memoryPersistence) Categories(_ context.Context) []task.Category {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]task.Category, 0, len(m.categories))
	for _, c := range m.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (m *memoryPersistence) Store(t *task.Task) error {
	if t == nil {
		return errors.New("nil task")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if t.ID == "" {
		t.ID = m.newID()
	}
	m.tasks[t.ID] = cloneTask(t)
	return nil
}

func (m *memoryPersistence) Delete(t *task.Task) error {
	if t == nil {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.tasks, t.ID)
	return nil
}

func (m *memoryPersistence) StoreCategory(c task.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.categories[c.Name] = c
	return nil
}

func (m *memoryPersistence) DeleteCategory(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.categories, name)
	return nil
}

func cloneTask(t *task.Task) *task.Task {
	cp := *t
	return &cp
}

func TestServiceRequiresPersistence(t *testing.T) {
	s := &Service{}
	if _, err := s.Tasks(context.Background()); err == nil {
		t.Fatalf("expected error without persistence")
	}
	if _, err := s.Add(context.Background(), task.New("x")); err == nil {
		t.Fatalf("expected error without persistence")
	}
}

func TestServiceAddAndComplete(t *testing.T) {
	s := &Service{Persistence: newMemoryPersistence()}
	ctx := context.Background()

	created, err := s.Add(ctx, &task.Task{Title: "write report", DueDate: "2026-03-05T09:00:00Z"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected id assigned")
	}
	if created.Status != task.StatusTodo {
		t.Fatalf("expected todo status, got %v", created.Status)
	}

	done, err := s.Complete(ctx, created.ID)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if done.Status != task.StatusDone {
		t.Fatalf("expected done, got %v", done.Status)
	}

	if _, err := s.Add(ctx, task.New(" ")); err == nil {
		t.Fatalf("expected error for blank title")
	}
}

func TestServiceEditAndReschedule(t *testing.T) {
	s := &Service{Persistence: newMemoryPersistence(
		&task.Task{ID: "a", Title: "old", DueDate: "2026-03-05"},
	)}
	ctx := context.Background()

	got, err := s.Edit(ctx, "a", "new title", "details")
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	if got.Title != "new title" || got.Description != "details" {
		t.Fatalf("edit did not apply: %+v", got)
	}

	if _, err := s.Edit(ctx, "a", "", ""); err == nil {
		t.Fatalf("expected error for blank title")
	}
	if _, err := s.Edit(ctx, "missing", "x", ""); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if _, err := s.Reschedule(ctx, "a", "2026-04-01"); err != nil {
		t.Fatalf("reschedule: %v", err)
	}
	all, _ := s.Tasks(ctx)
	if all[0].DueDate != "2026-04-01" {
		t.Fatalf("expected new due date, got %q", all[0].DueDate)
	}
}

func TestServiceDelete(t *testing.T) {
	s := &Service{Persistence: newMemoryPersistence(
		&task.Task{ID: "a", Title: "x"},
	)}
	ctx := context.Background()

	if err := s.Delete(ctx, "a"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := s.Delete(ctx, "a"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestServiceCategories(t *testing.T) {
	s := &Service{Persistence: newMemoryPersistence()}
	ctx := context.Background()

	if err := s.AddCategory(ctx, "Work", "#7c3aed"); err != nil {
		t.Fatalf("add category: %v", err)
	}
	pal, err := s.Categories(ctx)
	if err != nil {
		t.Fatalf("categories: %v", err)
	}
	if got := pal.ColorFor("Work"); got != "#7c3aed" {
		t.Fatalf("expected stored color, got %q", got)
	}
	if got := pal.ColorFor("Missing"); got != task.DefaultColor {
		t.Fatalf("expected default color for dangling reference, got %q", got)
	}
}

func TestServiceStats(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.Local)
	s := &Service{Persistence: newMemoryPersistence(
		&task.Task{ID: "a", Title: "done", Status: task.StatusDone, DueDate: "2026-03-01"},
		&task.Task{ID: "b", Title: "overdue", Status: task.StatusTodo, DueDate: "2026-03-01"},
		&task.Task{ID: "c", Title: "today", Status: task.StatusTodo, DueDate: "2026-03-10T18:00:00Z", Priority: task.Urgent},
		&task.Task{ID: "d", Title: "undated", Status: task.StatusTodo},
		&task.Task{ID: "e", Title: "bad date", Status: task.StatusTodo, DueDate: "whenever"},
	)}

	st, err := s.Stats(context.Background(), now)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if st.Total != 5 || st.Done != 1 || st.Open != 4 {
		t.Fatalf("unexpected totals: %+v", st)
	}
	if st.Overdue != 1 {
		t.Fatalf("expected 1 overdue, got %d", st.Overdue)
	}
	if st.DueToday != 1 {
		t.Fatalf("expected 1 due today, got %d", st.DueToday)
	}
	// Both the undated and the unparsable task count as undated; neither
	// is lost from the totals.
	if st.Undated != 2 {
		t.Fatalf("expected 2 undated, got %d", st.Undated)
	}
	if st.ByPriority["urgent"] != 1 {
		t.Fatalf("expected 1 urgent, got %d", st.ByPriority["urgent"])
	}
}
