package store

import (
	"context"
	"testing"
	"time"

	"tableflip.dev/planner/pkg/task"
)

type testConfig struct{ path string }

func (c *testConfig) BasePath() string { return c.path }

func load(t *testing.T) Persistence {
	t.Helper()
	p, err := Load(&testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return p
}

func TestStoreRoundTrip(t *testing.T) {
	p := load(t)
	ctx := context.Background()

	a := task.New("write report")
	a.DueDate = "2026-03-05T09:00:00Z"
	a.Category = "Work"
	a.Created = task.Timestamp{Time: time.Date(2026, time.March, 1, 8, 0, 0, 0, time.UTC)}
	if err := p.Store(a); err != nil {
		t.Fatalf("store: %v", err)
	}
	if a.ID == "" {
		t.Fatalf("expected id assigned on store")
	}

	b := task.New("buy groceries")
	b.Created = task.Timestamp{Time: time.Date(2026, time.March, 2, 8, 0, 0, 0, time.UTC)}
	if err := p.Store(b); err != nil {
		t.Fatalf("store: %v", err)
	}

	all := p.Tasks(ctx)
	if len(all) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(all))
	}
	if all[0].Title != "write report" || all[1].Title != "buy groceries" {
		t.Fatalf("expected created-order, got %q then %q", all[0].Title, all[1].Title)
	}
	if all[0].DueDate != a.DueDate {
		t.Fatalf("due date must survive verbatim, got %q", all[0].DueDate)
	}
	if all[0].Status != task.StatusTodo {
		t.Fatalf("expected default status, got %v", all[0].Status)
	}

	if err := p.Delete(a); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got := p.Tasks(ctx); len(got) != 1 || got[0].Title != "buy groceries" {
		t.Fatalf("expected only groceries after delete, got %d", len(got))
	}
}

func TestStoreRejectsEmptyTitle(t *testing.T) {
	p := load(t)
	if err := p.Store(task.New("  ")); err == nil {
		t.Fatalf("expected error for blank title")
	}
	if err := p.Store(nil); err == nil {
		t.Fatalf("expected error for nil task")
	}
}

func TestCategories(t *testing.T) {
	p := load(t)
	ctx := context.Background()

	if err := p.StoreCategory(task.Category{Name: "Work", Color: "#7c3aed"}); err != nil {
		t.Fatalf("store category: %v", err)
	}
	if err := p.StoreCategory(task.Category{Name: "Home", Color: "#16a34a"}); err != nil {
		t.Fatalf("store category: %v", err)
	}

	cats := p.Categories(ctx)
	if len(cats) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(cats))
	}
	if cats[0].Name != "Home" || cats[1].Name != "Work" {
		t.Fatalf("expected sorted names, got %v %v", cats[0].Name, cats[1].Name)
	}
	if cats[0].ID == "" {
		t.Fatalf("expected id assigned")
	}

	// Re-storing without a color keeps the existing one.
	if err := p.StoreCategory(task.Category{Name: "Work"}); err != nil {
		t.Fatalf("store category: %v", err)
	}
	if got, _ := task.Palette(p.Categories(ctx)).Find("Work"); got.Color != "#7c3aed" {
		t.Fatalf("expected color preserved, got %q", got.Color)
	}

	if err := p.DeleteCategory("Home"); err != nil {
		t.Fatalf("delete category: %v", err)
	}
	if got := p.Categories(ctx); len(got) != 1 {
		t.Fatalf("expected 1 category after delete, got %d", len(got))
	}
}

func TestLegacyCategoryIndexUpgrade(t *testing.T) {
	list, err := unmarshalCategories([]byte(`["Work","Home"]`))
	if err != nil {
		t.Fatalf("unmarshal legacy: %v", err)
	}
	if len(list) != 2 || list[0].Name != "Work" || list[0].Color != "" {
		t.Fatalf("unexpected upgrade result: %+v", list)
	}
}
