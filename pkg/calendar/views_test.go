package calendar

import (
	"testing"
	"time"

	"tableflip.dev/planner/pkg/task"
)

// January 2024 has 31 days and starts on a Monday (offset 1), so the grid is
// exactly 32 cells with no trailing padding.
func TestMonthGridLength(t *testing.T) {
	now := date(2024, time.January, 15)
	v := BuildMonth(nil, date(2024, time.January, 10), now)

	if v.Offset != 1 {
		t.Fatalf("expected offset 1 for January 2024, got %d", v.Offset)
	}
	if len(v.Cells) != 32 {
		t.Fatalf("expected 32 cells, got %d", len(v.Cells))
	}
	if !v.Cells[0].Blank() {
		t.Fatalf("expected leading blank cell")
	}
	if v.Cells[1].Day != 1 || v.Cells[31].Day != 31 {
		t.Fatalf("expected days 1..31 after the pad, got %d..%d", v.Cells[1].Day, v.Cells[31].Day)
	}
	if !v.Cells[15].IsToday {
		t.Fatalf("expected Jan 15 flagged as today")
	}

	rows := v.Rows()
	if len(rows) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(rows))
	}
	if len(rows[4]) != 4 {
		t.Fatalf("expected short last row of 4 cells, got %d", len(rows[4]))
	}
}

// September 2024 starts on a Sunday: no leading pad at all.
func TestMonthGridNoOffset(t *testing.T) {
	v := BuildMonth(nil, date(2024, time.September, 3), date(2024, time.January, 1))
	if v.Offset != 0 {
		t.Fatalf("expected offset 0, got %d", v.Offset)
	}
	if len(v.Cells) != 30 || v.Cells[0].Day != 1 {
		t.Fatalf("expected 30 cells starting at day 1, got %d cells", len(v.Cells))
	}
}

func TestBuildWeekColumns(t *testing.T) {
	tasks := []*task.Task{
		{ID: "a", DueDate: "2024-05-06T09:00:00Z"}, // Monday
		{ID: "b", DueDate: "2024-05-06T10:00:00Z"},
		{ID: "c", DueDate: "2024-05-11T10:00:00Z"}, // Saturday
	}
	now := date(2024, time.May, 8)

	// Anchor mid-week; the same week must come back for any anchor day.
	v := BuildWeek(tasks, date(2024, time.May, 8), now)
	if !v.Start.Equal(date(2024, time.May, 5)) {
		t.Fatalf("expected week starting May 5, got %v", v.Start)
	}
	if v.Days[0].Date.Weekday() != time.Sunday {
		t.Fatalf("expected Sunday first")
	}
	if got := ids(v.Days[1].Tasks); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("expected [a b] on Monday in input order, got %v", got)
	}
	if got := ids(v.Days[6].Tasks); len(got) != 1 || got[0] != "c" {
		t.Fatalf("expected [c] on Saturday, got %v", got)
	}
	if !v.Days[3].IsToday {
		t.Fatalf("expected Wednesday flagged as today")
	}

	again := BuildWeek(tasks, date(2024, time.May, 11), now)
	if !again.Start.Equal(v.Start) {
		t.Fatalf("any anchor within the week must give the same start")
	}
}

func TestBuildDay(t *testing.T) {
	tasks := []*task.Task{
		{ID: "a", DueDate: "2024-05-10T09:00:00Z"},
		{ID: "b", DueDate: "2024-05-12T09:00:00Z"},
	}
	v := BuildDay(tasks, date(2024, time.May, 10), date(2024, time.May, 10))
	if !v.IsToday {
		t.Fatalf("expected today flag")
	}
	if len(v.Tasks) != 1 || v.Tasks[0].ID != "a" {
		t.Fatalf("expected only task a, got %v", ids(v.Tasks))
	}

	v = BuildDay(tasks, date(2024, time.May, 10), date(2024, time.May, 11))
	if v.IsToday {
		t.Fatalf("did not expect today flag")
	}
}

func TestBuildYear(t *testing.T) {
	tasks := []*task.Task{
		{ID: "a", DueDate: "2024-03-05T09:00:00Z"},
		{ID: "b", DueDate: "2024-03-05T22:00:00Z"},
		{ID: "c", DueDate: "2024-12-31"},
		{ID: "x", DueDate: "bogus"},
	}
	now := date(2024, time.March, 7)
	v := BuildYear(tasks, date(2024, time.June, 1), now)

	march := v.Months[time.March-1]
	if !march.Days[4].HasTask {
		t.Fatalf("expected March 5 to have a task")
	}
	if march.Days[5].HasTask {
		t.Fatalf("March 6 should be empty")
	}
	if !march.Days[6].IsToday {
		t.Fatalf("expected March 7 flagged as today")
	}

	dec := v.Months[time.December-1]
	if !dec.Days[30].HasTask {
		t.Fatalf("expected December 31 to have a task")
	}

	// Mini grids share the month-view shape.
	feb := v.Months[time.February-1]
	if len(feb.Days) != 29 {
		t.Fatalf("expected 29 days in Feb 2024, got %d", len(feb.Days))
	}
	first := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.Local)
	if feb.Offset != int(first.Weekday()) {
		t.Fatalf("offset mismatch: %d", feb.Offset)
	}
}

// Empty task collections must render every view's skeleton without tasks.
func TestEmptyCollections(t *testing.T) {
	now := date(2024, time.May, 10)
	anchor := now

	if v := BuildDay(nil, anchor, now); len(v.Tasks) != 0 {
		t.Fatalf("day view should be empty")
	}
	wv := BuildWeek(nil, anchor, now)
	for i, d := range wv.Days {
		if len(d.Tasks) != 0 {
			t.Fatalf("week column %d should be empty", i)
		}
	}
	mv := BuildMonth(nil, anchor, now)
	if len(mv.Cells) != mv.Offset+31 {
		t.Fatalf("month grid shape should not depend on tasks")
	}
	for _, c := range mv.Cells {
		if len(c.Tasks) != 0 {
			t.Fatalf("month cell should be empty")
		}
	}
	yv := BuildYear(nil, anchor, now)
	for _, m := range yv.Months {
		for _, d := range m.Days {
			if d.HasTask {
				t.Fatalf("year view should have no task markers")
			}
		}
	}
	if sv := BuildSchedule(nil, now); len(sv.Groups) != 0 {
		t.Fatalf("schedule should have no groups")
	}
}
