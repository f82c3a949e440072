package calendar

import (
	"testing"
	"time"

	"tableflip.dev/planner/pkg/task"
)

func TestKeyOf(t *testing.T) {
	cases := []struct {
		in   string
		want BucketKey
		ok   bool
	}{
		{"2024-05-10T09:00:00Z", "2024-05-10", true},
		{"2024-05-10T23:59:00-07:00", "2024-05-10", true},
		{"2024-05-10", "2024-05-10", true},
		{"", "", false},
		{"tomorrow", "", false},
		{"2024-13-01T00:00:00Z", "", false},
		{"2024-02-30", "", false},
	}
	for _, tc := range cases {
		got, ok := KeyOf(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("KeyOf(%q) = %q, %v; want %q, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestBucketKeyDate(t *testing.T) {
	d, ok := BucketKey("2024-03-05").Date()
	if !ok {
		t.Fatalf("expected valid date")
	}
	if d.Year() != 2024 || d.Month() != time.March || d.Day() != 5 {
		t.Fatalf("expected March 5, 2024, got %v", d)
	}
	if _, ok := BucketKey("garbage").Date(); ok {
		t.Fatalf("expected invalid key to fail")
	}
}

func TestTasksOnStableFilter(t *testing.T) {
	tasks := []*task.Task{
		{ID: "a", Title: "a", DueDate: "2024-05-10T09:00:00Z"},
		{ID: "b", Title: "b", DueDate: "2024-05-11T09:00:00Z"},
		{ID: "c", Title: "c", DueDate: "2024-05-10T01:00:00Z"},
		{ID: "d", Title: "d"},
		{ID: "e", Title: "e", DueDate: "not a date"},
	}

	on := time.Date(2024, time.May, 10, 15, 0, 0, 0, time.Local)
	got := TasksOn(tasks, on)
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "c" {
		t.Fatalf("expected [a c] in input order, got %v", ids(got))
	}
}

// Bucket consistency: membership in a day's task list must match bucket key
// equality, across every view that buckets.
func TestBucketConsistencyAcrossViews(t *testing.T) {
	tasks := []*task.Task{
		{ID: "a", DueDate: "2024-05-08T12:00:00Z"},
		{ID: "b", DueDate: "2024-05-10T00:00:00Z"},
		{ID: "c", DueDate: "2024-05-10T23:00:00-07:00"},
	}
	now := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.Local)

	for day := 1; day <= 31; day++ {
		date := time.Date(2024, time.May, day, 0, 0, 0, 0, time.Local)
		want := map[string]bool{}
		for _, tk := range tasks {
			if k, ok := KeyOf(tk.DueDate); ok && k == KeyOfDate(date) {
				want[tk.ID] = true
			}
		}

		dv := BuildDay(tasks, date, now)
		if len(dv.Tasks) != len(want) {
			t.Fatalf("day %d: day view has %d tasks, want %d", day, len(dv.Tasks), len(want))
		}
		for _, tk := range dv.Tasks {
			if !want[tk.ID] {
				t.Fatalf("day %d: unexpected task %s in day view", day, tk.ID)
			}
		}

		mv := BuildMonth(tasks, date, now)
		cell := mv.Cells[mv.Offset+day-1]
		if len(cell.Tasks) != len(want) {
			t.Fatalf("day %d: month cell has %d tasks, want %d", day, len(cell.Tasks), len(want))
		}

		wv := BuildWeek(tasks, date, now)
		var col *DayView
		for i := range wv.Days {
			if SameDate(wv.Days[i].Date, date) {
				col = &wv.Days[i]
			}
		}
		if col == nil {
			t.Fatalf("day %d: missing week column", day)
		}
		if len(col.Tasks) != len(want) {
			t.Fatalf("day %d: week column has %d tasks, want %d", day, len(col.Tasks), len(want))
		}
	}
}

func TestSameDate(t *testing.T) {
	a := time.Date(2024, time.May, 10, 23, 59, 0, 0, time.Local)
	b := time.Date(2024, time.May, 10, 0, 0, 1, 0, time.Local)
	if !SameDate(a, b) {
		t.Fatalf("expected same date")
	}
	if SameDate(a, b.AddDate(0, 0, 1)) {
		t.Fatalf("expected different date")
	}
}

func ids(tasks []*task.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}
