// Package calendar projects a flat task collection onto the planner's five
// temporal views. Every projection is a pure function of (tasks, anchor,
// now); nothing in this package reads the wall clock.
package calendar

import (
	"strings"
	"time"

	"tableflip.dev/planner/pkg/task"
)

const layoutISO = "2006-01-02"

// BucketKey identifies the calendar day a task belongs to, in "2006-01-02"
// form. Keys are compared verbatim: two due dates bucket together iff their
// date components match as strings. Bucketing deliberately never normalizes
// timezones, so a task entered as "2026-03-05T23:00-07:00" stays on March 5.
type BucketKey string

// KeyOf derives the bucket key from a stored due-date string by taking the
// substring before the time portion. The second return is false when the
// value is empty or its date component is not a real calendar date; such
// tasks belong to no day.
func KeyOf(due string) (BucketKey, bool) {
	datePart, _, _ := strings.Cut(due, "T")
	datePart = strings.TrimSpace(datePart)
	if datePart == "" {
		return "", false
	}
	if _, err := time.Parse(layoutISO, datePart); err != nil {
		return "", false
	}
	return BucketKey(datePart), true
}

// KeyOfDate derives the bucket key for a calendar day.
func KeyOfDate(d time.Time) BucketKey {
	return BucketKey(d.Format(layoutISO))
}

// Date reconstructs the local calendar date from the key's own components.
// The original timestamp is never re-parsed, so the rendered day cannot
// shift with the timezone the timestamp implied.
func (k BucketKey) Date() (time.Time, bool) {
	t, err := time.ParseInLocation(layoutISO, string(k), time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// TasksOn filters tasks to those bucketed on the given day. The filter is
// stable: input order is preserved and nothing is resorted.
func TasksOn(tasks []*task.Task, d time.Time) []*task.Task {
	key := KeyOfDate(d)
	out := make([]*task.Task, 0)
	for _, t := range tasks {
		if t == nil || t.DueDate == "" {
			continue
		}
		if k, ok := KeyOf(t.DueDate); ok && k == key {
			out = append(out, t)
		}
	}
	return out
}

// SameDate reports whether two instants fall on the same calendar day by
// comparing year/month/day components directly. This numeric equality is
// used only for "today" highlighting; bucket membership always goes through
// KeyOf.
func SameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// DaysIn returns the number of days in the anchor's month.
func DaysIn(anchor time.Time) int {
	first := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
	return first.AddDate(0, 1, -1).Day()
}

// StartOfDay truncates an instant to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
