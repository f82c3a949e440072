package calendar

import (
	"sort"
	"time"

	"tableflip.dev/planner/pkg/task"
)

// ScheduleGroup is one calendar day's worth of tasks in the schedule view.
// Date is reconstructed from the bucket key components, so the group header
// always shows the same day the tasks were bucketed on.
type ScheduleGroup struct {
	Key   BucketKey
	Date  time.Time
	Past  bool
	Tasks []*task.Task
}

// ScheduleView is every dated task, ordered chronologically and grouped by
// day. Past groups are kept and only flagged; nothing is dropped.
type ScheduleView struct {
	Groups []ScheduleGroup
}

// chronoLayouts are tried in order when ranking due dates on the timeline.
// Bucket membership stays a string comparison; the full timestamp is used
// only to order tasks within the schedule.
var chronoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

func dueChrono(due string) (time.Time, bool) {
	key, ok := KeyOf(due)
	if !ok {
		return time.Time{}, false
	}
	for _, layout := range chronoLayouts {
		if t, err := time.ParseInLocation(layout, due, time.Local); err == nil {
			return t, true
		}
	}
	// Date part is valid but the time portion is in some unknown shape;
	// rank it at midnight of its bucket day.
	d, _ := key.Date()
	return d, true
}

// BuildSchedule projects the task collection onto the global timeline. The
// anchor plays no part here; the view always shows everything dated.
func BuildSchedule(tasks []*task.Task, now time.Time) ScheduleView {
	type dated struct {
		t    *task.Task
		key  BucketKey
		when time.Time
	}

	items := make([]dated, 0, len(tasks))
	for _, t := range tasks {
		if t == nil || t.DueDate == "" {
			continue
		}
		key, ok := KeyOf(t.DueDate)
		if !ok {
			continue
		}
		when, _ := dueChrono(t.DueDate)
		items = append(items, dated{t: t, key: key, when: when})
	}

	// Stable: ties keep input-collection order.
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].when.Before(items[j].when)
	})

	v := ScheduleView{}
	for _, it := range items {
		n := len(v.Groups)
		if n == 0 || v.Groups[n-1].Key != it.key {
			date, _ := it.key.Date()
			v.Groups = append(v.Groups, ScheduleGroup{
				Key:  it.key,
				Date: date,
				Past: date.Before(StartOfDay(now)),
			})
			n++
		}
		v.Groups[n-1].Tasks = append(v.Groups[n-1].Tasks, it.t)
	}
	return v
}
