package calendar

import (
	"time"

	"tableflip.dev/planner/pkg/task"
)

// WeekView is seven consecutive day columns starting on Sunday.
type WeekView struct {
	Start time.Time
	Days  [7]DayView
}

// BuildWeek projects the task collection onto the week containing the
// anchor. The week starts anchor.Weekday() days before the anchor, so any
// day inside the target week produces the same seven columns.
func BuildWeek(tasks []*task.Task, anchor, now time.Time) WeekView {
	start := WeekStart(anchor)
	w := WeekView{Start: start}
	for i := range w.Days {
		w.Days[i] = BuildDay(tasks, start.AddDate(0, 0, i), now)
	}
	return w
}
