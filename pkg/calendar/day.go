package calendar

import (
	"time"

	"tableflip.dev/planner/pkg/task"
)

// DayView is the single-day projection: the anchor's task list plus the
// "is this the real today" highlight flag.
type DayView struct {
	Date    time.Time
	IsToday bool
	Tasks   []*task.Task
}

// BuildDay projects the task collection onto the anchor's day.
func BuildDay(tasks []*task.Task, anchor, now time.Time) DayView {
	return DayView{
		Date:    StartOfDay(anchor),
		IsToday: SameDate(anchor, now),
		Tasks:   TasksOn(tasks, anchor),
	}
}
