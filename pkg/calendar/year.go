package calendar

import (
	"time"

	"tableflip.dev/planner/pkg/task"
)

// YearDay is one day of a miniature month grid. Only presence is recorded;
// the year view never renders task lists.
type YearDay struct {
	Day     int
	HasTask bool
	IsToday bool
}

// YearMonth is a miniature month grid with the same leading-offset shape as
// the full month view.
type YearMonth struct {
	Month  time.Month
	Offset int
	Days   []YearDay
}

// YearView is twelve miniature months for the anchor's year.
type YearView struct {
	Year   int
	Months [12]YearMonth
}

// BuildYear projects the task collection onto the anchor's year. Selecting
// a day from this view goes through State.SelectDate, which switches to the
// day view.
func BuildYear(tasks []*task.Task, anchor, now time.Time) YearView {
	v := YearView{Year: anchor.Year()}

	// Index bucket keys once rather than filtering 365 times.
	have := make(map[BucketKey]bool, len(tasks))
	for _, t := range tasks {
		if t == nil || t.DueDate == "" {
			continue
		}
		if k, ok := KeyOf(t.DueDate); ok {
			have[k] = true
		}
	}

	for m := time.January; m <= time.December; m++ {
		first := time.Date(anchor.Year(), m, 1, 0, 0, 0, 0, anchor.Location())
		days := DaysIn(first)
		ym := YearMonth{
			Month:  m,
			Offset: int(first.Weekday()),
			Days:   make([]YearDay, 0, days),
		}
		for day := 1; day <= days; day++ {
			date := time.Date(anchor.Year(), m, day, 0, 0, 0, 0, anchor.Location())
			ym.Days = append(ym.Days, YearDay{
				Day:     day,
				HasTask: have[KeyOfDate(date)],
				IsToday: SameDate(date, now),
			})
		}
		v.Months[m-1] = ym
	}
	return v
}
