package get

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/planner/pkg/calendar"
	"tableflip.dev/planner/pkg/printers"
	"tableflip.dev/planner/pkg/store"
	"tableflip.dev/planner/pkg/task"
)

// Get renders one of the five calendar views, or a flat task table, for the
// current store contents.
type Get struct {
	ShowID   bool
	Mode     calendar.Mode
	On       *time.Time
	Status   task.Status
	ByStatus bool
	Flat     bool

	Persistence store.Persistence
}

func (n *Get) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not get, no persistence")
	}

	now := time.Now()
	anchor := now
	if n.On != nil {
		anchor = *n.On
	}

	all := n.Persistence.Tasks(ctx)
	if n.ByStatus {
		all = n.filtered(all)
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID, Now: now}

	if n.Flat {
		pp.Table(all...)
		return nil
	}

	switch n.Mode {
	case calendar.ModeDay:
		pp.Day(calendar.BuildDay(all, anchor, now))
	case calendar.ModeWeek:
		pp.Week(calendar.BuildWeek(all, anchor, now))
	case calendar.ModeYear:
		pp.Year(calendar.BuildYear(all, anchor, now))
	case calendar.ModeSchedule:
		pp.Schedule(calendar.BuildSchedule(all, now))
	default:
		pp.Month(calendar.BuildMonth(all, anchor, now))
	}
	return nil
}

func (n *Get) filtered(all []*task.Task) []*task.Task {
	c := make([]*task.Task, 0, len(all))
	for _, t := range all {
		if t.Status == n.Status {
			c = append(c, t)
		}
	}
	return c
}
