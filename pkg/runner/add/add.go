package add

import (
	"context"
	"time"

	"tableflip.dev/planner/pkg/printers"
	"tableflip.dev/planner/pkg/store"
	"tableflip.dev/planner/pkg/task"
)

// Add creates a task and echoes the resulting day's list.
type Add struct {
	Title       string
	Description string
	Due         *time.Time
	Priority    task.Priority
	Category    string
	Recurrence  string

	Persistence store.Persistence
}

func (n *Add) Do(ctx context.Context) error {
	t := task.New(n.Title)
	t.Description = n.Description
	t.Priority = n.Priority
	t.Category = n.Category
	t.Recurrence = n.Recurrence
	t.Created = task.Timestamp{Time: time.Now()}
	if n.Due != nil {
		t.DueDate = n.Due.Format(time.RFC3339)
	}

	pp := printers.PrettyPrint{}
	if n.Persistence != nil {
		if err := n.Persistence.Store(t); err != nil {
			return err
		}
	}

	if n.Due != nil {
		pp.Title(n.Due.Format("January 2, 2006"))
	} else {
		pp.Title("Unscheduled")
	}
	pp.Tasks(t)
	return nil
}
