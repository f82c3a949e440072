package complete

import (
	"context"

	"tableflip.dev/planner/pkg/app"
	"tableflip.dev/planner/pkg/printers"
	"tableflip.dev/planner/pkg/store"
)

// Complete marks a task done.
type Complete struct {
	ID string

	Persistence store.Persistence
}

func (n *Complete) Do(ctx context.Context) error {
	svc := &app.Service{Persistence: n.Persistence}
	t, err := svc.Complete(ctx, n.ID)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Title("Completed")
	pp.Tasks(t)
	return nil
}
