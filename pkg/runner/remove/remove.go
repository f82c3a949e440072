package remove

import (
	"context"

	"tableflip.dev/planner/pkg/app"
	"tableflip.dev/planner/pkg/printers"
	"tableflip.dev/planner/pkg/store"
)

// Remove deletes a task.
type Remove struct {
	ID string

	Persistence store.Persistence
}

func (n *Remove) Do(ctx context.Context) error {
	svc := &app.Service{Persistence: n.Persistence}
	if err := svc.Delete(ctx, n.ID); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Title("Removed " + n.ID)
	return nil
}
