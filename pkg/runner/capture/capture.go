package capture

import (
	"context"
	"errors"

	"tableflip.dev/planner/pkg/assistant"
	"tableflip.dev/planner/pkg/printers"
	"tableflip.dev/planner/pkg/store"
)

// Capture sends free text through the assistant and stores the drafted task.
type Capture struct {
	Text   string
	DryRun bool

	Client      *assistant.Client
	Persistence store.Persistence
}

func (n *Capture) Do(ctx context.Context) error {
	if n.Client == nil {
		return errors.New("can not capture, no assistant configured")
	}

	t, err := n.Client.Capture(ctx, n.Text)
	if err != nil {
		return err
	}

	if !n.DryRun {
		if n.Persistence == nil {
			return errors.New("can not capture, no persistence")
		}
		if err := n.Persistence.Store(t); err != nil {
			return err
		}
	}

	pp := printers.PrettyPrint{}
	pp.Title("Captured")
	pp.Tasks(t)
	return nil
}
