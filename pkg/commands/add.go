package commands

import (
	"context"
	"errors"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/planner/pkg/commands/options"
	"tableflip.dev/planner/pkg/runner/add"
	"tableflip.dev/planner/pkg/store"
)

func addAdd(topLevel *cobra.Command) {
	do := &options.DueOptions{}
	to := &options.TaskOptions{}

	var title string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task",
		Example: `
planner add water the plants
planner add pay rent --due="2026-3-1" --priority=high
planner add standup --due="5/12" --category=work
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a task title")
			}
			title = strings.Join(args, " ")

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			due, err := do.GetDue()
			if err != nil {
				return err
			}
			priority, err := to.GetPriority()
			if err != nil {
				return err
			}

			s := add.Add{
				Title:       title,
				Description: to.Description,
				Due:         due,
				Priority:    priority,
				Category:    to.Category,
				Recurrence:  to.Recurrence,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddDueArgs(cmd, do)
	options.AddTaskArgs(cmd, to)

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
