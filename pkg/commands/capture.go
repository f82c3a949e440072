package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/planner/pkg/assistant"
	"tableflip.dev/planner/pkg/runner/capture"
	"tableflip.dev/planner/pkg/store"
)

func addCapture(topLevel *cobra.Command) {
	var dryRun bool
	var text string

	cmd := &cobra.Command{
		Use:   "capture",
		Short: "turn free text into a task with the assistant",
		Example: `
planner capture dentist appointment next friday at 3
planner capture --dry-run file taxes in april
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires text to capture")
			}
			text = strings.Join(args, " ")

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			c, err := assistant.LoadClient()
			if err != nil {
				return err
			}
			s := capture.Capture{
				Text:        text,
				DryRun:      dryRun,
				Client:      c,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false,
		"Print the drafted task without storing it.")

	topLevel.AddCommand(cmd)
}
