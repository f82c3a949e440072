package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/planner/pkg/calendar"
	"tableflip.dev/planner/pkg/commands/options"
	"tableflip.dev/planner/pkg/runner/get"
	"tableflip.dev/planner/pkg/store"
	"tableflip.dev/planner/pkg/task"
)

func addGet(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	vo := &options.ViewOptions{}

	long := strings.Builder{}
	long.WriteString("Get a calendar view of your tasks.\n\n")
	long.WriteString("Views:\n")
	for _, m := range calendar.AllModes() {
		long.WriteString(fmt.Sprintf("%s\n", m))
	}

	cmd := &cobra.Command{
		Use:   "get",
		Short: "get a calendar view of your tasks",
		Long:  long.String(),
		Example: `
planner get
planner get --view=week
planner get --view=day --on="2026-3-5"
planner get --flat --show-ids
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			mode, err := vo.GetMode()
			if err != nil {
				return err
			}
			on, err := vo.GetOn()
			if err != nil {
				return err
			}
			s := get.Get{
				ShowID:      io.ShowID,
				Mode:        mode,
				On:          on,
				Flat:        vo.Flat,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddViewArgs(cmd, vo)
	flagName := "view"
	_ = cmd.RegisterFlagCompletionFunc(flagName, func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return modeCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
	})

	options.AddShowIDArgs(cmd, io)

	for _, status := range []task.Status{task.StatusTodo, task.StatusInProgress, task.StatusDone} {
		addGetStatus(cmd, status)
	}

	topLevel.AddCommand(cmd)
}

func addGetStatus(topLevel *cobra.Command, status task.Status) {
	io := &options.IDOptions{}
	vo := &options.ViewOptions{}

	cmd := &cobra.Command{
		Use:   string(status),
		Short: fmt.Sprintf("get %s tasks", status),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			mode, err := vo.GetMode()
			if err != nil {
				return err
			}
			on, err := vo.GetOn()
			if err != nil {
				return err
			}
			s := get.Get{
				ShowID:      io.ShowID,
				Mode:        mode,
				On:          on,
				Status:      status,
				ByStatus:    true,
				Flat:        vo.Flat,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddViewArgs(cmd, vo)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}

func modeCompletions(toComplete string) []string {
	modes := calendar.AllModes()
	completions := make([]string, 0, len(modes))
	for _, m := range modes {
		if strings.HasPrefix(m.String(), toComplete) {
			completions = append(completions, m.String())
		}
	}
	return completions
}
