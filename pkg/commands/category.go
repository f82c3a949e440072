package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/planner/pkg/runner/category"
	"tableflip.dev/planner/pkg/store"
)

func addCategory(topLevel *cobra.Command) {
	var (
		colorHex string
		remove   bool
		name     string
	)

	cmd := &cobra.Command{
		Use:     "category [name]",
		Aliases: []string{"categories", "cat"},
		Short:   "list, create or remove categories",
		Example: `
planner category
planner category work --color="#3b82f6"
planner category work --remove
`,
		Args: func(_ *cobra.Command, args []string) error {
			name = strings.Join(args, " ")
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := category.Category{
				Name:        name,
				Color:       colorHex,
				Remove:      remove,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&colorHex, "color", "",
		`Hex color for the category, example: --color="#3b82f6".`)
	cmd.Flags().BoolVar(&remove, "remove", false,
		"Remove the named category.")

	topLevel.AddCommand(cmd)
}
