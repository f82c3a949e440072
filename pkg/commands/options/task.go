package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/planner/pkg/task"
)

// TaskOptions captures common task attribute flags.
type TaskOptions struct {
	PriorityString string
	Category       string
	Description    string
	Recurrence     string
}

// AddTaskArgs wires task attribute flags on the provided command.
func AddTaskArgs(cmd *cobra.Command, o *TaskOptions) {
	cmd.Flags().StringVarP(&o.PriorityString, "priority", "p", "",
		"Specify the priority: low, medium, high or urgent.")
	cmd.Flags().StringVarP(&o.Category, "category", "c", "",
		"Specify the category by name.")
	cmd.Flags().StringVar(&o.Description, "description", "",
		"Specify a longer description.")
	cmd.Flags().StringVar(&o.Recurrence, "recurrence", "",
		"Record a recurrence rule (stored, not expanded).")
}

// GetPriority parses the priority flag.
func (o *TaskOptions) GetPriority() (task.Priority, error) {
	return task.ParsePriority(o.PriorityString)
}

// IDOptions toggles task id display.
type IDOptions struct {
	ShowID bool
}

// AddShowIDArgs wires the show-ids flag.
func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVar(&o.ShowID, "show-ids", false,
		"Show task ids.")
}
