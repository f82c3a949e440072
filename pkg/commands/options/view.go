package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/planner/pkg/calendar"
)

// ViewOptions captures the calendar view selection flags.
type ViewOptions struct {
	ModeString string
	OnString   string
	Flat       bool
}

// AddViewArgs wires view selection flags on the provided command.
func AddViewArgs(cmd *cobra.Command, o *ViewOptions) {
	cmd.Flags().StringVarP(&o.ModeString, "view", "v", "month",
		"Specify the view: day, week, month, year or schedule.")
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Anchor the view on a date, example: --on="2026-2-28".`)
	cmd.Flags().BoolVar(&o.Flat, "flat", false,
		"Print a flat task table instead of a calendar view.")
}

// GetMode parses the view flag.
func (o *ViewOptions) GetMode() (calendar.Mode, error) {
	return calendar.ParseMode(o.ModeString)
}

// GetOn parses the anchor flag using the due-date layouts.
func (o *ViewOptions) GetOn() (*time.Time, error) {
	return (&DueOptions{DueString: o.OnString}).GetDue()
}
