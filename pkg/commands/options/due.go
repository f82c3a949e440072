// Package options defines shared flag helpers for CLI commands.
package options

import (
	"time"

	"github.com/spf13/cobra"
)

const (
	layoutISO      = "2006-1-2"
	layoutISOShort = "1/2"
)

// DueOptions captures the due-date flag.
type DueOptions struct {
	DueString string
}

// AddDueArgs wires the due flag on the provided command.
func AddDueArgs(cmd *cobra.Command, o *DueOptions) {
	cmd.Flags().StringVar(&o.DueString, "due", "",
		`Specify a due date, example: --due="2026-2-28" or --due="2/28".`)
}

// GetDue parses the flag. Short month/day input picks the next occurrence.
func (o *DueOptions) GetDue() (*time.Time, error) {
	if o.DueString == "" {
		return nil, nil
	}
	t, err := time.Parse(layoutISO, o.DueString)
	if err != nil {
		// Let the year be the same.
		t, err = time.Parse(layoutISOShort, o.DueString)
		if err != nil {
			return nil, err
		}
		t = t.AddDate(time.Now().Year(), 0, 0)
		// If you said 1/3 on 12/5, you meant next year, not 11 months ago.
		if t.Before(time.Now()) {
			t = t.AddDate(1, 0, 0)
		}
	}
	return &t, nil
}
