// Package timeutil formats calendar distances for task chips.
package timeutil

import (
	"fmt"
	"time"
)

// DaysBetween counts whole calendar days from one local date to another,
// ignoring time of day. The result is negative when "to" is in the past.
func DaysBetween(from, to time.Time) int {
	a := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a) / (24 * time.Hour))
}

// Relative renders the distance from now to a due date the way chips show
// it: "today", "tomorrow", "in 3d", "2w overdue".
func Relative(now, due time.Time) string {
	days := DaysBetween(now, due)
	switch {
	case days == 0:
		return "today"
	case days == 1:
		return "tomorrow"
	case days == -1:
		return "yesterday"
	case days > 0:
		return "in " + span(days)
	default:
		return span(-days) + " overdue"
	}
}

func span(days int) string {
	switch {
	case days >= 365:
		return fmt.Sprintf("%dy", days/365)
	case days >= 7:
		return fmt.Sprintf("%dw", days/7)
	default:
		return fmt.Sprintf("%dd", days)
	}
}
