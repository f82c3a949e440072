package calendar

import "time"

// Direction is a navigation step.
type Direction int

const (
	Prev Direction = -1
	Next Direction = 1
)

// Advance computes the next anchor date for a navigation step in the active
// view mode. Month and year steps clamp the day-of-month to the last valid
// day of the target month, so Jan 31 + 1 month lands on Feb 28/29, never
// Mar 2. The schedule view does not filter on its anchor but still advances
// by month to keep the control consistent.
func Advance(anchor time.Time, mode Mode, dir Direction) time.Time {
	switch mode {
	case ModeDay:
		return anchor.AddDate(0, 0, int(dir))
	case ModeWeek:
		return anchor.AddDate(0, 0, 7*int(dir))
	case ModeMonth, ModeSchedule:
		return addMonthsClamped(anchor, int(dir))
	case ModeYear:
		return addMonthsClamped(anchor, 12*int(dir))
	}
	return anchor
}

// addMonthsClamped shifts by whole months, clamping the day-of-month instead
// of letting time.AddDate roll overflow into the next month.
func addMonthsClamped(t time.Time, months int) time.Time {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	first = first.AddDate(0, months, 0)

	day := t.Day()
	if max := DaysIn(first); day > max {
		day = max
	}
	return time.Date(first.Year(), first.Month(), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// WeekStart returns the Sunday on or before the given date.
func WeekStart(d time.Time) time.Time {
	return StartOfDay(d).AddDate(0, 0, -int(d.Weekday()))
}
