package calendar

import (
	"fmt"
	"strings"
	"time"
)

// Mode selects one of the five temporal views.
type Mode int

const (
	ModeDay Mode = iota
	ModeWeek
	ModeMonth
	ModeYear
	ModeSchedule
)

// AllModes returns the supported view modes in display order.
func AllModes() []Mode {
	return []Mode{ModeDay, ModeWeek, ModeMonth, ModeYear, ModeSchedule}
}

func (m Mode) String() string {
	switch m {
	case ModeDay:
		return "day"
	case ModeWeek:
		return "week"
	case ModeMonth:
		return "month"
	case ModeYear:
		return "year"
	case ModeSchedule:
		return "schedule"
	}
	return "month"
}

// ParseMode converts a string to a Mode. Empty input defaults to Month.
func ParseMode(raw string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return ModeMonth, nil
	case "day", "d":
		return ModeDay, nil
	case "week", "w":
		return ModeWeek, nil
	case "month", "m":
		return ModeMonth, nil
	case "year", "y":
		return ModeYear, nil
	case "schedule", "agenda", "s":
		return ModeSchedule, nil
	}
	return ModeMonth, fmt.Errorf("calendar: unknown view mode %q", raw)
}

// State holds the transient view state: which view is active and the date it
// is anchored on. It is never persisted and resets on every run.
type State struct {
	Anchor time.Time
	Mode   Mode
}

// NewState starts on the month view anchored on now.
func NewState(now time.Time) State {
	return State{Anchor: now, Mode: ModeMonth}
}

// Advance moves the anchor one step in the given direction for the active
// view mode.
func (s *State) Advance(dir Direction) {
	s.Anchor = Advance(s.Anchor, s.Mode, dir)
}

// Today resets the anchor to now without changing the view mode. Calling it
// repeatedly with the same now is a no-op after the first call.
func (s *State) Today(now time.Time) {
	s.Anchor = now
}

// SetMode switches the active view, keeping the anchor.
func (s *State) SetMode(m Mode) {
	s.Mode = m
}

// SelectDate jumps the anchor to an externally chosen date and switches to
// the day view. This is the Year→Day cross-view transition; it is also how
// other tabs hand a date to the calendar.
func (s *State) SelectDate(d time.Time) {
	s.Anchor = d
	s.Mode = ModeDay
}
