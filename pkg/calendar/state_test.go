package calendar

import (
	"testing"
	"time"
)

func TestNewStateDefaults(t *testing.T) {
	now := date(2024, time.May, 10)
	s := NewState(now)
	if s.Mode != ModeMonth {
		t.Fatalf("expected month mode by default, got %v", s.Mode)
	}
	if !s.Anchor.Equal(now) {
		t.Fatalf("expected anchor = now, got %v", s.Anchor)
	}
}

func TestTodayIdempotent(t *testing.T) {
	now := date(2024, time.May, 10)
	s := NewState(date(2024, time.January, 1))
	s.SetMode(ModeWeek)

	s.Today(now)
	first := s.Anchor
	s.Today(now)

	if !s.Anchor.Equal(first) {
		t.Fatalf("today twice should be stable, got %v then %v", first, s.Anchor)
	}
	if s.Mode != ModeWeek {
		t.Fatalf("today must not change the view mode, got %v", s.Mode)
	}
}

func TestSelectDateSwitchesToDay(t *testing.T) {
	s := NewState(date(2024, time.May, 10))
	s.SetMode(ModeYear)

	picked := date(2024, time.August, 17)
	s.SelectDate(picked)

	if s.Mode != ModeDay {
		t.Fatalf("expected day mode after selection, got %v", s.Mode)
	}
	if s.Anchor.Year() != 2024 || s.Anchor.Month() != time.August || s.Anchor.Day() != 17 {
		t.Fatalf("expected anchor on the selected day, got %v", s.Anchor)
	}
}

func TestParseMode(t *testing.T) {
	cases := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"", ModeMonth, false},
		{"day", ModeDay, false},
		{"W", ModeWeek, false},
		{"agenda", ModeSchedule, false},
		{"decade", ModeMonth, true},
	}
	for _, tc := range cases {
		got, err := ParseMode(tc.in)
		if tc.wantErr != (err != nil) || got != tc.want {
			t.Fatalf("ParseMode(%q) = %v, %v", tc.in, got, err)
		}
	}
}
