package app

import (
	"context"
	"time"

	"tableflip.dev/planner/pkg/calendar"
)

// Stats summarizes the whole task collection for the dashboard. Undated and
// unparsable-due tasks never show on the calendar but still count here.
type Stats struct {
	Total      int
	Done       int
	Open       int
	Overdue    int
	DueToday   int
	Undated    int
	ByPriority map[string]int
	ByCategory map[string]int
}

// Stats computes collection-wide counts relative to now.
func (s *Service) Stats(ctx context.Context, now time.Time) (Stats, error) {
	all, err := s.Tasks(ctx)
	if err != nil {
		return Stats{}, err
	}

	st := Stats{
		ByPriority: make(map[string]int),
		ByCategory: make(map[string]int),
	}
	today := calendar.StartOfDay(now)

	for _, t := range all {
		st.Total++
		st.ByPriority[t.Priority.String()]++
		if t.Category != "" {
			st.ByCategory[t.Category]++
		}
		if t.Done() {
			st.Done++
			continue
		}
		st.Open++

		key, ok := calendar.KeyOf(t.DueDate)
		if !ok {
			st.Undated++
			continue
		}
		due, _ := key.Date()
		switch {
		case due.Before(today):
			st.Overdue++
		case calendar.SameDate(due, now):
			st.DueToday++
		}
	}
	return st, nil
}
