package calendar

import (
	"time"

	"tableflip.dev/planner/pkg/task"
)

// MonthCell is one slot in the month grid. Leading pad cells carry Day == 0
// and no tasks.
type MonthCell struct {
	Day     int
	Date    time.Time
	IsToday bool
	Tasks   []*task.Task
}

// Blank reports whether the cell is leading padding before day 1.
func (c MonthCell) Blank() bool { return c.Day == 0 }

// MonthView lays the anchor's month out as Offset blank cells followed by
// one cell per day. The grid is not padded to a multiple of seven; its
// length is exactly Offset + days-in-month and the last row may be short.
type MonthView struct {
	Year   int
	Month  time.Month
	Offset int
	Cells  []MonthCell
}

// BuildMonth projects the task collection onto the anchor's month.
func BuildMonth(tasks []*task.Task, anchor, now time.Time) MonthView {
	first := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
	offset := int(first.Weekday())
	days := DaysIn(anchor)

	v := MonthView{
		Year:   anchor.Year(),
		Month:  anchor.Month(),
		Offset: offset,
		Cells:  make([]MonthCell, 0, offset+days),
	}
	for i := 0; i < offset; i++ {
		v.Cells = append(v.Cells, MonthCell{})
	}
	for day := 1; day <= days; day++ {
		date := time.Date(anchor.Year(), anchor.Month(), day, 0, 0, 0, 0, anchor.Location())
		v.Cells = append(v.Cells, MonthCell{
			Day:     day,
			Date:    date,
			IsToday: SameDate(date, now),
			Tasks:   TasksOn(tasks, date),
		})
	}
	return v
}

// Rows returns the grid split into weeks of up to seven cells.
func (v MonthView) Rows() [][]MonthCell {
	var rows [][]MonthCell
	for i := 0; i < len(v.Cells); i += 7 {
		end := i + 7
		if end > len(v.Cells) {
			end = len(v.Cells)
		}
		rows = append(rows, v.Cells[i:end])
	}
	return rows
}
