package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/planner/pkg/calendar"
	"tableflip.dev/planner/pkg/glyph"
	"tableflip.dev/planner/pkg/task"
)

const gridWidth = len("11 12 13 14 15 16 17") // an example week

func dueDate(tk *task.Task) (time.Time, bool) {
	key, ok := calendar.KeyOf(tk.DueDate)
	if !ok {
		return time.Time{}, false
	}
	return key.Date()
}

// Day prints the single-day view.
func (pp *PrettyPrint) Day(v calendar.DayView) {
	title := v.Date.Format("Monday, January 2, 2006")
	if v.IsToday {
		title += " · today"
	}
	pp.TitleWithCount(title, len(v.Tasks))
	pp.Tasks(v.Tasks...)
}

// Week prints seven day columns as stacked sections.
func (pp *PrettyPrint) Week(v calendar.WeekView) {
	end := v.Start.AddDate(0, 0, 6)
	pp.Title(fmt.Sprintf("Week of %s – %s", v.Start.Format("Jan 2"), end.Format("Jan 2, 2006")))
	pp.NewLine()

	b := color.New(color.Bold)
	for _, day := range v.Days {
		label := day.Date.Format("Mon 2")
		if day.IsToday {
			_, _ = b.Println(glyph.Underline(label))
		} else {
			_, _ = b.Println(label)
		}
		pp.Tasks(day.Tasks...)
	}
}

// Month prints the month grid; days with tasks are bold, blanks pad the
// first row and the last row is left short.
func (pp *PrettyPrint) Month(v calendar.MonthView) {
	tf := color.New(color.FgWhite, color.Italic)

	m := fmt.Sprintf("%s %d", v.Month, v.Year)
	mid := (gridWidth - len(m)) / 2
	if mid < 0 {
		mid = 0
	}
	tf.Printf("%s%s\n", strings.Repeat(" ", mid), m)

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)
	today := color.New(color.Bold, color.Underline, color.FgHiWhite)

	col := 0
	for _, cell := range v.Cells {
		if cell.Blank() {
			fmt.Print("   ")
		} else {
			printer := l1
			if len(cell.Tasks) > 0 {
				printer = l2
			}
			if cell.IsToday {
				printer = today
			}
			_, _ = printer.Printf("%2d ", cell.Day)
		}
		col++
		if col == 7 {
			col = 0
			fmt.Print("\n")
		}
	}
	if col != 0 {
		fmt.Print("\n")
	}
	fmt.Print("\n")
}

// Year prints twelve mini month grids.
func (pp *PrettyPrint) Year(v calendar.YearView) {
	pp.Title(fmt.Sprintf("%d", v.Year))
	pp.NewLine()

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)
	today := color.New(color.Bold, color.Underline, color.FgHiWhite)
	tf := color.New(color.FgWhite, color.Italic)

	for _, month := range v.Months {
		m := month.Month.String()
		mid := (gridWidth - len(m)) / 2
		if mid < 0 {
			mid = 0
		}
		tf.Printf("%s%s\n", strings.Repeat(" ", mid), m)

		col := 0
		for i := 0; i < month.Offset; i++ {
			fmt.Print("   ")
			col++
		}
		for _, d := range month.Days {
			printer := l1
			if d.HasTask {
				printer = l2
			}
			if d.IsToday {
				printer = today
			}
			_, _ = printer.Printf("%2d ", d.Day)
			col++
			if col == 7 {
				col = 0
				fmt.Print("\n")
			}
		}
		if col != 0 {
			fmt.Print("\n")
		}
		fmt.Print("\n")
	}
}

// Schedule prints the global timeline, de-emphasizing past groups.
func (pp *PrettyPrint) Schedule(v calendar.ScheduleView) {
	if len(v.Groups) == 0 {
		pp.Tasks()
		return
	}
	past := color.New(color.Faint, color.Italic)
	head := color.New(color.Bold, color.Underline)

	for _, g := range v.Groups {
		label := g.Date.Format("Monday, January 2, 2006")
		if g.Past {
			_, _ = past.Println(label)
		} else {
			_, _ = head.Println(label)
		}
		pp.Tasks(g.Tasks...)
	}
}
