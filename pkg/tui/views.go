package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/planner/pkg/calendar"
	"tableflip.dev/planner/pkg/glyph"
	"tableflip.dev/planner/pkg/task"
	"tableflip.dev/planner/pkg/timeutil"
)

const weekdayHeader = "Su Mo Tu We Th Fr Sa"

func (m Model) renderTabs() string {
	var tabs []string
	for _, mode := range calendar.AllModes() {
		style := m.theme.Tabs.Tab
		if mode == m.state.Mode {
			style = m.theme.Tabs.Active
		}
		tabs = append(tabs, style.Render(mode.String()))
	}

	anchor := m.anchorLabel()
	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.theme.Tabs.Title.Render("planner "),
		strings.Join(tabs, " · "),
		m.theme.Tabs.AnchorOn.Render("  "+anchor),
	)
}

func (m Model) anchorLabel() string {
	a := m.state.Anchor
	switch m.state.Mode {
	case calendar.ModeDay:
		return a.Format("Monday, January 2, 2006")
	case calendar.ModeWeek:
		start := calendar.WeekStart(a)
		return fmt.Sprintf("%s – %s", start.Format("Jan 2"), start.AddDate(0, 0, 6).Format("Jan 2, 2006"))
	case calendar.ModeYear:
		return a.Format("2006")
	case calendar.ModeSchedule:
		return "all dates"
	default:
		return a.Format("January 2006")
	}
}

func (m Model) renderDay() string {
	v := calendar.BuildDay(m.tasks, m.state.Anchor, m.now)

	var b strings.Builder
	title := v.Date.Format("Monday, January 2")
	if v.IsToday {
		title += " · today"
	}
	b.WriteString(m.theme.Grid.Header.Render(title))
	b.WriteString("\n")
	b.WriteString(m.renderTaskList(v.Tasks, m.sel))
	return b.String()
}

func (m Model) renderWeek() string {
	v := calendar.BuildWeek(m.tasks, m.state.Anchor, m.now)

	cols := make([]string, 0, 7)
	offset := 0
	for _, day := range v.Days {
		head := day.Date.Format("Mon 2")
		style := m.theme.Grid.Header
		if day.IsToday {
			style = style.Underline(true)
		}
		lines := []string{style.Render(head)}
		for i, t := range day.Tasks {
			chip := truncate.StringWithTail(m.chip(t, offset+i == m.sel), 13, "…")
			lines = append(lines, chip)
		}
		if len(day.Tasks) == 0 {
			lines = append(lines, m.theme.Grid.Empty.Render("—"))
		}
		offset += len(day.Tasks)
		col := lipgloss.NewStyle().Width(14).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
		cols = append(cols, col)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func (m Model) renderMonth() string {
	v := calendar.BuildMonth(m.tasks, m.state.Anchor, m.now)

	var lines []string
	lines = append(lines, m.theme.Grid.Header.Render(weekdayHeader))
	for _, row := range v.Rows() {
		var cells []string
		for _, cell := range row {
			cells = append(cells, m.renderMonthCell(cell))
		}
		lines = append(lines, strings.Join(cells, " "))
	}

	// Selected day's tasks below the grid.
	var selected *calendar.MonthCell
	for i := range v.Cells {
		if v.Cells[i].Day == m.selDay {
			selected = &v.Cells[i]
		}
	}
	if selected != nil {
		lines = append(lines, "")
		lines = append(lines, m.theme.Grid.Header.Render(selected.Date.Format("January 2")))
		lines = append(lines, m.renderTaskList(selected.Tasks, -1))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderMonthCell(cell calendar.MonthCell) string {
	if cell.Blank() {
		return m.theme.Grid.Empty.Render("  ")
	}
	text := fmt.Sprintf("%2d", cell.Day)

	style := m.theme.Grid.Day
	if len(cell.Tasks) > 0 {
		style = m.theme.Grid.Busy
	}
	if cell.IsToday {
		style = style.Inherit(m.theme.Grid.Today)
	}
	if cell.Day == m.selDay {
		style = style.Inherit(m.theme.Grid.Selected)
	}
	return style.Render(text)
}

func (m Model) renderYear() string {
	v := calendar.BuildYear(m.tasks, m.state.Anchor, m.now)

	minis := make([]string, 0, 12)
	for _, month := range v.Months {
		minis = append(minis, m.renderMiniMonth(month))
	}

	// Four rows of three months.
	var rows []string
	for i := 0; i < 12; i += 3 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			minis[i], "  ", minis[i+1], "  ", minis[i+2]))
	}
	return strings.Join(rows, "\n\n")
}

func (m Model) renderMiniMonth(month calendar.YearMonth) string {
	var lines []string
	lines = append(lines, m.theme.Grid.Header.Render(month.Month.String()))
	lines = append(lines, m.theme.Grid.Header.Render(weekdayHeader))

	var cells []string
	for i := 0; i < month.Offset; i++ {
		cells = append(cells, m.theme.Grid.Empty.Render("  "))
	}
	for _, d := range month.Days {
		style := m.theme.Grid.Day
		if d.HasTask {
			style = m.theme.Grid.Busy
		}
		if d.IsToday {
			style = style.Inherit(m.theme.Grid.Today)
		}
		if month.Month == m.selMonth && d.Day == m.selDay {
			style = style.Inherit(m.theme.Grid.Selected)
		}
		cells = append(cells, style.Render(fmt.Sprintf("%2d", d.Day)))

		if len(cells) == 7 {
			lines = append(lines, strings.Join(cells, " "))
			cells = nil
		}
	}
	if len(cells) > 0 {
		lines = append(lines, strings.Join(cells, " "))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderSchedule() string {
	v := calendar.BuildSchedule(m.tasks, m.now)
	if len(v.Groups) == 0 {
		return m.theme.Grid.Empty.Render("nothing scheduled")
	}

	var lines []string
	idx := 0
	for _, g := range v.Groups {
		head := g.Date.Format("Monday, January 2, 2006")
		style := m.theme.Grid.Header
		if g.Past {
			style = m.theme.Grid.Past
		}
		lines = append(lines, style.Render(head))
		for _, t := range g.Tasks {
			lines = append(lines, m.chip(t, idx == m.sel))
			idx++
		}
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderTaskList(tasks []*task.Task, selected int) string {
	if len(tasks) == 0 {
		return m.theme.Grid.Empty.Render(" none")
	}
	var lines []string
	for i, t := range tasks {
		lines = append(lines, m.chip(t, i == selected))
	}
	return strings.Join(lines, "\n")
}

// chip renders a task's compact representation: priority signifier, status
// bullet, category-colored marker, title and relative due label.
func (m Model) chip(t *task.Task, selected bool) string {
	title := m.theme.Chips.Title.Render(t.Title)
	if t.Done() {
		title = m.theme.Chips.Done.Render(t.Title)
	}

	color := m.palette.ColorFor(t.Category)
	marker := lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("▎")

	parts := []string{
		glyph.ForPriority(t.Priority),
		glyph.ForStatus(t.Status),
		marker + title,
	}
	if key, ok := calendar.KeyOf(t.DueDate); ok {
		if due, ok := key.Date(); ok {
			parts = append(parts, m.theme.Chips.Due.Render("("+timeutil.Relative(m.now, due)+")"))
		}
	}

	line := strings.Join(parts, " ")
	if selected {
		return m.theme.Chips.Selected.Render(line)
	}
	return line
}
