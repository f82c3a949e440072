// Package tui is the interactive calendar over the task service.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/planner/pkg/app"
	"tableflip.dev/planner/pkg/calendar"
	"tableflip.dev/planner/pkg/task"
	"tableflip.dev/planner/pkg/tui/theme"
)

type mode int

const (
	modeNormal mode = iota
	modeInsert
)

// Model contains the TUI state: the view-mode state machine, the current
// data snapshot, and the quick-add input.
type Model struct {
	svc *app.Service
	ctx context.Context

	state calendar.State
	now   time.Time

	tasks   []*task.Task
	palette task.Palette

	mode   mode
	input  textinput.Model
	status string

	// sel is the task cursor in day/schedule lists; selDay is the grid
	// cursor (day of month) in month/year views, selMonth its month.
	sel      int
	selDay   int
	selMonth time.Month

	onSelectDate func(time.Time)
	onSelectTask func(*task.Task)

	termWidth  int
	termHeight int

	theme theme.Theme
}

// Option configures optional model hooks.
type Option func(*Model)

// WithNow fixes the reference time used for "today" highlighting.
func WithNow(now time.Time) Option {
	return func(m *Model) { m.now = now }
}

// WithSelectDate registers a callback fired when a date is chosen.
func WithSelectDate(fn func(time.Time)) Option {
	return func(m *Model) { m.onSelectDate = fn }
}

// WithSelectTask registers a callback fired when a task chip is chosen.
func WithSelectTask(fn func(*task.Task)) Option {
	return func(m *Model) { m.onSelectTask = fn }
}

// New creates a UI model backed by the Service.
func New(svc *app.Service, opts ...Option) Model {
	ti := textinput.New()
	ti.Placeholder = "task title"
	ti.CharLimit = 256
	ti.Prompt = "add> "

	m := Model{
		svc:    svc,
		ctx:    context.Background(),
		now:    time.Now(),
		input:  ti,
		status: "[/] move · t today · d w m y s views · enter select · o add · q quit",
		theme:  theme.Default(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.state = calendar.NewState(m.now)
	m.selDay = m.now.Day()
	m.selMonth = m.now.Month()
	return m
}

// State exposes the view-mode state machine for callers and tests.
func (m *Model) State() calendar.State { return m.state }

// SetData replaces the task/category snapshot.
func (m *Model) SetData(tasks []*task.Task, palette task.Palette) {
	m.tasks = tasks
	m.palette = palette
	m.clampCursors()
}

// messages
type errMsg struct{ err error }
type dataLoadedMsg struct {
	tasks   []*task.Task
	palette task.Palette
}

// Init loads the initial snapshot.
func (m Model) Init() tea.Cmd {
	return m.refresh()
}

func (m *Model) refresh() tea.Cmd {
	svc := m.svc
	ctx := m.ctx
	if svc == nil {
		return nil
	}
	return func() tea.Msg {
		tasks, err := svc.Tasks(ctx)
		if err != nil {
			return errMsg{err}
		}
		palette, err := svc.Categories(ctx)
		if err != nil {
			return errMsg{err}
		}
		return dataLoadedMsg{tasks: tasks, palette: palette}
	}
}

// Update handles messages and keybindings.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		return m, nil
	case errMsg:
		m.status = msg.err.Error()
		return m, nil
	case dataLoadedMsg:
		m.SetData(msg.tasks, msg.palette)
		return m, nil
	case tea.KeyMsg:
		if m.mode == modeInsert {
			return m.updateInsert(msg)
		}
		cmd := m.handleKey(msg.String())
		return m, cmd
	}
	return m, nil
}

func (m *Model) updateInsert(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeNormal
		m.input.Reset()
		m.input.Blur()
		return m, nil
	case "enter":
		title := m.input.Value()
		m.mode = modeNormal
		m.input.Reset()
		m.input.Blur()
		return m, m.addTask(title)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) addTask(title string) tea.Cmd {
	svc := m.svc
	ctx := m.ctx
	anchor := m.state.Anchor
	if svc == nil || title == "" {
		return nil
	}
	refresh := m.refresh()
	return func() tea.Msg {
		t := task.New(title)
		t.Created = task.Timestamp{Time: time.Now()}
		t.DueDate = calendar.StartOfDay(anchor).Format(time.RFC3339)
		if _, err := svc.Add(ctx, t); err != nil {
			return errMsg{err}
		}
		return refresh()
	}
}

// handleKey drives the normal-mode state machine.
func (m *Model) handleKey(key string) tea.Cmd {
	switch key {
	case "q", "ctrl+c":
		return tea.Quit
	case "[", "shift+left", "pgup":
		m.state.Advance(calendar.Prev)
		m.syncGridCursor()
	case "]", "shift+right", "pgdown":
		m.state.Advance(calendar.Next)
		m.syncGridCursor()
	case "t":
		m.state.Today(m.now)
		m.syncGridCursor()
	case "d":
		m.state.SetMode(calendar.ModeDay)
	case "w":
		m.state.SetMode(calendar.ModeWeek)
	case "m":
		m.state.SetMode(calendar.ModeMonth)
	case "y":
		m.state.SetMode(calendar.ModeYear)
	case "s":
		m.state.SetMode(calendar.ModeSchedule)
	case "o":
		m.mode = modeInsert
		m.input.Focus()
	case "x":
		return m.completeSelected()
	case "enter":
		return m.selectCurrent()
	case "left", "h":
		m.moveCursor(-1)
	case "right", "l":
		m.moveCursor(1)
	case "up", "k":
		m.moveCursor(-m.cursorStride())
	case "down", "j":
		m.moveCursor(m.cursorStride())
	}
	return nil
}

func (m *Model) cursorStride() int {
	switch m.state.Mode {
	case calendar.ModeMonth, calendar.ModeYear:
		return 7
	default:
		return 1
	}
}

// moveCursor moves the task cursor in list views and the day cursor in
// grid views.
func (m *Model) moveCursor(delta int) {
	switch m.state.Mode {
	case calendar.ModeMonth:
		days := calendar.DaysIn(m.state.Anchor)
		m.selDay = clamp(m.selDay+delta, 1, days)
	case calendar.ModeYear:
		m.moveYearCursor(delta)
	default:
		m.sel = clamp(m.sel+delta, 0, maxInt(0, m.listLen()-1))
	}
}

func (m *Model) moveYearCursor(delta int) {
	date := time.Date(m.state.Anchor.Year(), m.selMonth, m.selDay, 0, 0, 0, 0, m.state.Anchor.Location())
	date = date.AddDate(0, 0, delta)
	if date.Year() != m.state.Anchor.Year() {
		return // the cursor stays inside the rendered year
	}
	m.selMonth = date.Month()
	m.selDay = date.Day()
}

// selectCurrent fires the cross-view transition (grid views) or the task
// callback (list views).
func (m *Model) selectCurrent() tea.Cmd {
	switch m.state.Mode {
	case calendar.ModeMonth:
		picked := time.Date(m.state.Anchor.Year(), m.state.Anchor.Month(), m.selDay, 0, 0, 0, 0, m.state.Anchor.Location())
		m.state.SelectDate(picked)
		m.sel = 0
		if m.onSelectDate != nil {
			m.onSelectDate(picked)
		}
	case calendar.ModeYear:
		picked := time.Date(m.state.Anchor.Year(), m.selMonth, m.selDay, 0, 0, 0, 0, m.state.Anchor.Location())
		m.state.SelectDate(picked)
		m.sel = 0
		if m.onSelectDate != nil {
			m.onSelectDate(picked)
		}
	default:
		if t := m.selectedTask(); t != nil && m.onSelectTask != nil {
			m.onSelectTask(t)
		}
	}
	return nil
}

func (m *Model) completeSelected() tea.Cmd {
	t := m.selectedTask()
	svc := m.svc
	ctx := m.ctx
	if t == nil || svc == nil {
		return nil
	}
	refresh := m.refresh()
	return func() tea.Msg {
		if _, err := svc.Complete(ctx, t.ID); err != nil {
			return errMsg{err}
		}
		return refresh()
	}
}

// selectedTask resolves the cursor in the day and schedule lists.
func (m *Model) selectedTask() *task.Task {
	list := m.currentList()
	if m.sel < 0 || m.sel >= len(list) {
		return nil
	}
	return list[m.sel]
}

func (m *Model) currentList() []*task.Task {
	switch m.state.Mode {
	case calendar.ModeDay:
		return calendar.BuildDay(m.tasks, m.state.Anchor, m.now).Tasks
	case calendar.ModeWeek:
		w := calendar.BuildWeek(m.tasks, m.state.Anchor, m.now)
		var out []*task.Task
		for _, d := range w.Days {
			out = append(out, d.Tasks...)
		}
		return out
	case calendar.ModeSchedule:
		var out []*task.Task
		for _, g := range calendar.BuildSchedule(m.tasks, m.now).Groups {
			out = append(out, g.Tasks...)
		}
		return out
	}
	return nil
}

func (m *Model) listLen() int { return len(m.currentList()) }

func (m *Model) clampCursors() {
	m.sel = clamp(m.sel, 0, maxInt(0, m.listLen()-1))
	m.syncGridCursor()
}

func (m *Model) syncGridCursor() {
	days := calendar.DaysIn(m.state.Anchor)
	m.selDay = clamp(m.selDay, 1, days)
	m.selMonth = m.state.Anchor.Month()
	if m.state.Mode == calendar.ModeYear {
		m.selMonth = clampMonth(m.selMonth)
	}
	m.sel = clamp(m.sel, 0, maxInt(0, m.listLen()-1))
}

// View renders the header tabs, the active projection and the footer.
func (m Model) View() string {
	header := m.renderTabs()
	var body string
	switch m.state.Mode {
	case calendar.ModeDay:
		body = m.renderDay()
	case calendar.ModeWeek:
		body = m.renderWeek()
	case calendar.ModeYear:
		body = m.renderYear()
	case calendar.ModeSchedule:
		body = m.renderSchedule()
	default:
		body = m.renderMonth()
	}

	footer := m.theme.Footer.Help.Render(m.status)
	if m.mode == modeInsert {
		footer = m.input.View()
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", footer)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampMonth(m time.Month) time.Month {
	if m < time.January {
		return time.January
	}
	if m > time.December {
		return time.December
	}
	return m
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
