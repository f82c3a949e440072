package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/planner/pkg/app"
	"tableflip.dev/planner/pkg/store"
	"tableflip.dev/planner/pkg/tui"
)

// UI opens the interactive calendar.
type UI struct {
	Persistence store.Persistence
}

func (u *UI) Do(ctx context.Context) error {
	svc := &app.Service{Persistence: u.Persistence}
	p := tea.NewProgram(tui.New(svc), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
