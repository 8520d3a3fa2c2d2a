// Package dashboard runs the full-screen overview of the current week.
package dashboard

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"daykeep/pkg/app"
)

type Dashboard struct {
	Service *app.Service
}

func (n *Dashboard) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("dashboard: no service configured")
	}
	th := n.Service.Theme(ctx)

	p := tea.NewProgram(NewModel(ctx, n.Service, th), tea.WithAltScreen(), tea.WithContext(ctx))

	// External writes repaint the dashboard without user action.
	if ch, err := n.Service.Watch(ctx); err == nil {
		go func() {
			for range ch {
				p.Send(storeChangedMsg{})
			}
		}()
	}

	_, err := p.Run()
	return err
}
