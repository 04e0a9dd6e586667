// Package tui is the interactive terminal front end. It turns key presses
// into client.App events and draws what App renders through a Bridge.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/recook-book/internal/client"
	"github.com/MKhiriev/recook-book/internal/logger"
	"github.com/MKhiriev/recook-book/models"
)

// TUI runs the Bubble Tea program. It implements client.Client.
type TUI struct {
	app       *client.App
	bridge    *Bridge
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

// New returns a TUI for app. bridge must be the renderer app was built with.
func New(app *client.App, bridge *Bridge, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		app:       app,
		bridge:    bridge,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

var _ client.Client = (*TUI)(nil)

func (t *TUI) Run(ctx context.Context) error {
	root := NewRootModel(ctx, t.app, t.bridge, t.buildInfo)
	defer t.bridge.Close()

	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		t.logger.Err(err).Str("func", "*TUI.Run").Msg("terminal UI stopped")
		return err
	}

	result, ok := finalModel.(*RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		t.logger.Info().Msg("user quit")
	}

	return nil
}
