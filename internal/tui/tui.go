// Package tui is the terminal front end of the sign-in client. It renders the
// signed-out menu, the pairing QR code and the signed-in screen, and drives
// the session service from key presses.
package tui

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/did-signin/internal/logger"
	"github.com/MKhiriev/did-signin/internal/service"
	"github.com/MKhiriev/did-signin/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services      *service.ClientServices
	buildInfo     models.AppBuildInfo
	watchInterval time.Duration
	logger        *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, watchInterval time.Duration, log *logger.Logger) (*TUI, error) {
	if services == nil || services.SessionService == nil || services.WatchJob == nil {
		return nil, errors.New("tui: session services are required")
	}
	return &TUI{
		services:      services,
		buildInfo:     buildInfo,
		watchInterval: watchInterval,
		logger:        log,
	}, nil
}

// Run opens the UI and blocks until the user quits. It returns ErrUserQuit
// on ctrl+c.
func (t *TUI) Run(ctx context.Context) error {
	root := NewRootModel(ctx, t.services.SessionService, t.services.WatchJob, t.watchInterval, t.buildInfo)
	program := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx))

	t.services.SessionService.SetPairingHandler(func(uri string) {
		t.logger.Info().Str("func", "TUI.Run").Msg("pairing uri received")
		program.Send(pairingURIMsg{uri: uri})
	})
	t.services.WatchJob.SetDropHandler(func() {
		program.Send(sessionDroppedMsg{})
	})
	defer t.services.WatchJob.Stop()

	finalModel, err := program.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
