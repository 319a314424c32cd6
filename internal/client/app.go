package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/did-signin/internal/logger"
	"github.com/MKhiriev/did-signin/internal/service"
	"github.com/MKhiriev/did-signin/internal/tui"
)

// UI is the interactive front end run by [App].
type UI interface {
	Run(ctx context.Context) error
}

type App struct {
	services *service.ClientServices
	ui       UI
	closers  []io.Closer
	logger   *logger.Logger
}

// NewApp assembles the client. closers are closed in order when Run returns.
func NewApp(services *service.ClientServices, ui UI, log *logger.Logger, closers ...io.Closer) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client: services and ui are required")
	}
	return &App{
		services: services,
		ui:       ui,
		closers:  closers,
		logger:   log,
	}, nil
}

// Run restores the stored session, then hands control to the UI until the
// user quits or the process is interrupted.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return a.run(ctx)
}

func (a *App) run(ctx context.Context) (err error) {
	defer func() {
		err = errors.Join(err, a.shutdown())
	}()

	if bootErr := a.services.SessionService.Bootstrap(ctx); bootErr != nil {
		// a failed restore must not keep the user out
		a.logger.Err(bootErr).Str("func", "App.Run").Msg("session restore failed, starting signed out")
	}

	state := a.services.SessionService.State()
	a.logger.Info().
		Str("func", "App.Run").
		Stringer("connector", state.Connector).
		Bool("signed_in", state.SignedIn()).
		Msg("starting ui")

	if err = a.ui.Run(ctx); err != nil {
		if errors.Is(err, tui.ErrUserQuit) || errors.Is(err, context.Canceled) {
			a.logger.Info().Str("func", "App.Run").Msg("client stopped by user")
			return nil
		}
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

func (a *App) shutdown() error {
	a.services.WatchJob.Stop()

	errs := []error{a.services.SessionService.Close()}
	for _, c := range a.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}
