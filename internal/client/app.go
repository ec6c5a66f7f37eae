package client

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/amekhanov/drill-journal/internal/connectivity"
	"github.com/amekhanov/drill-journal/internal/logger"
	"github.com/amekhanov/drill-journal/internal/presenter"
	"github.com/amekhanov/drill-journal/internal/service"
	"github.com/amekhanov/drill-journal/internal/workers"
)

type App struct {
	services  *service.Services
	presenter *presenter.Console
	source    connectivity.Source
	logger    *logger.Logger

	in  io.Reader
	out io.Writer
}

func NewApp(
	services *service.Services,
	pres *presenter.Console,
	source connectivity.Source,
	log *logger.Logger,
) (*App, error) {
	if services == nil || pres == nil || source == nil {
		return nil, errors.New("client app requires services, presenter and connectivity source")
	}

	return &App{
		services:  services,
		presenter: pres,
		source:    source,
		logger:    log,
		in:        os.Stdin,
		out:       os.Stdout,
	}, nil
}

// Run implements Client. It starts connectivity observation, renders the
// current journal once, and then serves the interactive command loop until
// the operator exits.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(a.logger.WithContext(context.Background()))
	defer cancel()

	worker := workers.NewConnectivityWorker(ctx, a.source, a.services.Journal, a.logger, func(bool) {
		// после перехода список на экране устарел: после дренажа он
		// пополнился серверными записями, после обрыва остаётся кеш
		a.showWells(ctx)
	})
	workers.NewWorkers(worker).Run()
	defer a.source.Stop()

	a.showWells(ctx)
	return a.commandLoop(ctx)
}

func (a *App) showWells(ctx context.Context) {
	wells, err := a.services.Journal.LoadWells(ctx)
	if err != nil {
		a.logger.Error().Err(err).Msg("well listing failed")
		return
	}
	a.presenter.RenderWells(wells)
}

func (a *App) showLayers(ctx context.Context, wellID string) {
	layers, err := a.services.Journal.LoadLayers(ctx, wellID)
	if err != nil {
		a.logger.Error().Err(err).Msg("layer listing failed")
		return
	}
	a.presenter.RenderLayers(layers)
}
