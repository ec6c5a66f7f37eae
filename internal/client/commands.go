package client

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/amekhanov/drill-journal/internal/service"
	"github.com/amekhanov/drill-journal/models"
)

const helpText = `commands:
  wells                                           list wells
  layers <well-id>                                list layers of a well
  add-well <name> | <area> | <structure> | <m>    record a new well
  add-layer <well-id> <from> <to> <lithology> [description]
  status                                          show connectivity state
  help                                            show this help
  quit                                            exit`

// commandLoop reads operator commands line by line until EOF or quit. Every
// command failure is reported through the presenter and the loop continues:
// a field client must survive bad input the same way it survives a bad
// connection.
func (a *App) commandLoop(ctx context.Context) error {
	fmt.Fprintln(a.out, helpText)

	scanner := bufio.NewScanner(a.in)
	for {
		fmt.Fprint(a.out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		cmd, rest, _ := strings.Cut(line, " ")
		switch cmd {
		case "wells":
			a.showWells(ctx)
		case "layers":
			a.cmdLayers(ctx, rest)
		case "add-well":
			a.cmdAddWell(ctx, rest)
		case "add-layer":
			a.cmdAddLayer(ctx, rest)
		case "status":
			fmt.Fprintf(a.out, "state: %s\n", a.services.Journal.State())
		case "help":
			fmt.Fprintln(a.out, helpText)
		case "quit", "exit":
			return nil
		default:
			a.presenter.ShowNotice(fmt.Sprintf("unknown command %q, try help", cmd), service.NoticeError)
		}
	}
}

func (a *App) cmdLayers(ctx context.Context, rest string) {
	wellID := strings.TrimSpace(rest)
	if wellID == "" {
		a.presenter.ShowNotice("usage: layers <well-id>", service.NoticeError)
		return
	}
	a.showLayers(ctx, wellID)
}

func (a *App) cmdAddWell(ctx context.Context, rest string) {
	parts := strings.Split(rest, "|")
	if len(parts) != 4 {
		a.presenter.ShowNotice("usage: add-well <name> | <area> | <structure> | <design depth, m>", service.NoticeError)
		return
	}

	depth, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
	if err != nil {
		a.presenter.ShowNotice("design depth must be a number", service.NoticeError)
		return
	}

	well := models.Well{
		Name:        strings.TrimSpace(parts[0]),
		Area:        strings.TrimSpace(parts[1]),
		Structure:   strings.TrimSpace(parts[2]),
		DesignDepth: depth,
	}

	if _, err = a.services.Journal.CreateWell(ctx, well); err != nil {
		a.logger.Warn().Err(err).Msg("create well failed")
		return
	}
	a.showWells(ctx)
}

func (a *App) cmdAddLayer(ctx context.Context, rest string) {
	fields := strings.Fields(rest)
	if len(fields) < 4 {
		a.presenter.ShowNotice("usage: add-layer <well-id> <from> <to> <lithology> [description]", service.NoticeError)
		return
	}

	from, errFrom := strconv.ParseFloat(fields[1], 64)
	to, errTo := strconv.ParseFloat(fields[2], 64)
	if errFrom != nil || errTo != nil {
		a.presenter.ShowNotice("depths must be numbers", service.NoticeError)
		return
	}

	layer := models.Layer{
		WellID:      fields[0],
		DepthFrom:   from,
		DepthTo:     to,
		Lithology:   models.Lithology(fields[3]),
		Description: strings.Join(fields[4:], " "),
	}

	if _, err := a.services.Journal.CreateLayer(ctx, layer); err != nil {
		a.logger.Warn().Err(err).Msg("create layer failed")
		return
	}
	a.showLayers(ctx, layer.WellID)
}
