// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Mekhanov

// Package presenter renders the drilling journal on a terminal. It is the
// only package that knows the output is a console at all; everything above it
// talks to the service.Presenter interface.
package presenter

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/amekhanov/drill-journal/internal/service"
	"github.com/amekhanov/drill-journal/models"
)

// Console implements service.Presenter on top of an io.Writer.
type Console struct {
	out io.Writer

	// fatalPause keeps a fatal banner on screen before the process is
	// allowed to exit underneath it.
	fatalPause time.Duration
}

// NewConsole creates a Console writing to out; nil means os.Stdout.
// noticeDuration controls how long a fatal banner is guaranteed to stay
// visible.
func NewConsole(out io.Writer, noticeDuration time.Duration) *Console {
	if out == nil {
		out = os.Stdout
	}
	return &Console{out: out, fatalPause: noticeDuration}
}

// RenderWells implements service.Presenter.
func (c *Console) RenderWells(wells []models.Well) {
	fmt.Fprintln(c.out, titleStyle.Render("Wells"))

	if len(wells) == 0 {
		fmt.Fprintln(c.out, "no wells recorded yet")
		return
	}

	w := tabwriter.NewWriter(c.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tAREA\tSTRUCTURE\tDESIGN DEPTH\tSTATUS")
	for _, well := range wells {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.1f\t%s\n",
			recordID(well.ServerID, well.LocalID),
			well.Name,
			well.Area,
			well.Structure,
			well.DesignDepth,
			statusLabel(well.SyncStatus),
		)
	}
	w.Flush()
}

// RenderLayers implements service.Presenter.
func (c *Console) RenderLayers(layers []models.Layer) {
	fmt.Fprintln(c.out, titleStyle.Render("Layers"))

	if len(layers) == 0 {
		fmt.Fprintln(c.out, "no layers recorded yet")
		return
	}

	w := tabwriter.NewWriter(c.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tINTERVAL\tTHICKNESS\tLITHOLOGY\tDESCRIPTION\tSTATUS")
	for _, layer := range layers {
		fmt.Fprintf(w, "%s\t%.1f-%.1f m\t%.1f\t%s\t%s\t%s\n",
			recordID(layer.ServerID, layer.LocalID),
			layer.DepthFrom,
			layer.DepthTo,
			layer.Thickness,
			layer.Lithology,
			layer.Description,
			statusLabel(layer.SyncStatus),
		)
	}
	w.Flush()
}

// ShowNotice implements service.Presenter.
func (c *Console) ShowNotice(text string, level service.NoticeLevel) {
	var styled string
	switch level {
	case service.NoticeSuccess:
		styled = successStyle.Render("✓ " + text)
	case service.NoticeWarn:
		styled = warnStyle.Render("! " + text)
	case service.NoticeError:
		styled = errorStyle.Render("✗ " + text)
	default:
		styled = infoStyle.Render("· " + text)
	}
	fmt.Fprintln(c.out, styled)
}

// ShowFatalError implements service.Presenter.
func (c *Console) ShowFatalError(text string) {
	fmt.Fprintln(c.out, fatalStyle.Render("FATAL: "+text))
	time.Sleep(c.fatalPause)
}

func recordID(serverID int64, localID string) string {
	if serverID > 0 {
		return fmt.Sprintf("%d", serverID)
	}
	return localID
}

func statusLabel(status models.SyncStatus) string {
	if status == models.SyncPending {
		return pendingStyle.Render("not synced")
	}
	return "synced"
}
