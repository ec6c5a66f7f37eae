package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/amekhanov/drill-journal/internal/adapter"
	"github.com/amekhanov/drill-journal/internal/logger"
)

// drainStats accumulates the outcome of one drain pass across both record
// kinds.
type drainStats struct {
	synced      int
	rejected    int
	undelivered int
}

// HandleConnectivityChange implements [JournalService].
//
// The new state is announced before the drain starts, so records created
// while the drain is still running already take the online path. The state
// changes only here, on host connectivity events: a transport failure
// mid-drain leaves the record pending and the state untouched, the source
// will report the outage on its own.
func (s *journalService) HandleConnectivityChange(ctx context.Context, online bool) error {
	next := Offline
	if online {
		next = Online
	}

	s.mu.Lock()
	prev := s.state
	s.state = next
	s.mu.Unlock()

	if prev == next {
		return nil
	}

	log := logger.FromContext(ctx).With().Str("func", "HandleConnectivityChange").Logger()
	log.Info().Str("from", string(prev)).Str("to", string(next)).Msg("connectivity changed")

	if next == Offline {
		s.presenter.ShowNotice("connection lost, new records will be kept locally", NoticeWarn)
		return nil
	}

	s.presenter.ShowNotice("connection restored, syncing pending records", NoticeInfo)
	return s.drain(ctx)
}

// drain flushes the pending cache to the server: wells first, then layers,
// strictly sequentially. Every record is attempted exactly once per pass; a
// failure on one record, transport or rejection, never aborts the rest of
// the batch. The summary covers whatever the pass managed to do, even when
// one of the cache reads failed.
func (s *journalService) drain(ctx context.Context) error {
	var stats drainStats

	wellsErr := s.drainWells(ctx, &stats)
	layersErr := s.drainLayers(ctx, &stats)

	s.reportDrain(stats)

	if err := errors.Join(wellsErr, layersErr); err != nil {
		s.presenter.ShowNotice(fmt.Sprintf("sync interrupted: %v", err), NoticeError)
		return err
	}
	return nil
}

func (s *journalService) drainWells(ctx context.Context, stats *drainStats) error {
	log := logger.FromContext(ctx).With().Str("func", "drainWells").Logger()

	pending, err := s.wells.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("load pending wells: %w", err)
	}

	for _, well := range pending {
		_, err = s.server.CreateWell(ctx, well)
		switch {
		case err == nil:
			// локальная копия удаляется только после подтверждения сервера
			if derr := s.wells.Delete(ctx, well.LocalID); derr != nil {
				log.Error().Err(derr).Str("local_id", well.LocalID).
					Msg("acked well not removed from cache, replay is idempotent by offline_id")
			}
			stats.synced++
		case errors.Is(err, adapter.ErrTransport):
			log.Warn().Err(err).Str("local_id", well.LocalID).Msg("server unreachable, well left pending")
			stats.undelivered++
		default:
			log.Warn().Err(err).Str("local_id", well.LocalID).Msg("well rejected by server, left pending")
			stats.rejected++
		}
	}

	return nil
}

func (s *journalService) drainLayers(ctx context.Context, stats *drainStats) error {
	log := logger.FromContext(ctx).With().Str("func", "drainLayers").Logger()

	pending, err := s.layers.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("load pending layers: %w", err)
	}

	for _, layer := range pending {
		_, err = s.server.CreateLayer(ctx, layer)
		switch {
		case err == nil:
			if derr := s.layers.Delete(ctx, layer.LocalID); derr != nil {
				log.Error().Err(derr).Str("local_id", layer.LocalID).
					Msg("acked layer not removed from cache, replay is idempotent by offline_id")
			}
			stats.synced++
		case errors.Is(err, adapter.ErrTransport):
			log.Warn().Err(err).Str("local_id", layer.LocalID).Msg("server unreachable, layer left pending")
			stats.undelivered++
		default:
			log.Warn().Err(err).Str("local_id", layer.LocalID).Msg("layer rejected by server, left pending")
			stats.rejected++
		}
	}

	return nil
}

func (s *journalService) reportDrain(stats drainStats) {
	if stats.synced > 0 {
		s.presenter.ShowNotice(fmt.Sprintf("synced %d pending record(s)", stats.synced), NoticeSuccess)
	}
	if stats.rejected > 0 {
		s.presenter.ShowNotice(fmt.Sprintf("%d record(s) rejected by server, fix and resubmit", stats.rejected), NoticeWarn)
	}
	if stats.undelivered > 0 {
		s.presenter.ShowNotice(fmt.Sprintf("%d record(s) not delivered, will retry on the next reconnect", stats.undelivered), NoticeWarn)
	}
}
