package workers

import (
	"context"

	"github.com/amekhanov/drill-journal/internal/connectivity"
	"github.com/amekhanov/drill-journal/internal/logger"
	"github.com/amekhanov/drill-journal/internal/service"
)

// ConnectivityWorker bridges the connectivity source and the sync
// coordinator: every reachability transition is forwarded to
// HandleConnectivityChange, which is where the drain of pending records
// happens. After every transition the optional onChange hook runs, letting
// the application refresh what is on screen. The hook runs even when the
// transition handler failed: a broken drain must not leave a stale listing,
// the cache is still readable.
type ConnectivityWorker struct {
	ctx      context.Context
	source   connectivity.Source
	journal  service.JournalService
	onChange func(online bool)
	logger   *logger.Logger
}

func NewConnectivityWorker(
	ctx context.Context,
	source connectivity.Source,
	journal service.JournalService,
	log *logger.Logger,
	onChange func(online bool),
) *ConnectivityWorker {
	return &ConnectivityWorker{
		ctx:      ctx,
		source:   source,
		journal:  journal,
		onChange: onChange,
		logger:   log,
	}
}

// Run implements Worker. It starts the source and consumes its events until
// the channel closes, which happens when the source is stopped.
func (w *ConnectivityWorker) Run() {
	w.source.Start(w.ctx)

	go func() {
		for online := range w.source.Events() {
			if err := w.journal.HandleConnectivityChange(w.ctx, online); err != nil {
				w.logger.Error().Err(err).Bool("online", online).
					Msg("connectivity transition failed")
			}
			if w.onChange != nil {
				w.onChange(online)
			}
		}
	}()
}
