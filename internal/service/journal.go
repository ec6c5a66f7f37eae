package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/amekhanov/drill-journal/internal/adapter"
	"github.com/amekhanov/drill-journal/internal/logger"
	"github.com/amekhanov/drill-journal/internal/store"
	"github.com/amekhanov/drill-journal/internal/validators"
	"github.com/amekhanov/drill-journal/models"
)

type journalService struct {
	wells  store.PendingWellRepository
	layers store.PendingLayerRepository
	server adapter.ServerAdapter

	validator validators.Validator
	presenter Presenter

	mu    sync.RWMutex
	state State
}

// NewJournalService constructs the sync coordinator. It starts in the
// Offline state: nothing touches the network until the connectivity source
// reports the server reachable, at which point HandleConnectivityChange
// flips the state and drains whatever accumulated.
func NewJournalService(
	wells store.PendingWellRepository,
	layers store.PendingLayerRepository,
	server adapter.ServerAdapter,
	validator validators.Validator,
	presenter Presenter,
) JournalService {
	return &journalService{
		wells:     wells,
		layers:    layers,
		server:    server,
		validator: validator,
		presenter: presenter,
		state:     Offline,
	}
}

// State implements [JournalService].
func (s *journalService) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *journalService) setState(state State) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

// CreateWell implements [JournalService].
func (s *journalService) CreateWell(ctx context.Context, well models.Well) (models.Well, error) {
	log := logger.FromContext(ctx).With().Str("func", "CreateWell").Logger()

	if err := s.validator.Validate(ctx, well); err != nil {
		s.presenter.ShowNotice(err.Error(), NoticeError)
		return models.Well{}, err
	}

	if s.State() == Online {
		created, err := s.server.CreateWell(ctx, well)
		switch {
		case err == nil:
			s.presenter.ShowNotice(fmt.Sprintf("well %q saved", created.Name), NoticeSuccess)
			return created, nil
		case errors.Is(err, adapter.ErrTransport):
			// сервер пропал посреди запроса: уходим в локальный кеш
			log.Warn().Err(err).Msg("server unreachable, falling back to pending cache")
		default:
			s.presenter.ShowNotice(fmt.Sprintf("server rejected well %q: %v", well.Name, err), NoticeError)
			return models.Well{}, fmt.Errorf("%w: %w", ErrRecordRejected, err)
		}
	}

	saved, err := s.wells.Save(ctx, well)
	if err != nil {
		log.Error().Err(err).Msg("pending cache write failed")
		s.presenter.ShowFatalError(fmt.Sprintf("cannot save well locally: %v", err))
		return models.Well{}, fmt.Errorf("save well to pending cache: %w", err)
	}

	s.presenter.ShowNotice(fmt.Sprintf("well %q saved locally, will sync when back online", saved.Name), NoticeWarn)
	return saved, nil
}

// CreateLayer implements [JournalService].
func (s *journalService) CreateLayer(ctx context.Context, layer models.Layer) (models.Layer, error) {
	log := logger.FromContext(ctx).With().Str("func", "CreateLayer").Logger()

	if err := s.validator.Validate(ctx, layer); err != nil {
		s.presenter.ShowNotice(err.Error(), NoticeError)
		return models.Layer{}, err
	}

	if s.State() == Online && !isLocalID(layer.WellID) {
		created, err := s.server.CreateLayer(ctx, layer)
		switch {
		case err == nil:
			s.presenter.ShowNotice(fmt.Sprintf("layer %s saved", layerInterval(created)), NoticeSuccess)
			return created, nil
		case errors.Is(err, adapter.ErrTransport):
			log.Warn().Err(err).Msg("server unreachable, falling back to pending cache")
		default:
			s.presenter.ShowNotice(fmt.Sprintf("server rejected layer %s: %v", layerInterval(layer), err), NoticeError)
			return models.Layer{}, fmt.Errorf("%w: %w", ErrRecordRejected, err)
		}
	}

	saved, err := s.layers.Save(ctx, layer)
	if err != nil {
		log.Error().Err(err).Msg("pending cache write failed")
		s.presenter.ShowFatalError(fmt.Sprintf("cannot save layer locally: %v", err))
		return models.Layer{}, fmt.Errorf("save layer to pending cache: %w", err)
	}

	s.presenter.ShowNotice(fmt.Sprintf("layer %s saved locally, will sync when back online", layerInterval(saved)), NoticeWarn)
	return saved, nil
}

// LoadWells implements [JournalService].
func (s *journalService) LoadWells(ctx context.Context) ([]models.Well, error) {
	log := logger.FromContext(ctx).With().Str("func", "LoadWells").Logger()

	var remote []models.Well
	remoteFailed := false
	if s.State() == Online {
		var err error
		remote, err = s.server.GetWells(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("well listing unavailable from server")
			s.presenter.ShowNotice("server unavailable, showing unsynced records only", NoticeWarn)
			remoteFailed = true
		}
	}

	pending, err := s.wells.GetAll(ctx)
	if err != nil {
		if remoteFailed || s.State() == Offline {
			// ни сервера, ни кеша: показывать нечего
			s.presenter.ShowFatalError(fmt.Sprintf("local storage unavailable: %v", err))
			return nil, fmt.Errorf("load pending wells: %w", err)
		}
		log.Error().Err(err).Msg("pending cache read failed, listing degrades to server records")
		s.presenter.ShowNotice("unsynced records are unavailable", NoticeError)
		return remote, nil
	}

	return append(remote, pending...), nil
}

// LoadLayers implements [JournalService].
func (s *journalService) LoadLayers(ctx context.Context, wellID string) ([]models.Layer, error) {
	log := logger.FromContext(ctx).With().Str("func", "LoadLayers").Logger()

	var remote []models.Layer
	remoteFailed := false

	// слои скважины, которая сама ещё не синхронизирована, есть только локально
	if s.State() == Online && !isLocalID(wellID) {
		var err error
		remote, err = s.server.GetLayers(ctx, wellID)
		if err != nil {
			log.Warn().Err(err).Str("well_id", wellID).Msg("layer listing unavailable from server")
			s.presenter.ShowNotice("server unavailable, showing unsynced records only", NoticeWarn)
			remoteFailed = true
		}
	}

	pending, err := s.layers.GetByWell(ctx, wellID)
	if err != nil {
		if remoteFailed || s.State() == Offline {
			s.presenter.ShowFatalError(fmt.Sprintf("local storage unavailable: %v", err))
			return nil, fmt.Errorf("load pending layers: %w", err)
		}
		log.Error().Err(err).Msg("pending cache read failed, listing degrades to server records")
		s.presenter.ShowNotice("unsynced records are unavailable", NoticeError)
		return remote, nil
	}

	return append(remote, pending...), nil
}

// isLocalID reports whether id is a client-generated local id rather than a
// server-assigned numeric key.
func isLocalID(id string) bool {
	return strings.HasPrefix(id, "offline_")
}

func layerInterval(layer models.Layer) string {
	return fmt.Sprintf("%.1f-%.1f m", layer.DepthFrom, layer.DepthTo)
}
