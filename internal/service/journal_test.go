// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Mekhanov

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/amekhanov/drill-journal/internal/adapter"
	"github.com/amekhanov/drill-journal/internal/mock"
	"github.com/amekhanov/drill-journal/internal/store"
	"github.com/amekhanov/drill-journal/internal/validators"
	"github.com/amekhanov/drill-journal/models"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

type notice struct {
	text  string
	level NoticeLevel
}

// recordingPresenter — простой стаб Presenter, не требует mockgen (избегаем цикл импортов).
type recordingPresenter struct {
	notices []notice
	fatal   []string
}

func (p *recordingPresenter) RenderWells([]models.Well)   {}
func (p *recordingPresenter) RenderLayers([]models.Layer) {}

func (p *recordingPresenter) ShowNotice(text string, level NoticeLevel) {
	p.notices = append(p.notices, notice{text: text, level: level})
}

func (p *recordingPresenter) ShowFatalError(text string) {
	p.fatal = append(p.fatal, text)
}

func (p *recordingPresenter) hasLevel(level NoticeLevel) bool {
	for _, n := range p.notices {
		if n.level == level {
			return true
		}
	}
	return false
}

func setupJournal(ctrl *gomock.Controller) (
	*journalService,
	*mock.MockPendingWellRepository,
	*mock.MockPendingLayerRepository,
	*mock.MockServerAdapter,
	*recordingPresenter,
) {
	wells := mock.NewMockPendingWellRepository(ctrl)
	layers := mock.NewMockPendingLayerRepository(ctrl)
	server := mock.NewMockServerAdapter(ctrl)
	presenter := &recordingPresenter{}

	svc := NewJournalService(wells, layers, server, validators.NewRecordValidator(), presenter).(*journalService)
	return svc, wells, layers, server, presenter
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

func newWell() models.Well {
	return models.Well{
		Name:        "Скв-101",
		Area:        "Восточный участок",
		Structure:   "Купол-2",
		DesignDepth: 120.5,
	}
}

func newLayer() models.Layer {
	return models.Layer{
		WellID:    "3",
		DepthFrom: 5,
		DepthTo:   12.5,
		Lithology: models.Sand,
	}
}

func transportErr() error {
	return fmt.Errorf("%w: connection refused", adapter.ErrTransport)
}

// ---------------------------------------------------------------------------
// TestNewJournalService
// ---------------------------------------------------------------------------

func TestNewJournalService_StartsOffline(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _, _, _ := setupJournal(ctrl)

	assert.Equal(t, Offline, svc.State())
}

// ---------------------------------------------------------------------------
// TestCreateWell
// ---------------------------------------------------------------------------

func TestCreateWell_Online_SentToServer(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _, server, presenter := setupJournal(ctrl)
	svc.setState(Online)
	ctx := testContext()

	well := newWell()
	server.EXPECT().CreateWell(ctx, well).
		Return(models.Well{ServerID: 7, Name: well.Name, SyncStatus: models.SyncSynced}, nil)

	created, err := svc.CreateWell(ctx, well)

	require.NoError(t, err)
	assert.Equal(t, int64(7), created.ServerID)
	assert.True(t, presenter.hasLevel(NoticeSuccess))
}

func TestCreateWell_Offline_ExactlyOnePendingRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, wells, _, _, presenter := setupJournal(ctrl)
	ctx := testContext()

	well := newWell()
	saved := well
	saved.LocalID = "offline_1_aa"
	saved.SyncStatus = models.SyncPending
	wells.EXPECT().Save(ctx, well).Return(saved, nil).Times(1)

	created, err := svc.CreateWell(ctx, well)

	require.NoError(t, err)
	assert.Equal(t, "offline_1_aa", created.LocalID)
	assert.Equal(t, models.SyncPending, created.SyncStatus)
	assert.True(t, presenter.hasLevel(NoticeWarn))
}

func TestCreateWell_TransportFailureFallsBackToCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, wells, _, server, presenter := setupJournal(ctrl)
	svc.setState(Online)
	ctx := testContext()

	well := newWell()
	saved := well
	saved.LocalID = "offline_1_aa"
	saved.SyncStatus = models.SyncPending

	server.EXPECT().CreateWell(ctx, well).Return(models.Well{}, transportErr())
	wells.EXPECT().Save(ctx, well).Return(saved, nil)

	created, err := svc.CreateWell(ctx, well)

	require.NoError(t, err)
	assert.Equal(t, models.SyncPending, created.SyncStatus)
	assert.True(t, presenter.hasLevel(NoticeWarn))
	// одиночный сбой запроса не меняет объявленное состояние
	assert.Equal(t, Online, svc.State())
}

func TestCreateWell_ValidationShortCircuits(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _, _, presenter := setupJournal(ctrl)
	svc.setState(Online)
	ctx := testContext()

	bad := newWell()
	bad.DesignDepth = -1

	_, err := svc.CreateWell(ctx, bad)

	require.ErrorIs(t, err, validators.ErrValidation)
	assert.True(t, presenter.hasLevel(NoticeError))
}

func TestCreateWell_ValidatorErrorCausesZeroIO(t *testing.T) {
	ctrl := gomock.NewController(t)
	wells := mock.NewMockPendingWellRepository(ctrl)
	layers := mock.NewMockPendingLayerRepository(ctrl)
	server := mock.NewMockServerAdapter(ctrl)
	validator := mock.NewMockValidator(ctrl)
	presenter := &recordingPresenter{}

	svc := NewJournalService(wells, layers, server, validator, presenter).(*journalService)
	svc.setState(Online)
	ctx := testContext()

	well := newWell()
	validator.EXPECT().Validate(ctx, well).
		Return(fmt.Errorf("%w: name is required", validators.ErrValidation))

	// ни сервер, ни кеш не трогаем: на моках нет ни одного EXPECT
	_, err := svc.CreateWell(ctx, well)

	require.ErrorIs(t, err, validators.ErrValidation)
	assert.True(t, presenter.hasLevel(NoticeError))
}

func TestCreateWell_RejectedIsNotQueued(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _, server, presenter := setupJournal(ctrl)
	svc.setState(Online)
	ctx := testContext()

	well := newWell()
	server.EXPECT().CreateWell(ctx, well).
		Return(models.Well{}, fmt.Errorf("%w: duplicate name", adapter.ErrBadRequest))

	_, err := svc.CreateWell(ctx, well)

	require.ErrorIs(t, err, ErrRecordRejected)
	assert.ErrorIs(t, err, adapter.ErrBadRequest)
	assert.True(t, presenter.hasLevel(NoticeError))
}

func TestCreateWell_CacheWriteFailureIsFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, wells, _, _, presenter := setupJournal(ctrl)
	ctx := testContext()

	well := newWell()
	wells.EXPECT().Save(ctx, well).
		Return(models.Well{}, fmt.Errorf("%w: disk full", store.ErrStorageUnavailable))

	_, err := svc.CreateWell(ctx, well)

	require.ErrorIs(t, err, store.ErrStorageUnavailable)
	assert.NotEmpty(t, presenter.fatal)
}

// ---------------------------------------------------------------------------
// TestCreateLayer
// ---------------------------------------------------------------------------

func TestCreateLayer_Online_SentToServer(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _, server, _ := setupJournal(ctrl)
	svc.setState(Online)
	ctx := testContext()

	layer := newLayer()
	server.EXPECT().CreateLayer(ctx, layer).
		Return(models.Layer{ServerID: 21, WellID: "3", SyncStatus: models.SyncSynced}, nil)

	created, err := svc.CreateLayer(ctx, layer)

	require.NoError(t, err)
	assert.Equal(t, int64(21), created.ServerID)
}

func TestCreateLayer_PendingParentWellGoesToCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, layers, _, presenter := setupJournal(ctrl)
	svc.setState(Online)
	ctx := testContext()

	// скважина-родитель ещё не синхронизирована, слой некуда отправлять
	layer := newLayer()
	layer.WellID = "offline_1_aa"
	saved := layer
	saved.LocalID = "offline_2_bb"
	saved.SyncStatus = models.SyncPending

	layers.EXPECT().Save(ctx, layer).Return(saved, nil)

	created, err := svc.CreateLayer(ctx, layer)

	require.NoError(t, err)
	assert.Equal(t, models.SyncPending, created.SyncStatus)
	assert.True(t, presenter.hasLevel(NoticeWarn))
}

func TestCreateLayer_InvertedIntervalRejectedLocally(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _, _, presenter := setupJournal(ctrl)
	svc.setState(Online)
	ctx := testContext()

	bad := newLayer()
	bad.DepthFrom = 5
	bad.DepthTo = 3

	_, err := svc.CreateLayer(ctx, bad)

	require.ErrorIs(t, err, validators.ErrValidation)
	assert.Contains(t, err.Error(), "depth_to must be greater than depth_from")
	assert.True(t, presenter.hasLevel(NoticeError))
}

// ---------------------------------------------------------------------------
// TestLoadWells
// ---------------------------------------------------------------------------

func TestLoadWells_MergesServerAndPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, wells, _, server, _ := setupJournal(ctrl)
	svc.setState(Online)
	ctx := testContext()

	server.EXPECT().GetWells(ctx).Return([]models.Well{
		{ServerID: 1, Name: "W1"},
		{ServerID: 2, Name: "W2"},
	}, nil)
	wells.EXPECT().GetAll(ctx).Return([]models.Well{
		{LocalID: "offline_1_aa", Name: "W3", SyncStatus: models.SyncPending},
	}, nil)

	got, err := svc.LoadWells(ctx)

	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "W1", got[0].Name)
	assert.Equal(t, models.SyncPending, got[2].SyncStatus)
}

func TestLoadWells_EmptyListingIsNotAnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, wells, _, server, presenter := setupJournal(ctrl)
	svc.setState(Online)
	ctx := testContext()

	server.EXPECT().GetWells(ctx).Return([]models.Well{}, nil)
	wells.EXPECT().GetAll(ctx).Return([]models.Well{}, nil)

	got, err := svc.LoadWells(ctx)

	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Empty(t, presenter.notices)
	assert.Empty(t, presenter.fatal)
}

func TestLoadWells_DegradedFallbackToCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, wells, _, server, presenter := setupJournal(ctrl)
	svc.setState(Online)
	ctx := testContext()

	server.EXPECT().GetWells(ctx).Return(nil, transportErr())
	wells.EXPECT().GetAll(ctx).Return([]models.Well{
		{LocalID: "offline_1_aa", Name: "W3", SyncStatus: models.SyncPending},
	}, nil)

	got, err := svc.LoadWells(ctx)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, presenter.hasLevel(NoticeWarn))
}

func TestLoadWells_Offline_CacheOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, wells, _, _, _ := setupJournal(ctrl)
	ctx := testContext()

	wells.EXPECT().GetAll(ctx).Return([]models.Well{
		{LocalID: "offline_1_aa", Name: "W3", SyncStatus: models.SyncPending},
	}, nil)

	got, err := svc.LoadWells(ctx)

	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestLoadWells_NoServerNoCacheIsFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, wells, _, _, presenter := setupJournal(ctrl)
	ctx := testContext()

	wells.EXPECT().GetAll(ctx).
		Return(nil, fmt.Errorf("%w: cannot open db", store.ErrStorageUnavailable))

	_, err := svc.LoadWells(ctx)

	require.Error(t, err)
	require.ErrorIs(t, err, store.ErrStorageUnavailable)
	assert.NotEmpty(t, presenter.fatal)
}

func TestLoadWells_CacheFailureDegradesToServerRecords(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, wells, _, server, presenter := setupJournal(ctrl)
	svc.setState(Online)
	ctx := testContext()

	server.EXPECT().GetWells(ctx).Return([]models.Well{{ServerID: 1, Name: "W1"}}, nil)
	wells.EXPECT().GetAll(ctx).Return(nil, errors.New("cache corrupted"))

	got, err := svc.LoadWells(ctx)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, presenter.hasLevel(NoticeError))
	assert.Empty(t, presenter.fatal)
}

// ---------------------------------------------------------------------------
// TestLoadLayers
// ---------------------------------------------------------------------------

func TestLoadLayers_MergesServerAndPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, layers, server, _ := setupJournal(ctrl)
	svc.setState(Online)
	ctx := testContext()

	server.EXPECT().GetLayers(ctx, "3").Return([]models.Layer{
		{ServerID: 10, WellID: "3", Lithology: models.Clay},
	}, nil)
	layers.EXPECT().GetByWell(ctx, "3").Return([]models.Layer{
		{LocalID: "offline_2_bb", WellID: "3", Lithology: models.Sand, SyncStatus: models.SyncPending},
	}, nil)

	got, err := svc.LoadLayers(ctx, "3")

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, models.Clay, got[0].Lithology)
	assert.Equal(t, models.SyncPending, got[1].SyncStatus)
}

func TestLoadLayers_PendingParentWellSkipsServer(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, layers, _, _ := setupJournal(ctrl)
	svc.setState(Online)
	ctx := testContext()

	layers.EXPECT().GetByWell(ctx, "offline_1_aa").Return([]models.Layer{
		{LocalID: "offline_2_bb", WellID: "offline_1_aa", SyncStatus: models.SyncPending},
	}, nil)

	got, err := svc.LoadLayers(ctx, "offline_1_aa")

	require.NoError(t, err)
	require.Len(t, got, 1)
}
