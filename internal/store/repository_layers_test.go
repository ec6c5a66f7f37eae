package store

import (
	"database/sql"
	"regexp"
	"strings"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amekhanov/drill-journal/internal/logger"
	"github.com/amekhanov/drill-journal/models"
)

func newTestLayerRepo(t *testing.T, db *sql.DB) PendingLayerRepository {
	t.Helper()
	return NewPendingLayerRepository(newDBFromSQL(db), logger.Nop())
}

var pendingLayerColumns = []string{
	"local_id", "well_id", "depth_from", "depth_to", "lithology",
	"description", "sync_status", "created_at", "updated_at",
}

// ── Save ─────────────────────────────────────────────────────────────────────

func TestLayerSave_AssignsGeneratedFields(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestLayerRepo(t, db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO pending_layers")).
		WithArgs(
			sqlmock.AnyArg(), // local_id
			"3", 5.0, 12.5, models.Sand, "fine-grained",
			models.SyncPending,
			sqlmock.AnyArg(), sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	got, err := repo.Save(testContext(), models.Layer{
		WellID:      "3",
		DepthFrom:   5.0,
		DepthTo:     12.5,
		Lithology:   models.Sand,
		Description: "fine-grained",
	})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got.LocalID, "offline_"))
	assert.Equal(t, models.SyncPending, got.SyncStatus)
	assert.False(t, got.UpdatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLayerSave_ExecError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestLayerRepo(t, db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO pending_layers")).
		WillReturnError(assert.AnError)

	_, err := repo.Save(testContext(), models.Layer{
		WellID: "3", DepthFrom: 5, DepthTo: 12.5, Lithology: models.Sand,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save pending layer")
}

// ── GetAll / GetByWell ───────────────────────────────────────────────────────

func TestLayerGetAll(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestLayerRepo(t, db)

	now := time.Now().UTC().Truncate(time.Second)
	rows := sqlmock.NewRows(pendingLayerColumns).
		AddRow("offline_1_aa", "3", 0.0, 5.0, "clay", "", "pending", now, now).
		AddRow("offline_2_bb", "4", 5.0, 9.5, "sand", "wet", "pending", now, now)

	mock.ExpectQuery(regexp.QuoteMeta("FROM pending_layers")).WillReturnRows(rows)

	layers, err := repo.GetAll(testContext())

	require.NoError(t, err)
	require.Len(t, layers, 2)
	assert.Equal(t, models.Clay, layers[0].Lithology)
	assert.Equal(t, "4", layers[1].WellID)
}

func TestLayerGetByWell(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestLayerRepo(t, db)

	now := time.Now().UTC().Truncate(time.Second)
	rows := sqlmock.NewRows(pendingLayerColumns).
		AddRow("offline_1_aa", "3", 0.0, 5.0, "clay", "", "pending", now, now)

	mock.ExpectQuery(regexp.QuoteMeta("well_id = $1")).
		WithArgs("3").
		WillReturnRows(rows)

	layers, err := repo.GetByWell(testContext(), "3")

	require.NoError(t, err)
	require.Len(t, layers, 1)
	assert.Equal(t, "3", layers[0].WellID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLayerGetByWell_Empty(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestLayerRepo(t, db)

	mock.ExpectQuery(regexp.QuoteMeta("well_id = $1")).
		WithArgs("no-such-well").
		WillReturnRows(sqlmock.NewRows(pendingLayerColumns))

	layers, err := repo.GetByWell(testContext(), "no-such-well")

	require.NoError(t, err)
	assert.Empty(t, layers)
}

func TestLayerGetAll_ScanError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestLayerRepo(t, db)

	rows := sqlmock.NewRows(pendingLayerColumns).
		AddRow("offline_1_aa", "3", "bad", 5.0, "clay", "", "pending", time.Now(), time.Now())

	mock.ExpectQuery(regexp.QuoteMeta("FROM pending_layers")).WillReturnRows(rows)

	_, err := repo.GetAll(testContext())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to scan pending layer row")
}

// ── Delete / Clear ───────────────────────────────────────────────────────────

func TestLayerDelete_MissingKeyIsNoop(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestLayerRepo(t, db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM pending_layers")).
		WithArgs("offline_missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(testContext(), "offline_missing")
	require.NoError(t, err)
}

func TestLayerClear(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestLayerRepo(t, db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM pending_layers")).
		WillReturnResult(sqlmock.NewResult(0, 2))

	err := repo.Clear(testContext())
	require.NoError(t, err)
}
