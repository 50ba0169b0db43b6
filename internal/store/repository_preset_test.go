package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-gen/internal/logger"
	"github.com/MKhiriev/go-pass-gen/models"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestPresetRepo(t *testing.T, dialect Dialect) (*presetRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	l := logger.Nop()
	classifier := ErrorClassificator(NewSQLiteErrorClassifier())
	if dialect == DialectPostgres {
		classifier = NewPostgresErrorClassifier()
	}

	repo := &presetRepository{
		db:     &DB{DB: db, dialect: dialect, errorClassificator: classifier, logger: l},
		logger: l,
		now:    func() time.Time { return fixedNow },
	}
	return repo, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func testPreset() models.Preset {
	cfg := models.DefaultGenerationConfig()
	cfg.Length = 24
	return models.Preset{Name: "work", Config: cfg}
}

const configJSON = `{"mode":"standard","length":24,"categories":["upper","lower","digits","symbols"],"word_count":5,"separator":"-","pattern":"ULLLNNSS","bulk_count":10}`

// ── SavePreset ────────────────────────────────────────────────────────────────

func TestSavePreset_Success(t *testing.T) {
	repo, mock := newTestPresetRepo(t, DialectPostgres)
	created := fixedNow.Add(-time.Hour)

	mock.ExpectQuery("INSERT INTO presets").
		WithArgs("work", configJSON, fixedNow, fixedNow).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(created, fixedNow))

	saved, err := repo.SavePreset(context.Background(), testPreset())

	require.NoError(t, err)
	assert.Equal(t, "work", saved.Name)
	assert.Equal(t, 24, saved.Config.Length)
	assert.Equal(t, created, saved.CreatedAt)
	assert.Equal(t, fixedNow, saved.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSavePreset_NoRowReturned(t *testing.T) {
	repo, mock := newTestPresetRepo(t, DialectPostgres)

	mock.ExpectQuery("INSERT INTO presets").
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}))

	_, err := repo.SavePreset(context.Background(), testPreset())
	assert.ErrorIs(t, err, ErrPresetNotSaved)
}

func TestSavePreset_CheckViolation(t *testing.T) {
	repo, mock := newTestPresetRepo(t, DialectPostgres)

	mock.ExpectQuery("INSERT INTO presets").
		WillReturnError(pgError(pgerrcode.CheckViolation))

	_, err := repo.SavePreset(context.Background(), testPreset())
	assert.ErrorIs(t, err, ErrPresetNotSaved)
}

func TestSavePreset_UnexpectedDBError(t *testing.T) {
	repo, mock := newTestPresetRepo(t, DialectPostgres)

	mock.ExpectQuery("INSERT INTO presets").
		WillReturnError(errors.New("db network error"))

	_, err := repo.SavePreset(context.Background(), testPreset())
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSavePreset_RetriesRetryableError(t *testing.T) {
	repo, mock := newTestPresetRepo(t, DialectPostgres)

	mock.ExpectQuery("INSERT INTO presets").
		WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectQuery("INSERT INTO presets").
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(fixedNow, fixedNow))

	_, err := repo.SavePreset(context.Background(), testPreset())
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSavePreset_GivesUpAfterAttempts(t *testing.T) {
	repo, mock := newTestPresetRepo(t, DialectPostgres)

	for i := 0; i < saveAttempts; i++ {
		mock.ExpectQuery("INSERT INTO presets").
			WillReturnError(pgError(pgerrcode.DeadlockDetected))
	}

	_, err := repo.SavePreset(context.Background(), testPreset())
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ── GetPreset ─────────────────────────────────────────────────────────────────

func TestGetPreset_Success(t *testing.T) {
	repo, mock := newTestPresetRepo(t, DialectSQLite)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT name, config, created_at, updated_at FROM presets WHERE name = ?")).
		WithArgs("work").
		WillReturnRows(sqlmock.NewRows(presetColumns).AddRow("work", configJSON, fixedNow, fixedNow))

	preset, err := repo.GetPreset(context.Background(), "work")

	require.NoError(t, err)
	assert.Equal(t, testPreset().Config, preset.Config)
	assert.Equal(t, fixedNow, preset.CreatedAt)
}

func TestGetPreset_NotFound(t *testing.T) {
	repo, mock := newTestPresetRepo(t, DialectSQLite)

	mock.ExpectQuery("SELECT name, config").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetPreset(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrPresetNotFound)
}

func TestGetPreset_CorruptConfig(t *testing.T) {
	repo, mock := newTestPresetRepo(t, DialectSQLite)

	mock.ExpectQuery("SELECT name, config").
		WillReturnRows(sqlmock.NewRows(presetColumns).AddRow("work", "{not json", fixedNow, fixedNow))

	_, err := repo.GetPreset(context.Background(), "work")
	assert.ErrorIs(t, err, ErrScanningRow)
}

// ── ListPresets ───────────────────────────────────────────────────────────────

func TestListPresets_Success(t *testing.T) {
	repo, mock := newTestPresetRepo(t, DialectSQLite)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT name, config, created_at, updated_at FROM presets ORDER BY name")).
		WillReturnRows(sqlmock.NewRows(presetColumns).
			AddRow("a", `{"mode":"pattern","pattern":"LLNN"}`, fixedNow, fixedNow).
			AddRow("b", `{"mode":"passphrase","word_count":6}`, fixedNow, fixedNow))

	presets, err := repo.ListPresets(context.Background())

	require.NoError(t, err)
	require.Len(t, presets, 2)
	assert.Equal(t, "a", presets[0].Name)
	assert.Equal(t, models.ModePattern, presets[0].Config.Mode)
	assert.Equal(t, 6, presets[1].Config.WordCount)
}

func TestListPresets_Empty(t *testing.T) {
	repo, mock := newTestPresetRepo(t, DialectSQLite)

	mock.ExpectQuery("SELECT name, config").
		WillReturnRows(sqlmock.NewRows(presetColumns))

	presets, err := repo.ListPresets(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, presets)
	assert.Empty(t, presets)
}

func TestListPresets_QueryError(t *testing.T) {
	repo, mock := newTestPresetRepo(t, DialectSQLite)

	mock.ExpectQuery("SELECT name, config").WillReturnError(errors.New("boom"))

	_, err := repo.ListPresets(context.Background())
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestListPresets_RowError(t *testing.T) {
	repo, mock := newTestPresetRepo(t, DialectSQLite)

	mock.ExpectQuery("SELECT name, config").
		WillReturnRows(sqlmock.NewRows(presetColumns).
			AddRow("a", `{}`, fixedNow, fixedNow).
			RowError(0, errors.New("row broke")))

	_, err := repo.ListPresets(context.Background())
	assert.ErrorIs(t, err, ErrScanningRows)
}

// ── DeletePreset ──────────────────────────────────────────────────────────────

func TestDeletePreset_Success(t *testing.T) {
	repo, mock := newTestPresetRepo(t, DialectPostgres)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM presets WHERE name = $1")).
		WithArgs("work").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.DeletePreset(context.Background(), "work"))
}

func TestDeletePreset_NotFound(t *testing.T) {
	repo, mock := newTestPresetRepo(t, DialectPostgres)

	mock.ExpectExec("DELETE FROM presets").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.DeletePreset(context.Background(), "work"), ErrPresetNotFound)
}

func TestDeletePreset_ExecError(t *testing.T) {
	repo, mock := newTestPresetRepo(t, DialectPostgres)

	mock.ExpectExec("DELETE FROM presets").WillReturnError(errors.New("boom"))

	assert.ErrorIs(t, repo.DeletePreset(context.Background(), "work"), ErrExecutingQuery)
}
