package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"

	"github.com/MKhiriev/go-pass-gen/internal/logger"
	"github.com/MKhiriev/go-pass-gen/models"
)

const (
	saveAttempts = 3
	retryBackoff = 50 * time.Millisecond
)

// presetRepository is the SQL-backed implementation of [PresetRepository]
// for both SQLite and PostgreSQL.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type presetRepository struct {
	logger *logger.Logger
	db     *DB

	now func() time.Time
}

// NewPresetRepository constructs a [PresetRepository] backed by the provided
// database connection and logger.
func NewPresetRepository(db *DB, logger *logger.Logger) PresetRepository {
	logger.Debug().Msg("creating preset repository")
	return &presetRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

// SavePreset upserts the preset. Errors classified as retryable (a busy
// SQLite file, a PostgreSQL serialization failure) are retried a few times.
//
// Error handling:
//   - PostgreSQL check or length violations → [ErrPresetNotSaved].
//   - No row returned → [ErrPresetNotSaved].
//   - Any other driver-level error → [ErrExecutingQuery].
func (r *presetRepository) SavePreset(ctx context.Context, preset models.Preset) (models.Preset, error) {
	log := logger.FromContext(ctx)

	config, err := json.Marshal(preset.Config)
	if err != nil {
		return models.Preset{}, fmt.Errorf("error encoding preset config: %w", err)
	}

	query, args, err := r.db.buildSavePresetQuery(preset.Name, config, r.now().UTC())
	if err != nil {
		log.Err(err).Str("func", "*presetRepository.SavePreset").Msg("error building query")
		return models.Preset{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	for attempt := 1; ; attempt++ {
		err = r.db.QueryRowContext(ctx, query, args...).Scan(&preset.CreatedAt, &preset.UpdatedAt)
		if err == nil {
			return preset, nil
		}
		if attempt >= saveAttempts || r.db.classify(err) != Retryable {
			break
		}

		log.Warn().Err(err).Str("func", "*presetRepository.SavePreset").Int("attempt", attempt).Msg("retrying save")
		select {
		case <-ctx.Done():
			return models.Preset{}, ctx.Err()
		case <-time.After(retryBackoff * time.Duration(attempt)):
		}
	}

	log.Err(err).Str("func", "*presetRepository.SavePreset").Str("name", preset.Name).Msg("error saving preset")
	if errors.Is(err, sql.ErrNoRows) {
		return models.Preset{}, ErrPresetNotSaved
	}
	switch postgresError(err) {
	case pgerrcode.CheckViolation, pgerrcode.StringDataRightTruncationDataException, pgerrcode.NotNullViolation:
		return models.Preset{}, fmt.Errorf("%w: %w", ErrPresetNotSaved, err)
	default:
		return models.Preset{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

// GetPreset returns the preset named name.
func (r *presetRepository) GetPreset(ctx context.Context, name string) (models.Preset, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildGetPresetQuery(name)
	if err != nil {
		log.Err(err).Str("func", "*presetRepository.GetPreset").Msg("error building query")
		return models.Preset{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	preset, err := scanPreset(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Preset{}, ErrPresetNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*presetRepository.GetPreset").Str("name", name).Msg("error reading preset")
		return models.Preset{}, err
	}

	return preset, nil
}

// ListPresets returns every preset ordered by name.
func (r *presetRepository) ListPresets(ctx context.Context) ([]models.Preset, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildListPresetsQuery()
	if err != nil {
		log.Err(err).Str("func", "*presetRepository.ListPresets").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*presetRepository.ListPresets").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	presets := make([]models.Preset, 0)
	for rows.Next() {
		preset, scanErr := scanPreset(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*presetRepository.ListPresets").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		presets = append(presets, preset)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*presetRepository.ListPresets").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return presets, nil
}

// DeletePreset removes the preset named name.
func (r *presetRepository) DeletePreset(ctx context.Context, name string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildDeletePresetQuery(name)
	if err != nil {
		log.Err(err).Str("func", "*presetRepository.DeletePreset").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*presetRepository.DeletePreset").Str("name", name).Msg("error executing query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrPresetNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPreset(row rowScanner) (models.Preset, error) {
	var (
		preset models.Preset
		config string
	)

	if err := row.Scan(&preset.Name, &config, &preset.CreatedAt, &preset.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Preset{}, err
		}
		return models.Preset{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err := json.Unmarshal([]byte(config), &preset.Config); err != nil {
		return models.Preset{}, fmt.Errorf("%w: decoding config: %w", ErrScanningRow, err)
	}

	return preset, nil
}
