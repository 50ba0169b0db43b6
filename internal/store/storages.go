package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-gen/internal/config"
	"github.com/MKhiriev/go-pass-gen/internal/logger"
)

// Storages groups all repositories into a single value that can be passed
// around the service layer.
type Storages struct {
	PresetRepository PresetRepository

	db *DB
}

// NewStorages opens the backend selected by cfg.DB.DSN (see [DialectFromDSN]),
// runs pending migrations and wires the repositories.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	var (
		db  *DB
		err error
	)
	switch dialect := DialectFromDSN(cfg.DB.DSN); dialect {
	case DialectPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB, logger)
	case DialectSQLite:
		db, err = NewConnectSQLite(ctx, cfg.DB, logger)
	default:
		err = fmt.Errorf("%w: %s", ErrUnsupportedDialect, dialect)
	}
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		PresetRepository: NewPresetRepository(db, logger),
		db:               db,
	}, nil
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
