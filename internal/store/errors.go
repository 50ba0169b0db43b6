package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrPresetNotFound is returned when no preset with the requested name
	// exists.
	ErrPresetNotFound = errors.New("preset was not found")

	// ErrPresetNotSaved is returned when an upsert completes without returning
	// the stored row, or the database rejects the row.
	ErrPresetNotSaved = errors.New("preset was not saved")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan preset row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan preset rows")

	// ErrUnsupportedDialect is returned when a DSN selects no known backend.
	ErrUnsupportedDialect = errors.New("unsupported database dialect")
)
