package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const presetsTable = "presets"

var presetColumns = []string{"name", "config", "created_at", "updated_at"}

// upsertSuffix keeps created_at of an existing row and returns the stored
// timestamps. Both SQLite (3.35+) and PostgreSQL accept it.
const upsertSuffix = `ON CONFLICT (name) DO UPDATE
		SET config = excluded.config, updated_at = excluded.updated_at
		RETURNING created_at, updated_at`

func (db *DB) buildSavePresetQuery(name string, config []byte, now time.Time) (string, []any, error) {
	return db.builder().
		Insert(presetsTable).
		Columns(presetColumns...).
		Values(name, string(config), now, now).
		Suffix(upsertSuffix).
		ToSql()
}

func (db *DB) buildGetPresetQuery(name string) (string, []any, error) {
	return db.builder().
		Select(presetColumns...).
		From(presetsTable).
		Where(sq.Eq{"name": name}).
		ToSql()
}

func (db *DB) buildListPresetsQuery() (string, []any, error) {
	return db.builder().
		Select(presetColumns...).
		From(presetsTable).
		OrderBy("name").
		ToSql()
}

func (db *DB) buildDeletePresetQuery(name string) (string, []any, error) {
	return db.builder().
		Delete(presetsTable).
		Where(sq.Eq{"name": name}).
		ToSql()
}
