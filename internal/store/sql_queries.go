package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const sessionEntriesTable = "session_entries"

// psql renders $N placeholders, which both PostgreSQL and SQLite accept.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func buildSelectSessionEntryQuery(key string) (string, []any, error) {
	return psql.
		Select("value").
		From(sessionEntriesTable).
		Where(sq.Eq{"name": key}).
		ToSql()
}

func buildUpsertSessionEntryQuery(key, value string, at time.Time) (string, []any, error) {
	return psql.
		Insert(sessionEntriesTable).
		Columns("name", "value", "updated_at").
		Values(key, value, at).
		Suffix("ON CONFLICT (name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}

func buildDeleteSessionEntriesQuery(keys ...string) (string, []any, error) {
	return psql.
		Delete(sessionEntriesTable).
		Where(sq.Eq{"name": keys}).
		ToSql()
}
