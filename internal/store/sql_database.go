package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/did-signin/internal/logger"
	"github.com/MKhiriev/did-signin/migrations"
	"github.com/sethvargo/go-retry"
)

const (
	maxRetries = 3
	retryBase  = 50 * time.Millisecond
)

// DB wraps a database connection together with its goose dialect and the
// classifier deciding which driver errors are transient.
type DB struct {
	*sql.DB
	dialect            string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return NonRetryable
	}
	return db.errorClassificator.Classify(err)
}

// withRetry runs fn, repeating it with exponential backoff while the driver
// reports a retryable error.
func (db *DB) withRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(maxRetries, retry.NewExponential(retryBase))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := fn(ctx)
		if err != nil && db.classify(err) == Retryable {
			db.logger.Warn().Err(err).Str("func", "DB.withRetry").Msg("retrying database call")
			return retry.RetryableError(err)
		}
		return err
	})
}

// wrapError tags err with sentinel and, when the session table is missing,
// with [ErrStorageNotMigrated].
func (db *DB) wrapError(sentinel, err error) error {
	if isUndefinedTable(err) {
		return fmt.Errorf("%w: %w: %w", sentinel, ErrStorageNotMigrated, err)
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}

// isUndefinedTable recognises a missing table on both supported backends.
func isUndefinedTable(err error) bool {
	if err == nil {
		return false
	}
	if postgresError(err) == undefinedTableCode {
		return true
	}
	return strings.Contains(err.Error(), "no such table")
}
