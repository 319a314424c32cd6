// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/MKhiriev/did-signin/internal/logger"
)

// sqlSessionStorage keeps session markers in the session_entries table.
type sqlSessionStorage struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewSQLSessionStorage returns a [SessionStorage] backed by db. The table
// must already exist, see [DB.Migrate].
func NewSQLSessionStorage(db *DB, logger *logger.Logger) SessionStorage {
	return &sqlSessionStorage{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (s *sqlSessionStorage) Get(ctx context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, ErrEmptyKey
	}

	query, args, err := buildSelectSessionEntryQuery(key)
	if err != nil {
		return "", false, errors.Join(ErrBuildingSQLQuery, err)
	}

	var value string
	err = s.db.withRetry(ctx, func(ctx context.Context) error {
		return s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		s.logger.Err(err).
			Str("func", "sqlSessionStorage.Get").
			Str("key", key).
			Msg("failed to read session entry")
		return "", false, s.db.wrapError(ErrExecutingQuery, err)
	}

	return value, true, nil
}

func (s *sqlSessionStorage) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}

	query, args, err := buildUpsertSessionEntryQuery(key, value, s.now().UTC())
	if err != nil {
		return errors.Join(ErrBuildingSQLQuery, err)
	}

	err = s.db.withRetry(ctx, func(ctx context.Context) error {
		_, execErr := s.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		s.logger.Err(err).
			Str("func", "sqlSessionStorage.Set").
			Str("key", key).
			Msg("failed to upsert session entry")
		return s.db.wrapError(ErrExecutingStatement, err)
	}

	s.logger.Debug().Str("func", "sqlSessionStorage.Set").Str("key", key).Msg("session entry saved")
	return nil
}

func (s *sqlSessionStorage) Remove(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	query, args, err := buildDeleteSessionEntriesQuery(keys...)
	if err != nil {
		return errors.Join(ErrBuildingSQLQuery, err)
	}

	err = s.db.withRetry(ctx, func(ctx context.Context) error {
		_, execErr := s.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		s.logger.Err(err).
			Str("func", "sqlSessionStorage.Remove").
			Strs("keys", keys).
			Msg("failed to delete session entries")
		return s.db.wrapError(ErrExecutingStatement, err)
	}

	return nil
}
