package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/did-signin/internal/config"
	"github.com/MKhiriev/did-signin/internal/logger"
)

// MemoryDSN selects the in-process session storage.
const MemoryDSN = "memory"

// ClientStorages groups the client-side storages handed to the service layer.
type ClientStorages struct {
	// SessionStorage holds the SDK_LINK / SDK_DID markers.
	SessionStorage SessionStorage

	db *DB
}

// NewClientStorages opens the session storage named by cfg.DB.DSN:
//   - "memory" keeps markers in process memory,
//   - "postgres://" or "postgresql://" URLs connect to PostgreSQL,
//   - anything else is treated as an SQLite file path.
//
// SQL backends are migrated before use.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	log.Info().Str("func", "NewClientStorages").Msg("creating new storages...")

	if cfg.DB.DSN == "" {
		return nil, ErrUnsupportedDSN
	}
	if cfg.DB.DSN == MemoryDSN {
		return &ClientStorages{SessionStorage: NewMemorySessionStorage()}, nil
	}

	var (
		db  *DB
		err error
	)
	if isPostgresDSN(cfg.DB.DSN) {
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	} else {
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	}
	if err != nil {
		return nil, fmt.Errorf("storage connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, errors.Join(ErrMigratingDB, err)
	}

	return &ClientStorages{
		SessionStorage: NewSQLSessionStorage(db, log),
		db:             db,
	}, nil
}

// Close releases the database connection, if any.
func (s *ClientStorages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
