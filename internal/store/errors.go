package store

import "errors"

// Sentinel errors returned by session storages. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrEmptyKey is returned when a marker name is empty.
	ErrEmptyKey = errors.New("session key is empty")

	// ErrStorageNotMigrated is returned when the session table does not exist.
	ErrStorageNotMigrated = errors.New("session storage is not migrated")

	// ErrUnsupportedDSN is returned when the DSN names no known backend.
	ErrUnsupportedDSN = errors.New("unsupported storage dsn")
)

// Low-level database operation errors.
var (
	ErrBuildingSQLQuery   = errors.New("error building sql query")
	ErrExecutingQuery     = errors.New("error executing sql query")
	ErrExecutingStatement = errors.New("failed to executing statement")
	ErrConnectingDB       = errors.New("error connecting database")
	ErrMigratingDB        = errors.New("error migrating database")
)
