package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates missing token settings (for example, an
	// empty signing key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates an empty session storage DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidDIDConfigs indicates a missing resolver endpoint or timeout.
	ErrInvalidDIDConfigs = errors.New("invalid did configuration")
	// ErrInvalidWalletConfigs indicates missing connector endpoints or
	// non-positive wallet timeouts.
	ErrInvalidWalletConfigs = errors.New("invalid wallet configuration")
	// ErrInvalidWorkerConfigs indicates a non-positive watch interval.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
