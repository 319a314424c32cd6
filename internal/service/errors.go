package service

import "errors"

var (
	// ErrConsentDeclined is returned when the wallet declined to share a
	// presentation. Nothing is persisted and the bridge stays connected.
	ErrConsentDeclined = errors.New("wallet declined to share credentials")

	// ErrEmptyHolder is returned when the verified presentation has no
	// holder. Nothing is persisted and the bridge stays connected.
	ErrEmptyHolder = errors.New("presentation holder is empty")

	// ErrHandshakeFailed wraps any other handshake failure. The bridge is
	// disconnected once before it is returned.
	ErrHandshakeFailed = errors.New("credential handshake failed")

	ErrConnector = errors.New("wallet connector error")
	ErrBootstrap = errors.New("session restore failed")
	ErrStorage   = errors.New("session storage error")

	// ErrAccountUndefined is returned when the injected wallet exposes no
	// account at all.
	ErrAccountUndefined = errors.New("wallet returned no account")

	// ErrNoWalletAccount is returned when a connected managed wallet lists
	// no account.
	ErrNoWalletAccount = errors.New("wallet session has no account")

	ErrSessionClosed      = errors.New("session service is closed")
	ErrInvalidTokenParams = errors.New("invalid session token parameters")
)
