package store

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SessionStorage persists the small string markers that describe a signed-in
// session. Get reports whether the key is present; Remove ignores absent keys.
type SessionStorage interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, keys ...string) error
}

// ErrorClassificator decides whether a failed database call is worth retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
