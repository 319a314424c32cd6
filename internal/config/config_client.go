package config

import (
	"fmt"
	"time"

	"github.com/MKhiriev/did-signin/models"
)

// ClientApp holds token and logging settings of the client.
type ClientApp struct {
	// TokenSignKey is the HMAC secret for session tokens.
	TokenSignKey string
	// TokenIssuer is the "iss" claim of session tokens.
	TokenIssuer string
	// TokenDuration is the session token lifetime.
	TokenDuration time.Duration
	// LogFile is the client log file path; empty means next to the binary.
	LogFile string
}

// ClientDB contains session database connection settings.
type ClientDB struct {
	// DSN is the SQLite path or PostgreSQL URL.
	DSN string
}

// ClientStorage groups session storage backend settings.
type ClientStorage struct {
	// DB holds session database settings.
	DB ClientDB
}

// ClientDID holds DID resolver settings.
type ClientDID struct {
	// ResolverURL is the resolver JSON-RPC endpoint.
	ResolverURL string
	// RequestTimeout bounds a resolver call.
	RequestTimeout time.Duration
}

// ClientWallet holds connector settings.
type ClientWallet struct {
	// Environment is the execution environment descriptor.
	Environment models.Environment
	// BridgeURL is the managed wallet bridge base URL.
	BridgeURL string
	// InjectedURL is the injected provider endpoint.
	InjectedURL string
	// InAppURL is the in-app provider endpoint, required in the in-app
	// environment.
	InAppURL string
	// RequestTimeout bounds every wallet call.
	RequestTimeout time.Duration
	// PairingTimeout bounds the wait for bridge session approval.
	PairingTimeout time.Duration
	// PollInterval is the bridge polling period while pairing.
	PollInterval time.Duration
}

// ClientWorkers contains background job settings.
type ClientWorkers struct {
	// WatchInterval is the managed session watch period.
	WatchInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Storage ClientStorage
	DID     ClientDID
	Wallet  ClientWallet
	Workers ClientWorkers
}

// GetClientConfig builds and validates the client configuration view from
// the merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return NewClientConfig(cfg)
}

// NewClientConfig maps the fields relevant to the client runtime and
// validates the result.
func NewClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		App: ClientApp{
			TokenSignKey:  cfg.App.TokenSignKey,
			TokenIssuer:   cfg.App.TokenIssuer,
			TokenDuration: cfg.App.TokenDuration,
			LogFile:       cfg.App.LogFile,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		DID: ClientDID{
			ResolverURL:    cfg.DID.ResolverURL,
			RequestTimeout: cfg.DID.RequestTimeout,
		},
		Wallet: ClientWallet{
			Environment:    models.Environment{Name: cfg.Wallet.Environment},
			BridgeURL:      cfg.Wallet.BridgeURL,
			InjectedURL:    cfg.Wallet.InjectedURL,
			InAppURL:       cfg.Wallet.InAppURL,
			RequestTimeout: cfg.Wallet.RequestTimeout,
			PairingTimeout: cfg.Wallet.PairingTimeout,
			PollInterval:   cfg.Wallet.PollInterval,
		},
		Workers: ClientWorkers{WatchInterval: cfg.Workers.WatchInterval},
	}

	return clientCfg, clientCfg.validate()
}
