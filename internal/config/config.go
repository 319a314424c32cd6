// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging defaults, an optional JSON file, environment variables and
// command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token minting and logging settings.
	App App `envPrefix:"APP_"`

	// Storage holds the session storage backend settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// DID holds the DID resolver settings used by the presentation verifier.
	DID DID `envPrefix:"DID_"`

	// Wallet holds connector endpoints, the environment descriptor and
	// wallet call timeouts.
	Wallet Wallet `envPrefix:"WALLET_"`

	// Workers holds configuration for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds session token and logging settings.
type App struct {
	// TokenSignKey is the HMAC secret used to sign session tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of every session token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the session token lifetime (default 7 days).
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// LogFile is the client log file path.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups session storage settings.
type Storage struct {
	// DB holds the session database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds the session database connection settings.
type DB struct {
	// DSN is either a SQLite file path or a PostgreSQL URL
	// ("postgres://..." / "postgresql://...").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// DID holds DID resolver settings.
type DID struct {
	// ResolverURL is the JSON-RPC endpoint of the DID resolver.
	// Env: DID_RESOLVER_URL
	ResolverURL string `env:"RESOLVER_URL"`

	// RequestTimeout bounds a single resolver call.
	// Env: DID_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Wallet holds connector settings.
type Wallet struct {
	// Environment names the execution environment. "essentialsiab" selects
	// the in-app provider as the managed address source.
	// Env: WALLET_ENVIRONMENT
	Environment string `env:"ENVIRONMENT"`

	// BridgeURL is the base URL of the managed wallet bridge.
	// Env: WALLET_BRIDGE_URL
	BridgeURL string `env:"BRIDGE_URL"`

	// InjectedURL is the JSON-RPC endpoint of the injected wallet provider.
	// Env: WALLET_INJECTED_URL
	InjectedURL string `env:"INJECTED_URL"`

	// InAppURL is the JSON-RPC endpoint of the in-app browser provider.
	// Env: WALLET_IN_APP_URL
	InAppURL string `env:"IN_APP_URL"`

	// RequestTimeout bounds every wallet call.
	// Env: WALLET_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// PairingTimeout bounds the wait for the wallet to approve a bridge
	// session.
	// Env: WALLET_PAIRING_TIMEOUT
	PairingTimeout time.Duration `env:"PAIRING_TIMEOUT"`

	// PollInterval is the bridge polling period while pairing.
	// Env: WALLET_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// WatchInterval is the period of the managed session watch job.
	// Env: WORKERS_WATCH_INTERVAL
	WatchInterval time.Duration `env:"WATCH_INTERVAL"`
}

// Default values applied before any other source.
const (
	DefaultTokenIssuer     = "did-signin"
	DefaultTokenDuration   = 7 * 24 * time.Hour
	DefaultDSN             = "signin.db"
	DefaultResolverTimeout = 15 * time.Second
	DefaultWalletTimeout   = 30 * time.Second
	DefaultPairingTimeout  = 2 * time.Minute
	DefaultPollInterval    = time.Second
	DefaultWatchInterval   = 30 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
		},
		Storage: Storage{DB: DB{DSN: DefaultDSN}},
		DID:     DID{RequestTimeout: DefaultResolverTimeout},
		Wallet: Wallet{
			RequestTimeout: DefaultWalletTimeout,
			PairingTimeout: DefaultPairingTimeout,
			PollInterval:   DefaultPollInterval,
		},
		Workers: Workers{WatchInterval: DefaultWatchInterval},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all sources. Priority, lowest to highest: defaults, JSON file,
// environment variables, command-line flags.
func GetStructuredConfig() (*StructuredConfig, error) {
	return loadStructuredConfig(os.Args[1:])
}

func loadStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
