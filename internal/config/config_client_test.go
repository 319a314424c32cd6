package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validStructuredConfig() *StructuredConfig {
	cfg := defaultConfig()
	cfg.App.TokenSignKey = "secret"
	cfg.DID.ResolverURL = "https://resolver.example"
	cfg.Wallet.BridgeURL = "https://bridge.example"
	cfg.Wallet.InjectedURL = "http://127.0.0.1:8545"
	return cfg
}

func TestNewClientConfig_Valid(t *testing.T) {
	cfg, err := NewClientConfig(validStructuredConfig())

	require.NoError(t, err)
	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, 7*24*time.Hour, cfg.App.TokenDuration)
	assert.False(t, cfg.Wallet.Environment.InAppBrowser())
	assert.Equal(t, DefaultWatchInterval, cfg.Workers.WatchInterval)
}

func TestNewClientConfig_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:    "missing sign key",
			mutate:  func(cfg *StructuredConfig) { cfg.App.TokenSignKey = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "empty dsn",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "missing resolver",
			mutate:  func(cfg *StructuredConfig) { cfg.DID.ResolverURL = "" },
			wantErr: ErrInvalidDIDConfigs,
		},
		{
			name:    "missing bridge",
			mutate:  func(cfg *StructuredConfig) { cfg.Wallet.BridgeURL = "" },
			wantErr: ErrInvalidWalletConfigs,
		},
		{
			name: "in-app without provider url",
			mutate: func(cfg *StructuredConfig) {
				cfg.Wallet.Environment = "essentialsiab"
				cfg.Wallet.InAppURL = ""
			},
			wantErr: ErrInvalidWalletConfigs,
		},
		{
			name:    "zero poll interval",
			mutate:  func(cfg *StructuredConfig) { cfg.Wallet.PollInterval = 0 },
			wantErr: ErrInvalidWalletConfigs,
		},
		{
			name:    "zero watch interval",
			mutate:  func(cfg *StructuredConfig) { cfg.Workers.WatchInterval = 0 },
			wantErr: ErrInvalidWorkerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validStructuredConfig()
			tt.mutate(cfg)

			_, err := NewClientConfig(cfg)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewClientConfig_InAppEnvironment(t *testing.T) {
	cfg := validStructuredConfig()
	cfg.Wallet.Environment = "essentialsiab"
	cfg.Wallet.InAppURL = "http://127.0.0.1:8546"

	clientCfg, err := NewClientConfig(cfg)

	require.NoError(t, err)
	assert.True(t, clientCfg.Wallet.Environment.InAppBrowser())
}
