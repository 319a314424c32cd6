package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_PriorityOrder(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.json = &StructuredConfig{App: App{TokenIssuer: "json", TokenSignKey: "json-key"}}
	b.env = &StructuredConfig{App: App{TokenIssuer: "env"}}
	b.flags = &StructuredConfig{App: App{TokenSignKey: "flag-key"}}

	cfg, err := b.build()

	require.NoError(t, err)
	assert.Equal(t, "env", cfg.App.TokenIssuer)
	assert.Equal(t, "flag-key", cfg.App.TokenSignKey)
	assert.Equal(t, DefaultTokenDuration, cfg.App.TokenDuration)
	assert.Equal(t, DefaultDSN, cfg.Storage.DB.DSN)
}

func TestBuild_NegativeDurationRejected(t *testing.T) {
	b := newConfigBuilder()
	b.flags = &StructuredConfig{App: App{TokenDuration: -time.Second}}

	_, err := b.build()

	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

func TestLoadStructuredConfig_AllSources(t *testing.T) {
	path := writeJSONFile(t, `{
		"did": { "resolver_url": "https://json-resolver.example" },
		"wallet": { "bridge_url": "https://json-bridge.example" }
	}`)
	setEnvVars(t, map[string]string{
		"CONFIG":            path,
		"WALLET_BRIDGE_URL": "https://env-bridge.example",
	})

	cfg, err := loadStructuredConfig([]string{"-token-sign-key", "flag-secret"})

	require.NoError(t, err)
	assert.Equal(t, "https://json-resolver.example", cfg.DID.ResolverURL)
	assert.Equal(t, "https://env-bridge.example", cfg.Wallet.BridgeURL)
	assert.Equal(t, "flag-secret", cfg.App.TokenSignKey)
	assert.Equal(t, DefaultPairingTimeout, cfg.Wallet.PairingTimeout)
}

func TestLoadStructuredConfig_MissingJSONFile(t *testing.T) {
	clearEnvVars(t)

	_, err := loadStructuredConfig([]string{"-c", "/definitely/not/here.json"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error occurred during building config")
}

func TestLoadStructuredConfig_BadFlagJoinsError(t *testing.T) {
	clearEnvVars(t)

	_, err := loadStructuredConfig([]string{"-nope"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error parsing flags")
}
