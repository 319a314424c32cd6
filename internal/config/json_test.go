package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSONFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestParseJSON_Success(t *testing.T) {
	p := writeJSONFile(t, `{
		"app": {
			"token_sign_key": "jwt_secret",
			"token_issuer": "test_issuer",
			"token_duration": "168h",
			"log_file": "client.log"
		},
		"storage": { "db": { "dsn": "session.db" } },
		"did": { "resolver_url": "https://resolver.example", "request_timeout": "10s" },
		"wallet": {
			"environment": "desktop",
			"bridge_url": "https://bridge.example",
			"injected_url": "http://127.0.0.1:8545",
			"in_app_url": "",
			"request_timeout": "20s",
			"pairing_timeout": "1m",
			"poll_interval": 1000000000
		},
		"workers": { "watch_interval": "45s" }
	}`)

	cfg, err := parseJSON(p)

	require.NoError(t, err)
	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 168*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "client.log", cfg.App.LogFile)
	assert.Equal(t, "session.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "https://resolver.example", cfg.DID.ResolverURL)
	assert.Equal(t, 10*time.Second, cfg.DID.RequestTimeout)
	assert.Equal(t, "desktop", cfg.Wallet.Environment)
	assert.Equal(t, "https://bridge.example", cfg.Wallet.BridgeURL)
	assert.Equal(t, 20*time.Second, cfg.Wallet.RequestTimeout)
	assert.Equal(t, time.Minute, cfg.Wallet.PairingTimeout)
	assert.Equal(t, time.Second, cfg.Wallet.PollInterval)
	assert.Equal(t, 45*time.Second, cfg.Workers.WatchInterval)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "nope.json"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_Malformed(t *testing.T) {
	p := writeJSONFile(t, `{"app": `)

	_, err := parseJSON(p)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_BadDuration(t *testing.T) {
	p := writeJSONFile(t, `{"wallet": {"request_timeout": true}}`)

	_, err := parseJSON(p)

	require.Error(t, err)
}

func TestDuration_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Duration(90 * time.Second))

	require.NoError(t, err)
	assert.JSONEq(t, `"1m30s"`, string(data))
}
