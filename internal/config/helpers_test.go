package config

import (
	"os"
	"testing"
)

var knownEnvVars = []string{
	"CONFIG",
	"APP_TOKEN_SIGN_KEY", "APP_TOKEN_ISSUER", "APP_TOKEN_DURATION", "APP_LOG_FILE",
	"STORAGE_DB_DSN",
	"DID_RESOLVER_URL", "DID_REQUEST_TIMEOUT",
	"WALLET_ENVIRONMENT", "WALLET_BRIDGE_URL", "WALLET_INJECTED_URL", "WALLET_IN_APP_URL",
	"WALLET_REQUEST_TIMEOUT", "WALLET_PAIRING_TIMEOUT", "WALLET_POLL_INTERVAL",
	"WORKERS_WATCH_INTERVAL",
}

// clearEnvVars unsets every variable the config reads and restores the
// previous values when the test ends.
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range knownEnvVars {
		if prev, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { _ = os.Setenv(key, prev) })
		}
		_ = os.Unsetenv(key)
	}
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}
