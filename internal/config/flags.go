package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// ParseFlags parses the command-line arguments (without the program name).
//
// Flags:
//
//	-c/-config json file path with configs
//	-d session database DSN (SQLite path or PostgreSQL URL)
//	-resolver DID resolver JSON-RPC endpoint
//	-bridge managed wallet bridge base URL
//	-injected injected wallet JSON-RPC endpoint
//	-in-app in-app browser provider JSON-RPC endpoint
//	-env execution environment name ("essentialsiab" for the in-app browser)
//	-token-sign-key session token signing key
//	-token-issuer session token issuer
//	-token-duration session token lifetime (e.g. "168h")
//	-request-timeout wallet call timeout (e.g. "30s")
//	-log log file path
func ParseFlags(args []string) (*StructuredConfig, error) {
	var (
		jsonConfigPath string
		databaseDSN    string
		resolverURL    string
		bridgeURL      string
		injectedURL    string
		inAppURL       string
		environment    string
		tokenSignKey   string
		tokenIssuer    string
		tokenDuration  time.Duration
		requestTimeout time.Duration
		logFile        string
	)

	fs := flag.NewFlagSet("signin", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&databaseDSN, "d", "", "Session database DSN")
	fs.StringVar(&resolverURL, "resolver", "", "DID resolver endpoint")
	fs.StringVar(&bridgeURL, "bridge", "", "Managed wallet bridge URL")
	fs.StringVar(&injectedURL, "injected", "", "Injected wallet endpoint")
	fs.StringVar(&inAppURL, "in-app", "", "In-app provider endpoint")
	fs.StringVar(&environment, "env", "", "Execution environment name")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 168h)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Wallet request timeout (e.g., 30s)")
	fs.StringVar(&logFile, "log", "", "Log file path")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			LogFile:       logFile,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		DID: DID{
			ResolverURL: resolverURL,
		},
		Wallet: Wallet{
			Environment:    environment,
			BridgeURL:      bridgeURL,
			InjectedURL:    injectedURL,
			InAppURL:       inAppURL,
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
