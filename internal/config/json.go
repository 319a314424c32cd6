package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the JSON configuration file.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		LogFile       string   `json:"log_file"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	DID struct {
		ResolverURL    string   `json:"resolver_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"did,omitempty"`

	Wallet struct {
		Environment    string   `json:"environment"`
		BridgeURL      string   `json:"bridge_url"`
		InjectedURL    string   `json:"injected_url"`
		InAppURL       string   `json:"in_app_url"`
		RequestTimeout Duration `json:"request_timeout"`
		PairingTimeout Duration `json:"pairing_timeout"`
		PollInterval   Duration `json:"poll_interval"`
	} `json:"wallet,omitempty"`

	Workers struct {
		WatchInterval Duration `json:"watch_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			LogFile:       jsonCfg.App.LogFile,
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
		},
		DID: DID{
			ResolverURL:    jsonCfg.DID.ResolverURL,
			RequestTimeout: time.Duration(jsonCfg.DID.RequestTimeout),
		},
		Wallet: Wallet{
			Environment:    jsonCfg.Wallet.Environment,
			BridgeURL:      jsonCfg.Wallet.BridgeURL,
			InjectedURL:    jsonCfg.Wallet.InjectedURL,
			InAppURL:       jsonCfg.Wallet.InAppURL,
			RequestTimeout: time.Duration(jsonCfg.Wallet.RequestTimeout),
			PairingTimeout: time.Duration(jsonCfg.Wallet.PairingTimeout),
			PollInterval:   time.Duration(jsonCfg.Wallet.PollInterval),
		},
		Workers: Workers{
			WatchInterval: time.Duration(jsonCfg.Workers.WatchInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as raw nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
