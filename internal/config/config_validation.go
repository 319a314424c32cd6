// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks structural invariants of the merged [StructuredConfig].
// Required values are checked on the client view, see [ClientConfig.validate].
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenDuration < 0 {
		return ErrInvalidAppConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.DID.ResolverURL == "" || cfg.DID.RequestTimeout <= 0 {
		return ErrInvalidDIDConfigs
	}

	if cfg.Wallet.BridgeURL == "" || cfg.Wallet.InjectedURL == "" {
		return ErrInvalidWalletConfigs
	}
	if cfg.Wallet.Environment.InAppBrowser() && cfg.Wallet.InAppURL == "" {
		return ErrInvalidWalletConfigs
	}
	if cfg.Wallet.RequestTimeout <= 0 || cfg.Wallet.PairingTimeout <= 0 || cfg.Wallet.PollInterval <= 0 {
		return ErrInvalidWalletConfigs
	}

	if cfg.Workers.WatchInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
