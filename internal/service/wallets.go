package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/did-signin/internal/adapter"
	"github.com/MKhiriev/did-signin/internal/utils"
	"github.com/MKhiriev/did-signin/models"
)

// Wallets bundles the connectors the flows may use.
type Wallets struct {
	Managed  adapter.ManagedConnector
	Injected adapter.InjectedConnector
	// InApp is the in-app browser provider. It is only used when Env reports
	// the in-app browser and may be nil otherwise.
	InApp adapter.WalletProvider
	Env   models.Environment
}

// WalletTimeouts bound wallet calls.
type WalletTimeouts struct {
	Request time.Duration
	Pairing time.Duration
}

// inApp reports whether the in-app provider is the address source.
func (w Wallets) inApp() bool {
	return w.Env.InAppBrowser() && w.InApp != nil
}

// managedAddressProvider picks the provider the managed flow reads the
// wallet address from.
func (w Wallets) managedAddressProvider() adapter.WalletProvider {
	if w.inApp() {
		return w.InApp
	}
	return w.Managed.Provider()
}

// resolveManagedAddress returns the first account of the managed address
// provider in checksum form.
func (w Wallets) resolveManagedAddress(ctx context.Context, timeout time.Duration) (string, error) {
	callCtx, cancel := withTimeout(ctx, timeout)
	defer cancel()

	accounts, err := w.managedAddressProvider().Accounts(callCtx)
	if err != nil {
		return "", fmt.Errorf("read wallet accounts: %w", mapWalletError(err))
	}
	if len(accounts) == 0 {
		return "", ErrNoWalletAccount
	}
	return utils.ChecksumAddress(accounts[0]), nil
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
