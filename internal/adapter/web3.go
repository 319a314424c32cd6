package adapter

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/did-signin/internal/logger"
	"github.com/MKhiriev/did-signin/internal/utils"
)

// Web3 JSON-RPC methods used by the client.
const (
	methodRequestAccounts   = "eth_requestAccounts"
	methodAccounts          = "eth_accounts"
	methodRevokePermissions = "wallet_revokePermissions"
)

// Web3Provider is a JSON-RPC wallet provider: the injected wallet endpoint or
// the in-app browser provider.
type Web3Provider struct {
	rpc    *rpcClient
	logger *logger.Logger
}

// NewWeb3Provider returns a provider talking to the JSON-RPC endpoint.
func NewWeb3Provider(endpoint string, timeout time.Duration, log *logger.Logger) (*Web3Provider, error) {
	rpc, err := newRPCClient(endpoint, timeout, log)
	if err != nil {
		return nil, err
	}
	return &Web3Provider{rpc: rpc, logger: log}, nil
}

// RequestAccounts prompts the wallet to expose its accounts.
func (p *Web3Provider) RequestAccounts(ctx context.Context) ([]string, error) {
	var accounts []string
	if _, err := p.rpc.call(ctx, methodRequestAccounts, nil, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// Accounts returns the accounts already exposed to the client, without a
// prompt. A null entry decodes to the empty string.
func (p *Web3Provider) Accounts(ctx context.Context) ([]string, error) {
	var accounts []string
	if _, err := p.rpc.call(ctx, methodAccounts, nil, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (p *Web3Provider) IsConnected(ctx context.Context) (bool, error) {
	accounts, err := p.Accounts(ctx)
	if err != nil {
		return false, err
	}
	return len(accounts) > 0, nil
}

// Disconnect revokes the account permission granted to the client.
func (p *Web3Provider) Disconnect(ctx context.Context) error {
	params := []any{map[string]any{"eth_accounts": map[string]any{}}}
	if _, err := p.rpc.call(ctx, methodRevokePermissions, params, nil); err != nil {
		return err
	}
	p.logger.Debug().Str("func", "Web3Provider.Disconnect").Msg("account permissions revoked")
	return nil
}

// injectedConnector drives a [Web3Provider] as a connector. Activation state
// is local; Deactivate does not talk to the wallet.
type injectedConnector struct {
	provider *Web3Provider
	logger   *logger.Logger

	mu     sync.RWMutex
	active bool
}

// NewInjectedConnector wraps provider as the injected wallet connector.
func NewInjectedConnector(provider *Web3Provider, log *logger.Logger) InjectedConnector {
	return &injectedConnector{provider: provider, logger: log}
}

func (c *injectedConnector) Activate(ctx context.Context) error {
	if _, err := c.provider.RequestAccounts(ctx); err != nil {
		return fmt.Errorf("activate injected wallet: %w", err)
	}

	c.mu.Lock()
	c.active = true
	c.mu.Unlock()

	c.logger.Debug().Str("func", "injectedConnector.Activate").Msg("injected wallet activated")
	return nil
}

func (c *injectedConnector) Account(ctx context.Context) (string, bool, error) {
	accounts, err := c.provider.Accounts(ctx)
	if err != nil {
		return "", false, fmt.Errorf("read injected account: %w", err)
	}
	if len(accounts) == 0 {
		return "", false, nil
	}
	return utils.ChecksumAddress(accounts[0]), true, nil
}

func (c *injectedConnector) HasActiveSession(ctx context.Context) (bool, error) {
	c.mu.RLock()
	active := c.active
	c.mu.RUnlock()
	if !active {
		return false, nil
	}
	return c.provider.IsConnected(ctx)
}

func (c *injectedConnector) Disconnect(ctx context.Context) error {
	if err := c.provider.Disconnect(ctx); err != nil {
		return fmt.Errorf("disconnect injected wallet: %w", err)
	}

	c.mu.Lock()
	c.active = false
	c.mu.Unlock()
	return nil
}

func (c *injectedConnector) Deactivate(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	c.active = false
	c.mu.Unlock()
	return nil
}
