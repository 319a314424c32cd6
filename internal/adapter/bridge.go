// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/did-signin/internal/logger"
	"github.com/MKhiriev/did-signin/internal/store"
	"github.com/MKhiriev/did-signin/internal/utils"
	"github.com/MKhiriev/did-signin/models"
	"github.com/sethvargo/go-retry"
)

// BridgeTopicKey is the session storage key holding the live bridge topic,
// so a restarted client can reuse the wallet session.
const BridgeTopicKey = "walletconnect"

const (
	bridgeSessionsPath = "/v1/sessions"
	bridgeSessionPath  = "/v1/sessions/{topic}"
	bridgeRequestsPath = "/v1/sessions/{topic}/requests"

	methodRequestCredentials = "did_requestCredentials"

	defaultPollInterval   = time.Second
	defaultPairingTimeout = 2 * time.Minute
)

var errPairingPending = errors.New("pairing pending")

// BridgeConfig configures the managed wallet bridge client.
type BridgeConfig struct {
	BaseURL        string
	RequestTimeout time.Duration
	PairingTimeout time.Duration
	PollInterval   time.Duration
}

type createSessionRequest struct {
	Methods []string `json:"methods"`
}

type credentialsRequest struct {
	ID     string            `json:"id"`
	Method string            `json:"method"`
	Params credentialsParams `json:"params"`
}

type credentialsParams struct {
	Claims []models.ClaimRequest `json:"claims"`
}

type credentialsResponse struct {
	Result json.RawMessage `json:"result"`
}

// bridgeConnector is the managed (Essentials) connector. It talks to a
// wallet bridge over REST and keeps the live topic in session storage.
type bridgeConnector struct {
	client  *utils.HTTPClient
	storage store.SessionStorage
	ids     *utils.UUIDGenerator
	cfg     BridgeConfig
	logger  *logger.Logger

	pairMu sync.Mutex

	mu          sync.RWMutex
	initialized bool
	topic       string
	accounts    []string
	onPairing   func(uri string)
}

// NewBridgeConnector returns a [ManagedConnector] backed by the bridge at
// cfg.BaseURL.
func NewBridgeConnector(cfg BridgeConfig, storage store.SessionStorage, log *logger.Logger) (ManagedConnector, error) {
	client, err := utils.NewHTTPClient(cfg.BaseURL, cfg.RequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("invalid bridge address: %w", err)
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = defaultPollInterval
	}
	if cfg.PairingTimeout <= 0 {
		cfg.PairingTimeout = defaultPairingTimeout
	}

	return &bridgeConnector{
		client:  client,
		storage: storage,
		ids:     utils.NewUUIDGenerator(),
		cfg:     cfg,
		logger:  log,
	}, nil
}

func (c *bridgeConnector) SetPairingHandler(handler func(uri string)) {
	c.mu.Lock()
	c.onPairing = handler
	c.mu.Unlock()
}

func (c *bridgeConnector) Provider() WalletProvider {
	return &bridgeProvider{connector: c}
}

func (c *bridgeConnector) Init(ctx context.Context) error {
	c.mu.RLock()
	initialized := c.initialized
	c.mu.RUnlock()
	if initialized {
		return nil
	}

	topic, ok, err := c.storage.Get(ctx, BridgeTopicKey)
	if err != nil {
		return fmt.Errorf("restore bridge topic: %w", err)
	}

	if ok && topic != "" {
		status, err := c.fetchStatus(ctx, topic)
		switch {
		case errors.Is(err, ErrNotFound), err == nil && !status.Connected:
			c.logger.Info().Str("func", "bridgeConnector.Init").Str("topic", topic).Msg("stored bridge session is gone")
			c.forget(ctx)
		case err != nil:
			return fmt.Errorf("restore bridge session: %w", err)
		default:
			c.remember(topic, status.Accounts)
			c.logger.Info().Str("func", "bridgeConnector.Init").Str("topic", topic).Msg("bridge session restored")
		}
	}

	c.mu.Lock()
	c.initialized = true
	c.mu.Unlock()
	return nil
}

// Activate makes sure a paired bridge session exists, pairing a new one if
// necessary.
func (c *bridgeConnector) Activate(ctx context.Context) error {
	if err := c.Init(ctx); err != nil {
		return err
	}
	if c.currentTopic() != "" {
		return nil
	}
	return c.pair(ctx)
}

func (c *bridgeConnector) Account(ctx context.Context) (string, bool, error) {
	accounts, err := c.Provider().Accounts(ctx)
	if err != nil {
		return "", false, err
	}
	if len(accounts) == 0 {
		return "", false, nil
	}
	return utils.ChecksumAddress(accounts[0]), true, nil
}

func (c *bridgeConnector) HasActiveSession(ctx context.Context) (bool, error) {
	topic := c.currentTopic()
	if topic == "" {
		return false, nil
	}

	status, err := c.fetchStatus(ctx, topic)
	if errors.Is(err, ErrNotFound) {
		c.forget(ctx)
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if !status.Connected {
		c.forget(ctx)
		return false, nil
	}

	c.remember(topic, status.Accounts)
	return true, nil
}

// Disconnect deletes the bridge session. Local state is cleared even when
// the bridge call fails.
func (c *bridgeConnector) Disconnect(ctx context.Context) error {
	topic := c.currentTopic()
	if topic == "" {
		return nil
	}
	defer c.forget(ctx)

	if err := c.deleteSession(ctx, topic); err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}

	c.logger.Info().Str("func", "bridgeConnector.Disconnect").Str("topic", topic).Msg("bridge session closed")
	return nil
}

func (c *bridgeConnector) RequestCredentials(ctx context.Context, claims []models.ClaimRequest) (json.RawMessage, error) {
	if err := c.Activate(ctx); err != nil {
		return nil, err
	}
	topic := c.currentTopic()

	req := credentialsRequest{
		ID:     c.ids.Generate(),
		Method: methodRequestCredentials,
		Params: credentialsParams{Claims: claims},
	}

	var result credentialsResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetPathParam("topic", topic).
		SetBody(req).
		SetResult(&result).
		ForceContentType("application/json").
		Post(bridgeRequestsPath)
	if err != nil {
		return nil, fmt.Errorf("request credentials: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrNotFound) {
			c.forget(ctx)
			return nil, fmt.Errorf("request credentials: %w", ErrNoSession)
		}
		return nil, fmt.Errorf("request credentials: %w", err)
	}

	if len(result.Result) == 0 || string(result.Result) == "null" {
		c.logger.Info().Str("func", "bridgeConnector.RequestCredentials").Str("request_id", req.ID).Msg("wallet returned no presentation")
		return nil, nil
	}

	return result.Result, nil
}

// pair creates a bridge session, hands its URI to the pairing handler and
// polls until the wallet approves it or the pairing timeout elapses.
func (c *bridgeConnector) pair(ctx context.Context) error {
	c.pairMu.Lock()
	defer c.pairMu.Unlock()

	// a concurrent caller may have paired while we waited
	if c.currentTopic() != "" {
		return nil
	}

	var session models.PairingSession
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(createSessionRequest{Methods: []string{methodRequestCredentials}}).
		SetResult(&session).
		ForceContentType("application/json").
		Post(bridgeSessionsPath)
	if err != nil {
		return fmt.Errorf("create bridge session: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("create bridge session: %w", err)
	}
	if session.Topic == "" {
		return fmt.Errorf("create bridge session: %w: empty topic", ErrInvalidResponse)
	}

	c.logger.Info().Str("func", "bridgeConnector.pair").Str("topic", session.Topic).Msg("waiting for wallet to approve pairing")
	c.notifyPairing(session.URI)

	var status models.BridgeSessionStatus
	backoff := retry.WithMaxDuration(c.cfg.PairingTimeout, retry.NewConstant(c.cfg.PollInterval))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		st, err := c.fetchStatus(ctx, session.Topic)
		if errors.Is(err, ErrBadGateway) {
			return retry.RetryableError(err)
		}
		if err != nil {
			return err
		}
		if !st.Connected {
			return retry.RetryableError(errPairingPending)
		}
		status = st
		return nil
	})
	if err != nil {
		if delErr := c.deleteSession(context.WithoutCancel(ctx), session.Topic); delErr != nil {
			c.logger.Warn().Err(delErr).Str("func", "bridgeConnector.pair").Msg("failed to drop unapproved bridge session")
		}
		if errors.Is(err, errPairingPending) {
			return ErrPairingTimeout
		}
		return fmt.Errorf("wait for pairing: %w", err)
	}

	if err = c.storage.Set(ctx, BridgeTopicKey, session.Topic); err != nil {
		return fmt.Errorf("persist bridge topic: %w", err)
	}
	c.remember(session.Topic, status.Accounts)

	c.logger.Info().Str("func", "bridgeConnector.pair").Str("topic", session.Topic).Msg("wallet paired")
	return nil
}

func (c *bridgeConnector) fetchStatus(ctx context.Context, topic string) (models.BridgeSessionStatus, error) {
	var status models.BridgeSessionStatus
	resp, err := c.client.R().
		SetContext(ctx).
		SetPathParam("topic", topic).
		SetResult(&status).
		ForceContentType("application/json").
		Get(bridgeSessionPath)
	if err != nil {
		return models.BridgeSessionStatus{}, fmt.Errorf("bridge session status: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.BridgeSessionStatus{}, fmt.Errorf("bridge session status: %w", err)
	}
	return status, nil
}

func (c *bridgeConnector) deleteSession(ctx context.Context, topic string) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetPathParam("topic", topic).
		Delete(bridgeSessionPath)
	if err != nil {
		return fmt.Errorf("delete bridge session: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("delete bridge session: %w", err)
	}
	return nil
}

func (c *bridgeConnector) currentTopic() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.topic
}

func (c *bridgeConnector) currentAccounts() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]string(nil), c.accounts...)
}

func (c *bridgeConnector) remember(topic string, accounts []string) {
	c.mu.Lock()
	c.topic = topic
	c.accounts = append([]string(nil), accounts...)
	c.mu.Unlock()
}

// forget drops the local topic and its persisted copy.
func (c *bridgeConnector) forget(ctx context.Context) {
	c.mu.Lock()
	c.topic = ""
	c.accounts = nil
	c.mu.Unlock()

	if err := c.storage.Remove(context.WithoutCancel(ctx), BridgeTopicKey); err != nil {
		c.logger.Warn().Err(err).Str("func", "bridgeConnector.forget").Msg("failed to remove stored bridge topic")
	}
}

func (c *bridgeConnector) notifyPairing(uri string) {
	c.mu.RLock()
	handler := c.onPairing
	c.mu.RUnlock()
	if handler != nil && uri != "" {
		handler(uri)
	}
}

// bridgeProvider exposes the bridge session as a [WalletProvider].
type bridgeProvider struct {
	connector *bridgeConnector
}

// Accounts refreshes the session status and returns its accounts.
func (p *bridgeProvider) Accounts(ctx context.Context) ([]string, error) {
	live, err := p.connector.HasActiveSession(ctx)
	if err != nil {
		return nil, err
	}
	if !live {
		return nil, ErrNoSession
	}
	return p.connector.currentAccounts(), nil
}

func (p *bridgeProvider) IsConnected(ctx context.Context) (bool, error) {
	return p.connector.HasActiveSession(ctx)
}

func (p *bridgeProvider) Disconnect(ctx context.Context) error {
	return p.connector.Disconnect(ctx)
}
