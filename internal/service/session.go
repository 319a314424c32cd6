// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/did-signin/internal/logger"
	"github.com/MKhiriev/did-signin/internal/store"
	"github.com/MKhiriev/did-signin/internal/utils"
	"github.com/MKhiriev/did-signin/models"
	"golang.org/x/sync/singleflight"
)

// single-flight keys, one per flow
const (
	flowBootstrap = "bootstrap"
	flowManaged   = "managed"
	flowInjected  = "injected"
	flowSignOut   = "signout"
)

type sessionService struct {
	wallets   Wallets
	handshake HandshakeService
	storage   store.SessionStorage
	timeouts  WalletTimeouts
	ids       *utils.UUIDGenerator
	logger    *logger.Logger

	flights singleflight.Group

	mu     sync.RWMutex
	state  models.SessionState
	closed bool
}

// NewSessionService returns the [SessionService] driving both sign-in flows.
func NewSessionService(
	wallets Wallets,
	handshake HandshakeService,
	storage store.SessionStorage,
	timeouts WalletTimeouts,
	log *logger.Logger,
) SessionService {
	return &sessionService{
		wallets:   wallets,
		handshake: handshake,
		storage:   storage,
		timeouts:  timeouts,
		ids:       utils.NewUUIDGenerator(),
		logger:    log,
	}
}

func (s *sessionService) Bootstrap(ctx context.Context) error {
	_, err := s.run(ctx, flowBootstrap, func(ctx context.Context) (any, error) {
		return nil, s.bootstrap(ctx)
	})
	return err
}

func (s *sessionService) bootstrap(ctx context.Context) error {
	log := flowLogger(ctx, s.logger)

	if s.State().Connector != models.ConnectorNone {
		log.Debug().Str("func", "sessionService.Bootstrap").Msg("connector already active, nothing to restore")
		return nil
	}

	link, err := s.storedLink(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBootstrap, err)
	}

	switch link {
	case models.SessionLinkNone:
		log.Info().Str("func", "sessionService.Bootstrap").Msg("no stored session")
		return nil

	case models.SessionLinkManaged:
		if !s.wallets.inApp() {
			initCtx, cancel := withTimeout(ctx, s.timeouts.Request)
			err = s.wallets.Managed.Init(initCtx)
			cancel()
			if err != nil {
				return fmt.Errorf("%w: %w", ErrBootstrap, mapWalletError(err))
			}
		}

		address, err := s.wallets.resolveManagedAddress(ctx, s.timeouts.Request)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBootstrap, err)
		}

		holder, _, err := s.storage.Get(ctx, models.SessionDIDKey)
		if err != nil {
			log.Warn().Err(err).Str("func", "sessionService.Bootstrap").Msg("failed to read stored DID")
		}

		if err = s.commit(func(st *models.SessionState) {
			*st = models.SessionState{
				Link:      models.SessionLinkManaged,
				Connector: models.ConnectorManaged,
				Address:   address,
				DID:       holder,
			}
		}); err != nil {
			return err
		}

	case models.SessionLinkInjected:
		address, err := s.activateInjected(ctx)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBootstrap, err)
		}

		if err = s.commit(func(st *models.SessionState) {
			*st = models.SessionState{
				Link:      models.SessionLinkInjected,
				Connector: models.ConnectorInjected,
				Address:   address,
			}
		}); err != nil {
			return err
		}

	default:
		log.Warn().Str("func", "sessionService.Bootstrap").Str("link", string(link)).Msg("unknown session marker ignored")
		return nil
	}

	state := s.State()
	log.Info().
		Str("func", "sessionService.Bootstrap").
		Stringer("connector", state.Connector).
		Str("address", state.Address).
		Msg("session restored")
	return nil
}

func (s *sessionService) SignInManaged(ctx context.Context) (models.SignInResult, error) {
	v, err := s.run(ctx, flowManaged, func(ctx context.Context) (any, error) {
		return s.signInManaged(ctx)
	})
	if err != nil {
		return models.SignInResult{}, err
	}
	return v.(models.SignInResult), nil
}

func (s *sessionService) signInManaged(ctx context.Context) (models.SignInResult, error) {
	log := flowLogger(ctx, s.logger)

	s.dropStaleBridgeSession(ctx)

	res, err := s.handshake.Handshake(ctx)
	if err != nil {
		return models.SignInResult{}, err
	}

	if err = s.commit(func(st *models.SessionState) {
		*st = models.SessionState{
			Link:      models.SessionLinkManaged,
			Connector: models.ConnectorManaged,
			Address:   res.Address,
			DID:       res.DID,
			Token:     &res.Token,
		}
	}); err != nil {
		return models.SignInResult{}, err
	}

	log.Info().Str("func", "sessionService.SignInManaged").Str("address", res.Address).Msg("signed in with managed wallet")
	return models.SignInResult{
		Connector: models.ConnectorManaged,
		Address:   res.Address,
		User:      &res.User,
		Token:     &res.Token,
	}, nil
}

// dropStaleBridgeSession ends whatever bridge session precedes a new managed
// sign-in: a full sign-out when it is the active one, a plain disconnect
// otherwise.
func (s *sessionService) dropStaleBridgeSession(ctx context.Context) {
	log := flowLogger(ctx, s.logger)

	callCtx, cancel := withTimeout(ctx, s.timeouts.Request)
	defer cancel()

	// the handshake retries Init and reports the failure itself
	if err := s.wallets.Managed.Init(callCtx); err != nil {
		log.Warn().Err(err).Str("func", "sessionService.dropStaleBridgeSession").Msg("bridge init failed")
		return
	}

	live, err := s.wallets.Managed.HasActiveSession(callCtx)
	if err != nil {
		log.Warn().Err(err).Str("func", "sessionService.dropStaleBridgeSession").Msg("failed to check bridge session")
		return
	}
	if !live {
		return
	}

	if s.State().Connector == models.ConnectorManaged {
		if err = s.signOut(ctx); err != nil {
			log.Warn().Err(err).Str("func", "sessionService.dropStaleBridgeSession").Msg("sign-out before managed sign-in failed")
		}
		return
	}

	if err = s.wallets.Managed.Disconnect(callCtx); err != nil {
		log.Warn().Err(err).Str("func", "sessionService.dropStaleBridgeSession").Msg("failed to disconnect stale bridge session")
	}
}

func (s *sessionService) SignInInjected(ctx context.Context) (models.SignInResult, error) {
	v, err := s.run(ctx, flowInjected, func(ctx context.Context) (any, error) {
		return s.signInInjected(ctx)
	})
	if err != nil {
		return models.SignInResult{}, err
	}
	return v.(models.SignInResult), nil
}

func (s *sessionService) signInInjected(ctx context.Context) (models.SignInResult, error) {
	log := flowLogger(ctx, s.logger)

	address, err := s.activateInjected(ctx)
	if err != nil {
		log.Err(err).Str("func", "sessionService.SignInInjected").Msg("injected wallet sign-in failed")
		return models.SignInResult{}, err
	}

	if err = s.storage.Set(ctx, models.SessionLinkKey, string(models.SessionLinkInjected)); err != nil {
		return models.SignInResult{}, fmt.Errorf("%w: persist %s: %w", ErrStorage, models.SessionLinkKey, err)
	}

	if err = s.commit(func(st *models.SessionState) {
		*st = models.SessionState{
			Link:      models.SessionLinkInjected,
			Connector: models.ConnectorInjected,
			Address:   address,
		}
	}); err != nil {
		return models.SignInResult{}, err
	}

	log.Info().Str("func", "sessionService.SignInInjected").Str("address", address).Msg("signed in with injected wallet")
	return models.SignInResult{
		Connector: models.ConnectorInjected,
		Address:   address,
	}, nil
}

// activateInjected connects the injected wallet and returns its account.
func (s *sessionService) activateInjected(ctx context.Context) (string, error) {
	callCtx, cancel := withTimeout(ctx, s.timeouts.Request)
	defer cancel()

	if err := s.wallets.Injected.Activate(callCtx); err != nil {
		return "", fmt.Errorf("activate injected wallet: %w", mapWalletError(err))
	}

	account, ok, err := s.wallets.Injected.Account(callCtx)
	if err != nil {
		return "", fmt.Errorf("read injected account: %w", mapWalletError(err))
	}
	if !ok {
		return "", ErrAccountUndefined
	}
	return utils.ChecksumAddress(account), nil
}

func (s *sessionService) SignOut(ctx context.Context) error {
	_, err := s.run(ctx, flowSignOut, func(ctx context.Context) (any, error) {
		return nil, s.signOut(ctx)
	})
	return err
}

func (s *sessionService) signOut(ctx context.Context) error {
	log := flowLogger(ctx, s.logger)

	link, err := s.storedLink(ctx)
	if err != nil {
		log.Warn().Err(err).Str("func", "sessionService.SignOut").Msg("failed to read session marker, using in-memory state")
		link = s.State().Link
	}

	if link == models.SessionLinkManaged {
		storageErr := s.removeMarkers(ctx)
		if err = s.commit(clearState); err != nil {
			return err
		}
		s.disconnectManaged(ctx)

		log.Info().Str("func", "sessionService.SignOut").Msg("signed out of managed wallet")
		return storageErr
	}

	callCtx, cancel := withTimeout(ctx, s.timeouts.Request)
	err = s.wallets.Injected.Deactivate(callCtx)
	cancel()
	if err != nil {
		return fmt.Errorf("deactivate injected wallet: %w", mapWalletError(err))
	}

	if err = s.commit(clearState); err != nil {
		return err
	}
	if err = s.removeMarkers(ctx); err != nil {
		return err
	}

	log.Info().Str("func", "sessionService.SignOut").Msg("signed out")
	return nil
}

// disconnectManaged ends the bridge session and revokes the in-app provider.
// Failures are only logged.
func (s *sessionService) disconnectManaged(ctx context.Context) {
	log := flowLogger(ctx, s.logger)

	callCtx, cancel := withTimeout(context.WithoutCancel(ctx), s.timeouts.Request)
	defer cancel()

	live, err := s.wallets.Managed.HasActiveSession(callCtx)
	switch {
	case err != nil:
		log.Warn().Err(err).Str("func", "sessionService.disconnectManaged").Msg("failed to check bridge session")
	case live:
		if err = s.wallets.Managed.Disconnect(callCtx); err != nil {
			log.Warn().Err(err).Str("func", "sessionService.disconnectManaged").Msg("failed to disconnect bridge session")
		}
	}

	if !s.wallets.inApp() {
		return
	}
	connected, err := s.wallets.InApp.IsConnected(callCtx)
	if err != nil {
		log.Warn().Err(err).Str("func", "sessionService.disconnectManaged").Msg("failed to check in-app provider")
		return
	}
	if connected {
		if err = s.wallets.InApp.Disconnect(callCtx); err != nil {
			log.Warn().Err(err).Str("func", "sessionService.disconnectManaged").Msg("failed to revoke in-app provider permissions")
		}
	}
}

func (s *sessionService) CheckSession(ctx context.Context) (bool, error) {
	if s.State().Connector != models.ConnectorManaged {
		return false, nil
	}

	callCtx, cancel := withTimeout(ctx, s.timeouts.Request)
	live, err := s.wallets.Managed.HasActiveSession(callCtx)
	cancel()
	if err != nil {
		return false, mapWalletError(err)
	}
	if live {
		return false, nil
	}

	flowLogger(ctx, s.logger).Info().Str("func", "sessionService.CheckSession").Msg("wallet dropped the session, signing out")
	if err = s.SignOut(ctx); err != nil {
		return false, err
	}
	return true, nil
}

func (s *sessionService) State() models.SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *sessionService) SetPairingHandler(handler func(uri string)) {
	s.wallets.Managed.SetPairingHandler(handler)
}

func (s *sessionService) Close() error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	return nil
}

// run executes fn under the single-flight key with a fresh flow id. Callers
// joining an in-flight call get its result.
func (s *sessionService) run(ctx context.Context, key string, fn func(ctx context.Context) (any, error)) (any, error) {
	if s.isClosed() {
		return nil, ErrSessionClosed
	}

	v, err, shared := s.flights.Do(key, func() (any, error) {
		return fn(utils.WithFlowID(ctx, s.ids.Generate()))
	})
	if shared {
		s.logger.Debug().Str("func", "sessionService.run").Str("flow", key).Msg("joined in-flight call")
	}
	return v, err
}

// commit applies fn to the state unless the service was closed meanwhile.
func (s *sessionService) commit(fn func(st *models.SessionState)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}
	fn(&s.state)
	return nil
}

func (s *sessionService) isClosed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.closed
}

func (s *sessionService) storedLink(ctx context.Context) (models.SessionLink, error) {
	value, ok, err := s.storage.Get(ctx, models.SessionLinkKey)
	if err != nil {
		return models.SessionLinkNone, fmt.Errorf("%w: read %s: %w", ErrStorage, models.SessionLinkKey, err)
	}
	if !ok {
		return models.SessionLinkNone, nil
	}
	return models.SessionLink(value), nil
}

func (s *sessionService) removeMarkers(ctx context.Context) error {
	if err := s.storage.Remove(ctx, models.SessionLinkKey, models.SessionDIDKey); err != nil {
		return fmt.Errorf("%w: remove session markers: %w", ErrStorage, err)
	}
	return nil
}

func clearState(st *models.SessionState) {
	*st = models.SessionState{}
}

// flowLogger returns base annotated with the flow id carried by ctx.
func flowLogger(ctx context.Context, base *logger.Logger) *logger.Logger {
	if flowID, ok := utils.GetFlowIDFromContext(ctx); ok {
		return &logger.Logger{Logger: base.With().Str("flow_id", flowID).Logger()}
	}
	return base
}
