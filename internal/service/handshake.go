// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/did-signin/internal/logger"
	"github.com/MKhiriev/did-signin/internal/store"
	"github.com/MKhiriev/did-signin/models"
)

// Credential names asked from the wallet. The subject property carrying the
// value has the same name as the credential.
const (
	credentialAvatar      = "avatar"
	credentialName        = "name"
	credentialDescription = "description"
)

type handshakeService struct {
	wallets  Wallets
	verifier PresentationVerifier
	tokens   TokenService
	storage  store.SessionStorage
	timeouts WalletTimeouts
	logger   *logger.Logger
}

// NewHandshakeService returns the [HandshakeService] used by managed sign-in.
func NewHandshakeService(
	wallets Wallets,
	verifier PresentationVerifier,
	tokens TokenService,
	storage store.SessionStorage,
	timeouts WalletTimeouts,
	log *logger.Logger,
) HandshakeService {
	return &handshakeService{
		wallets:  wallets,
		verifier: verifier,
		tokens:   tokens,
		storage:  storage,
		timeouts: timeouts,
		logger:   log,
	}
}

// credentialClaims lists the claims requested from the wallet; none are
// required.
func credentialClaims() []models.ClaimRequest {
	return []models.ClaimRequest{
		models.SimpleIDClaim("Your avatar", credentialAvatar, false),
		models.SimpleIDClaim("Your name", credentialName, false),
		models.SimpleIDClaim("Your description", credentialDescription, false),
	}
}

// Handshake initialises the bridge, requests a presentation, verifies it,
// mints the session token, persists SDK_DID then SDK_LINK and resolves the
// wallet address.
//
// A declined request and a presentation without holder return
// [ErrConsentDeclined] and [ErrEmptyHolder] untouched. Any other failure
// disconnects the bridge once, removes the markers this call wrote and is
// returned wrapped in [ErrHandshakeFailed].
func (h *handshakeService) Handshake(ctx context.Context) (models.HandshakeResult, error) {
	log := flowLogger(ctx, h.logger)

	initCtx, cancel := withTimeout(ctx, h.timeouts.Request)
	err := h.wallets.Managed.Init(initCtx)
	cancel()
	if err != nil {
		return models.HandshakeResult{}, h.fail(ctx, nil, fmt.Errorf("init bridge: %w", err))
	}

	// pairing may happen inside the request, so both budgets apply
	reqCtx, cancel := withTimeout(ctx, h.timeouts.Pairing+h.timeouts.Request)
	raw, err := h.wallets.Managed.RequestCredentials(reqCtx, credentialClaims())
	cancel()
	if err != nil {
		if mapped := mapWalletError(err); errors.Is(mapped, ErrConsentDeclined) {
			log.Info().Str("func", "handshakeService.Handshake").Msg("wallet rejected the credential request")
			return models.HandshakeResult{}, mapped
		}
		return models.HandshakeResult{}, h.fail(ctx, nil, fmt.Errorf("request credentials: %w", err))
	}
	if raw == nil {
		log.Info().Str("func", "handshakeService.Handshake").Msg("no presentation returned, user declined")
		return models.HandshakeResult{}, ErrConsentDeclined
	}

	presentation, err := h.verifier.ParseAndVerify(ctx, raw)
	if err = mapVerifierError(err); err != nil {
		if errors.Is(err, ErrEmptyHolder) {
			log.Error().Str("func", "handshakeService.Handshake").Msg("presentation has an empty holder")
			return models.HandshakeResult{}, ErrEmptyHolder
		}
		return models.HandshakeResult{}, h.fail(ctx, nil, fmt.Errorf("verify presentation: %w", err))
	}

	holder := presentation.Holder
	user := models.NewSessionUser(
		holder,
		presentation.SubjectProperty(credentialName, credentialName),
		presentation.SubjectProperty(credentialDescription, credentialDescription),
	)

	token, err := h.tokens.Issue(user)
	if err != nil {
		return models.HandshakeResult{}, h.fail(ctx, nil, fmt.Errorf("issue token: %w", err))
	}

	var written []string
	for _, marker := range []struct{ key, value string }{
		{models.SessionDIDKey, holder},
		{models.SessionLinkKey, string(models.SessionLinkManaged)},
	} {
		if err = h.storage.Set(ctx, marker.key, marker.value); err != nil {
			return models.HandshakeResult{}, h.fail(ctx, written, fmt.Errorf("%w: persist %s: %w", ErrStorage, marker.key, err))
		}
		written = append(written, marker.key)
	}

	address, err := h.wallets.resolveManagedAddress(ctx, h.timeouts.Request)
	if err != nil {
		return models.HandshakeResult{}, h.fail(ctx, written, fmt.Errorf("resolve address: %w", err))
	}

	log.Info().
		Str("func", "handshakeService.Handshake").
		Str("holder", holder).
		Str("address", address).
		Msg("credential handshake completed")

	return models.HandshakeResult{
		User:    user,
		Token:   token,
		DID:     holder,
		Address: address,
	}, nil
}

// fail rolls back markers written by this handshake, disconnects the bridge
// once and wraps cause. Cleanup errors are only logged.
func (h *handshakeService) fail(ctx context.Context, written []string, cause error) error {
	log := flowLogger(ctx, h.logger)
	cleanupCtx, cancel := withTimeout(context.WithoutCancel(ctx), h.timeouts.Request)
	defer cancel()

	if len(written) > 0 {
		if err := h.storage.Remove(cleanupCtx, written...); err != nil {
			log.Err(err).Str("func", "handshakeService.fail").Strs("keys", written).Msg("failed to roll back session markers")
		}
	}

	if err := h.wallets.Managed.Disconnect(cleanupCtx); err != nil {
		log.Warn().Err(err).Str("func", "handshakeService.fail").Msg("failed to disconnect wallet after handshake error")
	}

	log.Err(cause).Str("func", "handshakeService.Handshake").Msg("credential handshake failed")
	return fmt.Errorf("%w: %w", ErrHandshakeFailed, cause)
}
