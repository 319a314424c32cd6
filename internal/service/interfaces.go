// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/MKhiriev/did-signin/internal/did"
	"github.com/MKhiriev/did-signin/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SessionService owns the sign-in state of the client: it restores a stored
// session, runs the two sign-in flows and signs out.
//
// Every flow is single-flight: calling a flow while the same flow is running
// joins the running call and receives its result.
type SessionService interface {
	// Bootstrap restores the session described by the stored SDK_LINK marker.
	// It performs no wallet calls when no marker is stored.
	Bootstrap(ctx context.Context) error

	// SignInManaged signs in through the managed wallet and the credential
	// handshake. A previous managed session is signed out first.
	SignInManaged(ctx context.Context) (models.SignInResult, error)

	// SignInInjected signs in through the injected wallet.
	SignInInjected(ctx context.Context) (models.SignInResult, error)

	// SignOut clears the session. It is idempotent.
	SignOut(ctx context.Context) error

	// CheckSession verifies that an active managed session is still live on
	// the wallet side and signs out when it is not. dropped reports whether a
	// sign-out happened.
	CheckSession(ctx context.Context) (dropped bool, err error)

	// State returns a snapshot of the current session state.
	State() models.SessionState

	// SetPairingHandler registers the callback receiving wallet pairing URIs.
	SetPairingHandler(handler func(uri string))

	// Close stops the service from accepting flows. Flows finishing after
	// Close do not touch the state and return ErrSessionClosed.
	Close() error
}

// HandshakeService runs the credential handshake with the managed wallet.
type HandshakeService interface {
	Handshake(ctx context.Context) (models.HandshakeResult, error)
}

// TokenService mints and parses session tokens.
type TokenService interface {
	Issue(user models.SessionUser) (models.SessionToken, error)
	Parse(signed string) (models.SessionToken, error)
}

// PresentationVerifier re-parses a presentation received from the wallet and
// checks it against the holder's DID.
type PresentationVerifier interface {
	ParseAndVerify(ctx context.Context, raw json.RawMessage) (*did.Presentation, error)
}

// SessionWatchJob periodically checks that the managed wallet session is
// still alive.
type SessionWatchJob interface {
	// Start launches the background check. Any running job is stopped first.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the job to exit and waits for it.
	Stop()

	// SetDropHandler registers the callback run after the job signed out a
	// dropped session.
	SetDropHandler(handler func())
}
