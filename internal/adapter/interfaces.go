// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for the wallets and
// the DID resolver the client talks to.
//
// The service layer only sees the interfaces declared here. Concrete
// implementations are:
//   - a bridge REST client for the managed (Essentials) wallet,
//   - a JSON-RPC web3 provider, used both as the injected wallet and as the
//     in-app browser provider,
//   - a JSON-RPC DID resolver client.
//
// Error values defined in errors.go are mapped from HTTP status codes and
// JSON-RPC error objects so callers can use [errors.Is] regardless of the
// transport.
package adapter

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/did-signin/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// Connector is a handle to a wallet able to produce an account.
type Connector interface {
	// Activate connects to the wallet, prompting the user if needed.
	Activate(ctx context.Context) error

	// Account returns the wallet's current account. ok is false when the
	// wallet reported no account at all; an empty string with ok true is a
	// defined, empty account.
	Account(ctx context.Context) (account string, ok bool, err error)

	// HasActiveSession reports whether a live wallet session exists.
	HasActiveSession(ctx context.Context) (bool, error)

	// Disconnect tears the live wallet session down.
	Disconnect(ctx context.Context) error
}

// ManagedConnector is the bridge-backed Essentials connector.
type ManagedConnector interface {
	Connector

	// Init restores a persisted bridge session, if any. It is idempotent.
	Init(ctx context.Context) error

	// RequestCredentials asks the wallet for a verifiable presentation
	// carrying the given claims. A nil presentation with a nil error means
	// the user declined.
	RequestCredentials(ctx context.Context, claims []models.ClaimRequest) (json.RawMessage, error)

	// Provider exposes the bridge session as a wallet provider.
	Provider() WalletProvider

	// SetPairingHandler registers a callback receiving the pairing URI each
	// time a new bridge session waits for approval.
	SetPairingHandler(handler func(uri string))
}

// WalletProvider is the minimal provider surface used to read accounts and
// end a connection.
type WalletProvider interface {
	Accounts(ctx context.Context) ([]string, error)
	IsConnected(ctx context.Context) (bool, error)
	Disconnect(ctx context.Context) error
}

// InjectedConnector is the browser-extension style connector.
type InjectedConnector interface {
	Connector

	// Deactivate forgets the connection locally without revoking it.
	Deactivate(ctx context.Context) error
}

// DIDResolver resolves a DID through a resolver endpoint.
type DIDResolver interface {
	Resolve(ctx context.Context, did string) (models.ResolvedDID, error)
}
