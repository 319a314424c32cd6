// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Storage keys under which the session markers are persisted.
const (
	// SessionLinkKey holds the [SessionLink] of the connector that produced
	// the current session.
	SessionLinkKey = "SDK_LINK"

	// SessionDIDKey holds the holder DID extracted from the verified
	// presentation of the last managed sign-in.
	SessionDIDKey = "SDK_DID"
)

// SessionLink is the persisted marker telling which connector variant, if
// any, produced the current session.
type SessionLink string

const (
	// SessionLinkNone means no session marker is stored.
	SessionLinkNone SessionLink = ""
	// SessionLinkManaged marks a session established through the managed
	// (bridge) wallet.
	SessionLinkManaged SessionLink = "1"
	// SessionLinkInjected marks a session established through the injected
	// wallet provider.
	SessionLinkInjected SessionLink = "2"
)

// Connector returns the connector kind the marker expects to be active.
func (l SessionLink) Connector() ConnectorKind {
	switch l {
	case SessionLinkManaged:
		return ConnectorManaged
	case SessionLinkInjected:
		return ConnectorInjected
	default:
		return ConnectorNone
	}
}

// ConnectorKind identifies the active connection handle.
type ConnectorKind int

const (
	ConnectorNone ConnectorKind = iota
	ConnectorManaged
	ConnectorInjected
)

func (k ConnectorKind) String() string {
	switch k {
	case ConnectorManaged:
		return "managed"
	case ConnectorInjected:
		return "injected"
	default:
		return "none"
	}
}

// SessionState is a snapshot of the in-memory sign-in state.
//
// Address is empty while signed out. Token is only set after a managed
// sign-in and is never persisted.
type SessionState struct {
	Link      SessionLink
	Connector ConnectorKind
	Address   string
	DID       string
	Token     *SessionToken
}

// SignedIn reports whether the state carries a wallet address.
func (s SessionState) SignedIn() bool {
	return s.Address != ""
}

// SignInResult is returned by successful sign-in flows.
type SignInResult struct {
	Connector ConnectorKind
	Address   string
	// User and Token are only populated by the managed flow.
	User  *SessionUser
	Token *SessionToken
}

// HandshakeResult is the outcome of a successful credential handshake.
type HandshakeResult struct {
	User    SessionUser
	Token   SessionToken
	DID     string
	Address string
}
