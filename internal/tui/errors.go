// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/did-signin/internal/adapter"
	"github.com/MKhiriev/did-signin/internal/service"
)

// isNotice reports whether err is an expected outcome shown as a status line
// rather than an error window.
func isNotice(err error) bool {
	return errors.Is(err, service.ErrConsentDeclined)
}

// humanizeError turns a flow error into a message for the user.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrConsentDeclined):
		return "Sign-in was declined in the wallet"
	case errors.Is(err, service.ErrEmptyHolder):
		return "The wallet did not share a DID"
	case errors.Is(err, service.ErrAccountUndefined):
		return "The wallet did not expose an account"
	case errors.Is(err, service.ErrNoWalletAccount):
		return "The connected wallet has no account"
	case errors.Is(err, adapter.ErrPairingTimeout):
		return "The wallet did not approve the connection in time"
	case errors.Is(err, service.ErrSessionClosed):
		return "The application is shutting down"
	case isNetworkError(err):
		return "Wallet or resolver is unreachable"
	case errors.Is(err, service.ErrHandshakeFailed):
		return "Sign-in failed: " + err.Error()
	}

	return err.Error()
}

func isNetworkError(err error) bool {
	if errors.Is(err, adapter.ErrBadGateway) {
		return true
	}

	s := strings.ToLower(err.Error())
	return strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded")
}
