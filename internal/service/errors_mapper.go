package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/did-signin/internal/adapter"
	"github.com/MKhiriev/did-signin/internal/did"
	"github.com/MKhiriev/did-signin/internal/utils"
)

// mapVerifierError translates verifier errors the flows treat specially.
func mapVerifierError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, did.ErrEmptyHolder):
		return ErrEmptyHolder
	}
	return err
}

// mapWalletError tags wallet failures with ErrConnector and turns an explicit
// user rejection into ErrConsentDeclined.
func mapWalletError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, adapter.ErrUserRejected):
		return fmt.Errorf("%w: %w", ErrConsentDeclined, err)
	}
	return fmt.Errorf("%w: %w", ErrConnector, err)
}

func mapTokenError(err error) error {
	if errors.Is(err, utils.ErrInvalidJWTParams) {
		return fmt.Errorf("%w: %w", ErrInvalidTokenParams, err)
	}
	return err
}
