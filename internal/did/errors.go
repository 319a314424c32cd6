package did

import "errors"

var (
	ErrMalformedPresentation = errors.New("malformed presentation")
	ErrEmptyHolder           = errors.New("presentation holder is empty")
	ErrHolderNotFound        = errors.New("holder did is not published")
	ErrHolderDeactivated     = errors.New("holder did is deactivated")
	ErrProofMismatch         = errors.New("proof is not bound to the holder")
	ErrUnknownKey            = errors.New("proof key is not listed in the holder document")
	ErrForeignCredential     = errors.New("credential subject is not the holder")
	ErrResolve               = errors.New("holder did resolution failed")
)
