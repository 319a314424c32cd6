package adapter

import "errors"

// Transport errors mapped from HTTP status codes.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
)

// Protocol errors.
var (
	// ErrRPC wraps an error object returned by a JSON-RPC endpoint.
	ErrRPC = errors.New("json-rpc error")

	// ErrUserRejected is the EIP-1193 "user rejected the request" error.
	ErrUserRejected = errors.New("user rejected the request")

	// ErrInvalidResponse is returned when a response body cannot be decoded.
	ErrInvalidResponse = errors.New("invalid response")

	// ErrNoSession is returned when the bridge has no live session to use.
	ErrNoSession = errors.New("no bridge session")

	// ErrPairingTimeout is returned when the wallet did not approve a new
	// bridge session in time.
	ErrPairingTimeout = errors.New("wallet pairing timed out")
)
