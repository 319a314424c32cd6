package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the claim set of a session token: the session user record
// plus the standard registered claims (sub, iss, iat, exp).
type SessionClaims struct {
	SessionUser
	jwt.RegisteredClaims
}

// SessionToken wraps a signed session JWT.
//
// SignedString holds the compact serialized form (header.payload.signature).
// The token is kept in memory only; nothing in the application persists or
// transmits it.
type SessionToken struct {
	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// ExpiresAt mirrors the "exp" claim.
	ExpiresAt time.Time `json:"-"`

	// Claims are the claims the token was signed or parsed with.
	Claims SessionClaims `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *SessionToken) String() string {
	return t.SignedString
}
