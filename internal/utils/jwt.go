// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/did-signin/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidJWTParams is returned when a token cannot be minted because the
// issuer, subject, duration or key is missing.
var ErrInvalidJWTParams = errors.New("invalid params for generating JWT Token")

// GenerateSessionToken creates a signed HMAC-SHA256 JWT for user.
//
// The token carries the session user record plus the standard claims:
//   - Issuer    (iss): issuer
//   - Subject   (sub): user.DecentralizedID
//   - IssuedAt  (iat): now
//   - ExpiresAt (exp): now plus tokenDuration
//
// Example usage:
//
//	token, err := utils.GenerateSessionToken("did-signin", user, 7*24*time.Hour, key, time.Now())
func GenerateSessionToken(issuer string, user models.SessionUser, tokenDuration time.Duration, signKey string, now time.Time) (models.SessionToken, error) {
	if issuer == "" || user.DecentralizedID == "" || tokenDuration <= 0 || signKey == "" {
		return models.SessionToken{}, ErrInvalidJWTParams
	}

	expiresAt := now.Add(tokenDuration)
	claims := models.SessionClaims{
		SessionUser: user,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   user.DecentralizedID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.SessionToken{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.SessionToken{
		SignedString: tokenString,
		ExpiresAt:    claims.ExpiresAt.Time,
		Claims:       claims,
	}, nil
}

// ValidateAndParseSessionToken verifies the signature, issuer and expiry of
// tokenString and returns its claims. Only HS256 is accepted.
func ValidateAndParseSessionToken(tokenString, tokenSignKey, tokenIssuer string) (models.SessionToken, error) {
	claims := models.SessionClaims{}
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.SessionToken{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" {
		return models.SessionToken{}, errors.New("empty subject error")
	}

	return models.SessionToken{
		SignedString: tokenString,
		ExpiresAt:    claims.ExpiresAt.Time,
		Claims:       claims,
	}, nil
}
