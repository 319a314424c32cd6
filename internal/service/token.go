package service

import (
	"fmt"
	"time"

	"github.com/MKhiriev/did-signin/internal/config"
	"github.com/MKhiriev/did-signin/internal/utils"
	"github.com/MKhiriev/did-signin/models"
)

type tokenService struct {
	issuer   string
	signKey  string
	duration time.Duration
	now      func() time.Time
}

// NewTokenService returns a [TokenService] signing HS256 tokens with the
// configured key, issuer and lifetime.
func NewTokenService(cfg config.ClientApp) TokenService {
	return &tokenService{
		issuer:   cfg.TokenIssuer,
		signKey:  cfg.TokenSignKey,
		duration: cfg.TokenDuration,
		now:      time.Now,
	}
}

func (t *tokenService) Issue(user models.SessionUser) (models.SessionToken, error) {
	token, err := utils.GenerateSessionToken(t.issuer, user, t.duration, t.signKey, t.now())
	if err != nil {
		return models.SessionToken{}, mapTokenError(err)
	}
	return token, nil
}

func (t *tokenService) Parse(signed string) (models.SessionToken, error) {
	token, err := utils.ValidateAndParseSessionToken(signed, t.signKey, t.issuer)
	if err != nil {
		return models.SessionToken{}, fmt.Errorf("parse session token: %w", err)
	}
	return token, nil
}
