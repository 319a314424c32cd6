package service

import (
	"github.com/MKhiriev/did-signin/internal/config"
	"github.com/MKhiriev/did-signin/internal/logger"
	"github.com/MKhiriev/did-signin/internal/store"
)

type ClientServices struct {
	SessionService SessionService
	TokenService   TokenService
	WatchJob       SessionWatchJob
}

func NewClientServices(
	cfg *config.ClientConfig,
	wallets Wallets,
	verifier PresentationVerifier,
	sessionStorage store.SessionStorage,
	log *logger.Logger,
) *ClientServices {
	timeouts := WalletTimeouts{
		Request: cfg.Wallet.RequestTimeout,
		Pairing: cfg.Wallet.PairingTimeout,
	}

	tokenSvc := NewTokenService(cfg.App)
	handshakeSvc := NewHandshakeService(wallets, verifier, tokenSvc, sessionStorage, timeouts, log.WithComponent("handshake"))
	sessionSvc := NewSessionService(wallets, handshakeSvc, sessionStorage, timeouts, log.WithComponent("session"))

	return &ClientServices{
		SessionService: sessionSvc,
		TokenService:   tokenSvc,
		WatchJob:       NewSessionWatchJob(sessionSvc, log.WithComponent("watch")),
	}
}
