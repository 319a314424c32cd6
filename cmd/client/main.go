package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/did-signin/internal/adapter"
	"github.com/MKhiriev/did-signin/internal/client"
	"github.com/MKhiriev/did-signin/internal/config"
	"github.com/MKhiriev/did-signin/internal/did"
	"github.com/MKhiriev/did-signin/internal/logger"
	"github.com/MKhiriev/did-signin/internal/service"
	"github.com/MKhiriev/did-signin/internal/store"
	"github.com/MKhiriev/did-signin/internal/tui"
	"github.com/MKhiriev/did-signin/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("did-signin").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("did-signin", cfg.App.LogFile)
	ctx := context.Background()

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create session storage")
	}

	wallets, err := newWallets(cfg, storages.SessionStorage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create wallet connectors")
	}

	resolver, err := adapter.NewDIDResolver(cfg.DID.ResolverURL, cfg.DID.RequestTimeout, log.WithComponent("resolver"))
	if err != nil {
		log.Fatal().Err(err).Msg("create did resolver")
	}
	verifier := did.NewVerifier(resolver, log.WithComponent("verifier"))

	services := service.NewClientServices(cfg, wallets, verifier, storages.SessionStorage, log)

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	ui, err := tui.New(services, buildInfo, cfg.Workers.WatchInterval, log.WithComponent("tui"))
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log, storages)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func newWallets(cfg *config.ClientConfig, sessionStorage store.SessionStorage, log *logger.Logger) (service.Wallets, error) {
	managed, err := adapter.NewBridgeConnector(adapter.BridgeConfig{
		BaseURL:        cfg.Wallet.BridgeURL,
		RequestTimeout: cfg.Wallet.RequestTimeout,
		PairingTimeout: cfg.Wallet.PairingTimeout,
		PollInterval:   cfg.Wallet.PollInterval,
	}, sessionStorage, log.WithComponent("bridge"))
	if err != nil {
		return service.Wallets{}, fmt.Errorf("bridge connector: %w", err)
	}

	injectedProvider, err := adapter.NewWeb3Provider(cfg.Wallet.InjectedURL, cfg.Wallet.RequestTimeout, log.WithComponent("injected"))
	if err != nil {
		return service.Wallets{}, fmt.Errorf("injected provider: %w", err)
	}

	wallets := service.Wallets{
		Managed:  managed,
		Injected: adapter.NewInjectedConnector(injectedProvider, log.WithComponent("injected")),
		Env:      cfg.Wallet.Environment,
	}

	if cfg.Wallet.Environment.InAppBrowser() {
		inApp, err := adapter.NewWeb3Provider(cfg.Wallet.InAppURL, cfg.Wallet.RequestTimeout, log.WithComponent("in-app"))
		if err != nil {
			return service.Wallets{}, fmt.Errorf("in-app provider: %w", err)
		}
		wallets.InApp = inApp
	}

	return wallets, nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
