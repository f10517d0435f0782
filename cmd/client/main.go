package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/til-client/internal/client"
	"github.com/MKhiriev/til-client/internal/config"
	"github.com/MKhiriev/til-client/internal/crypto"
	"github.com/MKhiriev/til-client/internal/logger"
	"github.com/MKhiriev/til-client/internal/service"
	"github.com/MKhiriev/til-client/internal/session"
	"github.com/MKhiriev/til-client/internal/store"
	"github.com/MKhiriev/til-client/internal/utils"
	"github.com/MKhiriev/til-client/internal/workers"
	"github.com/MKhiriev/til-client/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := client.NewApp(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), buildRuntime, os.Stdout, os.Stderr)
	if err := app.RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, client.Describe(err))
		stop()
		os.Exit(1)
	}
}

func buildRuntime(ctx context.Context, flags config.Flags) (*client.Runtime, error) {
	cfg, err := config.GetClientConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error getting configs: %w", err)
	}

	log := logger.NewClientLogger("til-client", cfg.Log.File, cfg.Log.Level)

	var sealer crypto.TokenSealer
	if cfg.Storage.Credentials.Backend != config.BackendMemory {
		if sealer, err = crypto.NewSealer(cfg.App.DeviceSecret); err != nil {
			return nil, fmt.Errorf("create token sealer: %w", err)
		}
	}

	credentials, closeStore, err := store.NewCredentialStore(ctx, cfg.Storage, sealer, log)
	if err != nil {
		return nil, fmt.Errorf("create credential store: %w", err)
	}

	notifications := workers.NewSerialQueue(cfg.Workers.QueueSize, log)
	pool := workers.NewWorkers(notifications)
	pool.Run()

	sessions := session.NewManager(ctx, credentials, notifications, log)
	sessions.Subscribe(func(authenticated bool) {
		log.Info().Bool("authenticated", authenticated).Msg("session state changed")
	})

	httpClient := utils.NewHTTPClient(cfg.Adapter.HTTPAddress, cfg.Adapter.RequestTimeout, log)

	return &client.Runtime{
		Services: service.NewClientServices(httpClient, sessions, log),
		Close: func() error {
			pool.Stop()
			return closeStore()
		},
	}, nil
}

