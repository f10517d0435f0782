package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"github.com/MKhiriev/til-client/internal/config"
	handler "github.com/MKhiriev/til-client/internal/handler/http"
	"github.com/MKhiriev/til-client/internal/logger"
	"github.com/MKhiriev/til-client/internal/server"
	"github.com/MKhiriev/til-client/internal/store"
	"github.com/MKhiriev/til-client/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const (
	seedUsername = "admin"
	seedPassword = "password"
)

func main() {
	printBuildInfo()

	app := &cli.App{
		Name:  "til-stub",
		Usage: "in-memory TIL API for local development",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "address", Aliases: []string{"a"}, Usage: "listen address"},
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "path to a JSON config file"},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	log := logger.NewLogger("til-stub")

	cfg, err := config.GetStructuredConfig(config.Flags{
		ServerAddress: c.String("address"),
		ConfigPath:    c.String("config"),
	})
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	signKey := cfg.Server.TokenSignKey
	if signKey == "" {
		signKey = uuid.NewString()
		log.Warn().Msg("no token sign key configured, tokens will not survive a restart")
	}

	repo := store.NewTILMemoryRepository(signKey)
	if _, err = repo.CreateUser(context.Background(), models.CreateUserData{
		Name:     "Admin",
		Username: seedUsername,
		Password: seedPassword,
	}); err != nil {
		return fmt.Errorf("error seeding users: %w", err)
	}
	log.Info().Str("username", seedUsername).Msg("seeded default user")

	srv, err := server.NewServer(handler.NewHandler(repo, signKey, log).Init(), cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	srv.RunServer()
	return nil
}

func printBuildInfo() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
