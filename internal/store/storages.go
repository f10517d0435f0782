package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/til-client/internal/config"
	"github.com/MKhiriev/til-client/internal/crypto"
	"github.com/MKhiriev/til-client/internal/logger"
)

// NewCredentialStore initialises the credential store selected by cfg:
//   - sqlite: opens cfg.Credentials.DSN, runs migrations, seals tokens;
//   - file:   JSON document at cfg.Credentials.DSN, seals tokens;
//   - memory: process-local, nothing is sealed or persisted.
//
// sealer may be nil only for the memory backend. The returned close function
// releases the underlying resources and is never nil.
func NewCredentialStore(ctx context.Context, cfg config.ClientStorage, sealer crypto.TokenSealer, log *logger.Logger) (CredentialStore, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Credentials.Backend {
	case config.BackendMemory:
		return NewMemoryCredentialStore(), noop, nil
	case config.BackendFile:
		return NewFileCredentialStore(cfg.Credentials.DSN, sealer), noop, nil
	case config.BackendSQLite:
		log.Info().Str("dsn", cfg.Credentials.DSN).Msg("opening credential database...")

		db, err := NewConnectSQLite(ctx, cfg.Credentials.DSN, log)
		if err != nil {
			return nil, noop, fmt.Errorf("sqlite connection error: %w", err)
		}

		if err := db.Migrate(); err != nil {
			db.Close()
			return nil, noop, fmt.Errorf("migration failed: %w", err)
		}

		return NewSQLiteCredentialStore(db, sealer, log), db.Close, nil
	default:
		return nil, noop, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Credentials.Backend)
	}
}
