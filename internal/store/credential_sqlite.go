package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/til-client/internal/crypto"
	"github.com/MKhiriev/til-client/internal/logger"
)

// sqliteCredentialStore keeps the sealed token in the credentials table of
// a local SQLite database.
type sqliteCredentialStore struct {
	db     *DB
	sealer crypto.TokenSealer
	key    string
	now    func() time.Time
	logger *logger.Logger
}

// NewSQLiteCredentialStore returns a [CredentialStore] over an already
// migrated db. Tokens are sealed with sealer before they are written.
func NewSQLiteCredentialStore(db *DB, sealer crypto.TokenSealer, log *logger.Logger) CredentialStore {
	return &sqliteCredentialStore{
		db:     db,
		sealer: sealer,
		key:    CredentialKey,
		now:    time.Now,
		logger: log,
	}
}

func (s *sqliteCredentialStore) Load(ctx context.Context) (string, error) {
	query, args, err := buildLoadCredentialQuery(s.key)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var sealed string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&sealed)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrCredentialNotFound
	}
	if err != nil {
		s.logger.Err(err).Str("func", "sqliteCredentialStore.Load").Msg("failed to query credential")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	token, err := s.sealer.Open(sealed)
	if err != nil {
		return "", fmt.Errorf("failed to open stored credential: %w", err)
	}

	return token, nil
}

func (s *sqliteCredentialStore) Save(ctx context.Context, token string) error {
	sealed, err := s.sealer.Seal(token)
	if err != nil {
		return fmt.Errorf("failed to seal credential: %w", err)
	}

	query, args, err := buildSaveCredentialQuery(s.key, sealed, s.now().UTC())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "sqliteCredentialStore.Save").Msg("failed to upsert credential")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteCredentialStore) Delete(ctx context.Context) error {
	query, args, err := buildDeleteCredentialQuery(s.key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "sqliteCredentialStore.Delete").Msg("failed to delete credential")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
