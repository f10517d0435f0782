package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/credential_store_mock.go -package=mock

// CredentialKey is the fixed identifier the bearer token is stored under.
const CredentialKey = "TIL-API-KEY"

// CredentialStore is durable storage for the single bearer token. At most
// one token exists; Save overwrites it.
type CredentialStore interface {
	// Load returns the stored token or [ErrCredentialNotFound].
	Load(ctx context.Context) (string, error)
	// Save persists token, replacing any previous one.
	Save(ctx context.Context, token string) error
	// Delete removes the token. Deleting an absent token is not an error.
	Delete(ctx context.Context) error
}
