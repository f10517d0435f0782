package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLoadCredentialQuery(t *testing.T) {
	query, args, err := buildLoadCredentialQuery(CredentialKey)
	require.NoError(t, err)
	assert.Equal(t, "SELECT secret FROM credentials WHERE name = ?", query)
	assert.Equal(t, []any{CredentialKey}, args)
}

func TestBuildSaveCredentialQuery(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	query, args, err := buildSaveCredentialQuery(CredentialKey, "secret", at)
	require.NoError(t, err)
	assert.Equal(t,
		"INSERT INTO credentials (name,secret,updated_at) VALUES (?,?,?) "+upsertCredentialSuffix,
		query)
	assert.Equal(t, []any{CredentialKey, "secret", at}, args)
}

func TestBuildDeleteCredentialQuery(t *testing.T) {
	query, args, err := buildDeleteCredentialQuery(CredentialKey)
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM credentials WHERE name = ?", query)
	assert.Equal(t, []any{CredentialKey}, args)
}
