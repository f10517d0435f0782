// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const credentialsTable = "credentials"

// upsertCredentialSuffix turns the INSERT into an overwrite of the single
// row kept per key.
const upsertCredentialSuffix = "ON CONFLICT(name) DO UPDATE SET secret = excluded.secret, updated_at = excluded.updated_at"

func buildLoadCredentialQuery(key string) (string, []any, error) {
	return sq.Select("secret").
		From(credentialsTable).
		Where(sq.Eq{"name": key}).
		PlaceholderFormat(sq.Question).
		ToSql()
}

func buildSaveCredentialQuery(key, secret string, at time.Time) (string, []any, error) {
	return sq.Insert(credentialsTable).
		Columns("name", "secret", "updated_at").
		Values(key, secret, at).
		Suffix(upsertCredentialSuffix).
		PlaceholderFormat(sq.Question).
		ToSql()
}

func buildDeleteCredentialQuery(key string) (string, []any, error) {
	return sq.Delete(credentialsTable).
		Where(sq.Eq{"name": key}).
		PlaceholderFormat(sq.Question).
		ToSql()
}
