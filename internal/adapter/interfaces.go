// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the typed access layer to the TIL REST API.
//
// [ResourceClient] is bound to one collection ("acronyms", "categories",
// "users") and [EntityClient] to one addressable record of it. Both attach
// the bearer token held by a [Session], interpret response statuses
// uniformly, and clear the session when the server rejects the token.
// [AuthClient] performs the login handshakes and never touches the session.
//
// Failures are reported with the sentinel values in errors.go so callers can
// use [errors.Is] (e.g. [ErrAuthRequired] to route the user to login).
package adapter

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/session_mock.go -package=mock

// Session is the view of the session manager the resource clients need.
type Session interface {
	// CurrentToken returns the stored bearer token, if any.
	CurrentToken(ctx context.Context) (string, bool)

	// ClearSession logs the user out. It must be idempotent.
	ClearSession(ctx context.Context) error
}
