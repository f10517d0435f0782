// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// Business errors returned by the client services. Adapter errors such as
// adapter.ErrAuthRequired and adapter.ErrTransport are passed through
// wrapped, so they still match with [errors.Is].
var (
	// ErrInvalidInput is returned when a required field is empty, before
	// any request is sent, or when the server rejects the payload.
	ErrInvalidInput = errors.New("invalid input")

	// ErrLoginFailed is returned when the server refuses the credentials or
	// the identity assertion.
	ErrLoginFailed = errors.New("login failed")

	// ErrNotFound is returned when the server does not know the addressed
	// entity.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when the server refuses a duplicate, such as
	// an existing username.
	ErrConflict = errors.New("conflict")
)
