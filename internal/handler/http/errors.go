// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced while decoding requests. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header does not carry the expected scheme and credential.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrInvalidIdentifier is returned when a path parameter is not a UUID.
	ErrInvalidIdentifier = errors.New("invalid identifier")

	// ErrInvalidBody is returned when the request body cannot be decoded or
	// a required field is empty.
	ErrInvalidBody = errors.New("invalid request body")

	// ErrInvalidAssertion is returned when a federated identity token is
	// malformed or carries no subject.
	ErrInvalidAssertion = errors.New("invalid identity token")
)
