// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the til
// command line and the stub TIL API.
//
// All Msg* constants are human-readable message strings that are printed
// to the user or written into error response bodies. Keeping them in one
// place ensures consistent wording.
package app

const (
	// MsgNotLoggedIn is printed when a command needs a session and none is
	// held, or the server rejected the stored token.
	MsgNotLoggedIn = "not logged in or session expired, please run `til login`"

	// MsgLoginFailed is printed when the server refuses the credentials or
	// the identity token.
	MsgLoginFailed = "login failed: check your credentials"

	// MsgServerUnreachable prefixes network failures.
	MsgServerUnreachable = "cannot reach the TIL API"

	// MsgNotFound prefixes errors about unknown acronyms, categories or
	// users.
	MsgNotFound = "not found"

	// MsgLoggedIn and MsgLoggedOut report the session state.
	MsgLoggedIn  = "logged in"
	MsgLoggedOut = "not logged in"

	// MsgInternalServerError is returned by the stub API for unexpected
	// failures; the cause is only logged.
	MsgInternalServerError = "internal server error"
)
