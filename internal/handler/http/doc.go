// Package http implements an in-memory TIL API on top of chi.
//
// It serves the same routes and status codes as the production API so the
// client can be developed and tested without one: public listings and
// relation reads, Basic and Sign in with Apple logins issuing bearer
// tokens, and bearer-protected mutations. Request tracing and access
// logging are handled here as middleware.
package http
