// Package server runs the stub TIL API over HTTP with signal-driven
// graceful shutdown.
package server
