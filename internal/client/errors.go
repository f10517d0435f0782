package client

import (
	"errors"

	"github.com/MKhiriev/til-client/internal/adapter"
	"github.com/MKhiriev/til-client/internal/app"
	"github.com/MKhiriev/til-client/internal/service"
)

var (
	errMissingArgument = errors.New("missing argument")
	errNoRuntime       = errors.New("client runtime is not initialised")
	errUnknownFormat   = errors.New("unknown output format")
)

// Describe turns err into the line printed to the user.
func Describe(err error) string {
	switch {
	case errors.Is(err, adapter.ErrAuthRequired):
		return app.MsgNotLoggedIn
	case errors.Is(err, service.ErrLoginFailed):
		return app.MsgLoginFailed
	case errors.Is(err, adapter.ErrTransport):
		return app.MsgServerUnreachable + ": " + err.Error()
	case errors.Is(err, service.ErrNotFound):
		return app.MsgNotFound + ": " + err.Error()
	}
	return "error: " + err.Error()
}
