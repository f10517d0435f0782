package client

import (
	"context"

	"github.com/MKhiriev/til-client/internal/config"
	"github.com/MKhiriev/til-client/internal/service"
)

// Runtime is what commands act on.
type Runtime struct {
	Services *service.ClientServices

	// Close releases the credential store and stops background workers.
	// It may be nil.
	Close func() error
}

// RuntimeBuilder assembles a Runtime from the global flags.
type RuntimeBuilder func(ctx context.Context, flags config.Flags) (*Runtime, error)
