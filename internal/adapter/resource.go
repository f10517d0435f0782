package adapter

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/MKhiriev/til-client/internal/logger"
	"github.com/MKhiriev/til-client/internal/utils"
	"github.com/MKhiriev/til-client/models"
)

// ResourceClient is bound to one REST collection. T is the decoded entity
// and C the create payload.
type ResourceClient[T models.Entity, C any] struct {
	endpoint ResourceEndpoint
	requester
}

// NewResourceClient returns a client for collection on the host client is
// configured with.
func NewResourceClient[T models.Entity, C any](client *utils.HTTPClient, session Session, collection string, log *logger.Logger) *ResourceClient[T, C] {
	return &ResourceClient[T, C]{
		endpoint: NewResourceEndpoint(client.BaseURL, collection),
		requester: requester{
			http:    client,
			session: session,
			logger:  log,
		},
	}
}

// Endpoint returns the collection endpoint.
func (c *ResourceClient[T, C]) Endpoint() ResourceEndpoint {
	return c.endpoint
}

// ListAll fetches every entity of the collection, in server order. The
// route is public: no token is sent and a 401 does not touch the session.
func (c *ResourceClient[T, C]) ListAll(ctx context.Context) ([]T, error) {
	resp, err := c.execute(ctx, c.request(ctx, ""), http.MethodGet, c.endpoint.CollectionURL(), successful, false)
	if err != nil {
		return nil, err
	}

	items, err := decodeBody[[]T](resp)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// Create posts payload and returns the persisted entity. It requires a
// token under [FailOnMissingToken] and succeeds only on 200.
func (c *ResourceClient[T, C]) Create(ctx context.Context, payload C) (T, error) {
	var zero T

	token, err := c.bearer(ctx, FailOnMissingToken)
	if err != nil {
		return zero, err
	}

	req := c.request(ctx, token).
		SetHeader("Content-Type", "application/json").
		SetBody(payload)

	resp, err := c.execute(ctx, req, http.MethodPost, c.endpoint.CollectionURL(), exactly(http.StatusOK), true)
	if err != nil {
		return zero, err
	}

	return decodeBody[T](resp)
}

// Entity returns a client for the entity with id. A nil id is accepted and
// reported as [ErrMissingIdentifier] by every operation.
func (c *ResourceClient[T, C]) Entity(id *uuid.UUID) *EntityClient[T, C] {
	return &EntityClient[T, C]{
		endpoint:  c.endpoint.Entity(id),
		requester: c.requester,
	}
}

// EntityOf returns a client for an already decoded entity.
func (c *ResourceClient[T, C]) EntityOf(entity T) *EntityClient[T, C] {
	return c.Entity(entity.Identifier())
}
