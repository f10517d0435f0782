package adapter

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
)

// EntityClient is bound to one addressable entity of a collection. Every
// operation validates identifiers before looking at the token or the
// network.
type EntityClient[T any, C any] struct {
	endpoint ResourceEndpoint
	requester
}

// Endpoint returns the entity endpoint.
func (e *EntityClient[T, C]) Endpoint() ResourceEndpoint {
	return e.endpoint
}

// Update replaces the entity with payload. Exactly 200 succeeds.
func (e *EntityClient[T, C]) Update(ctx context.Context, payload C) (T, error) {
	var zero T

	url, err := e.endpoint.EntityURL()
	if err != nil {
		return zero, err
	}

	token, err := e.bearer(ctx, FailOnMissingToken)
	if err != nil {
		return zero, err
	}

	req := e.request(ctx, token).
		SetHeader("Content-Type", "application/json").
		SetBody(payload)

	resp, err := e.execute(ctx, req, http.MethodPut, url, exactly(http.StatusOK), true)
	if err != nil {
		return zero, err
	}

	return decodeBody[T](resp)
}

// Delete removes the entity. Without a token it clears the session and
// reports success, see [SucceedOnMissingToken]. 204 and 200 succeed.
func (e *EntityClient[T, C]) Delete(ctx context.Context) error {
	url, err := e.endpoint.EntityURL()
	if err != nil {
		return err
	}

	token, err := e.bearer(ctx, SucceedOnMissingToken)
	if errors.Is(err, errTokenAbsentTolerated) {
		return nil
	}
	if err != nil {
		return err
	}

	_, err = e.execute(ctx, e.request(ctx, token), http.MethodDelete, url, exactly(http.StatusNoContent, http.StatusOK), true)
	return err
}

// Attach links the related entity through relation (e.g.
// [RelationCategories]). Exactly 201 succeeds. Without a token it clears
// the session and reports success, like Delete.
func (e *EntityClient[T, C]) Attach(ctx context.Context, relation string, relatedID *uuid.UUID) error {
	return e.relate(ctx, http.MethodPost, relation, relatedID, http.StatusCreated, SucceedOnMissingToken)
}

// Detach removes the link created by Attach. Exactly 204 succeeds.
func (e *EntityClient[T, C]) Detach(ctx context.Context, relation string, relatedID *uuid.UUID) error {
	return e.relate(ctx, http.MethodDelete, relation, relatedID, http.StatusNoContent, FailOnMissingToken)
}

func (e *EntityClient[T, C]) relate(ctx context.Context, method, relation string, relatedID *uuid.UUID, want int, policy MissingTokenPolicy) error {
	if relatedID == nil || relation == "" {
		return ErrMissingIdentifier
	}

	url, err := e.endpoint.SubURL(relation, relatedID.String())
	if err != nil {
		return err
	}

	token, err := e.bearer(ctx, policy)
	if errors.Is(err, errTokenAbsentTolerated) {
		return nil
	}
	if err != nil {
		return err
	}

	_, err = e.execute(ctx, e.request(ctx, token), method, url, exactly(want), true)
	return err
}

// FetchRelated reads <entity-url>/<subpath> from the public API and decodes
// it as U, which may be a slice or a single object. Any 2xx succeeds.
func FetchRelated[U, T, C any](ctx context.Context, e *EntityClient[T, C], subpath string) (U, error) {
	var zero U

	url, err := e.endpoint.SubURL(subpath)
	if err != nil {
		return zero, err
	}

	resp, err := e.execute(ctx, e.request(ctx, ""), http.MethodGet, url, successful, false)
	if err != nil {
		return zero, err
	}

	return decodeBody[U](resp)
}
