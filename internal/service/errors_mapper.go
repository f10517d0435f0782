package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/til-client/internal/adapter"
	"github.com/MKhiriev/til-client/internal/validators"
)

// mapAdapterError adds a business error in front of adapter errors whose
// status has a meaning to the user. The adapter error stays in the chain.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrBadCredentials), errors.Is(err, adapter.ErrBadAssertion):
		return fmt.Errorf("%w: %w", ErrLoginFailed, err)
	case errors.Is(err, adapter.ErrMissingIdentifier):
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	var respErr *adapter.ResponseError
	if !errors.As(err, &respErr) {
		return err
	}

	switch respErr.StatusCode {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case http.StatusConflict:
		return fmt.Errorf("%w: %w", ErrConflict, err)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}

// requireFields takes name, value pairs and reports the first empty value.
func requireFields(pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalidInput, pairs[i])
		}
	}
	return nil
}

// validate runs v on obj and reports violations as [ErrInvalidInput].
func validate(ctx context.Context, v validators.Validator, obj any) error {
	if err := v.Validate(ctx, obj); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return nil
}
