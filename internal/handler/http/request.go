package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/til-client/internal/logger"
	"github.com/MKhiriev/til-client/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func pathID(r *http.Request, param string) (uuid.UUID, error) {
	id, err := utils.ParseID(chi.URLParam(r, param))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", ErrInvalidIdentifier, err)
	}
	return id, nil
}

func decodeBody(r *http.Request, v any) error {
	if err := utils.ReadJSON(r, v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBody, err)
	}
	return nil
}

func (h *Handler) decodeValid(r *http.Request, v any) error {
	if err := decodeBody(r, v); err != nil {
		return err
	}
	if err := h.validator.Validate(r.Context(), v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}
	return nil
}

func respond(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
