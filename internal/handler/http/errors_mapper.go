package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/til-client/internal/app"
	"github.com/MKhiriev/til-client/internal/logger"
	"github.com/MKhiriev/til-client/internal/store"
	"github.com/MKhiriev/til-client/internal/utils"
)

var errorStatusMap = map[error]int{
	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrInvalidAssertion:           http.StatusUnauthorized,
	ErrInvalidIdentifier:          http.StatusBadRequest,
	ErrInvalidBody:                http.StatusBadRequest,

	store.ErrInvalidCredentials: http.StatusUnauthorized,
	store.ErrEntityNotFound:     http.StatusNotFound,
	store.ErrUsernameTaken:      http.StatusConflict,
}

// errorResponse is the error body the TIL API sends.
type errorResponse struct {
	Error  bool   `json:"error"`
	Reason string `json:"reason"`
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and writes it as a JSON error body. Unmapped errors
// become 500 and their text is not exposed.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	reason := err.Error()
	if status == http.StatusInternalServerError {
		reason = app.MsgInternalServerError
	}

	log := logger.FromRequest(r)
	log.Err(err).Int("status", status).Send()

	if _, writeErr := utils.WriteJSON(w, errorResponse{Error: true, Reason: reason}, status); writeErr != nil {
		log.Err(writeErr).Msg("error writing error response")
	}
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	_, _ = utils.WriteJSON(w, errorResponse{Error: true, Reason: http.StatusText(http.StatusNotFound)}, http.StatusNotFound)
}
