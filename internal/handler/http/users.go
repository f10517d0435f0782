package http

import (
	"net/http"

	"github.com/MKhiriev/til-client/models"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	respond(w, r, h.repo.Users(r.Context()), http.StatusOK)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var data models.CreateUserData
	if err := h.decodeValid(r, &data); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.repo.CreateUser(r.Context(), data)
	if err != nil {
		writeError(w, r, err)
		return
	}
	respond(w, r, user, http.StatusOK)
}
