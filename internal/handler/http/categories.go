package http

import (
	"net/http"

	"github.com/MKhiriev/til-client/models"
)

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	respond(w, r, h.repo.Categories(r.Context()), http.StatusOK)
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	var data models.CreateCategoryData
	if err := h.decodeValid(r, &data); err != nil {
		writeError(w, r, err)
		return
	}

	category, err := h.repo.CreateCategory(r.Context(), data)
	if err != nil {
		writeError(w, r, err)
		return
	}
	respond(w, r, category, http.StatusOK)
}
