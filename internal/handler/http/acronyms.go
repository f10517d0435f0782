package http

import (
	"net/http"

	"github.com/MKhiriev/til-client/internal/utils"
	"github.com/MKhiriev/til-client/models"
)

func (h *Handler) listAcronyms(w http.ResponseWriter, r *http.Request) {
	respond(w, r, h.repo.Acronyms(r.Context()), http.StatusOK)
}

func (h *Handler) createAcronym(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	var data models.CreateAcronymData
	if err := h.decodeValid(r, &data); err != nil {
		writeError(w, r, err)
		return
	}

	acronym, err := h.repo.CreateAcronym(ctx, userID, data)
	if err != nil {
		writeError(w, r, err)
		return
	}
	respond(w, r, acronym, http.StatusOK)
}

func (h *Handler) updateAcronym(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	id, err := pathID(r, "acronymID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var data models.CreateAcronymData
	if err = h.decodeValid(r, &data); err != nil {
		writeError(w, r, err)
		return
	}

	acronym, err := h.repo.UpdateAcronym(ctx, id, userID, data)
	if err != nil {
		writeError(w, r, err)
		return
	}
	respond(w, r, acronym, http.StatusOK)
}

func (h *Handler) deleteAcronym(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "acronymID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.repo.DeleteAcronym(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) acronymUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "acronymID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.repo.AcronymUser(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	respond(w, r, user, http.StatusOK)
}

func (h *Handler) acronymCategories(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "acronymID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	categories, err := h.repo.AcronymCategories(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	respond(w, r, categories, http.StatusOK)
}

func (h *Handler) attachCategory(w http.ResponseWriter, r *http.Request) {
	h.changeCategoryLink(w, r, true)
}

func (h *Handler) detachCategory(w http.ResponseWriter, r *http.Request) {
	h.changeCategoryLink(w, r, false)
}

// changeCategoryLink answers 201 on attach and 204 on detach.
func (h *Handler) changeCategoryLink(w http.ResponseWriter, r *http.Request, attach bool) {
	acronymID, err := pathID(r, "acronymID")
	if err != nil {
		writeError(w, r, err)
		return
	}
	categoryID, err := pathID(r, "categoryID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	ctx := r.Context()
	status := http.StatusNoContent
	if attach {
		status = http.StatusCreated
		err = h.repo.AttachCategory(ctx, acronymID, categoryID)
	} else {
		err = h.repo.DetachCategory(ctx, acronymID, categoryID)
	}
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(status)
}
