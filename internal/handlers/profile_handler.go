package handlers

import (
	"log"
	"net/http"

	"casafront/internal/stores"
)

type ProfileHandler struct {
	Store    *stores.ProfileStore
	ErrorLog *log.Logger
}

// GetPublicProfile renders a user's public profile; the backend decides which
// contact details the requester may see.
func (h *ProfileHandler) GetPublicProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := patInt(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Identificador inválido")
		return
	}
	profile, err := h.Store.Fetch(r.Context(), id)
	if err != nil {
		h.ErrorLog.Printf("GetPublicProfile %d: %v", id, err)
		writeError(w, statusFor(err), h.Store.Error())
		return
	}
	writeJSON(w, http.StatusOK, profile)
}
