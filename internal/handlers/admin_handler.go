package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"casafront/internal/stores"
)

type AdminHandler struct {
	Store    *stores.AdminPublicationsStore
	ErrorLog *log.Logger
}

// GetPublications renders the moderation panel's publication list. `search`
// and `filter` narrow the loaded page client-side; `status` filters
// server-side.
func (h *AdminHandler) GetPublications(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 0)
	size := queryInt(r, "size", 0)
	status := r.URL.Query().Get("status")

	if err := h.Store.FetchAll(r.Context(), page, size, status); err != nil {
		h.ErrorLog.Printf("Admin GetPublications page=%d: %v", page, err)
		writeError(w, statusFor(err), h.Store.Error())
		return
	}

	publications := h.Store.Publications()
	if term, filter := r.URL.Query().Get("search"), r.URL.Query().Get("filter"); term != "" || filter != "" {
		publications = h.Store.Filter(term, filter)
	}

	currentPage, totalPages, totalElements := h.Store.Pagination()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"publications":  publications,
		"stats":         h.Store.Stats(),
		"currentPage":   currentPage,
		"totalPages":    totalPages,
		"totalElements": totalElements,
	})
}

// UpdateStatus moves a publication to ACTIVE or INACTIVE, then refreshes the
// page so server-computed fields (reportCount) stay truthful.
func (h *AdminHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := patInt(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Identificador inválido")
		return
	}

	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	result := h.Store.SetStatus(r.Context(), id, payload.Status)
	if !result.Success {
		writeJSON(w, http.StatusConflict, result)
		return
	}

	if err := h.Store.Refresh(r.Context()); err != nil {
		h.ErrorLog.Printf("Admin UpdateStatus refresh: %v", err)
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": result.Message,
		"stats":   h.Store.Stats(),
	})
}
