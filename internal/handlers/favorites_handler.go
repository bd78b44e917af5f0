package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"casafront/internal/stores"
)

type FavoritesHandler struct {
	Store    *stores.FavoritesStore
	Home     *stores.HomeStore
	ErrorLog *log.Logger
}

// GetFavorites renders the favorites page.
func (h *FavoritesHandler) GetFavorites(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 0)
	if err := h.Store.Fetch(r.Context(), page); err != nil {
		h.ErrorLog.Printf("GetFavorites page=%d: %v", page, err)
		writeError(w, statusFor(err), h.Store.Error())
		return
	}
	currentPage, totalPages, totalElements := h.Store.Pagination()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"favorites":     h.Store.Favorites(),
		"currentPage":   currentPage,
		"totalPages":    totalPages,
		"totalElements": totalElements,
	})
}

type toggleRequest struct {
	PublicationID int `json:"publicationId"`
}

// ToggleFavorite is the plain variant: await the server, then trust it.
func (h *FavoritesHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	var req toggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	result := h.Store.Toggle(r.Context(), req.PublicationID)
	if result.Success {
		h.Home.UpdateFavoriteStatus(req.PublicationID, true)
	}
	writeJSON(w, http.StatusOK, result)
}

// ToggleFavoriteOptimistic removes first and asks questions later; the store
// rolls the page back if the backend disagrees.
func (h *FavoritesHandler) ToggleFavoriteOptimistic(w http.ResponseWriter, r *http.Request) {
	var req toggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	result := h.Store.ToggleOptimistic(r.Context(), req.PublicationID)
	if result.Success {
		h.Home.UpdateFavoriteStatus(req.PublicationID, false)
	}
	currentPage, totalPages, totalElements := h.Store.Pagination()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":       result.Success,
		"error":         result.Error,
		"favorites":     h.Store.Favorites(),
		"currentPage":   currentPage,
		"totalPages":    totalPages,
		"totalElements": totalElements,
	})
}
