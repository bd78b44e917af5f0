package handlers

import (
	"log"
	"net/http"

	"casafront/internal/stores"
)

type HomeHandler struct {
	Store     *stores.HomeStore
	Favorites *stores.FavoritesStore
	Session   interface{ Authenticated() bool }
	ErrorLog  *log.Logger
}

// GetHome renders the landing page feeds. When the visitor is signed in, the
// cards are synced against the cached favorite ids.
func (h *HomeHandler) GetHome(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Fetch(r.Context()); err != nil {
		h.ErrorLog.Printf("GetHome: %v", err)
		writeError(w, statusFor(err), h.Store.Error())
		return
	}

	if h.Session.Authenticated() {
		h.Store.SyncFavorites(h.Favorites.FavoriteIDs())
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"popularProperties": h.Store.Popular(),
		"newListings":       h.Store.Latest(),
	})
}

// RefreshHome drops the cached feeds and reloads them.
func (h *HomeHandler) RefreshHome(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Refresh(r.Context()); err != nil {
		h.ErrorLog.Printf("RefreshHome: %v", err)
		writeError(w, statusFor(err), h.Store.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"popularProperties": h.Store.Popular(),
		"newListings":       h.Store.Latest(),
	})
}
