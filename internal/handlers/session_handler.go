package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"casafront/internal/session"
	"casafront/internal/stores"
)

type SessionHandler struct {
	Session *session.Manager
	Home    *stores.HomeStore
	InfoLog *log.Logger
}

// SignIn installs the bearer token the backend issued after login.
func (h *SessionHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if err := h.Session.SetToken(payload.Token); err != nil {
		writeError(w, http.StatusUnauthorized, "Token inválido")
		return
	}
	h.InfoLog.Printf("session started for user %d (%s)", h.Session.UserID(), h.Session.Role())
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"userId": h.Session.UserID(),
		"role":   h.Session.Role(),
	})
}

// SignOut tears the session down.
func (h *SessionHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	h.Session.Logout()
	w.WriteHeader(http.StatusNoContent)
}

// GetSession reports the current session state for the guards on the page.
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"authenticated": h.Session.Authenticated(),
		"userId":        h.Session.UserID(),
		"role":          h.Session.Role(),
	})
}
