package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"casafront/internal/stores"
)

type ReportsHandler struct {
	Store    *stores.ReportsStore
	ErrorLog *log.Logger
}

// GetReports renders the moderation panel's reports list.
func (h *ReportsHandler) GetReports(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 0)
	size := queryInt(r, "size", 0)

	if err := h.Store.Fetch(r.Context(), page, size); err != nil {
		h.ErrorLog.Printf("GetReports page=%d: %v", page, err)
		writeError(w, statusFor(err), h.Store.Error())
		return
	}

	reports := h.Store.Reports()
	if term, filter := r.URL.Query().Get("search"), r.URL.Query().Get("filter"); term != "" || filter != "" {
		reports = h.Store.Filter(term, filter)
	}

	currentPage, totalPages, totalElements := h.Store.Pagination()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"reports":       reports,
		"stats":         h.Store.Stats(),
		"currentPage":   currentPage,
		"totalPages":    totalPages,
		"totalElements": totalElements,
	})
}

// ResolveReport applies the dialog's action. A failed resolution keeps the
// report pending so the dialog can retry with the returned message.
func (h *ReportsHandler) ResolveReport(w http.ResponseWriter, r *http.Request) {
	id, ok := patInt(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Identificador inválido")
		return
	}

	var payload struct {
		Action   string `json:"action"`
		Feedback string `json:"feedback"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	result := h.Store.Resolve(r.Context(), id, payload.Action, payload.Feedback)
	if !result.Success {
		writeJSON(w, http.StatusConflict, result)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": result.Message,
		"reports": h.Store.Reports(),
		"stats":   h.Store.Stats(),
	})
}
