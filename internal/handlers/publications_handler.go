package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"casafront/internal/api"
	"casafront/internal/models"
	"casafront/internal/stores"
	"casafront/internal/wizard"
)

type PublicationHandler struct {
	Store    *stores.PublicationsStore
	ErrorLog *log.Logger
}

// GetPublications renders the public listings page.
func (h *PublicationHandler) GetPublications(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Fetch(r.Context()); err != nil {
		h.ErrorLog.Printf("GetPublications: %v", err)
		writeError(w, statusFor(err), h.Store.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"publications": h.Store.Active(),
	})
}

// SearchPublications runs a server-side search with the request's query
// params as filters.
func (h *PublicationHandler) SearchPublications(w http.ResponseWriter, r *http.Request) {
	filters := map[string]string{}
	for key, values := range r.URL.Query() {
		if len(values) > 0 && values[0] != "" {
			filters[key] = values[0]
		}
	}

	results, err := h.Store.Search(r.Context(), filters)
	if err != nil {
		h.ErrorLog.Printf("SearchPublications: %v", err)
		writeError(w, statusFor(err), h.Store.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"publications": results,
	})
}

// GetPublicationByID renders the property detail page.
func (h *PublicationHandler) GetPublicationByID(w http.ResponseWriter, r *http.Request) {
	id, ok := patInt(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Identificador inválido")
		return
	}
	publication, err := h.Store.FetchByID(r.Context(), id)
	if err != nil {
		h.ErrorLog.Printf("GetPublicationByID %d: %v", id, err)
		writeError(w, statusFor(err), h.Store.Error())
		return
	}
	writeJSON(w, http.StatusOK, publication)
}

// UpdatePublication validates the full wizard form and submits the edit.
func (h *PublicationHandler) UpdatePublication(w http.ResponseWriter, r *http.Request) {
	id, ok := patInt(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Identificador inválido")
		return
	}

	var form wizard.Form
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if failedStep := form.ValidateAll(); failedStep != "" {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"message": "Por favor complete correctamente el paso: " + failedStep,
			"step":    failedStep,
			"errors":  allStepErrors(&form),
		})
		return
	}

	publication, err := h.Store.Update(r.Context(), id, form.ToUpdate())
	if err != nil {
		h.ErrorLog.Printf("UpdatePublication %d: %v", id, err)
		writeError(w, statusFor(err), h.Store.Error())
		return
	}
	writeJSON(w, http.StatusOK, publication)
}

// ValidateStep checks one wizard step so the form can gate advancement
// without a round trip per field.
func (h *PublicationHandler) ValidateStep(w http.ResponseWriter, r *http.Request) {
	step := queryInt(r, "step", 0)
	var form wizard.Form
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	errs := form.ValidateStep(step)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"valid":  len(errs) == 0,
		"errors": errs,
	})
}

// ReportPublication files a user report against a listing.
func (h *PublicationHandler) ReportPublication(w http.ResponseWriter, r *http.Request) {
	id, ok := patInt(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Identificador inválido")
		return
	}

	var payload struct {
		Reason      string `json:"reason"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	report := models.NewReport{
		PublicationID: id,
		Reason:        payload.Reason,
		Description:   payload.Description,
	}
	if err := h.Store.Report(r.Context(), report); err != nil {
		h.ErrorLog.Printf("ReportPublication %d: %v", id, err)
		writeError(w, statusFor(err), api.UserMessage(err, "Error al reportar la publicación"))
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func allStepErrors(form *wizard.Form) map[string]string {
	merged := map[string]string{}
	for i := range wizard.Steps {
		for field, msg := range form.ValidateStep(i) {
			merged[field] = msg
		}
	}
	return merged
}

// statusFor maps the API client's failure taxonomy onto the status the page
// receives; everything unclassified degrades to a retryable 502.
func statusFor(err error) int {
	switch {
	case api.IsUnauthorized(err):
		return http.StatusUnauthorized
	case api.IsForbidden(err):
		return http.StatusForbidden
	case api.IsNotFound(err):
		return http.StatusNotFound
	case api.IsNetwork(err):
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadGateway
	}
}
