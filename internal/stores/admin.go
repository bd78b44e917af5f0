package stores

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"sync"

	"casafront/internal/api"
	"casafront/internal/fsm"
	"casafront/internal/models"
)

// AdminStats summarizes the loaded moderation page.
type AdminStats struct {
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
	Reported int `json:"reported"`
	Total    int `json:"total"`
}

// AdminPublicationsStore caches one page of listings for the moderation
// panel, in every status.
type AdminPublicationsStore struct {
	mu            sync.Mutex
	api           *api.Client
	publications  []models.Publication
	loading       bool
	err           string
	currentPage   int
	totalPages    int
	totalElements int
	pageSize      int
}

func NewAdminPublicationsStore(apiClient *api.Client, pageSize int) *AdminPublicationsStore {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &AdminPublicationsStore{api: apiClient, pageSize: pageSize}
}

// FetchAll loads one page of publications. The page contents and pagination
// metadata are replaced atomically, never merged with the previous page.
// size <= 0 keeps the current page size; statusFilter "" or "ALL" disables
// server-side status filtering.
func (s *AdminPublicationsStore) FetchAll(ctx context.Context, page, size int, statusFilter string) error {
	s.mu.Lock()
	if size <= 0 {
		size = s.pageSize
	}
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	envelope, err := s.api.FetchAdminPublications(ctx, page, size, statusFilter)
	if err != nil {
		s.mu.Lock()
		s.err = api.UserMessage(err, "Error al cargar las publicaciones")
		s.loading = false
		s.mu.Unlock()
		return err
	}

	var dtos []models.PublicationDTO
	if err := json.Unmarshal(envelope.Content, &dtos); err != nil {
		s.mu.Lock()
		s.err = "Formato de respuesta inválido del servidor"
		s.loading = false
		s.mu.Unlock()
		return err
	}

	list := make([]models.Publication, 0, len(dtos))
	for _, dto := range dtos {
		list = append(list, models.PublicationFromDTO(dto))
	}

	s.mu.Lock()
	s.publications = list
	s.currentPage = envelope.Number
	s.totalPages = envelope.TotalPages
	s.totalElements = envelope.TotalElements
	s.pageSize = size
	s.loading = false
	s.err = ""
	s.mu.Unlock()
	return nil
}

// Refresh refetches the current page with the current size.
func (s *AdminPublicationsStore) Refresh(ctx context.Context) error {
	s.mu.Lock()
	page, size := s.currentPage, s.pageSize
	s.mu.Unlock()
	return s.FetchAll(ctx, page, size, "")
}

// SetStatus asks the backend to move a publication to ACTIVE or INACTIVE.
// No optimistic mutation here: the cached copy is patched only after the
// backend confirms, and left untouched on failure. Server-computed fields
// (reportCount) need a list refresh afterward.
func (s *AdminPublicationsStore) SetStatus(ctx context.Context, publicationID int, newStatus string) Result {
	if newStatus != models.PublicationActive && newStatus != models.PublicationInactive {
		return Result{Success: false, Message: "Estado no permitido: " + newStatus}
	}

	s.mu.Lock()
	current, found := findByID(s.publications, publicationID)
	s.mu.Unlock()
	if found && !fsm.CanSetPublicationStatus(current.Status, newStatus) {
		return Result{Success: false, Message: "Transición de estado no permitida"}
	}

	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	message, err := s.api.UpdatePublicationStatus(ctx, publicationID, newStatus)
	if err != nil {
		msg := api.UserMessage(err, "Error al actualizar el estado")
		s.mu.Lock()
		s.err = msg
		s.loading = false
		s.mu.Unlock()
		return Result{Success: false, Message: msg}
	}

	s.mu.Lock()
	for i := range s.publications {
		if s.publications[i].ID == publicationID {
			updated := copyList(s.publications)
			updated[i].Status = newStatus
			s.publications = updated
			break
		}
	}
	s.loading = false
	s.mu.Unlock()

	if message == "" {
		message = "Estado actualizado exitosamente"
	}
	return Result{Success: true, Message: message}
}

// Stats computes the per-status counters over the loaded page.
func (s *AdminPublicationsStore) Stats() AdminStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	stats := AdminStats{Total: len(s.publications)}
	for _, p := range s.publications {
		switch {
		case p.IsReported || p.Status == models.PublicationReported:
			stats.Reported++
		case p.Status == models.PublicationActive:
			stats.Active++
		case p.Status == models.PublicationInactive:
			stats.Inactive++
		}
	}
	return stats
}

// Filter applies the panel's free-text search and status filter over the
// loaded page only; this is deliberately not a server-side search.
func (s *AdminPublicationsStore) Filter(term, status string) []models.Publication {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := make([]models.Publication, 0, len(s.publications))
	needle := strings.ToLower(strings.TrimSpace(term))
	for _, p := range s.publications {
		if status != "" && status != "ALL" && models.DisplayStatus(p) != status {
			continue
		}
		if needle != "" && !matchesPublication(p, needle) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

func matchesPublication(p models.Publication, needle string) bool {
	return strings.Contains(strings.ToLower(p.Title), needle) ||
		strings.Contains(strings.ToLower(p.Description), needle) ||
		strings.Contains(strings.ToLower(p.PublisherName), needle) ||
		strings.Contains(strings.ToLower(p.Location), needle) ||
		strings.Contains(strconv.Itoa(p.ID), needle)
}

// Publications returns a copy of the loaded page.
func (s *AdminPublicationsStore) Publications() []models.Publication {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyList(s.publications)
}

// Pagination returns currentPage, totalPages, totalElements.
func (s *AdminPublicationsStore) Pagination() (int, int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentPage, s.totalPages, s.totalElements
}

func (s *AdminPublicationsStore) Error() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *AdminPublicationsStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}
