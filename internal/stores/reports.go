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

// ReportStats summarizes the loaded reports page.
type ReportStats struct {
	Pending  int `json:"pending"`
	Resolved int `json:"resolved"`
	Rejected int `json:"rejected"`
	Total    int `json:"total"`
}

// ReportsStore caches one page of user reports for the moderation panel.
type ReportsStore struct {
	mu            sync.Mutex
	api           *api.Client
	reports       []models.Report
	loading       bool
	err           string
	currentPage   int
	totalPages    int
	totalElements int
	pageSize      int
}

func NewReportsStore(apiClient *api.Client, pageSize int) *ReportsStore {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &ReportsStore{api: apiClient, pageSize: pageSize}
}

// Fetch loads one page of reports, replacing contents and pagination
// metadata atomically.
func (s *ReportsStore) Fetch(ctx context.Context, page, size int) error {
	s.mu.Lock()
	if size <= 0 {
		size = s.pageSize
	}
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	envelope, err := s.api.FetchReports(ctx, page, size)
	if err != nil {
		s.mu.Lock()
		s.err = api.UserMessage(err, "Error al cargar los reportes")
		s.loading = false
		s.mu.Unlock()
		return err
	}

	var dtos []models.ReportDTO
	if err := json.Unmarshal(envelope.Content, &dtos); err != nil {
		s.mu.Lock()
		s.err = "Formato de respuesta inválido del servidor"
		s.loading = false
		s.mu.Unlock()
		return err
	}

	list := make([]models.Report, 0, len(dtos))
	for _, dto := range dtos {
		list = append(list, models.ReportFromDTO(dto))
	}

	s.mu.Lock()
	s.reports = list
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
func (s *ReportsStore) Refresh(ctx context.Context) error {
	s.mu.Lock()
	page, size := s.currentPage, s.pageSize
	s.mu.Unlock()
	return s.Fetch(ctx, page, size)
}

// Resolve applies an admin action to a pending report. On success the whole
// list is refetched rather than patched locally: approving a report also
// changes the reported publication server-side, and a stale local patch would
// hide that. On failure the report stays PENDING and the caller's dialog can
// retry with the returned message.
func (s *ReportsStore) Resolve(ctx context.Context, reportID int, action, feedback string) Result {
	target, err := fsm.ReportStatusFor(action)
	if err != nil {
		return Result{Success: false, Message: "Acción no válida: " + action}
	}

	s.mu.Lock()
	current := models.ReportPending
	for _, r := range s.reports {
		if r.ID == reportID {
			current = r.Status
			break
		}
	}
	s.mu.Unlock()

	if !fsm.CanResolveReport(current, target) {
		return Result{Success: false, Message: "El reporte ya fue procesado"}
	}

	message, err := s.api.ResolveReport(ctx, reportID, action, feedback)
	if err != nil {
		return Result{Success: false, Message: api.UserMessage(err, "Error al resolver el reporte")}
	}

	if err := s.Refresh(ctx); err != nil {
		// The mutation landed; the stale list carries the fetch error.
		return Result{Success: true, Message: "Reporte procesado, pero no se pudo actualizar la lista"}
	}

	if message == "" {
		message = "Reporte procesado exitosamente"
	}
	return Result{Success: true, Message: message}
}

// Stats computes the per-status counters over the loaded page.
func (s *ReportsStore) Stats() ReportStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	stats := ReportStats{Total: len(s.reports)}
	for _, r := range s.reports {
		switch r.Status {
		case models.ReportPending:
			stats.Pending++
		case models.ReportResolved:
			stats.Resolved++
		case models.ReportRejected:
			stats.Rejected++
		}
	}
	return stats
}

// Filter applies free-text search and a status filter over the loaded page.
func (s *ReportsStore) Filter(term, status string) []models.Report {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := make([]models.Report, 0, len(s.reports))
	needle := strings.ToLower(strings.TrimSpace(term))
	for _, r := range s.reports {
		if status != "" && status != "ALL" && r.Status != status {
			continue
		}
		if needle != "" && !matchesReport(r, needle) {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}

func matchesReport(r models.Report, needle string) bool {
	return strings.Contains(strings.ToLower(r.Reason), needle) ||
		strings.Contains(strings.ToLower(r.Description), needle) ||
		strings.Contains(strings.ToLower(r.ReporterName), needle) ||
		strings.Contains(strconv.Itoa(r.PublicationID), needle) ||
		strings.Contains(strconv.Itoa(r.ID), needle)
}

// Reports returns a copy of the loaded page.
func (s *ReportsStore) Reports() []models.Report {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Report, len(s.reports))
	copy(out, s.reports)
	return out
}

// Pagination returns currentPage, totalPages, totalElements.
func (s *ReportsStore) Pagination() (int, int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentPage, s.totalPages, s.totalElements
}

func (s *ReportsStore) Error() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *ReportsStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}
