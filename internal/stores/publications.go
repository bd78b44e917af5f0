package stores

import (
	"context"
	"sync"
	"time"

	"casafront/internal/api"
	"casafront/internal/models"
)

// Result is the immediate feedback mutations hand back to the page, alongside
// whatever landed in the store state.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// PublicationsStore caches the public listings feed. This is the richer,
// title-preserving variant: a refetch that comes back with an empty
// propertyTitle never clobbers a title the cache already holds.
type PublicationsStore struct {
	mu           sync.Mutex
	api          *api.Client
	publications []models.Publication
	filtered     []models.Publication
	hasFilter    bool
	loading      bool
	err          string
	lastFetch    time.Time
}

func NewPublicationsStore(apiClient *api.Client) *PublicationsStore {
	return &PublicationsStore{api: apiClient}
}

// Fetch replaces the cached feed with the backend's current listings.
func (s *PublicationsStore) Fetch(ctx context.Context) error {
	s.setLoading()

	dtos, err := s.api.FetchPublications(ctx)
	if err != nil {
		s.setError(api.UserMessage(err, "Error al cargar las publicaciones"))
		return err
	}

	list := make([]models.Publication, 0, len(dtos))
	for _, dto := range dtos {
		list = append(list, models.PublicationFromDTO(dto))
	}

	s.mu.Lock()
	s.publications = list
	s.filtered = list
	s.hasFilter = false
	s.loading = false
	s.err = ""
	s.lastFetch = time.Now()
	s.mu.Unlock()
	return nil
}

// Search runs a server-side search and caches the results as the filtered
// view, annotating each hit with its favorite membership.
func (s *PublicationsStore) Search(ctx context.Context, filters map[string]string) ([]models.Publication, error) {
	s.setLoading()

	dtos, err := s.api.SearchPublications(ctx, filters)
	if err != nil {
		s.setError(api.UserMessage(err, "Error al buscar las publicaciones"))
		return nil, err
	}

	results := make([]models.Publication, 0, len(dtos))
	for _, dto := range dtos {
		p := models.PublicationFromDTO(dto)
		p.IsNew = true
		if fav, err := s.api.CheckFavorite(ctx, p.ID); err == nil {
			p.Favorited = fav
		}
		results = append(results, p)
	}

	s.mu.Lock()
	s.filtered = results
	s.hasFilter = true
	s.loading = false
	s.err = ""
	s.mu.Unlock()
	return results, nil
}

// FetchByID fetches one listing and upserts it into the cache. When the
// backend answers with an empty title but the cache already has one for this
// id, the cached title wins.
func (s *PublicationsStore) FetchByID(ctx context.Context, id int) (models.Publication, error) {
	s.setLoading()

	dto, err := s.api.FetchPublicationByID(ctx, id)
	if err != nil {
		s.setError(api.UserMessage(err, "Error al cargar la publicación"))
		return models.Publication{}, err
	}

	p := models.PublicationFromDTO(dto)
	p.IsNew = true

	s.mu.Lock()
	if p.PropertyTitle == "" {
		if cached, ok := findByID(s.publications, id); ok {
			existingTitle := cached.PropertyTitle
			if existingTitle == "" {
				existingTitle = cached.Title
			}
			if existingTitle != "" {
				p.PropertyTitle = existingTitle
				p.Title = existingTitle
			}
		}
	}
	s.publications = upsert(s.publications, p)
	s.loading = false
	s.err = ""
	s.mu.Unlock()
	return p, nil
}

// Update submits the edit-wizard payload and upserts the backend's response
// into both the cache and the filtered view.
func (s *PublicationsStore) Update(ctx context.Context, id int, form models.PublicationUpdate) (models.Publication, error) {
	s.setLoading()

	dto, err := s.api.UpdatePublication(ctx, id, form)
	if err != nil {
		s.setError(api.UserMessage(err, "Error al actualizar la publicación"))
		return models.Publication{}, err
	}

	p := models.PublicationFromDTO(dto)

	s.mu.Lock()
	s.publications = upsert(s.publications, p)
	if s.hasFilter {
		if _, ok := findByID(s.filtered, id); ok {
			s.filtered = upsert(s.filtered, p)
		}
	} else {
		s.filtered = s.publications
	}
	s.loading = false
	s.err = ""
	s.mu.Unlock()
	return p, nil
}

// Report flags a publication for moderation.
func (s *PublicationsStore) Report(ctx context.Context, report models.NewReport) error {
	return s.api.CreateReport(ctx, report)
}

// Refresh forces a full refetch.
func (s *PublicationsStore) Refresh(ctx context.Context) error {
	s.mu.Lock()
	s.lastFetch = time.Time{}
	s.mu.Unlock()
	return s.Fetch(ctx)
}

// ClearFilters drops the filtered view so all publications show again.
func (s *PublicationsStore) ClearFilters() {
	s.mu.Lock()
	s.filtered = s.publications
	s.hasFilter = false
	s.mu.Unlock()
}

// Publications returns a copy of the cached feed.
func (s *PublicationsStore) Publications() []models.Publication {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyList(s.publications)
}

// Filtered returns the current filtered view.
func (s *PublicationsStore) Filtered() []models.Publication {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyList(s.filtered)
}

// Active filters out listings known to be inactive. The public feed should
// already exclude them; this is the client-side safety net.
func (s *PublicationsStore) Active() []models.Publication {
	s.mu.Lock()
	defer s.mu.Unlock()
	active := make([]models.Publication, 0, len(s.publications))
	for _, p := range s.publications {
		if p.Status != models.PublicationInactive {
			active = append(active, p)
		}
	}
	return active
}

func (s *PublicationsStore) Error() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *PublicationsStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *PublicationsStore) setLoading() {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()
}

func (s *PublicationsStore) setError(msg string) {
	s.mu.Lock()
	s.err = msg
	s.loading = false
	s.lastFetch = time.Time{}
	s.mu.Unlock()
}

func findByID(list []models.Publication, id int) (models.Publication, bool) {
	for _, p := range list {
		if p.ID == id {
			return p, true
		}
	}
	return models.Publication{}, false
}

func upsert(list []models.Publication, p models.Publication) []models.Publication {
	for i := range list {
		if list[i].ID == p.ID {
			out := make([]models.Publication, len(list))
			copy(out, list)
			out[i] = p
			return out
		}
	}
	return append(copyList(list), p)
}

func copyList(list []models.Publication) []models.Publication {
	out := make([]models.Publication, len(list))
	copy(out, list)
	return out
}
