package stores

import (
	"context"
	"encoding/json"
	"sync"

	"casafront/internal/api"
	"casafront/internal/models"
)

// Session exposes the bits of the shared session the favorites store needs to
// refuse work before touching the network.
type Session interface {
	Token() string
}

// FavoritesStore caches the authenticated user's favorites page and owns the
// optimistic toggle. pending tracks in-flight toggles by publication id so a
// double click cannot race two requests for the same listing.
type FavoritesStore struct {
	mu            sync.Mutex
	api           *api.Client
	session       Session
	favorites     []models.Publication
	loading       bool
	err           string
	currentPage   int
	totalPages    int
	totalElements int
	pageSize      int
	pending       map[int]struct{}
}

func NewFavoritesStore(apiClient *api.Client, sess Session, pageSize int) *FavoritesStore {
	if pageSize <= 0 {
		pageSize = 12
	}
	return &FavoritesStore{
		api:      apiClient,
		session:  sess,
		pageSize: pageSize,
		pending:  map[int]struct{}{},
	}
}

// Fetch loads one page of favorites. Without a token there is nothing to
// fetch; the store records the error and skips the call.
func (s *FavoritesStore) Fetch(ctx context.Context, page int) error {
	if s.session.Token() == "" {
		s.mu.Lock()
		s.err = api.MsgNoToken
		s.loading = false
		s.mu.Unlock()
		return &api.Error{Kind: api.KindUnauthorized, Message: api.MsgNoToken}
	}

	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	envelope, err := s.api.FetchFavorites(ctx, page)
	if err != nil {
		s.mu.Lock()
		s.err = api.UserMessage(err, "Error al cargar favoritos")
		s.loading = false
		s.mu.Unlock()
		return err
	}

	var dtos []models.FavoriteDTO
	if err := json.Unmarshal(envelope.Content, &dtos); err != nil {
		s.mu.Lock()
		s.err = "Formato de respuesta inválido del servidor"
		s.loading = false
		s.mu.Unlock()
		return err
	}

	list := make([]models.Publication, 0, len(dtos))
	for _, dto := range dtos {
		list = append(list, models.FavoriteFromDTO(dto))
	}

	s.mu.Lock()
	s.favorites = list
	s.currentPage = envelope.Number
	s.totalPages = envelope.TotalPages
	s.totalElements = envelope.TotalElements
	s.loading = false
	s.err = ""
	s.mu.Unlock()
	return nil
}

// Toggle is the plain variant: await the server, then trust the response.
// The caller refetches whatever lists it cares about.
func (s *FavoritesStore) Toggle(ctx context.Context, publicationID int) models.ToggleResult {
	if s.session.Token() == "" {
		return models.ToggleResult{Success: false, Error: api.MsgNoToken}
	}
	if err := s.api.ToggleFavorite(ctx, publicationID); err != nil {
		return models.ToggleResult{Success: false, Error: api.UserMessage(err, "Error al actualizar favoritos")}
	}
	return models.ToggleResult{Success: true}
}

// ToggleOptimistic removes the listing from the cached page immediately,
// recomputes the pagination counters, then confirms with the server. Any
// failure restores the exact prior snapshot. A second toggle for the same id
// while the first is in flight is refused without a network call.
func (s *FavoritesStore) ToggleOptimistic(ctx context.Context, publicationID int) models.ToggleResult {
	if s.session.Token() == "" {
		return models.ToggleResult{Success: false, Error: api.MsgNoToken}
	}

	s.mu.Lock()
	if _, inFlight := s.pending[publicationID]; inFlight {
		s.mu.Unlock()
		return models.ToggleResult{Success: false, Error: "Operación en progreso"}
	}
	if _, found := findByID(s.favorites, publicationID); !found {
		s.mu.Unlock()
		return models.ToggleResult{Success: false, Error: "Propiedad no encontrada"}
	}

	snapshot := snapshotState{
		favorites:     copyList(s.favorites),
		currentPage:   s.currentPage,
		totalPages:    s.totalPages,
		totalElements: s.totalElements,
	}

	updated := make([]models.Publication, 0, len(s.favorites)-1)
	for _, fav := range s.favorites {
		if fav.ID != publicationID {
			updated = append(updated, fav)
		}
	}

	newTotal := s.totalElements - 1
	if newTotal < 0 {
		newTotal = 0
	}
	s.favorites = updated
	s.totalElements = newTotal
	s.totalPages = ceilDiv(newTotal, s.pageSize)
	if len(updated) == 0 && s.currentPage > 0 {
		s.currentPage--
	}
	s.pending[publicationID] = struct{}{}
	s.mu.Unlock()

	err := s.api.ToggleFavorite(ctx, publicationID)

	s.mu.Lock()
	delete(s.pending, publicationID)
	if err != nil {
		s.favorites = snapshot.favorites
		s.currentPage = snapshot.currentPage
		s.totalPages = snapshot.totalPages
		s.totalElements = snapshot.totalElements
	}
	s.mu.Unlock()

	if err != nil {
		return models.ToggleResult{Success: false, Error: api.UserMessage(err, "Error al actualizar favoritos")}
	}
	return models.ToggleResult{Success: true}
}

// Refresh refetches the current page.
func (s *FavoritesStore) Refresh(ctx context.Context) error {
	s.mu.Lock()
	page := s.currentPage
	s.mu.Unlock()
	return s.Fetch(ctx, page)
}

// Favorites returns a copy of the cached page.
func (s *FavoritesStore) Favorites() []models.Publication {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyList(s.favorites)
}

// FavoriteIDs returns the ids on the cached page, for syncing card surfaces.
func (s *FavoritesStore) FavoriteIDs() map[int]bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make(map[int]bool, len(s.favorites))
	for _, fav := range s.favorites {
		ids[fav.ID] = true
	}
	return ids
}

// Pagination returns currentPage, totalPages, totalElements.
func (s *FavoritesStore) Pagination() (int, int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentPage, s.totalPages, s.totalElements
}

func (s *FavoritesStore) Error() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *FavoritesStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

type snapshotState struct {
	favorites     []models.Publication
	currentPage   int
	totalPages    int
	totalElements int
}

func ceilDiv(n, per int) int {
	if per <= 0 {
		return 0
	}
	return (n + per - 1) / per
}
