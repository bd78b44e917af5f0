package stores

import (
	"context"
	"sync"

	"casafront/internal/api"
	"casafront/internal/cache"
	"casafront/internal/models"
)

// HomeStore caches the landing-page feeds. They load once per session (the
// loaded latch) and may additionally be served from the shared redis cache.
type HomeStore struct {
	mu      sync.Mutex
	api     *api.Client
	cache   *cache.HomeCache
	popular []models.Publication
	latest  []models.Publication
	loading bool
	err     string
	loaded  bool
}

func NewHomeStore(apiClient *api.Client, homeCache *cache.HomeCache) *HomeStore {
	return &HomeStore{api: apiClient, cache: homeCache}
}

// Fetch loads the popular and newest feeds. Already-loaded state short
// circuits; Refresh resets the latch.
func (s *HomeStore) Fetch(ctx context.Context) error {
	s.mu.Lock()
	if s.loaded {
		s.mu.Unlock()
		return nil
	}
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	if popular, latest, ok := s.cache.GetFeeds(ctx); ok {
		s.mu.Lock()
		s.popular = popular
		s.latest = latest
		s.loading = false
		s.loaded = true
		s.mu.Unlock()
		return nil
	}

	popularDTOs, err := s.api.FetchPopularPublications(ctx)
	if err != nil {
		return s.fail(err)
	}
	latestDTOs, err := s.api.FetchLatestPublications(ctx)
	if err != nil {
		return s.fail(err)
	}

	popular := dedupeCards(popularDTOs, false)
	latest := dedupeCards(latestDTOs, true)
	s.cache.SetFeeds(ctx, popular, latest)

	s.mu.Lock()
	s.popular = popular
	s.latest = latest
	s.loading = false
	s.loaded = true
	s.err = ""
	s.mu.Unlock()
	return nil
}

func (s *HomeStore) fail(err error) error {
	msg := api.UserMessage(err, "Error al cargar las publicaciones")
	if api.IsNotFound(err) {
		msg = "No se encontraron publicaciones"
	}
	s.mu.Lock()
	s.err = msg
	s.loading = false
	s.mu.Unlock()
	return err
}

// Refresh resets the latch, drops the shared cache and reloads.
func (s *HomeStore) Refresh(ctx context.Context) error {
	s.mu.Lock()
	s.loaded = false
	s.mu.Unlock()
	s.cache.Invalidate(ctx)
	return s.Fetch(ctx)
}

// UpdateFavoriteStatus flips the favorited flag on one listing across both
// feeds without refetching.
func (s *HomeStore) UpdateFavoriteStatus(publicationID int, favorited bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.popular = setFavorited(s.popular, publicationID, favorited)
	s.latest = setFavorited(s.latest, publicationID, favorited)
}

// SyncFavorites aligns both feeds with the full favorite-id set.
func (s *HomeStore) SyncFavorites(favoriteIDs map[int]bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.popular {
		s.popular[i].Favorited = favoriteIDs[s.popular[i].ID]
	}
	for i := range s.latest {
		s.latest[i].Favorited = favoriteIDs[s.latest[i].ID]
	}
}

// Popular returns a copy of the popular feed.
func (s *HomeStore) Popular() []models.Publication {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyList(s.popular)
}

// Latest returns a copy of the newest feed.
func (s *HomeStore) Latest() []models.Publication {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyList(s.latest)
}

func (s *HomeStore) Error() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *HomeStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func dedupeCards(dtos []models.PublicationDTO, isNew bool) []models.Publication {
	seen := map[int]struct{}{}
	out := make([]models.Publication, 0, len(dtos))
	for _, dto := range dtos {
		if _, dup := seen[dto.ID]; dup {
			continue
		}
		seen[dto.ID] = struct{}{}
		out = append(out, models.CardFromDTO(dto, isNew))
	}
	return out
}

func setFavorited(list []models.Publication, id int, favorited bool) []models.Publication {
	for i := range list {
		if list[i].ID == id {
			list[i].Favorited = favorited
		}
	}
	return list
}
