package stores

import (
	"context"
	"sync"

	"casafront/internal/api"
	"casafront/internal/models"
)

// ProfileStore caches the last viewed public user profile.
type ProfileStore struct {
	mu      sync.Mutex
	api     *api.Client
	profile *models.UserProfile
	loading bool
	err     string
}

func NewProfileStore(apiClient *api.Client) *ProfileStore {
	return &ProfileStore{api: apiClient}
}

// Fetch loads a user's public profile. On failure the cached profile is
// cleared so the page never shows stale data under an error banner.
func (s *ProfileStore) Fetch(ctx context.Context, userID int) (models.UserProfile, error) {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	dto, err := s.api.FetchPublicProfile(ctx, userID)
	if err != nil {
		s.mu.Lock()
		s.err = api.UserMessage(err, "Error al cargar el perfil del usuario")
		s.loading = false
		s.profile = nil
		s.mu.Unlock()
		return models.UserProfile{}, err
	}

	profile := models.ProfileFromDTO(dto)
	s.mu.Lock()
	s.profile = &profile
	s.loading = false
	s.err = ""
	s.mu.Unlock()
	return profile, nil
}

// Clear drops the cached profile.
func (s *ProfileStore) Clear() {
	s.mu.Lock()
	s.profile = nil
	s.err = ""
	s.mu.Unlock()
}

// Profile returns the cached profile, if any.
func (s *ProfileStore) Profile() (models.UserProfile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return models.UserProfile{}, false
	}
	return *s.profile, true
}

func (s *ProfileStore) Error() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *ProfileStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}
