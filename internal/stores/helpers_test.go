package stores

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"casafront/internal/api"
)

type fakeSession struct {
	mu    sync.Mutex
	token string
	drops int
}

func (s *fakeSession) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *fakeSession) Unauthorized() {
	s.mu.Lock()
	s.drops++
	s.token = ""
	s.mu.Unlock()
}

func (s *fakeSession) teardowns() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drops
}

// newBackend wires a fake backend, a client pointed at it and an
// authenticated session.
func newBackend(t *testing.T, handler http.Handler) (*api.Client, *fakeSession) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	sess := &fakeSession{token: "test-token"}
	return api.NewClient(server.Client(), server.URL, sess), sess
}

// writePage writes a pagination envelope with the given content slice.
func writePage(t *testing.T, w http.ResponseWriter, content interface{}, number, totalPages, totalElements, size int) {
	t.Helper()
	raw, err := json.Marshal(content)
	if err != nil {
		t.Errorf("marshal page content: %v", err)
		return
	}
	err = json.NewEncoder(w).Encode(map[string]interface{}{
		"content":       json.RawMessage(raw),
		"number":        number,
		"totalPages":    totalPages,
		"totalElements": totalElements,
		"size":          size,
	})
	if err != nil {
		t.Errorf("encode page: %v", err)
	}
}

func writeJSONBody(t *testing.T, w http.ResponseWriter, v interface{}) {
	t.Helper()
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Errorf("encode body: %v", err)
	}
}
