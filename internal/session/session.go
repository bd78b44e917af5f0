package session

import (
	"errors"
	"strings"
	"sync"

	"github.com/golang-jwt/jwt"

	"casafront/internal/models"
)

var ErrNoToken = errors.New("no session token")

// Manager is the shared session collaborator. Every store reads the bearer
// token from here, and a 401 anywhere tears the session down globally through
// Unauthorized. Claims are parsed without signature verification: the signing
// key belongs to the backend, the client only reads its own role and id out of
// the token the backend issued.
type Manager struct {
	mu        sync.Mutex
	token     string
	claims    models.Claims
	listeners []func()
}

func NewManager() *Manager {
	return &Manager{}
}

// SetToken installs a bearer token and extracts its claims. An unparsable
// token is rejected so the guards never run against garbage claims.
func (m *Manager) SetToken(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ErrNoToken
	}

	claims := models.Claims{}
	parser := jwt.Parser{}
	if _, _, err := parser.ParseUnverified(raw, &claims); err != nil {
		return err
	}

	m.mu.Lock()
	m.token = raw
	m.claims = claims
	m.mu.Unlock()
	return nil
}

func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

func (m *Manager) Authenticated() bool {
	return m.Token() != ""
}

func (m *Manager) Role() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.claims.Role
}

func (m *Manager) UserID() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.claims.UserID
}

// OnLogout registers a callback run when the session is torn down.
func (m *Manager) OnLogout(fn func()) {
	m.mu.Lock()
	m.listeners = append(m.listeners, fn)
	m.mu.Unlock()
}

// Logout clears the session and notifies listeners. Safe to call repeatedly;
// listeners fire only while a token is actually installed, so simultaneous
// 401s collapse into one teardown.
func (m *Manager) Logout() {
	m.mu.Lock()
	hadToken := m.token != ""
	m.token = ""
	m.claims = models.Claims{}
	listeners := m.listeners
	m.mu.Unlock()

	if !hadToken {
		return
	}
	for _, fn := range listeners {
		fn()
	}
}

// Unauthorized is the 401 hook the API client calls.
func (m *Manager) Unauthorized() {
	m.Logout()
}
