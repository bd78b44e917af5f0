package session

import (
	"testing"

	"github.com/golang-jwt/jwt"

	"casafront/internal/models"
)

func signedToken(t *testing.T, userID int, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, models.Claims{UserID: userID, Role: role})
	raw, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatal(err)
	}
	return raw
}

func TestSetToken(t *testing.T) {
	m := NewManager()
	raw := signedToken(t, 7, models.RoleAdmin)
	if err := m.SetToken(raw); err != nil {
		t.Fatal(err)
	}
	if !m.Authenticated() {
		t.Fatal("expected authenticated session")
	}
	if m.Token() != raw {
		t.Fatal("token not stored")
	}
	if m.UserID() != 7 {
		t.Fatalf("user id = %d", m.UserID())
	}
	if m.Role() != models.RoleAdmin {
		t.Fatalf("role = %q", m.Role())
	}
}

func TestSetTokenRejectsGarbage(t *testing.T) {
	m := NewManager()
	if err := m.SetToken("not-a-jwt"); err == nil {
		t.Fatal("expected error for malformed token")
	}
	if err := m.SetToken("   "); err != ErrNoToken {
		t.Fatalf("blank token: got %v, want ErrNoToken", err)
	}
	if m.Authenticated() {
		t.Fatal("rejected token must not authenticate")
	}
}

func TestLogoutClearsSession(t *testing.T) {
	m := NewManager()
	if err := m.SetToken(signedToken(t, 7, "ROLE_USER")); err != nil {
		t.Fatal(err)
	}
	m.Logout()
	if m.Authenticated() || m.Role() != "" || m.UserID() != 0 {
		t.Fatal("logout left session state behind")
	}
}

// Simultaneous 401s from parallel requests must collapse into a single
// teardown.
func TestLogoutFiresListenersOnce(t *testing.T) {
	m := NewManager()
	fired := 0
	m.OnLogout(func() { fired++ })

	if err := m.SetToken(signedToken(t, 7, "ROLE_USER")); err != nil {
		t.Fatal(err)
	}
	m.Unauthorized()
	m.Unauthorized()
	m.Logout()
	if fired != 1 {
		t.Fatalf("listeners fired %d times, want 1", fired)
	}

	// A fresh token re-arms the teardown.
	if err := m.SetToken(signedToken(t, 7, "ROLE_USER")); err != nil {
		t.Fatal(err)
	}
	m.Unauthorized()
	if fired != 2 {
		t.Fatalf("listeners fired %d times after new token, want 2", fired)
	}
}

func TestLogoutWithoutTokenIsSilent(t *testing.T) {
	m := NewManager()
	fired := 0
	m.OnLogout(func() { fired++ })
	m.Logout()
	if fired != 0 {
		t.Fatal("logout without a token must not notify")
	}
}
