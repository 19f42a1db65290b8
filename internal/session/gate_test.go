package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/kelola-aset/kelola/internal/model"
)

func mintToken(t *testing.T, expiresIn time.Duration) string {
	t.Helper()

	claims := jwt.RegisteredClaims{
		Subject:   "admin-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return token
}

func storeWithToken(t *testing.T, token string) *Store {
	t.Helper()

	s := NewStore(t.TempDir())
	err := s.Save(State{
		AccessToken: token,
		User:        model.User{ID: "admin-1", FullName: "Siti Rahayu", Role: "admin"},
	})
	if err != nil {
		t.Fatalf("saving session: %v", err)
	}
	return s
}

func TestGateNoToken(t *testing.T) {
	t.Parallel()

	g := NewGate(NewStore(t.TempDir()))
	if got := g.Check(); got != StatusLoggedOut {
		t.Fatalf("gate = %v, want logged-out", got)
	}
}

func TestGateValidToken(t *testing.T) {
	t.Parallel()

	s := storeWithToken(t, mintToken(t, time.Hour))
	g := NewGate(s)

	if got := g.Check(); got != StatusActive {
		t.Fatalf("gate = %v, want active", got)
	}
	// Storage untouched: the profile is still readable.
	st, ok := s.Load()
	if !ok || st.User.FullName != "Siti Rahayu" {
		t.Fatalf("session state = %+v ok=%v, want intact", st, ok)
	}
}

func TestGateExpiredTokenClearsStore(t *testing.T) {
	t.Parallel()

	s := storeWithToken(t, mintToken(t, -time.Hour))
	g := NewGate(s)

	if got := g.Check(); got != StatusExpired {
		t.Fatalf("gate = %v, want expired", got)
	}
	if _, ok := s.Load(); ok {
		t.Fatal("session survived expiry, want cleared")
	}
	if got := s.Token(); got != "" {
		t.Fatalf("token after expiry = %q, want empty", got)
	}
}

func TestGateMalformedTokenDeniesWithoutPanic(t *testing.T) {
	t.Parallel()

	for _, token := range []string{"not-a-jwt", "a.b", "a.b.c.d", "eyJ..broken"} {
		s := storeWithToken(t, token)
		if got := NewGate(s).Check(); got != StatusExpired {
			t.Fatalf("gate(%q) = %v, want expired", token, got)
		}
		if _, ok := s.Load(); ok {
			t.Fatalf("session survived malformed token %q", token)
		}
	}
}

func TestGateTokenWithoutExpiry(t *testing.T) {
	t.Parallel()

	// exp claim missing entirely: treat as invalid, not immortal.
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "x"}).
		SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	s := storeWithToken(t, token)
	if got := NewGate(s).Check(); got != StatusExpired {
		t.Fatalf("gate = %v, want expired", got)
	}
}

func TestStoreClearRemovesFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s := NewStore(dir)
	if err := s.Save(State{AccessToken: "tok"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, stateFileName)); !os.IsNotExist(err) {
		t.Fatalf("session file still present after clear: %v", err)
	}
	// Clearing twice is fine.
	if err := s.Clear(); err != nil {
		t.Fatalf("second clear: %v", err)
	}
}
