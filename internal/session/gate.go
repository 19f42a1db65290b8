package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Status is the gate's verdict for entering the protected area.
type Status int

const (
	StatusLoggedOut Status = iota // no stored credential
	StatusExpired                 // credential present but expired or malformed
	StatusActive                  // credential valid, area may render
)

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusExpired:
		return "expired"
	default:
		return "logged-out"
	}
}

// Gate decides admission from the stored credential. It runs on every
// navigation into a protected page; it never polls.
type Gate struct {
	store *Store
	now   func() time.Time
}

// NewGate creates a gate over the given store.
func NewGate(store *Store) *Gate {
	return &Gate{store: store, now: time.Now}
}

// Check decodes the stored token's expiry claim. An absent token denies
// as logged-out. An expired or malformed token clears the entire store
// and denies as expired — a token the client cannot even decode grants
// nothing. The token is not signature-checked here: the client holds no
// key, and the server re-validates every request.
func (g *Gate) Check() Status {
	st, ok := g.store.Load()
	if !ok || st.AccessToken == "" {
		return StatusLoggedOut
	}

	claims := jwt.RegisteredClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(st.AccessToken, &claims)
	if err != nil || claims.ExpiresAt == nil || !claims.ExpiresAt.Time.After(g.now()) {
		g.store.Clear()
		return StatusExpired
	}
	return StatusActive
}
