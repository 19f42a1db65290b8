// Package session holds the process-wide credential: a config-dir JSON
// file with the access token and the logged-in user's profile, written
// at login and removed as a unit on logout or expiry.
package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/kelola-aset/kelola/internal/model"
)

const stateFileName = "session.json"

// State is everything persisted between runs. Clearing the session
// removes the whole file so no derived state (role, profile) outlives
// the token.
type State struct {
	AccessToken string     `json:"access_token"`
	User        model.User `json:"user"`
}

// Store reads and writes the session file. Safe for concurrent use;
// the TUI reads it on every protected navigation and the API client on
// every request.
type Store struct {
	mu     sync.Mutex
	path   string
	cached *State
}

// NewStore creates a store rooted at dir (normally the user config
// dir). The directory is created lazily on first Save.
func NewStore(dir string) *Store {
	return &Store{path: filepath.Join(dir, stateFileName)}
}

// Save persists the state and refreshes the in-memory copy.
func (s *Store) Save(st State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return err
	}
	s.cached = &st
	return nil
}

// Load returns the current state and whether one exists. A missing or
// unreadable file reads as "no session".
func (s *Store) Load() (State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != nil {
		return *s.cached, true
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return State{}, false
	}
	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return State{}, false
	}
	s.cached = &st
	return st, true
}

// Token returns the stored access token, or "" when logged out.
func (s *Store) Token() string {
	st, ok := s.Load()
	if !ok {
		return ""
	}
	return st.AccessToken
}

// Clear removes the session file and the cached copy.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cached = nil
	err := os.Remove(s.path)
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}
