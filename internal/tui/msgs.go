package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kelola-aset/kelola/internal/apiclient"
	"github.com/kelola-aset/kelola/internal/session"
)

// AuthExpiredMsg is emitted when any fetch or mutation comes back 401.
// The app router handles it by kicking back to the login page.
type AuthExpiredMsg struct{}

// rowsLoadedMsg carries one completed fetch. Page and seq tie the
// result to the fetch that requested it; a page drops results it did
// not ask for, so a slow response never overwrites a newer view and a
// fetch started on one screen never lands on another.
type rowsLoadedMsg[T any] struct {
	page string
	seq  int
	rows []T
	err  error
}

// rowDeletedMsg reports one completed delete.
type rowDeletedMsg struct {
	id  string
	err error
}

// rowUpdatedMsg carries a patched record back from an edit submission.
type rowUpdatedMsg[T any] struct {
	id  string
	row T
	err error
}

// exportDoneMsg reports a finished PDF export.
type exportDoneMsg struct {
	path string
	err  error
}

// loginResultMsg carries the outcome of a login attempt.
type loginResultMsg struct {
	state session.State
	err   error
}

// authGuard converts a 401 into the app-level expiry message and
// passes everything else through.
func authGuard(err error, msg tea.Msg) tea.Msg {
	if errors.Is(err, apiclient.ErrAuthExpired) {
		return AuthExpiredMsg{}
	}
	return msg
}
