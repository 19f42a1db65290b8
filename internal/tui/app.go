package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kelola-aset/kelola/internal/session"
)

// App is the top-level Bubble Tea model that routes between pages. It
// also owns the session gate: every switch to a protected page is
// re-checked, and an expired session lands on the login page.
type App struct {
	pages      map[string]Page
	activePage string
	gate       *session.Gate
	width      int
	height     int
}

// NewApp creates an App with the given pages. The start page is the
// login page when the gate denies entry, otherwise the first page.
func NewApp(gate *session.Gate, pages ...Page) *App {
	pageMap := make(map[string]Page, len(pages))
	var firstID string
	for i, p := range pages {
		pageMap[p.ID()] = p
		if i == 0 {
			firstID = p.ID()
		}
	}
	a := &App{
		pages:      pageMap,
		activePage: firstID,
		gate:       gate,
	}
	if a.activePage != PageLogin && !a.admitted() {
		if _, ok := pageMap[PageLogin]; ok {
			a.activePage = PageLogin
		}
	}
	return a
}

func (a *App) admitted() bool {
	if a.gate == nil {
		return true
	}
	return a.gate.Check() == session.StatusActive
}

func (a *App) Init() tea.Cmd {
	if p, ok := a.pages[a.activePage]; ok {
		return p.Init()
	}
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Pass WindowSizeMsg to all pages so they can track dimensions.
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		a.width = wsm.Width
		a.height = wsm.Height
	}

	// A 401 anywhere means the token died mid-flight. The gate clears
	// the session file; the user starts over at login.
	if _, ok := msg.(AuthExpiredMsg); ok {
		if a.gate != nil {
			a.gate.Check()
		}
		return a.switchTo(PageLogin, nil)
	}

	p, ok := a.pages[a.activePage]
	if !ok {
		return a, nil
	}

	cmd, nav := p.Update(msg)

	if nav != nil {
		if nav.PageID != PageLogin && !a.admitted() {
			model, initCmd := a.switchTo(PageLogin, nil)
			return model, tea.Batch(cmd, initCmd)
		}
		if _, exists := a.pages[nav.PageID]; exists {
			a.activePage = nav.PageID
			initCmd := a.pages[a.activePage].Init()
			return a, tea.Batch(cmd, initCmd)
		}
	}

	return a, cmd
}

func (a *App) switchTo(pageID string, _ interface{}) (tea.Model, tea.Cmd) {
	p, ok := a.pages[pageID]
	if !ok {
		return a, nil
	}
	a.activePage = pageID
	return a, p.Init()
}

func (a *App) View() string {
	if p, ok := a.pages[a.activePage]; ok {
		return p.View(a.width, a.height)
	}
	return "No active page"
}

// ActivePageID exposes the current page for tests.
func (a *App) ActivePageID() string { return a.activePage }
