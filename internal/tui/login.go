package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kelola-aset/kelola/internal/apiclient"
	"github.com/kelola-aset/kelola/internal/session"
)

// loginPage collects credentials and mints a session. On success it
// persists the session state and navigates to the dashboard.
type loginPage struct {
	client *apiclient.Client
	store  *session.Store

	email    textinput.Model
	password textinput.Model
	focused  int
	busy     bool
	errText  string
}

func newLoginPage(client *apiclient.Client, store *session.Store) *loginPage {
	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 100
	email.Width = 40
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 100
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return &loginPage{client: client, store: store, email: email, password: password}
}

func (p *loginPage) ID() string { return PageLogin }

func (p *loginPage) Init() tea.Cmd {
	p.busy = false
	return textinput.Blink
}

func (p *loginPage) Update(msg tea.Msg) (tea.Cmd, *PageNav) {
	switch msg := msg.(type) {
	case loginResultMsg:
		p.busy = false
		if msg.err != nil {
			p.errText = loginErrorText(msg.err)
			return nil, nil
		}
		if err := p.store.Save(msg.state); err != nil {
			p.errText = err.Error()
			return nil, nil
		}
		return nil, &PageNav{PageID: PageDashboard}

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return tea.Quit, nil
		case "tab", "shift+tab", "up", "down":
			p.toggleFocus()
			return nil, nil
		case "enter":
			if p.focused == 0 {
				p.toggleFocus()
				return nil, nil
			}
			return p.submit(), nil
		}
		var cmd tea.Cmd
		if p.focused == 0 {
			p.email, cmd = p.email.Update(msg)
		} else {
			p.password, cmd = p.password.Update(msg)
		}
		return cmd, nil
	}
	return nil, nil
}

func (p *loginPage) toggleFocus() {
	if p.focused == 0 {
		p.focused = 1
		p.email.Blur()
		p.password.Focus()
	} else {
		p.focused = 0
		p.password.Blur()
		p.email.Focus()
	}
}

func (p *loginPage) submit() tea.Cmd {
	if p.busy {
		return nil
	}
	p.busy = true
	p.errText = ""
	email := strings.TrimSpace(p.email.Value())
	password := p.password.Value()
	client := p.client
	return func() tea.Msg {
		state, err := client.Login(context.Background(), email, password)
		return loginResultMsg{state: state, err: err}
	}
}

func (p *loginPage) View(width, height int) string {
	title := titleStyle.Render("Kelola Aset")

	var status string
	switch {
	case p.busy:
		status = noticeStyle.Render("Signing in...")
	case p.errText != "":
		status = errorStyle.Render(p.errText)
	default:
		status = lipgloss.NewStyle().Foreground(ColorGray).Render("Enter: Sign in • Tab: Switch field • ctrl+c: Quit")
	}

	form := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		"Email     "+p.email.View(),
		"Password  "+p.password.View(),
		"",
		status,
	)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBlue).
		Padding(1, 2).
		Render(form)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

// loginErrorText keeps auth failures friendly; everything else shows
// as-is.
func loginErrorText(err error) string {
	if errors.Is(err, apiclient.ErrAuthExpired) {
		return "Email atau password salah"
	}
	return err.Error()
}
