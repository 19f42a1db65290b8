package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// DetailModal displays one record's full field list in a scrollable
// viewport.
type DetailModal struct {
	title    string
	viewport viewport.Model
	content  string
}

func NewDetailModal(title, content string) *DetailModal {
	return &DetailModal{
		title:    title,
		viewport: viewport.New(80, 20),
		content:  content,
	}
}

func (d *DetailModal) Update(msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			d.viewport.ScrollUp(1)
			return false, nil
		case "down", "j":
			d.viewport.ScrollDown(1)
			return false, nil
		case "pgup":
			d.viewport.HalfPageUp()
			return false, nil
		case "pgdown":
			d.viewport.HalfPageDown()
			return false, nil
		case "escape", "esc", "enter", "q":
			return true, nil
		}
		var cmd tea.Cmd
		d.viewport, cmd = d.viewport.Update(msg)
		return false, cmd
	}
	return false, nil
}

func (d *DetailModal) View(width, height int) string {
	contentWidth := width - 12
	contentHeight := height - 12
	if contentWidth < 20 {
		contentWidth = 20
	}
	if contentHeight < 5 {
		contentHeight = 5
	}
	d.viewport.Width = contentWidth
	d.viewport.Height = contentHeight
	d.viewport.SetContent(d.content)

	return renderModalFrame(d.title, d.viewport.View(),
		[]string{"↑/↓: Scroll", "PgUp/PgDn: Page", "ESC: Close"}, width, height)
}
