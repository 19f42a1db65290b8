package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Modal is an overlay that captures input until it reports done.
type Modal interface {
	// Update returns true when the modal should close.
	Update(msg tea.Msg) (bool, tea.Cmd)
	View(width, height int) string
}

// renderModalFrame centers content in a bordered box with a title and
// a status bar of key hints.
func renderModalFrame(title, content string, hints []string, width, height int) string {
	modalWidth := width - 8
	modalHeight := height - 6
	if modalWidth < 20 {
		modalWidth = 20
	}
	if modalHeight < 8 {
		modalHeight = 8
	}
	contentWidth := modalWidth - 4

	header := lipgloss.NewStyle().
		Width(contentWidth).
		Foreground(ColorBlue).
		Bold(true).
		Render(title)

	statusBar := lipgloss.NewStyle().
		Foreground(ColorGray).
		Render(strings.Join(hints, " | "))

	body := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	finalModal := lipgloss.NewStyle().
		Width(modalWidth).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBlue).
		Render(body)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, finalModal)
}

// ConfirmModal asks a yes/no question before a destructive action.
type ConfirmModal struct {
	title    string
	question string
	onYes    tea.Cmd
}

func NewConfirmModal(title, question string, onYes tea.Cmd) *ConfirmModal {
	return &ConfirmModal{title: title, question: question, onYes: onYes}
}

func (m *ConfirmModal) Update(msg tea.Msg) (bool, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return false, nil
	}
	switch keyMsg.String() {
	case "y", "Y", "enter":
		return true, m.onYes
	case "n", "N", "escape", "esc":
		return true, nil
	}
	return false, nil
}

func (m *ConfirmModal) View(width, height int) string {
	question := noticeStyle.Render(m.question)
	return renderModalFrame(m.title, question, []string{"y: Confirm", "n/ESC: Cancel"}, width, height)
}
