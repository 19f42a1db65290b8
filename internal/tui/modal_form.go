package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// FormField configures one labeled input of a form modal.
type FormField struct {
	Label string
	Value string
}

// FormModal edits a fixed set of text fields and hands the values to
// submit on ctrl+s. Tab moves between fields.
type FormModal struct {
	title   string
	labels  []string
	inputs  []textinput.Model
	focused int
	errText string
	submit  func(values []string) tea.Cmd
}

func NewFormModal(title string, fields []FormField, submit func(values []string) tea.Cmd) *FormModal {
	labels := make([]string, len(fields))
	inputs := make([]textinput.Model, len(fields))
	for i, f := range fields {
		labels[i] = f.Label
		in := textinput.New()
		in.SetValue(f.Value)
		in.CharLimit = 200
		in.Width = 48
		inputs[i] = in
	}
	if len(inputs) > 0 {
		inputs[0].Focus()
	}
	return &FormModal{title: title, labels: labels, inputs: inputs, submit: submit}
}

// SetError surfaces a validation failure without closing the form.
func (f *FormModal) SetError(text string) { f.errText = text }

func (f *FormModal) values() []string {
	vals := make([]string, len(f.inputs))
	for i := range f.inputs {
		vals[i] = f.inputs[i].Value()
	}
	return vals
}

func (f *FormModal) Update(msg tea.Msg) (bool, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return false, nil
	}

	switch keyMsg.String() {
	case "escape", "esc":
		return true, nil
	case "tab", "down":
		f.moveFocus(1)
		return false, nil
	case "shift+tab", "up":
		f.moveFocus(-1)
		return false, nil
	case "ctrl+s", "enter":
		if keyMsg.String() == "enter" && f.focused < len(f.inputs)-1 {
			f.moveFocus(1)
			return false, nil
		}
		return true, f.submit(f.values())
	}

	var cmd tea.Cmd
	f.inputs[f.focused], cmd = f.inputs[f.focused].Update(msg)
	return false, cmd
}

func (f *FormModal) moveFocus(delta int) {
	f.inputs[f.focused].Blur()
	f.focused = (f.focused + delta + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focused].Focus()
}

func (f *FormModal) View(width, height int) string {
	labelStyle := lipgloss.NewStyle().Foreground(ColorGray).Width(24)
	activeLabelStyle := lipgloss.NewStyle().Foreground(ColorBlue).Width(24)

	var rows []string
	for i := range f.inputs {
		style := labelStyle
		if i == f.focused {
			style = activeLabelStyle
		}
		rows = append(rows, style.Render(f.labels[i])+" "+f.inputs[i].View())
	}
	if f.errText != "" {
		rows = append(rows, errorStyle.Render(f.errText))
	}
	content := strings.Join(rows, "\n")

	return renderModalFrame(f.title, content,
		[]string{"Tab: Next field", "ctrl+s/Enter: Save", "ESC: Cancel"}, width, height)
}
