package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kelola-aset/kelola/internal/resultset"
)

// column describes one rendered table column.
type column[T any] struct {
	header string
	width  int
	value  func(T) string
}

// filterOption is one position of the status-filter cycle. An empty
// statuses slice means "no filter".
type filterOption struct {
	label    string
	statuses []string
}

// listPage is the shared machinery of every collection screen: fetch,
// merged result set, search, status filter, pagination, row actions,
// and export. Concrete pages differ only in their hooks.
type listPage[T any] struct {
	id    string
	title string
	keys  KeyMap
	mgr   *resultset.Manager[T]
	cols  []column[T]

	// hooks; nil hooks disable their key
	fetch    func(ctx context.Context) ([]T, error)
	detail   func(T) string
	remove   func(ctx context.Context, row T) error
	editForm func(row T) Modal
	exporter func(rows []T) (string, error)

	filters   []filterOption
	filterIdx int

	searchInput  textinput.Model
	searchActive bool

	modal   Modal
	loading bool
	seq     int
	cursor  int
	notice  string
	errText string
}

func newListPage[T any](id, title string, schema resultset.Schema[T], pageSize int) *listPage[T] {
	input := textinput.New()
	input.Placeholder = "search"
	input.CharLimit = 100
	input.Width = 32

	return &listPage[T]{
		id:          id,
		title:       title,
		keys:        DefaultKeyMap(),
		mgr:         resultset.NewManager(schema, pageSize),
		searchInput: input,
		filters:     []filterOption{{label: "All"}},
	}
}

func (p *listPage[T]) ID() string { return p.id }

func (p *listPage[T]) Init() tea.Cmd {
	return tea.Batch(p.startFetch(), spinnerTick())
}

// startFetch launches the page's fetch with a fresh sequence number.
// Results from earlier sequences are discarded on arrival.
func (p *listPage[T]) startFetch() tea.Cmd {
	if p.fetch == nil {
		return nil
	}
	p.seq++
	p.loading = true
	p.errText = ""
	page := p.id
	seq := p.seq
	fetch := p.fetch
	return func() tea.Msg {
		rows, err := fetch(context.Background())
		return authGuard(err, rowsLoadedMsg[T]{page: page, seq: seq, rows: rows, err: err})
	}
}

func (p *listPage[T]) Update(msg tea.Msg) (tea.Cmd, *PageNav) {
	switch msg := msg.(type) {
	case rowsLoadedMsg[T]:
		if msg.page != p.id || msg.seq != p.seq {
			return nil, nil
		}
		p.loading = false
		if msg.err != nil {
			// Keep whatever rows we already had; show the failure.
			p.errText = msg.err.Error()
			return nil, nil
		}
		p.mgr.SetCollection(msg.rows)
		p.mgr.Sort()
		p.clampCursor()
		return nil, nil

	case rowDeletedMsg:
		if msg.err != nil {
			p.errText = msg.err.Error()
			return nil, nil
		}
		p.mgr.Remove(msg.id)
		p.clampCursor()
		p.notice = "Record deleted"
		return nil, nil

	case rowUpdatedMsg[T]:
		if msg.err != nil {
			p.errText = msg.err.Error()
			return nil, nil
		}
		p.mgr.Replace(msg.id, msg.row)
		p.notice = "Record updated"
		return nil, nil

	case exportDoneMsg:
		if msg.err != nil {
			p.errText = msg.err.Error()
		} else {
			p.notice = "Exported to " + msg.path
		}
		return nil, nil

	case SpinnerTickMsg:
		if p.loading {
			return spinnerTick(), nil
		}
		return nil, nil

	case tea.KeyMsg:
		return p.handleKey(msg)
	}

	return nil, nil
}

func (p *listPage[T]) handleKey(msg tea.KeyMsg) (tea.Cmd, *PageNav) {
	if msg.String() == "ctrl+c" {
		return tea.Quit, nil
	}

	if p.modal != nil {
		done, cmd := p.modal.Update(msg)
		if done {
			p.modal = nil
		}
		return cmd, nil
	}

	if p.searchActive {
		return p.handleSearchKey(msg), nil
	}

	if target := navTarget(msg.String()); target != "" && target != p.id {
		return nil, &PageNav{PageID: target}
	}

	switch {
	case key.Matches(msg, p.keys.Quit):
		return tea.Quit, nil

	case key.Matches(msg, p.keys.Search):
		p.searchActive = true
		p.searchInput.Focus()
		return textinput.Blink, nil

	case key.Matches(msg, p.keys.Escape):
		p.searchInput.SetValue("")
		p.mgr.SetSearch("")
		p.notice = ""
		p.errText = ""
		p.clampCursor()
		return nil, nil

	case key.Matches(msg, p.keys.Filter):
		if len(p.filters) > 1 {
			p.filterIdx = (p.filterIdx + 1) % len(p.filters)
			p.mgr.SetStatusFilter(p.filters[p.filterIdx].statuses...)
			p.clampCursor()
		}
		return nil, nil

	case key.Matches(msg, p.keys.Refresh):
		return tea.Batch(p.startFetch(), spinnerTick()), nil

	case key.Matches(msg, p.keys.Up):
		if p.cursor > 0 {
			p.cursor--
		}
		return nil, nil

	case key.Matches(msg, p.keys.Down):
		if p.cursor < len(p.mgr.Page())-1 {
			p.cursor++
		}
		return nil, nil

	case key.Matches(msg, p.keys.PrevPage):
		if p.mgr.HasPrev() {
			p.mgr.PrevPage()
			p.clampCursor()
		}
		return nil, nil

	case key.Matches(msg, p.keys.NextPage):
		if p.mgr.HasNext() {
			p.mgr.NextPage()
			p.clampCursor()
		}
		return nil, nil

	case key.Matches(msg, p.keys.Enter):
		if row, ok := p.selectedRow(); ok && p.detail != nil {
			p.modal = NewDetailModal(p.title, p.detail(row))
		}
		return nil, nil

	case key.Matches(msg, p.keys.Delete):
		if row, ok := p.selectedRow(); ok && p.remove != nil {
			p.modal = p.confirmDelete(row)
		}
		return nil, nil

	case key.Matches(msg, p.keys.Edit):
		if row, ok := p.selectedRow(); ok && p.editForm != nil {
			p.modal = p.editForm(row)
		}
		return nil, nil

	case key.Matches(msg, p.keys.Export):
		return p.startExport(), nil
	}

	return nil, nil
}

func (p *listPage[T]) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "escape", "esc":
		p.searchActive = false
		p.searchInput.Blur()
		p.searchInput.SetValue("")
		p.mgr.SetSearch("")
		p.clampCursor()
		return nil
	case "enter":
		p.searchActive = false
		p.searchInput.Blur()
		return nil
	default:
		var cmd tea.Cmd
		p.searchInput, cmd = p.searchInput.Update(msg)
		p.mgr.SetSearch(p.searchInput.Value())
		p.clampCursor()
		return cmd
	}
}

func (p *listPage[T]) confirmDelete(row T) Modal {
	remove := p.remove
	id := p.rowID(row)
	onYes := func() tea.Msg {
		err := remove(context.Background(), row)
		return authGuard(err, rowDeletedMsg{id: id, err: err})
	}
	return NewConfirmModal(p.title, "Delete this record? This cannot be undone.", onYes)
}

func (p *listPage[T]) startExport() tea.Cmd {
	if p.exporter == nil {
		return nil
	}
	exporter := p.exporter
	rows := p.mgr.Filtered()
	return func() tea.Msg {
		path, err := exporter(rows)
		return exportDoneMsg{path: path, err: err}
	}
}

func (p *listPage[T]) selectedRow() (T, bool) {
	page := p.mgr.Page()
	if p.cursor < 0 || p.cursor >= len(page) {
		var zero T
		return zero, false
	}
	return page[p.cursor], true
}

func (p *listPage[T]) rowID(row T) string {
	return p.mgr.IDOf(row)
}

func (p *listPage[T]) clampCursor() {
	if n := len(p.mgr.Page()); p.cursor >= n {
		p.cursor = n - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

func (p *listPage[T]) View(width, height int) string {
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}

	if p.modal != nil {
		return p.modal.View(width, height)
	}

	header := p.renderHeader(width)
	status := p.renderStatusLine(width)

	bodyHeight := height - lipgloss.Height(header) - lipgloss.Height(status)
	if p.loading && p.mgr.TotalLen() == 0 {
		return lipgloss.JoinVertical(lipgloss.Left,
			header, renderLoadingPlaceholder(width, bodyHeight), status)
	}

	body := p.renderTable(width)
	if gap := bodyHeight - lipgloss.Height(body); gap > 0 {
		body += strings.Repeat("\n", gap)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, body, status)
}

func (p *listPage[T]) renderHeader(width int) string {
	title := titleStyle.Render(p.title)

	var extras []string
	if p.searchActive {
		extras = append(extras, p.searchInput.View())
	} else if q := p.mgr.Search(); q != "" {
		extras = append(extras, noticeStyle.Render("search: "+q))
	}
	if p.filterIdx > 0 {
		extras = append(extras, noticeStyle.Render("filter: "+p.filters[p.filterIdx].label))
	}
	if p.errText != "" {
		extras = append(extras, errorStyle.Render(p.errText))
	} else if p.notice != "" {
		extras = append(extras, noticeStyle.Render(p.notice))
	}

	line := title
	if len(extras) > 0 {
		line += "  " + strings.Join(extras, "  ")
	}
	return lipgloss.NewStyle().Width(width).Render(line)
}

func (p *listPage[T]) renderTable(width int) string {
	var b strings.Builder

	var headers []string
	for _, c := range p.cols {
		headers = append(headers, padCell(c.header, c.width))
	}
	b.WriteString(tableHeaderStyle.Render(strings.Join(headers, " ")))
	b.WriteString("\n")

	rows := p.mgr.Page()
	for i, row := range rows {
		var cells []string
		for _, c := range p.cols {
			cells = append(cells, padCell(c.value(row), c.width))
		}
		line := strings.Join(cells, " ")
		if i == p.cursor {
			line = selectedRowStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	if len(rows) == 0 {
		b.WriteString(noticeStyle.Render("No records"))
		b.WriteString("\n")
	}
	return b.String()
}

func (p *listPage[T]) renderStatusLine(width int) string {
	left := fmt.Sprintf("Page %d of %d (%d records)",
		p.mgr.PageNumber(), p.mgr.TotalPages(), p.mgr.Len())

	hints := []string{"/: Search", "f: Filter", "←/→: Page", "r: Refresh"}
	if p.detail != nil {
		hints = append(hints, "Enter: Details")
	}
	if p.editForm != nil {
		hints = append(hints, "e: Edit")
	}
	if p.remove != nil {
		hints = append(hints, "d: Delete")
	}
	if p.exporter != nil {
		hints = append(hints, "x: Export")
	}
	hints = append(hints, "q: Quit")

	line := left + "  " + strings.Join(hints, " • ")
	return statusLineStyle.Width(width).Render(line)
}

// padCell fits a value into a fixed-width cell.
func padCell(s string, width int) string {
	runes := []rune(s)
	if len(runes) > width {
		if width <= 1 {
			return string(runes[:width])
		}
		return string(runes[:width-1]) + "…"
	}
	return s + strings.Repeat(" ", width-len(runes))
}
