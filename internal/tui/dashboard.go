package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kelola-aset/kelola/internal/apiclient"
	"github.com/kelola-aset/kelola/internal/model"
)

// conditionCount is one bar of the dashboard condition chart.
type conditionCount struct {
	Label string
	Count int
}

// dashboardPage summarizes the asset inventory: counts per condition
// as a bar chart plus quick navigation to the list screens.
type dashboardPage struct {
	client  *apiclient.Client
	user    string
	loading bool
	seq     int
	counts  []conditionCount
	total   int
	errText string
}

func newDashboardPage(client *apiclient.Client, userName string) *dashboardPage {
	return &dashboardPage{client: client, user: userName}
}

func (p *dashboardPage) ID() string { return PageDashboard }

func (p *dashboardPage) Init() tea.Cmd {
	p.seq++
	p.loading = true
	p.errText = ""
	seq := p.seq
	client := p.client
	fetch := func() tea.Msg {
		assets, err := client.FetchAssets(context.Background())
		return authGuard(err, rowsLoadedMsg[model.Asset]{page: PageDashboard, seq: seq, rows: assets, err: err})
	}
	return tea.Batch(fetch, spinnerTick())
}

func (p *dashboardPage) Update(msg tea.Msg) (tea.Cmd, *PageNav) {
	switch msg := msg.(type) {
	case rowsLoadedMsg[model.Asset]:
		if msg.page != PageDashboard || msg.seq != p.seq {
			return nil, nil
		}
		p.loading = false
		if msg.err != nil {
			p.errText = msg.err.Error()
			return nil, nil
		}
		p.setAssets(msg.rows)
		return nil, nil

	case SpinnerTickMsg:
		if p.loading {
			return spinnerTick(), nil
		}
		return nil, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return tea.Quit, nil
		case "r":
			return p.Init(), nil
		}
		if target := navTarget(msg.String()); target != "" && target != PageDashboard {
			return nil, &PageNav{PageID: target}
		}
	}
	return nil, nil
}

func (p *dashboardPage) setAssets(assets []model.Asset) {
	byCondition := make(map[string]int)
	order := []string{}
	for _, a := range assets {
		cond := a.Condition
		if cond == "" {
			cond = "N/A"
		}
		if _, seen := byCondition[cond]; !seen {
			order = append(order, cond)
		}
		byCondition[cond]++
	}

	p.counts = p.counts[:0]
	for _, cond := range order {
		p.counts = append(p.counts, conditionCount{Label: cond, Count: byCondition[cond]})
	}
	p.total = len(assets)
}

func (p *dashboardPage) View(width, height int) string {
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}

	title := titleStyle.Render("Kelola Aset — Dashboard")
	if p.user != "" {
		title += "  " + lipgloss.NewStyle().Foreground(ColorGray).Render(p.user)
	}

	var body string
	switch {
	case p.loading && p.total == 0:
		body = renderLoadingPlaceholder(width, height-4)
	case p.errText != "":
		body = errorStyle.Render(p.errText)
	default:
		body = p.renderChart(width)
	}

	nav := statusLineStyle.Width(width).Render(
		"1: Aset • 2: Rencana • 3: Pelihara • 4: Riwayat • 5: Fasilitas • r: Refresh • q: Quit")

	return lipgloss.JoinVertical(lipgloss.Left, title, "", body, "", nav)
}

func (p *dashboardPage) renderChart(width int) string {
	if len(p.counts) == 0 {
		return noticeStyle.Render("No assets registered")
	}

	chartWidth := width - 30
	if chartWidth < 20 {
		chartWidth = 20
	}
	bc := barchart.New(chartWidth, 8,
		barchart.WithBarGap(1),
		barchart.WithBarWidth(3),
		barchart.WithNoAxis(),
	)

	for _, c := range p.counts {
		style := lipgloss.NewStyle().
			Foreground(statusColor(c.Label)).
			Background(statusColor(c.Label))
		bc.Push(barchart.BarData{
			Label: "",
			Values: []barchart.BarValue{
				{Name: c.Label, Value: float64(c.Count), Style: style},
			},
		})
	}
	bc.Draw()

	var legend []string
	legend = append(legend, tableHeaderStyle.Render(fmt.Sprintf("Total aset: %d", p.total)))
	for _, c := range p.counts {
		dot := lipgloss.NewStyle().Foreground(statusColor(c.Label)).Render("●")
		legend = append(legend, fmt.Sprintf("%s %s: %d", dot, c.Label, c.Count))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		bc.View(),
		"  ",
		strings.Join(legend, "\n"),
	)
}
