package tui

import tea "github.com/charmbracelet/bubbletea"

// Page represents a top-level screen in the TUI (login, dashboard, one
// of the collection lists).
type Page interface {
	ID() string
	Init() tea.Cmd
	Update(msg tea.Msg) (tea.Cmd, *PageNav)
	View(width, height int) string
}

// PageNav is returned from Update to request a page switch.
type PageNav struct {
	PageID string
	Params interface{}
}

// Page IDs. The digit keys on every list page navigate between these.
const (
	PageLogin       = "login"
	PageDashboard   = "dashboard"
	PageAssets      = "aset"
	PagePlans       = "rencana"
	PageMaintenance = "pelihara"
	PageHistory     = "riwayat"
	PageFacilities  = "fasilitas"
)

// navTarget resolves a digit key to a page, or "" when the key is not
// a navigation key.
func navTarget(key string) string {
	switch key {
	case "0":
		return PageDashboard
	case "1":
		return PageAssets
	case "2":
		return PagePlans
	case "3":
		return PageMaintenance
	case "4":
		return PageHistory
	case "5":
		return PageFacilities
	}
	return ""
}
