package tui

import "github.com/charmbracelet/lipgloss"

// Shared color palette.
var (
	ColorNavy   = lipgloss.Color("#1A1B3A")
	ColorBlue   = lipgloss.Color("#4A9EFF")
	ColorGreen  = lipgloss.Color("#49E209")
	ColorYellow = lipgloss.Color("#FFD447")
	ColorOrange = lipgloss.Color("#FFAA00")
	ColorRed    = lipgloss.Color("#FF4444")
	ColorGray   = lipgloss.Color("#8A8A9E")
	ColorWhite  = lipgloss.Color("#F5F5FF")
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(ColorBlue).
			Bold(true)

	tableHeaderStyle = lipgloss.NewStyle().
				Foreground(ColorWhite).
				Bold(true)

	selectedRowStyle = lipgloss.NewStyle().
				Background(ColorNavy).
				Foreground(ColorWhite)

	statusLineStyle = lipgloss.NewStyle().
			Background(ColorNavy).
			Foreground(ColorWhite)

	noticeStyle = lipgloss.NewStyle().
			Foreground(ColorYellow)

	errorStyle = lipgloss.NewStyle().
			Foreground(ColorRed)

	sectionStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorGray)

	activeSectionStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(ColorBlue)
)

// statusColor maps a maintenance or asset status onto a display color.
func statusColor(status string) lipgloss.Color {
	switch status {
	case "Perbaikan berhasil", "Selesai", "Baik", "Aktif":
		return ColorGreen
	case "Perbaikan gagal", "Rusak":
		return ColorRed
	case "Perlu perbaikan", "Direncanakan", "Renovasi":
		return ColorOrange
	default:
		return ColorWhite
	}
}
