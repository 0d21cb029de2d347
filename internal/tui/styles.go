package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	successStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)

// stateStyles colors the connection badge in the header.
var stateStyles = map[string]lipgloss.Style{
	"connected":        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
	"awaiting_pairing": lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
	"reconnecting":     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
	"terminated":       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
}
