package ui

import "github.com/charmbracelet/lipgloss"

var (
	borderASCII = lipgloss.Border{
		Top:         "-",
		Bottom:      "-",
		Left:        "|",
		Right:       "|",
		TopLeft:     "+",
		TopRight:    "+",
		BottomLeft:  "+",
		BottomRight: "+",
	}

	panelStyle        = lipgloss.NewStyle().Border(borderASCII).BorderForeground(lipgloss.Color("238")).Padding(0, 1)
	welcomePanelStyle = panelStyle.BorderForeground(lipgloss.Color("1"))
	titleStyle        = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	subtitleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	mutedStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

	statusRunningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	statusFinalStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	statusEndingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	statusPausedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)

	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)

	progressFilledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	progressEmptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)

// Success formats a user-facing success message.
func Success(message string) string {
	return successStyle.Render(message)
}

// Error formats a user-facing error message.
func Error(message string) string {
	return errorStyle.Render("Error: ") + message
}
