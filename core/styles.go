package core

import "github.com/charmbracelet/lipgloss"

// Palette roles. Bars sit on the darker base; the toolbar row and the status
// line share the raised surface so tunnelled content reads as part of the
// header.
var (
	colorText    = lipgloss.Color("#cdd6f4")
	colorSubtle  = lipgloss.Color("#9399b2")
	colorRule    = lipgloss.Color("#585b70")
	colorAccent  = lipgloss.Color("#89b4fa")
	colorOK      = lipgloss.Color("#a6e3a1")
	colorFailure = lipgloss.Color("#f38ba8")
	colorBase    = lipgloss.Color("#181825")
	colorRaised  = lipgloss.Color("#313244")
)

var (
	appStyle = lipgloss.NewStyle().Foreground(colorText)

	headerBarStyle   = lipgloss.NewStyle().Foreground(colorText).Background(colorBase)
	headerTitleStyle = lipgloss.NewStyle().Foreground(colorAccent).Background(colorBase).Bold(true)
	tabRuleStyle     = lipgloss.NewStyle().Foreground(colorRule).Background(colorBase)
	tabOnStyle       = lipgloss.NewStyle().Foreground(colorAccent).Background(colorRaised).Bold(true).Padding(0, 1)
	tabOffStyle      = lipgloss.NewStyle().Foreground(colorSubtle).Background(colorBase).Padding(0, 1)

	toolbarStyle      = lipgloss.NewStyle().Foreground(colorText).Background(colorRaised)
	statusBarStyle    = lipgloss.NewStyle().Foreground(colorOK).Background(colorRaised)
	statusErrBarStyle = lipgloss.NewStyle().Foreground(colorFailure).Background(colorRaised).Bold(true)

	footerStyle     = lipgloss.NewStyle().Foreground(colorRule).Background(colorBase)
	footerKeyStyle  = lipgloss.NewStyle().Foreground(colorAccent).Background(colorBase).Bold(true)
	footerDescStyle = lipgloss.NewStyle().Foreground(colorSubtle).Background(colorBase)

	helpTitleStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
)
