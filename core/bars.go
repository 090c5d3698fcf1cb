package core

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/tunnel/widgets"
)

// RenderFooter lists the key hints of the active scope.
func RenderFooter(m Model) string {
	width := max(1, m.width)
	h := help.New()
	h.Width = width
	h.ShortSeparator = "  "
	h.Styles.ShortKey = footerKeyStyle
	h.Styles.ShortDesc = footerDescStyle
	h.Styles.ShortSeparator = footerStyle
	h.Styles.Ellipsis = footerDescStyle

	line := h.ShortHelpView(m.keys.HelpBindings(m.ActiveScope()))
	if line == "" {
		line = footerDescStyle.Render("No shortcuts")
	}
	return renderBar(footerStyle, width, line)
}

func RenderStatusBar(m Model) string {
	msg := strings.TrimSpace(m.status)
	if msg == "" {
		msg = "Ready"
	}
	style := statusBarStyle
	if m.statusErr {
		style = statusErrBarStyle
	}
	return renderBar(style, max(1, m.width), msg)
}

// renderBar draws text as a single full-width row in style.
func renderBar(style lipgloss.Style, width int, text string) string {
	line := widgets.PadRight(strings.ReplaceAll(text, "\n", " "), width)
	return style.Width(width).MaxWidth(width).Render(line)
}
