package widgets

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	boxBorder        = lipgloss.Color("#6c7086")
	boxFocusedBorder = lipgloss.Color("#a6e3a1")
	boxTitle         = lipgloss.Color("#cdd6f4")
)

type Box struct {
	Title   string
	Body    Widget
	Focused bool
}

func (b Box) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	border := boxBorder
	if b.Focused {
		border = boxFocusedBorder
	}
	innerW := max(1, width-4)
	innerH := max(1, height-2)
	body := ""
	if b.Title != "" {
		title := lipgloss.NewStyle().Foreground(boxTitle).Bold(true).Render(truncate("["+b.Title+"]", innerW))
		body = title
		innerH--
	}
	if content := Render(b.Body, innerW, innerH); content != "" {
		if body != "" {
			body += "\n"
		}
		body += content
	}
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(max(1, width-2)).
		Height(max(1, height-2)).
		MaxHeight(height)
	return style.Render(body)
}
