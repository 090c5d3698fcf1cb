package core

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/jask/tunnel/widgets"
)

const appTitle = "tunneldemo"

// View stacks the one-row bars around the active tab's body. The toolbar row
// is only part of the stack while the toolbar tunnel carries content.
func (m Model) View() string {
	if m.quitting {
		if m.err != nil {
			return "Error: " + m.err.Error() + "\n"
		}
		return "Goodbye\n"
	}
	width, height := max(1, m.width), max(1, m.height)

	rows := []widgets.Widget{widgets.Text(renderHeader(m))}
	if toolbar := RenderToolbar(m); toolbar != "" {
		rows = append(rows, widgets.Text(toolbar))
	}
	rows = append(rows, widgets.Text(RenderStatusBar(m)), widgets.Func(m.renderBody), widgets.Text(RenderFooter(m)))

	fixed := make([]int, len(rows))
	for i := range fixed {
		fixed[i] = 1
	}
	fixed[len(rows)-2] = 0

	view := widgets.VStack{Widgets: rows, Fixed: fixed}.Render(width, height)
	return appStyle.Width(width).MaxWidth(width).Render(view)
}

// renderBody draws the active tab with the top screen, if any, over it.
func (m Model) renderBody(width, height int) string {
	var body string
	if tab := m.ActiveTab(); tab != nil {
		body = widgets.Render(tab.Build(&m), width, height)
	}
	if screen := m.screens.Top(); screen != nil {
		body = widgets.RenderPopup(body, screen.View(max(20, width-12), max(4, height-4)), width, height)
	}
	return body
}

// RenderToolbar draws whatever the active tab tunnels into the toolbar. The
// row disappears when no content is published.
func RenderToolbar(m Model) string {
	if !m.toolbarPresence.Present() {
		return ""
	}
	width := max(1, m.width)
	line := m.toolbarOut.Render(max(1, width-2), 1)
	return renderBar(toolbarStyle, width, " "+line)
}

// renderHeader draws the app title on the left and the tab strip on the right.
func renderHeader(m Model) string {
	width := max(1, m.width)
	labels := make([]string, len(m.tabs))
	for i, t := range m.tabs {
		style := tabOffStyle
		if i == m.activeTab {
			style = tabOnStyle
		}
		labels[i] = style.Render(fmt.Sprintf("%d:%s", i+1, t.Title()))
	}
	title := headerTitleStyle.Render(" " + appTitle)
	strip := ansi.Truncate(strings.Join(labels, tabRuleStyle.Render("│")), width, "")
	gap := max(1, width-ansi.StringWidth(title)-ansi.StringWidth(strip))
	return renderBar(headerBarStyle, width, title+headerBarStyle.Render(strings.Repeat(" ", gap))+strip)
}
