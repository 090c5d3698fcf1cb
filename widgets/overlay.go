package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// RenderPopup draws popup inside a rounded card centred over base.
func RenderPopup(base, popup string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	canvas := splitToLines(base, height)
	for i := range canvas {
		canvas[i] = PadRight(canvas[i], width)
	}
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 2).
		Render(popup)
	cardLines := strings.Split(card, "\n")
	cardWidth := maxLineWidth(cardLines)
	if cardWidth == 0 {
		return strings.Join(canvas, "\n")
	}
	x := max(0, (width-cardWidth)/2)
	y := max(0, (height-len(cardLines))/2)
	for i, line := range cardLines {
		row := y + i
		if row >= height {
			break
		}
		left := PadRight(canvas[row], x)
		right := dropColumns(canvas[row], x+cardWidth)
		canvas[row] = PadRight(left+PadRight(line, cardWidth)+right, width)
	}
	return strings.Join(canvas, "\n")
}

func dropColumns(s string, cols int) string {
	if cols <= 0 {
		return s
	}
	return strings.TrimPrefix(s, ansi.Truncate(s, cols, ""))
}
