package widgets

import (
	"math"
	"strings"
)

// VStack stacks widgets top to bottom. Fixed holds an exact row count per
// widget; a zero entry means the widget shares the remaining rows by Ratios.
type VStack struct {
	Widgets []Widget
	Fixed   []int
	Ratios  []float64
	Spacing int
}

func (v VStack) Render(width, height int) string {
	if len(v.Widgets) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	heights := v.heights(height)
	lines := make([]string, 0, height)
	for i, w := range v.Widgets {
		if heights[i] <= 0 {
			continue
		}
		if len(lines) > 0 {
			for s := 0; s < v.Spacing; s++ {
				lines = append(lines, "")
			}
		}
		lines = append(lines, splitToLines(Render(w, width, heights[i]), heights[i])...)
	}
	return FitHeight(strings.Join(lines, "\n"), height)
}

func (v VStack) heights(height int) []int {
	n := len(v.Widgets)
	out := make([]int, n)
	remaining := height - max(0, v.Spacing*(n-1))
	flex := make([]int, 0, n)
	ratios := make([]float64, 0, n)
	for i := range v.Widgets {
		if i < len(v.Fixed) && v.Fixed[i] > 0 {
			out[i] = min(v.Fixed[i], max(0, remaining))
			remaining -= out[i]
			continue
		}
		flex = append(flex, i)
		if i < len(v.Ratios) {
			ratios = append(ratios, v.Ratios[i])
		}
	}
	if len(flex) == 0 || remaining <= 0 {
		return out
	}
	if len(ratios) != len(flex) {
		ratios = nil
	}
	for j, h := range splitSizes(remaining, len(flex), ratios) {
		out[flex[j]] = h
	}
	return out
}

// HStack places widgets side by side, splitting width by Ratios.
type HStack struct {
	Widgets []Widget
	Ratios  []float64
	Gap     int
}

func (h HStack) Render(width, height int) string {
	if len(h.Widgets) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	usable := max(1, width-max(0, h.Gap*(len(h.Widgets)-1)))
	widths := splitSizes(usable, len(h.Widgets), h.Ratios)
	columns := make([][]string, len(h.Widgets))
	for i, w := range h.Widgets {
		columns[i] = splitToLines(Render(w, max(1, widths[i]), height), height)
	}
	out := make([]string, height)
	gap := strings.Repeat(" ", h.Gap)
	for row := range out {
		cells := make([]string, len(columns))
		for i := range columns {
			cells[i] = PadRight(columns[i][row], widths[i])
		}
		out[row] = strings.Join(cells, gap)
	}
	return strings.Join(out, "\n")
}

func splitSizes(total, n int, ratios []float64) []int {
	if n <= 0 {
		return nil
	}
	out := make([]int, n)
	if len(ratios) != n {
		for i := range out {
			out[i] = total / n
		}
		for i := 0; i < total%n; i++ {
			out[i]++
		}
		return out
	}
	sum := 0.0
	for _, r := range ratios {
		if r <= 0 {
			r = 1
		}
		sum += r
	}
	used := 0
	for i, r := range ratios {
		if r <= 0 {
			r = 1
		}
		out[i] = int(math.Floor(r / sum * float64(total)))
		used += out[i]
	}
	for i := 0; used < total; i = (i + 1) % n {
		out[i]++
		used++
	}
	return out
}
