package widgets

import "strings"

// Widget is anything that can draw itself into a width x height cell area.
// A nil Widget renders nothing.
type Widget interface {
	Render(width, height int) string
}

// Render draws w, treating nil as empty content.
func Render(w Widget, width, height int) string {
	if w == nil || width <= 0 || height <= 0 {
		return ""
	}
	return w.Render(width, height)
}

// Text is a plain multi-line string clipped to the render area.
type Text string

func (t Text) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := strings.Split(string(t), "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for i := range lines {
		lines[i] = truncate(lines[i], width)
	}
	return strings.Join(lines, "\n")
}

// Func adapts a render function to the Widget interface.
type Func func(width, height int) string

func (f Func) Render(width, height int) string {
	if f == nil {
		return ""
	}
	return f(width, height)
}
