package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/tunnel/core"
	"github.com/jask/tunnel/widgets"
)

// AboutTab publishes nothing, so the toolbar row disappears while it is
// active.
type AboutTab struct{}

func NewAboutTab() *AboutTab { return &AboutTab{} }

func (t *AboutTab) ID() string                                { return "about" }
func (t *AboutTab) Title() string                             { return "About" }
func (t *AboutTab) Scope() string                             { return "tab:about" }
func (t *AboutTab) Update(m *core.Model, msg tea.Msg) tea.Cmd { return nil }
func (t *AboutTab) Sites(m *core.Model) []core.Node           { return nil }

func (t *AboutTab) Build(m *core.Model) widgets.Widget {
	return widgets.Box{
		Title: "About",
		Body: widgets.Text("Each tab renders its own toolbar into the header through a tunnel.\n" +
			"This tab has none, so the toolbar row is hidden."),
	}
}
