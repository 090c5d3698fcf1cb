package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/tunnel/core"
	"github.com/jask/tunnel/tunnel"
	"github.com/jask/tunnel/widgets"
)

const editorScope = "tab:editor"

// EditorTab keeps one long-lived producer and pushes changes into it
// directly instead of redeclaring it every frame.
type EditorTab struct {
	file     string
	modified bool
	saves    int
	source   *tunnel.In
}

func NewEditorTab(file string) *EditorTab {
	return &EditorTab{file: file}
}

func (t *EditorTab) ID() string    { return "editor" }
func (t *EditorTab) Title() string { return "Editor" }
func (t *EditorTab) Scope() string { return editorScope }

func (t *EditorTab) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	keys := m.Keys()
	switch {
	case keys.IsAction(km, "editor-edit", editorScope):
		t.modified = true
	case keys.IsAction(km, "editor-save", editorScope):
		if !t.modified {
			return core.StatusCmd("Nothing to save")
		}
		t.modified = false
		t.saves++
		t.publish(m)
		return core.StatusCmd("Saved " + t.file)
	default:
		return nil
	}
	t.publish(m)
	return nil
}

func (t *EditorTab) Build(m *core.Model) widgets.Widget {
	state := "clean"
	if t.modified {
		state = "modified"
	}
	return widgets.Box{
		Title: t.file,
		Body:  widgets.Text("Buffer is " + state + ".\nPress e to edit, s to save."),
	}
}

func (t *EditorTab) Sites(m *core.Model) []core.Node {
	return []core.Node{{Key: "toolbar", Site: t.producer(m)}}
}

func (t *EditorTab) producer(m *core.Model) *tunnel.In {
	if t.source == nil || t.source.Tunnel() != m.Toolbar() {
		t.source = tunnel.NewIn(m.Toolbar(), t.toolbar())
	}
	return t.source
}

func (t *EditorTab) publish(m *core.Model) {
	t.producer(m).SetContent(t.toolbar())
}

func (t *EditorTab) toolbar() widgets.Widget {
	line := "editing " + t.file
	if t.modified {
		line += " [+]"
	}
	return widgets.Text(line)
}
