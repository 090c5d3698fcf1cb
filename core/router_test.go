package core

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/jask/tunnel/widgets"
)

type countingTab struct{ keys int }

func (t *countingTab) ID() string                    { return "count" }
func (t *countingTab) Title() string                 { return "Count" }
func (t *countingTab) Scope() string                 { return "tab:count" }
func (t *countingTab) Build(m *Model) widgets.Widget { return widgets.Text("count") }
func (t *countingTab) Sites(m *Model) []Node         { return nil }
func (t *countingTab) Update(m *Model, msg tea.Msg) tea.Cmd {
	if _, ok := msg.(tea.KeyMsg); ok {
		t.keys++
	}
	return nil
}

type modal struct{ keys int }

func (s *modal) Title() string        { return "Modal" }
func (s *modal) Scope() string        { return "screen:modal" }
func (s *modal) View(int, int) string { return "modal body" }
func (s *modal) Update(msg tea.Msg) (Screen, tea.Cmd, bool) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil, false
	}
	s.keys++
	return s, nil, km.Type == tea.KeyEsc
}

func TestScreenStack(t *testing.T) {
	var s ScreenStack
	require.Nil(t, s.Pop())
	s.Push(nil)
	require.Zero(t, s.Len())

	a, b := &modal{}, &modal{}
	s.Push(a)
	s.Replace(b)
	require.Same(t, b, s.Top())
	require.Same(t, b, s.Pop())
	require.Zero(t, s.Len())
}

func TestModalTakesKeysUntilClosed(t *testing.T) {
	tab := &countingTab{}
	m := NewModel([]Tab{tab}, NewKeyRegistry(DefaultKeyBindings()), Options{})
	screen := &modal{}
	m.PushScreen(screen)
	require.Equal(t, "screen:modal", m.ActiveScope())

	next, _ := m.Update(runeKey("q"))
	m = next.(Model)
	require.Equal(t, 1, screen.keys, "modal sees keys first, even global ones")
	require.Zero(t, tab.keys)
	require.False(t, m.quitting)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	require.Zero(t, m.screens.Len())

	next, _ = m.Update(runeKey("x"))
	m = next.(Model)
	require.Equal(t, 1, tab.keys)
	require.Contains(t, m.View(), "count")
}

func TestHelpScreenOpensAndCloses(t *testing.T) {
	m := NewModel([]Tab{&countingTab{}}, NewKeyRegistry(DefaultKeyBindings()), Options{})
	next, _ := m.Update(runeKey("?"))
	m = next.(Model)
	require.Equal(t, helpScope, m.ActiveScope())
	require.Contains(t, m.View(), "Keys")

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	require.Zero(t, m.screens.Len())
}

func TestMessagesDriveScreensAndTabs(t *testing.T) {
	m := NewModel([]Tab{&countingTab{}, &toolbarTab{id: "two"}}, nil, Options{})

	next, _ := m.Update(PushScreenMsg{Screen: &modal{}})
	m = next.(Model)
	require.Equal(t, 1, m.screens.Len())

	next, _ = m.Update(PopScreenMsg{})
	m = next.(Model)
	require.Zero(t, m.screens.Len())

	next, _ = m.Update(TabSwitchMsg{Index: 1})
	m = next.(Model)
	require.Equal(t, "two", m.ActiveTab().ID())

	next, _ = m.Update(tea.WindowSizeMsg{Width: 50, Height: 9})
	m = next.(Model)
	require.Len(t, splitLines(m.View()), 9)
}

func TestCtrlCQuitsFromAnywhere(t *testing.T) {
	m := NewModel([]Tab{&countingTab{}}, nil, Options{})
	m.PushScreen(&modal{})
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	require.Equal(t, "Goodbye\n", next.View())
}
