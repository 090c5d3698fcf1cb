package core

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const helpScope = "screen:help"

// helpScreen lists every binding of the scope it was opened from.
type helpScreen struct {
	keys  *KeyRegistry
	scope string
}

func newHelpScreen(keys *KeyRegistry, scope string) Screen {
	return &helpScreen{keys: keys, scope: scope}
}

func (s *helpScreen) Title() string { return "Help" }
func (s *helpScreen) Scope() string { return helpScope }

func (s *helpScreen) Update(msg tea.Msg) (Screen, tea.Cmd, bool) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil, false
	}
	closing := s.keys.IsAction(km, "close", helpScope) || s.keys.IsAction(km, "help", helpScope)
	return s, nil, closing
}

func (s *helpScreen) View(width, height int) string {
	h := help.New()
	h.Width = width
	body := h.FullHelpView(helpColumns(s.keys, s.scope))
	lines := append([]string{helpTitleStyle.Render("Keys"), ""}, strings.Split(body, "\n")...)
	if len(lines) > height {
		lines = lines[:max(0, height)]
	}
	return strings.Join(lines, "\n")
}

// helpColumns splits bindings into columns of at most eight rows.
func helpColumns(keys *KeyRegistry, scope string) [][]key.Binding {
	const rows = 8
	var cols [][]key.Binding
	for bindings := keys.HelpBindings(scope); len(bindings) > 0; {
		n := min(rows, len(bindings))
		cols = append(cols, bindings[:n])
		bindings = bindings[n:]
	}
	return cols
}
