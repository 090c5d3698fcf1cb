package core

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Update routes msg and then commits the mounted sites, so tunnel content
// always reflects the state the message produced. A failed commit is fatal.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.route(msg)
	if next.quitting {
		return next, cmd
	}
	if err := next.commit(); err != nil {
		next.fail(err)
		return next, tea.Batch(cmd, tea.Quit)
	}
	return next, cmd
}

func (m Model) route(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case StatusMsg:
		m.status, m.statusErr = msg.Text, msg.IsErr
	case CommitFailedMsg:
		m.fail(msg.Err)
		return m, tea.Quit
	case PushScreenMsg:
		m.screens.Push(msg.Screen)
	case PopScreenMsg:
		m.screens.Pop()
	case TabSwitchMsg:
		m.SwitchTab(msg.Index)
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		if top := m.screens.Top(); top != nil {
			return m.updateScreen(top, msg)
		}
		if handled, cmd := m.globalKey(msg); handled {
			return m, cmd
		}
		return m.forward(msg)
	default:
		if top := m.screens.Top(); top != nil {
			return m.updateScreen(top, msg)
		}
		return m.forward(msg)
	}
	return m, nil
}

// globalKey handles the app-wide actions. It reports false for keys the
// active tab should see.
func (m *Model) globalKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	scope := m.ActiveScope()
	is := func(action string) bool { return m.keys.IsAction(msg, action, scope) }
	n := len(m.tabs)

	switch {
	case is("quit"):
		m.quitting = true
		return true, tea.Quit
	case is("help"):
		m.screens.Push(newHelpScreen(m.keys, scope))
		return true, nil
	case n > 0 && is("next-tab"):
		m.SwitchTab((m.activeTab + 1) % n)
		return true, nil
	case n > 0 && is("prev-tab"):
		m.SwitchTab((m.activeTab + n - 1) % n)
		return true, nil
	}
	for i := range m.tabs {
		if is(fmt.Sprintf("switch-tab-%d", i+1)) {
			m.SwitchTab(i)
			return true, nil
		}
	}
	return false, nil
}

func (m Model) forward(msg tea.Msg) (Model, tea.Cmd) {
	tab := m.ActiveTab()
	if tab == nil {
		return m, nil
	}
	cmd := tab.Update(&m, msg)
	return m, cmd
}

func (m Model) updateScreen(top Screen, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd, done := top.Update(msg)
	if done {
		m.screens.Pop()
	} else {
		m.screens.Replace(next)
	}
	return m, cmd
}
