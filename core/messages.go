package core

import tea "github.com/charmbracelet/bubbletea"

// StatusMsg replaces the status line.
type StatusMsg struct {
	Text  string
	IsErr bool
}

type PushScreenMsg struct{ Screen Screen }

type PopScreenMsg struct{}

type TabSwitchMsg struct{ Index int }

// CommitFailedMsg reports a mount failure that happened outside Update.
type CommitFailedMsg struct{ Err error }

func StatusCmd(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}

// ErrorCmd shows err in the status line; a nil err clears it.
func ErrorCmd(err error) tea.Cmd {
	msg := StatusMsg{}
	if err != nil {
		msg = StatusMsg{Text: err.Error(), IsErr: true}
	}
	return func() tea.Msg { return msg }
}
