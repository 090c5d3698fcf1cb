package app

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/tunnel/core"
	"github.com/jask/tunnel/tunnel"
	"github.com/jask/tunnel/widgets"
)

const inboxScope = "tab:inbox"

type Message struct {
	From    string
	Subject string
	Body    string
	Unread  bool
}

func SampleMessages() []Message {
	return []Message{
		{From: "ops", Subject: "Deploy window moved", Body: "The Thursday deploy moves to 14:00.", Unread: true},
		{From: "billing", Subject: "Invoice #2231", Body: "Your invoice is ready.", Unread: true},
		{From: "ana", Subject: "Lunch?", Body: "Ramen at noon?"},
	}
}

// InboxTab lists messages and publishes a summary of the selection into the
// app toolbar. It declares a fresh producer each frame; the mount tree folds
// it into the mounted one.
type InboxTab struct {
	messages []Message
	selected int
}

func NewInboxTab(messages []Message) *InboxTab {
	return &InboxTab{messages: messages}
}

func (t *InboxTab) ID() string    { return "inbox" }
func (t *InboxTab) Title() string { return "Inbox" }
func (t *InboxTab) Scope() string { return inboxScope }

func (t *InboxTab) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok || len(t.messages) == 0 {
		return nil
	}
	keys := m.Keys()
	switch {
	case keys.IsAction(km, "inbox-down", inboxScope):
		t.selected = min(t.selected+1, len(t.messages)-1)
	case keys.IsAction(km, "inbox-up", inboxScope):
		t.selected = max(t.selected-1, 0)
	case keys.IsAction(km, "inbox-toggle-read", inboxScope):
		msg := &t.messages[t.selected]
		msg.Unread = !msg.Unread
		if msg.Unread {
			return core.StatusCmd("Marked unread: " + msg.Subject)
		}
		return core.StatusCmd("Marked read: " + msg.Subject)
	}
	return nil
}

func (t *InboxTab) Build(m *core.Model) widgets.Widget {
	list := make([]string, 0, len(t.messages))
	for i, msg := range t.messages {
		cursor := "  "
		if i == t.selected {
			cursor = "> "
		}
		mark := " "
		if msg.Unread {
			mark = "*"
		}
		list = append(list, fmt.Sprintf("%s%s %-8s %s", cursor, mark, msg.From, msg.Subject))
	}
	preview := widgets.Text("No message selected")
	if sel, ok := t.Selected(); ok {
		preview = widgets.Text(sel.Subject + "\n\n" + sel.Body)
	}
	return widgets.HStack{
		Widgets: []widgets.Widget{
			widgets.Box{Title: "Messages", Body: widgets.Text(strings.Join(list, "\n")), Focused: true},
			widgets.Box{Title: "Preview", Body: preview},
		},
		Ratios: []float64{0.55, 0.45},
		Gap:    1,
	}
}

func (t *InboxTab) Sites(m *core.Model) []core.Node {
	return []core.Node{{Key: "toolbar", Site: tunnel.NewIn(m.Toolbar(), widgets.Text(t.Summary()))}}
}

// Summary is the toolbar line for the current state.
func (t *InboxTab) Summary() string {
	unread := 0
	for _, msg := range t.messages {
		if msg.Unread {
			unread++
		}
	}
	line := fmt.Sprintf("%d messages · %d unread", len(t.messages), unread)
	if sel, ok := t.Selected(); ok {
		line += " · " + sel.Subject
	}
	return line
}

func (t *InboxTab) Selected() (Message, bool) {
	if t.selected < 0 || t.selected >= len(t.messages) {
		return Message{}, false
	}
	return t.messages[t.selected], true
}
