package core

import (
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/tunnel/tunnel"
	"github.com/jask/tunnel/widgets"
)

// Tab is one top-level page. Build renders its body; Sites declares the tunnel
// sites the model keeps mounted while the tab is active.
type Tab interface {
	ID() string
	Title() string
	Scope() string
	Update(m *Model, msg tea.Msg) tea.Cmd
	Build(m *Model) widgets.Widget
	// Sites lists the tunnel sites to keep mounted while the tab is active.
	Sites(m *Model) []Node
}

// TabInitializer is implemented by tabs that need a command on startup.
type TabInitializer interface {
	InitTab(m *Model) tea.Cmd
}

// Options configures NewModel. Zero values fall back to a 100x32 view, the
// first tab, an unbuffered toolbar tunnel and a discarding logger.
type Options struct {
	StartTab      string
	Width         int
	Height        int
	ReplayToolbar bool
	Logger        *slog.Logger
}

const (
	toolbarKey         = "app:toolbar"
	toolbarPresenceKey = "app:toolbar-presence"
)

// Model is the bubbletea model. It owns the toolbar tunnel and the mount tree
// that keeps the active tab's sites attached.
type Model struct {
	width     int
	height    int
	tabs      []Tab
	activeTab int
	screens   ScreenStack
	keys      *KeyRegistry
	status    string
	statusErr bool
	quitting  bool
	err       error

	tree            *MountTree
	toolbar         *tunnel.Tunnel
	toolbarOut      *tunnel.Out
	toolbarPresence *tunnel.Presence
	log             *slog.Logger
}

// NewModel builds the application model. Nothing is mounted until Init.
func NewModel(tabs []Tab, keys *KeyRegistry, opts Options) Model {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if keys == nil {
		keys = NewKeyRegistry(DefaultKeyBindings())
	}
	tunnelOpts := []tunnel.Option{tunnel.WithName("toolbar"), tunnel.WithLogger(log)}
	if opts.ReplayToolbar {
		tunnelOpts = append(tunnelOpts, tunnel.WithReplay())
	}
	toolbar := tunnel.New(tunnelOpts...)
	m := Model{
		tabs:            tabs,
		keys:            keys,
		status:          "Ready",
		width:           100,
		height:          32,
		tree:            NewMountTree(log),
		toolbar:         toolbar,
		toolbarOut:      tunnel.NewOut(toolbar),
		toolbarPresence: tunnel.NewPresence(toolbar),
		log:             log,
	}
	if opts.Width > 0 {
		m.width = opts.Width
	}
	if opts.Height > 0 {
		m.height = opts.Height
	}
	for i, t := range tabs {
		if t.ID() == opts.StartTab {
			m.activeTab = i
		}
	}
	return m
}

func (m Model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.tabs)+1)
	for _, t := range m.tabs {
		if initTab, ok := t.(TabInitializer); ok {
			if cmd := initTab.InitTab(&m); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}
	if err := m.commit(); err != nil {
		cmds = append(cmds, func() tea.Msg { return CommitFailedMsg{Err: err} })
	}
	return tea.Batch(cmds...)
}

// Toolbar is the tunnel rendered under the header. Tabs publish into it with
// tunnel.In sites.
func (m *Model) Toolbar() *tunnel.Tunnel {
	return m.toolbar
}

func (m *Model) Keys() *KeyRegistry {
	return m.keys
}

// MountTree exposes the host tree, mainly for inspection in tests.
func (m *Model) MountTree() *MountTree {
	return m.tree
}

func (m *Model) SetStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) SetError(err error) {
	if err == nil {
		m.status = ""
		m.statusErr = false
		return
	}
	m.status = err.Error()
	m.statusErr = true
}

// Err returns the fatal error that stopped the program, if any.
func (m Model) Err() error {
	return m.err
}

// Close detaches every mounted site.
func (m Model) Close() {
	m.tree.Teardown()
}

func (m Model) ActiveScope() string {
	if top := m.screens.Top(); top != nil {
		return top.Scope()
	}
	if len(m.tabs) == 0 {
		return "app"
	}
	return m.tabs[m.activeTab].Scope()
}

func (m Model) ActiveTab() Tab {
	if len(m.tabs) == 0 {
		return nil
	}
	return m.tabs[m.activeTab]
}

func (m *Model) SwitchTab(index int) {
	if index < 0 || index >= len(m.tabs) {
		return
	}
	m.activeTab = index
}

func (m *Model) PushScreen(s Screen) {
	m.screens.Push(s)
}

// commit mounts the app-level toolbar consumers plus the active tab's sites.
func (m *Model) commit() error {
	nodes := []Node{
		{Key: toolbarKey, Site: m.toolbarOut},
		{Key: toolbarPresenceKey, Site: m.toolbarPresence},
	}
	if tab := m.ActiveTab(); tab != nil {
		for _, n := range tab.Sites(m) {
			n.Key = "tab:" + tab.ID() + "/" + n.Key
			nodes = append(nodes, n)
		}
	}
	err := m.tree.Commit(nodes)
	// bubbletea redraws the full view after every Update; dirty keys are
	// only logged.
	if dirty := m.tree.Dirty(); len(dirty) > 0 {
		m.log.Debug("commit: invalidated", "keys", dirty)
	}
	m.tree.ClearDirty()
	return err
}

func (m *Model) fail(err error) {
	m.log.Error("fatal mount error", "error", err)
	m.err = err
	m.SetError(err)
	m.quitting = true
}
