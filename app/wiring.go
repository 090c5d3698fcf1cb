package app

import (
	"github.com/jask/tunnel/core"
)

// Tabs returns the demo tabs in display order.
func Tabs() []core.Tab {
	return []core.Tab{
		NewInboxTab(SampleMessages()),
		NewEditorTab("notes.md"),
		NewAboutTab(),
	}
}

// KeyBindings returns the tab-scoped bindings used by the demo tabs.
func KeyBindings() []core.KeyBinding {
	return []core.KeyBinding{
		{Keys: []string{"j", "down"}, Action: "inbox-down", Description: "next", Scopes: []string{inboxScope}},
		{Keys: []string{"k", "up"}, Action: "inbox-up", Description: "prev", Scopes: []string{inboxScope}},
		{Keys: []string{"r"}, Action: "inbox-toggle-read", Description: "read/unread", Scopes: []string{inboxScope}},
		{Keys: []string{"e"}, Action: "editor-edit", Description: "edit", Scopes: []string{editorScope}},
		{Keys: []string{"s"}, Action: "editor-save", Description: "save", Scopes: []string{editorScope}},
	}
}
