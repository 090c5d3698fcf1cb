package core

import (
	"slices"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeyRegistryScopeMatch(t *testing.T) {
	reg := NewKeyRegistry([]KeyBinding{
		{Keys: []string{"e"}, Action: "toggle", Scopes: []string{"tab:editor"}},
		{Keys: []string{"q"}, Action: "quit", Scopes: []string{"*"}},
	})
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'e'}}, "toggle", "tab:editor") {
		t.Fatalf("expected e in tab:editor")
	}
	if reg.IsAction(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'e'}}, "toggle", "tab:inbox") {
		t.Fatalf("did not expect e in tab:inbox")
	}
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, "quit", "tab:inbox") {
		t.Fatalf("expected q to match wildcard scope")
	}
}

func TestKeyRegistryNestedScope(t *testing.T) {
	reg := NewKeyRegistry([]KeyBinding{{Keys: []string{"j"}, Action: "down", Scopes: []string{"tab:inbox"}}})
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}, "down", "tab:inbox/list") {
		t.Fatalf("expected tab scope to cover nested scope")
	}
	if reg.IsAction(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}, "down", "tab:inboxes") {
		t.Fatalf("prefix without separator must not match")
	}
}

func TestApplyActionKeybindingsOverridesKeys(t *testing.T) {
	bindings := ApplyActionKeybindings(DefaultKeyBindings(), map[string][]string{"quit": {"x"}})
	byAction := DefaultKeybindingsByAction(bindings)
	if got := byAction["quit"]; len(got) != 1 || got[0] != "x" {
		t.Fatalf("quit keys = %v, want [x]", got)
	}
	if got := DefaultKeybindingsByAction(DefaultKeyBindings())["quit"]; got[0] != "q" {
		t.Fatalf("defaults must not be mutated, got %v", got)
	}
}

func TestKeyBindingHelp(t *testing.T) {
	h := KeyBinding{Keys: []string{"?", "f1"}, Description: "help"}.Help()
	if h.Key != "?" || h.Desc != "help" {
		t.Fatalf("unexpected help %+v", h)
	}
	if (KeyBinding{}).Help().Key != "" {
		t.Fatalf("expected empty help for binding without keys")
	}
}

func TestActionsAreDistinctAndSorted(t *testing.T) {
	got := Actions(append(DefaultKeyBindings(), KeyBinding{Keys: []string{"Q"}, Action: "quit"}))
	if !slices.IsSorted(got) {
		t.Fatalf("actions not sorted: %v", got)
	}
	if !slices.Contains(got, "switch-tab-3") || !slices.Contains(got, "close") {
		t.Fatalf("missing actions: %v", got)
	}
	if len(got) != len(DefaultKeyBindings()) {
		t.Fatalf("duplicate action listed: %v", got)
	}
}
