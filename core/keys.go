package core

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyBinding maps keys to a named action inside a set of scopes.
type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string
}

// Binding converts b to a bubbles binding. The first key is shown in help.
func (b KeyBinding) Binding() key.Binding {
	if len(b.Keys) == 0 {
		return key.NewBinding(key.WithDisabled())
	}
	return key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(b.Keys[0], b.Description))
}

func (b KeyBinding) Help() key.Help {
	return b.Binding().Help()
}

type KeyRegistry struct {
	bindings []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	return &KeyRegistry{bindings: slices.Clone(bindings)}
}

func (r *KeyRegistry) Register(binding KeyBinding) {
	r.bindings = append(r.bindings, binding)
}

// BindingsForScope returns the bindings active in scope, in registration order.
func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	return slices.DeleteFunc(slices.Clone(r.bindings), func(b KeyBinding) bool {
		return !scopeMatch(scope, b.Scopes)
	})
}

// HelpBindings returns the enabled bubbles bindings for scope.
func (r *KeyRegistry) HelpBindings(scope string) []key.Binding {
	var out []key.Binding
	for _, b := range r.BindingsForScope(scope) {
		if kb := b.Binding(); kb.Enabled() {
			out = append(out, kb)
		}
	}
	return out
}

func (r *KeyRegistry) IsAction(msg tea.KeyMsg, action, scope string) bool {
	for _, b := range r.bindings {
		if b.Action == action && scopeMatch(scope, b.Scopes) && key.Matches(msg, b.Binding()) {
			return true
		}
	}
	return false
}

// scopeMatch treats "*" as global and "tab:x" as matching "tab:x" and any
// nested scope such as "tab:x/screen".
func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	return slices.ContainsFunc(scopes, func(s string) bool {
		return s == "*" || s == scope || strings.HasPrefix(scope, s+"/")
	})
}
