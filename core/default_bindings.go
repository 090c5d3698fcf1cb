package core

import (
	"fmt"
	"maps"
	"slices"
)

// DefaultKeyBindings are the app-wide bindings every tab shares.
func DefaultKeyBindings() []KeyBinding {
	global := []string{"*"}
	bindings := []KeyBinding{
		{Keys: []string{"q"}, Action: "quit", Description: "quit", Scopes: global},
		{Keys: []string{"?"}, Action: "help", Description: "help", Scopes: global},
		{Keys: []string{"tab"}, Action: "next-tab", Description: "next tab", Scopes: global},
		{Keys: []string{"shift+tab"}, Action: "prev-tab", Description: "prev tab", Scopes: global},
	}
	for i := 1; i <= 3; i++ {
		bindings = append(bindings, KeyBinding{
			Keys:        []string{fmt.Sprint(i)},
			Action:      fmt.Sprintf("switch-tab-%d", i),
			Description: fmt.Sprintf("tab %d", i),
			Scopes:      global,
		})
	}
	return append(bindings, KeyBinding{Keys: []string{"esc"}, Action: "close", Description: "close", Scopes: []string{helpScope}})
}

// ApplyActionKeybindings returns a copy of bindings in which every action
// named in overrides gets the override keys. Empty overrides are ignored.
func ApplyActionKeybindings(bindings []KeyBinding, overrides map[string][]string) []KeyBinding {
	out := make([]KeyBinding, len(bindings))
	for i, b := range bindings {
		b.Keys = slices.Clone(b.Keys)
		b.Scopes = slices.Clone(b.Scopes)
		if keys := overrides[b.Action]; len(keys) > 0 {
			b.Keys = slices.Clone(keys)
		}
		out[i] = b
	}
	return out
}

// DefaultKeybindingsByAction maps each action to the keys of its first
// binding, the shape used by the config file's keys table.
func DefaultKeybindingsByAction(bindings []KeyBinding) map[string][]string {
	out := make(map[string][]string, len(bindings))
	for _, b := range bindings {
		if b.Action == "" || len(b.Keys) == 0 {
			continue
		}
		if _, seen := out[b.Action]; !seen {
			out[b.Action] = slices.Clone(b.Keys)
		}
	}
	return out
}

// Actions lists the distinct action names of bindings, sorted.
func Actions(bindings []KeyBinding) []string {
	return slices.Sorted(maps.Keys(DefaultKeybindingsByAction(bindings)))
}
