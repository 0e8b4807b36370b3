package keymap

import (
	"slices"
	"strings"

	"github.com/dshills/hotkeys/internal/element"
	"github.com/dshills/hotkeys/internal/input/key"
)

// Shortcut is a named hotkey.
// Name, combinations and scope are fixed at registration; only the
// bindings change afterwards.
type Shortcut struct {
	name         string
	combinations []key.Combination
	scope        element.Element
	bindings     []*Binding
}

func newShortcut(name string, combos []key.Combination, scope element.Element) *Shortcut {
	return &Shortcut{
		name:         name,
		combinations: combos,
		scope:        scope,
	}
}

// Name returns the shortcut name.
func (s *Shortcut) Name() string {
	return s.name
}

// Combinations returns a copy of the shortcut's canonical combinations,
// in the order they were spelled.
func (s *Shortcut) Combinations() []key.Combination {
	out := make([]key.Combination, len(s.combinations))
	for i, c := range s.combinations {
		out[i] = slices.Clone(c)
	}
	return out
}

// Scope returns the default scope element.
func (s *Shortcut) Scope() element.Element {
	return s.scope
}

// Holds reports whether combo is one of the shortcut's combinations.
func (s *Shortcut) Holds(combo key.Combination) bool {
	return key.IndexOf(s.combinations, combo) >= 0
}

// Bind appends a binding.
func (s *Shortcut) Bind(b *Binding) {
	s.bindings = append(s.bindings, b)
}

// Unbind removes b by identity. Returns false if b was not bound.
func (s *Shortcut) Unbind(b *Binding) bool {
	for i, existing := range s.bindings {
		if existing == b {
			s.bindings = slices.Delete(s.bindings, i, i+1)
			return true
		}
	}
	return false
}

// Bindings returns a snapshot of the active bindings.
func (s *Shortcut) Bindings() []*Binding {
	return slices.Clone(s.bindings)
}

// BindingCount returns the number of active bindings.
func (s *Shortcut) BindingCount() int {
	return len(s.bindings)
}

// String returns "name [combo, combo]".
func (s *Shortcut) String() string {
	parts := make([]string, len(s.combinations))
	for i, c := range s.combinations {
		parts[i] = c.String()
	}
	return s.name + " [" + strings.Join(parts, ", ") + "]"
}
