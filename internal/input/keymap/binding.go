package keymap

import "github.com/dshills/hotkeys/internal/element"

// Binding records one active listener on a shortcut.
type Binding struct {
	// ID identifies the listener, typically its bus subscription ID.
	ID string

	// Ref is the listener's scope reference, resolved at delivery time.
	// A nil Ref means the shortcut's default scope.
	Ref element.Ref
}

// NewBinding creates a binding.
func NewBinding(id string, ref element.Ref) *Binding {
	return &Binding{ID: id, Ref: ref}
}
