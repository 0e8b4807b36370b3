// Package key provides key identifiers, combination parsing and the live
// key-press set for the hotkey engine.
//
// This package defines the fundamental types for representing keyboard input:
//
//   - Identifier: a lowercase token naming a physical key ("control", "k")
//   - Combination: a sorted list of identifiers, one spelling of a shortcut
//   - Event: a raw key-down/key-up with its element propagation path
//   - PressSet: the set of keys currently held down
//
// # Combination Spellings
//
// Spellings join key names with "+" in any order and any case:
//
//	"Ctrl+K", "k+ctrl", "CONTROL+k"  -> [control k]
//	"Esc"                             -> [escape]
//	"Shift+Up"                        -> [arrowup shift]
//
// A small fixed alias table maps common short names onto the identifiers
// hosts report; other names pass through lowercased. Sorting makes the
// result independent of the order the keys were written in.
package key
