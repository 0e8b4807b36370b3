// Package keymap holds the hotkey registry: named shortcuts, their
// canonical key combinations, their default scope element and the
// bindings of listeners currently attached to them.
//
// # Key Concepts
//
// Shortcut: A named hotkey with one or more Combinations. Every
// Combination is a synonym; pressing any of them triggers the shortcut.
//
// Binding: One entry per active listener. Bindings are appended when a
// listener starts and removed by identity when it stops.
//
// Registry: Ordered collection of shortcuts. Registration order is
// significant because Match returns the first shortcut holding the
// pressed combination.
//
// # Matching
//
// When two shortcuts share a combination, the one registered first
// always wins. The later one is shadowed and can never be pressed;
// Conflicts reports such pairs.
//
//	reg := keymap.NewRegistry()
//	reg.Register("save", []string{"ctrl+s"}, root)
//	reg.Register("search", []string{"ctrl+s", "ctrl+f"}, root)
//
//	sc, _ := reg.Match(key.FromIdentifiers(key.Control, "s")) // "save"
package keymap
