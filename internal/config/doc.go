// Package config supplies the hotkey engine with its shortcut definitions.
//
// A Source yields an ordered list of Hotkey entries (name, spellings,
// optional scope name). The engine reads its Source exactly once, on first
// use; there is no reload.
//
// Files are parsed by the loader sub-package. The format follows the file
// extension:
//
//	# hotkeys.toml
//	[[hotkey]]
//	name = "save"
//	keys = ["ctrl+s", "meta+s"]
//
//	# hotkeys.yaml
//	hotkeys:
//	  save: [ctrl+s, meta+s]
//
//	// hotkeys.json
//	{"hotkeys": {"save": ["ctrl+s", "meta+s"]}}
//
// The file path defaults to $HOTKEYS_CONFIG when no path is given
// explicitly; when neither is set the built-in Defaults are used.
package config
