package config

import (
	"strings"

	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// Export renders hotkeys as an indented JSON document readable by the JSON
// loader. Entries without a scope are written as a plain spelling list.
// Later entries reusing a name are dropped, as registration ignores them.
func Export(hotkeys []Hotkey) ([]byte, error) {
	doc := []byte(`{"hotkeys":{}}`)
	seen := make(map[string]bool, len(hotkeys))
	var err error
	for _, h := range hotkeys {
		if seen[h.Name] {
			continue
		}
		seen[h.Name] = true

		path := "hotkeys." + escapePath(h.Name)
		keys := h.Keys
		if keys == nil {
			keys = []string{}
		}
		if h.Scope == "" {
			doc, err = sjson.SetBytes(doc, path, keys)
		} else {
			doc, err = sjson.SetBytes(doc, path, map[string]any{"keys": keys, "scope": h.Scope})
		}
		if err != nil {
			return nil, err
		}
	}
	return pretty.PrettyOptions(doc, &pretty.Options{Width: 80, Indent: "  "}), nil
}

// escapePath escapes sjson path metacharacters in a single key.
func escapePath(key string) string {
	var b strings.Builder
	for _, r := range key {
		switch r {
		case '.', '*', '?', '|', '#', '@', '\\', ':', '!', '=', '<', '>', '%':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
