package key

import "strings"

// Identifier is a lowercase token for a physical key, after alias
// normalization. Examples: "control", "escape", "arrowup", "k".
type Identifier string

// Common identifiers as reported by hosts.
const (
	Control    Identifier = "control"
	Shift      Identifier = "shift"
	Alt        Identifier = "alt"
	Meta       Identifier = "meta"
	Escape     Identifier = "escape"
	Enter      Identifier = "enter"
	Tab        Identifier = "tab"
	Backspace  Identifier = "backspace"
	Delete     Identifier = "delete"
	ArrowUp    Identifier = "arrowup"
	ArrowDown  Identifier = "arrowdown"
	ArrowLeft  Identifier = "arrowleft"
	ArrowRight Identifier = "arrowright"
)

// String returns the identifier text.
func (id Identifier) String() string {
	return string(id)
}

// aliasMap maps short spellings (lowercase) to identifiers.
var aliasMap = map[string]Identifier{
	"ctrl":  Control,
	"esc":   Escape,
	"up":    ArrowUp,
	"down":  ArrowDown,
	"left":  ArrowLeft,
	"right": ArrowRight,
}

// Alias lowercases a single key name and applies the alias table.
// Unknown names pass through unchanged apart from case.
func Alias(name string) Identifier {
	lower := strings.ToLower(name)
	if id, ok := aliasMap[lower]; ok {
		return id
	}
	return Identifier(lower)
}

// FromEvent lowercases a key name reported by a host. No aliasing is
// applied: hosts report canonical names such as "Control" or "ArrowUp".
func FromEvent(name string) Identifier {
	return Identifier(strings.ToLower(name))
}
