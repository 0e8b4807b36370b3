package terminal

import (
	"strconv"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/hotkeys/internal/input/key"
)

// namedKeys maps tcell special keys to key identifiers.
var namedKeys = map[tcell.Key]key.Identifier{
	tcell.KeyEscape:     key.Escape,
	tcell.KeyEnter:      key.Enter,
	tcell.KeyTab:        key.Tab,
	tcell.KeyBackspace:  key.Backspace,
	tcell.KeyBackspace2: key.Backspace,
	tcell.KeyDelete:     key.Delete,
	tcell.KeyUp:         key.ArrowUp,
	tcell.KeyDown:       key.ArrowDown,
	tcell.KeyLeft:       key.ArrowLeft,
	tcell.KeyRight:      key.ArrowRight,
	tcell.KeyInsert:     "insert",
	tcell.KeyHome:       "home",
	tcell.KeyEnd:        "end",
	tcell.KeyPgUp:       "pageup",
	tcell.KeyPgDn:       "pagedown",
}

// KeyNames converts a terminal key event into the identifiers of the keys
// held for it: modifiers first, in a fixed order, then the key itself.
// It returns nil for keys with no identifier.
func KeyNames(ev *tcell.EventKey) []key.Identifier {
	mods := ev.Modifiers()
	var main key.Identifier

	switch k := ev.Key(); {
	case k == tcell.KeyRune:
		r := ev.Rune()
		switch {
		case r == ' ':
			main = "space"
		case unicode.IsUpper(r):
			mods |= tcell.ModShift
			main = key.Identifier(string(unicode.ToLower(r)))
		default:
			main = key.Identifier(string(r))
		}
	case k == tcell.KeyBacktab:
		mods |= tcell.ModShift
		main = key.Tab
	case namedKeys[k] != "":
		main = namedKeys[k]
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		mods |= tcell.ModCtrl
		main = key.Identifier(string(rune('a' + (k - tcell.KeyCtrlA))))
	case k == tcell.KeyCtrlSpace:
		mods |= tcell.ModCtrl
		main = "space"
	case k >= tcell.KeyF1 && k <= tcell.KeyF12:
		main = key.Identifier("f" + strconv.Itoa(int(k-tcell.KeyF1)+1))
	default:
		return nil
	}

	names := modifierNames(mods)
	return append(names, main)
}

func modifierNames(mods tcell.ModMask) []key.Identifier {
	var names []key.Identifier
	if mods&tcell.ModCtrl != 0 {
		names = append(names, key.Control)
	}
	if mods&tcell.ModAlt != 0 {
		names = append(names, key.Alt)
	}
	if mods&tcell.ModShift != 0 {
		names = append(names, key.Shift)
	}
	if mods&tcell.ModMeta != 0 {
		names = append(names, key.Meta)
	}
	return names
}
