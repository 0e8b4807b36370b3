// Package lua exposes the hotkey engine to Lua scripts.
//
// A State is a restricted gopher-lua runtime: only the base, table, string
// and math libraries are opened and file loading functions are removed.
// HotkeyModule installs a global "hotkey" table into a State:
//
//	hotkey.register("save", {"ctrl+s", "meta+s"})
//	local h = hotkey.on("save", function(ev)
//	    print(ev.key, ev.kind, ev.target)
//	end, "editor")
//	h:stop()
//	h:start()
//	print(hotkey.pressing())
//
// Scope arguments are element names, resolved by the engine's resolver.
//
// gopher-lua's LState is not goroutine-safe. Listener callbacks run on the
// goroutine that feeds key events to the engine, which must also be the
// goroutine that owns the State.
package lua
