package config

// Defaults returns the built-in shortcut set.
func Defaults() []Hotkey {
	return []Hotkey{
		{Name: "quit", Keys: []string{"ctrl+q"}},
		{Name: "save", Keys: []string{"ctrl+s", "meta+s"}},
		{Name: "search", Keys: []string{"ctrl+f", "meta+f"}},
		{Name: "close", Keys: []string{"esc"}},
		{Name: "next", Keys: []string{"ctrl+down", "ctrl+n"}},
		{Name: "previous", Keys: []string{"ctrl+up", "ctrl+p"}},
		{Name: "delete-line", Keys: []string{"ctrl+k"}},
	}
}
