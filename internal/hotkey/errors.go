package hotkey

import "errors"

var (
	// ErrUnknownHotkey is returned by On when no shortcut has the given name.
	ErrUnknownHotkey = errors.New("unknown hotkey")

	// ErrNilCallback is returned by On when the callback is nil.
	ErrNilCallback = errors.New("callback cannot be nil")
)
