package config

import (
	"errors"

	"github.com/dshills/hotkeys/internal/config/loader"
)

// Errors reported by Validate.
var (
	// ErrEmptyName indicates an entry without a name.
	ErrEmptyName = errors.New("hotkey name is empty")

	// ErrNoKeys indicates an entry without any spelling.
	ErrNoKeys = errors.New("hotkey has no keys")

	// ErrDuplicateName indicates a name defined more than once. Only the
	// first definition takes effect.
	ErrDuplicateName = errors.New("duplicate hotkey name")

	// ErrEmptySegment indicates a spelling with an empty key, such as "ctrl+".
	ErrEmptySegment = errors.New("empty key in spelling")
)

// ParseError reports a malformed configuration file.
type ParseError = loader.ParseError
