package config

import (
	"fmt"
	"strings"

	"github.com/dshills/hotkeys/internal/config/loader"
)

// Hotkey is one configured shortcut.
type Hotkey = loader.Entry

// Source provides shortcut definitions in registration order.
type Source interface {
	Hotkeys() ([]Hotkey, error)
}

// Load reads hotkeys from path, choosing the parser by extension.
func Load(path string) ([]Hotkey, error) {
	return LoadFS(loader.DefaultFS(), path)
}

// LoadFS is Load with a custom file system.
func LoadFS(fsys loader.FileSystem, path string) ([]Hotkey, error) {
	l, err := loader.ForPath(fsys, path)
	if err != nil {
		return nil, err
	}
	hotkeys, err := l.LoadFrom(path)
	if err != nil {
		return nil, err
	}
	return hotkeys, nil
}

// FileSource is a Source backed by a configuration file.
type FileSource struct {
	// Path is the configuration file.
	Path string

	// FS overrides the file system. Nil means the OS file system.
	FS loader.FileSystem
}

// NewFileSource creates a FileSource for path.
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

// Hotkeys loads the file.
func (s *FileSource) Hotkeys() ([]Hotkey, error) {
	fsys := s.FS
	if fsys == nil {
		fsys = loader.DefaultFS()
	}
	hotkeys, err := LoadFS(fsys, s.Path)
	if err != nil {
		return nil, fmt.Errorf("loading hotkeys: %w", err)
	}
	return hotkeys, nil
}

// Static is an in-memory Source.
type Static []Hotkey

// Hotkeys returns a copy of the entries.
func (s Static) Hotkeys() ([]Hotkey, error) {
	out := make([]Hotkey, len(s))
	copy(out, s)
	return out, nil
}

// Resolve picks the Source for an optional path: the file when a path is
// given, the built-in defaults otherwise.
func Resolve(path string) Source {
	if path == "" {
		return Static(Defaults())
	}
	return NewFileSource(path)
}

// Validate checks entries for problems the engine would silently accept.
// It reports every problem found, in order.
func Validate(hotkeys []Hotkey) []error {
	var errs []error
	seen := make(map[string]bool, len(hotkeys))
	for i, h := range hotkeys {
		if h.Name == "" {
			errs = append(errs, fmt.Errorf("entry %d: %w", i, ErrEmptyName))
		} else if seen[h.Name] {
			errs = append(errs, fmt.Errorf("%w: %q", ErrDuplicateName, h.Name))
		}
		seen[h.Name] = true

		if len(h.Keys) == 0 {
			errs = append(errs, fmt.Errorf("%q: %w", h.Name, ErrNoKeys))
		}
		for _, spelling := range h.Keys {
			for _, seg := range strings.Split(spelling, "+") {
				if seg == "" {
					errs = append(errs, fmt.Errorf("%q: %w: %q", h.Name, ErrEmptySegment, spelling))
					break
				}
			}
		}
	}
	return errs
}
