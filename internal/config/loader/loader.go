// Package loader parses hotkey configuration files.
//
// Three formats are supported, chosen by file extension: TOML (.toml),
// YAML (.yaml, .yml) and JSON (.json). Every loader returns entries in the
// order they appear in the file, since registration order decides which
// shortcut wins when two share a combination.
package loader

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat is returned for files with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// Entry is one configured shortcut.
type Entry struct {
	// Name is the shortcut name listeners subscribe to.
	Name string `toml:"name" yaml:"name" json:"name"`

	// Keys are the combination spellings, e.g. "ctrl+s".
	Keys []string `toml:"keys" yaml:"keys" json:"keys"`

	// Scope optionally names the default scope element.
	Scope string `toml:"scope,omitempty" yaml:"scope,omitempty" json:"scope,omitempty"`
}

// Loader reads hotkey entries.
type Loader interface {
	// Format returns the format name, e.g. "toml".
	Format() string

	// LoadFrom reads entries from a file.
	LoadFrom(path string) ([]Entry, error)

	// LoadFromReader reads entries from r.
	LoadFromReader(r io.Reader) ([]Entry, error)
}

// FileSystem is an abstraction for file system operations.
// This allows for easy testing with in-memory file systems.
type FileSystem interface {
	fs.FS
	// ReadFile reads the entire file at path.
	ReadFile(path string) ([]byte, error)
}

// OSFS implements FileSystem using the real OS file system.
type OSFS struct{}

// Open implements fs.FS.
func (OSFS) Open(name string) (fs.File, error) {
	return os.Open(name)
}

// ReadFile reads the entire file at path.
func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// DefaultFS returns the default file system (OS).
func DefaultFS() FileSystem {
	return OSFS{}
}

// ForPath returns the loader for path's extension.
func ForPath(fsys FileSystem, path string) (Loader, error) {
	if fsys == nil {
		fsys = DefaultFS()
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		return NewTOMLLoaderWithFS(fsys), nil
	case ".yaml", ".yml":
		return NewYAMLLoaderWithFS(fsys), nil
	case ".json":
		return NewJSONLoaderWithFS(fsys), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

func readFile(fsys FileSystem, path string) ([]byte, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return data, nil
}

func readAll(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return data, nil
}

// ParseError represents an error while parsing a configuration file.
type ParseError struct {
	Path    string
	Format  string
	Line    int
	Column  int
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("%s parse error in %s at line %d, column %d: %s", e.Format, e.Path, e.Line, e.Column, e.Message)
	}
	if e.Line > 0 {
		return fmt.Sprintf("%s parse error in %s at line %d: %s", e.Format, e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("%s parse error in %s: %s", e.Format, e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
