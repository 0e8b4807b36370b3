package loader

import (
	"errors"
	"io"

	"github.com/pelletier/go-toml/v2"
)

// TOMLLoader loads entries from TOML files:
//
//	[[hotkey]]
//	name = "save"
//	keys = ["ctrl+s", "meta+s"]
//	scope = "editor"
type TOMLLoader struct {
	fs FileSystem
}

// NewTOMLLoader creates a TOML loader reading from the OS file system.
func NewTOMLLoader() *TOMLLoader {
	return &TOMLLoader{fs: DefaultFS()}
}

// NewTOMLLoaderWithFS creates a TOML loader with a custom file system.
func NewTOMLLoaderWithFS(fs FileSystem) *TOMLLoader {
	return &TOMLLoader{fs: fs}
}

// Format returns "toml".
func (l *TOMLLoader) Format() string { return "toml" }

// LoadFrom reads entries from path.
func (l *TOMLLoader) LoadFrom(path string) ([]Entry, error) {
	data, err := readFile(l.fs, path)
	if err != nil {
		return nil, err
	}
	return l.parse(path, data)
}

// LoadFromReader reads entries from r.
func (l *TOMLLoader) LoadFromReader(r io.Reader) ([]Entry, error) {
	data, err := readAll(r)
	if err != nil {
		return nil, err
	}
	return l.parse("<reader>", data)
}

type tomlFile struct {
	Hotkey []Entry `toml:"hotkey"`
}

func (l *TOMLLoader) parse(source string, data []byte) ([]Entry, error) {
	var file tomlFile
	if err := toml.Unmarshal(data, &file); err != nil {
		perr := &ParseError{
			Path:    source,
			Format:  l.Format(),
			Message: err.Error(),
			Err:     err,
		}
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			perr.Line, perr.Column = derr.Position()
		}
		return nil, perr
	}
	return file.Hotkey, nil
}
