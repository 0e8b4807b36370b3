package loader

import (
	"errors"
	"fmt"
	"io"

	"github.com/tidwall/gjson"
)

var errInvalidJSON = errors.New("invalid JSON")

// JSONLoader loads entries from JSON files. The hotkeys object maps names
// to a list of spellings, a single spelling, or an object with keys and
// scope:
//
//	{"hotkeys": {"save": ["ctrl+s"], "search": {"keys": ["ctrl+f"], "scope": "editor"}}}
//
// Members are read in document order.
type JSONLoader struct {
	fs FileSystem
}

// NewJSONLoader creates a JSON loader reading from the OS file system.
func NewJSONLoader() *JSONLoader {
	return &JSONLoader{fs: DefaultFS()}
}

// NewJSONLoaderWithFS creates a JSON loader with a custom file system.
func NewJSONLoaderWithFS(fs FileSystem) *JSONLoader {
	return &JSONLoader{fs: fs}
}

// Format returns "json".
func (l *JSONLoader) Format() string { return "json" }

// LoadFrom reads entries from path.
func (l *JSONLoader) LoadFrom(path string) ([]Entry, error) {
	data, err := readFile(l.fs, path)
	if err != nil {
		return nil, err
	}
	return l.parse(path, data)
}

// LoadFromReader reads entries from r.
func (l *JSONLoader) LoadFromReader(r io.Reader) ([]Entry, error) {
	data, err := readAll(r)
	if err != nil {
		return nil, err
	}
	return l.parse("<reader>", data)
}

func (l *JSONLoader) parse(source string, data []byte) ([]Entry, error) {
	if !gjson.ValidBytes(data) {
		return nil, &ParseError{Path: source, Format: l.Format(), Message: errInvalidJSON.Error(), Err: errInvalidJSON}
	}

	hotkeys := gjson.GetBytes(data, "hotkeys")
	if !hotkeys.Exists() {
		return nil, nil
	}
	if !hotkeys.IsObject() {
		return nil, &ParseError{Path: source, Format: l.Format(), Message: "hotkeys must be an object"}
	}

	var entries []Entry
	var perr *ParseError
	hotkeys.ForEach(func(name, value gjson.Result) bool {
		entry := Entry{Name: name.String()}
		switch {
		case value.Type == gjson.String:
			entry.Keys = []string{value.String()}
		case value.IsArray():
			entry.Keys = stringArray(value)
		case value.IsObject():
			entry.Keys = stringArray(value.Get("keys"))
			entry.Scope = value.Get("scope").String()
		default:
			perr = &ParseError{
				Path:    source,
				Format:  l.Format(),
				Message: fmt.Sprintf("hotkey %q: unexpected value %s", name.String(), value.Raw),
			}
			return false
		}
		entries = append(entries, entry)
		return true
	})
	if perr != nil {
		return nil, perr
	}
	return entries, nil
}

func stringArray(r gjson.Result) []string {
	if r.Type == gjson.String {
		return []string{r.String()}
	}
	arr := r.Array()
	out := make([]string, 0, len(arr))
	for _, v := range arr {
		out = append(out, v.String())
	}
	return out
}
