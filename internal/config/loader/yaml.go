package loader

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLLoader loads entries from YAML files. Under the top-level hotkeys
// mapping each key is a shortcut name and each value is either a list of
// spellings, a single spelling, or a mapping with keys and scope:
//
//	hotkeys:
//	  save: [ctrl+s, meta+s]
//	  quit: ctrl+q
//	  search:
//	    keys: [ctrl+f]
//	    scope: editor
//
// The document is decoded through yaml.Node so entries keep file order.
type YAMLLoader struct {
	fs FileSystem
}

// NewYAMLLoader creates a YAML loader reading from the OS file system.
func NewYAMLLoader() *YAMLLoader {
	return &YAMLLoader{fs: DefaultFS()}
}

// NewYAMLLoaderWithFS creates a YAML loader with a custom file system.
func NewYAMLLoaderWithFS(fs FileSystem) *YAMLLoader {
	return &YAMLLoader{fs: fs}
}

// Format returns "yaml".
func (l *YAMLLoader) Format() string { return "yaml" }

// LoadFrom reads entries from path.
func (l *YAMLLoader) LoadFrom(path string) ([]Entry, error) {
	data, err := readFile(l.fs, path)
	if err != nil {
		return nil, err
	}
	return l.parse(path, data)
}

// LoadFromReader reads entries from r.
func (l *YAMLLoader) LoadFromReader(r io.Reader) ([]Entry, error) {
	data, err := readAll(r)
	if err != nil {
		return nil, err
	}
	return l.parse("<reader>", data)
}

func (l *YAMLLoader) parse(source string, data []byte) ([]Entry, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Path: source, Format: l.Format(), Message: err.Error(), Err: err}
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, l.nodeError(source, root, "top level must be a mapping")
	}

	hotkeys := mappingValue(root, "hotkeys")
	if hotkeys == nil {
		return nil, nil
	}
	if hotkeys.Kind != yaml.MappingNode {
		return nil, l.nodeError(source, hotkeys, "hotkeys must be a mapping of name to keys")
	}

	entries := make([]Entry, 0, len(hotkeys.Content)/2)
	for i := 0; i+1 < len(hotkeys.Content); i += 2 {
		name, value := hotkeys.Content[i], hotkeys.Content[i+1]
		entry := Entry{Name: name.Value}

		switch value.Kind {
		case yaml.ScalarNode:
			entry.Keys = []string{value.Value}
		case yaml.SequenceNode:
			if err := value.Decode(&entry.Keys); err != nil {
				return nil, l.nodeError(source, value, fmt.Sprintf("hotkey %q: %v", name.Value, err))
			}
		case yaml.MappingNode:
			var body struct {
				Keys  []string `yaml:"keys"`
				Scope string   `yaml:"scope"`
			}
			if err := value.Decode(&body); err != nil {
				return nil, l.nodeError(source, value, fmt.Sprintf("hotkey %q: %v", name.Value, err))
			}
			entry.Keys, entry.Scope = body.Keys, body.Scope
		default:
			return nil, l.nodeError(source, value, fmt.Sprintf("hotkey %q: unexpected value", name.Value))
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (l *YAMLLoader) nodeError(source string, n *yaml.Node, msg string) *ParseError {
	return &ParseError{
		Path:    source,
		Format:  l.Format(),
		Line:    n.Line,
		Column:  n.Column,
		Message: msg,
	}
}

// mappingValue returns the value node for key in a mapping node.
func mappingValue(m *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}
