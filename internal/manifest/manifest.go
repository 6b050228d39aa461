package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

const (
	// FileName is the manifest file name looked up in every project directory.
	FileName = "package.json"

	// KeyDependencies is the manifest key holding the runtime dependency map.
	KeyDependencies = "dependencies"
	// KeyVersion is the manifest key holding the package version.
	KeyVersion = "version"

	indent   = "    "
	filePerm = 0644
)

// Manifest is a JSON object whose top-level key order is preserved. Values are
// kept as raw JSON so keys the migration never touches are written back exactly
// as they were read.
type Manifest struct {
	fields *orderedmap.OrderedMap[string, json.RawMessage]
}

// New returns an empty manifest.
func New() *Manifest {
	return &Manifest{fields: orderedmap.New[string, json.RawMessage]()}
}

// Parse decodes a JSON object into a Manifest.
func Parse(data []byte) (*Manifest, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, fmt.Errorf("manifest is not a JSON object")
	}

	m := New()
	if err := json.Unmarshal(trimmed, m.fields); err != nil {
		return nil, fmt.Errorf("decoding JSON: %w", err)
	}
	return m, nil
}

// Load reads the manifest at path, validates it against the package.json
// schema, and parses it. Schema violations are returned as *ValidationError.
func Load(path string) (*Manifest, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating manifest %s: %w", path, err)
	}
	if !result.Valid {
		return nil, &ValidationError{Path: path, Issues: result.Issues}
	}

	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return m, nil
}

// Save writes the manifest to path, replacing any existing file.
func (m *Manifest) Save(path string) error {
	data, err := m.Marshal()
	if err != nil {
		return fmt.Errorf("encoding manifest %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("writing manifest %s: %w", path, err)
	}
	return nil
}

// Marshal renders the manifest as JSON indented with four spaces and a
// trailing newline. HTML characters are not escaped.
func (m *Manifest) Marshal() ([]byte, error) {
	var compact bytes.Buffer
	compact.WriteByte('{')
	first := true
	for pair := m.fields.Oldest(); pair != nil; pair = pair.Next() {
		if !first {
			compact.WriteByte(',')
		}
		first = false

		key, err := encodeJSON(pair.Key)
		if err != nil {
			return nil, fmt.Errorf("encoding key %q: %w", pair.Key, err)
		}
		compact.Write(key)
		compact.WriteByte(':')
		if err := json.Compact(&compact, pair.Value); err != nil {
			return nil, fmt.Errorf("encoding value of %q: %w", pair.Key, err)
		}
	}
	compact.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", indent); err != nil {
		return nil, err
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

// Keys returns the top-level keys in document order.
func (m *Manifest) Keys() []string {
	keys := make([]string, 0, m.fields.Len())
	for pair := m.fields.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Has reports whether key is present.
func (m *Manifest) Has(key string) bool {
	_, ok := m.fields.Get(key)
	return ok
}

// Decode unmarshals the value stored under key into v. It reports false
// without touching v when the key is absent.
func (m *Manifest) Decode(key string, v any) (bool, error) {
	raw, ok := m.fields.Get(key)
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return true, fmt.Errorf("decoding %q: %w", key, err)
	}
	return true, nil
}

// Set stores v under key. An existing key keeps its position; a new key is
// appended at the end.
func (m *Manifest) Set(key string, v any) error {
	raw, err := encodeJSON(v)
	if err != nil {
		return fmt.Errorf("encoding %q: %w", key, err)
	}
	m.fields.Set(key, raw)
	return nil
}

// Delete removes key and reports whether it was present.
func (m *Manifest) Delete(key string) bool {
	_, ok := m.fields.Delete(key)
	return ok
}

// Clone returns a deep copy of the manifest.
func (m *Manifest) Clone() *Manifest {
	c := New()
	for pair := m.fields.Oldest(); pair != nil; pair = pair.Next() {
		c.fields.Set(pair.Key, append(json.RawMessage(nil), pair.Value...))
	}
	return c
}

// Dependencies returns the manifest's dependency map, or an empty map when
// the key is absent.
func (m *Manifest) Dependencies() (DependencyMap, error) {
	deps := DependencyMap{}
	if _, err := m.Decode(KeyDependencies, &deps); err != nil {
		return nil, err
	}
	if deps == nil {
		deps = DependencyMap{}
	}
	return deps, nil
}

// Version returns the manifest's version string and whether it is set.
func (m *Manifest) Version() (string, bool) {
	var version string
	found, err := m.Decode(KeyVersion, &version)
	if err != nil || !found {
		return "", false
	}
	return version, true
}

// encodeJSON marshals v without HTML escaping and without the trailing
// newline json.Encoder appends.
func encodeJSON(v any) (json.RawMessage, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
