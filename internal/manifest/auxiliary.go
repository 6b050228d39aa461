package manifest

import (
	"bytes"
	"fmt"
)

// Keys of the tooling blocks reset by ApplyAuxiliaryConfig.
const (
	KeyLintStaged     = "lint-staged"
	KeySimpleGitHooks = "simple-git-hooks"
	KeyScripts        = "scripts"
)

// Pair is one entry of an ordered string-to-string JSON object.
type Pair struct {
	Key   string
	Value string
}

// Pairs is a string-to-string JSON object that keeps its entry order.
type Pairs []Pair

// MarshalJSON encodes the pairs as a JSON object in slice order.
func (p Pairs) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, pair := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := encodeJSON(pair.Key)
		if err != nil {
			return nil, err
		}
		value, err := encodeJSON(pair.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// AuxiliaryConfig holds the standard tooling blocks written into every root
// manifest.
type AuxiliaryConfig struct {
	LintStaged Pairs // glob -> command
	GitHooks   Pairs // hook -> command
	Scripts    Pairs // alias -> command
}

// ApplyAuxiliaryConfig returns a copy of m whose lint-staged, simple-git-hooks
// and scripts blocks are replaced by aux. Existing blocks are overwritten, not
// merged, so applying the same config twice yields the same manifest.
func ApplyAuxiliaryConfig(m *Manifest, aux AuxiliaryConfig) (*Manifest, error) {
	out := m.Clone()
	blocks := []struct {
		key   string
		value Pairs
	}{
		{KeyLintStaged, aux.LintStaged},
		{KeySimpleGitHooks, aux.GitHooks},
		{KeyScripts, aux.Scripts},
	}
	for _, b := range blocks {
		value := b.value
		if value == nil {
			value = Pairs{}
		}
		if err := out.Set(b.key, value); err != nil {
			return nil, fmt.Errorf("setting %s: %w", b.key, err)
		}
	}
	return out, nil
}
