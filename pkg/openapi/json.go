package openapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidExtensionKey indicates an extension key doesn't start with "x-".
var ErrInvalidExtensionKey = errors.New("openapi: extension key must start with 'x-'")

// ValidateExtensionKey reports whether key is usable as a specification extension.
func ValidateExtensionKey(key string) error {
	if !strings.HasPrefix(key, "x-") || len(key) == 2 {
		return fmt.Errorf("%w: %q", ErrInvalidExtensionKey, key)
	}
	return nil
}

// MarshalJSON encodes the document with extensions inlined after the
// standard members, in sorted key order.
func (s *Spec) MarshalJSON() ([]byte, error) {
	type plain Spec
	data, err := json.Marshal((*plain)(s))
	if err != nil {
		return nil, err
	}
	if len(s.Extensions) == 0 {
		return data, nil
	}

	keys := make([]string, 0, len(s.Extensions))
	for key := range s.Extensions {
		if err := ValidateExtensionKey(key); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	slices.Sort(keys)

	var buf bytes.Buffer
	buf.Write(data[:len(data)-1])
	for _, key := range keys {
		value, err := json.Marshal(s.Extensions[key])
		if err != nil {
			return nil, fmt.Errorf("extension %s: %w", key, err)
		}
		name, _ := json.Marshal(key)
		buf.WriteByte(',')
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalJSON serializes a document as indented JSON.
// Map members are emitted in sorted order so equal documents produce equal bytes.
func MarshalJSON(spec *Spec) ([]byte, error) {
	return json.MarshalIndent(spec, "", "  ")
}

// MarshalYAML renders a document as block-style YAML, preserving the member
// order of its JSON form.
func MarshalYAML(spec *Spec) ([]byte, error) {
	data, err := json.Marshal(spec)
	if err != nil {
		return nil, err
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("decode json as yaml: %w", err)
	}
	blockStyle(&node)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&node); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, child := range n.Content {
		blockStyle(child)
	}
}
