// Package orderedmap provides a string-keyed map that remembers the order
// in which keys were first inserted.
//
// OpenAPI documents are order-sensitive in places where JSON and YAML
// mappings are not: the paths object and schema property objects are
// rendered in declaration order by documentation tools. Go maps do not
// preserve insertion order and encoding/json sorts keys when marshaling,
// so the document model stores those mappings as [Map] values instead.
//
// Map implements the json.Marshaler/Unmarshaler and yaml Marshaler/
// Unmarshaler interfaces. Unmarshaling records key order from the source
// document (JSON token order, YAML node order) and marshaling replays it.
package orderedmap

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"
	"slices"

	"go.yaml.in/yaml/v4"
)

// Map is an insertion-ordered map with string keys.
//
// The zero value is an empty map ready for use. Read operations are safe
// on a nil *Map and behave as reads from an empty map.
type Map[V any] struct {
	keys   []string
	values map[string]V
}

// New creates an empty Map.
func New[V any]() *Map[V] {
	return &Map[V]{}
}

// Len returns the number of entries in the map.
func (m *Map[V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Has reports whether key is present in the map.
func (m *Map[V]) Has(key string) bool {
	if m == nil {
		return false
	}
	_, ok := m.values[key]
	return ok
}

// Get returns the value stored for key and whether it was present.
func (m *Map[V]) Get(key string) (V, bool) {
	if m == nil {
		var zero V
		return zero, false
	}
	v, ok := m.values[key]
	return v, ok
}

// Value returns the value stored for key, or the zero value if absent.
func (m *Map[V]) Value(key string) V {
	v, _ := m.Get(key)
	return v
}

// Set stores value under key. A new key is appended to the iteration
// order; an existing key keeps its original position.
func (m *Map[V]) Set(key string, value V) {
	if m.values == nil {
		m.values = make(map[string]V)
	}
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Delete removes key from the map and reports whether it was present.
func (m *Map[V]) Delete(key string) bool {
	if m == nil {
		return false
	}
	if _, exists := m.values[key]; !exists {
		return false
	}
	delete(m.values, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
	return true
}

// Keys returns the keys in insertion order. The returned slice is a copy.
func (m *Map[V]) Keys() []string {
	if m == nil {
		return nil
	}
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Values returns the values in insertion order.
func (m *Map[V]) Values() []V {
	if m == nil {
		return nil
	}
	values := make([]V, 0, len(m.keys))
	for _, k := range m.keys {
		values = append(values, m.values[k])
	}
	return values
}

// All returns an iterator over key-value pairs in insertion order.
func (m *Map[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		if m == nil {
			return
		}
		for _, key := range m.keys {
			if !yield(key, m.values[key]) {
				return
			}
		}
	}
}

// MarshalJSON implements json.Marshaler, emitting keys in insertion order.
func (m *Map[V]) MarshalJSON() ([]byte, error) {
	if m == nil || len(m.keys) == 0 {
		return []byte("{}"), nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyJSON, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(keyJSON)
		buf.WriteByte(':')
		valJSON, err := json.Marshal(m.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(valJSON)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON implements json.Unmarshaler, recording keys in the order
// they appear in the JSON object. A JSON null leaves the map unchanged.
func (m *Map[V]) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("orderedmap: %w", err)
	}
	if tok == nil {
		// JSON null
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("orderedmap: expected object, got %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("orderedmap: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("orderedmap: expected string key, got %v", keyTok)
		}

		var value V
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("orderedmap: decoding value for key %q: %w", key, err)
		}
		m.Set(key, value)
	}

	// Consume the closing brace
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("orderedmap: %w", err)
	}
	return nil
}

// MarshalYAML implements the yaml Marshaler interface, building a mapping
// node with keys in insertion order.
func (m *Map[V]) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	if m == nil || len(m.keys) == 0 {
		return node, nil
	}

	node.Content = make([]*yaml.Node, 0, len(m.keys)*2)
	for _, key := range m.keys {
		valNode, err := valueNode(m.values[key])
		if err != nil {
			return nil, fmt.Errorf("orderedmap: encoding value for key %q: %w", key, err)
		}
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}
		node.Content = append(node.Content, keyNode, valNode)
	}
	return node, nil
}

// valueNode converts a value to a yaml.Node by marshaling it and parsing
// the result back into a node tree.
func valueNode(v any) (*yaml.Node, error) {
	raw, err := yaml.Marshal(v)
	if err != nil {
		return nil, err
	}
	var node yaml.Node
	if err := yaml.Unmarshal(raw, &node); err != nil {
		return nil, err
	}
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		return node.Content[0], nil
	}
	return &node, nil
}

// UnmarshalYAML implements the yaml Unmarshaler interface. Key order is
// recorded from the mapping node, then values are decoded through the
// normal unmarshaling machinery.
func (m *Map[V]) UnmarshalYAML(unmarshal func(any) error) error {
	var node yaml.Node
	if err := unmarshal(&node); err != nil {
		return err
	}
	mapping := &node
	if mapping.Kind == yaml.DocumentNode && len(mapping.Content) > 0 {
		mapping = mapping.Content[0]
	}
	if mapping.Kind == yaml.AliasNode && mapping.Alias != nil {
		mapping = mapping.Alias
	}
	if mapping.Kind != yaml.MappingNode {
		return fmt.Errorf("orderedmap: line %d: cannot unmarshal non-mapping value into ordered map", mapping.Line)
	}

	var values map[string]V
	if err := unmarshal(&values); err != nil {
		return err
	}

	for i := 0; i+1 < len(mapping.Content); i += 2 {
		keyNode := mapping.Content[i]
		if keyNode.Kind != yaml.ScalarNode {
			continue
		}
		if value, ok := values[keyNode.Value]; ok {
			m.Set(keyNode.Value, value)
		}
	}

	// Keys produced by decoding but absent from the mapping node (merge
	// keys expand this way) are appended in sorted order for determinism.
	if len(values) > m.Len() {
		leftover := make([]string, 0, len(values)-m.Len())
		for key := range values {
			if !m.Has(key) {
				leftover = append(leftover, key)
			}
		}
		slices.Sort(leftover)
		for _, key := range leftover {
			m.Set(key, values[key])
		}
	}
	return nil
}
