package spell

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// DiscriminantKey is the key holding a node's variant tag. It is always the
// first key of a Tree.
const DiscriminantKey = "=="

// Tree is an ordered key-value mapping produced by serializing a spell value.
// Keys keep insertion order, and the first key is always DiscriminantKey.
type Tree struct {
	keys   []string
	values map[string]interface{}
}

// NewTree creates a tree tagged with the given variant name
func NewTree(tag string) *Tree {
	t := &Tree{values: make(map[string]interface{})}
	return t.Set(DiscriminantKey, tag)
}

// Set appends key with value, or replaces the value if key is already present
func (t *Tree) Set(key string, value interface{}) *Tree {
	if _, ok := t.values[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.values[key] = value
	return t
}

// SetOptional sets key only when present is true. Absent fields are omitted
// rather than written as empty values.
func (t *Tree) SetOptional(key string, value interface{}, present bool) *Tree {
	if !present {
		return t
	}
	return t.Set(key, value)
}

// Tag returns the variant tag of the tree
func (t *Tree) Tag() string {
	tag, _ := t.values[DiscriminantKey].(string)
	return tag
}

// Get returns the value stored under key
func (t *Tree) Get(key string) (interface{}, bool) {
	v, ok := t.values[key]
	return v, ok
}

// Keys returns the keys in insertion order
func (t *Tree) Keys() []string {
	out := make([]string, len(t.keys))
	copy(out, t.keys)
	return out
}

// Len returns the number of keys, discriminant included
func (t *Tree) Len() int {
	return len(t.keys)
}

// MarshalYAML renders the tree as a mapping node in insertion order
func (t *Tree) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, key := range t.keys {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}

		valueNode := &yaml.Node{}
		if err := valueNode.Encode(t.values[key]); err != nil {
			return nil, fmt.Errorf("encode %s.%s: %w", t.Tag(), key, err)
		}

		node.Content = append(node.Content, keyNode, valueNode)
	}
	return node, nil
}
