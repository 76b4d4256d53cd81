// Package serializer renders the aggregated endpoint structure into output
// formats: a Terraform-friendly block by default, or JSON/YAML.
package serializer

import "strings"

// Value is a node in a configuration tree. The three shapes are Mapping,
// Sequence and Scalar; rendering dispatches on the concrete type.
type Value interface {
	appendTerraform(b *strings.Builder)
	plain() any
}

// Scalar is a leaf value, rendered as a double-quoted string. Embedded
// quotes are not escaped; the values here are IP address literals.
type Scalar string

func (s Scalar) appendTerraform(b *strings.Builder) {
	b.WriteByte('"')
	b.WriteString(string(s))
	b.WriteByte('"')
}

func (s Scalar) plain() any { return string(s) }

// Sequence is an ordered list of values, rendered as a comma-joined
// bracketed list.
type Sequence []Value

func (q Sequence) appendTerraform(b *strings.Builder) {
	b.WriteByte('[')
	for i, v := range q {
		if i != 0 {
			b.WriteString(", ")
		}
		v.appendTerraform(b)
	}
	b.WriteByte(']')
}

func (q Sequence) plain() any {
	out := make([]any, 0, len(q))
	for _, v := range q {
		out = append(out, v.plain())
	}
	return out
}

// Mapping is a key-value structure that preserves insertion order, so the
// rendered block lists entries in the order they were discovered.
type Mapping struct {
	keys    []string
	entries map[string]Value
}

// NewMapping returns an empty ordered mapping.
func NewMapping() *Mapping {
	return &Mapping{entries: make(map[string]Value)}
}

// Set inserts or overwrites the value for key. A key keeps its original
// position when overwritten.
func (m *Mapping) Set(key string, v Value) {
	if _, ok := m.entries[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.entries[key] = v
}

// Get returns the value for key.
func (m *Mapping) Get(key string) (Value, bool) {
	v, ok := m.entries[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (m *Mapping) Keys() []string {
	return m.keys
}

// Len returns the number of entries.
func (m *Mapping) Len() int {
	return len(m.keys)
}

func (m *Mapping) appendTerraform(b *strings.Builder) {
	b.WriteString("{\n")
	for _, key := range m.keys {
		b.WriteString(key)
		b.WriteString(" = ")
		m.entries[key].appendTerraform(b)
		b.WriteByte('\n')
	}
	b.WriteByte('}')
}

func (m *Mapping) plain() any {
	out := make(map[string]any, len(m.keys))
	for _, key := range m.keys {
		out[key] = m.entries[key].plain()
	}
	return out
}

// Terraform renders a value tree as a block suitable for pasting into
// Terraform variable definitions.
func Terraform(v Value) string {
	var b strings.Builder
	v.appendTerraform(&b)
	return b.String()
}
