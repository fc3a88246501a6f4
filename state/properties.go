// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package state

import (
	"bytes"
	"encoding/json"
	"sort"
)

// Properties is an insertion-ordered mapping of property names to arbitrary
// values. It is the only observable state of a resource: keys keep the order
// in which they were first set, and Update performs a shallow merge leaving
// unspecified keys untouched.
type Properties struct {
	keys   []string
	values map[string]interface{}
}

// NewProperties returns an empty property mapping.
func NewProperties() *Properties {
	return &Properties{values: make(map[string]interface{})}
}

// PropertiesFromMap returns a property mapping seeded from m. Since Go maps
// carry no order, keys are inserted in sorted order for determinism.
func PropertiesFromMap(m map[string]interface{}) *Properties {
	p := NewProperties()
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		p.Set(k, m[k])
	}
	return p
}

// Len returns the number of properties.
func (p *Properties) Len() int {
	return len(p.keys)
}

// Keys returns the property names in insertion order.
func (p *Properties) Keys() []string {
	keys := make([]string, len(p.keys))
	copy(keys, p.keys)
	return keys
}

// Get returns the named property value and whether it is present.
func (p *Properties) Get(name string) (interface{}, bool) {
	v, ok := p.values[name]
	return v, ok
}

// Set stores a property value, appending the key if it is new.
func (p *Properties) Set(name string, value interface{}) {
	if _, ok := p.values[name]; !ok {
		p.keys = append(p.keys, name)
	}
	p.values[name] = value
}

// Delete removes a property if present.
func (p *Properties) Delete(name string) {
	if _, ok := p.values[name]; !ok {
		return
	}
	delete(p.values, name)
	for i, k := range p.keys {
		if k == name {
			p.keys = append(p.keys[:i], p.keys[i+1:]...)
			break
		}
	}
}

// Update merges the given properties into p, shallowly: each given key
// replaces the whole stored value, keys not given are left alone.
func (p *Properties) Update(m map[string]interface{}) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		p.Set(k, m[k])
	}
}

// Copy returns a shallow copy of p.
func (p *Properties) Copy() *Properties {
	cp := NewProperties()
	for _, k := range p.keys {
		cp.Set(k, p.values[k])
	}
	return cp
}

// Map returns the properties as a plain map. The map shares the stored
// values but not the key index.
func (p *Properties) Map() map[string]interface{} {
	m := make(map[string]interface{}, len(p.values))
	for k, v := range p.values {
		m[k] = v
	}
	return m
}

// StringValue returns the named property as a string, or "" when absent or
// of another type.
func (p *Properties) StringValue(name string) string {
	if v, ok := p.values[name]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// BoolValue returns the named property as a bool, or false when absent or
// of another type.
func (p *Properties) BoolValue(name string) bool {
	if v, ok := p.values[name]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return false
}

// StringsValue returns the named property as a string slice. Both []string
// and []interface{} representations are accepted, since values may arrive
// from decoded request bodies as well as from Go code.
func (p *Properties) StringsValue(name string) []string {
	v, ok := p.values[name]
	if !ok {
		return nil
	}
	switch vs := v.(type) {
	case []string:
		out := make([]string, len(vs))
		copy(out, vs)
		return out
	case []interface{}:
		out := make([]string, 0, len(vs))
		for _, e := range vs {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// AppendToStrings appends a value to a string-list property, creating the
// list if needed.
func (p *Properties) AppendToStrings(name, value string) {
	p.Set(name, append(p.StringsValue(name), value))
}

// RemoveFromStrings removes every occurrence of value from a string-list
// property. Removing from an absent list is a no-op.
func (p *Properties) RemoveFromStrings(name, value string) {
	if _, ok := p.values[name]; !ok {
		return
	}
	in := p.StringsValue(name)
	out := make([]string, 0, len(in))
	for _, e := range in {
		if e != value {
			out = append(out, e)
		}
	}
	p.Set(name, out)
}

// MarshalJSON renders the properties as a JSON object whose members appear
// in insertion order.
func (p *Properties) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range p.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(p.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
