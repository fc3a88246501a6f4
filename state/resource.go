// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package state

// Resource is a single addressable entity of the faked console: a compute
// complex, a partition, an adapter, and so on. Its only observable state is
// its property mapping; identity is carried by the id (unique within the
// owning manager) and the URI (unique across the whole store, immutable).
type Resource struct {
	manager *Manager
	id      string
	uri     string
	props   *Properties

	// children holds the child managers of this resource, keyed by the
	// definition key used in bulk definitions ("partitions", "nics", ...).
	// Keys are kept in creation order so bulk dumps stay stable.
	children   map[string]*Manager
	childOrder []string
}

// Manager returns the manager owning this resource.
func (r *Resource) Manager() *Manager {
	return r.manager
}

// ID returns the object or element id of the resource. For name-keyed
// resources (activation profiles) this is the name.
func (r *Resource) ID() string {
	return r.id
}

// URI returns the object or element URI of the resource.
func (r *Resource) URI() string {
	return r.uri
}

// Properties returns the live property mapping of the resource. Mutating it
// mutates the resource.
func (r *Resource) Properties() *Properties {
	return r.props
}

// Class returns the API type tag of the resource.
func (r *Resource) Class() string {
	return r.props.StringValue("class")
}

// Name returns the name property of the resource, or "".
func (r *Resource) Name() string {
	return r.props.StringValue("name")
}

// ChildManager returns the child manager registered under the given
// definition key, or nil.
func (r *Resource) ChildManager(key string) *Manager {
	return r.children[key]
}

// ChildKeys returns the definition keys of the child managers in creation
// order.
func (r *Resource) ChildKeys() []string {
	keys := make([]string, len(r.childOrder))
	copy(keys, r.childOrder)
	return keys
}

func (r *Resource) addChild(m *Manager) {
	if r.children == nil {
		r.children = make(map[string]*Manager)
	}
	r.children[m.key] = m
	r.childOrder = append(r.childOrder, m.key)
}
