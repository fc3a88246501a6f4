// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package state

import (
	"github.com/juju/errors"
	"github.com/juju/utils/v4"
)

// Manager holds the ordered collection of resources of one type, scoped
// under a parent resource (or under the store root for top-level types).
// It generates ids and URIs for added resources and registers them in the
// store's flat URI index.
type Manager struct {
	st     *Store
	parent *Resource

	// key is the definition key naming this collection in bulk
	// definitions, e.g. "partitions".
	key string

	baseURI  string
	idProp   string
	uriProp  string
	classTag string

	// nameKeyed managers (activation profiles) key identity by the name
	// property instead of a generated object/element id.
	nameKeyed bool

	// singletonURI, when set, pins the URI of the only resource this
	// manager may hold (the console lives at a fixed URI).
	singletonURI string

	// prepare fills defaults and validates properties before the
	// resource is registered; postAdd applies side effects that need the
	// registered resource (child managers, cross-resource bookkeeping);
	// postRemove undoes them. All three run with the store lock held.
	prepare    func(m *Manager, p *Properties) error
	postAdd    func(m *Manager, r *Resource) error
	postRemove func(m *Manager, r *Resource)

	resources []*Resource
	byID      map[string]*Resource
}

// Key returns the definition key of this collection.
func (m *Manager) Key() string {
	return m.key
}

// BaseURI returns the URI prefix under which resource URIs are generated.
func (m *Manager) BaseURI() string {
	return m.baseURI
}

// Parent returns the resource this manager is scoped under, or nil for
// top-level managers.
func (m *Manager) Parent() *Resource {
	return m.parent
}

// Store returns the owning store.
func (m *Manager) Store() *Store {
	return m.st
}

// Add constructs a resource from the given properties, auto-filling id, URI
// and class, registers it and applies the type's side effects. The returned
// resource is live: its properties may be mutated in place.
func (m *Manager) Add(props map[string]interface{}) (*Resource, error) {
	m.st.mu.Lock()
	defer m.st.mu.Unlock()
	return m.add(props)
}

func (m *Manager) add(props map[string]interface{}) (*Resource, error) {
	p := PropertiesFromMap(props)
	if m.prepare != nil {
		if err := m.prepare(m, p); err != nil {
			return nil, errors.Trace(err)
		}
	}

	var id string
	if v, ok := p.Get(m.idProp); ok {
		s, ok := v.(string)
		if !ok {
			return nil, errors.NotValidf("%s property of type %T", m.idProp, v)
		}
		id = s
	} else if m.nameKeyed {
		return nil, errors.NotValidf("%s resource without a name", m.classTag)
	} else {
		id = utils.MustNewUUID().String()
		p.Set(m.idProp, id)
	}
	if _, ok := m.byID[id]; ok {
		return nil, errors.AlreadyExistsf("%s with id %q", m.classTag, id)
	}

	uri := m.singletonURI
	if uri == "" {
		if v, ok := p.Get(m.uriProp); ok {
			s, ok := v.(string)
			if !ok {
				return nil, errors.NotValidf("%s property of type %T", m.uriProp, v)
			}
			uri = s
		} else {
			uri = m.baseURI + "/" + id
		}
	}
	p.Set(m.uriProp, uri)

	if _, ok := p.Get("class"); !ok {
		p.Set("class", m.classTag)
	}

	r := &Resource{
		manager: m,
		id:      id,
		uri:     uri,
		props:   p,
	}
	if err := m.st.register(r); err != nil {
		return nil, errors.Trace(err)
	}
	if m.byID == nil {
		m.byID = make(map[string]*Resource)
	}
	m.byID[id] = r
	m.resources = append(m.resources, r)

	if m.postAdd != nil {
		if err := m.postAdd(m, r); err != nil {
			m.st.unregister(uri)
			delete(m.byID, id)
			m.resources = m.resources[:len(m.resources)-1]
			return nil, errors.Trace(err)
		}
	}
	return r, nil
}

// Remove deletes the resource with the given id from the collection and
// from the store's URI index, applying the type's removal side effects
// (freeing pooled identifiers, stripping parent list properties).
func (m *Manager) Remove(id string) error {
	m.st.mu.Lock()
	defer m.st.mu.Unlock()
	return m.remove(id)
}

func (m *Manager) remove(id string) error {
	r, ok := m.byID[id]
	if !ok {
		return errors.NotFoundf("%s with id %q", m.classTag, id)
	}
	if m.postRemove != nil {
		m.postRemove(m, r)
	}
	m.st.unregister(r.uri)
	delete(m.byID, id)
	for i, e := range m.resources {
		if e == r {
			m.resources = append(m.resources[:i], m.resources[i+1:]...)
			break
		}
	}
	return nil
}

// Lookup returns the resource with the given id.
func (m *Manager) Lookup(id string) (*Resource, error) {
	m.st.mu.Lock()
	defer m.st.mu.Unlock()
	r, ok := m.byID[id]
	if !ok {
		return nil, errors.NotFoundf("%s with id %q", m.classTag, id)
	}
	return r, nil
}

// List returns the resources matching the filter, in the order they were
// added. A nil filter matches everything.
func (m *Manager) List(filter Filter) []*Resource {
	m.st.mu.Lock()
	defer m.st.mu.Unlock()
	var out []*Resource
	for _, r := range m.resources {
		if filter.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}

// Len returns the number of resources in the collection.
func (m *Manager) Len() int {
	m.st.mu.Lock()
	defer m.st.mu.Unlock()
	return len(m.resources)
}
