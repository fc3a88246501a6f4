// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package state

import (
	"sort"

	"github.com/juju/errors"
	"github.com/juju/schema"
)

// Bulk definitions seed the faked console before a test scenario runs.
// The structure is a nested mapping: each key names a child manager of the
// target resource, each value is a list of items, and each item carries a
// "properties" block plus optional nested child keys:
//
//	cpcs:
//	  - properties:
//	      name: CPC1
//	      dpm-enabled: true
//	    partitions:
//	      - properties:
//	          name: PART1
//
// Items are applied depth-first in the order given; sibling keys are
// applied in sorted order since mappings carry no reliable order.

var (
	defItemChecker = schema.StringMap(schema.Any())
	defListChecker = schema.List(schema.Any())
)

// AddResources applies a bulk definition to the store root. The supported
// top-level keys are "cpcs" and "consoles"; since the store always owns
// exactly one console, a console item updates the existing console's
// properties instead of adding a second one.
func (st *Store) AddResources(defs map[string]interface{}) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	for _, key := range sortedKeys(defs) {
		switch key {
		case "cpcs":
			if err := st.addChildList(st.cpcs, defs[key]); err != nil {
				return errors.Trace(err)
			}
		case "consoles":
			if err := st.updateConsole(defs[key]); err != nil {
				return errors.Trace(err)
			}
		default:
			return errors.Annotatef(ErrInvalidChildType, "top-level key %q", key)
		}
	}
	return nil
}

// AddChildResources applies a bulk definition to an existing resource:
// each key must name one of its child managers.
func (st *Store) AddChildResources(r *Resource, defs map[string]interface{}) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.addChildren(r, defs)
}

func (st *Store) addChildren(r *Resource, defs map[string]interface{}) error {
	for _, key := range sortedKeys(defs) {
		m := r.ChildManager(key)
		if m == nil {
			return errors.Annotatef(ErrInvalidChildType, "key %q on %s %q", key, r.Class(), r.ID())
		}
		if err := st.addChildList(m, defs[key]); err != nil {
			return errors.Trace(err)
		}
	}
	return nil
}

func (st *Store) addChildList(m *Manager, items interface{}) error {
	list, err := coerceList(items)
	if err != nil {
		return errors.Annotatef(ErrInvalidChildType, "%s items: %v", m.key, err)
	}
	for i, item := range list {
		itemMap, err := coerceStringMap(item)
		if err != nil {
			return errors.Annotatef(ErrMissingProperties, "%s item %d: %v", m.key, i, err)
		}
		propsRaw, ok := itemMap["properties"]
		if !ok {
			return errors.Annotatef(ErrMissingProperties, "%s item %d", m.key, i)
		}
		props, err := coerceStringMap(propsRaw)
		if err != nil {
			return errors.Annotatef(ErrMissingProperties, "%s item %d: %v", m.key, i, err)
		}
		r, err := m.add(props)
		if err != nil {
			return errors.Trace(err)
		}
		children := make(map[string]interface{})
		for k, v := range itemMap {
			if k != "properties" {
				children[k] = v
			}
		}
		if len(children) > 0 {
			if err := st.addChildren(r, children); err != nil {
				return errors.Trace(err)
			}
		}
	}
	return nil
}

// updateConsole merges console items into the single console resource and
// seeds its children.
func (st *Store) updateConsole(items interface{}) error {
	list, err := coerceList(items)
	if err != nil {
		return errors.Annotatef(ErrInvalidChildType, "console items: %v", err)
	}
	for i, item := range list {
		itemMap, err := coerceStringMap(item)
		if err != nil {
			return errors.Annotatef(ErrMissingProperties, "console item %d: %v", i, err)
		}
		if propsRaw, ok := itemMap["properties"]; ok {
			props, err := coerceStringMap(propsRaw)
			if err != nil {
				return errors.Annotatef(ErrMissingProperties, "console item %d: %v", i, err)
			}
			st.console.props.Update(props)
		}
		children := make(map[string]interface{})
		for k, v := range itemMap {
			if k != "properties" {
				children[k] = v
			}
		}
		if err := st.addChildren(st.console, children); err != nil {
			return errors.Trace(err)
		}
	}
	return nil
}

func coerceStringMap(v interface{}) (map[string]interface{}, error) {
	out, err := defItemChecker.Coerce(v, nil)
	if err != nil {
		return nil, err
	}
	return out.(map[string]interface{}), nil
}

func coerceList(v interface{}) ([]interface{}, error) {
	out, err := defListChecker.Coerce(v, nil)
	if err != nil {
		return nil, err
	}
	return out.([]interface{}), nil
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
