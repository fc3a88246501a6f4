// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package server

import (
	"strings"

	"github.com/juju/fakeconsole/api/params"
	"github.com/juju/fakeconsole/state"
)

// targetURI returns the request path without any query string.
func targetURI(req *Request) string {
	if i := strings.IndexByte(req.URI, '?'); i >= 0 {
		return req.URI[:i]
	}
	return req.URI
}

// lookupURI resolves a URI through the store's flat index, translating a
// miss into the wire-level invalid-resource error.
func lookupURI(req *Request, uri string) (*state.Resource, error) {
	r, err := req.Store.LookupByURI(uri)
	if err != nil {
		return nil, params.NewInvalidResourceError(req.Method, req.URI)
	}
	return r, nil
}

// lookupTarget resolves the resource the request path addresses.
func lookupTarget(req *Request) (*state.Resource, error) {
	return lookupURI(req, targetURI(req))
}

// The generic handlers implement the plain CRUD contract shared by most
// resource types. Concrete handlers compose them by embedding and add the
// operations with type-specific semantics.

// genericGet returns the full property mapping of the addressed resource.
type genericGet struct{}

func (genericGet) Get(req *Request) (interface{}, error) {
	r, err := lookupTarget(req)
	if err != nil {
		return nil, err
	}
	return r.Properties().Map(), nil
}

// genericUpdate shallow-merges the request body into the addressed
// resource's properties. Keys not present in the body are untouched; no
// validation beyond existence of the resource is performed.
type genericUpdate struct{}

func (genericUpdate) Post(req *Request) (interface{}, error) {
	r, err := lookupTarget(req)
	if err != nil {
		return nil, err
	}
	r.Properties().Update(req.Body)
	return nil, nil
}

// genericDelete removes the addressed resource from its manager.
type genericDelete struct{}

func (genericDelete) Delete(req *Request) error {
	r, err := lookupTarget(req)
	if err != nil {
		return err
	}
	if err := r.Manager().Remove(r.ID()); err != nil {
		return params.NewInvalidResourceError(req.Method, req.URI)
	}
	return nil
}

// reducedProps projects a resource onto the named properties, skipping
// absent ones. List operations return these reduced subsets rather than
// full properties.
func reducedProps(r *state.Resource, names ...string) map[string]interface{} {
	out := make(map[string]interface{}, len(names))
	for _, name := range names {
		if v, ok := r.Properties().Get(name); ok {
			out[name] = v
		}
	}
	return out
}

// listResult renders a list response: the reduced subsets of the matched
// resources under the given body key, in collection order.
func listResult(key string, resources []*state.Resource, names ...string) map[string]interface{} {
	items := make([]interface{}, 0, len(resources))
	for _, r := range resources {
		items = append(items, reducedProps(r, names...))
	}
	return map[string]interface{}{key: items}
}
