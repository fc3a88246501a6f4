// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package server routes requests against the faked console's resource
// graph and implements the per-operation semantics of the console API:
// status and mode preconditions, cross-resource side effects, and the
// documented response bodies. It is the in-process stand-in for the
// remote control-plane server, so client code can be exercised without a
// live machine.
package server

import (
	"regexp"

	"github.com/juju/loggo/v2"

	"github.com/juju/fakeconsole/api/params"
	"github.com/juju/fakeconsole/state"
)

var logger = loggo.GetLogger("fakeconsole.server")

// Request carries one routed operation to a handler: the positional path
// captures (the last one being the raw query string on routes declaring
// it) and the decoded request body for post operations.
type Request struct {
	Store  *state.Store
	Method string
	URI    string
	Args   []string
	Body   map[string]interface{}
}

// A handler implements one or more of Getter, Poster and Deleter; invoking
// a method the handler does not implement fails with an invalid-method
// error.

// Getter handles read operations, returning the response body.
type Getter interface {
	Get(req *Request) (interface{}, error)
}

// Poster handles create, update and named operations. Creates return a
// body carrying the new resource's URI; updates and most named operations
// return nil.
type Poster interface {
	Post(req *Request) (interface{}, error)
}

// Deleter handles delete operations.
type Deleter interface {
	Delete(req *Request) error
}

type route struct {
	pattern string
	re      *regexp.Regexp
	handler interface{}
}

// Router dispatches (method, URI) pairs against an ordered table of
// anchored patterns. The first matching pattern wins, so overlapping
// patterns are legitimate and registration order is part of the contract.
type Router struct {
	st     *state.Store
	routes []route
}

// NewRouter returns a router over the store with the full console API
// routing table installed.
func NewRouter(st *state.Store) *Router {
	r := &Router{st: st}
	r.addConsoleRoutes()
	return r
}

// Handle appends a pattern to the routing table. The pattern is anchored
// at both ends; it may end in the optional query capture group
// `(?:\?(.*))?`, whose captured text is handed to the handler as a raw
// query string.
func (rt *Router) Handle(pattern string, h interface{}) {
	rt.routes = append(rt.routes, route{
		pattern: pattern,
		re:      regexp.MustCompile("^" + pattern + "$"),
		handler: h,
	})
}

func (rt *Router) match(method, uri string) (interface{}, []string, error) {
	for _, r := range rt.routes {
		if m := r.re.FindStringSubmatch(uri); m != nil {
			return r.handler, m[1:], nil
		}
	}
	logger.Debugf("%s %s: no route", method, uri)
	return nil, nil, params.NewInvalidResourceError(method, uri)
}

func (rt *Router) checkEnabled() error {
	if !rt.st.Enabled() {
		return params.NewConnectionError(rt.st.Host())
	}
	return nil
}

// Get routes a read operation.
func (rt *Router) Get(uri string) (interface{}, error) {
	if err := rt.checkEnabled(); err != nil {
		return nil, err
	}
	h, args, err := rt.match("GET", uri)
	if err != nil {
		return nil, err
	}
	g, ok := h.(Getter)
	if !ok {
		return nil, params.NewInvalidMethodError("GET", uri)
	}
	return g.Get(&Request{Store: rt.st, Method: "GET", URI: uri, Args: args})
}

// Post routes a create, update or named operation.
func (rt *Router) Post(uri string, body map[string]interface{}) (interface{}, error) {
	if err := rt.checkEnabled(); err != nil {
		return nil, err
	}
	h, args, err := rt.match("POST", uri)
	if err != nil {
		return nil, err
	}
	p, ok := h.(Poster)
	if !ok {
		return nil, params.NewInvalidMethodError("POST", uri)
	}
	return p.Post(&Request{Store: rt.st, Method: "POST", URI: uri, Args: args, Body: body})
}

// Delete routes a delete operation.
func (rt *Router) Delete(uri string) error {
	if err := rt.checkEnabled(); err != nil {
		return err
	}
	h, args, err := rt.match("DELETE", uri)
	if err != nil {
		return err
	}
	d, ok := h.(Deleter)
	if !ok {
		return params.NewInvalidMethodError("DELETE", uri)
	}
	return d.Delete(&Request{Store: rt.st, Method: "DELETE", URI: uri, Args: args})
}
