// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package server

import (
	"github.com/juju/fakeconsole/api/params"
	"github.com/juju/fakeconsole/state"
)

// cpcsHandler lists the compute complexes managed by the console.
type cpcsHandler struct{}

func (cpcsHandler) Get(req *Request) (interface{}, error) {
	filter, err := parseFilter(req.Method, req.URI, req.Args[0])
	if err != nil {
		return nil, err
	}
	cpcs := req.Store.CPCs().List(filter)
	return listResult("cpcs", cpcs, "object-uri", "name", "status"), nil
}

// cpcHandler serves one compute complex.
type cpcHandler struct {
	genericGet
	genericUpdate
}

// lookupCPC resolves a CPC by the object id captured from the path.
func lookupCPC(req *Request, oid string) (*state.Resource, error) {
	cpc, err := req.Store.CPCs().Lookup(oid)
	if err != nil {
		return nil, params.NewInvalidResourceError(req.Method, req.URI)
	}
	return cpc, nil
}
