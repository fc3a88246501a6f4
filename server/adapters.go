// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package server

import (
	"github.com/juju/errors"

	"github.com/juju/fakeconsole/api/params"
	"github.com/juju/fakeconsole/state"
)

// adaptersHandler lists the adapters of a CPC and creates hipersockets
// adapters, the only adapter kind creatable through the API.
type adaptersHandler struct{}

func (adaptersHandler) Get(req *Request) (interface{}, error) {
	cpc, err := lookupCPC(req, req.Args[0])
	if err != nil {
		return nil, err
	}
	filter, err := parseFilter(req.Method, req.URI, req.Args[1])
	if err != nil {
		return nil, err
	}
	adapters := cpc.ChildManager("adapters").List(filter)
	return listResult("adapters", adapters, "object-uri", "name", "status"), nil
}

func (adaptersHandler) Post(req *Request) (interface{}, error) {
	cpc, err := lookupCPC(req, req.Args[0])
	if err != nil {
		return nil, err
	}
	if err := checkDPMEnabled(req, cpc); err != nil {
		return nil, err
	}
	if err := checkCPCStatus(req, cpc); err != nil {
		return nil, err
	}
	if err := requireFields(req, "name"); err != nil {
		return nil, err
	}
	adapter, err := cpc.ChildManager("adapters").Add(req.Body)
	if err != nil {
		switch {
		case errors.Is(err, state.ErrMissingAdapterFamily):
			return nil, params.NewBadRequestError(req.Method, req.URI,
				params.ReasonMissingField, "%v", err)
		case errors.Is(err, state.ErrUnknownAdapterType):
			return nil, params.NewBadRequestError(req.Method, req.URI,
				params.ReasonInvalidValue, "%v", err)
		}
		return nil, params.NewBadRequestError(req.Method, req.URI,
			params.ReasonInvalidValue, "%v", err)
	}
	return map[string]interface{}{"object-uri": adapter.URI()}, nil
}

// adapterHandler serves one adapter. Only hipersockets adapters may be
// deleted through the API.
type adapterHandler struct {
	genericGet
	genericUpdate
}

func (adapterHandler) Delete(req *Request) error {
	adapter, err := lookupTarget(req)
	if err != nil {
		return err
	}
	if adapter.Properties().StringValue("type") != "hipersockets" {
		return params.NewBadRequestError(req.Method, req.URI,
			params.ReasonInvalidValue, "adapter %q is not a hipersockets adapter",
			adapter.Name())
	}
	if err := adapter.Manager().Remove(adapter.ID()); err != nil {
		return params.NewInvalidResourceError(req.Method, req.URI)
	}
	return nil
}

// portHandler serves one network or storage port.
type portHandler struct {
	genericGet
	genericUpdate
}
