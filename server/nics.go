// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package server

import (
	"github.com/juju/errors"

	"github.com/juju/fakeconsole/api/params"
	"github.com/juju/fakeconsole/state"
)

// nicsHandler creates NICs on a partition. A NIC must be backed by
// exactly one of a network adapter port or a virtual switch; a virtual
// switch backing is recorded on the switch's connected-vnic-uris.
type nicsHandler struct{}

func (nicsHandler) Post(req *Request) (interface{}, error) {
	part, err := lookupPartition(req, req.Args[0])
	if err != nil {
		return nil, err
	}
	if cpc := cpcOf(part); cpc != nil {
		if err := checkCPCStatus(req, cpc); err != nil {
			return nil, err
		}
	}
	if err := requireFields(req, "name"); err != nil {
		return nil, err
	}
	_, hasPort := req.Body["network-adapter-port-uri"]
	_, hasVS := req.Body["virtual-switch-uri"]
	if !hasPort && !hasVS {
		return nil, params.NewBadRequestError(req.Method, req.URI,
			params.ReasonMissingField,
			"one of network-adapter-port-uri and virtual-switch-uri is required")
	}
	if hasPort && hasVS {
		return nil, params.NewBadRequestError(req.Method, req.URI,
			params.ReasonInvalidValue,
			"network-adapter-port-uri and virtual-switch-uri are mutually exclusive")
	}
	nic, err := part.ChildManager("nics").Add(req.Body)
	if err != nil {
		if errors.Is(err, state.ErrDanglingReference) {
			return nil, params.NewInvalidResourceError(req.Method, req.URI)
		}
		return nil, params.NewBadRequestError(req.Method, req.URI,
			params.ReasonInvalidValue, "%v", err)
	}
	return map[string]interface{}{"element-uri": nic.URI()}, nil
}

// nicHandler serves one NIC. Deleting frees the auto-assigned device
// number and strips the URI from the partition's nic-uris; the backing
// virtual switch's connected-vnic-uris is deliberately left alone, as on
// the real server.
type nicHandler struct {
	genericGet
	genericUpdate
	genericDelete
}
