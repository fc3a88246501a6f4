// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package server

import (
	"github.com/juju/collections/set"

	"github.com/juju/fakeconsole/api/params"
	"github.com/juju/fakeconsole/state"
)

// partitionsHandler lists and creates the partitions of a DPM-mode CPC.
type partitionsHandler struct{}

func (partitionsHandler) Get(req *Request) (interface{}, error) {
	cpc, err := lookupCPC(req, req.Args[0])
	if err != nil {
		return nil, err
	}
	filter, err := parseFilter(req.Method, req.URI, req.Args[1])
	if err != nil {
		return nil, err
	}
	partitions := cpc.ChildManager("partitions").List(filter)
	return listResult("partitions", partitions, "object-uri", "name", "status"), nil
}

func (partitionsHandler) Post(req *Request) (interface{}, error) {
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
	if err := requireFields(req, "name", "initial-memory", "maximum-memory"); err != nil {
		return nil, err
	}
	part, err := cpc.ChildManager("partitions").Add(req.Body)
	if err != nil {
		return nil, params.NewBadRequestError(req.Method, req.URI,
			params.ReasonInvalidValue, "%v", err)
	}
	return map[string]interface{}{"object-uri": part.URI()}, nil
}

// partitionHandler serves one partition. Deleting requires the partition
// to be stopped.
type partitionHandler struct {
	genericGet
	genericUpdate
}

func (partitionHandler) Delete(req *Request) error {
	part, err := lookupTarget(req)
	if err != nil {
		return err
	}
	if cpc := cpcOf(part); cpc != nil {
		if err := checkCPCStatus(req, cpc); err != nil {
			return err
		}
	}
	if err := checkStatus(req, part, set.NewStrings("stopped"), nil); err != nil {
		return err
	}
	if err := part.Manager().Remove(part.ID()); err != nil {
		return params.NewInvalidResourceError(req.Method, req.URI)
	}
	return nil
}

// lookupPartition resolves a partition by the object id captured from an
// operations path.
func lookupPartition(req *Request, oid string) (*state.Resource, error) {
	return lookupURI(req, "/api/partitions/"+oid)
}

// partitionStartHandler starts a stopped partition.
type partitionStartHandler struct{}

func (partitionStartHandler) Post(req *Request) (interface{}, error) {
	part, err := lookupPartition(req, req.Args[0])
	if err != nil {
		return nil, err
	}
	if cpc := cpcOf(part); cpc != nil {
		if err := checkCPCStatus(req, cpc); err != nil {
			return nil, err
		}
	}
	if err := checkStatus(req, part, set.NewStrings("stopped"), nil); err != nil {
		return nil, err
	}
	part.Properties().Set("status", "active")
	return nil, nil
}

// partitionStopHandler stops an active, paused or terminated partition.
type partitionStopHandler struct{}

func (partitionStopHandler) Post(req *Request) (interface{}, error) {
	part, err := lookupPartition(req, req.Args[0])
	if err != nil {
		return nil, err
	}
	if cpc := cpcOf(part); cpc != nil {
		if err := checkCPCStatus(req, cpc); err != nil {
			return nil, err
		}
	}
	if err := checkStatus(req, part, set.NewStrings("active", "paused", "terminated"), nil); err != nil {
		return nil, err
	}
	part.Properties().Set("status", "stopped")
	return nil, nil
}
