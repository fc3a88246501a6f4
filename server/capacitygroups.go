// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package server

import (
	"github.com/juju/fakeconsole/api/params"
	"github.com/juju/fakeconsole/state"
)

// capacityGroupsHandler lists and creates the capacity groups of a CPC.
type capacityGroupsHandler struct{}

func (capacityGroupsHandler) Get(req *Request) (interface{}, error) {
	cpc, err := lookupCPC(req, req.Args[0])
	if err != nil {
		return nil, err
	}
	filter, err := parseFilter(req.Method, req.URI, req.Args[1])
	if err != nil {
		return nil, err
	}
	groups := cpc.ChildManager("capacity-groups").List(filter)
	return listResult("capacity-groups", groups, "element-uri", "name"), nil
}

func (capacityGroupsHandler) Post(req *Request) (interface{}, error) {
	cpc, err := lookupCPC(req, req.Args[0])
	if err != nil {
		return nil, err
	}
	if err := checkDPMEnabled(req, cpc); err != nil {
		return nil, err
	}
	if err := requireFields(req, "name"); err != nil {
		return nil, err
	}
	group, err := cpc.ChildManager("capacity-groups").Add(req.Body)
	if err != nil {
		return nil, params.NewBadRequestError(req.Method, req.URI,
			params.ReasonInvalidValue, "%v", err)
	}
	return map[string]interface{}{"element-uri": group.URI()}, nil
}

// capacityGroupHandler serves one capacity group. A group with member
// partitions cannot be deleted.
type capacityGroupHandler struct {
	genericGet
	genericUpdate
}

func (capacityGroupHandler) Delete(req *Request) error {
	group, err := lookupCapacityGroup(req)
	if err != nil {
		return err
	}
	if len(group.Properties().StringsValue("partition-uris")) > 0 {
		return params.NewConflictError(req.Method, req.URI,
			params.ReasonMembershipConflict,
			"capacity group %q still has partitions", group.Name())
	}
	if err := group.Manager().Remove(group.ID()); err != nil {
		return params.NewInvalidResourceError(req.Method, req.URI)
	}
	return nil
}

func lookupCapacityGroup(req *Request) (*state.Resource, error) {
	return lookupURI(req, "/api/cpcs/"+req.Args[0]+"/capacity-groups/"+req.Args[1])
}

// inCapacityGroup reports whether uri is a member of group.
func inCapacityGroup(group *state.Resource, uri string) bool {
	for _, member := range group.Properties().StringsValue("partition-uris") {
		if member == uri {
			return true
		}
	}
	return false
}

// capacityGroupAddPartitionHandler adds a shared-mode partition to a
// capacity group. A partition can be in at most one capacity group of
// its CPC.
type capacityGroupAddPartitionHandler struct{}

func (capacityGroupAddPartitionHandler) Post(req *Request) (interface{}, error) {
	group, err := lookupCapacityGroup(req)
	if err != nil {
		return nil, err
	}
	if err := requireFields(req, "partition-uri"); err != nil {
		return nil, err
	}
	uri := stringField(req, "partition-uri")
	part, err := req.Store.LookupByURI(uri)
	if err != nil {
		return nil, params.NewInvalidResourceError(req.Method, req.URI)
	}
	if mode := part.Properties().StringValue("processor-mode"); mode != "shared" {
		return nil, params.NewConflictError(req.Method, req.URI,
			params.ReasonMembershipConflict,
			"partition %q has processor mode %q, only shared partitions can "+
				"join a capacity group", part.Name(), mode)
	}
	if inCapacityGroup(group, uri) {
		return nil, params.NewConflictError(req.Method, req.URI,
			params.ReasonMembershipConflict,
			"partition %q is already a member of capacity group %q",
			part.Name(), group.Name())
	}
	for _, other := range group.Manager().List(nil) {
		if inCapacityGroup(other, uri) {
			return nil, params.NewConflictError(req.Method, req.URI,
				params.ReasonMembershipConflict,
				"partition %q is already a member of capacity group %q",
				part.Name(), other.Name())
		}
	}
	group.Properties().AppendToStrings("partition-uris", uri)
	return nil, nil
}

// capacityGroupRemovePartitionHandler removes a partition from a
// capacity group.
type capacityGroupRemovePartitionHandler struct{}

func (capacityGroupRemovePartitionHandler) Post(req *Request) (interface{}, error) {
	group, err := lookupCapacityGroup(req)
	if err != nil {
		return nil, err
	}
	if err := requireFields(req, "partition-uri"); err != nil {
		return nil, err
	}
	uri := stringField(req, "partition-uri")
	if !inCapacityGroup(group, uri) {
		return nil, params.NewConflictError(req.Method, req.URI,
			params.ReasonMembershipConflict,
			"partition %q is not a member of capacity group %q",
			uri, group.Name())
	}
	group.Properties().RemoveFromStrings("partition-uris", uri)
	return nil, nil
}
