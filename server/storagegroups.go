// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package server

import (
	"github.com/juju/fakeconsole/api/params"
	"github.com/juju/fakeconsole/state"
)

// storageGroupsHandler lists and creates storage groups. Storage groups
// are children of the console but carry a cpc-uri property tying them to
// a machine.
type storageGroupsHandler struct{}

func (storageGroupsHandler) Get(req *Request) (interface{}, error) {
	filter, err := parseFilter(req.Method, req.URI, req.Args[0])
	if err != nil {
		return nil, err
	}
	groups := req.Store.Console().ChildManager("storage-groups").List(filter)
	return listResult("storage-groups", groups,
		"object-uri", "cpc-uri", "name", "fulfillment-state", "type"), nil
}

func (storageGroupsHandler) Post(req *Request) (interface{}, error) {
	if err := requireFields(req, "name", "cpc-uri", "type"); err != nil {
		return nil, err
	}
	props := make(map[string]interface{}, len(req.Body))
	for k, v := range req.Body {
		if k != "storage-volumes" {
			props[k] = v
		}
	}
	group, err := req.Store.Console().ChildManager("storage-groups").Add(props)
	if err != nil {
		return nil, params.NewBadRequestError(req.Method, req.URI,
			params.ReasonInvalidValue, "%v", err)
	}
	created, err := applyVolumeOperations(req, group, req.Body["storage-volumes"])
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"object-uri":   group.URI(),
		"element-uris": created,
	}, nil
}

// applyVolumeOperations processes the inline storage-volumes list of a
// create or modify request and returns the URIs of created volumes.
func applyVolumeOperations(req *Request, group *state.Resource, raw interface{}) ([]string, error) {
	created := []string{}
	items, _ := raw.([]interface{})
	volumes := group.ChildManager("storage-volumes")
	for _, item := range items {
		volume, ok := item.(map[string]interface{})
		if !ok {
			return nil, params.NewBadRequestError(req.Method, req.URI,
				params.ReasonInvalidValue, "storage volume entry is not an object")
		}
		op, _ := volume["operation"].(string)
		switch op {
		case "create":
			if _, ok := volume["element-uri"]; ok {
				return nil, params.NewBadRequestError(req.Method, req.URI,
					params.ReasonInvalidValue,
					"element-uri cannot be specified when creating a storage volume")
			}
			props := make(map[string]interface{}, len(volume))
			for k, v := range volume {
				if k != "operation" {
					props[k] = v
				}
			}
			res, err := volumes.Add(props)
			if err != nil {
				return nil, params.NewBadRequestError(req.Method, req.URI,
					params.ReasonInvalidValue, "%v", err)
			}
			created = append(created, res.URI())
		case "modify":
			uri, _ := volume["element-uri"].(string)
			res, err := lookupURI(req, uri)
			if err != nil {
				return nil, err
			}
			props := make(map[string]interface{}, len(volume))
			for k, v := range volume {
				if k != "operation" && k != "element-uri" {
					props[k] = v
				}
			}
			res.Properties().Update(props)
		case "delete":
			uri, _ := volume["element-uri"].(string)
			res, err := lookupURI(req, uri)
			if err != nil {
				return nil, err
			}
			if err := res.Manager().Remove(res.ID()); err != nil {
				return nil, params.NewInvalidResourceError(req.Method, req.URI)
			}
		default:
			return nil, params.NewBadRequestError(req.Method, req.URI,
				params.ReasonInvalidValue, "unknown storage volume operation %q", op)
		}
	}
	return created, nil
}

// storageGroupHandler serves one storage group.
type storageGroupHandler struct {
	genericGet
}

func lookupStorageGroup(req *Request) (*state.Resource, error) {
	return lookupURI(req, "/api/storage-groups/"+req.Args[0])
}

// storageGroupModifyHandler updates storage group properties and applies
// inline storage volume operations.
type storageGroupModifyHandler struct{}

func (storageGroupModifyHandler) Post(req *Request) (interface{}, error) {
	group, err := lookupStorageGroup(req)
	if err != nil {
		return nil, err
	}
	props := make(map[string]interface{}, len(req.Body))
	for k, v := range req.Body {
		if k != "storage-volumes" {
			props[k] = v
		}
	}
	group.Properties().Update(props)
	created, err := applyVolumeOperations(req, group, req.Body["storage-volumes"])
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"element-uris": created}, nil
}

// storageGroupDeleteHandler deletes a storage group.
type storageGroupDeleteHandler struct{}

func (storageGroupDeleteHandler) Post(req *Request) (interface{}, error) {
	group, err := lookupStorageGroup(req)
	if err != nil {
		return nil, err
	}
	if err := group.Manager().Remove(group.ID()); err != nil {
		return nil, params.NewInvalidResourceError(req.Method, req.URI)
	}
	return nil, nil
}

// storageVolumesHandler lists the volumes of a storage group.
type storageVolumesHandler struct{}

func (storageVolumesHandler) Get(req *Request) (interface{}, error) {
	group, err := lookupStorageGroup(req)
	if err != nil {
		return nil, err
	}
	filter, err := parseFilter(req.Method, req.URI, req.Args[1])
	if err != nil {
		return nil, err
	}
	volumes := group.ChildManager("storage-volumes").List(filter)
	return listResult("storage-volumes", volumes,
		"element-uri", "name", "fulfillment-state", "size", "usage"), nil
}

// storageVolumeHandler serves one storage volume.
type storageVolumeHandler struct {
	genericGet
}
