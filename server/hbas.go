// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package server

import (
	"github.com/juju/fakeconsole/api/params"
)

// hbasHandler creates HBAs on a partition. The device number and WWPN
// are auto-assigned from the partition's pools unless supplied.
type hbasHandler struct{}

func (hbasHandler) Post(req *Request) (interface{}, error) {
	part, err := lookupPartition(req, req.Args[0])
	if err != nil {
		return nil, err
	}
	if cpc := cpcOf(part); cpc != nil {
		if err := checkCPCStatus(req, cpc); err != nil {
			return nil, err
		}
	}
	if err := requireFields(req, "name", "adapter-port-uri"); err != nil {
		return nil, err
	}
	hba, err := part.ChildManager("hbas").Add(req.Body)
	if err != nil {
		return nil, params.NewBadRequestError(req.Method, req.URI,
			params.ReasonInvalidValue, "%v", err)
	}
	return map[string]interface{}{"element-uri": hba.URI()}, nil
}

// hbaHandler serves one HBA. Deleting frees the auto-assigned device
// number and WWPN and strips the URI from the partition's hba-uris.
type hbaHandler struct {
	genericGet
	genericUpdate
	genericDelete
}
