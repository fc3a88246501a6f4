// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package server

import (
	"github.com/juju/fakeconsole/api/params"
)

// virtualFunctionsHandler creates virtual functions on a partition.
type virtualFunctionsHandler struct{}

func (virtualFunctionsHandler) Post(req *Request) (interface{}, error) {
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
	vf, err := part.ChildManager("virtual-functions").Add(req.Body)
	if err != nil {
		return nil, params.NewBadRequestError(req.Method, req.URI,
			params.ReasonInvalidValue, "%v", err)
	}
	return map[string]interface{}{"element-uri": vf.URI()}, nil
}

// virtualFunctionHandler serves one virtual function.
type virtualFunctionHandler struct {
	genericGet
	genericUpdate
	genericDelete
}
