// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package server

import (
	"github.com/juju/fakeconsole/api/params"
	"github.com/juju/fakeconsole/state"
)

// lparsHandler lists the logical partitions of a classic-mode CPC.
type lparsHandler struct{}

func (lparsHandler) Get(req *Request) (interface{}, error) {
	cpc, err := lookupCPC(req, req.Args[0])
	if err != nil {
		return nil, err
	}
	filter, err := parseFilter(req.Method, req.URI, req.Args[1])
	if err != nil {
		return nil, err
	}
	lpars := cpc.ChildManager("logical-partitions").List(filter)
	return listResult("logical-partitions", lpars, "object-uri", "name", "status"), nil
}

// lparHandler serves one logical partition.
type lparHandler struct {
	genericGet
	genericUpdate
}

func lookupLpar(req *Request, oid string) (*state.Resource, error) {
	return lookupURI(req, "/api/logical-partitions/"+oid)
}

// lparPrecheck resolves the logical partition of an operations path and
// verifies that its CPC is in classic mode. The DPM status checks do not
// apply here: a healthy classic-mode CPC reports "operating".
func lparPrecheck(req *Request) (*state.Resource, error) {
	lpar, err := lookupLpar(req, req.Args[0])
	if err != nil {
		return nil, err
	}
	if cpc := cpcOf(lpar); cpc != nil {
		if err := checkDPMDisabled(req, cpc); err != nil {
			return nil, err
		}
	}
	return lpar, nil
}

// lparActivateHandler activates a logical partition using an activation
// profile. The profile name must equal the partition name; activating an
// already activated partition requires force.
type lparActivateHandler struct{}

func (lparActivateHandler) Post(req *Request) (interface{}, error) {
	lpar, err := lparPrecheck(req)
	if err != nil {
		return nil, err
	}
	status := lpar.Properties().StringValue("status")
	if status != "not-activated" && !boolField(req, "force") {
		return nil, params.NewConflictError(req.Method, req.URI,
			params.ReasonInvalidStatus,
			"logical partition %q has status %q and force was not specified",
			lpar.Name(), status)
	}
	profile := stringField(req, "activation-profile-name")
	if profile == "" {
		profile = lpar.Properties().StringValue("next-activation-profile-name")
	}
	if profile != lpar.Name() {
		return nil, params.NewServerError(req.Method, req.URI,
			params.ReasonProfileNameMismatch,
			"activation profile %q does not match logical partition name %q",
			profile, lpar.Name())
	}
	lpar.Properties().Set("status", "not-operating")
	lpar.Properties().Set("last-used-activation-profile", profile)
	return nil, nil
}

// lparDeactivateHandler deactivates a logical partition. Deactivating an
// operating partition requires force; deactivating an already
// deactivated partition fails regardless of force.
type lparDeactivateHandler struct{}

func (lparDeactivateHandler) Post(req *Request) (interface{}, error) {
	lpar, err := lparPrecheck(req)
	if err != nil {
		return nil, err
	}
	status := lpar.Properties().StringValue("status")
	if status == "not-activated" {
		return nil, params.NewConflictError(req.Method, req.URI,
			params.ReasonInvalidStatus,
			"logical partition %q is already not-activated", lpar.Name())
	}
	if status == "operating" && !boolField(req, "force") {
		return nil, params.NewConflictError(req.Method, req.URI,
			params.ReasonInvalidStatus,
			"logical partition %q has status %q and force was not specified",
			lpar.Name(), status)
	}
	lpar.Properties().Set("status", "not-activated")
	return nil, nil
}

// lparLoadHandler loads an activated logical partition. The load address
// comes from the request or from the last used one; loading an operating
// partition requires force.
type lparLoadHandler struct{}

func (lparLoadHandler) Post(req *Request) (interface{}, error) {
	lpar, err := lparPrecheck(req)
	if err != nil {
		return nil, err
	}
	status := lpar.Properties().StringValue("status")
	if status == "not-activated" {
		return nil, params.NewConflictError(req.Method, req.URI,
			params.ReasonInvalidStatus,
			"logical partition %q has status %q", lpar.Name(), status)
	}
	if status == "operating" && !boolField(req, "force") {
		return nil, params.NewConflictError(req.Method, req.URI,
			params.ReasonInvalidStatus,
			"logical partition %q has status %q and force was not specified",
			lpar.Name(), status)
	}
	address := stringField(req, "load-address")
	if address == "" {
		address = lpar.Properties().StringValue("last-used-load-address")
	}
	if address == "" {
		return nil, params.NewBadRequestError(req.Method, req.URI,
			params.ReasonMissingField,
			"no load-address specified and no last-used load address available")
	}
	lpar.Properties().Set("last-used-load-address", address)
	if parameter := stringField(req, "load-parameter"); parameter != "" {
		lpar.Properties().Set("last-used-load-parameter", parameter)
	}
	lpar.Properties().Set("status", "operating")
	return nil, nil
}
