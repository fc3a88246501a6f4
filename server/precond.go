// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package server

import (
	"github.com/juju/collections/set"

	"github.com/juju/fakeconsole/api/params"
	"github.com/juju/fakeconsole/state"
)

// validCPCStatuses are the compute complex statuses under which
// operations targeting the CPC or its hosted resources are accepted.
var validCPCStatuses = set.NewStrings("active", "service-required", "degraded", "exceptions")

// cpcOf walks the manager chain up to the compute complex hosting the
// resource, or nil if the resource is not hosted by one.
func cpcOf(r *state.Resource) *state.Resource {
	for m := r.Manager(); m != nil; {
		parent := m.Parent()
		if parent == nil {
			return nil
		}
		if parent.Class() == "cpc" {
			return parent
		}
		m = parent.Manager()
	}
	return nil
}

// checkCPCStatus fails with a conflict unless the CPC's status allows
// operations. The reason code distinguishes a request targeting the CPC
// itself from one targeting a hosted resource.
func checkCPCStatus(req *Request, cpc *state.Resource) error {
	status := cpc.Properties().StringValue("status")
	if validCPCStatuses.Contains(status) {
		return nil
	}
	reason := params.ReasonHostingCPCBadStatus
	if targetURI(req) == cpc.URI() {
		reason = params.ReasonInvalidStatus
	}
	return params.NewConflictError(req.Method, req.URI, reason,
		"CPC %q has status %q, which does not permit this operation",
		cpc.Name(), status)
}

// checkDPMEnabled fails with a conflict if the CPC is not in DPM mode.
func checkDPMEnabled(req *Request, cpc *state.Resource) error {
	if cpc.Properties().BoolValue("dpm-enabled") {
		return nil
	}
	return params.NewConflictError(req.Method, req.URI, params.ReasonCPCNotInDPMMode,
		"CPC %q is not in DPM mode", cpc.Name())
}

// checkDPMDisabled fails with a conflict if the CPC is in DPM mode.
func checkDPMDisabled(req *Request, cpc *state.Resource) error {
	if !cpc.Properties().BoolValue("dpm-enabled") {
		return nil
	}
	return params.NewConflictError(req.Method, req.URI, params.ReasonCPCInDPMMode,
		"CPC %q is in DPM mode", cpc.Name())
}

// checkStatus fails with a conflict unless the resource's own status is
// inside the allow set (when given) and outside the deny set (when
// given). A resource without a status property always passes.
func checkStatus(req *Request, r *state.Resource, allowed, denied set.Strings) error {
	v, ok := r.Properties().Get("status")
	if !ok {
		return nil
	}
	status, _ := v.(string)
	if allowed != nil && !allowed.Contains(status) {
		return statusConflict(req, r, status)
	}
	if denied != nil && denied.Contains(status) {
		return statusConflict(req, r, status)
	}
	return nil
}

func statusConflict(req *Request, r *state.Resource, status string) error {
	return params.NewConflictError(req.Method, req.URI, params.ReasonInvalidStatus,
		"%s %q has status %q, which does not permit this operation",
		r.Class(), r.Name(), status)
}

// requireFields fails with a bad-request error naming the first required
// body field that is absent.
func requireFields(req *Request, names ...string) error {
	for _, name := range names {
		if _, ok := req.Body[name]; !ok {
			return params.NewBadRequestError(req.Method, req.URI,
				params.ReasonMissingField, "required request body field %q is missing", name)
		}
	}
	return nil
}

// stringField returns a body field as a string; absence is reported by
// requireFields, so this returns "" for a missing or non-string field.
func stringField(req *Request, name string) string {
	if v, ok := req.Body[name]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// boolField returns a body field as a bool, defaulting to false.
func boolField(req *Request, name string) bool {
	if v, ok := req.Body[name]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return false
}
