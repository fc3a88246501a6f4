// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package server

// activationProfilesHandler lists one kind of activation profile
// ("reset", "image" or "load") of a classic-mode CPC. Profiles key
// identity by name.
type activationProfilesHandler struct {
	kind string
}

func (h activationProfilesHandler) Get(req *Request) (interface{}, error) {
	cpc, err := lookupCPC(req, req.Args[0])
	if err != nil {
		return nil, err
	}
	filter, err := parseFilter(req.Method, req.URI, req.Args[1])
	if err != nil {
		return nil, err
	}
	profiles := cpc.ChildManager(h.kind + "-activation-profiles").List(filter)
	return listResult(h.kind+"-activation-profiles", profiles, "name", "element-uri"), nil
}

// activationProfileHandler serves one activation profile.
type activationProfileHandler struct {
	genericGet
	genericUpdate
}
