// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package server

// virtualSwitchesHandler lists the virtual switches of a CPC.
type virtualSwitchesHandler struct{}

func (virtualSwitchesHandler) Get(req *Request) (interface{}, error) {
	cpc, err := lookupCPC(req, req.Args[0])
	if err != nil {
		return nil, err
	}
	filter, err := parseFilter(req.Method, req.URI, req.Args[1])
	if err != nil {
		return nil, err
	}
	switches := cpc.ChildManager("virtual-switches").List(filter)
	return listResult("virtual-switches", switches, "object-uri", "name", "type"), nil
}

// virtualSwitchHandler serves one virtual switch.
type virtualSwitchHandler struct {
	genericGet
	genericUpdate
}

// virtualSwitchVnicsHandler reports the NIC URIs connected to a virtual
// switch. Stale entries from deleted NICs are reported as-is.
type virtualSwitchVnicsHandler struct{}

func (virtualSwitchVnicsHandler) Get(req *Request) (interface{}, error) {
	vs, err := lookupURI(req, "/api/virtual-switches/"+req.Args[0])
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"connected-vnic-uris": vs.Properties().StringsValue("connected-vnic-uris"),
	}, nil
}
