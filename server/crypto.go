// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package server

import (
	"github.com/juju/fakeconsole/api/params"
	"github.com/juju/fakeconsole/state"
)

// The crypto configuration of a partition is a sub-object with two
// sequences: crypto-adapter-uris and crypto-domain-configurations (each a
// {domain-index, access-mode} pair). Increase performs a set union,
// decrease a set subtraction, change replaces the access mode of one
// domain. The sub-object is initialized lazily by the first operation.

func cryptoConfig(part *state.Resource) map[string]interface{} {
	if v, ok := part.Properties().Get("crypto-configuration"); ok {
		if cfg, ok := v.(map[string]interface{}); ok {
			return cfg
		}
	}
	cfg := map[string]interface{}{
		"crypto-adapter-uris":          []interface{}{},
		"crypto-domain-configurations": []interface{}{},
	}
	part.Properties().Set("crypto-configuration", cfg)
	return cfg
}

func adapterURIs(cfg map[string]interface{}) []interface{} {
	if v, ok := cfg["crypto-adapter-uris"].([]interface{}); ok {
		return v
	}
	return nil
}

func domainConfigs(cfg map[string]interface{}) []interface{} {
	if v, ok := cfg["crypto-domain-configurations"].([]interface{}); ok {
		return v
	}
	return nil
}

// numEq compares two numeric values regardless of their decoded Go type;
// domain indexes arrive as int from Go code and as float64 from JSON.
func numEq(a, b interface{}) bool {
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	return aok && bok && af == bf
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func domainIndex(entry interface{}) (interface{}, bool) {
	m, ok := entry.(map[string]interface{})
	if !ok {
		return nil, false
	}
	idx, ok := m["domain-index"]
	return idx, ok
}

// partitionIncreaseCryptoHandler adds adapters and domain configurations
// to a partition's crypto configuration.
type partitionIncreaseCryptoHandler struct{}

func (partitionIncreaseCryptoHandler) Post(req *Request) (interface{}, error) {
	part, err := lookupPartition(req, req.Args[0])
	if err != nil {
		return nil, err
	}
	cfg := cryptoConfig(part)

	uris := adapterURIs(cfg)
	for _, add := range listBody(req, "crypto-adapter-uris") {
		if !containsValue(uris, add) {
			uris = append(uris, add)
		}
	}
	cfg["crypto-adapter-uris"] = uris

	domains := domainConfigs(cfg)
	for _, add := range listBody(req, "crypto-domain-configurations") {
		idx, ok := domainIndex(add)
		if !ok {
			return nil, params.NewBadRequestError(req.Method, req.URI,
				params.ReasonMissingField, "crypto domain configuration without domain-index")
		}
		if !containsDomain(domains, idx) {
			domains = append(domains, add)
		}
	}
	cfg["crypto-domain-configurations"] = domains
	return nil, nil
}

// partitionDecreaseCryptoHandler removes adapters and domain indexes from
// a partition's crypto configuration.
type partitionDecreaseCryptoHandler struct{}

func (partitionDecreaseCryptoHandler) Post(req *Request) (interface{}, error) {
	part, err := lookupPartition(req, req.Args[0])
	if err != nil {
		return nil, err
	}
	cfg := cryptoConfig(part)

	uris := adapterURIs(cfg)
	for _, del := range listBody(req, "crypto-adapter-uris") {
		uris = removeValue(uris, del)
	}
	cfg["crypto-adapter-uris"] = uris

	domains := domainConfigs(cfg)
	for _, del := range listBody(req, "crypto-domain-indexes") {
		kept := make([]interface{}, 0, len(domains))
		for _, entry := range domains {
			if idx, ok := domainIndex(entry); ok && numEq(idx, del) {
				continue
			}
			kept = append(kept, entry)
		}
		domains = kept
	}
	cfg["crypto-domain-configurations"] = domains
	return nil, nil
}

// partitionChangeCryptoHandler replaces the access mode of one domain in
// a partition's crypto configuration.
type partitionChangeCryptoHandler struct{}

func (partitionChangeCryptoHandler) Post(req *Request) (interface{}, error) {
	part, err := lookupPartition(req, req.Args[0])
	if err != nil {
		return nil, err
	}
	if err := requireFields(req, "domain-index", "access-mode"); err != nil {
		return nil, err
	}
	cfg := cryptoConfig(part)
	wantIdx := req.Body["domain-index"]
	mode := req.Body["access-mode"]
	for _, entry := range domainConfigs(cfg) {
		if idx, ok := domainIndex(entry); ok && numEq(idx, wantIdx) {
			entry.(map[string]interface{})["access-mode"] = mode
		}
	}
	return nil, nil
}

func listBody(req *Request, name string) []interface{} {
	if v, ok := req.Body[name].([]interface{}); ok {
		return v
	}
	return nil
}

func containsValue(list []interface{}, v interface{}) bool {
	for _, e := range list {
		if e == v {
			return true
		}
	}
	return false
}

func removeValue(list []interface{}, v interface{}) []interface{} {
	out := make([]interface{}, 0, len(list))
	for _, e := range list {
		if e != v {
			out = append(out, e)
		}
	}
	return out
}

func containsDomain(domains []interface{}, idx interface{}) bool {
	for _, entry := range domains {
		if have, ok := domainIndex(entry); ok && numEq(have, idx) {
			return true
		}
	}
	return false
}
