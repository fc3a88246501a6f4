// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package testing provides helpers for seeding a faked console store
// from YAML scenario definitions.
package testing

import (
	"github.com/juju/errors"
	"gopkg.in/yaml.v3"

	"github.com/juju/fakeconsole/state"
)

// LoadSeed applies a YAML bulk definition to the store. The document has
// the same nested shape state.Store.AddResources accepts:
//
//	cpcs:
//	  - properties:
//	      name: CPC1
//	      dpm-enabled: true
//	    partitions:
//	      - properties:
//	          name: PART1
func LoadSeed(st *state.Store, data []byte) error {
	var defs map[string]interface{}
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return errors.Annotate(err, "parsing seed document")
	}
	return errors.Trace(st.AddResources(defs))
}

// MustLoadSeed is LoadSeed for test fixtures that are known to be valid.
func MustLoadSeed(st *state.Store, data []byte) {
	if err := LoadSeed(st, data); err != nil {
		panic(err)
	}
}
