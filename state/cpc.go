// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package state

// newCPCManager returns the top-level compute complex manager. Each added
// CPC is given the full set of child managers for both operating modes;
// which of them carry resources depends on whether the CPC is DPM-enabled.
func newCPCManager(st *Store) *Manager {
	return &Manager{
		st:       st,
		key:      "cpcs",
		baseURI:  "/api/cpcs",
		idProp:   "object-id",
		uriProp:  "object-uri",
		classTag: "cpc",
		prepare:  prepareCPC,
		postAdd:  addCPCChildren,
	}
}

func prepareCPC(m *Manager, p *Properties) error {
	if _, ok := p.Get("dpm-enabled"); !ok {
		p.Set("dpm-enabled", false)
	}
	if _, ok := p.Get("is-ensemble-member"); !ok {
		p.Set("is-ensemble-member", false)
	}
	if _, ok := p.Get("status"); !ok {
		if p.BoolValue("dpm-enabled") {
			p.Set("status", "active")
		} else {
			p.Set("status", "operating")
		}
	}
	return nil
}

func addCPCChildren(m *Manager, cpc *Resource) error {
	st := m.st
	cpc.addChild(newPartitionManager(st, cpc))
	cpc.addChild(newLparManager(st, cpc))
	cpc.addChild(newAdapterManager(st, cpc))
	cpc.addChild(newVirtualSwitchManager(st, cpc))
	cpc.addChild(newCapacityGroupManager(st, cpc))
	cpc.addChild(newActivationProfileManager(st, cpc, "reset"))
	cpc.addChild(newActivationProfileManager(st, cpc, "image"))
	cpc.addChild(newActivationProfileManager(st, cpc, "load"))
	return nil
}

// newLparManager returns the logical partition manager of a classic-mode
// CPC. Logical partitions are top-level objects with their own URI space.
func newLparManager(st *Store, cpc *Resource) *Manager {
	return &Manager{
		st:       st,
		parent:   cpc,
		key:      "logical-partitions",
		baseURI:  "/api/logical-partitions",
		idProp:   "object-id",
		uriProp:  "object-uri",
		classTag: "logical-partition",
		prepare: func(m *Manager, p *Properties) error {
			if _, ok := p.Get("status"); !ok {
				p.Set("status", "not-activated")
			}
			return nil
		},
	}
}

// newVirtualSwitchManager returns the virtual switch manager of a
// DPM-mode CPC.
func newVirtualSwitchManager(st *Store, cpc *Resource) *Manager {
	return &Manager{
		st:       st,
		parent:   cpc,
		key:      "virtual-switches",
		baseURI:  "/api/virtual-switches",
		idProp:   "object-id",
		uriProp:  "object-uri",
		classTag: "virtual-switch",
		prepare: func(m *Manager, p *Properties) error {
			if _, ok := p.Get("connected-vnic-uris"); !ok {
				p.Set("connected-vnic-uris", []string{})
			}
			return nil
		},
	}
}

// newCapacityGroupManager returns the capacity group manager of a CPC.
// Capacity groups are elements of their CPC.
func newCapacityGroupManager(st *Store, cpc *Resource) *Manager {
	return &Manager{
		st:       st,
		parent:   cpc,
		key:      "capacity-groups",
		baseURI:  cpc.URI() + "/capacity-groups",
		idProp:   "element-id",
		uriProp:  "element-uri",
		classTag: "capacity-group",
		prepare: func(m *Manager, p *Properties) error {
			if _, ok := p.Get("partition-uris"); !ok {
				p.Set("partition-uris", []string{})
			}
			if _, ok := p.Get("capping-enabled"); !ok {
				p.Set("capping-enabled", true)
			}
			return nil
		},
	}
}

// newActivationProfileManager returns the manager for one of the three
// activation profile kinds ("reset", "image", "load") of a classic-mode
// CPC. Activation profiles key identity by name.
func newActivationProfileManager(st *Store, cpc *Resource, kind string) *Manager {
	return &Manager{
		st:        st,
		parent:    cpc,
		key:       kind + "-activation-profiles",
		baseURI:   cpc.URI() + "/" + kind + "-activation-profiles",
		idProp:    "name",
		uriProp:   "element-uri",
		classTag:  kind + "-activation-profile",
		nameKeyed: true,
	}
}
