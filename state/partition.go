// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package state

import (
	"fmt"
	"strconv"

	"github.com/juju/errors"

	"github.com/juju/fakeconsole/core/idpool"
)

// Device numbers are four hex digits from a per-partition pool; world-wide
// port names are twelve fixed hex digits followed by four digits allocated
// from a second per-partition pool.
const (
	devNumberLowest  = 0x8000
	devNumberHighest = 0xffff
	wwpnLowest       = 0x1000
	wwpnHighest      = 0xffff
	wwpnPrefix       = "AFFEAFFE0000"
)

// partitionPools holds the identifier pools private to one partition.
type partitionPools struct {
	devNumbers *idpool.Pool
	wwpns      *idpool.Pool
}

func newPartitionPools() *partitionPools {
	devNumbers, err := idpool.New(devNumberLowest, devNumberHighest)
	if err != nil {
		panic(err)
	}
	wwpns, err := idpool.New(wwpnLowest, wwpnHighest)
	if err != nil {
		panic(err)
	}
	return &partitionPools{devNumbers: devNumbers, wwpns: wwpns}
}

// newPartitionManager returns the partition manager of a DPM-mode CPC.
// Partitions are top-level objects with their own URI space.
func newPartitionManager(st *Store, cpc *Resource) *Manager {
	return &Manager{
		st:       st,
		parent:   cpc,
		key:      "partitions",
		baseURI:  "/api/partitions",
		idProp:   "object-id",
		uriProp:  "object-uri",
		classTag: "partition",
		prepare: func(m *Manager, p *Properties) error {
			if _, ok := p.Get("status"); !ok {
				p.Set("status", "stopped")
			}
			for _, name := range []string{"hba-uris", "nic-uris", "virtual-function-uris"} {
				if _, ok := p.Get(name); !ok {
					p.Set(name, []string{})
				}
			}
			return nil
		},
		postAdd: func(m *Manager, part *Resource) error {
			m.st.partitionPools[part.URI()] = newPartitionPools()
			part.addChild(newHBAManager(m.st, part))
			part.addChild(newNICManager(m.st, part))
			part.addChild(newVirtualFunctionManager(m.st, part))
			return nil
		},
		postRemove: func(m *Manager, part *Resource) {
			delete(m.st.partitionPools, part.URI())
		},
	}
}

// poolsFor returns the identifier pools of a partition. The store lock
// must be held.
func (st *Store) poolsFor(part *Resource) *partitionPools {
	return st.partitionPools[part.URI()]
}

// allocDeviceNumber fills the device-number property from the partition's
// pool unless the definition supplied one.
func allocDeviceNumber(st *Store, part *Resource, p *Properties) error {
	if _, ok := p.Get("device-number"); ok {
		return nil
	}
	pools := st.poolsFor(part)
	if pools == nil {
		return errors.NotFoundf("identifier pools of partition %q", part.URI())
	}
	n, err := pools.devNumbers.Alloc()
	if err != nil {
		return errors.Trace(err)
	}
	p.Set("device-number", fmt.Sprintf("%04X", n))
	return nil
}

// freeDeviceNumber returns an auto-assigned device number to the
// partition's pool. Unparseable values (supplied by a seed) are ignored.
func freeDeviceNumber(st *Store, part *Resource, p *Properties) {
	pools := st.poolsFor(part)
	if pools == nil {
		return
	}
	devno := p.StringValue("device-number")
	if n, err := strconv.ParseInt(devno, 16, 32); err == nil {
		pools.devNumbers.FreeIfAllocated(int(n))
	}
}

// newHBAManager returns the HBA manager of a partition. HBAs are elements
// of their partition.
func newHBAManager(st *Store, part *Resource) *Manager {
	return &Manager{
		st:       st,
		parent:   part,
		key:      "hbas",
		baseURI:  part.URI() + "/hbas",
		idProp:   "element-id",
		uriProp:  "element-uri",
		classTag: "hba",
		prepare: func(m *Manager, p *Properties) error {
			if _, ok := p.Get("adapter-port-uri"); !ok {
				return errors.NotValidf("hba without adapter-port-uri")
			}
			return nil
		},
		postAdd: func(m *Manager, hba *Resource) error {
			part := m.parent
			if err := allocDeviceNumber(m.st, part, hba.props); err != nil {
				return errors.Trace(err)
			}
			if err := allocWWPN(m.st, part, hba.props); err != nil {
				return errors.Trace(err)
			}
			part.props.AppendToStrings("hba-uris", hba.URI())
			return nil
		},
		postRemove: func(m *Manager, hba *Resource) {
			part := m.parent
			freeDeviceNumber(m.st, part, hba.props)
			freeWWPN(m.st, part, hba.props)
			part.props.RemoveFromStrings("hba-uris", hba.URI())
		},
	}
}

func allocWWPN(st *Store, part *Resource, p *Properties) error {
	if _, ok := p.Get("wwpn"); ok {
		return nil
	}
	pools := st.poolsFor(part)
	if pools == nil {
		return errors.NotFoundf("identifier pools of partition %q", part.URI())
	}
	n, err := pools.wwpns.Alloc()
	if err != nil {
		return errors.Trace(err)
	}
	p.Set("wwpn", fmt.Sprintf("%s%04X", wwpnPrefix, n))
	return nil
}

func freeWWPN(st *Store, part *Resource, p *Properties) {
	pools := st.poolsFor(part)
	if pools == nil {
		return
	}
	wwpn := p.StringValue("wwpn")
	if len(wwpn) != len(wwpnPrefix)+4 {
		return
	}
	if n, err := strconv.ParseInt(wwpn[len(wwpnPrefix):], 16, 32); err == nil {
		pools.wwpns.FreeIfAllocated(int(n))
	}
}

// newNICManager returns the NIC manager of a partition. A NIC is backed by
// exactly one of a network adapter port or a virtual switch; a virtual
// switch backing is recorded on the switch as well.
func newNICManager(st *Store, part *Resource) *Manager {
	return &Manager{
		st:       st,
		parent:   part,
		key:      "nics",
		baseURI:  part.URI() + "/nics",
		idProp:   "element-id",
		uriProp:  "element-uri",
		classTag: "nic",
		prepare: func(m *Manager, p *Properties) error {
			_, hasPort := p.Get("network-adapter-port-uri")
			vsURI, hasVS := p.Get("virtual-switch-uri")
			if hasPort == hasVS {
				return errors.NotValidf("nic with neither or both of network-adapter-port-uri and virtual-switch-uri")
			}
			if hasVS {
				s, ok := vsURI.(string)
				if !ok {
					return errors.NotValidf("virtual-switch-uri of type %T", vsURI)
				}
				if _, err := m.st.lookupLocked(s); err != nil {
					return errors.Annotatef(ErrDanglingReference, "virtual switch %q", s)
				}
			}
			return nil
		},
		postAdd: func(m *Manager, nic *Resource) error {
			part := m.parent
			if err := allocDeviceNumber(m.st, part, nic.props); err != nil {
				return errors.Trace(err)
			}
			part.props.AppendToStrings("nic-uris", nic.URI())
			if vsURI := nic.props.StringValue("virtual-switch-uri"); vsURI != "" {
				vs, err := m.st.lookupLocked(vsURI)
				if err != nil {
					return errors.Annotatef(ErrDanglingReference, "virtual switch %q", vsURI)
				}
				vs.props.AppendToStrings("connected-vnic-uris", nic.URI())
			}
			return nil
		},
		// Removing a NIC intentionally does not reconcile the backing
		// virtual switch's connected-vnic-uris; the real server leaves
		// the stale entry behind.
		postRemove: func(m *Manager, nic *Resource) {
			part := m.parent
			freeDeviceNumber(m.st, part, nic.props)
			part.props.RemoveFromStrings("nic-uris", nic.URI())
		},
	}
}

// newVirtualFunctionManager returns the virtual function manager of a
// partition.
func newVirtualFunctionManager(st *Store, part *Resource) *Manager {
	return &Manager{
		st:       st,
		parent:   part,
		key:      "virtual-functions",
		baseURI:  part.URI() + "/virtual-functions",
		idProp:   "element-id",
		uriProp:  "element-uri",
		classTag: "virtual-function",
		postAdd: func(m *Manager, vf *Resource) error {
			part := m.parent
			if err := allocDeviceNumber(m.st, part, vf.props); err != nil {
				return errors.Trace(err)
			}
			part.props.AppendToStrings("virtual-function-uris", vf.URI())
			return nil
		},
		postRemove: func(m *Manager, vf *Resource) {
			part := m.parent
			freeDeviceNumber(m.st, part, vf.props)
			part.props.RemoveFromStrings("virtual-function-uris", vf.URI())
		},
	}
}
