// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package state

import (
	"github.com/juju/errors"
)

// adapterFamilyByType maps an adapter type to the family inferred for
// definitions that do not carry adapter-family.
var adapterFamilyByType = map[string]string{
	"osd":          "osa",
	"osm":          "osa",
	"roce":         "roce",
	"hipersockets": "hipersockets",
	"fcp":          "ficon",
	"crypto":       "crypto",
	"zedc":         "accelerator",
}

// adapterKind classifies an adapter family as a network, storage or other
// adapter; network and storage adapters carry ports.
func adapterKind(family string) string {
	switch family {
	case "osa", "roce", "hipersockets", "cna":
		return "network"
	case "ficon":
		return "storage"
	}
	return "other"
}

// newAdapterManager returns the adapter manager of a CPC. Adapters are
// top-level objects; network and storage adapters get a port manager and
// an empty port URI list on creation.
func newAdapterManager(st *Store, cpc *Resource) *Manager {
	return &Manager{
		st:       st,
		parent:   cpc,
		key:      "adapters",
		baseURI:  "/api/adapters",
		idProp:   "object-id",
		uriProp:  "object-uri",
		classTag: "adapter",
		prepare:  prepareAdapter,
		postAdd:  addAdapterPorts,
	}
}

func prepareAdapter(m *Manager, p *Properties) error {
	if _, ok := p.Get("status"); !ok {
		p.Set("status", "active")
	}
	if _, ok := p.Get("adapter-family"); ok {
		return nil
	}
	typ, ok := p.Get("type")
	if !ok {
		return errors.Trace(ErrMissingAdapterFamily)
	}
	typeName, _ := typ.(string)
	family, ok := adapterFamilyByType[typeName]
	if !ok {
		return errors.Annotatef(ErrUnknownAdapterType, "type %q", typeName)
	}
	p.Set("adapter-family", family)
	return nil
}

func addAdapterPorts(m *Manager, adapter *Resource) error {
	switch adapterKind(adapter.props.StringValue("adapter-family")) {
	case "network":
		adapter.props.Set("network-port-uris", []string{})
		adapter.addChild(newPortManager(m.st, adapter, "network"))
	case "storage":
		adapter.props.Set("storage-port-uris", []string{})
		adapter.addChild(newPortManager(m.st, adapter, "storage"))
	}
	return nil
}

// newPortManager returns the port manager of a network or storage adapter.
// Ports are elements of their adapter; adding or removing a port keeps the
// adapter's port URI list in step.
func newPortManager(st *Store, adapter *Resource, kind string) *Manager {
	listProp := kind + "-port-uris"
	return &Manager{
		st:       st,
		parent:   adapter,
		key:      "ports",
		baseURI:  adapter.URI() + "/" + kind + "-ports",
		idProp:   "element-id",
		uriProp:  "element-uri",
		classTag: kind + "-port",
		postAdd: func(m *Manager, port *Resource) error {
			m.parent.props.AppendToStrings(listProp, port.URI())
			return nil
		},
		postRemove: func(m *Manager, port *Resource) {
			m.parent.props.RemoveFromStrings(listProp, port.URI())
		},
	}
}
