// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package state

// newConsoleManager returns the manager holding the single console
// resource. The console lives at a fixed URI and owns the user management
// and storage group collections.
func newConsoleManager(st *Store) *Manager {
	return &Manager{
		st:           st,
		key:          "consoles",
		baseURI:      "/api/console",
		singletonURI: "/api/console",
		idProp:       "object-id",
		uriProp:      "object-uri",
		classTag:     "console",
		postAdd:      addConsoleChildren,
	}
}

func addConsoleChildren(m *Manager, console *Resource) error {
	st := m.st
	console.addChild(&Manager{
		st:       st,
		parent:   console,
		key:      "users",
		baseURI:  "/api/users",
		idProp:   "object-id",
		uriProp:  "object-uri",
		classTag: "user",
		prepare: func(m *Manager, p *Properties) error {
			if _, ok := p.Get("type"); !ok {
				p.Set("type", "standard")
			}
			return nil
		},
	})
	console.addChild(&Manager{
		st:       st,
		parent:   console,
		key:      "user-roles",
		baseURI:  "/api/user-roles",
		idProp:   "object-id",
		uriProp:  "object-uri",
		classTag: "user-role",
		prepare: func(m *Manager, p *Properties) error {
			if _, ok := p.Get("type"); !ok {
				p.Set("type", "user-defined")
			}
			return nil
		},
	})
	console.addChild(&Manager{
		st:       st,
		parent:   console,
		key:      "user-patterns",
		baseURI:  "/api/console/user-patterns",
		idProp:   "element-id",
		uriProp:  "element-uri",
		classTag: "user-pattern",
	})
	console.addChild(&Manager{
		st:       st,
		parent:   console,
		key:      "password-rules",
		baseURI:  "/api/console/password-rules",
		idProp:   "element-id",
		uriProp:  "element-uri",
		classTag: "password-rule",
	})
	console.addChild(&Manager{
		st:       st,
		parent:   console,
		key:      "tasks",
		baseURI:  "/api/console/tasks",
		idProp:   "element-id",
		uriProp:  "element-uri",
		classTag: "task",
	})
	console.addChild(&Manager{
		st:       st,
		parent:   console,
		key:      "ldap-server-definitions",
		baseURI:  "/api/console/ldap-server-definitions",
		idProp:   "element-id",
		uriProp:  "element-uri",
		classTag: "ldap-server-definition",
	})
	console.addChild(newStorageGroupManager(st, console))
	return nil
}

// newStorageGroupManager returns the storage group manager of the console.
// Storage groups are top-level objects owning their storage volumes.
func newStorageGroupManager(st *Store, console *Resource) *Manager {
	return &Manager{
		st:       st,
		parent:   console,
		key:      "storage-groups",
		baseURI:  "/api/storage-groups",
		idProp:   "object-id",
		uriProp:  "object-uri",
		classTag: "storage-group",
		prepare: func(m *Manager, p *Properties) error {
			if _, ok := p.Get("storage-volume-uris"); !ok {
				p.Set("storage-volume-uris", []string{})
			}
			if _, ok := p.Get("shared"); !ok {
				p.Set("shared", false)
			}
			if _, ok := p.Get("fulfillment-state"); !ok {
				p.Set("fulfillment-state", "complete")
			}
			return nil
		},
		postAdd: func(m *Manager, group *Resource) error {
			group.addChild(newStorageVolumeManager(m.st, group))
			return nil
		},
	}
}

// newStorageVolumeManager returns the storage volume manager of a storage
// group. Volumes are elements of their group.
func newStorageVolumeManager(st *Store, group *Resource) *Manager {
	return &Manager{
		st:       st,
		parent:   group,
		key:      "storage-volumes",
		baseURI:  group.URI() + "/storage-volumes",
		idProp:   "element-id",
		uriProp:  "element-uri",
		classTag: "storage-volume",
		prepare: func(m *Manager, p *Properties) error {
			if _, ok := p.Get("fulfillment-state"); !ok {
				p.Set("fulfillment-state", "complete")
			}
			return nil
		},
		postAdd: func(m *Manager, vol *Resource) error {
			m.parent.props.AppendToStrings("storage-volume-uris", vol.URI())
			return nil
		},
		// Volume removal does not chase references from elsewhere in
		// the graph; stale URIs are left behind, as on the real server.
		postRemove: func(m *Manager, vol *Resource) {
			m.parent.props.RemoveFromStrings("storage-volume-uris", vol.URI())
		},
	}
}
