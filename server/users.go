// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package server

import (
	"github.com/juju/fakeconsole/api/params"
	"github.com/juju/fakeconsole/state"
)

// consoleChildList is the shared list/create handler for the console's
// flat child collections (users, user roles, user patterns, password
// rules, LDAP server definitions, tasks). The differences are the
// manager's definition key, the response body key, the reduced property
// subset and the URI property named in create responses.
type consoleChildList struct {
	managerKey string
	bodyKey    string
	listProps  []string
	uriProp    string

	// createFields are the required create fields; a nil slice marks a
	// read-only collection (tasks) whose post is rejected.
	createFields []string
}

func (h consoleChildList) manager(req *Request) *state.Manager {
	return req.Store.Console().ChildManager(h.managerKey)
}

func (h consoleChildList) Get(req *Request) (interface{}, error) {
	filter, err := parseFilter(req.Method, req.URI, req.Args[len(req.Args)-1])
	if err != nil {
		return nil, err
	}
	return listResult(h.bodyKey, h.manager(req).List(filter), h.listProps...), nil
}

func (h consoleChildList) Post(req *Request) (interface{}, error) {
	if h.createFields == nil {
		return nil, params.NewInvalidMethodError(req.Method, req.URI)
	}
	if err := requireFields(req, h.createFields...); err != nil {
		return nil, err
	}
	r, err := h.manager(req).Add(req.Body)
	if err != nil {
		return nil, params.NewBadRequestError(req.Method, req.URI,
			params.ReasonInvalidValue, "%v", err)
	}
	return map[string]interface{}{h.uriProp: r.URI()}, nil
}

// consoleChild is the shared get/update/delete handler for members of the
// console's flat child collections.
type consoleChild struct {
	genericGet
	genericUpdate
	genericDelete
}

// taskHandler serves tasks, which are read-only.
type taskHandler struct {
	genericGet
}

func usersHandler() consoleChildList {
	return consoleChildList{
		managerKey:   "users",
		bodyKey:      "users",
		listProps:    []string{"object-uri", "name", "type"},
		uriProp:      "object-uri",
		createFields: []string{"name", "type", "authentication-type"},
	}
}

func userRolesHandler() consoleChildList {
	return consoleChildList{
		managerKey:   "user-roles",
		bodyKey:      "user-roles",
		listProps:    []string{"object-uri", "name", "type"},
		uriProp:      "object-uri",
		createFields: []string{"name"},
	}
}

func userPatternsHandler() consoleChildList {
	return consoleChildList{
		managerKey:   "user-patterns",
		bodyKey:      "user-patterns",
		listProps:    []string{"element-uri", "name", "type"},
		uriProp:      "element-uri",
		createFields: []string{"name", "pattern", "type", "user-template-uri"},
	}
}

func passwordRulesHandler() consoleChildList {
	return consoleChildList{
		managerKey:   "password-rules",
		bodyKey:      "password-rules",
		listProps:    []string{"element-uri", "name", "type"},
		uriProp:      "element-uri",
		createFields: []string{"name"},
	}
}

func ldapServerDefinitionsHandler() consoleChildList {
	return consoleChildList{
		managerKey:   "ldap-server-definitions",
		bodyKey:      "ldap-server-definitions",
		listProps:    []string{"element-uri", "name"},
		uriProp:      "element-uri",
		createFields: []string{"name", "primary-hostname-ipaddr"},
	}
}

func tasksHandler() consoleChildList {
	return consoleChildList{
		managerKey: "tasks",
		bodyKey:    "tasks",
		listProps:  []string{"element-uri", "name"},
	}
}
