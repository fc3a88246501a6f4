// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package server

// addConsoleRoutes installs the console API routing table. The table is
// ordered and the first matching pattern wins, so operation routes are
// registered before the object routes whose URIs they extend.
func (rt *Router) addConsoleRoutes() {
	rt.Handle(`/api/version`, versionHandler{})

	rt.Handle(`/api/console/operations/restart`, consoleRestartHandler{})
	rt.Handle(`/api/console`, consoleHandler{})

	rt.Handle(`/api/console/users(?:\?(.*))?`, usersHandler())
	rt.Handle(`/api/users/([^/]+)`, consoleChild{})
	rt.Handle(`/api/console/user-roles(?:\?(.*))?`, userRolesHandler())
	rt.Handle(`/api/user-roles/([^/]+)`, consoleChild{})
	rt.Handle(`/api/console/user-patterns(?:\?(.*))?`, userPatternsHandler())
	rt.Handle(`/api/console/user-patterns/([^/]+)`, consoleChild{})
	rt.Handle(`/api/console/password-rules(?:\?(.*))?`, passwordRulesHandler())
	rt.Handle(`/api/console/password-rules/([^/]+)`, consoleChild{})
	rt.Handle(`/api/console/tasks(?:\?(.*))?`, tasksHandler())
	rt.Handle(`/api/console/tasks/([^/]+)`, taskHandler{})
	rt.Handle(`/api/console/ldap-server-definitions(?:\?(.*))?`, ldapServerDefinitionsHandler())
	rt.Handle(`/api/console/ldap-server-definitions/([^/]+)`, consoleChild{})

	rt.Handle(`/api/cpcs(?:\?(.*))?`, cpcsHandler{})
	rt.Handle(`/api/cpcs/([^/]+)`, cpcHandler{})

	rt.Handle(`/api/cpcs/([^/]+)/partitions(?:\?(.*))?`, partitionsHandler{})
	rt.Handle(`/api/partitions/([^/]+)/operations/start`, partitionStartHandler{})
	rt.Handle(`/api/partitions/([^/]+)/operations/stop`, partitionStopHandler{})
	rt.Handle(`/api/partitions/([^/]+)/operations/increase-crypto-configuration`,
		partitionIncreaseCryptoHandler{})
	rt.Handle(`/api/partitions/([^/]+)/operations/decrease-crypto-configuration`,
		partitionDecreaseCryptoHandler{})
	rt.Handle(`/api/partitions/([^/]+)/operations/change-crypto-domain-configuration`,
		partitionChangeCryptoHandler{})
	rt.Handle(`/api/partitions/([^/]+)`, partitionHandler{})

	rt.Handle(`/api/partitions/([^/]+)/hbas`, hbasHandler{})
	rt.Handle(`/api/partitions/([^/]+)/hbas/([^/]+)`, hbaHandler{})
	rt.Handle(`/api/partitions/([^/]+)/nics`, nicsHandler{})
	rt.Handle(`/api/partitions/([^/]+)/nics/([^/]+)`, nicHandler{})
	rt.Handle(`/api/partitions/([^/]+)/virtual-functions`, virtualFunctionsHandler{})
	rt.Handle(`/api/partitions/([^/]+)/virtual-functions/([^/]+)`, virtualFunctionHandler{})

	rt.Handle(`/api/cpcs/([^/]+)/adapters(?:\?(.*))?`, adaptersHandler{})
	rt.Handle(`/api/adapters/([^/]+)`, adapterHandler{})
	rt.Handle(`/api/adapters/([^/]+)/network-ports/([^/]+)`, portHandler{})
	rt.Handle(`/api/adapters/([^/]+)/storage-ports/([^/]+)`, portHandler{})

	rt.Handle(`/api/cpcs/([^/]+)/virtual-switches(?:\?(.*))?`, virtualSwitchesHandler{})
	rt.Handle(`/api/virtual-switches/([^/]+)/operations/get-connected-vnics`,
		virtualSwitchVnicsHandler{})
	rt.Handle(`/api/virtual-switches/([^/]+)`, virtualSwitchHandler{})

	rt.Handle(`/api/cpcs/([^/]+)/logical-partitions(?:\?(.*))?`, lparsHandler{})
	rt.Handle(`/api/logical-partitions/([^/]+)/operations/activate`, lparActivateHandler{})
	rt.Handle(`/api/logical-partitions/([^/]+)/operations/deactivate`, lparDeactivateHandler{})
	rt.Handle(`/api/logical-partitions/([^/]+)/operations/load`, lparLoadHandler{})
	rt.Handle(`/api/logical-partitions/([^/]+)`, lparHandler{})

	rt.Handle(`/api/cpcs/([^/]+)/reset-activation-profiles(?:\?(.*))?`,
		activationProfilesHandler{kind: "reset"})
	rt.Handle(`/api/cpcs/([^/]+)/reset-activation-profiles/([^/]+)`,
		activationProfileHandler{})
	rt.Handle(`/api/cpcs/([^/]+)/image-activation-profiles(?:\?(.*))?`,
		activationProfilesHandler{kind: "image"})
	rt.Handle(`/api/cpcs/([^/]+)/image-activation-profiles/([^/]+)`,
		activationProfileHandler{})
	rt.Handle(`/api/cpcs/([^/]+)/load-activation-profiles(?:\?(.*))?`,
		activationProfilesHandler{kind: "load"})
	rt.Handle(`/api/cpcs/([^/]+)/load-activation-profiles/([^/]+)`,
		activationProfileHandler{})

	rt.Handle(`/api/cpcs/([^/]+)/capacity-groups(?:\?(.*))?`, capacityGroupsHandler{})
	rt.Handle(`/api/cpcs/([^/]+)/capacity-groups/([^/]+)/operations/add-partition`,
		capacityGroupAddPartitionHandler{})
	rt.Handle(`/api/cpcs/([^/]+)/capacity-groups/([^/]+)/operations/remove-partition`,
		capacityGroupRemovePartitionHandler{})
	rt.Handle(`/api/cpcs/([^/]+)/capacity-groups/([^/]+)`, capacityGroupHandler{})

	rt.Handle(`/api/storage-groups(?:\?(.*))?`, storageGroupsHandler{})
	rt.Handle(`/api/storage-groups/([^/]+)/operations/delete`, storageGroupDeleteHandler{})
	rt.Handle(`/api/storage-groups/([^/]+)/operations/modify`, storageGroupModifyHandler{})
	rt.Handle(`/api/storage-groups/([^/]+)/storage-volumes(?:\?(.*))?`, storageVolumesHandler{})
	rt.Handle(`/api/storage-groups/([^/]+)/storage-volumes/([^/]+)`, storageVolumeHandler{})
	rt.Handle(`/api/storage-groups/([^/]+)`, storageGroupHandler{})

	rt.Handle(`/api/services/metrics/context`, metricsContextsHandler{})
	rt.Handle(`/api/services/metrics/context/([^/]+)`, metricsContextHandler{})
}
