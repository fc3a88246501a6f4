// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package server

// consoleHandler serves the single console resource.
type consoleHandler struct {
	genericGet
	genericUpdate
}

// consoleRestartHandler simulates a console restart: the store is
// disabled, stays unreachable for the configured restart window, then is
// re-enabled. The caller's request rides out the window; any concurrent
// request observes the disabled store and fails with a connectivity
// error.
type consoleRestartHandler struct{}

func (consoleRestartHandler) Post(req *Request) (interface{}, error) {
	st := req.Store
	logger.Infof("restarting console %s", st.Host())
	st.SetEnabled(false)
	<-st.Clock().After(st.RestartWindow())
	st.SetEnabled(true)
	return nil, nil
}
