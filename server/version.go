// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package server

// The API version reported by the faked console. Clients use it for the
// initial handshake only.
const (
	apiMajorVersion = 2
	apiMinorVersion = 20
)

// versionHandler serves the version handshake.
type versionHandler struct{}

func (versionHandler) Get(req *Request) (interface{}, error) {
	console := req.Store.Console()
	return map[string]interface{}{
		"api-major-version": apiMajorVersion,
		"api-minor-version": apiMinorVersion,
		"console-name":      req.Store.Host(),
		"console-version":   console.Properties().StringValue("version"),
	}, nil
}
