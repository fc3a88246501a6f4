// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package params holds the wire-level shapes shared between the faked
// console server and its callers: the error body returned for failed
// operations, the reason codes disambiguating failures within one HTTP
// status, and the connectivity error reported while the console is down.
package params

import (
	"fmt"
)

// Reason codes, scoped to the HTTP status they accompany. The console API
// reuses small integers across statuses, so the names carry the status.
const (
	// 400 (bad request) reasons.
	ReasonMalformedQuery = 1
	ReasonMissingField   = 5
	ReasonInvalidValue   = 7

	// 404 (not found) reason. Unknown resources and unknown methods share
	// the code; the message tells them apart.
	ReasonNotFound = 1

	// 409 (conflict) reasons.
	ReasonInvalidStatus       = 1
	ReasonMembershipConflict  = 2
	ReasonCPCInDPMMode        = 4
	ReasonCPCNotInDPMMode     = 5
	ReasonHostingCPCBadStatus = 6

	// 500 (server error) reasons.
	ReasonProfileNameMismatch = 263
)

// HTTPError is the error body carried by every failed console operation.
type HTTPError struct {
	Method     string `json:"request-method"`
	URI        string `json:"request-uri"`
	HTTPStatus int    `json:"http-status"`
	Reason     int    `json:"reason"`
	Message    string `json:"message"`
}

// Error implements error.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s %s failed with %d,%d: %s",
		e.Method, e.URI, e.HTTPStatus, e.Reason, e.Message)
}

// NewInvalidResourceError reports that a URI does not name a resource.
func NewInvalidResourceError(method, uri string) *HTTPError {
	return &HTTPError{
		Method:     method,
		URI:        uri,
		HTTPStatus: 404,
		Reason:     ReasonNotFound,
		Message:    fmt.Sprintf("unknown resource with URI %q", uri),
	}
}

// NewInvalidMethodError reports a method the matched handler does not
// implement.
func NewInvalidMethodError(method, uri string) *HTTPError {
	return &HTTPError{
		Method:     method,
		URI:        uri,
		HTTPStatus: 404,
		Reason:     ReasonNotFound,
		Message:    fmt.Sprintf("method %s not supported for URI %q", method, uri),
	}
}

// NewBadRequestError reports a malformed or incomplete request.
func NewBadRequestError(method, uri string, reason int, format string, args ...interface{}) *HTTPError {
	return &HTTPError{
		Method:     method,
		URI:        uri,
		HTTPStatus: 400,
		Reason:     reason,
		Message:    fmt.Sprintf(format, args...),
	}
}

// NewConflictError reports a violated mode, status or membership
// precondition.
func NewConflictError(method, uri string, reason int, format string, args ...interface{}) *HTTPError {
	return &HTTPError{
		Method:     method,
		URI:        uri,
		HTTPStatus: 409,
		Reason:     reason,
		Message:    fmt.Sprintf(format, args...),
	}
}

// NewServerError reports a domain-specific operational failure.
func NewServerError(method, uri string, reason int, format string, args ...interface{}) *HTTPError {
	return &HTTPError{
		Method:     method,
		URI:        uri,
		HTTPStatus: 500,
		Reason:     reason,
		Message:    fmt.Sprintf(format, args...),
	}
}

// ConnectionError reports that the faked console is unreachable, which is
// what every operation returns while the console is disabled (for example
// during the restart window).
type ConnectionError struct {
	Message string
}

// Error implements error.
func (e *ConnectionError) Error() string {
	return e.Message
}

// NewConnectionError returns a ConnectionError naming the console host.
func NewConnectionError(host string) *ConnectionError {
	return &ConnectionError{
		Message: fmt.Sprintf("console %s is not reachable", host),
	}
}

// IsConnectionError reports whether err is a console connectivity error.
func IsConnectionError(err error) bool {
	_, ok := err.(*ConnectionError)
	return ok
}
