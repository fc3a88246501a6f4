// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package state

import (
	"github.com/juju/errors"
)

const (
	// ErrInvalidChildType is returned by the bulk loader when a
	// definition key does not name a child manager of the target
	// resource.
	ErrInvalidChildType = errors.ConstError("invalid child resource type")

	// ErrMissingProperties is returned by the bulk loader when a
	// resource item lacks a properties block.
	ErrMissingProperties = errors.ConstError("missing properties block")

	// ErrDanglingReference is returned when a resource definition
	// references another resource by URI and no such resource exists.
	ErrDanglingReference = errors.ConstError("dangling resource reference")

	// ErrMissingAdapterFamily is returned for an adapter definition that
	// carries neither an adapter-family nor a type property.
	ErrMissingAdapterFamily = errors.ConstError("adapter family cannot be determined")

	// ErrUnknownAdapterType is returned for an adapter type that maps to
	// no known adapter family.
	ErrUnknownAdapterType = errors.ConstError("unknown adapter type")
)
