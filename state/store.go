// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package state implements the resource graph of the faked console: the
// ordered per-type collections, the generated object/element identifiers
// and URIs, the per-operation bookkeeping between related resources, and
// the flat URI index used by the request router.
//
// The graph is designed for synchronous single-caller use, matching the
// request/response contract of the console API. A single store-wide mutex
// protects the URI index and the collections so that the disabled flag is
// observable from concurrent callers during the restart window.
package state

import (
	"sync"
	"time"

	"github.com/juju/clock"
	"github.com/juju/errors"
	"github.com/juju/loggo/v2"
)

var logger = loggo.GetLogger("fakeconsole.state")

// DefaultRestartWindow is how long the console stays unreachable while a
// restart operation is in flight, unless configured otherwise.
const DefaultRestartWindow = 5 * time.Second

// Config holds the construction parameters of a Store. The zero value is
// usable: defaults are filled by NewStore.
type Config struct {
	// Host names the faked console in connectivity error messages.
	Host string

	// Clock is used for the restart unavailability window and metric
	// sample timestamps. Defaults to the wall clock.
	Clock clock.Clock

	// RestartWindow overrides DefaultRestartWindow when non-zero.
	RestartWindow time.Duration
}

// Store is the root of the faked console: it owns the single console
// resource, the top-level compute complex and metrics context managers,
// and the flat URI index giving O(1) lookup of any resource. While the
// store is disabled, every routed operation fails with a connectivity
// error regardless of its target.
type Store struct {
	mu            sync.Mutex
	host          string
	clk           clock.Clock
	restartWindow time.Duration
	enabled       bool

	uris map[string]*Resource

	consoles        *Manager
	console         *Resource
	cpcs            *Manager
	metricsContexts *Manager

	// partitionPools carries the per-partition identifier pools, keyed
	// by partition URI. The pools live and die with the partition.
	partitionPools map[string]*partitionPools

	metricGroups map[string]MetricGroupDefinition
	groupOrder   []string
	metricValues []MetricObjectValues
}

// NewStore returns an enabled store holding a console resource with
// default properties and empty top-level collections.
func NewStore(cfg Config) *Store {
	if cfg.Host == "" {
		cfg.Host = "faked-console"
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.WallClock
	}
	if cfg.RestartWindow == 0 {
		cfg.RestartWindow = DefaultRestartWindow
	}
	st := &Store{
		host:           cfg.Host,
		clk:            cfg.Clock,
		restartWindow:  cfg.RestartWindow,
		enabled:        true,
		uris:           make(map[string]*Resource),
		partitionPools: make(map[string]*partitionPools),
		metricGroups:   make(map[string]MetricGroupDefinition),
	}
	st.consoles = newConsoleManager(st)
	st.cpcs = newCPCManager(st)
	st.metricsContexts = newMetricsContextManager(st)

	console, err := st.consoles.Add(map[string]interface{}{
		"name":    cfg.Host,
		"version": "2.15.0",
	})
	if err != nil {
		// Adding the console to a fresh store cannot conflict.
		panic(err)
	}
	st.console = console
	return st
}

// Host returns the configured console host name.
func (st *Store) Host() string {
	return st.host
}

// Clock returns the store's clock.
func (st *Store) Clock() clock.Clock {
	return st.clk
}

// RestartWindow returns the configured restart unavailability window.
func (st *Store) RestartWindow() time.Duration {
	return st.restartWindow
}

// Console returns the single console resource.
func (st *Store) Console() *Resource {
	return st.console
}

// CPCs returns the top-level compute complex manager.
func (st *Store) CPCs() *Manager {
	return st.cpcs
}

// MetricsContexts returns the top-level metrics context manager.
func (st *Store) MetricsContexts() *Manager {
	return st.metricsContexts
}

// Enabled reports whether the store accepts operations.
func (st *Store) Enabled() bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.enabled
}

// SetEnabled flips the store's enabled flag. While disabled, routed
// operations fail with a connectivity error.
func (st *Store) SetEnabled(enabled bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.enabled != enabled {
		logger.Infof("console %s enabled: %v", st.host, enabled)
	}
	st.enabled = enabled
}

// LookupByURI returns the resource registered under the given URI.
func (st *Store) LookupByURI(uri string) (*Resource, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.lookupLocked(uri)
}

func (st *Store) lookupLocked(uri string) (*Resource, error) {
	r, ok := st.uris[uri]
	if !ok {
		return nil, errors.NotFoundf("resource with URI %q", uri)
	}
	return r, nil
}

// register adds a resource to the flat URI index. The store lock must be
// held. URIs never change and must be globally unique.
func (st *Store) register(r *Resource) error {
	if _, ok := st.uris[r.uri]; ok {
		return errors.AlreadyExistsf("resource with URI %q", r.uri)
	}
	st.uris[r.uri] = r
	return nil
}

// unregister drops a URI from the flat index. The store lock must be held.
func (st *Store) unregister(uri string) {
	delete(st.uris, uri)
}
