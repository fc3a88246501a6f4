// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package state

import (
	"time"

	"github.com/juju/errors"
)

// MetricDefinition describes one metric of a metric group: its name and
// its wire type ("integer-metric", "double-metric", "string-metric",
// "boolean-metric").
type MetricDefinition struct {
	Name string
	Type string
}

// MetricGroupDefinition describes a metric group the faked console can
// report on: the group name and the ordered metric definitions.
type MetricGroupDefinition struct {
	Name    string
	Metrics []MetricDefinition
}

// MetricValue is one named metric value inside a sample.
type MetricValue struct {
	Name  string
	Value interface{}
}

// MetricObjectValues is one staged metrics sample: the values of one
// metric group for one resource at one point in time.
type MetricObjectValues struct {
	GroupName   string
	ResourceURI string
	Timestamp   time.Time
	Values      []MetricValue
}

// newMetricsContextManager returns the manager for metrics contexts
// created by clients wanting metric reports.
func newMetricsContextManager(st *Store) *Manager {
	return &Manager{
		st:       st,
		key:      "metrics-contexts",
		baseURI:  "/api/services/metrics/context",
		idProp:   "object-id",
		uriProp:  "object-uri",
		classTag: "metrics-context",
	}
}

// AddMetricGroupDefinition registers a metric group the console reports
// on. Tests stage definitions before clients create metrics contexts.
func (st *Store) AddMetricGroupDefinition(def MetricGroupDefinition) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, ok := st.metricGroups[def.Name]; ok {
		return errors.AlreadyExistsf("metric group %q", def.Name)
	}
	st.metricGroups[def.Name] = def
	st.groupOrder = append(st.groupOrder, def.Name)
	return nil
}

// MetricGroupDefinition returns a registered metric group definition.
func (st *Store) MetricGroupDefinition(name string) (MetricGroupDefinition, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	def, ok := st.metricGroups[name]
	if !ok {
		return MetricGroupDefinition{}, errors.NotFoundf("metric group %q", name)
	}
	return def, nil
}

// MetricGroupNames returns the registered group names in registration
// order.
func (st *Store) MetricGroupNames() []string {
	st.mu.Lock()
	defer st.mu.Unlock()
	names := make([]string, len(st.groupOrder))
	copy(names, st.groupOrder)
	return names
}

// AddMetricObjectValues stages a metrics sample to be rendered by
// subsequent metrics context reads.
func (st *Store) AddMetricObjectValues(v MetricObjectValues) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, ok := st.metricGroups[v.GroupName]; !ok {
		return errors.NotFoundf("metric group %q", v.GroupName)
	}
	if v.Timestamp.IsZero() {
		v.Timestamp = st.clk.Now()
	}
	st.metricValues = append(st.metricValues, v)
	return nil
}

// MetricObjectValues returns the staged samples of one metric group, in
// staging order.
func (st *Store) MetricObjectValues(group string) []MetricObjectValues {
	st.mu.Lock()
	defer st.mu.Unlock()
	var out []MetricObjectValues
	for _, v := range st.metricValues {
		if v.GroupName == group {
			out = append(out, v)
		}
	}
	return out
}
