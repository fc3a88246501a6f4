// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package server

import (
	"fmt"
	"strings"

	"github.com/juju/fakeconsole/api/params"
	"github.com/juju/fakeconsole/state"
)

// metricsContextsHandler creates metrics contexts. A context selects the
// metric groups later reads report on; omitting metric-groups selects
// every registered group.
type metricsContextsHandler struct{}

func (metricsContextsHandler) Post(req *Request) (interface{}, error) {
	if err := requireFields(req, "anticipated-frequency-seconds"); err != nil {
		return nil, err
	}
	groups := req.Store.MetricGroupNames()
	if raw, ok := req.Body["metric-groups"]; ok {
		selected := state.NewProperties()
		selected.Set("metric-groups", raw)
		groups = selected.StringsValue("metric-groups")
	}
	ctx, err := req.Store.MetricsContexts().Add(map[string]interface{}{
		"anticipated-frequency-seconds": req.Body["anticipated-frequency-seconds"],
		"metric-groups":                 groups,
	})
	if err != nil {
		return nil, params.NewBadRequestError(req.Method, req.URI,
			params.ReasonInvalidValue, "%v", err)
	}
	infos := make([]interface{}, 0, len(groups))
	for _, name := range groups {
		def, err := req.Store.MetricGroupDefinition(name)
		if err != nil {
			continue
		}
		metricInfos := make([]interface{}, 0, len(def.Metrics))
		for _, m := range def.Metrics {
			metricInfos = append(metricInfos, map[string]interface{}{
				"metric-name": m.Name,
				"metric-type": m.Type,
			})
		}
		infos = append(infos, map[string]interface{}{
			"group-name":   name,
			"metric-infos": metricInfos,
		})
	}
	return map[string]interface{}{
		"metrics-context-uri": ctx.URI(),
		"metric-group-infos":  infos,
	}, nil
}

// metricsContextHandler serves one metrics context: GET renders the
// staged samples of the context's metric groups as a textual report,
// DELETE discards the context.
type metricsContextHandler struct{}

func (metricsContextHandler) Get(req *Request) (interface{}, error) {
	ctx, err := lookupURI(req, "/api/services/metrics/context/"+req.Args[0])
	if err != nil {
		return nil, err
	}
	var b strings.Builder
	for _, group := range ctx.Properties().StringsValue("metric-groups") {
		def, err := req.Store.MetricGroupDefinition(group)
		if err != nil {
			continue
		}
		for _, sample := range req.Store.MetricObjectValues(group) {
			fmt.Fprintf(&b, "%q\n", group)
			fmt.Fprintf(&b, "%q\n", sample.ResourceURI)
			fmt.Fprintf(&b, "%d\n", sample.Timestamp.UnixMilli())
			b.WriteString(renderMetricValues(def, sample.Values))
			b.WriteString("\n\n")
		}
	}
	b.WriteString("\n")
	return b.String(), nil
}

func (metricsContextHandler) Delete(req *Request) error {
	ctx, err := lookupURI(req, "/api/services/metrics/context/"+req.Args[0])
	if err != nil {
		return err
	}
	if err := ctx.Manager().Remove(ctx.ID()); err != nil {
		return params.NewInvalidResourceError(req.Method, req.URI)
	}
	return nil
}

// renderMetricValues joins a sample's values with commas, in the order
// the group definition declares its metrics. Strings are quoted, other
// values rendered plainly.
func renderMetricValues(def state.MetricGroupDefinition, values []state.MetricValue) string {
	byName := make(map[string]interface{}, len(values))
	for _, v := range values {
		byName[v.Name] = v.Value
	}
	parts := make([]string, 0, len(def.Metrics))
	for _, m := range def.Metrics {
		v, ok := byName[m.Name]
		if !ok {
			continue
		}
		switch v := v.(type) {
		case string:
			parts = append(parts, fmt.Sprintf("%q", v))
		case bool:
			parts = append(parts, fmt.Sprintf("%t", v))
		default:
			parts = append(parts, fmt.Sprintf("%v", v))
		}
	}
	return strings.Join(parts, ",")
}
