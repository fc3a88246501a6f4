// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package server

import (
	"net/url"
	"strings"

	"github.com/juju/fakeconsole/api/params"
	"github.com/juju/fakeconsole/state"
)

// parseFilter parses the raw query string captured by a list route into a
// property filter:
//
//   - segments are separated by "&"; empty segments are ignored;
//   - each segment is a percent-encoded "name=value" pair; a bare name,
//     or a value containing a further unescaped "=", is malformed;
//   - repeated names accumulate into an OR list;
//   - an absent query string means no filter.
func parseFilter(method, uri, raw string) (state.Filter, error) {
	if raw == "" {
		return nil, nil
	}
	filter := state.Filter{}
	for _, segment := range strings.Split(raw, "&") {
		if segment == "" {
			continue
		}
		fields := strings.Split(segment, "=")
		if len(fields) != 2 {
			return nil, params.NewBadRequestError(method, uri,
				params.ReasonMalformedQuery, "invalid query parameter %q", segment)
		}
		name, err := url.PathUnescape(fields[0])
		if err != nil {
			return nil, params.NewBadRequestError(method, uri,
				params.ReasonMalformedQuery, "invalid query parameter %q", segment)
		}
		value, err := url.PathUnescape(fields[1])
		if err != nil {
			return nil, params.NewBadRequestError(method, uri,
				params.ReasonMalformedQuery, "invalid query parameter %q", segment)
		}
		switch existing := filter[name].(type) {
		case nil:
			filter[name] = value
		case []interface{}:
			filter[name] = append(existing, value)
		default:
			filter[name] = []interface{}{existing, value}
		}
	}
	return filter, nil
}
