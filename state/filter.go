// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package state

import (
	"reflect"
	"regexp"
)

// Filter selects resources by property values. A resource matches when
// every filter key matches:
//
//   - a list filter value is an OR: any element matching suffices;
//   - a missing property never matches;
//   - a string property value is matched using the filter value as a
//     regular expression anchored to the whole string;
//   - any other property value is compared for equality.
//
// A nil Filter matches every resource.
type Filter map[string]interface{}

// Matches reports whether the resource satisfies the filter.
func (f Filter) Matches(r *Resource) bool {
	for name, want := range f {
		if !matchProperty(r.props, name, want) {
			return false
		}
	}
	return true
}

func matchProperty(p *Properties, name string, want interface{}) bool {
	switch wants := want.(type) {
	case []interface{}:
		for _, w := range wants {
			if matchProperty(p, name, w) {
				return true
			}
		}
		return false
	case []string:
		for _, w := range wants {
			if matchProperty(p, name, w) {
				return true
			}
		}
		return false
	}
	got, ok := p.Get(name)
	if !ok {
		return false
	}
	if s, ok := got.(string); ok {
		pattern, ok := want.(string)
		if !ok {
			return false
		}
		return matchWholeString(pattern, s)
	}
	return reflect.DeepEqual(got, want)
}

// matchWholeString matches value against pattern with a "$" appended,
// requiring the match to start at the beginning of the value. This is the
// documented filter matching of the console API: "abc" matches "abc" but
// neither "xabc" nor "abcx". A pattern that does not compile matches
// nothing.
func matchWholeString(pattern, value string) bool {
	re, err := regexp.Compile(pattern + "$")
	if err != nil {
		return false
	}
	loc := re.FindStringIndex(value)
	return loc != nil && loc[0] == 0
}
