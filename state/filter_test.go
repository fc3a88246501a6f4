// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package state_test

import (
	jujutesting "github.com/juju/testing"
	jc "github.com/juju/testing/checkers"
	gc "gopkg.in/check.v1"

	"github.com/juju/fakeconsole/state"
)

type filterSuite struct {
	jujutesting.IsolationSuite

	st *state.Store
}

var _ = gc.Suite(&filterSuite{})

func (s *filterSuite) SetUpTest(c *gc.C) {
	s.IsolationSuite.SetUpTest(c)
	s.st = state.NewStore(state.Config{})
}

func (s *filterSuite) addCPC(c *gc.C, props map[string]interface{}) *state.Resource {
	r, err := s.st.CPCs().Add(props)
	c.Assert(err, jc.ErrorIsNil)
	return r
}

func (s *filterSuite) TestNilFilterMatchesAll(c *gc.C) {
	s.addCPC(c, map[string]interface{}{"name": "CPC1"})
	s.addCPC(c, map[string]interface{}{"name": "CPC2"})
	c.Assert(s.st.CPCs().List(nil), gc.HasLen, 2)
}

func (s *filterSuite) TestStringMatchIsAnchored(c *gc.C) {
	s.addCPC(c, map[string]interface{}{"name": "abc"})
	s.addCPC(c, map[string]interface{}{"name": "xabc"})
	s.addCPC(c, map[string]interface{}{"name": "abcx"})

	matched := s.st.CPCs().List(state.Filter{"name": "abc"})
	c.Assert(matched, gc.HasLen, 1)
	c.Assert(matched[0].Name(), gc.Equals, "abc")
}

func (s *filterSuite) TestStringMatchIsRegexp(c *gc.C) {
	s.addCPC(c, map[string]interface{}{"name": "prod-1"})
	s.addCPC(c, map[string]interface{}{"name": "prod-2"})
	s.addCPC(c, map[string]interface{}{"name": "test-1"})

	matched := s.st.CPCs().List(state.Filter{"name": "prod-.*"})
	c.Assert(matched, gc.HasLen, 2)
}

func (s *filterSuite) TestListValueIsOr(c *gc.C) {
	s.addCPC(c, map[string]interface{}{"name": "A"})
	s.addCPC(c, map[string]interface{}{"name": "B"})
	s.addCPC(c, map[string]interface{}{"name": "C"})

	matched := s.st.CPCs().List(state.Filter{"name": []interface{}{"A", "C"}})
	c.Assert(matched, gc.HasLen, 2)
	c.Assert(matched[0].Name(), gc.Equals, "A")
	c.Assert(matched[1].Name(), gc.Equals, "C")
}

func (s *filterSuite) TestMissingPropertyNeverMatches(c *gc.C) {
	s.addCPC(c, map[string]interface{}{"name": "A"})
	c.Assert(s.st.CPCs().List(state.Filter{"no-such-prop": ".*"}), gc.HasLen, 0)
}

func (s *filterSuite) TestNonStringValuesCompareEqual(c *gc.C) {
	s.addCPC(c, map[string]interface{}{"name": "A", "dpm-enabled": true})
	s.addCPC(c, map[string]interface{}{"name": "B"})

	matched := s.st.CPCs().List(state.Filter{"dpm-enabled": true})
	c.Assert(matched, gc.HasLen, 1)
	c.Assert(matched[0].Name(), gc.Equals, "A")
}

func (s *filterSuite) TestUncompilablePatternMatchesNothing(c *gc.C) {
	s.addCPC(c, map[string]interface{}{"name": "A"})
	c.Assert(s.st.CPCs().List(state.Filter{"name": "*("}), gc.HasLen, 0)
}
