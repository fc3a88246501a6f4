// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package state_test

import (
	"github.com/juju/errors"
	jujutesting "github.com/juju/testing"
	jc "github.com/juju/testing/checkers"
	gc "gopkg.in/check.v1"

	"github.com/juju/fakeconsole/state"
)

type managerSuite struct {
	jujutesting.IsolationSuite

	st *state.Store
}

var _ = gc.Suite(&managerSuite{})

func (s *managerSuite) SetUpTest(c *gc.C) {
	s.IsolationSuite.SetUpTest(c)
	s.st = state.NewStore(state.Config{Host: "hmc-1"})
}

func (s *managerSuite) TestAddFillsIdentity(c *gc.C) {
	cpc, err := s.st.CPCs().Add(map[string]interface{}{"name": "CPC1"})
	c.Assert(err, jc.ErrorIsNil)

	id := cpc.ID()
	c.Assert(id, gc.Not(gc.Equals), "")
	c.Assert(cpc.URI(), gc.Equals, "/api/cpcs/"+id)
	c.Assert(cpc.Class(), gc.Equals, "cpc")
	c.Assert(cpc.Properties().StringValue("object-id"), gc.Equals, id)
	c.Assert(cpc.Properties().StringValue("object-uri"), gc.Equals, cpc.URI())
}

func (s *managerSuite) TestAddKeepsSuppliedIdentity(c *gc.C) {
	cpc, err := s.st.CPCs().Add(map[string]interface{}{
		"object-id": "cpc-1",
		"name":      "CPC1",
	})
	c.Assert(err, jc.ErrorIsNil)
	c.Assert(cpc.ID(), gc.Equals, "cpc-1")
	c.Assert(cpc.URI(), gc.Equals, "/api/cpcs/cpc-1")

	_, err = s.st.CPCs().Add(map[string]interface{}{
		"object-id": "cpc-1",
		"name":      "CPC1-again",
	})
	c.Assert(err, jc.ErrorIs, errors.AlreadyExists)
}

func (s *managerSuite) TestListKeepsAdditionOrder(c *gc.C) {
	names := []string{"charlie", "alpha", "bravo"}
	for _, name := range names {
		_, err := s.st.CPCs().Add(map[string]interface{}{"name": name})
		c.Assert(err, jc.ErrorIsNil)
	}
	listed := s.st.CPCs().List(nil)
	c.Assert(listed, gc.HasLen, 3)
	for i, r := range listed {
		c.Check(r.Name(), gc.Equals, names[i], gc.Commentf("position %d", i))
	}
}

func (s *managerSuite) TestLookupAndRemove(c *gc.C) {
	cpc, err := s.st.CPCs().Add(map[string]interface{}{
		"object-id": "cpc-1",
		"name":      "CPC1",
	})
	c.Assert(err, jc.ErrorIsNil)

	got, err := s.st.CPCs().Lookup("cpc-1")
	c.Assert(err, jc.ErrorIsNil)
	c.Assert(got, gc.Equals, cpc)

	err = s.st.CPCs().Remove("cpc-1")
	c.Assert(err, jc.ErrorIsNil)
	c.Assert(s.st.CPCs().Len(), gc.Equals, 0)
	_, err = s.st.CPCs().Lookup("cpc-1")
	c.Assert(err, jc.ErrorIs, errors.NotFound)

	err = s.st.CPCs().Remove("cpc-1")
	c.Assert(err, jc.ErrorIs, errors.NotFound)
}

func (s *managerSuite) TestNameKeyedManagerRequiresName(c *gc.C) {
	cpc, err := s.st.CPCs().Add(map[string]interface{}{"object-id": "cpc-1"})
	c.Assert(err, jc.ErrorIsNil)
	profiles := cpc.ChildManager("image-activation-profiles")
	c.Assert(profiles, gc.NotNil)

	_, err = profiles.Add(map[string]interface{}{"description": "no name"})
	c.Assert(err, jc.ErrorIs, errors.NotValid)

	profile, err := profiles.Add(map[string]interface{}{"name": "LP1"})
	c.Assert(err, jc.ErrorIsNil)
	c.Assert(profile.ID(), gc.Equals, "LP1")
	c.Assert(profile.URI(), gc.Equals, "/api/cpcs/cpc-1/image-activation-profiles/LP1")
}

func (s *managerSuite) TestStoreStartsWithConsole(c *gc.C) {
	console := s.st.Console()
	c.Assert(console, gc.NotNil)
	c.Assert(console.URI(), gc.Equals, "/api/console")
	c.Assert(console.Name(), gc.Equals, "hmc-1")
	c.Assert(console.Properties().StringValue("version"), gc.Equals, "2.15.0")

	got, err := s.st.LookupByURI("/api/console")
	c.Assert(err, jc.ErrorIsNil)
	c.Assert(got, gc.Equals, console)
}

func (s *managerSuite) TestLookupByURI(c *gc.C) {
	cpc, err := s.st.CPCs().Add(map[string]interface{}{"object-id": "cpc-1"})
	c.Assert(err, jc.ErrorIsNil)

	got, err := s.st.LookupByURI("/api/cpcs/cpc-1")
	c.Assert(err, jc.ErrorIsNil)
	c.Assert(got, gc.Equals, cpc)

	_, err = s.st.LookupByURI("/api/cpcs/who")
	c.Assert(err, jc.ErrorIs, errors.NotFound)
}

func (s *managerSuite) TestURIsAreGloballyUnique(c *gc.C) {
	_, err := s.st.CPCs().Add(map[string]interface{}{
		"object-id":  "cpc-1",
		"object-uri": "/api/cpcs/custom",
	})
	c.Assert(err, jc.ErrorIsNil)

	_, err = s.st.CPCs().Add(map[string]interface{}{
		"object-id":  "cpc-2",
		"object-uri": "/api/cpcs/custom",
	})
	c.Assert(err, jc.ErrorIs, errors.AlreadyExists)
}

func (s *managerSuite) TestSetEnabled(c *gc.C) {
	c.Assert(s.st.Enabled(), jc.IsTrue)
	s.st.SetEnabled(false)
	c.Assert(s.st.Enabled(), jc.IsFalse)
	s.st.SetEnabled(true)
	c.Assert(s.st.Enabled(), jc.IsTrue)
}
