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

type partitionSuite struct {
	jujutesting.IsolationSuite

	st  *state.Store
	cpc *state.Resource
}

var _ = gc.Suite(&partitionSuite{})

func (s *partitionSuite) SetUpTest(c *gc.C) {
	s.IsolationSuite.SetUpTest(c)
	s.st = state.NewStore(state.Config{})
	cpc, err := s.st.CPCs().Add(map[string]interface{}{
		"object-id":   "cpc-1",
		"name":        "CPC1",
		"dpm-enabled": true,
	})
	c.Assert(err, jc.ErrorIsNil)
	s.cpc = cpc
}

func (s *partitionSuite) addPartition(c *gc.C) *state.Resource {
	part, err := s.cpc.ChildManager("partitions").Add(map[string]interface{}{
		"name": "PART1",
	})
	c.Assert(err, jc.ErrorIsNil)
	return part
}

func (s *partitionSuite) TestPartitionDefaults(c *gc.C) {
	part := s.addPartition(c)
	c.Assert(part.Properties().StringValue("status"), gc.Equals, "stopped")
	c.Assert(part.Properties().StringsValue("hba-uris"), gc.HasLen, 0)
	c.Assert(part.Properties().StringsValue("nic-uris"), gc.HasLen, 0)
	c.Assert(part.Properties().StringsValue("virtual-function-uris"), gc.HasLen, 0)
	c.Assert(part.URI(), gc.Matches, "/api/partitions/.+")
}

func (s *partitionSuite) TestHBAGetsDeviceNumberAndWWPN(c *gc.C) {
	part := s.addPartition(c)
	hba, err := part.ChildManager("hbas").Add(map[string]interface{}{
		"name":             "hba1",
		"adapter-port-uri": "/api/adapters/fake/storage-ports/0",
	})
	c.Assert(err, jc.ErrorIsNil)

	c.Assert(hba.Properties().StringValue("device-number"), gc.Matches, "[0-9A-F]{4}")
	c.Assert(hba.Properties().StringValue("wwpn"), gc.Matches, "AFFEAFFE0000[0-9A-F]{4}")
	c.Assert(part.Properties().StringsValue("hba-uris"), jc.DeepEquals, []string{hba.URI()})
}

func (s *partitionSuite) TestHBARequiresAdapterPort(c *gc.C) {
	part := s.addPartition(c)
	_, err := part.ChildManager("hbas").Add(map[string]interface{}{"name": "hba1"})
	c.Assert(err, jc.ErrorIs, errors.NotValid)
}

func (s *partitionSuite) TestHBARemoveFreesIdentifiers(c *gc.C) {
	part := s.addPartition(c)
	hbas := part.ChildManager("hbas")
	hba, err := hbas.Add(map[string]interface{}{
		"name":             "hba1",
		"adapter-port-uri": "/api/adapters/fake/storage-ports/0",
	})
	c.Assert(err, jc.ErrorIsNil)
	devno := hba.Properties().StringValue("device-number")
	wwpn := hba.Properties().StringValue("wwpn")

	err = hbas.Remove(hba.ID())
	c.Assert(err, jc.ErrorIsNil)
	c.Assert(part.Properties().StringsValue("hba-uris"), gc.HasLen, 0)

	// The freed identifiers may be handed out again.
	again, err := hbas.Add(map[string]interface{}{
		"name":             "hba2",
		"adapter-port-uri": "/api/adapters/fake/storage-ports/0",
		"device-number":    devno,
		"wwpn":             wwpn,
	})
	c.Assert(err, jc.ErrorIsNil)
	c.Assert(again.Properties().StringValue("device-number"), gc.Equals, devno)
	c.Assert(part.Properties().StringsValue("hba-uris"), jc.DeepEquals, []string{again.URI()})
}

func (s *partitionSuite) TestNICRequiresExactlyOneBacking(c *gc.C) {
	part := s.addPartition(c)
	nics := part.ChildManager("nics")

	_, err := nics.Add(map[string]interface{}{"name": "nic1"})
	c.Assert(err, jc.ErrorIs, errors.NotValid)

	_, err = nics.Add(map[string]interface{}{
		"name":                     "nic1",
		"network-adapter-port-uri": "/api/adapters/fake/network-ports/0",
		"virtual-switch-uri":       "/api/virtual-switches/fake",
	})
	c.Assert(err, jc.ErrorIs, errors.NotValid)
}

func (s *partitionSuite) TestNICDanglingVirtualSwitch(c *gc.C) {
	part := s.addPartition(c)
	_, err := part.ChildManager("nics").Add(map[string]interface{}{
		"name":               "nic1",
		"virtual-switch-uri": "/api/virtual-switches/no-such",
	})
	c.Assert(err, jc.ErrorIs, state.ErrDanglingReference)
}

func (s *partitionSuite) TestNICConnectsToVirtualSwitch(c *gc.C) {
	part := s.addPartition(c)
	vs, err := s.cpc.ChildManager("virtual-switches").Add(map[string]interface{}{
		"name": "vs1",
	})
	c.Assert(err, jc.ErrorIsNil)

	nic, err := part.ChildManager("nics").Add(map[string]interface{}{
		"name":               "nic1",
		"virtual-switch-uri": vs.URI(),
	})
	c.Assert(err, jc.ErrorIsNil)
	c.Assert(nic.Properties().StringValue("device-number"), gc.Matches, "[0-9A-F]{4}")
	c.Assert(part.Properties().StringsValue("nic-uris"), jc.DeepEquals, []string{nic.URI()})
	c.Assert(vs.Properties().StringsValue("connected-vnic-uris"), jc.DeepEquals, []string{nic.URI()})
}

func (s *partitionSuite) TestNICRemoveLeavesSwitchEntry(c *gc.C) {
	part := s.addPartition(c)
	vs, err := s.cpc.ChildManager("virtual-switches").Add(map[string]interface{}{
		"name": "vs1",
	})
	c.Assert(err, jc.ErrorIsNil)
	nics := part.ChildManager("nics")
	nic, err := nics.Add(map[string]interface{}{
		"name":               "nic1",
		"virtual-switch-uri": vs.URI(),
	})
	c.Assert(err, jc.ErrorIsNil)

	err = nics.Remove(nic.ID())
	c.Assert(err, jc.ErrorIsNil)
	c.Assert(part.Properties().StringsValue("nic-uris"), gc.HasLen, 0)
	// The switch keeps the stale entry, matching the real server.
	c.Assert(vs.Properties().StringsValue("connected-vnic-uris"), jc.DeepEquals, []string{nic.URI()})
}

func (s *partitionSuite) TestVirtualFunctionBookkeeping(c *gc.C) {
	part := s.addPartition(c)
	vfs := part.ChildManager("virtual-functions")
	vf, err := vfs.Add(map[string]interface{}{"name": "vf1"})
	c.Assert(err, jc.ErrorIsNil)
	c.Assert(vf.Properties().StringValue("device-number"), gc.Matches, "[0-9A-F]{4}")
	c.Assert(part.Properties().StringsValue("virtual-function-uris"), jc.DeepEquals, []string{vf.URI()})

	err = vfs.Remove(vf.ID())
	c.Assert(err, jc.ErrorIsNil)
	c.Assert(part.Properties().StringsValue("virtual-function-uris"), gc.HasLen, 0)
}

func (s *partitionSuite) TestSuppliedDeviceNumberIsKept(c *gc.C) {
	part := s.addPartition(c)
	vf, err := part.ChildManager("virtual-functions").Add(map[string]interface{}{
		"name":          "vf1",
		"device-number": "0001",
	})
	c.Assert(err, jc.ErrorIsNil)
	c.Assert(vf.Properties().StringValue("device-number"), gc.Equals, "0001")
}
