// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package state_test

import (
	"time"

	"github.com/juju/clock/testclock"
	"github.com/juju/errors"
	jujutesting "github.com/juju/testing"
	jc "github.com/juju/testing/checkers"
	gc "gopkg.in/check.v1"

	"github.com/juju/fakeconsole/state"
)

type metricsSuite struct {
	jujutesting.IsolationSuite

	clock *testclock.Clock
	st    *state.Store
}

var _ = gc.Suite(&metricsSuite{})

func (s *metricsSuite) SetUpTest(c *gc.C) {
	s.IsolationSuite.SetUpTest(c)
	s.clock = testclock.NewClock(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))
	s.st = state.NewStore(state.Config{Clock: s.clock})
}

func (s *metricsSuite) TestGroupRegistration(c *gc.C) {
	err := s.st.AddMetricGroupDefinition(state.MetricGroupDefinition{
		Name: "partition-usage",
		Metrics: []state.MetricDefinition{
			{Name: "processor-usage", Type: "integer-metric"},
		},
	})
	c.Assert(err, jc.ErrorIsNil)
	err = s.st.AddMetricGroupDefinition(state.MetricGroupDefinition{
		Name: "channel-usage",
	})
	c.Assert(err, jc.ErrorIsNil)

	c.Assert(s.st.MetricGroupNames(), jc.DeepEquals,
		[]string{"partition-usage", "channel-usage"})

	err = s.st.AddMetricGroupDefinition(state.MetricGroupDefinition{
		Name: "partition-usage",
	})
	c.Assert(err, jc.ErrorIs, errors.AlreadyExists)

	def, err := s.st.MetricGroupDefinition("partition-usage")
	c.Assert(err, jc.ErrorIsNil)
	c.Assert(def.Metrics, gc.HasLen, 1)

	_, err = s.st.MetricGroupDefinition("no-such")
	c.Assert(err, jc.ErrorIs, errors.NotFound)
}

func (s *metricsSuite) TestStagedValuesDefaultTimestamp(c *gc.C) {
	err := s.st.AddMetricGroupDefinition(state.MetricGroupDefinition{
		Name: "partition-usage",
	})
	c.Assert(err, jc.ErrorIsNil)

	err = s.st.AddMetricObjectValues(state.MetricObjectValues{
		GroupName:   "partition-usage",
		ResourceURI: "/api/partitions/p1",
		Values:      []state.MetricValue{{Name: "processor-usage", Value: 42}},
	})
	c.Assert(err, jc.ErrorIsNil)

	staged := s.st.MetricObjectValues("partition-usage")
	c.Assert(staged, gc.HasLen, 1)
	c.Assert(staged[0].Timestamp, gc.Equals, s.clock.Now())
}

func (s *metricsSuite) TestStagedValuesUnknownGroup(c *gc.C) {
	err := s.st.AddMetricObjectValues(state.MetricObjectValues{
		GroupName: "no-such",
	})
	c.Assert(err, jc.ErrorIs, errors.NotFound)
}
