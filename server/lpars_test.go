// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package server_test

import (
	jc "github.com/juju/testing/checkers"
	gc "gopkg.in/check.v1"

	"github.com/juju/fakeconsole/api/params"
)

type lparsSuite struct {
	baseSuite
}

var _ = gc.Suite(&lparsSuite{})

func (s *lparsSuite) TestList(c *gc.C) {
	result := s.get(c, "/api/cpcs/cpc-2/logical-partitions")
	c.Assert(result["logical-partitions"], jc.DeepEquals, []interface{}{
		map[string]interface{}{
			"object-uri": "/api/logical-partitions/lpar-1",
			"name":       "LP1",
			"status":     "not-activated",
		},
	})
}

func (s *lparsSuite) TestActivateWithProfileName(c *gc.C) {
	s.post(c, "/api/logical-partitions/lpar-1/operations/activate", map[string]interface{}{
		"activation-profile-name": "LP1",
	})
	got := s.get(c, "/api/logical-partitions/lpar-1")
	c.Assert(got["status"], gc.Equals, "not-operating")
	c.Assert(got["last-used-activation-profile"], gc.Equals, "LP1")
}

func (s *lparsSuite) TestActivateUsesNextProfile(c *gc.C) {
	s.post(c, "/api/logical-partitions/lpar-1", map[string]interface{}{
		"next-activation-profile-name": "LP1",
	})
	s.post(c, "/api/logical-partitions/lpar-1/operations/activate", nil)
	c.Assert(s.get(c, "/api/logical-partitions/lpar-1")["status"], gc.Equals, "not-operating")
}

func (s *lparsSuite) TestActivateProfileNameMismatch(c *gc.C) {
	_, err := s.router.Post("/api/logical-partitions/lpar-1/operations/activate",
		map[string]interface{}{"activation-profile-name": "OTHER"})
	s.assertHTTPError(c, err, 500, params.ReasonProfileNameMismatch)
}

func (s *lparsSuite) TestActivateTwiceNeedsForce(c *gc.C) {
	body := map[string]interface{}{"activation-profile-name": "LP1"}
	s.post(c, "/api/logical-partitions/lpar-1/operations/activate", body)

	_, err := s.router.Post("/api/logical-partitions/lpar-1/operations/activate", body)
	s.assertHTTPError(c, err, 409, params.ReasonInvalidStatus)

	s.post(c, "/api/logical-partitions/lpar-1/operations/activate", map[string]interface{}{
		"activation-profile-name": "LP1",
		"force":                   true,
	})
}

func (s *lparsSuite) TestDeactivate(c *gc.C) {
	s.post(c, "/api/logical-partitions/lpar-1/operations/activate", map[string]interface{}{
		"activation-profile-name": "LP1",
	})
	s.post(c, "/api/logical-partitions/lpar-1/operations/deactivate", nil)
	c.Assert(s.get(c, "/api/logical-partitions/lpar-1")["status"], gc.Equals, "not-activated")
}

func (s *lparsSuite) TestDeactivateNotActivatedFailsEvenWithForce(c *gc.C) {
	_, err := s.router.Post("/api/logical-partitions/lpar-1/operations/deactivate", nil)
	s.assertHTTPError(c, err, 409, params.ReasonInvalidStatus)

	_, err = s.router.Post("/api/logical-partitions/lpar-1/operations/deactivate",
		map[string]interface{}{"force": true})
	s.assertHTTPError(c, err, 409, params.ReasonInvalidStatus)
}

func (s *lparsSuite) TestDeactivateOperatingNeedsForce(c *gc.C) {
	s.post(c, "/api/logical-partitions/lpar-1", map[string]interface{}{
		"status": "operating",
	})
	_, err := s.router.Post("/api/logical-partitions/lpar-1/operations/deactivate", nil)
	s.assertHTTPError(c, err, 409, params.ReasonInvalidStatus)

	s.post(c, "/api/logical-partitions/lpar-1/operations/deactivate",
		map[string]interface{}{"force": true})
	c.Assert(s.get(c, "/api/logical-partitions/lpar-1")["status"], gc.Equals, "not-activated")
}

func (s *lparsSuite) TestLoad(c *gc.C) {
	s.post(c, "/api/logical-partitions/lpar-1/operations/activate", map[string]interface{}{
		"activation-profile-name": "LP1",
	})
	s.post(c, "/api/logical-partitions/lpar-1/operations/load", map[string]interface{}{
		"load-address": "5176",
	})
	got := s.get(c, "/api/logical-partitions/lpar-1")
	c.Assert(got["status"], gc.Equals, "operating")
	c.Assert(got["last-used-load-address"], gc.Equals, "5176")
}

func (s *lparsSuite) TestLoadUsesLastAddress(c *gc.C) {
	s.post(c, "/api/logical-partitions/lpar-1", map[string]interface{}{
		"status":                 "not-operating",
		"last-used-load-address": "5176",
	})
	s.post(c, "/api/logical-partitions/lpar-1/operations/load", nil)
	c.Assert(s.get(c, "/api/logical-partitions/lpar-1")["status"], gc.Equals, "operating")
}

func (s *lparsSuite) TestLoadWithoutAddress(c *gc.C) {
	s.post(c, "/api/logical-partitions/lpar-1", map[string]interface{}{
		"status": "not-operating",
	})
	_, err := s.router.Post("/api/logical-partitions/lpar-1/operations/load", nil)
	s.assertHTTPError(c, err, 400, params.ReasonMissingField)
}

func (s *lparsSuite) TestLoadNotActivated(c *gc.C) {
	_, err := s.router.Post("/api/logical-partitions/lpar-1/operations/load",
		map[string]interface{}{"load-address": "5176"})
	s.assertHTTPError(c, err, 409, params.ReasonInvalidStatus)
}

func (s *lparsSuite) TestLoadOperatingNeedsForce(c *gc.C) {
	s.post(c, "/api/logical-partitions/lpar-1", map[string]interface{}{
		"status": "operating",
	})
	_, err := s.router.Post("/api/logical-partitions/lpar-1/operations/load",
		map[string]interface{}{"load-address": "5176"})
	s.assertHTTPError(c, err, 409, params.ReasonInvalidStatus)

	s.post(c, "/api/logical-partitions/lpar-1/operations/load", map[string]interface{}{
		"load-address": "5176",
		"force":        true,
	})
}

func (s *lparsSuite) TestOperationsRejectedOnDPMCPC(c *gc.C) {
	// Moving the LPAR under a DPM CPC is not possible, so instead flip
	// the hosting CPC into DPM mode.
	s.post(c, "/api/cpcs/cpc-2", map[string]interface{}{"dpm-enabled": true})
	_, err := s.router.Post("/api/logical-partitions/lpar-1/operations/activate",
		map[string]interface{}{"activation-profile-name": "LP1"})
	s.assertHTTPError(c, err, 409, params.ReasonCPCInDPMMode)
}

func (s *lparsSuite) TestActivationProfiles(c *gc.C) {
	result := s.get(c, "/api/cpcs/cpc-2/image-activation-profiles")
	c.Assert(result["image-activation-profiles"], jc.DeepEquals, []interface{}{
		map[string]interface{}{
			"name":        "LP1",
			"element-uri": "/api/cpcs/cpc-2/image-activation-profiles/LP1",
		},
	})

	profile := s.get(c, "/api/cpcs/cpc-2/image-activation-profiles/LP1")
	c.Assert(profile["class"], gc.Equals, "image-activation-profile")

	s.post(c, "/api/cpcs/cpc-2/image-activation-profiles/LP1", map[string]interface{}{
		"description": "updated",
	})
	profile = s.get(c, "/api/cpcs/cpc-2/image-activation-profiles/LP1")
	c.Assert(profile["description"], gc.Equals, "updated")
}
