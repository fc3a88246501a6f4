// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package server_test

import (
	jc "github.com/juju/testing/checkers"
	gc "gopkg.in/check.v1"

	"github.com/juju/fakeconsole/api/params"
)

type cryptoSuite struct {
	baseSuite
}

var _ = gc.Suite(&cryptoSuite{})

func (s *cryptoSuite) config(c *gc.C) map[string]interface{} {
	part := s.get(c, "/api/partitions/part-1")
	cfg, ok := part["crypto-configuration"].(map[string]interface{})
	c.Assert(ok, jc.IsTrue, gc.Commentf("crypto-configuration is %T", part["crypto-configuration"]))
	return cfg
}

func (s *cryptoSuite) TestIncreaseIsUnion(c *gc.C) {
	uri := "/api/partitions/part-1/operations/increase-crypto-configuration"
	s.post(c, uri, map[string]interface{}{
		"crypto-adapter-uris": []interface{}{"/api/adapters/c1"},
		"crypto-domain-configurations": []interface{}{
			map[string]interface{}{"domain-index": 1, "access-mode": "control-usage"},
		},
	})
	// Repeating the same adapter and domain index adds nothing.
	s.post(c, uri, map[string]interface{}{
		"crypto-adapter-uris": []interface{}{"/api/adapters/c1", "/api/adapters/c2"},
		"crypto-domain-configurations": []interface{}{
			map[string]interface{}{"domain-index": 1, "access-mode": "control"},
			map[string]interface{}{"domain-index": 2, "access-mode": "control"},
		},
	})

	cfg := s.config(c)
	c.Assert(cfg["crypto-adapter-uris"], jc.DeepEquals,
		[]interface{}{"/api/adapters/c1", "/api/adapters/c2"})
	c.Assert(cfg["crypto-domain-configurations"], jc.DeepEquals, []interface{}{
		map[string]interface{}{"domain-index": 1, "access-mode": "control-usage"},
		map[string]interface{}{"domain-index": 2, "access-mode": "control"},
	})
}

func (s *cryptoSuite) TestIncreaseDomainWithoutIndex(c *gc.C) {
	_, err := s.router.Post(
		"/api/partitions/part-1/operations/increase-crypto-configuration",
		map[string]interface{}{
			"crypto-domain-configurations": []interface{}{
				map[string]interface{}{"access-mode": "control"},
			},
		})
	s.assertHTTPError(c, err, 400, params.ReasonMissingField)
}

func (s *cryptoSuite) TestDecrease(c *gc.C) {
	s.post(c, "/api/partitions/part-1/operations/increase-crypto-configuration",
		map[string]interface{}{
			"crypto-adapter-uris": []interface{}{"/api/adapters/c1", "/api/adapters/c2"},
			"crypto-domain-configurations": []interface{}{
				map[string]interface{}{"domain-index": 1, "access-mode": "control"},
				map[string]interface{}{"domain-index": 2, "access-mode": "control"},
			},
		})
	s.post(c, "/api/partitions/part-1/operations/decrease-crypto-configuration",
		map[string]interface{}{
			"crypto-adapter-uris":   []interface{}{"/api/adapters/c1"},
			"crypto-domain-indexes": []interface{}{1},
		})

	cfg := s.config(c)
	c.Assert(cfg["crypto-adapter-uris"], jc.DeepEquals,
		[]interface{}{"/api/adapters/c2"})
	c.Assert(cfg["crypto-domain-configurations"], jc.DeepEquals, []interface{}{
		map[string]interface{}{"domain-index": 2, "access-mode": "control"},
	})
}

func (s *cryptoSuite) TestChangeAccessMode(c *gc.C) {
	s.post(c, "/api/partitions/part-1/operations/increase-crypto-configuration",
		map[string]interface{}{
			"crypto-domain-configurations": []interface{}{
				map[string]interface{}{"domain-index": 1, "access-mode": "control"},
			},
		})
	s.post(c, "/api/partitions/part-1/operations/change-crypto-domain-configuration",
		map[string]interface{}{
			"domain-index": 1,
			"access-mode":  "control-usage",
		})

	cfg := s.config(c)
	c.Assert(cfg["crypto-domain-configurations"], jc.DeepEquals, []interface{}{
		map[string]interface{}{"domain-index": 1, "access-mode": "control-usage"},
	})
}

func (s *cryptoSuite) TestChangeRequiresFields(c *gc.C) {
	_, err := s.router.Post(
		"/api/partitions/part-1/operations/change-crypto-domain-configuration",
		map[string]interface{}{"domain-index": 1})
	s.assertHTTPError(c, err, 400, params.ReasonMissingField)
}
