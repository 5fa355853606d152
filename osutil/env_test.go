// -*- Mode: Go; indent-tabs-mode: t -*-

/*
 * Copyright (C) 2024 Canonical Ltd
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License version 3 as
 * published by the Free Software Foundation.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 */

package osutil_test

import (
	"os"

	. "gopkg.in/check.v1"

	"github.com/coreos/update-engine/osutil"
)

type envSuite struct{}

var _ = Suite(&envSuite{})

func (s *envSuite) TestGetenvBoolTrue(c *C) {
	key := "__XYZZY__"
	os.Unsetenv(key)

	for _, v := range []string{"1", "t", "TRUE"} {
		os.Setenv(key, v)
		c.Check(osutil.GetenvBool(key), Equals, true, Commentf(v))
		c.Check(osutil.GetenvBool(key, false), Equals, true, Commentf(v))
	}
	os.Unsetenv(key)
}

func (s *envSuite) TestGetenvBoolFalse(c *C) {
	key := "__XYZZY__"
	os.Unsetenv(key)
	c.Assert(osutil.GetenvBool(key), Equals, false)

	for _, v := range []string{"", "0", "f", "FALSE", "potato"} {
		os.Setenv(key, v)
		c.Check(osutil.GetenvBool(key), Equals, false, Commentf(v))
	}
	os.Unsetenv(key)
}

func (s *envSuite) TestGetenvBoolUnsetOrGarbageUsesDefault(c *C) {
	key := "__XYZZY__"
	os.Unsetenv(key)
	c.Check(osutil.GetenvBool(key, true), Equals, true)

	os.Setenv(key, "potato")
	defer os.Unsetenv(key)
	c.Check(osutil.GetenvBool(key, true), Equals, true)
}
