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
	. "gopkg.in/check.v1"

	"github.com/coreos/update-engine/osutil"
)

type pipeSuite struct{}

var _ = Suite(&pipeSuite{})

func (s *pipeSuite) TestReadPipe(c *C) {
	out, err := osutil.ReadPipe("echo hello | tr a-z A-Z")
	c.Assert(err, IsNil)
	c.Check(string(out), Equals, "HELLO\n")
}

func (s *pipeSuite) TestReadPipeExitStatusIgnored(c *C) {
	out, err := osutil.ReadPipe("echo partial; exit 3")
	c.Assert(err, IsNil)
	c.Check(string(out), Equals, "partial\n")
}

func (s *pipeSuite) TestReadPipeEmptyOutput(c *C) {
	out, err := osutil.ReadPipe("true")
	c.Assert(err, IsNil)
	c.Check(out, HasLen, 0)
}
