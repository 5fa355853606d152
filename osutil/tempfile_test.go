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
	"path/filepath"
	"strings"

	. "gopkg.in/check.v1"

	"github.com/coreos/update-engine/osutil"
	"github.com/coreos/update-engine/testutil"
)

type tempfileSuite struct{}

var _ = Suite(&tempfileSuite{})

func (s *tempfileSuite) TestTempFilename(c *C) {
	template := filepath.Join(c.MkDir(), "scratch.XXXXXX")
	name, err := osutil.TempFilename(template)
	c.Assert(err, IsNil)
	c.Check(name, testutil.FileAbsent)
	c.Check(filepath.Dir(name), Equals, filepath.Dir(template))
	c.Check(strings.HasPrefix(filepath.Base(name), "scratch."), Equals, true)
	c.Check(strings.HasSuffix(name, "XXXXXX"), Equals, false)
	c.Check(len(name), Equals, len(template))
}

func (s *tempfileSuite) TestTempFilenameBadTemplate(c *C) {
	_, err := osutil.TempFilename("/tmp/not-a-template")
	c.Check(err, ErrorMatches, `temp template .* must end with XXXXXX`)
}

func (s *tempfileSuite) TestMakeTempFile(c *C) {
	template := filepath.Join(c.MkDir(), "scratch.XXXXXX")
	name, f, err := osutil.MakeTempFile(template)
	c.Assert(err, IsNil)
	defer f.Close()

	c.Check(name, testutil.FilePresent)
	c.Check(f.Name(), Equals, name)

	// the descriptor is open for writing
	_, err = f.Write([]byte("data"))
	c.Assert(err, IsNil)
	c.Check(name, testutil.FileEquals, "data")
}

func (s *tempfileSuite) TestMakeTempFileUnique(c *C) {
	template := filepath.Join(c.MkDir(), "scratch.XXXXXX")
	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		name, f, err := osutil.MakeTempFile(template)
		c.Assert(err, IsNil)
		f.Close()
		c.Check(seen[name], Equals, false)
		seen[name] = true
	}
}

func (s *tempfileSuite) TestMakeTempFileBadTemplate(c *C) {
	_, _, err := osutil.MakeTempFile("/tmp/XXXXX")
	c.Check(err, ErrorMatches, `temp template .* must end with XXXXXX`)
}

func (s *tempfileSuite) TestMakeTempDirectory(c *C) {
	template := filepath.Join(c.MkDir(), "workdir.XXXXXX")
	name, err := osutil.MakeTempDirectory(template)
	c.Assert(err, IsNil)

	st, err := os.Stat(name)
	c.Assert(err, IsNil)
	c.Check(st.IsDir(), Equals, true)
}

func (s *tempfileSuite) TestMakeTempDirectoryBadParent(c *C) {
	_, err := osutil.MakeTempDirectory("/nonexistent/dir/workdir.XXXXXX")
	c.Check(err, NotNil)
}
