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

	. "gopkg.in/check.v1"

	"github.com/coreos/update-engine/osutil"
	"github.com/coreos/update-engine/testutil"
)

type pathsSuite struct{}

var _ = Suite(&pathsSuite{})

func (s *pathsSuite) TestNormalizePath(c *C) {
	for _, t := range []struct {
		in            string
		stripTrailing bool
		out           string
	}{
		{"", false, ""},
		{"", true, ""},
		{"/", false, "/"},
		{"/", true, "/"},
		{"//", false, "/"},
		{"//", true, "/"},
		{"/a///b////", true, "/a/b"},
		{"/a///b////", false, "/a/b/"},
		{"a//b", false, "a/b"},
		{"./..//", true, "./.."},
		{"/a/b/c", true, "/a/b/c"},
	} {
		got := osutil.NormalizePath(t.in, t.stripTrailing)
		c.Check(got, Equals, t.out, Commentf("%q strip=%v", t.in, t.stripTrailing))
		// idempotent after the first application
		c.Check(osutil.NormalizePath(got, t.stripTrailing), Equals, got)
	}
}

func (s *pathsSuite) TestFileExists(c *C) {
	path := filepath.Join(c.MkDir(), "f")
	c.Check(osutil.FileExists(path), Equals, false)
	c.Assert(os.WriteFile(path, nil, 0644), IsNil)
	c.Check(osutil.FileExists(path), Equals, true)
}

func (s *pathsSuite) TestIsSymlink(c *C) {
	d := c.MkDir()
	target := filepath.Join(d, "target")
	link := filepath.Join(d, "link")
	c.Assert(os.WriteFile(target, nil, 0644), IsNil)
	c.Assert(os.Symlink(target, link), IsNil)

	c.Check(osutil.IsSymlink(link), Equals, true)
	c.Check(osutil.IsSymlink(target), Equals, false)
	c.Check(osutil.IsSymlink(filepath.Join(d, "missing")), Equals, false)
}

func (s *pathsSuite) TestIsDirectory(c *C) {
	d := c.MkDir()
	path := filepath.Join(d, "f")
	c.Assert(os.WriteFile(path, nil, 0644), IsNil)

	c.Check(osutil.IsDirectory(d), Equals, true)
	c.Check(osutil.IsDirectory(path), Equals, false)
}

func (s *pathsSuite) TestRecursiveUnlinkDir(c *C) {
	d := c.MkDir()
	sub := filepath.Join(d, "sub/subsub")
	c.Assert(os.MkdirAll(sub, 0755), IsNil)
	c.Assert(os.WriteFile(filepath.Join(sub, "f"), []byte("x"), 0644), IsNil)

	c.Assert(osutil.RecursiveUnlinkDir(filepath.Join(d, "sub")), IsNil)
	c.Check(filepath.Join(d, "sub"), testutil.FileAbsent)

	// a regular file is just unlinked
	file := filepath.Join(d, "plain")
	c.Assert(os.WriteFile(file, nil, 0644), IsNil)
	c.Assert(osutil.RecursiveUnlinkDir(file), IsNil)
	c.Check(file, testutil.FileAbsent)
}
