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

	"golang.org/x/sys/unix"
	. "gopkg.in/check.v1"

	"github.com/coreos/update-engine/osutil"
	"github.com/coreos/update-engine/testutil"
)

type ioSuite struct{}

var _ = Suite(&ioSuite{})

func openTestFile(c *C) (string, int) {
	path := filepath.Join(c.MkDir(), "io-test")
	fd, err := unix.Open(path, unix.O_RDWR|unix.O_CREAT, 0644)
	c.Assert(err, IsNil)
	return path, fd
}

func (s *ioSuite) TestWriteAllRoundTrips(c *C) {
	path, fd := openTestFile(c)
	defer unix.Close(fd)

	data := []byte("0123456789abcdef")
	c.Assert(osutil.WriteAll(fd, data), IsNil)
	c.Check(path, testutil.FileEquals, data)
}

func (s *ioSuite) TestWriteAllBadFd(c *C) {
	c.Check(osutil.WriteAll(-1, []byte("x")), NotNil)
}

func (s *ioSuite) TestPWriteAllLeavesOffsetAlone(c *C) {
	path, fd := openTestFile(c)
	defer unix.Close(fd)

	c.Assert(osutil.PWriteAll(fd, []byte("abc"), 4), IsNil)
	off, err := unix.Seek(fd, 0, 1)
	c.Assert(err, IsNil)
	c.Check(off, Equals, int64(0))
	c.Check(path, testutil.FileEquals, "\x00\x00\x00\x00abc")
}

func (s *ioSuite) TestPReadAllFull(c *C) {
	_, fd := openTestFile(c)
	defer unix.Close(fd)

	c.Assert(osutil.PWriteAll(fd, []byte("0123456789"), 0), IsNil)

	buf := make([]byte, 4)
	n, err := osutil.PReadAll(fd, buf, 3)
	c.Assert(err, IsNil)
	c.Check(n, Equals, 4)
	c.Check(string(buf), Equals, "3456")

	// fd offset still untouched
	off, err := unix.Seek(fd, 0, 1)
	c.Assert(err, IsNil)
	c.Check(off, Equals, int64(0))
}

func (s *ioSuite) TestPReadAllShortAtEOF(c *C) {
	_, fd := openTestFile(c)
	defer unix.Close(fd)

	c.Assert(osutil.PWriteAll(fd, []byte("0123456789"), 0), IsNil)

	buf := make([]byte, 16)
	n, err := osutil.PReadAll(fd, buf, 6)
	c.Assert(err, IsNil)
	c.Check(n, Equals, 4)
	c.Check(string(buf[:n]), Equals, "6789")
}

func (s *ioSuite) TestPReadAllBadFd(c *C) {
	buf := make([]byte, 4)
	_, err := osutil.PReadAll(-1, buf, 0)
	c.Check(err, NotNil)
}

func (s *ioSuite) TestWriteFile(c *C) {
	path := filepath.Join(c.MkDir(), "file")
	c.Assert(osutil.WriteFile(path, []byte("hello")), IsNil)
	c.Check(path, testutil.FileEquals, "hello")

	st, err := os.Stat(path)
	c.Assert(err, IsNil)
	c.Check(st.Mode().Perm(), Equals, os.FileMode(0644))

	// existing files are truncated
	c.Assert(osutil.WriteFile(path, []byte("x")), IsNil)
	c.Check(path, testutil.FileEquals, "x")
}

func (s *ioSuite) TestWriteFileBadPath(c *C) {
	c.Check(osutil.WriteFile(filepath.Join(c.MkDir(), "no/such/dir/file"), nil), NotNil)
}

func (s *ioSuite) TestReadFile(c *C) {
	path := filepath.Join(c.MkDir(), "file")
	c.Assert(os.WriteFile(path, []byte("content"), 0644), IsNil)

	data, err := osutil.ReadFile(path)
	c.Assert(err, IsNil)
	c.Check(string(data), Equals, "content")

	_, err = osutil.ReadFile(path + ".missing")
	c.Check(err, NotNil)
}

func (s *ioSuite) TestFileSize(c *C) {
	path := filepath.Join(c.MkDir(), "file")
	c.Assert(os.WriteFile(path, make([]byte, 777), 0644), IsNil)

	size, err := osutil.FileSize(path)
	c.Assert(err, IsNil)
	c.Check(size, Equals, int64(777))

	_, err = osutil.FileSize(path + ".missing")
	c.Check(err, NotNil)
}
