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
	"path/filepath"

	. "gopkg.in/check.v1"

	"github.com/coreos/update-engine/osutil"
	"github.com/coreos/update-engine/testutil"
)

type flockSuite struct{}

var _ = Suite(&flockSuite{})

func (s *flockSuite) TestNewFileLockCreatesFile(c *C) {
	path := filepath.Join(c.MkDir(), "lock")
	lock, err := osutil.NewFileLock(path)
	c.Assert(err, IsNil)
	defer lock.Close()

	c.Check(lock.Path(), Equals, path)
	c.Check(path, testutil.FilePresent)
}

func (s *flockSuite) TestLockUnlock(c *C) {
	lock, err := osutil.NewFileLock(filepath.Join(c.MkDir(), "lock"))
	c.Assert(err, IsNil)
	defer lock.Close()

	c.Assert(lock.Lock(), IsNil)
	c.Assert(lock.Unlock(), IsNil)
}

func (s *flockSuite) TestTryLockConflict(c *C) {
	path := filepath.Join(c.MkDir(), "lock")
	lock1, err := osutil.NewFileLock(path)
	c.Assert(err, IsNil)
	defer lock1.Close()
	lock2, err := osutil.NewFileLock(path)
	c.Assert(err, IsNil)
	defer lock2.Close()

	c.Assert(lock1.Lock(), IsNil)
	c.Check(lock2.TryLock(), Equals, osutil.ErrAlreadyLocked)

	c.Assert(lock1.Unlock(), IsNil)
	c.Check(lock2.TryLock(), IsNil)
}
