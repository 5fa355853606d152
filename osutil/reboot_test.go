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
	"errors"
	"path/filepath"

	"github.com/godbus/dbus/v5"
	. "gopkg.in/check.v1"

	"github.com/coreos/update-engine/logger"
	"github.com/coreos/update-engine/osutil"
	"github.com/coreos/update-engine/testutil"
)

type rebootSuite struct{}

var _ = Suite(&rebootSuite{})

func (s *rebootSuite) TestRebootFallsBackToShutdown(c *C) {
	_, restoreLog := logger.MockLogger()
	defer restoreLog()
	restoreBus := osutil.MockDBusSystemBus(func() (*dbus.Conn, error) {
		return nil, errors.New("no bus")
	})
	defer restoreBus()

	marker := filepath.Join(c.MkDir(), "rebooted")
	restoreCmd := osutil.MockShutdownCommand([]string{"touch", marker})
	defer restoreCmd()

	c.Assert(osutil.Reboot(), IsNil)
	c.Check(marker, testutil.FilePresent)
}

func (s *rebootSuite) TestRebootFailure(c *C) {
	logbuf, restoreLog := logger.MockLogger()
	defer restoreLog()
	restoreBus := osutil.MockDBusSystemBus(func() (*dbus.Conn, error) {
		return nil, errors.New("no bus")
	})
	defer restoreBus()
	restoreCmd := osutil.MockShutdownCommand([]string{"false"})
	defer restoreCmd()

	c.Check(osutil.Reboot(), ErrorMatches, "cannot reboot: .*")
	c.Check(logbuf.String(), testutil.Contains, "cannot reboot via logind")
}
