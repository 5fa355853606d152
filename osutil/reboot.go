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

package osutil

import (
	"fmt"
	"os/exec"

	"github.com/godbus/dbus/v5"

	"github.com/coreos/update-engine/logger"
)

var (
	dbusSystemBus = dbus.SystemBus
	shutdownCmd   = []string{"shutdown", "-r", "now"}
)

func rebootViaLogind() error {
	conn, err := dbusSystemBus()
	if err != nil {
		return err
	}
	obj := conn.Object("org.freedesktop.login1", "/org/freedesktop/login1")
	return obj.Call("org.freedesktop.login1.Manager.Reboot", 0, false).Err
}

// Reboot initiates a synchronous system reboot, preferring a clean
// logind reboot and falling back to shutdown(8).
func Reboot() error {
	if err := rebootViaLogind(); err == nil {
		return nil
	} else {
		logger.Noticef("cannot reboot via logind, falling back to shutdown: %v", err)
	}
	out, err := exec.Command(shutdownCmd[0], shutdownCmd[1:]...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("cannot reboot: %v (%q)", err, string(out))
	}
	return nil
}
