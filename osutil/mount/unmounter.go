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

package mount

import (
	"golang.org/x/sys/unix"

	"github.com/coreos/update-engine/logger"
)

// Unmounter unmounts a filesystem when its scope exits, unless
// disarmed. Failures are logged and absorbed.
type Unmounter struct {
	mountpoint    string
	shouldUnmount bool
}

// NewUnmounter returns an armed Unmounter for mountpoint.
func NewUnmounter(mountpoint string) *Unmounter {
	return &Unmounter{mountpoint: mountpoint, shouldUnmount: true}
}

// SetShouldUnmount disarms (or re-arms) the guard.
func (u *Unmounter) SetShouldUnmount(shouldUnmount bool) {
	u.shouldUnmount = shouldUnmount
}

// Unmount releases the mount if the guard is armed. Use with defer.
func (u *Unmounter) Unmount() {
	if !u.shouldUnmount {
		return
	}
	if err := UnmountFilesystem(u.mountpoint); err != nil {
		logger.Noticef("%v", err)
	}
}

// TempUnmounter unmounts a filesystem mounted on a temporary directory
// and then deletes that directory when its scope exits.
type TempUnmounter struct {
	path          string
	shouldRelease bool
}

// NewTempUnmounter returns an armed TempUnmounter for path.
func NewTempUnmounter(path string) *TempUnmounter {
	return &TempUnmounter{path: path, shouldRelease: true}
}

// SetShouldRelease disarms (or re-arms) the guard.
func (u *TempUnmounter) SetShouldRelease(shouldRelease bool) {
	u.shouldRelease = shouldRelease
}

// Release unmounts the path and removes the directory if the guard is
// armed. Use with defer.
func (u *TempUnmounter) Release() {
	if !u.shouldRelease {
		return
	}
	if err := UnmountFilesystem(u.path); err != nil {
		logger.Noticef("%v", err)
	}
	if err := unix.Rmdir(u.path); err != nil {
		logger.Noticef("cannot remove temp mount dir %s: %v", u.path, err)
	}
}
