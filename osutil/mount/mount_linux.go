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

// Package mount mounts and unmounts the ext3 images and partitions the
// update engine works on.
package mount

import (
	"fmt"
	"strings"
	"syscall"

	"github.com/coreos/update-engine/logger"
)

type syscallNumPair struct {
	str string
	num int
}

// UMOUNT_NOFOLLOW is not defined in go's syscall package
const UMOUNT_NOFOLLOW = 8

var mountSyscalls = []syscallNumPair{
	{"MS_REMOUNT", syscall.MS_REMOUNT},
	{"MS_BIND", syscall.MS_BIND},
	{"MS_REC", syscall.MS_REC},
	{"MS_RDONLY", syscall.MS_RDONLY},
	{"MS_SHARED", syscall.MS_SHARED},
	{"MS_SLAVE", syscall.MS_SLAVE},
	{"MS_PRIVATE", syscall.MS_PRIVATE},
	{"MS_UNBINDABLE", syscall.MS_UNBINDABLE},
}

var unmountSyscalls = []syscallNumPair{
	{"UMOUNT_NOFOLLOW", UMOUNT_NOFOLLOW},
	{"MNT_FORCE", syscall.MNT_FORCE},
	{"MNT_DETACH", syscall.MNT_DETACH},
	{"MNT_EXPIRE", syscall.MNT_EXPIRE},
}

func flagOptSearch(flags int, lookupTable []syscallNumPair) (opts []string, unknown int) {
	var f, i int
	var sys syscallNumPair
	for i, sys = range lookupTable {
		f = sys.num
		if flags&f == f {
			flags ^= f
			opts = append(opts, lookupTable[i].str)
		}
	}
	return opts, flags
}

// MountFlagsToOpts returns the symbolic representation of mount flags.
func MountFlagsToOpts(flags int) (opts []string, unknown int) {
	return flagOptSearch(flags, mountSyscalls)
}

// UnmountFlagsToOpts returns the symbolic representation of unmount flags.
func UnmountFlagsToOpts(flags int) (opts []string, unknown int) {
	return flagOptSearch(flags, unmountSyscalls)
}

// mockable in tests, mounting needs privileges
var (
	sysMount   = syscall.Mount
	sysUnmount = syscall.Unmount
)

// MountFilesystem synchronously mounts the block device at mountpoint
// as ext3 with the given mount flags. No filesystem-type fallback is
// performed.
func MountFilesystem(device, mountpoint string, flags uintptr) error {
	opts, unknown := MountFlagsToOpts(int(flags))
	logger.Debugf("mounting %s at %s (%s)", device, mountpoint, strings.Join(opts, "|"))
	if unknown != 0 {
		logger.Noticef("mount of %s carries unknown flag bits %#x", device, unknown)
	}
	if err := sysMount(device, mountpoint, "ext3", flags, ""); err != nil {
		return fmt.Errorf("cannot mount %s at %s: %v", device, mountpoint, err)
	}
	return nil
}

// UnmountFilesystem synchronously unmounts the filesystem mounted at
// mountpoint.
func UnmountFilesystem(mountpoint string) error {
	if err := sysUnmount(mountpoint, 0); err != nil {
		return fmt.Errorf("cannot unmount %s: %v", mountpoint, err)
	}
	return nil
}
