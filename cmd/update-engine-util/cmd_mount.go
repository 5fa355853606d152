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

package main

import (
	"github.com/jessevdk/go-flags"
	"golang.org/x/sys/unix"

	"github.com/coreos/update-engine/osutil/mount"
)

type cmdMount struct {
	ReadOnly bool `long:"read-only" description:"Mount the filesystem read-only"`

	Positional struct {
		Device     string `positional-arg-name:"<device>"`
		Mountpoint string `positional-arg-name:"<mountpoint>"`
	} `positional-args:"yes" required:"yes"`
}

func init() {
	addCommand("mount",
		"Mount an ext3 image or device",
		`
The mount command mounts the given device or image at the given
mountpoint as ext3. No filesystem type fallback is attempted.
`,
		func() flags.Commander {
			return &cmdMount{}
		})
}

func (x *cmdMount) Execute(args []string) error {
	if len(args) > 0 {
		return ErrExtraArgs
	}
	var mountFlags uintptr
	if x.ReadOnly {
		mountFlags |= unix.MS_RDONLY
	}
	return mount.MountFilesystem(x.Positional.Device, x.Positional.Mountpoint, mountFlags)
}

type cmdUnmount struct {
	Positional struct {
		Mountpoint string `positional-arg-name:"<mountpoint>"`
	} `positional-args:"yes" required:"yes"`
}

func init() {
	addCommand("unmount",
		"Unmount a mounted filesystem",
		`
The unmount command unmounts the filesystem mounted at the given
mountpoint.
`,
		func() flags.Commander {
			return &cmdUnmount{}
		})
}

func (x *cmdUnmount) Execute(args []string) error {
	if len(args) > 0 {
		return ErrExtraArgs
	}
	return mount.UnmountFilesystem(x.Positional.Mountpoint)
}
