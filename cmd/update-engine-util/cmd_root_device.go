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
	"fmt"

	"github.com/jessevdk/go-flags"

	"github.com/coreos/update-engine/osutil/disks"
)

type cmdRootDevice struct {
	PartitionNumber bool `long:"partition-number" description:"Print the partition number instead of the root device"`
	Removable       bool `long:"removable" description:"Print whether the device is removable"`

	Positional struct {
		Device string `positional-arg-name:"<partition-device>"`
	} `positional-args:"yes" required:"yes"`
}

func init() {
	addCommand("root-device",
		"Print the root device of a partition device",
		`
The root-device command strips the partition index off a partition
device path like /dev/sda3 and prints the underlying root device.
`,
		func() flags.Commander {
			return &cmdRootDevice{}
		})
}

func (x *cmdRootDevice) Execute(args []string) error {
	if len(args) > 0 {
		return ErrExtraArgs
	}
	device := x.Positional.Device
	root := disks.RootDevice(device)
	if root == "" {
		return fmt.Errorf("%q is not a partition device", device)
	}
	switch {
	case x.PartitionNumber:
		fmt.Fprintln(Stdout, disks.PartitionNumber(device))
	case x.Removable:
		fmt.Fprintln(Stdout, disks.IsRemovableDevice(root))
	default:
		fmt.Fprintln(Stdout, root)
	}
	return nil
}
