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

	"github.com/coreos/update-engine/boot"
)

type cmdBootDevice struct{}

func init() {
	addCommand("boot-device",
		"Print the currently booted root partition device",
		`
The boot-device command prints the partition device mounted at /, for
example /dev/sda3.
`,
		func() flags.Commander {
			return &cmdBootDevice{}
		})
}

func (x *cmdBootDevice) Execute(args []string) error {
	if len(args) > 0 {
		return ErrExtraArgs
	}
	dev, err := boot.BootDevice()
	if err != nil {
		return err
	}
	fmt.Fprintln(Stdout, dev)
	return nil
}

type cmdKernelDevice struct {
	Positional struct {
		BootDevice string `positional-arg-name:"<boot-device>"`
	} `positional-args:"yes"`
}

func init() {
	addCommand("kernel-device",
		"Print the kernel partition paired with a root partition",
		`
The kernel-device command prints the kernel partition paired with the
given root partition device, or with the currently booted one when no
argument is given.
`,
		func() flags.Commander {
			return &cmdKernelDevice{}
		})
}

func (x *cmdKernelDevice) Execute(args []string) error {
	if len(args) > 0 {
		return ErrExtraArgs
	}
	bootDevice := x.Positional.BootDevice
	if bootDevice == "" {
		var err error
		bootDevice, err = boot.BootDevice()
		if err != nil {
			return err
		}
	}
	kernel := boot.BootKernelDevice(bootDevice)
	if kernel == "" {
		return fmt.Errorf("no kernel partition is paired with %q", bootDevice)
	}
	fmt.Fprintln(Stdout, kernel)
	return nil
}
