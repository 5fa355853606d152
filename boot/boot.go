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

// Package boot discovers the currently booted root partition and its
// paired kernel partition in the dual-slot A/B scheme: each usr
// partition is paired with the kernel partition one index lower.
package boot

import (
	"fmt"

	"github.com/coreos/update-engine/dirs"
	"github.com/coreos/update-engine/osutil"
	"github.com/coreos/update-engine/osutil/disks"
	"github.com/coreos/update-engine/osutil/mount"
)

// BootDevice returns the partition device currently mounted at root,
// "/dev/sda3" for example. LABEL= and UUID= sources are not
// interpreted; resolving those is up to the caller.
func BootDevice() (string, error) {
	entries, err := mount.LoadProcMounts()
	if err != nil {
		return "", err
	}
	for _, e := range entries {
		if e.Dir != "/" {
			continue
		}
		// the kernel lists pseudo root filesystems (rootfs) before
		// the real root device
		if disks.RootDevice(e.Device) == "" {
			continue
		}
		return e.Device, nil
	}
	return "", fmt.Errorf("cannot find booted root device")
}

// bootKernelPairs maps a trailing usr partition digit to its paired
// kernel partition digit.
var bootKernelPairs = map[byte]byte{
	'3': '2',
	'5': '4',
	'7': '6',
}

// BootKernelDevice returns the kernel partition device paired with the
// given booted root device, "/dev/sda2" for "/dev/sda3". The suggested
// calling convention is BootKernelDevice(BootDevice()). Works by string
// modification of the last digit; returns an empty string for any
// unpaired partition index.
func BootKernelDevice(bootDevice string) string {
	if bootDevice == "" {
		return ""
	}
	last := bootDevice[len(bootDevice)-1]
	kernel, ok := bootKernelPairs[last]
	if !ok {
		return ""
	}
	return bootDevice[:len(bootDevice)-1] + string(kernel)
}

// Bootloader names a supported bootloader flavor.
type Bootloader int

const (
	BootloaderSyslinux Bootloader = iota
	BootloaderChromeFirmware
)

func (b Bootloader) String() string {
	switch b {
	case BootloaderSyslinux:
		return "syslinux"
	case BootloaderChromeFirmware:
		return "chrome-firmware"
	}
	return fmt.Sprintf("Bootloader(%d)", int(b))
}

// DetectBootloader determines which bootloader this system uses. A
// system exposing the ChromeOS ACPI platform device boots through the
// Chrome firmware; everything else uses syslinux.
func DetectBootloader() Bootloader {
	if osutil.IsDirectory(dirs.ChromeOSACPIDir) {
		return BootloaderChromeFirmware
	}
	return BootloaderSyslinux
}
