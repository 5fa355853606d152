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

// Package disks does the block-device path arithmetic for the dual
// partition A/B scheme: splitting a partition device into root device
// and partition index, mapping devices to sysfs and probing
// removability.
package disks

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/coreos/update-engine/dirs"
)

const devPrefix = "/dev/"

// splitPartitionDevice splits /dev/sda3 into "/dev/sda" and "3". The
// partition index is the maximal trailing run of decimal digits. Both
// results are empty if the device is not of the /dev/xyz<n> form.
func splitPartitionDevice(partitionDevice string) (root, partition string) {
	if !strings.HasPrefix(partitionDevice, devPrefix) {
		return "", ""
	}
	i := len(partitionDevice)
	for i > len(devPrefix) && partitionDevice[i-1] >= '0' && partitionDevice[i-1] <= '9' {
		i--
	}
	if i == len(partitionDevice) {
		// no trailing digit run
		return "", ""
	}
	return partitionDevice[:i], partitionDevice[i:]
}

// RootDevice returns the root device for a partition device. For
// example, RootDevice("/dev/sda3") returns "/dev/sda". Returns an empty
// string if the input device is not of the "/dev/xyz<n>" form.
func RootDevice(partitionDevice string) string {
	root, _ := splitPartitionDevice(partitionDevice)
	return root
}

// PartitionNumber returns the partition index, as a string, of a
// partition device. For example, PartitionNumber("/dev/sda3") returns
// "3". Returns an empty string on malformed input.
func PartitionNumber(partitionDevice string) string {
	_, partition := splitPartitionDevice(partitionDevice)
	return partition
}

// SysfsBlockDevice returns the sysfs block device for a root block
// device. For example, SysfsBlockDevice("/dev/sda") returns
// "/sys/block/sda". Returns an empty string if the input device is not
// of the "/dev/xyz" form.
func SysfsBlockDevice(device string) string {
	if !strings.HasPrefix(device, devPrefix) {
		return ""
	}
	return filepath.Join(dirs.SysfsBlockDir, device[len(devPrefix):])
}

// IsRemovableDevice returns whether the root device (e.g. "/dev/sdb")
// is known to be removable. Errors while probing count as
// non-removable.
func IsRemovableDevice(device string) bool {
	sysfs := SysfsBlockDevice(device)
	if sysfs == "" {
		return false
	}
	b, err := os.ReadFile(filepath.Join(sysfs, "removable"))
	return err == nil && len(b) > 0 && b[0] == '1'
}
