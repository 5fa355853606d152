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

// Package dirs centralizes the well-known host paths the update engine
// reads and writes. Tests reroot everything with SetRootDir.
package dirs

import (
	"path/filepath"
)

var (
	// GlobalRootDir is the root directory all other paths hang off.
	GlobalRootDir string

	ProcMountsFile string
	BootIDFile     string

	SysfsBlockDir   string
	ChromeOSACPIDir string

	CgroupCPUDir        string
	CgroupCPUSharesFile string
	CgroupCPUTasksFile  string

	LsbReleaseFile string
	UMAEventsFile  string

	StatefulPartitionDir string
)

func init() {
	// init the global directories at startup
	SetRootDir("/")
}

// SetRootDir allows settings a new global root directory. This is useful
// for testing.
func SetRootDir(rootdir string) {
	if rootdir == "" {
		rootdir = "/"
	}
	GlobalRootDir = rootdir

	ProcMountsFile = filepath.Join(rootdir, "/proc/mounts")
	BootIDFile = filepath.Join(rootdir, "/proc/sys/kernel/random/boot_id")

	SysfsBlockDir = filepath.Join(rootdir, "/sys/block")
	ChromeOSACPIDir = filepath.Join(rootdir, "/sys/devices/platform/chromeos_acpi")

	CgroupCPUDir = filepath.Join(rootdir, "/sys/fs/cgroup/cpu/update-engine")
	CgroupCPUSharesFile = filepath.Join(CgroupCPUDir, "cpu.shares")
	CgroupCPUTasksFile = filepath.Join(CgroupCPUDir, "tasks")

	LsbReleaseFile = filepath.Join(rootdir, "/etc/lsb-release")
	UMAEventsFile = filepath.Join(rootdir, "/var/lib/metrics/uma-events")

	StatefulPartitionDir = filepath.Join(rootdir, "/mnt/stateful_partition")
}
