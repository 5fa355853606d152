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

// Package cgroup maps the update engine's three scheduler priority
// levels onto the Linux cgroup v1 cpu.shares weight and applies them to
// the engine's own control group.
package cgroup

import (
	"fmt"
	"os"
	"strconv"

	"github.com/coreos/update-engine/dirs"
	"github.com/coreos/update-engine/osutil"
)

// CPUShares is a cgroup v1 cpu.shares weight. The update engine only
// ever uses the three levels below; Low keeps a long-running update
// from competing with interactive work.
type CPUShares int

const (
	SharesHigh   CPUShares = 2048
	SharesNormal CPUShares = 1024
	SharesLow    CPUShares = 2
)

func (s CPUShares) String() string {
	switch s {
	case SharesHigh:
		return "high"
	case SharesNormal:
		return "normal"
	case SharesLow:
		return "low"
	}
	return strconv.Itoa(int(s))
}

// CompareCPUShares returns a value with the sign of int(a) - int(b), so
// that shares levels order by the CPU weight they grant.
func CompareCPUShares(a, b CPUShares) int {
	return int(a) - int(b)
}

// SetCPUShares writes the given weight as decimal text to the update
// engine's cpu.shares file. The control group must already exist; the
// engine's service unit creates it at startup.
func SetCPUShares(shares CPUShares) error {
	if err := osutil.WriteFile(dirs.CgroupCPUSharesFile, []byte(strconv.Itoa(int(shares)))); err != nil {
		return fmt.Errorf("cannot set cpu shares to %d: %v", int(shares), err)
	}
	return nil
}

// JoinCPUGroup moves the current process into the update engine's cpu
// control group by appending its pid to the group's tasks file.
func JoinCPUGroup() error {
	pid := os.Getpid()
	if err := osutil.WriteFile(dirs.CgroupCPUTasksFile, []byte(strconv.Itoa(pid))); err != nil {
		return fmt.Errorf("cannot add pid %d to cpu cgroup: %v", pid, err)
	}
	return nil
}
