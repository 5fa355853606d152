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

	"github.com/coreos/update-engine/cgroup"
)

type cmdSetCPUShares struct {
	Positional struct {
		Level string `positional-arg-name:"<level>"`
	} `positional-args:"yes" required:"yes"`
}

func init() {
	addCommand("set-cpu-shares",
		"Set the update engine's scheduler priority",
		`
The set-cpu-shares command sets the CPU shares of the update engine's
control group to one of the levels low, normal or high.
`,
		func() flags.Commander {
			return &cmdSetCPUShares{}
		})
}

func (x *cmdSetCPUShares) Execute(args []string) error {
	if len(args) > 0 {
		return ErrExtraArgs
	}
	var shares cgroup.CPUShares
	switch x.Positional.Level {
	case "low":
		shares = cgroup.SharesLow
	case "normal":
		shares = cgroup.SharesNormal
	case "high":
		shares = cgroup.SharesHigh
	default:
		return fmt.Errorf("unknown CPU shares level %q", x.Positional.Level)
	}
	return cgroup.SetCPUShares(shares)
}
