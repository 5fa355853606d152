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

	"github.com/coreos/update-engine/osutil"
	"github.com/coreos/update-engine/release"
)

type cmdReleaseInfo struct{}

func init() {
	addCommand("release-info",
		"Print the image's update channel and build type",
		`
The release-info command prints which update channel this image
follows and whether it is an official build.
`,
		func() flags.Commander {
			return &cmdReleaseInfo{}
		})
}

func (x *cmdReleaseInfo) Execute(args []string) error {
	if len(args) > 0 {
		return ErrExtraArgs
	}
	fmt.Fprintf(Stdout, "channel: %s\n", release.Channel())
	fmt.Fprintf(Stdout, "official-build: %s\n", osutil.BoolToString(release.IsOfficialBuild()))
	return nil
}
