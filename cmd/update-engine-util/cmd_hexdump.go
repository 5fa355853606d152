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
)

type cmdHexdump struct {
	Positional struct {
		File string `positional-arg-name:"<file>"`
	} `positional-args:"yes" required:"yes"`
}

func init() {
	addCommand("hexdump",
		"Print a hex dump of a file",
		`
The hexdump command prints the given file one 16-byte row per line,
hex bytes followed by an ASCII rendering.
`,
		func() flags.Commander {
			return &cmdHexdump{}
		})
}

func (x *cmdHexdump) Execute(args []string) error {
	if len(args) > 0 {
		return ErrExtraArgs
	}
	data, err := osutil.ReadFile(x.Positional.File)
	if err != nil {
		return err
	}
	for _, row := range osutil.HexDumpRows(data) {
		fmt.Fprintln(Stdout, row)
	}
	return nil
}
