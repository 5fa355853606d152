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

	"github.com/coreos/update-engine/extfs"
)

type cmdFilesystemSize struct {
	Positional struct {
		Device string `positional-arg-name:"<device>"`
	} `positional-args:"yes" required:"yes"`
}

func init() {
	addCommand("filesystem-size",
		"Print the size of an ext filesystem",
		`
The filesystem-size command reads the superblock of an ext2/3/4 image
or block device and prints its block count, block size and total size
in bytes.
`,
		func() flags.Commander {
			return &cmdFilesystemSize{}
		})
}

func (x *cmdFilesystemSize) Execute(args []string) error {
	if len(args) > 0 {
		return ErrExtraArgs
	}
	blockCount, blockSize, err := extfs.FilesystemSize(x.Positional.Device)
	if err != nil {
		return err
	}
	fmt.Fprintf(Stdout, "block-count: %d\nblock-size: %d\nbytes: %d\n",
		blockCount, blockSize, int64(blockCount)*int64(blockSize))
	return nil
}
