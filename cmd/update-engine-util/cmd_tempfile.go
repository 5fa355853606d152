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
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/coreos/update-engine/osutil"
)

type cmdTempfile struct {
	Directory bool `long:"directory" description:"Create a directory instead of a file"`

	Positional struct {
		Template string `positional-arg-name:"<template>"`
	} `positional-args:"yes" required:"yes"`
}

func init() {
	addCommand("tempfile",
		"Create a unique temporary file or directory",
		`
The tempfile command atomically creates a temporary file or directory
from a template whose last six characters are XXXXXX, and prints the
resulting name.
`,
		func() flags.Commander {
			return &cmdTempfile{}
		})
}

func (x *cmdTempfile) Execute(args []string) error {
	if len(args) > 0 {
		return ErrExtraArgs
	}
	var name string
	var err error
	if x.Directory {
		name, err = osutil.MakeTempDirectory(x.Positional.Template)
	} else {
		var f *os.File
		name, f, err = osutil.MakeTempFile(x.Positional.Template)
		if f != nil {
			f.Close()
		}
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(Stdout, name)
	return nil
}
