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

package osutil

import (
	"fmt"
	"io"
	"os/exec"
)

// ReadPipe runs cmd in a subshell and returns its captured standard
// output. The child's exit status is deliberately ignored: failure
// means the child could not be started or its stream could not be read.
func ReadPipe(cmd string) ([]byte, error) {
	child := exec.Command("/bin/sh", "-c", cmd)
	stdout, err := child.StdoutPipe()
	if err != nil {
		return nil, err
	}
	if err := child.Start(); err != nil {
		return nil, fmt.Errorf("cannot run %q: %v", cmd, err)
	}
	out, readErr := io.ReadAll(stdout)
	child.Wait()
	if readErr != nil {
		return nil, fmt.Errorf("cannot read output of %q: %v", cmd, readErr)
	}
	return out, nil
}
