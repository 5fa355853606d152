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

	"golang.org/x/sys/unix"
)

// ErrnoText returns the strerror(3) style text for errno together with
// its symbolic name, e.g. "no such file or directory (ENOENT)", for
// attaching to log lines.
func ErrnoText(errno unix.Errno) string {
	name := unix.ErrnoName(errno)
	if name == "" {
		// Error() already renders unknown values as "errno N"
		return errno.Error()
	}
	return fmt.Sprintf("%s (%s)", errno.Error(), name)
}
