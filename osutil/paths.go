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
	"os"
	"strings"
)

// NormalizePath collapses runs of '/' in path into a single '/'. With
// stripTrailing set a trailing '/' is removed as well, unless the
// result would become empty. "." and ".." are never interpreted. The
// function is idempotent for a fixed stripTrailing.
func NormalizePath(path string, stripTrailing bool) string {
	var b strings.Builder
	b.Grow(len(path))
	slash := false
	for i := 0; i < len(path); i++ {
		if path[i] == '/' {
			if slash {
				continue
			}
			slash = true
		} else {
			slash = false
		}
		b.WriteByte(path[i])
	}
	out := b.String()
	if stripTrailing && len(out) > 1 && strings.HasSuffix(out, "/") {
		out = out[:len(out)-1]
	}
	return out
}

// FileExists returns whether path exists for sure. An error while
// checking counts as non-existence.
func FileExists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// IsSymlink returns whether path exists and is a symbolic link.
func IsSymlink(path string) bool {
	fi, err := os.Lstat(path)
	return err == nil && fi.Mode()&os.ModeSymlink != 0
}

// IsDirectory returns whether path exists and is a directory.
func IsDirectory(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}

// RecursiveUnlinkDir deletes path and everything under it, crossing
// filesystem boundaries. A regular file is simply unlinked.
func RecursiveUnlinkDir(path string) error {
	return os.RemoveAll(path)
}
