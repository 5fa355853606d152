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

package extfs

import (
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/coreos/update-engine/logger"
	"github.com/coreos/update-engine/osutil"
)

// Filesystem is an opened ext2/3/4 image or block device with its
// superblock validated and cached.
type Filesystem struct {
	path string
	fd   int
	sb   *Superblock
}

// Open opens the ext filesystem at path read-only and validates its
// superblock. The caller must Close the returned handle.
func Open(path string) (*Filesystem, error) {
	fd, err := unix.Open(path, unix.O_RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("cannot open %s: %v", path, err)
	}
	closer := osutil.NewEintrSafeFdCloser(&fd)
	defer closer.Close()

	sb, err := readSuperblock(fd)
	if err != nil {
		return nil, fmt.Errorf("cannot open %s: %v", path, err)
	}

	closer.SetShouldClose(false)
	return &Filesystem{path: path, fd: fd, sb: sb}, nil
}

// Path returns the path the filesystem was opened from.
func (f *Filesystem) Path() string {
	return f.path
}

// Superblock returns the cached superblock.
func (f *Filesystem) Superblock() *Superblock {
	return f.sb
}

// ReadAt fills buf from the filesystem at the given byte offset.
func (f *Filesystem) ReadAt(buf []byte, offset int64) (int, error) {
	return osutil.PReadAll(f.fd, buf, offset)
}

// Close closes the underlying descriptor. Closing twice is an error.
func (f *Filesystem) Close() error {
	if f.fd < 0 {
		return fmt.Errorf("ext filesystem %s already closed", f.path)
	}
	fd := f.fd
	f.fd = -1
	for {
		err := unix.Close(fd)
		if err == unix.EINTR {
			continue
		}
		return err
	}
}

// Closer closes an open ext Filesystem when its scope exits, unless
// disarmed. Close failures are logged and absorbed.
type Closer struct {
	fs          *Filesystem
	shouldClose bool
}

// NewCloser returns an armed Closer over fs.
func NewCloser(fs *Filesystem) *Closer {
	return &Closer{fs: fs, shouldClose: true}
}

// SetShouldClose disarms (or re-arms) the guard.
func (c *Closer) SetShouldClose(shouldClose bool) {
	c.shouldClose = shouldClose
}

// Close releases the filesystem if the guard is armed. Use with defer.
func (c *Closer) Close() {
	if !c.shouldClose {
		return
	}
	if err := c.fs.Close(); err != nil {
		logger.Noticef("cannot close ext filesystem: %v", err)
	}
}
