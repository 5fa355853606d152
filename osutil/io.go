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
	"os"

	"golang.org/x/sys/unix"
)

// The update engine writes straight to block devices where partial
// writes and signal interruption are routine, so all the primitives
// here resume short operations and retry EINTR.

// WriteAll calls write(2) repeatedly until all of buf has been accepted
// by the kernel or an unrecoverable error occurs. It uses the shared
// file offset of fd and must not be interleaved with other writers of
// the same descriptor.
func WriteAll(fd int, buf []byte) error {
	for len(buf) > 0 {
		n, err := unix.Write(fd, buf)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return fmt.Errorf("cannot write %d bytes: %v", len(buf), err)
		}
		buf = buf[n:]
	}
	return nil
}

// PWriteAll is WriteAll using positional writes starting at offset. The
// file offset of fd is not modified, so concurrent positional operations
// on the same descriptor do not disturb each other.
func PWriteAll(fd int, buf []byte, offset int64) error {
	for len(buf) > 0 {
		n, err := unix.Pwrite(fd, buf, offset)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return fmt.Errorf("cannot write %d bytes at offset %d: %v", len(buf), offset, err)
		}
		buf = buf[n:]
		offset += int64(n)
	}
	return nil
}

// PReadAll calls pread(2) repeatedly until buf is full or end-of-file is
// reached, retrying EINTR. It returns the number of bytes actually read,
// which on success is in [0, len(buf)]. The file offset of fd is not
// modified.
func PReadAll(fd int, buf []byte, offset int64) (int, error) {
	read := 0
	for read < len(buf) {
		n, err := unix.Pread(fd, buf[read:], offset+int64(read))
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return read, fmt.Errorf("cannot read %d bytes at offset %d: %v", len(buf)-read, offset+int64(read), err)
		}
		if n == 0 {
			// end of file
			break
		}
		read += n
	}
	return read, nil
}

// WriteFile writes data to path, truncating it first if it exists and
// creating it with mode 0644 otherwise. No descriptor is leaked on any
// failure path.
func WriteFile(path string, data []byte) error {
	fd, err := unix.Open(path, unix.O_WRONLY|unix.O_CREAT|unix.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("cannot open %s for writing: %v", path, err)
	}
	closer := NewEintrSafeFdCloser(&fd)
	defer closer.Close()
	return WriteAll(fd, data)
}

// ReadFile reads the entire file at path. When an error is returned the
// returned slice may hold a partially populated prefix of the file; the
// caller must not use it.
func ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// FileSize returns the size of the file at path.
func FileSize(path string) (int64, error) {
	st, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return st.Size(), nil
}
