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
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

// FileLock describes a file system lock
type FileLock struct {
	file *os.File
}

// ErrAlreadyLocked is returned when an operation cannot succeed because
// the lock is already held by another process.
var ErrAlreadyLocked = errors.New("cannot acquire lock, already locked")

// NewFileLockWithMode creates and opens the lock file given by "path"
// with the given mode.
func NewFileLockWithMode(path string, mode os.FileMode) (*FileLock, error) {
	flag := unix.O_RDWR | unix.O_CREAT | unix.O_NOFOLLOW | unix.O_CLOEXEC
	file, err := os.OpenFile(path, flag, mode)
	if err != nil {
		return nil, err
	}
	return &FileLock{file: file}, nil
}

// NewFileLock creates and opens the lock file given by "path" with mode 0600.
func NewFileLock(path string) (*FileLock, error) {
	return NewFileLockWithMode(path, 0600)
}

// Path returns the path of the lock file.
func (l *FileLock) Path() string {
	return l.file.Name()
}

// File returns the underlying file.
func (l *FileLock) File() *os.File {
	return l.file
}

// Close closes the lock, unlocking it automatically if needed.
func (l *FileLock) Close() error {
	return l.file.Close()
}

func (l *FileLock) flock(how int) error {
	for {
		err := unix.Flock(int(l.file.Fd()), how)
		if err != unix.EINTR {
			return err
		}
	}
}

// Lock acquires an exclusive lock, blocking until it can do so.
func (l *FileLock) Lock() error {
	return l.flock(unix.LOCK_EX)
}

// TryLock acquires an exclusive lock and errors out with
// ErrAlreadyLocked if it cannot do so right away.
func (l *FileLock) TryLock() error {
	err := l.flock(unix.LOCK_EX | unix.LOCK_NB)
	if err == unix.EWOULDBLOCK {
		return ErrAlreadyLocked
	}
	return err
}

// Unlock releases an acquired lock.
func (l *FileLock) Unlock() error {
	return l.flock(unix.LOCK_UN)
}
