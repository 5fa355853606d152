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

	"golang.org/x/sys/unix"

	"github.com/coreos/update-engine/logger"
)

// The guards below bound the lifetime of kernel resources to a scope.
// Each one is armed on construction, released with defer, and disarmed
// via its setter when a successful code path hands ownership onward.
// Release failures are logged, never propagated.

// FdCloser closes a file descriptor when its scope exits. On a
// successful close -1 is written back through the pointer so the caller
// can observe that the descriptor is gone.
type FdCloser struct {
	fd          *int
	shouldClose bool
}

// NewFdCloser returns an armed FdCloser over the descriptor at fd.
func NewFdCloser(fd *int) *FdCloser {
	return &FdCloser{fd: fd, shouldClose: true}
}

// SetShouldClose disarms (or re-arms) the guard.
func (c *FdCloser) SetShouldClose(shouldClose bool) {
	c.shouldClose = shouldClose
}

// Close releases the descriptor if the guard is armed. Use with defer.
func (c *FdCloser) Close() {
	if !c.shouldClose || c.fd == nil || *c.fd < 0 {
		return
	}
	if err := unix.Close(*c.fd); err != nil {
		logger.Noticef("cannot close fd %d: %v", *c.fd, err)
		return
	}
	*c.fd = -1
}

// EintrSafeFdCloser is an FdCloser that retries close(2) past EINTR.
type EintrSafeFdCloser struct {
	fd          *int
	shouldClose bool
}

// NewEintrSafeFdCloser returns an armed EintrSafeFdCloser over the
// descriptor at fd.
func NewEintrSafeFdCloser(fd *int) *EintrSafeFdCloser {
	return &EintrSafeFdCloser{fd: fd, shouldClose: true}
}

// SetShouldClose disarms (or re-arms) the guard.
func (c *EintrSafeFdCloser) SetShouldClose(shouldClose bool) {
	c.shouldClose = shouldClose
}

// Close releases the descriptor if the guard is armed. Use with defer.
func (c *EintrSafeFdCloser) Close() {
	if !c.shouldClose || c.fd == nil || *c.fd < 0 {
		return
	}
	for {
		err := unix.Close(*c.fd)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			logger.Noticef("cannot close fd %d: %v", *c.fd, err)
			return
		}
		*c.fd = -1
		return
	}
}

// PathUnlinker deletes a file when its scope exits.
type PathUnlinker struct {
	path         string
	shouldRemove bool
}

// NewPathUnlinker returns an armed PathUnlinker for path.
func NewPathUnlinker(path string) *PathUnlinker {
	return &PathUnlinker{path: path, shouldRemove: true}
}

// SetShouldRemove disarms (or re-arms) the guard.
func (u *PathUnlinker) SetShouldRemove(shouldRemove bool) {
	u.shouldRemove = shouldRemove
}

// Unlink removes the file if the guard is armed. Use with defer.
func (u *PathUnlinker) Unlink() {
	if !u.shouldRemove {
		return
	}
	if err := os.Remove(u.path); err != nil {
		logger.Noticef("cannot unlink path %s: %v", u.path, err)
	}
}

// DirRemover deletes an empty directory when its scope exits.
type DirRemover struct {
	path         string
	shouldRemove bool
}

// NewDirRemover returns an armed DirRemover for path.
func NewDirRemover(path string) *DirRemover {
	return &DirRemover{path: path, shouldRemove: true}
}

// SetShouldRemove disarms (or re-arms) the guard.
func (r *DirRemover) SetShouldRemove(shouldRemove bool) {
	r.shouldRemove = shouldRemove
}

// Remove removes the directory if the guard is armed. Use with defer.
func (r *DirRemover) Remove() {
	if !r.shouldRemove {
		return
	}
	if err := unix.Rmdir(r.path); err != nil {
		logger.Noticef("cannot remove dir %s: %v", r.path, err)
	}
}
