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

// Package extfs reads the superblock of ext2/3/4 images and block
// devices directly, so filesystem geometry can be probed on hosts that
// carry no ext tooling at all.
package extfs

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/coreos/update-engine/osutil"
)

// the superblock starts at a fixed byte offset into the device
const superblockOffset = 1024

// Magic is the little-endian magic value of an ext-family superblock.
const Magic = 0xEF53

// Superblock is the leading portion of an ext2/3/4 superblock, as laid
// out on disk (all fields little-endian).
type Superblock struct {
	InodesCount     uint32
	BlocksCount     uint32
	RBlocksCount    uint32
	FreeBlocksCount uint32
	FreeInodesCount uint32
	FirstDataBlock  uint32
	LogBlockSize    uint32
	LogFragSize     int32
	BlocksPerGroup  uint32
	FragsPerGroup   uint32
	InodesPerGroup  uint32
	Mtime           uint32
	Wtime           uint32
	MntCount        uint16
	MaxMntCount     int16
	Magic           uint16
}

// BlockSize returns the filesystem block size in bytes.
func (sb *Superblock) BlockSize() int {
	return 1024 << sb.LogBlockSize
}

// BlockCount returns the number of blocks of the filesystem.
func (sb *Superblock) BlockCount() int {
	return int(sb.BlocksCount)
}

// Size returns the filesystem size in bytes.
func (sb *Superblock) Size() int64 {
	return int64(sb.BlockCount()) * int64(sb.BlockSize())
}

func readSuperblock(fd int) (*Superblock, error) {
	buf := make([]byte, binary.Size(&Superblock{}))
	n, err := osutil.PReadAll(fd, buf, superblockOffset)
	if err != nil {
		return nil, fmt.Errorf("cannot read superblock: %v", err)
	}
	if n != len(buf) {
		return nil, fmt.Errorf("short superblock read: %d bytes", n)
	}
	var sb Superblock
	if err := binary.Read(bytes.NewReader(buf), binary.LittleEndian, &sb); err != nil {
		return nil, err
	}
	if sb.Magic != Magic {
		return nil, fmt.Errorf("bad ext superblock magic %#06x", sb.Magic)
	}
	// 1KiB through 64KiB blocks
	if sb.LogBlockSize > 6 {
		return nil, fmt.Errorf("ext log block size %d out of range", sb.LogBlockSize)
	}
	return &sb, nil
}

// FilesystemSizeFromFd returns the block count and block byte size of
// the ext filesystem readable through the already-open fd. The actual
// filesystem size is blockCount * blockSize bytes. The file offset of
// fd is not perturbed.
func FilesystemSizeFromFd(fd int) (blockCount, blockSize int, err error) {
	sb, err := readSuperblock(fd)
	if err != nil {
		return 0, 0, err
	}
	return sb.BlockCount(), sb.BlockSize(), nil
}

// FilesystemSize returns the block count and block byte size of the
// ext filesystem on device, which may be a real block device or a path
// to a filesystem image.
func FilesystemSize(device string) (blockCount, blockSize int, err error) {
	fd, err := unix.Open(device, unix.O_RDONLY, 0)
	if err != nil {
		return 0, 0, fmt.Errorf("cannot open %s: %v", device, err)
	}
	closer := osutil.NewEintrSafeFdCloser(&fd)
	defer closer.Close()
	return FilesystemSizeFromFd(fd)
}
