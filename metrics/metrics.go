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

// Package metrics emits enumeration samples to the platform metrics
// daemon through its shared events file, and maps normalized action
// exit codes onto the installer histograms.
package metrics

import (
	"encoding/binary"
	"fmt"
	"io"
	"time"

	"gopkg.in/retry.v1"

	"github.com/coreos/update-engine/dirs"
	"github.com/coreos/update-engine/osutil"
)

// Sink accepts enumeration samples. The production implementation is
// Library; tests substitute their own.
type Sink interface {
	// SendEnumToUMA records one sample of the named linear
	// histogram, where sample is in [0, max).
	SendEnumToUMA(name string, sample, max int) error
}

// lockRetryStrategy bounds how long a sender waits for the metrics
// daemon or another reporter to release the events file.
var lockRetryStrategy = retry.LimitCount(10, retry.LimitTime(5*time.Second,
	retry.Exponential{
		Initial: 10 * time.Millisecond,
		Factor:  2,
	},
))

// Library writes samples to the metrics events file, one length-framed
// record per sample, holding an exclusive flock for the append so that
// concurrent reporters and the collecting daemon never interleave
// partial records.
type Library struct{}

// NewLibrary returns a Sink backed by the metrics events file.
func NewLibrary() *Library {
	return &Library{}
}

// The record layout matches what the metrics daemon consumes: a 32-bit
// little-endian total length (framing included) followed by the message
// kind and its space-separated arguments, both NUL-terminated.
func formatEnumRecord(name string, sample, max int) []byte {
	payload := fmt.Sprintf("linearhistogram%c%s %d %d%c", 0, name, sample, max, 0)
	record := make([]byte, 4+len(payload))
	binary.LittleEndian.PutUint32(record, uint32(len(record)))
	copy(record[4:], payload)
	return record
}

func (l *Library) SendEnumToUMA(name string, sample, max int) error {
	lock, err := osutil.NewFileLockWithMode(dirs.UMAEventsFile, 0666)
	if err != nil {
		return fmt.Errorf("cannot open metrics events file: %v", err)
	}
	defer lock.Close()

	for a := retry.Start(lockRetryStrategy, nil); a.Next(); {
		err = lock.TryLock()
		if err != osutil.ErrAlreadyLocked {
			break
		}
	}
	if err != nil {
		return fmt.Errorf("cannot lock metrics events file: %v", err)
	}
	defer lock.Unlock()

	f := lock.File()
	if _, err := f.Seek(0, io.SeekEnd); err != nil {
		return fmt.Errorf("cannot seek metrics events file: %v", err)
	}
	if err := osutil.WriteAll(int(f.Fd()), formatEnumRecord(name, sample, max)); err != nil {
		return fmt.Errorf("cannot append metrics record: %v", err)
	}
	return nil
}
