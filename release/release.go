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

// Package release answers questions about the image this device is
// running: its update channel, whether it is an official build, and the
// firmware-reported boot mode and hardware class.
package release

import (
	"fmt"
	"strings"

	"github.com/mvo5/goconfigparser"

	"github.com/coreos/update-engine/dirs"
	"github.com/coreos/update-engine/osutil"
)

// LSB holds the fields of /etc/lsb-release the update engine consumes.
type LSB struct {
	Track       string
	Description string
}

// ReadLSB returns the lsb-release information of the current system.
func ReadLSB() (*LSB, error) {
	cfg := goconfigparser.New()
	cfg.AllowNoSectionHeader = true
	if err := cfg.ReadFile(dirs.LsbReleaseFile); err != nil {
		return nil, fmt.Errorf("cannot read lsb-release: %v", err)
	}

	lsb := &LSB{}
	// both keys are optional; missing ones stay empty
	lsb.Track, _ = cfg.Get("", "CHROMEOS_RELEASE_TRACK")
	lsb.Description, _ = cfg.Get("", "CHROMEOS_RELEASE_DESCRIPTION")
	return lsb, nil
}

// Channel returns the update track this image follows, for example
// "stable-channel" or "beta-channel". Empty if lsb-release is missing
// or carries no track.
func Channel() string {
	lsb, err := ReadLSB()
	if err != nil {
		return ""
	}
	return lsb.Track
}

// IsOfficialBuild reports whether this image was produced by an
// official builder rather than a developer workstation.
func IsOfficialBuild() bool {
	lsb, err := ReadLSB()
	if err != nil {
		return false
	}
	return strings.Contains(lsb.Description, "Official Build")
}

var readPipe = osutil.ReadPipe

// IsNormalBootMode reports whether the firmware booted this device with
// the developer switch off. Only an explicit developer-switch reading
// counts as developer mode; if the firmware cannot be queried the boot
// mode is assumed normal.
func IsNormalBootMode() bool {
	out, err := readPipe("crossystem devsw_boot")
	if err != nil {
		return true
	}
	return strings.TrimSpace(string(out)) != "1"
}

// HardwareClass returns the firmware-reported hardware class (HWID) of
// this device.
func HardwareClass() (string, error) {
	out, err := readPipe("crossystem hwid")
	if err != nil {
		return "", fmt.Errorf("cannot read hardware class: %v", err)
	}
	return strings.TrimSpace(string(out)), nil
}
