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

// Package actions defines the exit codes the update engine's action
// processor passes between actions, the normalization policy applied
// before those codes reach metrics, and the completion guard that
// reports a terminal code on every exit path.
package actions

import (
	"fmt"
	"strings"
)

// ExitCode is the packed result of an action: the low bits name the
// base cause and the high bits carry informational flags about the
// update attempt that produced it.
type ExitCode uint32

const (
	Success ExitCode = iota
	Error
	OmahaRequestError
	OmahaResponseHandlerError
	FilesystemCopierError
	PostinstallRunnerError
	SetBootableFlagError
	InstallDeviceOpenError
	KernelDeviceOpenError
	DownloadTransferError
	PayloadHashMismatchError
	PayloadSizeMismatchError
	DownloadPayloadVerificationError
	DownloadNewPartitionInfoError
	DownloadWriteError
	NewRootfsVerificationError
	NewKernelVerificationError
	SignedDeltaPayloadExpectedError
	DownloadPayloadPubKeyVerificationError
	PostinstallBootedFromFirmwareB

	// OtherBaseEncountered aggregates every base value outside the
	// enumerators above into a single metrics bucket.
	OtherBaseEncountered

	// UmaReportedMax is one past the largest value ever reported to
	// metrics. Codes at or above it normalize to
	// OtherBaseEncountered.
	UmaReportedMax
)

// Informational flags carried in the high bits of an ExitCode. They
// describe the attempt, not the failure, and are stripped before the
// code is bucketed for metrics.
const (
	DevModeFlag      ExitCode = 1 << 31
	ResumedFlag      ExitCode = 1 << 30
	TestImageFlag    ExitCode = 1 << 29
	TestOmahaURLFlag ExitCode = 1 << 28

	// SpecialFlags masks all informational flag bits.
	SpecialFlags = DevModeFlag | ResumedFlag | TestImageFlag | TestOmahaURLFlag
)

var baseCodeNames = map[ExitCode]string{
	Success:                                "success",
	Error:                                  "error",
	OmahaRequestError:                      "omaha-request-error",
	OmahaResponseHandlerError:              "omaha-response-handler-error",
	FilesystemCopierError:                  "filesystem-copier-error",
	PostinstallRunnerError:                 "postinstall-runner-error",
	SetBootableFlagError:                   "set-bootable-flag-error",
	InstallDeviceOpenError:                 "install-device-open-error",
	KernelDeviceOpenError:                  "kernel-device-open-error",
	DownloadTransferError:                  "download-transfer-error",
	PayloadHashMismatchError:               "payload-hash-mismatch-error",
	PayloadSizeMismatchError:               "payload-size-mismatch-error",
	DownloadPayloadVerificationError:       "download-payload-verification-error",
	DownloadNewPartitionInfoError:          "download-new-partition-info-error",
	DownloadWriteError:                     "download-write-error",
	NewRootfsVerificationError:             "new-rootfs-verification-error",
	NewKernelVerificationError:             "new-kernel-verification-error",
	SignedDeltaPayloadExpectedError:        "signed-delta-payload-expected-error",
	DownloadPayloadPubKeyVerificationError: "download-payload-pub-key-verification-error",
	PostinstallBootedFromFirmwareB:         "postinstall-booted-from-firmware-b",
	OtherBaseEncountered:                   "other-base-encountered",
}

var flagNames = []struct {
	flag ExitCode
	name string
}{
	{DevModeFlag, "dev-mode"},
	{ResumedFlag, "resumed"},
	{TestImageFlag, "test-image"},
	{TestOmahaURLFlag, "test-omaha-url"},
}

// BaseCode strips the informational flag bits from code and aggregates
// any resulting base value outside the declared enumerators into
// OtherBaseEncountered. BaseCode is idempotent.
func BaseCode(code ExitCode) ExitCode {
	base := code &^ SpecialFlags
	if base >= UmaReportedMax {
		return OtherBaseEncountered
	}
	return base
}

// CodeToString renders code as its base mnemonic followed by a "+flag"
// suffix for every informational flag set, for logging.
func CodeToString(code ExitCode) string {
	base := code &^ SpecialFlags
	name, ok := baseCodeNames[base]
	if !ok {
		name = fmt.Sprintf("code-%d", uint32(base))
	}
	var b strings.Builder
	b.WriteString(name)
	for _, f := range flagNames {
		if code&f.flag != 0 {
			b.WriteString("+")
			b.WriteString(f.name)
		}
	}
	return b.String()
}

func (code ExitCode) String() string {
	return CodeToString(code)
}
