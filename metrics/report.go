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

package metrics

import (
	"github.com/coreos/update-engine/actions"
)

// SystemState supplies the bits of engine-wide state that error
// reporting needs.
type SystemState interface {
	// IsOfficialBuild reports whether this image came from an
	// official builder.
	IsOfficialBuild() bool
	// IsNormalBootMode reports whether the device booted in verified
	// (non-developer) mode.
	IsNormalBootMode() bool
	// Metrics returns the sink samples are emitted into.
	Metrics() Sink
}

const (
	normalErrorCodesHistogram  = "Installer.NormalErrorCodes"
	devModeErrorCodesHistogram = "Installer.DevModeErrorCodes"
)

// ReportErrorCode normalizes code and emits it as one enumeration
// sample, bucketed by whether the device is in normal or developer
// mode. Unofficial builds report nothing.
func ReportErrorCode(state SystemState, code actions.ExitCode) error {
	if !state.IsOfficialBuild() {
		return nil
	}
	name := devModeErrorCodesHistogram
	if state.IsNormalBootMode() {
		name = normalErrorCodesHistogram
	}
	base := actions.BaseCode(code)
	return state.Metrics().SendEnumToUMA(name, int(base), int(actions.UmaReportedMax))
}
