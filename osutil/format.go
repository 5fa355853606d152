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
	"strings"
	"time"
)

func formatDelta(secs uint64, fraction string) string {
	days := secs / 86400
	hours := secs % 86400 / 3600
	mins := secs % 3600 / 60
	secs = secs % 60

	var b strings.Builder
	if days > 0 {
		fmt.Fprintf(&b, "%dd", days)
	}
	if b.Len() > 0 || hours > 0 {
		fmt.Fprintf(&b, "%dh", hours)
	}
	if b.Len() > 0 || mins > 0 {
		fmt.Fprintf(&b, "%dm", mins)
	}
	fmt.Fprintf(&b, "%d%ss", secs, fraction)
	return b.String()
}

// FormatSecs renders secs in human readable notation including days,
// hours, minutes and seconds. Higher units that are zero are elided,
// the seconds unit is always shown and nothing is zero padded: 185
// yields "3m5s", 4300 yields "1h11m40s" and 360000 yields "4d4h0m0s".
func FormatSecs(secs uint64) string {
	return formatDelta(secs, "")
}

// FormatTimeDelta renders delta like FormatSecs with a fractional
// second appended when sub-second precision is present, down to
// microsecond granularity. The fraction keeps its zero padding so that
// trailing-zero significance survives: 5d2h0m15s53ms yields
// "5d2h0m15.053s". A negative delta gets a leading "-".
func FormatTimeDelta(delta time.Duration) string {
	sign := ""
	if delta < 0 {
		sign = "-"
		delta = -delta
	}
	usecs := delta.Microseconds()
	fraction := ""
	if rem := usecs % 1000000; rem != 0 {
		if rem%1000 == 0 {
			// precise to milliseconds only
			fraction = fmt.Sprintf(".%03d", rem/1000)
		} else {
			fraction = fmt.Sprintf(".%06d", rem)
		}
	}
	return sign + formatDelta(uint64(usecs/1000000), fraction)
}

// TimeToString renders the given time in UTC as "MM/DD/YYYY HH:MM:SS GMT",
// e.g. "11/14/2011 14:05:30 GMT".
func TimeToString(t time.Time) string {
	return t.UTC().Format("01/02/2006 15:04:05") + " GMT"
}

// BoolToString returns "true" or "false" depending on b.
func BoolToString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
