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

	"github.com/coreos/update-engine/logger"
)

const hexDumpRowSize = 16

func hexDumpRow(offset int, row []byte) string {
	var hexpart strings.Builder
	var ascii strings.Builder
	for i := 0; i < hexDumpRowSize; i++ {
		if i < len(row) {
			fmt.Fprintf(&hexpart, "%02x ", row[i])
			if row[i] >= 0x20 && row[i] < 0x7f {
				ascii.WriteByte(row[i])
			} else {
				ascii.WriteByte('.')
			}
		} else {
			hexpart.WriteString("   ")
		}
	}
	return fmt.Sprintf("0x%08x : %s |%s|", offset, hexpart.String(), ascii.String())
}

// HexDumpRows renders data one string per 16-byte row, hex bytes
// followed by an ASCII rendering with non-printables replaced.
func HexDumpRows(data []byte) []string {
	var rows []string
	for offset := 0; offset < len(data); offset += hexDumpRowSize {
		end := offset + hexDumpRowSize
		if end > len(data) {
			end = len(data)
		}
		rows = append(rows, hexDumpRow(offset, data[offset:end]))
	}
	return rows
}

// HexDumpArray logs data one line per 16-byte row. Useful for
// debugging.
func HexDumpArray(data []byte) {
	for _, row := range HexDumpRows(data) {
		logger.Noticef("%s", row)
	}
}

// HexDumpString logs str like HexDumpArray.
func HexDumpString(str string) {
	HexDumpArray([]byte(str))
}
