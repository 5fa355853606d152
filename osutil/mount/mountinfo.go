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

package mount

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/coreos/update-engine/dirs"
)

// Entry is one line of /proc/mounts in fstab form.
type Entry struct {
	// Device is the mount source, typically a block device path.
	Device string
	// Dir is the mount point.
	Dir string
	// Type is the filesystem type.
	Type string
	// Options are the comma-separated mount options.
	Options []string
}

// unescape reverses the octal escapes (\040 for space etc) the kernel
// applies to fields of /proc/mounts.
func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+3 < len(s) {
			if n, err := strconv.ParseUint(s[i+1:i+4], 8, 8); err == nil {
				b.WriteByte(byte(n))
				i += 3
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func parseProcMounts(r io.Reader) ([]Entry, error) {
	var entries []Entry
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return nil, fmt.Errorf("cannot parse mount entry %q", line)
		}
		entries = append(entries, Entry{
			Device:  unescape(fields[0]),
			Dir:     unescape(fields[1]),
			Type:    fields[2],
			Options: strings.Split(fields[3], ","),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// LoadProcMounts returns the mount entries of the running system.
func LoadProcMounts() ([]Entry, error) {
	f, err := os.Open(dirs.ProcMountsFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parseProcMounts(f)
}

// IsMounted returns whether a filesystem is currently mounted at dir.
func IsMounted(dir string) (bool, error) {
	entries, err := LoadProcMounts()
	if err != nil {
		return false, err
	}
	for _, e := range entries {
		if e.Dir == dir {
			return true, nil
		}
	}
	return false, nil
}
