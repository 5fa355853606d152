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
	"os"
	"strings"

	"github.com/coreos/update-engine/randutil"
)

// the same bound the libc mkstemp family uses
const tempRetries = 10000

func splitTemplate(template string) (prefix string, err error) {
	if !strings.HasSuffix(template, "XXXXXX") {
		return "", fmt.Errorf("temp template %q must end with XXXXXX", template)
	}
	return template[:len(template)-6], nil
}

// TempFilename expands the trailing XXXXXX of template and returns a
// path that did not exist at the time of the check. There is no
// allocation: another writer may create the path before the caller
// does. Never use this in a directory other processes write to; use
// MakeTempFile instead.
func TempFilename(template string) (string, error) {
	prefix, err := splitTemplate(template)
	if err != nil {
		return "", err
	}
	for i := 0; i < tempRetries; i++ {
		name := prefix + randutil.MakeRandomString(6)
		if _, err := os.Lstat(name); os.IsNotExist(err) {
			return name, nil
		}
	}
	return "", fmt.Errorf("cannot find unused temp name for %q", template)
}

// MakeTempFile atomically creates a file from template, whose last six
// characters must be XXXXXX, and returns the chosen name together with
// the open file. The caller owns the returned file and must close it.
func MakeTempFile(template string) (string, *os.File, error) {
	prefix, err := splitTemplate(template)
	if err != nil {
		return "", nil, err
	}
	for i := 0; i < tempRetries; i++ {
		name := prefix + randutil.MakeRandomString(6)
		f, err := os.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0600)
		if os.IsExist(err) {
			continue
		}
		if err != nil {
			return "", nil, fmt.Errorf("cannot create temp file for %q: %v", template, err)
		}
		return name, f, nil
	}
	return "", nil, fmt.Errorf("cannot create unique temp file for %q", template)
}

// MakeTempDirectory atomically creates a directory from template, whose
// last six characters must be XXXXXX, and returns the chosen name.
func MakeTempDirectory(template string) (string, error) {
	prefix, err := splitTemplate(template)
	if err != nil {
		return "", err
	}
	for i := 0; i < tempRetries; i++ {
		name := prefix + randutil.MakeRandomString(6)
		err := os.Mkdir(name, 0700)
		if os.IsExist(err) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("cannot create temp dir for %q: %v", template, err)
		}
		return name, nil
	}
	return "", fmt.Errorf("cannot create unique temp dir for %q", template)
}
