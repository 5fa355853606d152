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

package mainloop

import (
	"fmt"
	"os"

	"github.com/coreos/update-engine/logger"
	"github.com/coreos/update-engine/osutil"
)

var crashReporterCmd = func(pid int) string {
	return fmt.Sprintf("/sbin/crash_reporter --udev=PID=%d", pid)
}

var readPipe = osutil.ReadPipe

// ScheduleCrashReporterUpload enqueues a one-shot callback on loop that
// asks the crash reporter to record and upload a synthetic crash for
// this process. No on-disk artifact is produced here; the reporter owns
// the crash spool.
func ScheduleCrashReporterUpload(loop *Loop) error {
	return loop.Schedule(func() {
		cmd := crashReporterCmd(os.Getpid())
		if _, err := readPipe(cmd); err != nil {
			logger.Noticef("cannot trigger crash reporter upload: %v", err)
		}
	})
}
