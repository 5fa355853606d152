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

// Package mainloop runs the update engine's single cooperative event
// loop. All engine work executes as callbacks on the loop goroutine;
// long operations must be split across ticks or pushed to workers.
package mainloop

import (
	"fmt"

	"gopkg.in/tomb.v2"
)

// Loop is a single-goroutine callback dispatcher. Callbacks run in
// scheduling order, one at a time, on the goroutine that called Run.
type Loop struct {
	tomb  tomb.Tomb
	funcs chan func()
}

// New returns a Loop ready to have callbacks scheduled. Nothing runs
// until Run is called.
func New() *Loop {
	return &Loop{
		funcs: make(chan func(), 64),
	}
}

// Schedule enqueues f to run on the loop goroutine. It fails once the
// loop is stopping.
func (l *Loop) Schedule(f func()) error {
	select {
	case l.funcs <- f:
		return nil
	case <-l.tomb.Dying():
		return fmt.Errorf("cannot schedule callback: main loop is stopping")
	}
}

// Run dispatches scheduled callbacks until Stop is called. It blocks
// and returns the error the loop died with, if any.
func (l *Loop) Run() error {
	l.tomb.Go(l.dispatch)
	return l.tomb.Wait()
}

func (l *Loop) dispatch() error {
	for {
		select {
		case f := <-l.funcs:
			f()
		case <-l.tomb.Dying():
			return nil
		}
	}
}

// Stop tells the loop to finish its current callback and exit, then
// waits for it. Callbacks must not call Stop themselves.
func (l *Loop) Stop() error {
	l.tomb.Kill(nil)
	return l.tomb.Wait()
}
