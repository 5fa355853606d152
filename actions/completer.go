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

package actions

// Action is a single step of an update attempt, driven by a Processor.
type Action interface {
	// Type names the action for logs and completion callbacks.
	Type() string
}

// Processor drives a chain of actions and is told how each one ended.
type Processor interface {
	ActionComplete(action Action, code ExitCode)
}

// Completer reports an action's terminal code to its processor when the
// action's scope exits. The code defaults to Error, so every early
// return reports a failure unless the successful path overwrote it with
// SetCode first. The completer holds non-owning references; the
// processor owns the action.
type Completer struct {
	processor      Processor
	action         Action
	code           ExitCode
	shouldComplete bool
}

// NewCompleter returns an armed Completer that will report Error for
// action unless told otherwise.
func NewCompleter(processor Processor, action Action) *Completer {
	return &Completer{
		processor:      processor,
		action:         action,
		code:           Error,
		shouldComplete: true,
	}
}

// SetCode sets the code reported on completion.
func (c *Completer) SetCode(code ExitCode) {
	c.code = code
}

// SetShouldComplete disarms (or re-arms) the guard.
func (c *Completer) SetShouldComplete(shouldComplete bool) {
	c.shouldComplete = shouldComplete
}

// Complete forwards the recorded code to the processor if the guard is
// armed, at most once. Use with defer.
func (c *Completer) Complete() {
	if !c.shouldComplete {
		return
	}
	c.shouldComplete = false
	c.processor.ActionComplete(c.action, c.code)
}
