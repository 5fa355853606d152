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

package actions_test

import (
	. "gopkg.in/check.v1"

	"github.com/coreos/update-engine/actions"
)

type completerSuite struct{}

var _ = Suite(&completerSuite{})

type fakeAction struct {
	typ string
}

func (a *fakeAction) Type() string { return a.typ }

type recordingProcessor struct {
	completed []struct {
		action actions.Action
		code   actions.ExitCode
	}
}

func (p *recordingProcessor) ActionComplete(action actions.Action, code actions.ExitCode) {
	p.completed = append(p.completed, struct {
		action actions.Action
		code   actions.ExitCode
	}{action, code})
}

func (s *completerSuite) TestDefaultsToError(c *C) {
	proc := &recordingProcessor{}
	action := &fakeAction{typ: "download"}

	func() {
		completer := actions.NewCompleter(proc, action)
		defer completer.Complete()
		// early return without setting a code
	}()

	c.Assert(proc.completed, HasLen, 1)
	c.Check(proc.completed[0].action, Equals, actions.Action(action))
	c.Check(proc.completed[0].code, Equals, actions.Error)
}

func (s *completerSuite) TestSetCode(c *C) {
	proc := &recordingProcessor{}
	action := &fakeAction{typ: "postinstall"}

	func() {
		completer := actions.NewCompleter(proc, action)
		defer completer.Complete()
		completer.SetCode(actions.Success)
	}()

	c.Assert(proc.completed, HasLen, 1)
	c.Check(proc.completed[0].code, Equals, actions.Success)
}

func (s *completerSuite) TestSetShouldComplete(c *C) {
	proc := &recordingProcessor{}
	action := &fakeAction{typ: "filesystem-copier"}

	func() {
		completer := actions.NewCompleter(proc, action)
		defer completer.Complete()
		completer.SetShouldComplete(false)
	}()

	c.Check(proc.completed, HasLen, 0)
}

func (s *completerSuite) TestCompletesAtMostOnce(c *C) {
	proc := &recordingProcessor{}
	action := &fakeAction{typ: "omaha-request"}

	completer := actions.NewCompleter(proc, action)
	completer.SetCode(actions.OmahaRequestError)
	completer.Complete()
	completer.Complete()

	c.Assert(proc.completed, HasLen, 1)
	c.Check(proc.completed[0].code, Equals, actions.OmahaRequestError)
}
