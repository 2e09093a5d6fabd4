// This file is part of dbg65xx.
//
// dbg65xx is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// dbg65xx is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with dbg65xx.  If not, see <https://www.gnu.org/licenses/>.

package govern_test

import (
	"testing"

	"github.com/jetsetilly/dbg65xx/debugger/govern"
	"github.com/jetsetilly/dbg65xx/test"
)

func TestStateIntegrity(t *testing.T) {
	test.ExpectSuccess(t, govern.StateIntegrity(govern.Idle, govern.NoReason))
	test.ExpectSuccess(t, govern.StateIntegrity(govern.Running, govern.NoReason))
	test.ExpectSuccess(t, govern.StateIntegrity(govern.Stopped, govern.StopBreakpoint))
	test.ExpectFailure(t, govern.StateIntegrity(govern.Stopped, govern.NoReason))
	test.ExpectFailure(t, govern.StateIntegrity(govern.Running, govern.StopPause))
}

func TestTransition(t *testing.T) {
	test.ExpectSuccess(t, govern.Transition(govern.Idle, govern.Stopped))
	test.ExpectSuccess(t, govern.Transition(govern.Stopped, govern.Running))
	test.ExpectSuccess(t, govern.Transition(govern.Running, govern.Exited))
	test.ExpectFailure(t, govern.Transition(govern.Exited, govern.Running))
	test.ExpectFailure(t, govern.Transition(govern.Stopped, govern.Idle))
}
