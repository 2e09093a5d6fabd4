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

package debugger

import (
	"github.com/jetsetilly/dbg65xx/curated"
	"github.com/jetsetilly/dbg65xx/debugger/govern"
	"github.com/jetsetilly/dbg65xx/notifications"
)

// Continue runs the program until a breakpoint is hit, until Pause() is
// called or until an error occurs. It returns immediately.
func (eng *Engine) Continue() error {
	eng.crit.Lock()

	switch eng.state {
	case govern.Idle:
		eng.crit.Unlock()
		return curated.Errorf(NotStarted)
	case govern.Exited:
		eng.crit.Unlock()
		return curated.Errorf(HasExited)
	case govern.Running:
		eng.crit.Unlock()
		return nil
	}

	eng.state = govern.Running
	eng.reason = govern.NoReason
	eng.clearing = true
	eng.runErr = nil
	eng.crit.Unlock()

	eng.sched.Start(eng.tick)

	return nil
}

// Pause stops a running program. The pause notice is sent whether or not the
// program was running.
func (eng *Engine) Pause() {
	eng.crit.Lock()
	if eng.state == govern.Running {
		eng.stop(govern.StopPause)
	}
	eng.crit.Unlock()

	// the critical section must be unlocked before stopping the schedule
	// because the tick function may be waiting for it
	eng.sched.Stop()

	eng.sendNotice(notifications.NotifyStoppedOnPause)
}

// tick runs a single batch of instructions. returns false if the engine should
// stop running.
func (eng *Engine) tick() bool {
	eng.crit.Lock()
	defer eng.crit.Unlock()

	if eng.state != govern.Running {
		return false
	}

	if eng.mc.Waiting() {
		eng.batch = BatchProbe
	} else {
		eng.batch = eng.prefs.Batch
	}

	if eng.clearing {
		eng.clearing = false
		if err := eng.step(); err != nil {
			eng.fault(err)
			return false
		}
	}

	for count := 0; count < eng.batch; count++ {
		hit, err := eng.checkBreak()
		if err != nil {
			eng.fault(err)
			return false
		}
		if hit {
			eng.stop(govern.StopBreakpoint)
			eng.sendNotice(notifications.NotifyStoppedOnBreakpoint)
			return false
		}

		// reduce the batch size if the program has started waiting for
		// input during a large batch
		if eng.batch == eng.prefs.Batch && eng.mc.Waiting() {
			eng.batch = eng.prefs.waitingBatch()
		}

		if err := eng.step(); err != nil {
			eng.fault(err)
			return false
		}
	}

	return true
}
