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
	"github.com/jetsetilly/dbg65xx/hardware/cpu"
	"github.com/jetsetilly/dbg65xx/notifications"
)

// StepResult is the outcome of a StepTo().
type StepResult int

// List of valid StepResult values.
const (
	ReachedTarget StepResult = iota
	HitBreakpoint
)

func (r StepResult) String() string {
	switch r {
	case ReachedTarget:
		return "reached target"
	case HitBreakpoint:
		return "hit breakpoint"
	}
	return ""
}

// step ticks the interrupter and executes exactly one instruction. must be
// called with the critical section locked.
func (eng *Engine) step() error {
	if eng.irq != nil && eng.irq.Enabled() {
		if err := eng.irq.Tick(); err != nil {
			return curated.Errorf(StepFailed, err)
		}
	}
	if err := eng.mc.Step(); err != nil {
		return curated.Errorf(StepFailed, err)
	}
	return nil
}

// checkBreak returns true if the instruction at the current address should
// not be executed. must be called with the critical section locked.
func (eng *Engine) checkBreak() (bool, error) {
	if eng.mode != govern.ModeDebugger || eng.breakCheck == nil {
		return false, nil
	}
	hit, err := eng.breakCheck(cpu.Address(eng.mc))
	if err != nil {
		return false, curated.Errorf(BreakFailed, err)
	}
	return hit, nil
}

// Step executes exactly one instruction. A step notice is sent if notify is
// true.
func (eng *Engine) Step(notify bool) error {
	eng.crit.Lock()
	defer eng.crit.Unlock()

	if err := eng.ready("step"); err != nil {
		return err
	}

	if err := eng.step(); err != nil {
		eng.stop(govern.StopException)
		eng.runErr = err
		return err
	}

	eng.stop(govern.StopStep)
	if notify {
		eng.sendNotice(notifications.NotifyStoppedOnStep)
	}

	return nil
}

// StepTo executes instructions until the next instruction is at the target
// address or until the breakpoint check returns true.
//
// The instruction at the current address is always executed, even if there is
// a breakpoint at that address. The breakpoint check is not made when the
// target has been reached.
//
// A step notice is sent when the target is reached. A breakpoint notice is
// sent if a breakpoint is hit first.
func (eng *Engine) StepTo(target uint32) (StepResult, error) {
	eng.crit.Lock()
	defer eng.crit.Unlock()

	if err := eng.ready("step"); err != nil {
		return ReachedTarget, err
	}

	fail := func(err error) (StepResult, error) {
		eng.stop(govern.StopException)
		eng.runErr = err
		return ReachedTarget, err
	}

	// take a single step to get over any breakpoint
	if err := eng.step(); err != nil {
		return fail(err)
	}

	count := 1
	for cpu.Address(eng.mc) != target {
		hit, err := eng.checkBreak()
		if err != nil {
			return fail(err)
		}
		if hit {
			eng.stop(govern.StopBreakpoint)
			eng.sendNotice(notifications.NotifyStoppedOnBreakpoint)
			return HitBreakpoint, nil
		}

		if eng.prefs.StepToLimit > 0 && count >= eng.prefs.StepToLimit {
			return fail(curated.Errorf(StepLimit, target, count))
		}

		if err := eng.step(); err != nil {
			return fail(err)
		}
		count++
	}

	eng.stop(govern.StopStep)
	eng.sendNotice(notifications.NotifyStoppedOnStep)

	return ReachedTarget, nil
}
