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

// Package debugger implements the execution engine. The engine owns the
// step/run/pause state machine and drives a CPU that is supplied by the
// caller through a cpu.Factory.
//
// Initialisation of the engine is done with the NewEngine() function:
//
//	eng := debugger.NewEngine(factory, queue, debugger.DefaultPreferences())
//
// The queue argument receives lifecycle notices. It will usually be an instance
// of notifications.Queue.
//
// Before the engine is started the caller should supply the breakpoint check
// with SetBreakCheck(). The check is called before every instruction while the
// engine is running in debug mode:
//
//	eng.SetBreakCheck(func(address uint32) (bool, error) {
//		return address == target, nil
//	})
//
//	err := eng.Start(image, debugger.IOConfig{}, stopOnEntry, true)
//
// Once started the engine is controlled with Step(), StepTo(), Continue() and
// Pause(). End() stops the engine permanently.
//
// Continue() runs the program in batches of instructions. A batch is run every
// interval (10ms by default) by a background goroutine. All engine state is
// guarded by a single mutex so calls from other goroutines are safe and take
// effect between batches.
//
// If the CPU reports that the program is waiting for input, the batch size is
// reduced to avoid running the idle loop needlessly.
package debugger
