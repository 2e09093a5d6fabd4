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
	"io"
	"os"
	"sync"

	"github.com/jetsetilly/dbg65xx/curated"
	"github.com/jetsetilly/dbg65xx/debugger/govern"
	"github.com/jetsetilly/dbg65xx/hardware/acia"
	"github.com/jetsetilly/dbg65xx/hardware/console"
	"github.com/jetsetilly/dbg65xx/hardware/cpu"
	"github.com/jetsetilly/dbg65xx/hardware/memory"
	"github.com/jetsetilly/dbg65xx/logger"
	"github.com/jetsetilly/dbg65xx/notifications"
	"github.com/jetsetilly/dbg65xx/performance/limiter"
)

// BreakCheck is called before every instruction when running in debug mode.
// The address is the address of the instruction about to be executed. The
// engine stops if the function returns true.
//
// The function must not call any of the engine's functions.
type BreakCheck func(address uint32) (bool, error)

// Interrupter is a device that must be ticked before every instruction. The
// ACIA is an Interrupter.
type Interrupter interface {
	Enabled() bool
	Tick() error
}

// IOConfig describes the devices attached to memory.
type IOConfig struct {
	// address of the console output device. zero means the default address.
	// the console device is not attached if an ACIA is used
	Putc uint32

	// base address of the ACIA. zero means there is no ACIA
	ACIA uint32

	// received by the ACIA. can be nil
	Input io.Reader

	// destination of console output. nil means standard output
	Output io.Writer
}

// Engine is the execution engine.
type Engine struct {
	crit sync.Mutex

	prefs   Preferences
	factory cpu.Factory
	notify  notifications.Notify

	mem *memory.Observable
	mc  cpu.CPU
	irq Interrupter
	con *console.Console

	breakCheck BreakCheck

	mode   govern.Mode
	state  govern.State
	reason govern.StopReason

	// the number of instructions in the current batch
	batch int

	// the first tick after a Continue() steps over the instruction at the
	// current address without checking for a breakpoint
	clearing bool

	sched *limiter.Schedule

	// the error that caused the most recent StopException
	runErr error
}

// NewEngine is the preferred method of initialisation for the Engine type.
func NewEngine(factory cpu.Factory, notify notifications.Notify, prefs Preferences) *Engine {
	prefs.normalise()
	return &Engine{
		prefs:   prefs,
		factory: factory,
		notify:  notify,
		state:   govern.Idle,
		batch:   prefs.Batch,
		sched:   limiter.NewSchedule(prefs.Interval),
	}
}

// SetBreakCheck sets the function that decides whether to stop before an
// instruction. A nil function means there are no breakpoints.
func (eng *Engine) SetBreakCheck(check BreakCheck) {
	eng.crit.Lock()
	defer eng.crit.Unlock()
	eng.breakCheck = check
}

// Start loads the image into memory and creates the CPU. If debug is false the
// program runs immediately and breakpoints are never checked. If debug is true
// the engine stops on entry if stopOnEntry is true, otherwise it runs.
func (eng *Engine) Start(image []uint8, devices IOConfig, stopOnEntry bool, debug bool) error {
	eng.crit.Lock()

	if eng.state != govern.Idle {
		eng.crit.Unlock()
		return curated.Errorf(AlreadyStarted)
	}

	size := eng.prefs.MemorySize
	if len(image) > size {
		size = len(image)
	}
	eng.mem = memory.NewObservable(size)
	if err := eng.mem.Load(image, 0); err != nil {
		eng.crit.Unlock()
		return err
	}

	eng.mc = eng.factory(eng.mem)

	output := devices.Output
	if output == nil {
		output = os.Stdout
	}
	eng.con = console.NewConsole(output)

	if devices.ACIA != 0 {
		dev := acia.NewACIA(devices.ACIA, devices.Input, eng.con)
		dev.Attach(eng.mem)
		if irq, ok := eng.mc.(cpu.IRQ); ok {
			dev.SetIRQ(irq)
		} else {
			logger.Log(logger.Allow, "debugger", "CPU does not support interrupts. ACIA interrupts will be ignored")
		}
		eng.irq = dev
	} else {
		putc := devices.Putc
		if putc == 0 {
			putc = console.DefaultAddress
		}
		eng.con.Attach(eng.mem, putc)
	}

	if debug {
		eng.mode = govern.ModeDebugger
	} else {
		eng.mode = govern.ModeRun
	}

	if debug && stopOnEntry {
		eng.stop(govern.StopEntry)
		eng.sendNotice(notifications.NotifyStoppedOnEntry)
		eng.crit.Unlock()
		return nil
	}

	// the engine is stopped only for as long as it takes to start running
	eng.stop(govern.StopEntry)
	eng.crit.Unlock()

	return eng.Continue()
}

// End stops the engine permanently. Any partial line of console output is
// flushed.
func (eng *Engine) End() {
	eng.crit.Lock()
	if eng.state == govern.Exited {
		eng.crit.Unlock()
		return
	}
	eng.state = govern.Exited
	eng.reason = govern.NoReason
	eng.crit.Unlock()

	eng.sched.Stop()

	if eng.con != nil {
		eng.con.Close()
	}

	eng.sendNotice(notifications.NotifyExited)
}

// State returns the current state of the engine and the reason for the
// engine being stopped.
func (eng *Engine) State() (govern.State, govern.StopReason) {
	eng.crit.Lock()
	defer eng.crit.Unlock()
	return eng.state, eng.reason
}

// Mode returns the mode the engine was started in.
func (eng *Engine) Mode() govern.Mode {
	eng.crit.Lock()
	defer eng.crit.Unlock()
	return eng.mode
}

// Address returns the address of the next instruction to be executed.
func (eng *Engine) Address() uint32 {
	eng.crit.Lock()
	defer eng.crit.Unlock()
	if eng.mc == nil {
		return 0
	}
	return cpu.Address(eng.mc)
}

// BatchSize returns the size of the current or most recent batch.
func (eng *Engine) BatchSize() int {
	eng.crit.Lock()
	defer eng.crit.Unlock()
	return eng.batch
}

// Err returns the error that caused the most recent exception stop.
func (eng *Engine) Err() error {
	eng.crit.Lock()
	defer eng.crit.Unlock()
	return eng.runErr
}

// ReadMemory returns a view of memory. It is an error to read beyond the end
// of memory. The returned slice is not a copy and should not be kept while the
// engine is running.
func (eng *Engine) ReadMemory(address uint32, length int) ([]uint8, error) {
	eng.crit.Lock()
	defer eng.crit.Unlock()
	if eng.mem == nil {
		return nil, curated.Errorf(NotStarted)
	}
	return eng.mem.View(address, length)
}

// Console returns any console output that has not yet been flushed.
func (eng *Engine) Console() string {
	eng.crit.Lock()
	defer eng.crit.Unlock()
	if eng.con == nil {
		return ""
	}
	return eng.con.Pending()
}

// stop must be called with the critical section locked.
func (eng *Engine) stop(reason govern.StopReason) {
	eng.state = govern.Stopped
	eng.reason = reason
}

// fault stops the engine because of an error. must be called with the
// critical section locked.
func (eng *Engine) fault(err error) {
	eng.stop(govern.StopException)
	eng.runErr = err
	logger.Logf(logger.Allow, "debugger", "%v", err)
	eng.sendNotice(notifications.NotifyStoppedOnException)
}

func (eng *Engine) sendNotice(notice notifications.Notice) {
	if eng.notify == nil {
		return
	}
	if err := eng.notify.Notify(notice); err != nil {
		logger.Logf(logger.Allow, "debugger", "notify %s: %v", notice, err)
	}
}

// ready checks that the engine can execute instructions on behalf of the
// named operation. must be called with the critical section locked.
func (eng *Engine) ready(operation string) error {
	switch eng.state {
	case govern.Idle:
		return curated.Errorf(NotStarted)
	case govern.Exited:
		return curated.Errorf(HasExited)
	case govern.Running:
		return curated.Errorf(IsRunning, operation)
	}
	return nil
}
