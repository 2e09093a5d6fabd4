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

package session

import (
	"io"
	"os"

	"github.com/jetsetilly/dbg65xx/config"
	"github.com/jetsetilly/dbg65xx/curated"
	"github.com/jetsetilly/dbg65xx/debugger"
	"github.com/jetsetilly/dbg65xx/hardware/cpu"
	"github.com/jetsetilly/dbg65xx/logger"
	"github.com/jetsetilly/dbg65xx/notifications"
)

// Sentinal error patterns.
const (
	LaunchFailed = "session: %v"
	NoMapping    = "session: no source mapping"
	NoCode       = "session: no code for %s:%d"
)

// Session is a single run of a program.
type Session struct {
	cfg         config.Launch
	mapping     Mapping
	breakpoints *Breakpoints
	engine      *debugger.Engine

	// files opened for the devices. closed by End()
	files []io.Closer
}

// Launch loads the program and the source mapping and starts the engine. The
// mapping is not loaded if the configuration says the program should run
// without debugging.
//
// Notices from the engine are queued on the supplied queue. The caller is
// responsible for dispatching them. The queue can be nil.
func Launch(cfg config.Launch, factory cpu.Factory, queue *notifications.Queue) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	image, err := os.ReadFile(cfg.Program)
	if err != nil {
		return nil, curated.Errorf(LaunchFailed, err)
	}

	ses := &Session{cfg: cfg}

	if !cfg.NoDebug {
		ses.mapping, err = LoadMapping(cfg)
		if err != nil {
			return nil, curated.Errorf(LaunchFailed, err)
		}
	}

	ses.breakpoints = NewBreakpoints(ses.mapping)

	prefs := debugger.DefaultPreferences()
	prefs.Interval = cfg.RunLoop.Interval
	if cfg.RunLoop.Batch > 0 {
		prefs.Batch = cfg.RunLoop.Batch
	}

	devices := debugger.IOConfig{
		Putc: cfg.IO.Putc,
		ACIA: cfg.IO.ACIA,
	}

	if cfg.IO.Input != "" {
		f, err := os.Open(cfg.IO.Input)
		if err != nil {
			return nil, curated.Errorf(LaunchFailed, err)
		}
		devices.Input = f
		ses.files = append(ses.files, f)
	}

	if cfg.IO.Output != "" {
		f, err := os.Create(cfg.IO.Output)
		if err != nil {
			ses.closeFiles()
			return nil, curated.Errorf(LaunchFailed, err)
		}
		devices.Output = f
		ses.files = append(ses.files, f)
	}

	// a nil queue must not become a non-nil interface
	var notify notifications.Notify
	if queue != nil {
		notify = queue
	}

	ses.engine = debugger.NewEngine(factory, notify, prefs)
	ses.engine.SetBreakCheck(ses.breakpoints.Check)

	logger.Logf(logger.Allow, "session", "launching %s (mapping: %s, debug: %v)", cfg.Program, cfg.Mapping, !cfg.NoDebug)

	err = ses.engine.Start(image, devices, cfg.StopOnEntry, !cfg.NoDebug)
	if err != nil {
		ses.closeFiles()
		return nil, curated.Errorf(LaunchFailed, err)
	}

	return ses, nil
}

// Engine returns the execution engine.
func (ses *Session) Engine() *debugger.Engine {
	return ses.engine
}

// Mapping returns the source mapping. Returns nil if the session is not
// debugging.
func (ses *Session) Mapping() Mapping {
	return ses.mapping
}

// Breakpoints returns the breakpoint set.
func (ses *Session) Breakpoints() *Breakpoints {
	return ses.breakpoints
}

// SetBreakpoints replaces the breakpoints for a source file.
func (ses *Session) SetBreakpoints(file string, lines []int) []Breakpoint {
	return ses.breakpoints.Set(file, lines)
}

// Location returns the source line of the next instruction to be executed.
func (ses *Session) Location() (Location, bool) {
	if ses.mapping == nil {
		return Location{}, false
	}
	return ses.mapping.AddressToLine(ses.engine.Address())
}

// RunToLine runs the program until it reaches the first instruction generated
// by the source line. Breakpoints are honoured along the way.
func (ses *Session) RunToLine(file string, line int) (debugger.StepResult, error) {
	if ses.mapping == nil {
		return debugger.ReachedTarget, curated.Errorf(NoMapping)
	}
	address, ok := ses.mapping.LineToAddress(file, line)
	if !ok {
		return debugger.ReachedTarget, curated.Errorf(NoCode, file, line)
	}
	return ses.engine.StepTo(address)
}

// End stops the engine and releases any resources held by the session.
func (ses *Session) End() {
	ses.engine.End()
	ses.closeFiles()
}

func (ses *Session) closeFiles() {
	for _, f := range ses.files {
		if err := f.Close(); err != nil {
			logger.Logf(logger.Allow, "session", "%v", err)
		}
	}
	ses.files = nil
}
