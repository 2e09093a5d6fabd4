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

package session_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/dbg65xx/config"
	"github.com/jetsetilly/dbg65xx/curated"
	"github.com/jetsetilly/dbg65xx/debugger"
	"github.com/jetsetilly/dbg65xx/debugger/govern"
	"github.com/jetsetilly/dbg65xx/notifications"
	"github.com/jetsetilly/dbg65xx/session"
	"github.com/jetsetilly/dbg65xx/test"
)

func TestListingMapping(t *testing.T) {
	cfg := writeFixture(t)
	m, err := session.LoadMapping(cfg)
	test.DemandSuccess(t, err)

	_, ok := m.(*session.ListingMapping)
	test.DemandSuccess(t, ok)

	// the segment directive generates no code
	_, ok = m.LineToAddress("main.s", 1)
	test.ExpectFailure(t, ok)
	_, ok = m.LineToAddress("main.s", 0)
	test.ExpectFailure(t, ok)

	a, ok := m.LineToAddress("src/main.s", 2)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, a, uint32(0x8000))

	a, ok = m.LineToAddress("main.s", 6)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, a, uint32(0x800a))

	loc, ok := m.AddressToLine(0x8005)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, loc, session.Location{File: "main.s", Line: 4})

	// not the start of an instruction
	_, ok = m.AddressToLine(0x8001)
	test.ExpectFailure(t, ok)
}

func TestDbgInfoMapping(t *testing.T) {
	cfg := writeFixture(t)
	cfg.Mapping = config.MappingDbgInfo
	m, err := session.LoadMapping(cfg)
	test.DemandSuccess(t, err)

	dm, ok := m.(*session.DbgInfoMapping)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, dm.Database().HeaderSize, cfg.HeaderSize)

	_, ok = m.LineToAddress("main.s", 1)
	test.ExpectFailure(t, ok)

	a, ok := m.LineToAddress("main.s", 3)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, a, uint32(0x8002))

	// every byte of the instruction maps to the line
	loc, ok := m.AddressToLine(0x8001)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, loc, session.Location{File: "main.s", Line: 2})

	_, ok = m.AddressToLine(0x9000)
	test.ExpectFailure(t, ok)
}

func TestLoadMappingErrors(t *testing.T) {
	cfg := writeFixture(t)
	cfg.Listing.Basename = "missing"
	_, err := session.LoadMapping(cfg)
	pe, ok := curated.AsParseError(err)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, pe.Stage, "symbols")

	cfg.Mapping = "labels"
	_, err = session.LoadMapping(cfg)
	test.ExpectSuccess(t, curated.Is(err, config.UnknownMapping))
}

func TestBreakpoints(t *testing.T) {
	cfg := writeFixture(t)
	m, err := session.LoadMapping(cfg)
	test.DemandSuccess(t, err)

	bps := session.NewBreakpoints(m)
	set := bps.Set("src/main.s", []int{1, 3, 3})
	test.DemandEquality(t, len(set), 3)
	test.ExpectEquality(t, set[0].ID, 1)
	test.ExpectFailure(t, set[0].Verified)
	test.ExpectSuccess(t, set[1].Verified)
	test.ExpectEquality(t, set[1].Address, uint32(0x8002))
	test.ExpectEquality(t, set[2].ID, 3)

	hit, err := bps.Check(0x8002)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, hit)

	// replacing the breakpoints for a file removes the earlier ones
	set = bps.Set("main.s", []int{4})
	test.ExpectEquality(t, set[0].ID, 4)
	hit, _ = bps.Check(0x8002)
	test.ExpectFailure(t, hit)
	hit, _ = bps.Check(0x8005)
	test.ExpectSuccess(t, hit)
	test.ExpectEquality(t, len(bps.List()), 1)

	bps.Set("main.s", nil)
	hit, _ = bps.Check(0x8005)
	test.ExpectFailure(t, hit)
	test.ExpectEquality(t, len(bps.List()), 0)

	// without a mapping nothing is verified
	bps = session.NewBreakpoints(nil)
	set = bps.Set("main.s", []int{2})
	test.ExpectFailure(t, set[0].Verified)
	hit, _ = bps.Check(0x8000)
	test.ExpectFailure(t, hit)
}

// notices returns the notices delivered by the next dispatch.
func notices(q *notifications.Queue) string {
	var s []string
	q.SubscribeAll(func(n notifications.Notice) {
		s = append(s, string(n))
	})
	q.Dispatch()
	return strings.Join(s, " ")
}

func TestStepToBreakpoint(t *testing.T) {
	for _, mapping := range []string{config.MappingListing, config.MappingDbgInfo} {
		cfg := writeFixture(t)
		cfg.Mapping = mapping

		q := notifications.NewQueue()
		ses, err := session.Launch(cfg, newMini, q)
		test.DemandSuccess(t, err, mapping)
		test.ExpectEquality(t, notices(q), "stoppedOnEntry", mapping)

		loc, ok := ses.Location()
		test.ExpectSuccess(t, ok, mapping)
		test.ExpectEquality(t, loc.Line, 2, mapping)

		// breakpoint on the second instruction. running to the third
		// instruction stops at the breakpoint without executing it
		ses.SetBreakpoints("main.s", []int{3})
		res, err := ses.RunToLine("main.s", 4)
		test.ExpectSuccess(t, err, mapping)
		test.ExpectEquality(t, res, debugger.HitBreakpoint, mapping)
		test.ExpectEquality(t, ses.Engine().Address(), uint32(0x8002), mapping)
		test.ExpectEquality(t, notices(q), "stoppedOnBreakpoint", mapping)

		loc, _ = ses.Location()
		test.ExpectEquality(t, loc.Line, 3, mapping)

		res, err = ses.RunToLine("main.s", 4)
		test.ExpectSuccess(t, err, mapping)
		test.ExpectEquality(t, res, debugger.ReachedTarget, mapping)
		test.ExpectEquality(t, ses.Engine().Address(), uint32(0x8005), mapping)
		test.ExpectEquality(t, notices(q), "stoppedOnStep", mapping)

		_, err = ses.RunToLine("main.s", 1)
		test.ExpectSuccess(t, curated.Is(err, session.NoCode), mapping)

		ses.End()
	}
}

func TestContinue(t *testing.T) {
	cfg := writeFixture(t)
	q := notifications.NewQueue()
	ses, err := session.Launch(cfg, newMini, q)
	test.DemandSuccess(t, err)
	notices(q)

	ses.SetBreakpoints("main.s", []int{6})
	test.DemandSuccess(t, ses.Engine().Continue())

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if s, _ := ses.Engine().State(); s == govern.Stopped {
			break // for loop
		}
		time.Sleep(time.Millisecond)
	}

	_, r := ses.Engine().State()
	test.ExpectEquality(t, r, govern.StopBreakpoint)
	loc, _ := ses.Location()
	test.ExpectEquality(t, loc, session.Location{File: "main.s", Line: 6})
	test.ExpectEquality(t, notices(q), "stoppedOnBreakpoint")

	ses.End()
	test.ExpectEquality(t, notices(q), "exited")

	output, err := os.ReadFile(cfg.IO.Output)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(output), "H\n")
}

func TestNoDebug(t *testing.T) {
	cfg := writeFixture(t)
	cfg.NoDebug = true

	// mapping files are not needed
	cfg.Listing.Basename = ""
	test.DemandSuccess(t, os.Remove(filepath.Join(cfg.Listing.Dir, "hello.map")))

	q := notifications.NewQueue()
	ses, err := session.Launch(cfg, newMini, q)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ses.Engine().Mode(), govern.ModeRun)

	s, _ := ses.Engine().State()
	test.ExpectEquality(t, s, govern.Running)

	_, ok := ses.Location()
	test.ExpectFailure(t, ok)

	// breakpoints are not verified and never stop the program
	set := ses.SetBreakpoints("main.s", []int{6})
	test.ExpectFailure(t, set[0].Verified)

	_, err = ses.RunToLine("main.s", 6)
	test.ExpectSuccess(t, curated.Is(err, session.NoMapping))

	ses.Engine().Pause()
	ses.End()
	test.ExpectEquality(t, notices(q), "stoppedOnPause exited")
}

func TestLaunchErrors(t *testing.T) {
	cfg := writeFixture(t)
	cfg.Program = ""
	_, err := session.Launch(cfg, newMini, notifications.NewQueue())
	test.ExpectSuccess(t, curated.Is(err, config.NoProgram))

	cfg = writeFixture(t)
	cfg.Program = filepath.Join(cfg.Listing.Dir, "missing.bin")
	_, err = session.Launch(cfg, newMini, notifications.NewQueue())
	test.ExpectSuccess(t, curated.Is(err, session.LaunchFailed))

	// a debugging session cannot start without the mapping
	cfg = writeFixture(t)
	test.DemandSuccess(t, os.Remove(filepath.Join(cfg.Listing.Dir, "main.lst")))
	_, err = session.Launch(cfg, newMini, notifications.NewQueue())
	test.ExpectSuccess(t, curated.Is(err, session.LaunchFailed))
	pe, ok := curated.AsParseError(err)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, pe.Stage, "listing")
}
