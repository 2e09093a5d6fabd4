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

package limiter_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/jetsetilly/dbg65xx/performance/limiter"
	"github.com/jetsetilly/dbg65xx/test"
)

func TestScheduleEndsItself(t *testing.T) {
	sched := limiter.NewSchedule(time.Millisecond)

	var count atomic.Int32
	done := make(chan struct{})
	sched.Start(func() bool {
		if count.Add(1) == 3 {
			close(done)
			return false
		}
		return true
	})

	<-done
	sched.Stop()
	test.ExpectEquality(t, count.Load(), int32(3))
	test.ExpectFailure(t, sched.Running())
}

func TestScheduleStop(t *testing.T) {
	sched := limiter.NewSchedule(time.Millisecond)

	var count atomic.Int32
	started := make(chan struct{}, 1)
	sched.Start(func() bool {
		count.Add(1)
		select {
		case started <- struct{}{}:
		default:
		}
		return true
	})

	<-started
	test.ExpectSuccess(t, sched.Running())

	sched.Stop()
	test.ExpectFailure(t, sched.Running())

	// no more calls once stop has returned
	n := count.Load()
	time.Sleep(10 * time.Millisecond)
	test.ExpectEquality(t, count.Load(), n)

	// stopping again is fine
	sched.Stop()
}

func TestScheduleRestart(t *testing.T) {
	sched := limiter.NewSchedule(0)
	test.ExpectEquality(t, sched.Interval(), time.Millisecond)

	first := make(chan struct{}, 1)
	sched.Start(func() bool {
		select {
		case first <- struct{}{}:
		default:
		}
		return true
	})
	<-first

	second := make(chan struct{})
	sched.Start(func() bool {
		close(second)
		return false
	})
	<-second
	sched.Stop()
}
