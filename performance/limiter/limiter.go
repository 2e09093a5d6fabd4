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

// Package limiter provides a cancellable schedule for running a task at a
// fixed interval.
//
// A new Schedule can be created with:
//
//	sched := limiter.NewSchedule(10 * time.Millisecond)
//
// The task is started with Start() and will be called once every interval
// until it returns false or until Stop() is called:
//
//	sched.Start(func() bool {
//		return runBatch()
//	})
//
// Stop() waits for any call to the task that is in progress to complete. Once
// Stop() has returned the task will not be called again.
package limiter

import (
	"sync"
	"time"
)

// Schedule runs a task at a fixed interval.
type Schedule struct {
	crit sync.Mutex

	interval time.Duration

	// stop is closed to end the current run. done is closed by the run's
	// goroutine once the task will not be called again
	stop chan struct{}
	done chan struct{}
}

// NewSchedule is the preferred method of initialisation for the Schedule type.
// An interval of zero or less is treated as one millisecond.
func NewSchedule(interval time.Duration) *Schedule {
	if interval <= 0 {
		interval = time.Millisecond
	}
	return &Schedule{interval: interval}
}

// Interval returns the interval between calls to the task.
func (s *Schedule) Interval() time.Duration {
	return s.interval
}

// Start calling the task every interval. The first call happens after one
// interval has passed. If the schedule is already running it is stopped first.
//
// The task returns false to end the schedule. The task must not call Stop().
func (s *Schedule) Start(task func() bool) {
	s.Stop()

	s.crit.Lock()
	stop := make(chan struct{})
	done := make(chan struct{})
	s.stop = stop
	s.done = done
	s.crit.Unlock()

	go func() {
		defer close(done)

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				// a stop request takes priority over a tick that arrived at
				// the same time
				select {
				case <-stop:
					return
				default:
				}

				if !task() {
					return
				}
			}
		}
	}()
}

// Stop the schedule and wait for any call to the task that is in progress to
// complete. It is safe to call Stop() on a schedule that is not running.
func (s *Schedule) Stop() {
	s.crit.Lock()
	stop := s.stop
	done := s.done
	s.stop = nil
	s.done = nil
	s.crit.Unlock()

	if stop == nil {
		return
	}

	close(stop)
	<-done
}

// Running returns true if the task is still being called.
func (s *Schedule) Running() bool {
	s.crit.Lock()
	done := s.done
	s.crit.Unlock()

	if done == nil {
		return false
	}

	select {
	case <-done:
		return false
	default:
		return true
	}
}
