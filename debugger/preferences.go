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

import "time"

// batch sizes for the run loop.
const (
	// instructions per tick when the program is busy
	BatchLarge = 100000

	// instructions per tick once the program has started waiting for input
	BatchWaiting = 1000

	// instructions per tick when the program was already waiting for input at
	// the start of the tick. this is the smallest batch size
	BatchProbe = 20
)

// Preferences for the engine.
type Preferences struct {
	// time between batches when running
	Interval time.Duration

	// the size of the largest batch
	Batch int

	// the minimum amount of memory. memory will be larger if the program
	// image is larger
	MemorySize int

	// the maximum number of instructions executed by StepTo(). zero means
	// there is no limit
	StepToLimit int
}

// DefaultPreferences returns the default preferences.
func DefaultPreferences() Preferences {
	return Preferences{
		Interval:    10 * time.Millisecond,
		Batch:       BatchLarge,
		MemorySize:  0x10000,
		StepToLimit: 10000000,
	}
}

// normalise makes sure the preferences are usable.
func (p *Preferences) normalise() {
	if p.Interval <= 0 {
		p.Interval = DefaultPreferences().Interval
	}
	if p.Batch < BatchProbe {
		p.Batch = BatchProbe
	}
	if p.MemorySize < 0 {
		p.MemorySize = 0
	}
}

// waitingBatch is the batch size used when the program starts waiting for
// input during a large batch.
func (p Preferences) waitingBatch() int {
	if p.Batch < BatchWaiting {
		return p.Batch
	}
	return BatchWaiting
}
