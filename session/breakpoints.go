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
	"path/filepath"
	"sort"
	"sync"

	"github.com/jetsetilly/dbg65xx/logger"
)

// Breakpoint is a request to stop before executing the instruction generated
// by a source line.
type Breakpoint struct {
	ID   int
	File string
	Line int

	// the address of the instruction. only meaningful if Verified is true
	Address uint32

	// whether the line generated an instruction. unverified breakpoints never
	// cause the program to stop
	Verified bool
}

// Breakpoints is the set of breakpoints for a session. Breakpoints are set per
// source file. Check() is suitable for use as a debugger.BreakCheck.
type Breakpoints struct {
	crit sync.Mutex

	mapping Mapping

	// breakpoints keyed by the base name of the source file
	files map[string][]Breakpoint

	// the number of verified breakpoints at each address
	addresses map[uint32]int

	nextID int
}

// NewBreakpoints is the preferred method of initialisation for the
// Breakpoints type. The mapping can be nil, in which case no breakpoint will
// be verified.
func NewBreakpoints(mapping Mapping) *Breakpoints {
	return &Breakpoints{
		mapping:   mapping,
		files:     make(map[string][]Breakpoint),
		addresses: make(map[uint32]int),
		nextID:    1,
	}
}

// Set replaces the breakpoints for the source file. The returned breakpoints
// are in the same order as the lines.
func (bp *Breakpoints) Set(file string, lines []int) []Breakpoint {
	bp.crit.Lock()
	defer bp.crit.Unlock()

	key := filepath.Base(file)
	bp.remove(key)

	set := make([]Breakpoint, 0, len(lines))
	for _, ln := range lines {
		b := Breakpoint{
			ID:   bp.nextID,
			File: file,
			Line: ln,
		}
		bp.nextID++

		if bp.mapping != nil {
			b.Address, b.Verified = bp.mapping.LineToAddress(file, ln)
		}

		if b.Verified {
			bp.addresses[b.Address]++
		} else {
			logger.Logf(logger.Allow, "session", "no code for breakpoint at %s:%d", key, ln)
		}

		set = append(set, b)
	}

	if len(set) > 0 {
		bp.files[key] = set
	}

	r := make([]Breakpoint, len(set))
	copy(r, set)
	return r
}

// remove must be called with the critical section locked.
func (bp *Breakpoints) remove(key string) {
	for _, b := range bp.files[key] {
		if !b.Verified {
			continue // for loop
		}
		bp.addresses[b.Address]--
		if bp.addresses[b.Address] <= 0 {
			delete(bp.addresses, b.Address)
		}
	}
	delete(bp.files, key)
}

// Clear removes all breakpoints.
func (bp *Breakpoints) Clear() {
	bp.crit.Lock()
	defer bp.crit.Unlock()
	bp.files = make(map[string][]Breakpoint)
	bp.addresses = make(map[uint32]int)
}

// List returns all breakpoints ordered by ID.
func (bp *Breakpoints) List() []Breakpoint {
	bp.crit.Lock()
	defer bp.crit.Unlock()

	var l []Breakpoint
	for _, set := range bp.files {
		l = append(l, set...)
	}
	sort.Slice(l, func(i, j int) bool {
		return l[i].ID < l[j].ID
	})
	return l
}

// Check returns true if there is a verified breakpoint at the address.
func (bp *Breakpoints) Check(address uint32) (bool, error) {
	bp.crit.Lock()
	defer bp.crit.Unlock()
	return bp.addresses[address] > 0, nil
}
