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

package sourcemap

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jetsetilly/dbg65xx/curated"
	"github.com/jetsetilly/dbg65xx/symbols"
	"golang.org/x/sync/errgroup"
)

// Entry is the source information for a single address.
type Entry struct {
	Address uint32
	Module  string

	// the first byte of the assembled instruction
	Opcode uint8

	// the source with the label and comment removed
	Instruction string

	// the line in the module's source file. counted from zero
	SourceLine int

	// the source as echoed in the listing
	Source string

	// the line in the listing file and the listing line itself
	ListingLine int
	Listing     string
}

func (e Entry) String() string {
	return fmt.Sprintf("0x%04x %s:%d %s", e.Address, e.Module, e.SourceLine, e.Instruction)
}

// Diagnostic is a problem found in a listing that did not prevent the source
// map from being built.
type Diagnostic struct {
	Module      string
	ListingLine int
	Detail      string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s.lst:%d: %s", d.Module, d.ListingLine, d.Detail)
}

// SourceMap maps addresses to source lines and source lines to addresses.
type SourceMap struct {
	Basename string

	symbols  *symbols.Table
	modules  []Module
	segments []Segment

	// indexed by address
	entries map[uint32]*Entry

	// indexed by module base name and then by source line
	reverse map[string]map[int]uint32

	diagnostics []Diagnostic
}

// New creates a source map from the files in dir. See the package
// documentation for the files that are required.
func New(dir string, basename string) (*SourceMap, error) {
	sm := &SourceMap{
		Basename: basename,
		entries:  make(map[uint32]*Entry),
		reverse:  make(map[string]map[int]uint32),
	}

	var err error

	sm.symbols, err = symbols.ReadFile(filepath.Join(dir, basename+".sym"))
	if err != nil {
		return nil, err
	}

	lm, err := readMapFile(filepath.Join(dir, basename+".map"))
	if err != nil {
		return nil, err
	}
	sm.modules = lm.modules
	sm.segments = lm.segments

	// read every listing before processing any of them
	listings := make([][]string, len(lm.modules))

	var grp errgroup.Group
	for i, mod := range lm.modules {
		i := i
		filename := filepath.Join(dir, mod.Name+".lst")
		grp.Go(func() error {
			data, err := os.ReadFile(filename)
			if err != nil {
				return &curated.ParseError{Stage: "listing", File: filename, Detail: err.Error()}
			}
			listings[i] = strings.Split(string(data), "\n")
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	// the order listings are processed matters because later entries
	// replace earlier entries at the same address
	for i, mod := range lm.modules {
		lr := listingReader{
			sm:  sm,
			lm:  lm,
			mod: mod,
		}
		lr.read(listings[i])
	}

	sm.buildReverse()

	return sm, nil
}

func (sm *SourceMap) buildReverse() {
	addrs := make([]uint32, 0, len(sm.entries))
	for a := range sm.entries {
		addrs = append(addrs, a)
	}
	sort.Slice(addrs, func(i, j int) bool { return addrs[i] < addrs[j] })

	for _, a := range addrs {
		e := sm.entries[a]
		key := filepath.Base(e.Module)
		rm, ok := sm.reverse[key]
		if !ok {
			rm = make(map[int]uint32)
			sm.reverse[key] = rm
		}
		rm[e.SourceLine] = a
	}
}

// Get returns the source map entry for the address.
func (sm *SourceMap) Get(address uint32) (Entry, bool) {
	if e, ok := sm.entries[address]; ok {
		return *e, true
	}
	return Entry{}, false
}

// GetRev returns the address of the instruction on the source line. The source
// file is matched with the module by its base name with any .s extension
// removed. The line is counted from zero.
func (sm *SourceMap) GetRev(source string, line int) (uint32, bool) {
	rm, ok := sm.reverse[strings.TrimSuffix(filepath.Base(source), ".s")]
	if !ok {
		return 0, false
	}
	a, ok := rm[line]
	return a, ok
}

// GetSymbol returns the named symbol from the symbol table.
func (sm *SourceMap) GetSymbol(name string) (symbols.Symbol, bool) {
	return sm.symbols.Get(name)
}

// GetSymbolAddress returns the address of the named symbol.
func (sm *SourceMap) GetSymbolAddress(name string) (uint32, bool) {
	s, ok := sm.symbols.Get(name)
	return s.Address, ok
}

// SymbolAt returns the symbol that covers the address.
func (sm *SourceMap) SymbolAt(address uint32) (symbols.Symbol, bool) {
	return sm.symbols.ReverseSearch(address)
}

// Symbols returns the symbol table.
func (sm *SourceMap) Symbols() *symbols.Table {
	return sm.symbols
}

// Modules returns the names of the modules in the map file.
func (sm *SourceMap) Modules() []string {
	n := make([]string, len(sm.modules))
	for i, m := range sm.modules {
		n[i] = m.Name
	}
	return n
}

// Segments returns the segments used by the modules.
func (sm *SourceMap) Segments() []Segment {
	return append([]Segment(nil), sm.segments...)
}

// Entries returns every entry in address order.
func (sm *SourceMap) Entries() []Entry {
	l := make([]Entry, 0, len(sm.entries))
	for _, e := range sm.entries {
		l = append(l, *e)
	}
	sort.Slice(l, func(i, j int) bool { return l[i].Address < l[j].Address })
	return l
}

// Diagnostics returns the problems found in the listings.
func (sm *SourceMap) Diagnostics() []Diagnostic {
	return append([]Diagnostic(nil), sm.diagnostics...)
}
