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

package symbols

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// DefaultSize is the size given to a symbol when it is first added to the
// table.
const DefaultSize = 1

// Symbol is a single entry in the symbols table.
type Symbol struct {
	Name    string
	Address uint32
	Size    int

	// file:line of the symbol's definition. empty if the symbol was only
	// ever read from a label file
	Source string
}

func (s Symbol) String() string {
	if s.Source == "" {
		return fmt.Sprintf("0x%04x %s (%d)", s.Address, s.Name, s.Size)
	}
	return fmt.Sprintf("0x%04x %s (%d) %s", s.Address, s.Name, s.Size, s.Source)
}

// before returns true if a sorts before b. symbols are ordered by address and
// then by name.
func before(a *Symbol, b *Symbol) bool {
	if a.Address == b.Address {
		return a.Name < b.Name
	}
	return a.Address < b.Address
}

// contains returns true if the address is in the range of the symbol.
func (s Symbol) contains(address uint32) bool {
	return address >= s.Address && address < s.Address+uint32(s.Size)
}

// Table maps symbol names to addresses. It also keeps track of the widest
// symbol in the Table. It is safe to use the Table from more than one
// goroutine.
type Table struct {
	crit sync.Mutex

	entries map[string]*Symbol

	// index of entries sorted by address and then by name
	idx []*Symbol

	// the longest symbol name in the table
	maxWidth int
}

// NewTable is the preferred method of initialisation for the Table type.
func NewTable() *Table {
	return &Table{
		entries: make(map[string]*Symbol),
	}
}

func (t *Table) String() string {
	t.crit.Lock()
	defer t.crit.Unlock()

	s := strings.Builder{}
	for _, e := range t.idx {
		s.WriteString(fmt.Sprintf("0x%04x -> %-*s %d\n", e.Address, t.maxWidth, e.Name, e.Size))
	}
	return s.String()
}

// Add a symbol to the table. If the symbol already exists then its address is
// replaced and its size is reset to the default.
func (t *Table) Add(name string, address uint32) {
	t.crit.Lock()
	defer t.crit.Unlock()

	if e, ok := t.entries[name]; ok {
		if e.Address != address {
			t.remove(e)
			e.Address = address
			t.insert(e)
		}
		e.Size = DefaultSize
		return
	}

	e := t.create(name, address)
	t.insert(e)
}

// create a new entry without adding it to the index.
func (t *Table) create(name string, address uint32) *Symbol {
	if len(name) > t.maxWidth {
		t.maxWidth = len(name)
	}
	e := &Symbol{Name: name, Address: address, Size: DefaultSize}
	t.entries[name] = e
	return e
}

// position returns the index in idx at which the entry is or would be.
func (t *Table) position(e *Symbol) int {
	return sort.Search(len(t.idx), func(i int) bool {
		return !before(t.idx[i], e)
	})
}

func (t *Table) insert(e *Symbol) {
	i := t.position(e)
	t.idx = append(t.idx, nil)
	copy(t.idx[i+1:], t.idx[i:])
	t.idx[i] = e
}

func (t *Table) remove(e *Symbol) {
	i := t.position(e)
	if i < len(t.idx) && t.idx[i] == e {
		t.idx = append(t.idx[:i], t.idx[i+1:]...)
	}
}

// addAll adds many symbols to the table, sorting the index once at the end.
// Later definitions of a name replace earlier ones in the same way as Add.
func (t *Table) addAll(syms []Symbol) {
	t.crit.Lock()
	defer t.crit.Unlock()

	for _, s := range syms {
		if e, ok := t.entries[s.Name]; ok {
			e.Address = s.Address
			e.Size = DefaultSize
			continue // for loop
		}
		t.idx = append(t.idx, t.create(s.Name, s.Address))
	}

	sort.Slice(t.idx, func(i, j int) bool {
		return before(t.idx[i], t.idx[j])
	})
}

// SetSize changes the size of the named symbol. Returns false if there is no
// symbol with that name. Sizes less than one are ignored.
func (t *Table) SetSize(name string, size int) bool {
	t.crit.Lock()
	defer t.crit.Unlock()

	e, ok := t.entries[name]
	if !ok {
		return false
	}
	if size > 0 {
		e.Size = size
	}
	return true
}

// SetSource records where the named symbol is defined. Returns false if there
// is no symbol with that name.
func (t *Table) SetSource(name string, source string) bool {
	t.crit.Lock()
	defer t.crit.Unlock()

	e, ok := t.entries[name]
	if !ok {
		return false
	}
	e.Source = source
	return true
}

// Get returns the symbol with the exact name.
func (t *Table) Get(name string) (Symbol, bool) {
	t.crit.Lock()
	defer t.crit.Unlock()

	if e, ok := t.entries[name]; ok {
		return *e, true
	}
	return Symbol{}, false
}

// Len returns the number of symbols in the table.
func (t *Table) Len() int {
	t.crit.Lock()
	defer t.crit.Unlock()
	return len(t.idx)
}

// MaxWidth returns the length of the longest symbol name.
func (t *Table) MaxWidth() int {
	t.crit.Lock()
	defer t.crit.Unlock()
	return t.maxWidth
}

// List returns a copy of every symbol in address order.
func (t *Table) List() []Symbol {
	t.crit.Lock()
	defer t.crit.Unlock()

	l := make([]Symbol, len(t.idx))
	for i, e := range t.idx {
		l[i] = *e
	}
	return l
}
