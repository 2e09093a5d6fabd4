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
	"strings"
)

// Search returns the symbol with the name. Matching is case-insensitive but an
// exact match is always preferred.
func (t *Table) Search(name string) (Symbol, bool) {
	if s, ok := t.Get(name); ok {
		return s, true
	}

	t.crit.Lock()
	defer t.crit.Unlock()

	for _, e := range t.idx {
		if strings.EqualFold(e.Name, name) {
			return *e, true
		}
	}

	return Symbol{}, false
}

// ReverseSearch returns the symbol that covers the address. A symbol that
// starts at the address is preferred over a symbol that merely contains the
// address and the nearest containing symbol wins. When more than one symbol starts at the same address the symbol
// with the lowest sorting name is returned.
func (t *Table) ReverseSearch(address uint32) (Symbol, bool) {
	t.crit.Lock()
	defer t.crit.Unlock()

	var found *Symbol
	for _, e := range t.idx {
		if e.Address > address {
			break // for loop
		}
		if e.Address == address {
			return *e, true
		}
		if e.contains(address) {
			found = e
		}
	}

	if found != nil {
		return *found, true
	}
	return Symbol{}, false
}
