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

package debuginfo

import (
	"fmt"

	"github.com/jetsetilly/dbg65xx/curated"
)

// resolver checks that every cross-table reference in the database is within
// the bounds of the table it refers to. like the fields type, only the first
// error is kept.
type resolver struct {
	db  *Database
	err error
}

func (r *resolver) check(kind string, id int, field string, ref int, size int) {
	if r.err != nil {
		return
	}
	if ref < 0 || ref >= size {
		r.err = &curated.ParseError{
			Stage:  "resolve",
			File:   r.db.Filename,
			Detail: fmt.Sprintf("%s %d: %s reference %d is out of range", kind, id, field, ref),
		}
	}
}

// checkOpt is the same as check() but allows the reference to be Unset.
func (r *resolver) checkOpt(kind string, id int, field string, ref int, size int) {
	if ref != Unset {
		r.check(kind, id, field, ref, size)
	}
}

func (r *resolver) checkList(kind string, id int, field string, refs []int, size int) {
	for _, ref := range refs {
		r.check(kind, id, field, ref, size)
	}
}

func (db *Database) resolve() error {
	r := &resolver{db: db}

	for _, f := range db.Files {
		r.checkList("file", f.ID, "mod", f.Modules, len(db.Modules))
	}
	for _, m := range db.Modules {
		r.check("mod", m.ID, "file", m.File, len(db.Files))
	}
	for _, ln := range db.Lines {
		r.check("line", ln.ID, "file", ln.File, len(db.Files))
		r.checkList("line", ln.ID, "span", ln.Spans, len(db.Spans))
	}
	for _, sp := range db.Spans {
		r.check("span", sp.ID, "seg", sp.Segment, len(db.Segments))
		r.checkOpt("span", sp.ID, "type", sp.Type, len(db.Types))
	}
	for _, sc := range db.Scopes {
		r.check("scope", sc.ID, "mod", sc.Module, len(db.Modules))
		r.checkOpt("scope", sc.ID, "parent", sc.Parent, len(db.Scopes))
		r.checkOpt("scope", sc.ID, "sym", sc.Symbol, len(db.Symbols))
		r.checkList("scope", sc.ID, "span", sc.Spans, len(db.Spans))
	}
	for _, sym := range db.Symbols {
		r.checkOpt("sym", sym.ID, "scope", sym.Scope, len(db.Scopes))
		r.checkOpt("sym", sym.ID, "parent", sym.Parent, len(db.Symbols))
		r.checkList("sym", sym.ID, "def", sym.Definitions, len(db.Spans))
		r.checkList("sym", sym.ID, "ref", sym.References, len(db.Spans))
		r.checkOpt("sym", sym.ID, "seg", sym.Segment, len(db.Segments))
		r.checkOpt("sym", sym.ID, "exp", sym.Export, len(db.Symbols))
	}
	for _, cs := range db.CSymbols {
		r.check("csym", cs.ID, "scope", cs.Scope, len(db.Scopes))
		r.check("csym", cs.ID, "type", cs.Type, len(db.Types))
		r.checkOpt("csym", cs.ID, "sym", cs.Symbol, len(db.Symbols))
	}

	if r.err != nil {
		return r.err
	}

	return db.checkScopeForest()
}

// checkScopeForest makes sure that following the parent of any scope will
// eventually reach a scope with no parent.
func (db *Database) checkScopeForest() error {
	// 0 = unvisited, 1 = on the current path, 2 = known to reach a root
	state := make([]uint8, len(db.Scopes))

	for i := range db.Scopes {
		path := []int{}
		s := i
		for s != Unset && state[s] != 2 {
			if state[s] == 1 {
				return &curated.ParseError{
					Stage:  "resolve",
					File:   db.Filename,
					Detail: fmt.Sprintf("scope %d: parent chain contains a cycle", i),
				}
			}
			state[s] = 1
			path = append(path, s)
			s = db.Scopes[s].Parent
		}
		for _, p := range path {
			state[p] = 2
		}
	}

	return nil
}
