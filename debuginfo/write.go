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
	"io"
	"strconv"
	"strings"
)

// recordWriter builds the key/value body of a single record.
type recordWriter struct {
	kind  string
	pairs []string
}

func (w *recordWriter) add(key, value string) {
	w.pairs = append(w.pairs, fmt.Sprintf("%s=%s", key, value))
}

func (w *recordWriter) int(key string, v int) {
	w.add(key, strconv.Itoa(v))
}

func (w *recordWriter) optInt(key string, v int) {
	if v != Unset {
		w.int(key, v)
	}
}

func (w *recordWriter) quoted(key, v string) {
	w.add(key, fmt.Sprintf("\"%s\"", v))
}

func (w *recordWriter) optQuoted(key, v string) {
	if v != "" {
		w.quoted(key, v)
	}
}

func (w *recordWriter) hex(key string, v int64, width int) {
	w.add(key, fmt.Sprintf("%s%0*X", hexPrefix, width, v))
}

func (w *recordWriter) ids(key string, ids []int) {
	s := make([]string, len(ids))
	for i, id := range ids {
		s[i] = strconv.Itoa(id)
	}
	w.add(key, strings.Join(s, "+"))
}

func (w *recordWriter) optIDs(key string, ids []int) {
	if len(ids) > 0 {
		w.ids(key, ids)
	}
}

func (w *recordWriter) String() string {
	return fmt.Sprintf("%s\t%s\n", w.kind, strings.Join(w.pairs, ","))
}

// WriteTo writes the database in the same format that it was parsed from.
// Parsing the output will result in an identical database.
func (db *Database) WriteTo(output io.Writer) (int64, error) {
	var n int64

	emit := func(w *recordWriter) error {
		m, err := io.WriteString(output, w.String())
		n += int64(m)
		return err
	}

	version := &recordWriter{kind: "version"}
	version.int("major", db.Version.Major)
	version.int("minor", db.Version.Minor)

	info := &recordWriter{kind: "info"}
	info.int("csym", len(db.CSymbols))
	info.int("file", len(db.Files))
	info.int("line", len(db.Lines))
	info.int("mod", len(db.Modules))
	info.int("scope", len(db.Scopes))
	info.int("seg", len(db.Segments))
	info.int("span", len(db.Spans))
	info.int("sym", len(db.Symbols))
	info.int("type", len(db.Types))

	recs := []*recordWriter{version, info}

	for _, c := range db.CSymbols {
		w := &recordWriter{kind: "csym"}
		w.int("id", c.ID)
		w.quoted("name", c.Name)
		w.int("scope", c.Scope)
		w.int("type", c.Type)
		w.add("sc", string(c.Storage))
		w.optInt("sym", c.Symbol)
		recs = append(recs, w)
	}

	for _, f := range db.Files {
		w := &recordWriter{kind: "file"}
		w.int("id", f.ID)
		w.quoted("name", f.Name)
		w.int("size", f.Size)
		w.hex("mtime", int64(f.ModTime), 8)
		w.ids("mod", f.Modules)
		recs = append(recs, w)
	}

	for _, ln := range db.Lines {
		w := &recordWriter{kind: "line"}
		w.int("id", ln.ID)
		w.int("file", ln.File)
		w.int("line", ln.Line)
		if ln.Kind != LineAssembly {
			w.int("type", int(ln.Kind))
		}
		w.optInt("count", ln.Count)
		w.optIDs("span", ln.Spans)
		recs = append(recs, w)
	}

	for _, m := range db.Modules {
		w := &recordWriter{kind: "mod"}
		w.int("id", m.ID)
		w.quoted("name", m.Name)
		w.int("file", m.File)
		w.optInt("lib", m.Library)
		recs = append(recs, w)
	}

	for _, sc := range db.Scopes {
		w := &recordWriter{kind: "scope"}
		w.int("id", sc.ID)
		w.quoted("name", sc.Name)
		w.int("mod", sc.Module)
		if sc.Kind != ScopeFile {
			w.add("type", sc.Kind.String())
		}
		w.optInt("size", sc.Size)
		w.optInt("parent", sc.Parent)
		w.optInt("sym", sc.Symbol)
		w.optIDs("span", sc.Spans)
		recs = append(recs, w)
	}

	for _, seg := range db.Segments {
		w := &recordWriter{kind: "seg"}
		w.int("id", seg.ID)
		w.quoted("name", seg.Name)
		w.hex("start", int64(seg.Start), 6)
		w.hex("size", int64(seg.Size), 4)
		w.add("addrsize", seg.AddrSize.String())
		w.add("type", seg.Access.String())
		w.optQuoted("oname", seg.OutputName)
		w.optInt("ooffs", seg.OutputOffset)
		recs = append(recs, w)
	}

	for _, sp := range db.Spans {
		w := &recordWriter{kind: "span"}
		w.int("id", sp.ID)
		w.int("seg", sp.Segment)
		w.int("start", sp.Start)
		w.int("size", sp.Size)
		w.optInt("type", sp.Type)
		recs = append(recs, w)
	}

	for _, sym := range db.Symbols {
		w := &recordWriter{kind: "sym"}
		w.int("id", sym.ID)
		w.quoted("name", sym.Name)
		w.add("addrsize", sym.AddrSize.String())
		w.optInt("size", sym.Size)
		w.optInt("scope", sym.Scope)
		w.optInt("parent", sym.Parent)
		w.ids("def", sym.Definitions)
		w.optIDs("ref", sym.References)
		if sym.Value != Unset {
			w.hex("val", sym.Value, 0)
		}
		w.optInt("seg", sym.Segment)
		if sym.Kind != SymbolUnset {
			w.add("type", sym.Kind.String())
		}
		w.optInt("exp", sym.Export)
		recs = append(recs, w)
	}

	for _, t := range db.Types {
		w := &recordWriter{kind: "type"}
		w.int("id", t.ID)
		w.quoted("val", t.Value)
		recs = append(recs, w)
	}

	for _, w := range recs {
		if err := emit(w); err != nil {
			return n, err
		}
	}

	return n, nil
}
