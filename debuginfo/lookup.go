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
	"path/filepath"
)

// segmentBase returns the base address of the segment in either CPU space or
// in the file space of the linked output. the second return value is false if
// the segment has no base in the requested space (a segment that is not
// written to the output file has no file-space address).
func (db *Database) segmentBase(seg *Segment, cpuSpace bool) (int64, bool) {
	if cpuSpace {
		return int64(seg.Start), true
	}
	if seg.OutputOffset == Unset {
		return 0, false
	}
	return int64(seg.OutputOffset) - int64(db.HeaderSize), true
}

// AddressToSpans returns the ids of every span that covers the address. If
// cpuSpace is true the address is a CPU address. Otherwise it is an offset into
// the linked output file.
func (db *Database) AddressToSpans(address uint32, cpuSpace bool) []int {
	addr := int64(address)

	// segments containing the address. indexed by segment id
	covering := make(map[int]int64)
	for i := range db.Segments {
		seg := &db.Segments[i]
		base, ok := db.segmentBase(seg, cpuSpace)
		if !ok {
			continue // for loop
		}
		if base <= addr && addr < base+int64(seg.Size) {
			covering[seg.ID] = base
		}
	}

	if len(covering) == 0 {
		return nil
	}

	var spans []int
	for _, sp := range db.Spans {
		base, ok := covering[sp.Segment]
		if !ok {
			continue // for loop
		}
		rel := addr - base
		if int64(sp.Start) <= rel && rel < int64(sp.Start+sp.Size) {
			spans = append(spans, sp.ID)
		}
	}

	return spans
}

// LineMatch is a line record along with the spans of the line that were part
// of a SpansToLines() query.
type LineMatch struct {
	Line  *Line
	Spans []*Span
}

// SpansToLines returns every line that refers to at least one of the spans in
// the list. A line appears once for every matched span so a macro line that
// matches more than one span will appear more than once.
func (db *Database) SpansToLines(spanIDs []int) []LineMatch {
	query := idSet(spanIDs)

	var matches []LineMatch
	for i := range db.Lines {
		ln := &db.Lines[i]

		var spans []*Span
		for _, id := range ln.Spans {
			if query[id] {
				spans = append(spans, &db.Spans[id])
			}
		}

		for range spans {
			matches = append(matches, LineMatch{Line: ln, Spans: spans})
		}
	}

	return matches
}

// SpansToScopes returns every scope with a span that contains one of the
// spans in the list. A scope span contains a span if they are in the same
// segment and the start of the span is between the start and end of the scope
// span. The end of the scope span is inclusive.
func (db *Database) SpansToScopes(spanIDs []int) []*Scope {
	var query []*Span
	for _, id := range spanIDs {
		if id >= 0 && id < len(db.Spans) {
			query = append(query, &db.Spans[id])
		}
	}

	var scopes []*Scope
	for i := range db.Scopes {
		sc := &db.Scopes[i]
		if db.scopeContains(sc, query) {
			scopes = append(scopes, sc)
		}
	}

	return scopes
}

func (db *Database) scopeContains(sc *Scope, query []*Span) bool {
	for _, id := range sc.Spans {
		ss := &db.Spans[id]
		for _, sp := range query {
			if sp.Segment == ss.Segment && ss.Start <= sp.Start && sp.Start <= ss.Start+ss.Size {
				return true
			}
		}
	}
	return false
}

// Location is a position in a source file.
type Location struct {
	File string
	Line int
	Kind LineKind
}

// AddressToSource returns the source location of every line associated with
// the address. Each line is only returned once even if more than one of its
// spans cover the address.
func (db *Database) AddressToSource(address uint32, cpuSpace bool) []Location {
	var locs []Location
	seen := make(map[int]bool)
	for _, m := range db.SpansToLines(db.AddressToSpans(address, cpuSpace)) {
		if seen[m.Line.ID] {
			continue // for loop
		}
		seen[m.Line.ID] = true
		locs = append(locs, Location{
			File: db.Files[m.Line.File].Name,
			Line: m.Line.Line,
			Kind: m.Line.Kind,
		})
	}
	return locs
}

// LineToAddress returns the CPU address of the first byte generated by the
// source line. The file is matched by its base name. Returns false if the line
// generated no code or data.
func (db *Database) LineToAddress(filename string, line int) (uint32, bool) {
	filename = filepath.Base(filename)
	for _, ln := range db.Lines {
		if ln.Line != line || len(ln.Spans) == 0 {
			continue // for loop
		}
		if filepath.Base(db.Files[ln.File].Name) != filename {
			continue // for loop
		}
		sp := db.Spans[ln.Spans[0]]
		return db.Segments[sp.Segment].Start + uint32(sp.Start), true
	}
	return 0, false
}

// SymbolByName returns the first symbol with the name.
func (db *Database) SymbolByName(name string) (*Symbol, bool) {
	for i := range db.Symbols {
		if db.Symbols[i].Name == name {
			return &db.Symbols[i], true
		}
	}
	return nil, false
}

// SegmentByName returns the segment with the name.
func (db *Database) SegmentByName(name string) (*Segment, bool) {
	for i := range db.Segments {
		if db.Segments[i].Name == name {
			return &db.Segments[i], true
		}
	}
	return nil, false
}

func idSet(ids []int) map[int]bool {
	s := make(map[int]bool, len(ids))
	for _, id := range ids {
		s[id] = true
	}
	return s
}
