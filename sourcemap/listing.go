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
	"regexp"
	"strconv"
	"strings"

	"github.com/jetsetilly/dbg65xx/logger"
)

// columns of a ca65 listing line
const (
	// the include depth of the line. only lines from the module's own source
	// file (depth 1) are mapped
	colDepth = 8

	// the assembled bytes
	colCodeStart = 11
	colCodeEnd   = 22

	// the echoed source line
	colSource = 24
)

// a listing line has the following parts:
//
//	relative address
//	file reference (not captured)
//	assembled bytes. relocatable bytes are shown as rr and uninitialised
//	bytes as xx
//	optional label and colon
//	source stripped of comment
var listingLine = regexp.MustCompile(`^([A-F0-9]{6})r\s\d\s*((?:[0-9A-Frx]{2}\s){0,4})\s*([A-Za-z0-9_@]+:+)?\s*([^;]*)`)

// explicit segment directive
var segmentDirective = regexp.MustCompile(`\.segment\s+"([^"]*)"`)

// directives that change to one of the default segments
var defaultSegments = []struct {
	directive string
	name      string
}{
	{directive: ".bss", name: "BSS"},
	{directive: ".code", name: "CODE"},
	{directive: ".data", name: "DATA"},
	{directive: ".rodata", name: "RODATA"},
	{directive: ".zeropage", name: "ZEROPAGE"},
}

// column returns the text of the line between the two columns. an end column
// of -1 means the end of the line.
func column(line string, start int, end int) string {
	if start >= len(line) {
		return ""
	}
	if end < 0 || end > len(line) {
		end = len(line)
	}
	return line[start:end]
}

// segmentChange returns the name of the segment selected by the source, if
// any.
func segmentChange(source string) (string, bool) {
	if m := segmentDirective.FindStringSubmatch(source); m != nil {
		return m[1], true
	}

	name := ""
	for _, s := range defaultSegments {
		if strings.Contains(source, s.directive) {
			name = s.name
		}
	}

	return name, name != ""
}

// cursor is the current position in the module's segments while reading a
// listing.
type cursor struct {
	// the segment that the most recent segment directive selected. if this is
	// different to the current segment then the segment could not be changed
	// to and the listing lines are not mapped
	pending string

	current string
	base    uint32
	offset  uint32
}

// listingReader maps the lines of a single module's listing.
type listingReader struct {
	sm  *SourceMap
	lm  *linkerMap
	mod Module
	cur cursor

	// source line counter
	sline int
}

func (lr *listingReader) start() bool {
	if len(lr.mod.Segments) == 0 {
		return false
	}
	first := lr.mod.Segments[0]
	seg, ok := lr.lm.segment(first.Name)
	if !ok {
		return false
	}
	lr.cur = cursor{
		pending: first.Name,
		current: first.Name,
		base:    seg.Start,
		offset:  first.Offset,
	}
	return true
}

// changeSegment tries to make the pending segment the current segment. it
// is possible for a module to change segments without laying down any code or
// data in which case the segment will not be in the map file and the cursor
// does not change.
func (lr *listingReader) changeSegment() {
	seg, ok := lr.lm.segment(lr.cur.pending)
	if !ok {
		return
	}
	ms, ok := lr.mod.segment(lr.cur.pending)
	if !ok {
		return
	}
	lr.cur.current = lr.cur.pending
	lr.cur.base = seg.Start
	lr.cur.offset = ms.Offset
}

func (lr *listingReader) read(lines []string) {
	if !lr.start() {
		logger.Logf(logger.Allow, "sourcemap", "%s: module has no segments in the map file", lr.mod.Name)
		return
	}

	for n, line := range lines {
		line = strings.TrimRight(line, "\r")

		if len(line) <= colDepth || line[colDepth] != '1' {
			continue // for loop
		}

		m := listingLine.FindStringSubmatch(line)
		if m == nil {
			continue // for loop
		}

		raddr := m[1]
		code := strings.TrimSpace(m[2])
		label := strings.TrimRight(m[3], ":")
		source := strings.TrimSpace(m[4])

		if seg, ok := segmentChange(source); ok {
			lr.cur.pending = seg
		}

		if lr.cur.pending != lr.cur.current {
			lr.changeSegment()
			lr.sline++
			continue // for loop
		}

		uninitialised := strings.Contains(column(line, colCodeStart, colCodeEnd), "xx")

		if code == "" && !uninitialised {
			lr.define(label)
			lr.sline++
			continue // for loop
		}

		// the regular expression guarantees six hex digits
		rel, _ := strconv.ParseUint(raddr, 16, 32)
		addr := uint32(rel) + lr.cur.base + lr.cur.offset

		if uninitialised || strings.HasPrefix(source, ".") {
			// data directive
			if label != "" {
				lr.checkSource(n, line, source)
				lr.define(label)
				lr.sline++
				lr.sm.inferSize(label, source)
			} else if source != "" {
				lr.sline++
			}
			continue // for loop
		}

		// continuation lines of assembled bytes have no source
		if source == "" {
			continue // for loop
		}

		lr.checkSource(n, line, source)

		var opcode uint8
		if op, err := strconv.ParseUint(code[:2], 16, 8); err == nil {
			opcode = uint8(op)
		}

		lr.sm.entries[addr] = &Entry{
			Address:     addr,
			Module:      lr.mod.Name,
			Opcode:      opcode,
			Instruction: source,
			SourceLine:  lr.sline,
			Source:      column(line, colSource, -1),
			ListingLine: n,
			Listing:     line,
		}
		lr.define(label)
		lr.sline++
	}
}

// define records the current source line as the definition of the label.
// labels not in the symbol table are ignored.
func (lr *listingReader) define(label string) {
	if label == "" {
		return
	}
	lr.sm.symbols.SetSource(label, fmt.Sprintf("%s:%d", lr.mod.Name, lr.sline))
}

// checkSource makes sure that the source text extracted from the listing line
// is in the echoed source column. a mismatch means the column layout was not
// as expected and the mapping for the line may be wrong.
func (lr *listingReader) checkSource(n int, line string, source string) {
	if strings.Contains(column(line, colSource, -1), source) {
		return
	}
	d := Diagnostic{
		Module:      lr.mod.Name,
		ListingLine: n,
		Detail:      fmt.Sprintf("source and listing don't match (%s)", source),
	}
	lr.sm.diagnostics = append(lr.sm.diagnostics, d)
	logger.Log(logger.Allow, "sourcemap", d.String())
}
