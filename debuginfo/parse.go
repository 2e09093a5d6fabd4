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
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/jetsetilly/dbg65xx/curated"
	"github.com/jetsetilly/dbg65xx/logger"
)

// the number of header lines at the start of the database. the first is the
// format version and the second is a summary of record counts
const headerLines = 2

// the record types in the order they are decoded
var recordTypes = []string{"csym", "file", "line", "mod", "scope", "seg", "span", "sym", "type"}

// Parse reads and parses the debug database at path. Any malformed record
// causes the entire load to fail and the returned error will contain a
// curated.ParseError.
func Parse(path string) (*Database, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &curated.ParseError{Stage: "open", File: path, Detail: err.Error()}
	}
	defer f.Close()
	return ParseReader(f, path)
}

// ParseReader is the same as Parse() but reads the database from an
// io.Reader. The filename is used for error messages only.
func ParseReader(r io.Reader, filename string) (*Database, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &curated.ParseError{Stage: "read", File: filename, Detail: err.Error()}
	}

	db := &Database{
		Filename:   filename,
		HeaderSize: DefaultHeaderSize,
	}

	// records grouped by record type
	groups := make(map[string][]record)

	var header int
	for i, s := range strings.Split(string(data), "\n") {
		s = strings.TrimRight(s, "\r")

		// ignore blank and degenerate lines
		if len(s) <= 1 {
			continue // for loop
		}

		rec, err := splitRecord(s, i+1)

		if header < headerLines {
			header++
			if err == nil {
				db.decodeHeader(rec)
			}
			continue // for loop
		}

		if err != nil {
			return nil, &curated.ParseError{Stage: "record", File: filename, Line: i + 1, Detail: err.Error()}
		}

		groups[rec.kind] = append(groups[rec.kind], rec)
	}

	for _, kind := range recordTypes {
		recs := groups[kind]
		delete(groups, kind)

		var err error
		switch kind {
		case "csym":
			db.CSymbols, err = decodeTable(recs, decodeCSymbol)
		case "file":
			db.Files, err = decodeTable(recs, decodeFile)
		case "line":
			db.Lines, err = decodeTable(recs, decodeLine)
		case "mod":
			db.Modules, err = decodeTable(recs, decodeModule)
		case "scope":
			db.Scopes, err = decodeTable(recs, decodeScope)
		case "seg":
			db.Segments, err = decodeTable(recs, decodeSegment)
		case "span":
			db.Spans, err = decodeTable(recs, decodeSpan)
		case "sym":
			db.Symbols, err = decodeTable(recs, decodeSymbol)
		case "type":
			db.Types, err = decodeTable(recs, decodeType)
		}

		if err != nil {
			if pe, ok := err.(*curated.ParseError); ok {
				pe.File = filename
			}
			return nil, err
		}
	}

	// anything left in the groups map is a record type we don't know about
	for kind, recs := range groups {
		logger.Logf(logger.Allow, "debuginfo", "ignoring %d records of unknown type '%s'", len(recs), kind)
	}

	if err := db.resolve(); err != nil {
		return nil, err
	}

	return db, nil
}

// decodeHeader makes a best effort attempt to decode the header lines. a
// header that cannot be understood is not an error.
func (db *Database) decodeHeader(rec record) {
	if rec.kind != "version" {
		return
	}
	if v, err := strconv.Atoi(rec.values["major"]); err == nil {
		db.Version.Major = v
	}
	if v, err := strconv.Atoi(rec.values["minor"]); err == nil {
		db.Version.Minor = v
	}
}

// recordType is the type constraint for decodeTable().
type recordType interface {
	CSymbol | File | Line | Module | Scope | Segment | Span | Symbol | Type
}

// decodeTable decodes every record in the list with the decode function. the
// resulting table is sorted by id and the id of every record is checked against
// its position in the table.
func decodeTable[T recordType](recs []record, decode func(*fields) T) ([]T, error) {
	type decoded struct {
		id   int
		line int
		rec  T
	}

	tbl := make([]decoded, 0, len(recs))
	for _, r := range recs {
		f := &fields{rec: r}
		v := decode(f)
		if f.err != nil {
			return nil, &curated.ParseError{Stage: "decode", Line: r.line, Detail: f.err.Error()}
		}
		tbl = append(tbl, decoded{id: recordID(r), line: r.line, rec: v})
	}

	sort.SliceStable(tbl, func(i, j int) bool {
		return tbl[i].id < tbl[j].id
	})

	out := make([]T, len(tbl))
	for i := range tbl {
		if tbl[i].id != i {
			return nil, &curated.ParseError{Stage: "resolve", Line: tbl[i].line,
				Detail: fmt.Sprintf("%s: record id %d does not match table position %d", recs[0].kind, tbl[i].id, i)}
		}
		out[i] = tbl[i].rec
	}

	return out, nil
}

// recordID returns the id of a record that has already been decoded
// successfully. the id field will therefore be valid.
func recordID(r record) int {
	id, _ := strconv.Atoi(r.values["id"])
	return id
}
