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
	"strconv"
	"strings"
)

// hexPrefix precedes the digits of every hexadecimal value in the database.
const hexPrefix = "0x"

// record is a single line of the database split into its record type and
// key/value pairs. the line number is kept for error messages.
type record struct {
	kind   string
	line   int
	values map[string]string
}

// splitRecord splits a database line into a record. the body is split on
// commas that are not inside a quoted string.
func splitRecord(s string, line int) (record, error) {
	kind, body, ok := strings.Cut(strings.TrimSpace(s), "\t")
	if !ok {
		return record{}, fmt.Errorf("no record body")
	}
	kind = strings.TrimSpace(kind)
	if kind == "" {
		return record{}, fmt.Errorf("no record type")
	}

	rec := record{
		kind:   kind,
		line:   line,
		values: make(map[string]string),
	}

	var quoted bool
	var start int
	for i := 0; i <= len(body); i++ {
		if i < len(body) {
			if body[i] == '"' {
				quoted = !quoted
			}
			if body[i] != ',' || quoted {
				continue // for loop
			}
		}

		pair := body[start:i]
		start = i + 1

		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return record{}, fmt.Errorf("malformed key/value pair (%s)", pair)
		}
		rec.values[key] = unquote(value)
	}

	if quoted {
		return record{}, fmt.Errorf("unterminated string")
	}

	return rec, nil
}

func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

// fields decodes the values of a record. the first decoding error is kept and
// all subsequent calls are ignored. this means a decoder can decode every
// field it is interested in and check for an error once at the end.
type fields struct {
	rec record
	err error
}

func (f *fields) fail(detail string, args ...interface{}) {
	if f.err == nil {
		f.err = fmt.Errorf("%s: %s", f.rec.kind, fmt.Sprintf(detail, args...))
	}
}

func (f *fields) lookup(key string, required bool) (string, bool) {
	if f.err != nil {
		return "", false
	}
	v, ok := f.rec.values[key]
	if !ok && required {
		f.fail("missing required key '%s'", key)
	}
	return v, ok
}

func (f *fields) str(key string) string {
	v, _ := f.lookup(key, true)
	return v
}

func (f *fields) optStr(key string) string {
	v, _ := f.lookup(key, false)
	return v
}

func (f *fields) decimal(key, v string) int {
	n, err := strconv.Atoi(v)
	if err != nil {
		f.fail("non-numeric value for '%s' (%s)", key, v)
		return Unset
	}
	return n
}

func (f *fields) int(key string) int {
	v, ok := f.lookup(key, true)
	if !ok {
		return Unset
	}
	return f.decimal(key, v)
}

func (f *fields) optInt(key string) int {
	v, ok := f.lookup(key, false)
	if !ok {
		return Unset
	}
	return f.decimal(key, v)
}

func (f *fields) parseHex(key, v string) int64 {
	if !strings.HasPrefix(v, hexPrefix) {
		f.fail("malformed hex value for '%s' (%s)", key, v)
		return Unset
	}
	n, err := strconv.ParseUint(v[len(hexPrefix):], 16, 32)
	if err != nil {
		f.fail("malformed hex value for '%s' (%s)", key, v)
		return Unset
	}
	return int64(n)
}

func (f *fields) hex(key string) uint32 {
	v, ok := f.lookup(key, true)
	if !ok {
		return 0
	}
	n := f.parseHex(key, v)
	if n < 0 {
		return 0
	}
	return uint32(n)
}

func (f *fields) optHex(key string) int64 {
	v, ok := f.lookup(key, false)
	if !ok {
		return Unset
	}
	return f.parseHex(key, v)
}

func (f *fields) parseIDs(key, v string) []int {
	if v == "" {
		return nil
	}
	p := strings.Split(v, "+")
	ids := make([]int, 0, len(p))
	for _, s := range p {
		ids = append(ids, f.decimal(key, s))
	}
	return ids
}

func (f *fields) ids(key string) []int {
	v, ok := f.lookup(key, true)
	if !ok {
		return nil
	}
	return f.parseIDs(key, v)
}

func (f *fields) optIDs(key string) []int {
	v, ok := f.lookup(key, false)
	if !ok {
		return nil
	}
	return f.parseIDs(key, v)
}

func (f *fields) addrSize(key string) AddrSize {
	switch v := f.str(key); v {
	case "absolute":
		return AddrAbsolute
	case "zeropage":
		return AddrZeropage
	case "far":
		return AddrFar
	default:
		f.fail("unknown address size (%s)", v)
	}
	return AddrAbsolute
}

func decodeFile(f *fields) File {
	return File{
		ID:      f.int("id"),
		Name:    f.str("name"),
		Size:    f.int("size"),
		ModTime: f.hex("mtime"),
		Modules: f.ids("mod"),
	}
}

func decodeModule(f *fields) Module {
	return Module{
		ID:      f.int("id"),
		Name:    f.str("name"),
		File:    f.int("file"),
		Library: f.optInt("lib"),
	}
}

func decodeSegment(f *fields) Segment {
	seg := Segment{
		ID:           f.int("id"),
		Name:         f.str("name"),
		Start:        f.hex("start"),
		Size:         f.hex("size"),
		AddrSize:     f.addrSize("addrsize"),
		OutputName:   f.optStr("oname"),
		OutputOffset: f.optInt("ooffs"),
	}

	switch v := f.str("type"); v {
	case "ro":
		seg.Access = ReadOnly
	case "rw":
		seg.Access = ReadWrite
	default:
		f.fail("unknown segment type (%s)", v)
	}

	return seg
}

func decodeSpan(f *fields) Span {
	return Span{
		ID:      f.int("id"),
		Segment: f.int("seg"),
		Start:   f.int("start"),
		Size:    f.int("size"),
		Type:    f.optInt("type"),
	}
}

func decodeLine(f *fields) Line {
	ln := Line{
		ID:    f.int("id"),
		File:  f.int("file"),
		Line:  f.int("line"),
		Count: f.optInt("count"),
		Spans: f.optIDs("span"),
	}

	// absence of the type field means the line is an assembler line
	if k := f.optInt("type"); k != Unset {
		if k < int(LineAssembly) || k > int(LineParameterMacro) {
			f.fail("unknown line type (%d)", k)
		}
		ln.Kind = LineKind(k)
	}

	return ln
}

func decodeScope(f *fields) Scope {
	sc := Scope{
		ID:     f.int("id"),
		Name:   f.optStr("name"),
		Module: f.int("mod"),
		Size:   f.optInt("size"),
		Parent: f.optInt("parent"),
		Symbol: f.optInt("sym"),
		Spans:  f.optIDs("span"),
	}

	switch v := f.optStr("type"); v {
	case "", "file":
		sc.Kind = ScopeFile
	case "global":
		sc.Kind = ScopeGlobal
	case "scope":
		sc.Kind = ScopeScope
	case "struct":
		sc.Kind = ScopeStruct
	case "enum":
		sc.Kind = ScopeEnum
	default:
		f.fail("unknown scope type (%s)", v)
	}

	return sc
}

func decodeSymbol(f *fields) Symbol {
	sym := Symbol{
		ID:          f.int("id"),
		Name:        f.str("name"),
		AddrSize:    f.addrSize("addrsize"),
		Size:        f.optInt("size"),
		Scope:       f.optInt("scope"),
		Parent:      f.optInt("parent"),
		Definitions: f.ids("def"),
		References:  f.optIDs("ref"),
		Value:       f.optHex("val"),
		Segment:     f.optInt("seg"),
		Export:      f.optInt("exp"),
	}

	switch v := f.optStr("type"); v {
	case "":
		sym.Kind = SymbolUnset
	case "lab":
		sym.Kind = SymbolLabel
	case "equ":
		sym.Kind = SymbolEquate
	case "imp":
		sym.Kind = SymbolImport
	default:
		f.fail("unknown symbol type (%s)", v)
	}

	return sym
}

func decodeCSymbol(f *fields) CSymbol {
	return CSymbol{
		ID:      f.int("id"),
		Name:    f.str("name"),
		Scope:   f.int("scope"),
		Type:    f.int("type"),
		Storage: StorageClass(f.str("sc")),
		Symbol:  f.optInt("sym"),
	}
}

func decodeType(f *fields) Type {
	return Type{
		ID:    f.int("id"),
		Value: f.str("val"),
	}
}
