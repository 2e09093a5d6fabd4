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
	"time"
)

// Unset is the value of an optional numeric field that was not present in the
// record.
const Unset = -1

// DefaultHeaderSize is the number of bytes at the start of the linked output
// file that precede the first segment. Used when converting a segment's output
// offset to a file-space address.
const DefaultHeaderSize = 16

// AddrSize is the addressing size of a segment or symbol.
type AddrSize int

// List of valid AddrSize values.
const (
	AddrAbsolute AddrSize = iota
	AddrZeropage
	AddrFar
)

func (a AddrSize) String() string {
	switch a {
	case AddrAbsolute:
		return "absolute"
	case AddrZeropage:
		return "zeropage"
	case AddrFar:
		return "far"
	}
	return ""
}

// Access is the read/write policy of a segment.
type Access int

// List of valid Access values.
const (
	ReadOnly Access = iota
	ReadWrite
)

func (a Access) String() string {
	switch a {
	case ReadOnly:
		return "ro"
	case ReadWrite:
		return "rw"
	}
	return ""
}

// LineKind indicates where a line record originated.
type LineKind int

// List of valid LineKind values. The values are the same as those used in the
// database file.
const (
	LineAssembly LineKind = iota
	LineExternal
	LineMacro
	LineParameterMacro
)

func (k LineKind) String() string {
	switch k {
	case LineAssembly:
		return "assembly"
	case LineExternal:
		return "external"
	case LineMacro:
		return "macro"
	case LineParameterMacro:
		return "parameter macro"
	}
	return ""
}

// ScopeKind is the type of a scope record. ScopeFile is the default when the
// type key is absent.
type ScopeKind int

// List of valid ScopeKind values.
const (
	ScopeFile ScopeKind = iota
	ScopeGlobal
	ScopeScope
	ScopeStruct
	ScopeEnum
)

func (k ScopeKind) String() string {
	switch k {
	case ScopeFile:
		return "file"
	case ScopeGlobal:
		return "global"
	case ScopeScope:
		return "scope"
	case ScopeStruct:
		return "struct"
	case ScopeEnum:
		return "enum"
	}
	return ""
}

// SymbolKind is the declaration type of a symbol. SymbolUnset is used when the
// type key is absent.
type SymbolKind int

// List of valid SymbolKind values.
const (
	SymbolUnset SymbolKind = iota
	SymbolLabel
	SymbolEquate
	SymbolImport
)

func (k SymbolKind) String() string {
	switch k {
	case SymbolLabel:
		return "lab"
	case SymbolEquate:
		return "equ"
	case SymbolImport:
		return "imp"
	}
	return ""
}

// StorageClass of a C symbol.
type StorageClass string

// List of storage classes written by the cc65 compiler.
const (
	StorageAuto     StorageClass = "auto"
	StorageRegister StorageClass = "reg"
	StorageStatic   StorageClass = "static"
	StorageExternal StorageClass = "ext"
)

// File is a source file that contributed to the linked output.
type File struct {
	ID      int
	Name    string
	Size    int
	ModTime uint32
	Modules []int
}

// Time returns the modification time of the file.
func (f File) Time() time.Time {
	return time.Unix(int64(f.ModTime), 0)
}

// Module is an object file.
type Module struct {
	ID      int
	Name    string
	File    int
	Library int
}

// Segment is a named region of the linked output.
type Segment struct {
	ID           int
	Name         string
	Start        uint32
	Size         uint32
	AddrSize     AddrSize
	Access       Access
	OutputName   string
	OutputOffset int
}

// Span is a range of bytes within a single segment. The start field is relative
// to the start of the segment.
type Span struct {
	ID      int
	Segment int
	Start   int
	Size    int
	Type    int
}

// Line is a line of source. A line has more than one span when it is the
// source of a macro that has been expanded more than once.
type Line struct {
	ID    int
	File  int
	Line  int
	Kind  LineKind
	Count int
	Spans []int
}

// Scope is a lexical grouping of spans. Scopes may be nested.
type Scope struct {
	ID     int
	Name   string
	Module int
	Kind   ScopeKind
	Size   int
	Parent int
	Symbol int
	Spans  []int
}

// Symbol is an assembler symbol.
type Symbol struct {
	ID          int
	Name        string
	AddrSize    AddrSize
	Size        int
	Scope       int
	Parent      int
	Definitions []int
	References  []int
	Value       int64
	Segment     int
	Kind        SymbolKind

	// the symbol id of the matching export if the symbol is an import
	Export int
}

// CSymbol is a symbol emitted by the C compiler.
type CSymbol struct {
	ID      int
	Name    string
	Scope   int
	Type    int
	Storage StorageClass
	Symbol  int
}

// Type is an encoded type string (see the cc65 gentype.h file for the
// encoding).
type Type struct {
	ID    int
	Value string
}

// Version of the debug database format as given by the first header line.
type Version struct {
	Major int
	Minor int
}

// Database is the result of a successful call to Parse().
type Database struct {
	Filename string
	Version  Version

	// the number of bytes preceding the first segment in the output file.
	// defaults to DefaultHeaderSize but can be changed before calling any of
	// the lookup functions
	HeaderSize int

	CSymbols []CSymbol
	Files    []File
	Lines    []Line
	Modules  []Module
	Scopes   []Scope
	Segments []Segment
	Spans    []Span
	Symbols  []Symbol
	Types    []Type
}
