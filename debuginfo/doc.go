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

// Package debuginfo reads the debug database written by the cc65 linker (the
// file produced by the ld65 --dbgfile option) and answers questions about the
// relationship between machine addresses and source lines.
//
// The database is a line oriented text file. After two header lines (the
// format version and a summary of record counts) every line is a record of the
// form:
//
//	RECORDTYPE<TAB>key=value[,key=value]*
//
// There are nine record types: csym, file, line, mod, scope, seg, span, sym
// and type. Records refer to one another by id. The id of every record is
// equal to its position in its table and every reference is checked when the
// database is loaded. A database that fails any check is not returned at all.
//
// Spans are the glue of the database. A span is a range of bytes in a single
// segment and lines, scopes and symbols all refer to spans. Because span
// positions are relative to the segment the same database can answer queries
// about CPU addresses and about offsets into the linked output file. The
// cpuSpace argument of AddressToSpans() selects between the two.
//
// Lookup functions never return an error. No match is indicated by an empty
// result.
package debuginfo
