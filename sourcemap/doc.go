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

// Package sourcemap builds a map between CPU addresses and assembler source
// lines from the output of the ld65 linker and the ca65 assembler. It is an
// alternative to the debuginfo package for programs that were not linked with
// a debug database.
//
// Three kinds of file are required. For a program with the basename "hello"
// in directory "build":
//
//	build/hello.sym    the VICE label file (ld65 -Ln)
//	build/hello.map    the map file (ld65 -m)
//	build/<module>.lst a listing file for every module named in the map file
//	                   (ca65 -l)
//
// The map file gives the start address of every segment and the offset of
// each module's contribution to the segment. Listing addresses are relative
// to the module's contribution so the absolute address of a listing line is:
//
//	relative address + segment start + module offset
//
// Lines in the listing produced by an included file or by a macro expansion
// are ignored. Source line numbers are counted from zero.
//
// While reading listings, labelled data directives are used to infer the size
// of the symbol in the symbol table. For example, the symbol for a label on a
// .word directive will be given a size of two.
//
// Construction fails with a curated.ParseError if any of the files are missing
// or malformed. Lookups never fail and return false if nothing is found.
package sourcemap
