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

// Package symbols keeps track of the address symbols exported by the linker.
// The primary structure is the Table type, which can be created empty with
// NewTable() or populated from a VICE label file with ReadFile().
//
// A VICE label file is one of the outputs of ld65 (the -Ln option) and looks
// like this:
//
//	al 00F40A .KEYBOARD_BUFFER
//	al 008000 .start
//	al 008004 .@loop
//
// Symbols beginning with the @ character are local symbols and are ignored.
//
// Every symbol has a size. The size is one byte unless it is changed with
// SetSize(). The sourcemap package infers sizes from the data directives in
// assembler listings.
package symbols
