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

// Package cmd implements the command line interface. The commands inspect the
// files produced by the cc65 toolchain in the same way that a debugging
// session uses them, which makes them useful for checking that a program has
// been built with enough debugging information.
//
//	dbg65xx dbginfo FILE [ADDRESS...]
//	dbg65xx listing DIR BASENAME [ADDRESS...]
//	dbg65xx symbols DIR BASENAME
//	dbg65xx check LAUNCH.yaml [--break FILE:LINE...]
//	dbg65xx version
//
// Addresses can be written as $8000, 0x8000 or as a decimal number. The
// listing command also accepts symbol names.
//
// Output is a table when writing to a terminal and tab separated columns
// otherwise. The --format flag overrides this.
package cmd
