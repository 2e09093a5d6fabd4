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

// Package session joins the parts of the debugger together. It loads the
// source mapping named by the launch configuration, owns the set of
// breakpoints and starts the execution engine with the breakpoint check
// installed.
//
// Two mapping schemes are supported. The listing scheme uses the symbol file,
// map file and listing files produced by the cc65 toolchain. The dbginfo
// scheme uses the debug database produced by the linker's --dbgfile option.
// Both are presented to the rest of the session through the Mapping interface.
//
// Source lines are counted from one throughout this package.
package session
