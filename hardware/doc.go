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

// Package hardware is the root of the packages that describe the machine
// being debugged. The execution engine consumes these and does not implement
// them.
//
//	CPU ---- cpu bus ---- MEMORY ---- write/read hooks ---- CONSOLE
//	                                                   \
//	 ^                                                  \---- ACIA
//	 |                                                          |
//	  ------------------------- IRQ ----------------------------
//
// The cpu package defines the contract a CPU implementation must honour. The
// memory package provides byte storage with hooks so that devices can be
// mapped into the address space. The console and acia packages are the
// devices.
package hardware
