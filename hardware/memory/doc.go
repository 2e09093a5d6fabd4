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

// Package memory implements byte addressable storage for the CPU. The
// Observable type allows devices to be mapped into the address space by
// subscribing to reads and writes of specific addresses.
//
// The size of memory is fixed when it is created. Accessing an address outside
// of memory is an error and memory never grows to accommodate it.
package memory
