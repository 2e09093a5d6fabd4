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

// Package config loads the launch configuration for a debugging session. The
// configuration is a YAML file. Fields missing from the file take the values
// returned by Defaults().
//
// An example configuration:
//
//	program: hello.bin
//	stopOnEntry: true
//	mapping: listing
//	listing:
//	  dir: build
//	  basename: hello
//	io:
//	  putc: 0xf001
//	runLoop:
//	  interval: 10ms
//
// Relative paths are relative to the directory containing the configuration
// file.
package config
