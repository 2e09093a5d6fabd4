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

// Package console implements the single byte console output device. Bytes
// written to the device are gathered in a buffer until a carriage return is
// written, at which point the buffered line is written to the output.
//
// The device is attached to memory with Attach() and from then on every write
// to the device address is a byte of console output.
package console

import (
	"io"
	"sync"

	"github.com/jetsetilly/dbg65xx/hardware/memory"
	"github.com/jetsetilly/dbg65xx/logger"
)

// DefaultAddress is the address of the console device if no other address
// is specified.
const DefaultAddress = 0xf001

// the byte that causes the buffer to be flushed
const carriageReturn = 0x0d

// Console is the console output device.
type Console struct {
	crit   sync.Mutex
	output io.Writer
	buffer []byte
	closed bool
}

// NewConsole is the preferred method of initialisation for the Console type.
// Completed lines are written to output.
func NewConsole(output io.Writer) *Console {
	return &Console{
		output: output,
		buffer: make([]byte, 0, 80),
	}
}

// Attach the console to memory at the address.
func (con *Console) Attach(mem *memory.Observable, address uint32) {
	mem.SubscribeToWrite(address, func(_ uint32, data uint8) {
		con.Putc(data)
	})
}

// Putc adds a byte to the console. The buffer is flushed if the byte is a
// carriage return. Bytes written after the console has been closed are
// ignored.
func (con *Console) Putc(data uint8) {
	con.crit.Lock()
	defer con.crit.Unlock()

	if con.closed {
		return
	}

	if data == carriageReturn {
		con.flush()
		return
	}

	con.buffer = append(con.buffer, data)
}

// flush must be called with the critical section locked.
func (con *Console) flush() {
	line := append(con.buffer, '\n')
	if _, err := con.output.Write(line); err != nil {
		logger.Logf(logger.Allow, "console", "%v", err)
	}
	con.buffer = con.buffer[:0]
}

// Pending returns the bytes that have been written since the last carriage
// return.
func (con *Console) Pending() string {
	con.crit.Lock()
	defer con.crit.Unlock()
	return string(con.buffer)
}

// Close the console. Any partial line is flushed.
func (con *Console) Close() {
	con.crit.Lock()
	defer con.crit.Unlock()

	if con.closed {
		return
	}
	if len(con.buffer) > 0 {
		con.flush()
	}
	con.closed = true
}
