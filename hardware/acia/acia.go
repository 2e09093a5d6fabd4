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

// Package acia implements a serial device in the style of the 6551
// asynchronous communications interface adapter. Transmitted bytes are sent to
// the console and received bytes are read from an input stream, one byte per
// tick.
//
// The device occupies four consecutive addresses:
//
//	base+0   data register
//	base+1   status register
//	base+2   command register
//	base+3   control register
//
// When the receiver interrupt is enabled in the command register, the arrival
// of a byte raises an interrupt on the CPU.
package acia

import (
	"bufio"
	"io"

	"github.com/jetsetilly/dbg65xx/hardware/cpu"
	"github.com/jetsetilly/dbg65xx/hardware/memory"
	"github.com/jetsetilly/dbg65xx/logger"
)

// register offsets from the base address.
const (
	regData = iota
	regStatus
	regCommand
	regControl
)

// status register bits.
const (
	StatusIRQ  = 0x80
	StatusTDRE = 0x10
	StatusRDRF = 0x08
)

// command register bits.
const (
	// data terminal ready. the device does nothing unless this bit is set
	CommandDTR = 0x01

	// receiver interrupt request disabled
	CommandIRD = 0x02
)

// Putter is the destination of transmitted bytes.
type Putter interface {
	Putc(data uint8)
}

// ACIA is the serial device.
type ACIA struct {
	base  uint32
	input *bufio.Reader
	out   Putter
	irq   cpu.IRQ

	rx      uint8
	status  uint8
	command uint8
	control uint8

	eof bool
}

// NewACIA is the preferred method of initialisation for the ACIA type. The
// input can be nil in which case nothing is ever received.
func NewACIA(base uint32, input io.Reader, out Putter) *ACIA {
	dev := &ACIA{
		base:   base,
		out:    out,
		status: StatusTDRE,
	}
	if input != nil {
		dev.input = bufio.NewReader(input)
	} else {
		dev.eof = true
	}
	return dev
}

// SetIRQ sets the CPU that is interrupted by the device.
func (dev *ACIA) SetIRQ(irq cpu.IRQ) {
	dev.irq = irq
}

// Attach the device to memory.
func (dev *ACIA) Attach(mem *memory.Observable) {
	for i := uint32(regData); i <= regControl; i++ {
		mem.SubscribeToWrite(dev.base+i, dev.write)
		mem.SubscribeToRead(dev.base+i, dev.read)
	}
}

func (dev *ACIA) write(address uint32, data uint8) {
	switch address - dev.base {
	case regData:
		if dev.out != nil {
			dev.out.Putc(data)
		}
	case regStatus:
		// programmed reset
		dev.command &= 0xe0
		dev.status &^= StatusIRQ
	case regCommand:
		dev.command = data
	case regControl:
		dev.control = data
	}
}

func (dev *ACIA) read(address uint32) (uint8, bool) {
	switch address - dev.base {
	case regData:
		dev.status &^= StatusRDRF | StatusIRQ
		return dev.rx, true
	case regStatus:
		s := dev.status
		dev.status &^= StatusIRQ
		return s, true
	case regCommand:
		return dev.command, true
	case regControl:
		return dev.control, true
	}
	return 0, false
}

// Enabled returns true if the data terminal ready bit is set.
func (dev *ACIA) Enabled() bool {
	return dev.command&CommandDTR == CommandDTR
}

// Status returns the status register without the side effects of reading it
// through memory.
func (dev *ACIA) Status() uint8 {
	return dev.status
}

// Tick receives the next byte of input if the previous byte has been read by
// the CPU. An interrupt is raised if the receiver interrupt is enabled.
func (dev *ACIA) Tick() error {
	if dev.eof || dev.status&StatusRDRF == StatusRDRF {
		return nil
	}

	b, err := dev.input.ReadByte()
	if err != nil {
		dev.eof = true
		if err != io.EOF {
			logger.Logf(logger.Allow, "acia", "input: %v", err)
			return err
		}
		return nil
	}

	dev.rx = b
	dev.status |= StatusRDRF

	if dev.command&CommandIRD == 0 {
		dev.status |= StatusIRQ
		if dev.irq != nil {
			dev.irq.IRQ()
		}
	}

	return nil
}
