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

package acia_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/jetsetilly/dbg65xx/hardware/acia"
	"github.com/jetsetilly/dbg65xx/hardware/memory"
	"github.com/jetsetilly/dbg65xx/test"
)

const base = 0x7f00

type putter struct {
	out []byte
}

func (p *putter) Putc(data uint8) {
	p.out = append(p.out, data)
}

type irq struct {
	count int
}

func (i *irq) IRQ() {
	i.count++
}

func TestTransmit(t *testing.T) {
	mem := memory.NewObservable(0x10000)
	p := &putter{}
	dev := acia.NewACIA(base, nil, p)
	dev.Attach(mem)

	for _, c := range []byte("ok") {
		mem.Write(base, c)
	}
	test.ExpectEquality(t, string(p.out), "ok")

	// transmitter is always empty
	s, _ := mem.Read(base + 1)
	test.ExpectEquality(t, s&acia.StatusTDRE, uint8(acia.StatusTDRE))

	// nothing to receive
	test.ExpectSuccess(t, dev.Tick())
	test.ExpectEquality(t, dev.Status()&acia.StatusRDRF, uint8(0))
}

func TestReceive(t *testing.T) {
	mem := memory.NewObservable(0x10000)
	dev := acia.NewACIA(base, strings.NewReader("AB"), nil)
	dev.Attach(mem)

	i := &irq{}
	dev.SetIRQ(i)

	test.ExpectFailure(t, dev.Enabled())
	mem.Write(base+2, acia.CommandDTR)
	test.ExpectSuccess(t, dev.Enabled())

	v, _ := mem.Read(base + 2)
	test.ExpectEquality(t, v, uint8(acia.CommandDTR))

	test.ExpectSuccess(t, dev.Tick())
	test.ExpectEquality(t, i.count, 1)

	// reading status clears the interrupt bit
	s, _ := mem.Read(base + 1)
	test.ExpectEquality(t, s&(acia.StatusRDRF|acia.StatusIRQ), uint8(acia.StatusRDRF|acia.StatusIRQ))
	s, _ = mem.Read(base + 1)
	test.ExpectEquality(t, s&acia.StatusIRQ, uint8(0))

	// byte has not been read so a tick does not receive another
	test.ExpectSuccess(t, dev.Tick())
	test.ExpectEquality(t, i.count, 1)

	v, _ = mem.Read(base)
	test.ExpectEquality(t, v, uint8('A'))
	test.ExpectEquality(t, dev.Status()&acia.StatusRDRF, uint8(0))

	// receiver interrupts disabled
	mem.Write(base+2, acia.CommandDTR|acia.CommandIRD)
	test.ExpectSuccess(t, dev.Tick())
	test.ExpectEquality(t, i.count, 1)
	v, _ = mem.Read(base)
	test.ExpectEquality(t, v, uint8('B'))

	// end of input
	test.ExpectSuccess(t, dev.Tick())
	test.ExpectEquality(t, dev.Status()&acia.StatusRDRF, uint8(0))
}

type failingReader struct{}

func (failingReader) Read(_ []byte) (int, error) {
	return 0, errors.New("broken input")
}

func TestInputError(t *testing.T) {
	dev := acia.NewACIA(base, failingReader{}, nil)
	test.ExpectFailure(t, dev.Tick())

	// the device gives up on the input after an error
	test.ExpectSuccess(t, dev.Tick())
}
