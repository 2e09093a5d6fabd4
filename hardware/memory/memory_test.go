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

package memory_test

import (
	"testing"

	"github.com/jetsetilly/dbg65xx/curated"
	"github.com/jetsetilly/dbg65xx/hardware/memory"
	"github.com/jetsetilly/dbg65xx/test"
)

func TestReadWrite(t *testing.T) {
	mem := memory.NewObservable(0x100)
	test.ExpectEquality(t, mem.Size(), 0x100)

	test.ExpectSuccess(t, mem.Load([]uint8{1, 2, 3}, 0x10))
	v, err := mem.Read(0x11)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(2))

	test.ExpectSuccess(t, mem.Write(0x20, 0xff))
	v, _ = mem.Peek(0x20)
	test.ExpectEquality(t, v, uint8(0xff))

	_, err = mem.Read(0x100)
	test.ExpectSuccess(t, curated.Is(err, memory.OutOfRange))
	err = mem.Write(0x100, 0)
	test.ExpectSuccess(t, curated.Is(err, memory.OutOfRange))

	err = mem.Load(make([]uint8, 0x10), 0xf8)
	test.ExpectSuccess(t, curated.Is(err, memory.ImageTooLarge))
}

func TestHooks(t *testing.T) {
	mem := memory.NewObservable(0x100)

	var written []uint8
	mem.SubscribeToWrite(0x80, func(_ uint32, data uint8) {
		written = append(written, data)
	})
	mem.SubscribeToRead(0x81, func(_ uint32) (uint8, bool) {
		return 0x42, true
	})

	mem.Write(0x80, 'a')
	mem.Write(0x80, 'b')
	mem.Write(0x7f, 'c')
	test.ExpectEquality(t, string(written), "ab")

	// poke does not call the hooks
	mem.Poke(0x80, 'd')
	test.ExpectEquality(t, len(written), 2)

	v, _ := mem.Read(0x81)
	test.ExpectEquality(t, v, uint8(0x42))
	v, _ = mem.Peek(0x81)
	test.ExpectEquality(t, v, uint8(0))
}

func TestView(t *testing.T) {
	mem := memory.NewObservable(0x100)
	mem.Load([]uint8{1, 2, 3, 4}, 0xfc)

	v, err := mem.View(0xfc, 4)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(v), 4)
	test.ExpectEquality(t, v[3], uint8(4))

	// view is not a copy
	mem.Write(0xfc, 9)
	test.ExpectEquality(t, v[0], uint8(9))

	_, err = mem.View(0xfc, 5)
	test.ExpectFailure(t, err)
	_, err = mem.View(0x200, 1)
	test.ExpectFailure(t, err)

	v, err = mem.View(0x100, 0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(v), 0)
}
