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

package console_test

import (
	"testing"

	"github.com/jetsetilly/dbg65xx/hardware/console"
	"github.com/jetsetilly/dbg65xx/hardware/memory"
	"github.com/jetsetilly/dbg65xx/test"
)

func TestConsole(t *testing.T) {
	w := &test.Writer{}
	con := console.NewConsole(w)

	mem := memory.NewObservable(0x10000)
	con.Attach(mem, console.DefaultAddress)

	for _, c := range []byte("hello\rworld") {
		mem.Write(console.DefaultAddress, c)
	}

	test.ExpectSuccess(t, w.Compare("hello\n"))
	test.ExpectEquality(t, con.Pending(), "world")

	// writes elsewhere are not console output
	mem.Write(console.DefaultAddress+1, 'x')
	test.ExpectEquality(t, con.Pending(), "world")

	// closing flushes the partial line
	con.Close()
	test.ExpectSuccess(t, w.Compare("hello\nworld\n"))

	// output after closing is ignored
	mem.Write(console.DefaultAddress, 'x')
	mem.Write(console.DefaultAddress, '\r')
	test.ExpectSuccess(t, w.Compare("hello\nworld\n"))
	con.Close()
}

func TestEmptyLine(t *testing.T) {
	w := &test.Writer{}
	con := console.NewConsole(w)
	con.Putc('\r')
	con.Close()
	test.ExpectSuccess(t, w.Compare("\n"))
}
