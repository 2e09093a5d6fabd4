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

package symbols_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/jetsetilly/dbg65xx/symbols"
	"github.com/jetsetilly/dbg65xx/test"
)

const labels = `al 008000 .start
al 008004 .@loop
al 00F001 .PUTC
al 000010 .buffer
al 000010 .alias
garbage line
al 00800A .print
al 008000 .reset
`

func TestRead(t *testing.T) {
	tbl, err := symbols.Read(strings.NewReader(labels))
	test.DemandSuccess(t, err)

	// local symbol is skipped
	test.ExpectEquality(t, tbl.Len(), 6)
	_, ok := tbl.Get("@loop")
	test.ExpectFailure(t, ok)

	s, ok := tbl.Get("PUTC")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s.Address, uint32(0xf001))
	test.ExpectEquality(t, s.Size, symbols.DefaultSize)

	test.ExpectEquality(t, tbl.MaxWidth(), len("buffer"))

	l := tbl.List()
	test.DemandEquality(t, len(l), 6)
	test.ExpectEquality(t, l[0].Name, "alias")
	test.ExpectEquality(t, l[1].Name, "buffer")
	test.ExpectEquality(t, l[2].Name, "reset")
	test.ExpectEquality(t, l[5].Name, "PUTC")
}

func TestSearch(t *testing.T) {
	tbl, err := symbols.Read(strings.NewReader(labels))
	test.DemandSuccess(t, err)

	s, ok := tbl.Search("putc")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s.Name, "PUTC")

	_, ok = tbl.Search("missing")
	test.ExpectFailure(t, ok)

	tbl.Add("Start", 0x9000)
	s, ok = tbl.Search("Start")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s.Address, uint32(0x9000))
}

func TestReverseSearch(t *testing.T) {
	tbl, err := symbols.Read(strings.NewReader(labels))
	test.DemandSuccess(t, err)

	s, ok := tbl.ReverseSearch(0x8000)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s.Name, "reset")

	// default size is one byte
	_, ok = tbl.ReverseSearch(0x0011)
	test.ExpectFailure(t, ok)

	test.ExpectSuccess(t, tbl.SetSize("buffer", 16))
	s, ok = tbl.ReverseSearch(0x001f)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s.Name, "buffer")
	_, ok = tbl.ReverseSearch(0x0020)
	test.ExpectFailure(t, ok)

	test.ExpectFailure(t, tbl.SetSize("missing", 2))

	// re-adding a symbol resets the size
	tbl.Add("buffer", 0x0010)
	s, _ = tbl.Get("buffer")
	test.ExpectEquality(t, s.Size, symbols.DefaultSize)
}

func TestListSymbols(t *testing.T) {
	tbl := symbols.NewTable()
	tbl.Add("start", 0x8000)
	tbl.Add("ptr", 0x0002)
	tbl.SetSize("ptr", 2)

	w := &test.Writer{}
	tbl.ListSymbols(w)
	test.ExpectSuccess(t, w.Compare("Symbols\n-------\n0x0002 -> ptr   2\n0x8000 -> start 1\n"))
}

func TestAddOrder(t *testing.T) {
	tbl := symbols.NewTable()
	tbl.Add("c", 0x8010)
	tbl.Add("a", 0x8000)
	tbl.Add("b", 0x8000)
	tbl.Add("d", 0x0002)

	// moving a symbol takes it out of its old position
	tbl.Add("c", 0x0001)
	tbl.Add("a", 0x8000)

	var names []string
	for _, s := range tbl.List() {
		names = append(names, s.Name)
	}
	test.ExpectEquality(t, strings.Join(names, " "), "c d a b")
	test.ExpectEquality(t, tbl.Len(), 4)

	s, ok := tbl.ReverseSearch(0x0001)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s.Name, "c")
	_, ok = tbl.ReverseSearch(0x8010)
	test.ExpectFailure(t, ok)
}

func TestReadManySymbols(t *testing.T) {
	const count = 20000

	// written in reverse address order with one redefinition at the end
	b := strings.Builder{}
	for i := count - 1; i >= 0; i-- {
		b.WriteString(fmt.Sprintf("al %06X .sym%05d\n", i, i))
	}
	b.WriteString("al 00FFFF .sym00000\n")

	tbl, err := symbols.Read(strings.NewReader(b.String()))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, tbl.Len(), count)

	l := tbl.List()
	test.DemandEquality(t, len(l), count)
	test.ExpectEquality(t, l[0].Name, "sym00001")
	test.ExpectEquality(t, l[len(l)-1].Name, "sym00000")
	for i := 1; i < len(l); i++ {
		if !test.ExpectSuccess(t, l[i-1].Address < l[i].Address, l[i].Name) {
			break // for loop
		}
	}
}

func TestSymbolSource(t *testing.T) {
	tbl := symbols.NewTable()
	tbl.Add("start", 0x8000)

	s, _ := tbl.Get("start")
	test.ExpectEquality(t, s.Source, "")
	test.ExpectEquality(t, s.String(), "0x8000 start (1)")

	test.ExpectSuccess(t, tbl.SetSource("start", "main:2"))
	test.ExpectFailure(t, tbl.SetSource("missing", "main:3"))

	s, _ = tbl.Get("start")
	test.ExpectEquality(t, s.Source, "main:2")
	test.ExpectEquality(t, s.String(), "0x8000 start (1) main:2")
}

func TestReadFile(t *testing.T) {
	_, err := symbols.ReadFile("missing.sym")
	test.ExpectFailure(t, err)
}
