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

package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/term"
)

// list of valid output formats.
const (
	formatAuto  = "auto"
	formatTable = "table"
	formatPlain = "plain"
)

// output writes rows of columns as a table or as tab separated text.
type output struct {
	w     io.Writer
	table bool
	width int
}

func newOutput(w io.Writer, format string) *output {
	out := &output{w: w}

	switch format {
	case formatTable:
		out.table = true
	case formatAuto:
		if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			out.table = true
			if width, _, err := term.GetSize(int(f.Fd())); err == nil {
				out.width = width
			}
		}
	}

	return out
}

func (out *output) render(header []string, rows [][]string) {
	if !out.table {
		fmt.Fprintln(out.w, strings.Join(header, "\t"))
		for _, r := range rows {
			fmt.Fprintln(out.w, strings.Join(r, "\t"))
		}
		return
	}

	tbl := tablewriter.NewWriter(out.w)
	tbl.SetBorder(false)
	tbl.SetColumnSeparator(" ")
	tbl.SetCenterSeparator(" ")
	tbl.SetRowSeparator("-")
	tbl.SetAutoWrapText(false)
	if out.width > 0 {
		tbl.SetColWidth(out.width / len(header))
	}
	tbl.SetHeader(header)
	tbl.AppendBulk(rows)
	tbl.Render()
}

func (out *output) printf(format string, args ...interface{}) {
	fmt.Fprintf(out.w, format, args...)
}
