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

	"github.com/jetsetilly/dbg65xx/sourcemap"
	"github.com/spf13/cobra"
)

func newListingCommand(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listing DIR BASENAME [ADDRESS...]",
		Short: "Show the source map built from ld65 and ca65 output",
		Long: `Show the source map built from BASENAME.sym, BASENAME.map and the listing
file of every module in DIR. If addresses or symbols are given then only the
entries for those addresses are shown. Source lines are counted from one.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sm, err := sourcemap.New(args[0], args[1])
			if err != nil {
				return err
			}

			out := newOutput(cmd.OutOrStdout(), flags.format)
			header := []string{"Address", "Source", "Instruction", "Symbol"}

			if len(args) == 2 {
				var rows [][]string
				for _, e := range sm.Entries() {
					rows = append(rows, listingRow(sm, e))
				}
				out.render(header, rows)

				for _, d := range sm.Diagnostics() {
					out.printf("* %s\n", d)
				}
				return nil
			}

			var rows [][]string
			for _, a := range args[2:] {
				address, ok := sm.GetSymbolAddress(a)
				if !ok {
					address, err = parseAddress(a)
					if err != nil {
						return err
					}
				}
				e, ok := sm.Get(address)
				if !ok {
					rows = append(rows, []string{hex(address), "-", "", ""})
					continue // for loop
				}
				rows = append(rows, listingRow(sm, e))
			}
			out.render(header, rows)

			return nil
		},
	}
	return cmd
}

func listingRow(sm *sourcemap.SourceMap, e sourcemap.Entry) []string {
	var symbol string
	if s, ok := sm.SymbolAt(e.Address); ok {
		if s.Address == e.Address {
			symbol = s.Name
		} else {
			symbol = fmt.Sprintf("%s+%d", s.Name, e.Address-s.Address)
		}
	}
	return []string{
		hex(e.Address),
		fmt.Sprintf("%s.s:%d", e.Module, e.SourceLine+1),
		e.Instruction,
		symbol,
	}
}
