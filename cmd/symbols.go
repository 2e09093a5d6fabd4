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
	"path/filepath"
	"strconv"

	"github.com/jetsetilly/dbg65xx/sourcemap"
	"github.com/jetsetilly/dbg65xx/symbols"
	"github.com/spf13/cobra"
)

func newSymbolsCommand(flags *rootFlags) *cobra.Command {
	var symOnly bool

	cmd := &cobra.Command{
		Use:   "symbols DIR BASENAME",
		Short: "Show the symbol table",
		Long: `Show the symbols in BASENAME.sym. Symbol sizes are inferred from the listing
files unless --sym-only is used, in which case every symbol has a size of one.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var tbl *symbols.Table

			if symOnly {
				var err error
				tbl, err = symbols.ReadFile(filepath.Join(args[0], args[1]+".sym"))
				if err != nil {
					return err
				}
			} else {
				sm, err := sourcemap.New(args[0], args[1])
				if err != nil {
					return err
				}
				tbl = sm.Symbols()
			}

			out := newOutput(cmd.OutOrStdout(), flags.format)
			if !out.table {
				tbl.ListSymbols(out.w)
				return nil
			}

			var rows [][]string
			for _, s := range tbl.List() {
				rows = append(rows, []string{s.Name, hex(s.Address), strconv.Itoa(s.Size)})
			}
			out.render([]string{"Symbol", "Address", "Size"}, rows)

			return nil
		},
	}

	cmd.Flags().BoolVar(&symOnly, "sym-only", false, "do not read the map and listing files")

	return cmd
}
