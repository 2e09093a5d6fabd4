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
	"strconv"
	"strings"

	"github.com/jetsetilly/dbg65xx/debuginfo"
	"github.com/spf13/cobra"
)

func newDbgInfoCommand(flags *rootFlags) *cobra.Command {
	var fileSpace bool
	var headerSize int
	var dump bool

	cmd := &cobra.Command{
		Use:   "dbginfo FILE [ADDRESS...]",
		Short: "Show the contents of a cc65 debug database",
		Long: `Show the segments of a cc65 debug database or, if addresses are given, the
source lines and scopes associated with each address.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := debuginfo.Parse(args[0])
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("header-size") {
				db.HeaderSize = headerSize
			}

			if dump {
				_, err := db.WriteTo(cmd.OutOrStdout())
				return err
			}

			out := newOutput(cmd.OutOrStdout(), flags.format)

			if len(args) == 1 {
				dbgInfoSummary(out, db)
				return nil
			}

			var rows [][]string
			for _, a := range args[1:] {
				address, err := parseAddress(a)
				if err != nil {
					return err
				}
				rows = append(rows, dbgInfoAddress(db, address, !fileSpace)...)
			}
			out.render([]string{"Address", "Source", "Kind", "Scope"}, rows)

			return nil
		},
	}

	cmd.Flags().BoolVar(&fileSpace, "file-space", false, "addresses are offsets into the output file")
	cmd.Flags().IntVar(&headerSize, "header-size", debuginfo.DefaultHeaderSize, "size of the output file header")
	cmd.Flags().BoolVar(&dump, "dump", false, "write the database in its original format")

	return cmd
}

func dbgInfoSummary(out *output, db *debuginfo.Database) {
	out.printf("%s: version %d.%d\n", db.Filename, db.Version.Major, db.Version.Minor)
	out.printf("%d files, %d modules, %d lines, %d spans, %d scopes, %d symbols\n\n",
		len(db.Files), len(db.Modules), len(db.Lines), len(db.Spans), len(db.Scopes), len(db.Symbols))

	var rows [][]string
	for _, seg := range db.Segments {
		output := ""
		if seg.OutputName != "" {
			output = fmt.Sprintf("%s+%d", seg.OutputName, seg.OutputOffset)
		}
		rows = append(rows, []string{
			seg.Name,
			hex(seg.Start),
			strconv.Itoa(int(seg.Size)),
			seg.AddrSize.String(),
			seg.Access.String(),
			output,
		})
	}
	out.render([]string{"Segment", "Start", "Size", "Address Size", "Access", "Output"}, rows)
}

func dbgInfoAddress(db *debuginfo.Database, address uint32, cpuSpace bool) [][]string {
	spans := db.AddressToSpans(address, cpuSpace)

	var scopes []string
	for _, sc := range db.SpansToScopes(spans) {
		if sc.Name == "" {
			continue // for loop
		}
		scopes = append(scopes, sc.Name)
	}
	scope := strings.Join(scopes, ",")

	locs := db.AddressToSource(address, cpuSpace)
	if len(locs) == 0 {
		return [][]string{{hex(address), "-", "", scope}}
	}

	rows := make([][]string, 0, len(locs))
	for _, l := range locs {
		rows = append(rows, []string{
			hex(address),
			fmt.Sprintf("%s:%d", l.File, l.Line),
			l.Kind.String(),
			scope,
		})
	}
	return rows
}
