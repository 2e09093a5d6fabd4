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
	"strconv"
	"strings"

	"github.com/jetsetilly/dbg65xx/config"
	"github.com/jetsetilly/dbg65xx/curated"
	"github.com/jetsetilly/dbg65xx/session"
	"github.com/spf13/cobra"
)

func newCheckCommand(flags *rootFlags) *cobra.Command {
	var breaks []string

	cmd := &cobra.Command{
		Use:   "check LAUNCH.yaml",
		Short: "Check a launch configuration and verify breakpoints",
		Long: `Load the launch configuration and the source mapping it names. Breakpoints
given with --break are verified against the mapping in the same way as they
would be by a debugging session.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(args[0])
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			out := newOutput(cmd.OutOrStdout(), flags.format)
			out.printf("program: %s\n", cfg.Program)

			var mapping session.Mapping
			if cfg.NoDebug {
				out.printf("mapping: none (noDebug)\n")
			} else {
				mapping, err = session.LoadMapping(cfg)
				if err != nil {
					return err
				}
				out.printf("mapping: %s\n", cfg.Mapping)
			}

			if len(breaks) == 0 {
				return nil
			}

			// group lines by file in the order the files were first seen
			var files []string
			lines := make(map[string][]int)
			for _, b := range breaks {
				file, line, err := parseBreak(b)
				if err != nil {
					return err
				}
				if _, ok := lines[file]; !ok {
					files = append(files, file)
				}
				lines[file] = append(lines[file], line)
			}

			bps := session.NewBreakpoints(mapping)
			for _, f := range files {
				bps.Set(f, lines[f])
			}

			var rows [][]string
			for _, b := range bps.List() {
				address := "-"
				if b.Verified {
					address = hex(b.Address)
				}
				rows = append(rows, []string{
					strconv.Itoa(b.ID),
					b.File,
					strconv.Itoa(b.Line),
					address,
					strconv.FormatBool(b.Verified),
				})
			}
			out.render([]string{"ID", "File", "Line", "Address", "Verified"}, rows)

			return nil
		},
	}

	cmd.Flags().StringArrayVar(&breaks, "break", nil, "breakpoint to verify (FILE:LINE)")

	return cmd
}

// parseBreak splits FILE:LINE.
func parseBreak(s string) (string, int, error) {
	i := strings.LastIndex(s, ":")
	if i <= 0 {
		return "", 0, curated.Errorf("cmd: breakpoint must be FILE:LINE (%s)", s)
	}
	line, err := strconv.Atoi(s[i+1:])
	if err != nil || line < 1 {
		return "", 0, curated.Errorf("cmd: invalid line number (%s)", s)
	}
	return s[:i], line, nil
}
