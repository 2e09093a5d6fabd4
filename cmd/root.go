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
	"os"

	"github.com/jetsetilly/dbg65xx/curated"
	"github.com/jetsetilly/dbg65xx/logger"
	"github.com/jetsetilly/dbg65xx/statsview"
	"github.com/jetsetilly/dbg65xx/version"
	"github.com/spf13/cobra"
)

// flags common to all commands
type rootFlags struct {
	format    string
	log       bool
	statsview bool
}

// NewRootCommand returns the root of the command tree.
func NewRootCommand() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:     version.ApplicationName,
		Short:   "Inspect the debugging information of 65xx programs",
		Version: version.String(),

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch flags.format {
			case formatAuto, formatTable, formatPlain:
			default:
				return curated.Errorf("cmd: unknown output format (%s)", flags.format)
			}
			if flags.log {
				logger.SetEcho(cmd.ErrOrStderr())
			}
			if flags.statsview {
				if !statsview.Available() {
					return curated.Errorf("cmd: statsview not available in this build")
				}
				statsview.Launch(cmd.ErrOrStderr())
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&flags.format, "format", formatAuto, "output format (auto, table or plain)")
	root.PersistentFlags().BoolVar(&flags.log, "log", false, "echo log entries to stderr")
	root.PersistentFlags().BoolVar(&flags.statsview, "statsview", false, "launch the runtime statistics server")

	root.AddCommand(newDbgInfoCommand(flags))
	root.AddCommand(newListingCommand(flags))
	root.AddCommand(newSymbolsCommand(flags))
	root.AddCommand(newCheckCommand(flags))
	root.AddCommand(newVersionCommand())

	return root
}

// Execute runs the command line and returns the exit status.
func Execute() int {
	root := NewRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "* error: %v\n", err)
		return 1
	}
	return 0
}
