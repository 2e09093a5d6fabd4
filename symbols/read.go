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

package symbols

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/jetsetilly/dbg65xx/curated"
)

// a typical line in the label file:
//
//	al 00F40A .KEYBOARD_BUFFER
var viceLabel = regexp.MustCompile(`^al\s([a-fA-F0-9]{6})\s\.(.*)`)

// localPrefix is the first character of a local symbol name.
const localPrefix = "@"

// ReadFile creates a new table from the VICE label file at path.
func ReadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &curated.ParseError{Stage: "symbols", File: path, Detail: err.Error()}
	}
	defer f.Close()

	tbl, err := Read(f)
	if err != nil {
		return nil, &curated.ParseError{Stage: "symbols", File: path, Detail: err.Error()}
	}
	return tbl, nil
}

// Read creates a new table from a VICE label file. Lines that are not label
// definitions are ignored as are labels for local symbols.
func Read(r io.Reader) (*Table, error) {
	var syms []Symbol

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		ln := strings.TrimRight(scanner.Text(), "\r")

		m := viceLabel.FindStringSubmatch(ln)
		if m == nil {
			continue // for loop
		}

		name := strings.TrimSpace(m[2])
		if name == "" || strings.HasPrefix(name, localPrefix) {
			continue // for loop
		}

		// the regular expression guarantees six hex digits so this can't fail
		address, _ := strconv.ParseUint(m[1], 16, 32)

		syms = append(syms, Symbol{Name: name, Address: uint32(address)})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	tbl := NewTable()
	tbl.addAll(syms)
	return tbl, nil
}
