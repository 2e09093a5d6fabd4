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

package sourcemap

import (
	"strconv"
	"strings"

	"github.com/jetsetilly/dbg65xx/logger"
)

// inferSize sets the size of the labelled symbol from the data directive.
// directives that aren't recognised leave the size unchanged.
func (sm *SourceMap) inferSize(label string, source string) {
	if _, ok := sm.symbols.Get(label); !ok {
		return
	}

	size, ok := directiveSize(source)
	if !ok {
		return
	}

	sm.symbols.SetSize(label, size)
}

// directiveSize returns the number of bytes reserved by the directive.
func directiveSize(source string) (int, bool) {
	flds := strings.Fields(strings.TrimPrefix(source, "."))
	if len(flds) == 0 {
		return 0, false
	}

	switch strings.ToLower(flds[0]) {
	case "word":
		return 2, true
	case "dword":
		return 4, true
	case "res":
		if len(flds) < 2 {
			return 0, false
		}
		v := strings.TrimRight(flds[1], ",")

		var n uint64
		var err error
		if strings.HasPrefix(v, "$") {
			n, err = strconv.ParseUint(v[1:], 16, 32)
		} else {
			n, err = strconv.ParseUint(v, 10, 32)
		}
		if err != nil {
			logger.Logf(logger.Allow, "sourcemap", "cannot infer size from .res directive (%s)", source)
			return 0, false
		}
		return int(n), true
	case "asciiz":
		i := strings.Index(source, "\"")
		j := strings.LastIndex(source, "\"")
		if i < 0 || j <= i {
			return 0, false
		}
		return len(source[i+1 : j]), true
	}

	return 0, false
}
