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

package curated

import (
	"errors"
	"fmt"
)

// ParseError is the error returned when a toolchain file (debug database,
// symbol file, map file or listing) cannot be loaded. It is always fatal to the
// load that returned it.
type ParseError struct {
	// the stage of loading that failed. for example, "record", "decode",
	// "resolve", "symbols", "map" or "listing"
	Stage string

	// the file being loaded
	File string

	// line number in the file (one based). zero if the error does not refer
	// to a specific line
	Line int

	Detail string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: %s:%d: %s", e.Stage, e.File, e.Line, e.Detail)
	}
	if e.File != "" {
		return fmt.Sprintf("%s: %s: %s", e.Stage, e.File, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Stage, e.Detail)
}

// AsParseError returns the ParseError found in the error chain, if there is
// one.
func AsParseError(err error) (*ParseError, bool) {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
