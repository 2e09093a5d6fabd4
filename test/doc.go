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

// Package test bundles a small number of helper functions that remove common
// boilerplate from the standard go test harness.
//
// The Expect functions report a failure and allow the test to continue. The
// Demand functions are fatal to the test and should be used when later parts
// of the test depend on the value being correct.
//
// It is worth describing how success and failure are decided because it is
// not obvious. A bool is a success if it is true. An error is a success if it
// is nil. A plain nil is also considered a success, which means ExpectFailure()
// will fail if given a nil error. This is how errors usually work in Go so we
// *need* to interpret nil in this way.
//
// The Writer type implements the io.Writer interface and should be used to
// capture output. The Writer.Compare() function can then be used to test for
// equality.
package test
