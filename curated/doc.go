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

// Package curated wraps the plain Go error type with a pattern. Errors are
// created with Errorf(), which takes a formatting pattern and the values for
// the placeholders in the same way as fmt.Errorf().
//
// The pattern identifies the error. Packages declare their sentinal patterns
// as const strings and callers test for them with Is() or Has():
//
//	const StepFailed = "debugger: step failed: %v"
//
//	err := curated.Errorf(StepFailed, cpuErr)
//	if curated.Is(err, StepFailed) {
//		...
//	}
//
// Is() only checks the outermost error. Has() checks the whole chain:
//
//	launch := curated.Errorf("session: %v", err)
//	curated.Is(launch, StepFailed)  // false
//	curated.Has(launch, StepFailed) // true
//
// IsAny() returns true for any curated error. An uncurated error is one that
// has come from outside the program and was not anticipated.
//
// Parts of an error message are separated by ": ". The Error() function
// removes a part that is immediately repeated so that wrapping an error in a
// pattern with the same prefix does not stutter:
//
//	e := curated.Errorf("config: no program specified")
//	f := curated.Errorf("config: %v", e)
//	f.Error() // "config: no program specified"
//
// Curated errors implement Unwrap() so that errors.Is() and errors.As() can
// see through them. This is how a ParseError, returned when a toolchain file
// cannot be loaded, is found in an error chain. See AsParseError().
package curated
