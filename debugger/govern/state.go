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

package govern

// State indicates the engine's state.
type State int

// List of possible engine states.
//
// Idle is the default state and is never entered again once the engine has
// started. Exited is the final state.
//
// Stopped has a meaningful StopReason.
const (
	Idle State = iota
	Stopped
	Running
	Exited
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Stopped:
		return "Stopped"
	case Running:
		return "Running"
	case Exited:
		return "Exited"
	}

	return ""
}

// StopReason gives more detail for the Stopped state. NoReason indicates that
// the engine is not stopped.
type StopReason int

// List of possible stop reasons.
const (
	NoReason StopReason = iota
	StopEntry
	StopStep
	StopPause
	StopBreakpoint
	StopException
)

func (r StopReason) String() string {
	switch r {
	case StopEntry:
		return "entry"
	case StopStep:
		return "step"
	case StopPause:
		return "pause"
	case StopBreakpoint:
		return "breakpoint"
	case StopException:
		return "exception"
	}
	return ""
}

// StateIntegrity checks whether the combination of state and stop reason makes
// sense.
//
// Rules:
//
//  1. NoReason can coexist with any state except Stopped
//
//  2. All other reasons can only be paired with the Stopped state
func StateIntegrity(state State, reason StopReason) bool {
	if state == Stopped {
		return reason != NoReason
	}
	return reason == NoReason
}

// Transition returns true if the engine can move from one state to another.
// An engine that has exited can not change state and no state can return to
// Idle.
func Transition(from State, to State) bool {
	switch from {
	case Exited:
		return false
	case Idle:
		return to != Idle
	}
	return to != Idle
}
