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

package debugger

// Sentinal error patterns.
const (
	NotStarted     = "debugger: engine has not been started"
	AlreadyStarted = "debugger: engine has already been started"
	HasExited      = "debugger: engine has exited"
	IsRunning      = "debugger: cannot %s while running"
	StepLimit      = "debugger: target 0x%04x not reached after %d instructions"
	StepFailed     = "debugger: step: %v"
	BreakFailed    = "debugger: breakpoint check: %v"
)
