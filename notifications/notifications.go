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

package notifications

// Notice describes events that change the execution state of the program
// being debugged. The string value of each notice is the name of the event in
// the debug adapter protocol.
type Notice string

// List of defined notifications.
const (
	NotifyStoppedOnEntry      Notice = "stoppedOnEntry"
	NotifyStoppedOnStep       Notice = "stoppedOnStep"
	NotifyStoppedOnPause      Notice = "stoppedOnPause"
	NotifyStoppedOnBreakpoint Notice = "stoppedOnBreakpoint"

	// the run loop has stopped because of an error. the error is available
	// from the engine
	NotifyStoppedOnException Notice = "stoppedOnException"

	NotifyExited Notice = "exited"
)

// Notify is used for communication between the engine and the session. The
// engine does not know or care how the notice is delivered.
type Notify interface {
	Notify(notice Notice) error
}
