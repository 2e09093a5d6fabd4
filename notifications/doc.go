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

// Package notifications defines the lifecycle notices sent by the execution
// engine and the Queue type that delivers them to subscribers.
//
// Notices are never delivered to subscribers by the call that raised them.
// They wait in the queue until Dispatch() is called, or until the goroutine
// started by Serve() gets to them. This means that a caller that causes a
// notice and then subscribes to it will still see the notice, exactly once.
package notifications
