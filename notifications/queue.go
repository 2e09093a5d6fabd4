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

import (
	"context"
	"sync"
)

// Handler is a function that is called when a notice is delivered.
type Handler func(notice Notice)

// Queue implements the Notify interface. Notices are queued and delivered
// later by Dispatch() or Serve().
type Queue struct {
	crit sync.Mutex

	handlers map[Notice][]Handler
	all      []Handler
	pending  []Notice

	// signal is sent (without blocking) whenever a notice is queued
	signal chan struct{}
}

// NewQueue is the preferred method of initialisation for the Queue type.
func NewQueue() *Queue {
	return &Queue{
		handlers: make(map[Notice][]Handler),
		signal:   make(chan struct{}, 1),
	}
}

// Subscribe adds a handler for the notice.
func (q *Queue) Subscribe(notice Notice, h Handler) {
	q.crit.Lock()
	defer q.crit.Unlock()
	q.handlers[notice] = append(q.handlers[notice], h)
}

// SubscribeAll adds a handler for every notice.
func (q *Queue) SubscribeAll(h Handler) {
	q.crit.Lock()
	defer q.crit.Unlock()
	q.all = append(q.all, h)
}

// Notify implements the Notify interface. It adds the notice to the queue and
// returns immediately. Handlers are never called by Notify().
func (q *Queue) Notify(notice Notice) error {
	q.crit.Lock()
	q.pending = append(q.pending, notice)
	q.crit.Unlock()

	select {
	case q.signal <- struct{}{}:
	default:
	}

	return nil
}

// Pending returns the number of notices waiting to be delivered.
func (q *Queue) Pending() int {
	q.crit.Lock()
	defer q.crit.Unlock()
	return len(q.pending)
}

// Dispatch delivers every queued notice in the order they were queued. Notices
// queued by a handler are delivered by the next call to Dispatch(). Returns the
// number of notices delivered.
func (q *Queue) Dispatch() int {
	q.crit.Lock()
	pending := q.pending
	q.pending = nil
	q.crit.Unlock()

	for _, n := range pending {
		// handlers are called without the lock so that a handler can
		// subscribe or notify
		q.crit.Lock()
		handlers := append([]Handler{}, q.handlers[n]...)
		handlers = append(handlers, q.all...)
		q.crit.Unlock()

		for _, h := range handlers {
			h(n)
		}
	}

	return len(pending)
}

// Serve delivers notices as they are queued until the context is cancelled.
// Any notices still in the queue when the context is cancelled are delivered
// before Serve() returns.
func (q *Queue) Serve(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			q.Dispatch()
			return ctx.Err()
		case <-q.signal:
			q.Dispatch()
		}
	}
}
