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

package memory

import (
	"github.com/jetsetilly/dbg65xx/curated"
)

// Sentinal error patterns.
const (
	OutOfRange    = "memory: address 0x%04x is outside of memory"
	ImageTooLarge = "memory: image of %d bytes does not fit at origin 0x%04x"
)

// Memory defines the operations for the memory system when accessed from the
// CPU.
type Memory interface {
	Read(address uint32) (uint8, error)
	Write(address uint32, data uint8) error
}

// WriteHook is called after data has been written to the subscribed address.
type WriteHook func(address uint32, data uint8)

// ReadHook is called when the subscribed address is read. If the second return
// value is true then the returned value is used instead of the stored value.
type ReadHook func(address uint32) (uint8, bool)

// Observable implements the Memory interface.
type Observable struct {
	data []uint8

	writeHooks map[uint32][]WriteHook
	readHooks  map[uint32]ReadHook
}

// NewObservable is the preferred method of initialisation for the Observable
// type.
func NewObservable(size int) *Observable {
	return &Observable{
		data:       make([]uint8, size),
		writeHooks: make(map[uint32][]WriteHook),
		readHooks:  make(map[uint32]ReadHook),
	}
}

// Size returns the number of bytes in memory.
func (mem *Observable) Size() int {
	return len(mem.data)
}

// Load copies the image into memory starting at origin. Hooks are not called.
func (mem *Observable) Load(image []uint8, origin uint32) error {
	if int(origin)+len(image) > len(mem.data) {
		return curated.Errorf(ImageTooLarge, len(image), origin)
	}
	copy(mem.data[origin:], image)
	return nil
}

// Read implements the Memory interface.
func (mem *Observable) Read(address uint32) (uint8, error) {
	if int(address) >= len(mem.data) {
		return 0, curated.Errorf(OutOfRange, address)
	}
	if h, ok := mem.readHooks[address]; ok {
		if v, ok := h(address); ok {
			return v, nil
		}
	}
	return mem.data[address], nil
}

// Write implements the Memory interface.
func (mem *Observable) Write(address uint32, data uint8) error {
	if int(address) >= len(mem.data) {
		return curated.Errorf(OutOfRange, address)
	}
	mem.data[address] = data
	for _, h := range mem.writeHooks[address] {
		h(address, data)
	}
	return nil
}

// Peek returns the value at the address without calling any read hook.
func (mem *Observable) Peek(address uint32) (uint8, error) {
	if int(address) >= len(mem.data) {
		return 0, curated.Errorf(OutOfRange, address)
	}
	return mem.data[address], nil
}

// Poke sets the value at the address without calling any write hooks.
func (mem *Observable) Poke(address uint32, data uint8) error {
	if int(address) >= len(mem.data) {
		return curated.Errorf(OutOfRange, address)
	}
	mem.data[address] = data
	return nil
}

// SubscribeToWrite adds a hook that is called whenever the address is
// written to. More than one hook can be added to an address.
func (mem *Observable) SubscribeToWrite(address uint32, hook WriteHook) {
	mem.writeHooks[address] = append(mem.writeHooks[address], hook)
}

// SubscribeToRead sets the hook that is called whenever the address is read.
// Only one read hook can be set for an address.
func (mem *Observable) SubscribeToRead(address uint32, hook ReadHook) {
	mem.readHooks[address] = hook
}

// View returns the bytes of memory from address. The slice refers to memory
// and is not a copy. It is an error for any part of the view to be outside of
// memory.
func (mem *Observable) View(address uint32, length int) ([]uint8, error) {
	if length < 0 || int(address) > len(mem.data) || int(address)+length > len(mem.data) {
		return nil, curated.Errorf(OutOfRange, int(address)+length-1)
	}
	return mem.data[address : int(address)+length : int(address)+length], nil
}
