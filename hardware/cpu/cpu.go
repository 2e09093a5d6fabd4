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

// Package cpu defines the contract between the execution engine and an
// implementation of a 65xx family CPU. The engine never decodes or executes
// instructions itself.
//
// A CPU is created by a Factory from the memory it is to use:
//
//	mc := factory(mem)
//
//	for {
//		if err := mc.Step(); err != nil {
//			return err
//		}
//	}
//
// The address of the next instruction is the program counter combined with the
// program bank register. For 6502 implementations the bank register is always
// zero.
package cpu

import (
	"github.com/jetsetilly/dbg65xx/hardware/memory"
)

// CPU is the minimum interface required of a CPU implementation.
type CPU interface {
	// Step executes exactly one instruction
	Step() error

	// PC returns the program counter
	PC() uint16

	// PBR returns the program bank register
	PBR() uint8

	// Waiting returns true if the program is waiting for input. how this is
	// detected is up to the implementation
	Waiting() bool
}

// IRQ is implemented by CPUs that can be interrupted by a device.
type IRQ interface {
	IRQ()
}

// Factory creates a new CPU that uses the memory.
type Factory func(mem memory.Memory) CPU

// Address returns the 24-bit address of the next instruction.
func Address(mc CPU) uint32 {
	return uint32(mc.PC()) | uint32(mc.PBR())<<16
}
