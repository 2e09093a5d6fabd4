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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/dbg65xx/hardware/cpu"
	"github.com/jetsetilly/dbg65xx/test"
)

type mockCPU struct {
	pc  uint16
	pbr uint8
}

func (mc *mockCPU) Step() error   { return nil }
func (mc *mockCPU) PC() uint16    { return mc.pc }
func (mc *mockCPU) PBR() uint8    { return mc.pbr }
func (mc *mockCPU) Waiting() bool { return false }

func TestAddress(t *testing.T) {
	mc := &mockCPU{pc: 0x1234, pbr: 0x05}
	test.ExpectEquality(t, cpu.Address(mc), uint32(0x051234))

	mc.pbr = 0
	test.ExpectEquality(t, cpu.Address(mc), uint32(0x1234))
}
