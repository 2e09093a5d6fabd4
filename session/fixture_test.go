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

package session_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/dbg65xx/config"
	"github.com/jetsetilly/dbg65xx/curated"
	"github.com/jetsetilly/dbg65xx/hardware/cpu"
	"github.com/jetsetilly/dbg65xx/hardware/memory"
	"github.com/jetsetilly/dbg65xx/test"
)

// the program writes "H" and a carriage return to the console and then loops
// forever
//
//	         .segment "CODE"      ; line 1
//	$8000    start: lda #'H'      ; line 2
//	$8002           sta $F001     ; line 3
//	$8005           lda #$0D      ; line 4
//	$8007           sta $F001     ; line 5
//	$800a    loop:  jmp loop      ; line 6
var program = []uint8{
	0xa9, 'H',
	0x8d, 0x01, 0xf0,
	0xa9, 0x0d,
	0x8d, 0x01, 0xf0,
	0x4c, 0x0a, 0x80,
}

const helloSym = `al 008000 .start
al 00800A .loop
`

const helloMap = `Modules list:
-------------
main.o:
    CODE              Offs=000000  Size=00000D  Align=00001  Fill=0000


Segment list:
-------------
Name                   Start     End    Size  Align
----------------------------------------------------
CODE                  008000  00800C  00000D  00001
`

func listing(raddr int, code string, source string) string {
	return fmt.Sprintf("%06Xr 1  %-12s %s", raddr, code, source)
}

func mainListing() string {
	return strings.Join([]string{
		"ca65 V2.19 - Git 5ff5f1b",
		"Main file   : main.s",
		"Current file: main.s",
		"",
		listing(0, "", `.segment "CODE"`),
		listing(0, "A9 48", "start:  lda #'H'"),
		listing(2, "8D 01 F0", "        sta $F001"),
		listing(5, "A9 0D", "        lda #$0D"),
		listing(7, "8D 01 F0", "        sta $F001"),
		listing(10, "4C rr rr", "loop:   jmp loop"),
	}, "\n")
}

const helloDbg = `version	major=2,minor=0
info	csym=0,file=1,lib=0,line=6,mod=1,scope=1,seg=1,span=6,sym=2,type=0
file	id=0,name="src/main.s",size=120,mtime=0x5F3C2A10,mod=0
line	id=0,file=0,line=2,span=0
line	id=1,file=0,line=3,span=1
line	id=2,file=0,line=4,span=2
line	id=3,file=0,line=5,span=3
line	id=4,file=0,line=6,span=4
line	id=5,file=0,line=1
mod	id=0,name="main.o",file=0
scope	id=0,name="",mod=0,size=13,span=5
seg	id=0,name="CODE",start=0x008000,size=0x000D,addrsize=absolute,type=ro,oname="hello.bin",ooffs=0
span	id=0,seg=0,start=0,size=2
span	id=1,seg=0,start=2,size=3
span	id=2,seg=0,start=5,size=2
span	id=3,seg=0,start=7,size=3
span	id=4,seg=0,start=10,size=3
span	id=5,seg=0,start=0,size=13
sym	id=0,name="start",addrsize=absolute,scope=0,def=0,val=0x8000,seg=0,type=lab
sym	id=1,name="loop",addrsize=absolute,scope=0,def=4,ref=4,val=0x800A,seg=0,type=lab
`

// image returns a complete memory image with the program at $8000 and the
// reset vector pointing to it.
func image() []uint8 {
	img := make([]uint8, 0x10000)
	copy(img[0x8000:], program)
	img[0xfffc] = 0x00
	img[0xfffd] = 0x80
	return img
}

// writeFixture writes the program and its debugging files to a temporary
// directory and returns a launch configuration for it.
func writeFixture(t *testing.T) config.Launch {
	t.Helper()
	dir := t.TempDir()
	files := map[string][]uint8{
		"hello.bin": image(),
		"hello.sym": []uint8(helloSym),
		"hello.map": []uint8(helloMap),
		"main.lst":  []uint8(mainListing()),
		"hello.dbg": []uint8(helloDbg),
	}
	for name, content := range files {
		err := os.WriteFile(filepath.Join(dir, name), content, 0o644)
		test.DemandSuccess(t, err)
	}

	cfg := config.Defaults()
	cfg.Program = filepath.Join(dir, "hello.bin")
	cfg.Listing.Dir = dir
	cfg.Listing.Basename = "hello"
	cfg.DbgFile = filepath.Join(dir, "hello.dbg")
	cfg.IO.Output = filepath.Join(dir, "console.txt")
	return cfg
}

// mini is a CPU that understands just enough instructions to run the test
// program.
type mini struct {
	mem memory.Memory
	pc  uint16
	a   uint8
}

func newMini(mem memory.Memory) cpu.CPU {
	mc := &mini{mem: mem}
	mc.pc = mc.read16(0xfffc)
	return mc
}

func (mc *mini) read(address uint16) uint8 {
	v, _ := mc.mem.Read(uint32(address))
	return v
}

func (mc *mini) read16(address uint16) uint16 {
	return uint16(mc.read(address)) | uint16(mc.read(address+1))<<8
}

func (mc *mini) Step() error {
	switch op := mc.read(mc.pc); op {
	case 0xea:
		mc.pc++
	case 0xa9:
		mc.a = mc.read(mc.pc + 1)
		mc.pc += 2
	case 0x8d:
		if err := mc.mem.Write(uint32(mc.read16(mc.pc+1)), mc.a); err != nil {
			return err
		}
		mc.pc += 3
	case 0x4c:
		mc.pc = mc.read16(mc.pc + 1)
	default:
		return curated.Errorf("unknown opcode %02x at %04x", op, mc.pc)
	}
	return nil
}

func (mc *mini) PC() uint16 {
	return mc.pc
}

func (mc *mini) PBR() uint8 {
	return 0
}

func (mc *mini) Waiting() bool {
	return false
}
