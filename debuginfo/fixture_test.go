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

package debuginfo_test

// hello.dbg describes a small program with three segments. the CODE segment
// contains a macro that is expanded twice.
//
//	$8000  lda #1         main.s:5
//	$8002  sta OUT        main.s:6
//	$8005  putc           main.s:7 (macros.inc:3 expanded at $8005 and $8008)
//	$800b  jmp start      main.s:8
//	$8010  msg: .asciiz   main.s:10
//	$0000  ptr: .res 2    main.s:12
const helloDbg = `version	major=2,minor=0
info	csym=1,file=2,lib=0,line=7,mod=1,scope=2,seg=3,span=9,sym=5,type=1
csym	id=0,name="msg",scope=0,type=0,sc=ext,sym=2
file	id=0,name="src/main.s",size=412,mtime=0x5F3C2A10,mod=0
file	id=1,name="src/macros.inc",size=88,mtime=0x5F3C2A00,mod=0
line	id=0,file=0,line=5,span=0
line	id=1,file=0,line=6,span=1
line	id=2,file=1,line=3,type=2,count=1,span=2+3
line	id=3,file=0,line=7,span=4
line	id=4,file=0,line=8,span=5
line	id=5,file=0,line=10,span=6
line	id=6,file=0,line=12,span=7
mod	id=0,name="main.o",file=0
scope	id=0,name="",mod=0,size=16,span=8
scope	id=1,name="print",mod=0,type=scope,size=6,parent=0,sym=1,span=4
seg	id=1,name="ZEROPAGE",start=0x000000,size=0x0002,addrsize=zeropage,type=rw
seg	id=0,name="CODE",start=0x008000,size=0x0010,addrsize=absolute,type=ro,oname="hello.bin",ooffs=16
seg	id=2,name="RODATA",start=0x008010,size=0x0004,addrsize=absolute,type=ro,oname="hello.bin",ooffs=32
span	id=0,seg=0,start=0,size=2
span	id=1,seg=0,start=2,size=3
span	id=2,seg=0,start=5,size=3
span	id=3,seg=0,start=8,size=3
span	id=4,seg=0,start=5,size=6
span	id=5,seg=0,start=11,size=3
span	id=6,seg=2,start=0,size=3,type=0
span	id=7,seg=1,start=0,size=2
span	id=8,seg=0,start=0,size=16
sym	id=0,name="start",addrsize=absolute,scope=0,def=0,ref=5,val=0x8000,seg=0,type=lab
sym	id=1,name="print",addrsize=absolute,scope=0,def=4,val=0x8005,seg=0,type=lab
sym	id=2,name="msg",addrsize=absolute,size=3,scope=0,def=6,val=0x8010,seg=2,type=lab
sym	id=3,name="ptr",addrsize=zeropage,size=2,scope=0,def=7,val=0x0,seg=1,type=lab
sym	id=4,name="OUT",addrsize=absolute,scope=0,def=1,val=0xF001,type=equ
type	id=0,val="800104"
`
