package cpu

import (
	"fmt"

	"github.com/ezrec/volve/memory"
)

// Disassemble returns the assembly text of the instruction at addr, and
// its length in bytes. An undefined opcode is rendered as a .byte
// directive of length 1.
func Disassemble(mem *memory.Memory, addr uint16) (text string, length uint16) {
	opcode := mem.Read(addr)
	insn, ok := Decode(opcode)
	if !ok {
		text = fmt.Sprintf(".byte $%02X", opcode)
		length = 1
		return
	}

	length = insn.Mode.Length()
	name := insn.Op.String()
	b1 := mem.Read(addr + 1)
	w1 := mem.ReadWord(addr + 1)

	switch insn.Mode {
	case MODE_IMPLIED, MODE_STACK:
		text = name
	case MODE_ACCUMULATOR:
		text = name + " A"
	case MODE_IMMEDIATE:
		text = fmt.Sprintf("%s #$%02X", name, b1)
	case MODE_ZERO_PAGE:
		text = fmt.Sprintf("%s $%02X", name, b1)
	case MODE_ZERO_PAGE_X:
		text = fmt.Sprintf("%s $%02X,X", name, b1)
	case MODE_ZERO_PAGE_Y:
		text = fmt.Sprintf("%s $%02X,Y", name, b1)
	case MODE_ABSOLUTE:
		text = fmt.Sprintf("%s $%04X", name, w1)
	case MODE_ABSOLUTE_X:
		text = fmt.Sprintf("%s $%04X,X", name, w1)
	case MODE_ABSOLUTE_Y:
		text = fmt.Sprintf("%s $%04X,Y", name, w1)
	case MODE_RELATIVE:
		text = fmt.Sprintf("%s $%04X", name, relative(addr+length, b1))
	case MODE_INDIRECT:
		text = fmt.Sprintf("%s ($%04X)", name, w1)
	case MODE_INDEXED_INDIRECT_X:
		text = fmt.Sprintf("%s ($%02X,X)", name, b1)
	case MODE_INDIRECT_INDEXED_Y:
		text = fmt.Sprintf("%s ($%02X),Y", name, b1)
	case MODE_ZERO_PAGE_INDIRECT:
		text = fmt.Sprintf("%s ($%02X)", name, b1)
	case MODE_ZERO_PAGE_RELATIVE:
		text = fmt.Sprintf("%s $%02X,$%04X", name, b1, relative(addr+length, mem.Read(addr+2)))
	}

	return
}
