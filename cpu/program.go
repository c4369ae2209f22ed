package cpu

import (
	"iter"

	"github.com/ezrec/volve/memory"
)

// LinkKind is how an unresolved label patches an opcode.
type LinkKind int

const (
	LINK_BYTE     = LinkKind(iota) // Zero page address, or low byte.
	LINK_WORD                      // Little-endian absolute address.
	LINK_RELATIVE                  // Signed displacement from the next opcode.
)

// Link is a forward reference to a label, resolved after parsing.
type Link struct {
	Label  string   // Label to resolve.
	Offset int      // Offset into the opcode bytes to patch.
	Kind   LinkKind // Patch encoding.
}

// Opcode is a single assembled line.
type Opcode struct {
	LineNo  int      // Source line number.
	Address uint16   // Address of the first byte.
	Words   []string // Source words, after label removal.
	Bytes   []uint8  // Assembled bytes.
	Links   []Link   // Unresolved label references.
}

// Program is an assembled program.
type Program struct {
	Opcodes []Opcode
}

// Debug associates an address with its source opcode.
type Debug struct {
	*Opcode
	Index int // Offset of the address within the opcode bytes.
}

// Debug returns the opcode containing addr, if any.
func (prog *Program) Debug(addr uint16) (dbg Debug) {
	for n, op := range prog.Opcodes {
		offset := int(addr) - int(op.Address)
		if offset >= 0 && offset < len(op.Bytes) {
			dbg = Debug{
				Opcode: &prog.Opcodes[n],
				Index:  offset,
			}
			break
		}
	}

	return
}

// Bytes yields every assembled byte, with its address.
func (prog *Program) Bytes() iter.Seq2[uint16, uint8] {
	return func(yield func(addr uint16, value uint8) bool) {
		for _, op := range prog.Opcodes {
			for n, value := range op.Bytes {
				if !yield(op.Address+uint16(n), value) {
					return
				}
			}
		}
	}
}

// Rom returns the ROM image of the program, suitable for loading at
// memory.ROM_LOW. Unassembled locations are zero.
func (prog *Program) Rom() (rom []byte, err error) {
	var used bool
	for _, op := range prog.Opcodes {
		if len(op.Bytes) == 0 {
			continue
		}
		used = true
		if op.Address < memory.ROM_LOW || int(op.Address)+len(op.Bytes) > memory.SIZE {
			err = ErrSyntax{LineNo: op.LineNo, Line: joinWords(op.Words), Err: ErrProgramOutside}
			return
		}
	}

	if !used {
		err = ErrProgramEmpty
		return
	}

	rom = make([]byte, memory.ROM_SIZE)
	for addr, value := range prog.Bytes() {
		rom[addr-memory.ROM_LOW] = value
	}

	return
}
