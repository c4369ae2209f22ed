package cpu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgram_Debug(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Opcodes: []Opcode{
			{LineNo: 1, Address: 0x8000, Words: []string{"LDA", "#$10"}, Bytes: []uint8{0xa9, 0x10}},
			{LineNo: 2, Address: 0x8002, Words: []string{"STA", "$1234"}, Bytes: []uint8{0x8d, 0x34, 0x12}},
			{LineNo: 4, Address: 0x8005, Words: []string{"NOP"}, Bytes: []uint8{0xea}},
		},
	}

	dbg := prog.Debug(0x8000)
	assert.NotNil(dbg.Opcode)
	assert.Equal(1, dbg.Opcode.LineNo)
	assert.Equal(0, dbg.Index)

	dbg = prog.Debug(0x8004)
	assert.NotNil(dbg.Opcode)
	assert.Equal(2, dbg.Opcode.LineNo)
	assert.Equal(2, dbg.Index)

	dbg = prog.Debug(0x8005)
	assert.NotNil(dbg.Opcode)
	assert.Equal(4, dbg.Opcode.LineNo)
}

func TestProgram_Debug_NotFound(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Opcodes: []Opcode{
			{LineNo: 1, Address: 0x8000, Words: []string{"NOP"}, Bytes: []uint8{0xea}},
		},
	}

	dbg := prog.Debug(0x8001)
	assert.Nil(dbg.Opcode)
	assert.Equal(0, dbg.Index)
}

func TestProgram_Bytes(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Opcodes: []Opcode{
			{LineNo: 1, Address: 0x8000, Bytes: []uint8{0xa9, 0x10}},
			{LineNo: 2, Address: 0x9000, Bytes: []uint8{0xea}},
		},
	}

	var addrs []uint16
	var values []uint8
	for addr, value := range prog.Bytes() {
		addrs = append(addrs, addr)
		values = append(values, value)
	}
	assert.Equal([]uint16{0x8000, 0x8001, 0x9000}, addrs)
	assert.Equal([]uint8{0xa9, 0x10, 0xea}, values)
}

func TestProgram_Rom(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	prog, err := asm.Parse(strings.NewReader(strings.Join([]string{
		"start: LDA #$01",
		"       JMP start",
		"  .org VECTOR_RESET",
		"  .word start",
	}, "\n")))
	assert.NoError(err)

	rom, err := prog.Rom()
	assert.NoError(err)
	assert.Equal(0x8000, len(rom))
	assert.Equal([]byte{0xa9, 0x01, 0x4c, 0x00, 0x80}, rom[:5])
	assert.Equal([]byte{0x00, 0x80}, rom[0x7ffc:0x7ffe])
}

func TestProgram_Rom_Errors(t *testing.T) {
	assert := assert.New(t)

	_, err := (&Program{}).Rom()
	assert.ErrorIs(err, ErrProgramEmpty)

	prog := &Program{
		Opcodes: []Opcode{
			{LineNo: 3, Address: 0x0200, Words: []string{"NOP"}, Bytes: []uint8{0xea}},
		},
	}
	_, err = prog.Rom()
	assert.ErrorIs(err, ErrProgramOutside)

	var syntax ErrSyntax
	if assert.ErrorAs(err, &syntax) {
		assert.Equal(3, syntax.LineNo)
	}
}
