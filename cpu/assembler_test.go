package cpu

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func assemble(t *testing.T, lines ...string) (prog *Program) {
	t.Helper()

	asm := &Assembler{}
	prog, err := asm.Parse(strings.NewReader(strings.Join(lines, "\n")))
	if err != nil {
		t.Fatal(err)
	}
	return
}

// flatten returns all of the program bytes, in order.
func flatten(prog *Program) (bytes []uint8) {
	for _, value := range prog.Bytes() {
		bytes = append(bytes, value)
	}
	return
}

func TestAssembler(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	prog, err := asm.Parse(strings.NewReader(""))
	assert.NoError(err)
	assert.Equal(0, len(prog.Opcodes))

	assert.Equal("0", asm.Equate["LINENO"])
	assert.Equal("0xfffc", asm.Equate["VECTOR_RESET"])
	assert.Equal("0x8000", asm.Equate["ROM"])
	assert.Equal("0x100", asm.Equate["STACK"])
	assert.Equal("0x1", asm.Equate["FLAG_C"])
}

func TestAssemblerModes(t *testing.T) {
	assert := assert.New(t)

	table := [...]struct {
		line  string
		bytes []uint8
	}{
		{"nop", []uint8{0xea}},
		{"BRK", []uint8{0x00}},
		{"asl", []uint8{0x0a}},
		{"ASL a", []uint8{0x0a}},
		{"LDA #$10", []uint8{0xa9, 0x10}},
		{"LDA #-1", []uint8{0xa9, 0xff}},
		{"LDA #%1010", []uint8{0xa9, 0x0a}},
		{"LDA #'A'", []uint8{0xa9, 0x41}},
		{"LDA #';'", []uint8{0xa9, 0x3b}},
		{"LDA #0x7f", []uint8{0xa9, 0x7f}},
		{"LDA #<$1234", []uint8{0xa9, 0x34}},
		{"LDA #>$1234", []uint8{0xa9, 0x12}},
		{"LDA $10", []uint8{0xa5, 0x10}},
		{"LDA $10,x", []uint8{0xb5, 0x10}},
		{"LDX $10,Y", []uint8{0xb6, 0x10}},
		{"LDA $1234", []uint8{0xad, 0x34, 0x12}},
		{"LDA $1234,X", []uint8{0xbd, 0x34, 0x12}},
		{"LDA $10,Y", []uint8{0xb9, 0x10, 0x00}}, // No LDA zp,Y
		{"JMP $10", []uint8{0x4c, 0x10, 0x00}},   // No JMP zp
		{"JMP ($1234)", []uint8{0x6c, 0x34, 0x12}},
		{"LDA ($10,X)", []uint8{0xa1, 0x10}},
		{"LDA ($10),Y", []uint8{0xb1, 0x10}},
		{"LDA ( $10 ) , Y", []uint8{0xb1, 0x10}},
		{"LDA ($10)", []uint8{0xb2, 0x10}},
		{"TSB $1234", []uint8{0x0c, 0x34, 0x12}},
		{"RMB5 $20", []uint8{0x57, 0x20}},
		{"BBS7 $20,$8000", []uint8{0xff, 0x20, 0xfd}},
		{"BNE $8000", []uint8{0xd0, 0xfe}},
		{"INC", []uint8{0x1a}},
		{"SAX $10,Y", []uint8{0x97, 0x10}},
		{"lax ($10),y", []uint8{0xb3, 0x10}},
		{"LDA #$(0x10 * 2 + 1)", []uint8{0xa9, 0x21}},
		{".byte 1, 2, $ff", []uint8{0x01, 0x02, 0xff}},
		{".word $1234, 5", []uint8{0x34, 0x12, 0x05, 0x00}},
	}

	for _, entry := range table {
		prog := assemble(t, entry.line)
		assert.Equal(entry.bytes, flatten(prog), entry.line)
	}
}

func TestAssemblerLabels(t *testing.T) {
	assert := assert.New(t)

	prog := assemble(t,
		"        .equ PTR $10",
		"        .org $8000",
		"start:  LDX #$00",
		"loop:   LDA message,X ; forward reference",
		"        BEQ done",
		"        STA (PTR),Y",
		"        INX",
		"        BNE loop",
		"done:   BBR0 PTR,start",
		"        JMP (vector)",
		"message: .byte 'h', 'i', 0",
		"vector: .word start",
		"        .org VECTOR_RESET",
		"        .word start, start",
	)

	expected := []uint8{
		// LDX #$00
		0xa2, 0x00,
		// LDA message,X
		0xbd, 0x12, 0x80,
		// BEQ done
		0xf0, 0x05,
		// STA (PTR),Y
		0x91, 0x10,
		// INX
		0xe8,
		// BNE loop
		0xd0, 0xf6,
		// BBR0 PTR,start
		0x0f, 0x10, 0xf1,
		// JMP (vector)
		0x6c, 0x15, 0x80,
		// message
		0x68, 0x69, 0x00,
		// vector
		0x00, 0x80,
		// reset and irq vectors
		0x00, 0x80, 0x00, 0x80,
	}
	assert.Equal(expected, flatten(prog))

	assert.Equal(uint16(0xfffc), prog.Opcodes[len(prog.Opcodes)-1].Address)

	dbg := prog.Debug(0x800a)
	if assert.NotNil(dbg.Opcode) {
		assert.Equal(8, dbg.LineNo)
		assert.Equal([]string{"BNE", "loop"}, dbg.Words)
	}
}

func TestAssemblerPredefine(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	asm.Predefine("VALUE", "$42")
	prog, err := asm.Parse(strings.NewReader("LDA #VALUE\nLDA #$(VALUE + 1)"))
	assert.NoError(err)
	assert.Equal([]uint8{0xa9, 0x42, 0xa9, 0x43}, flatten(prog))
}

func TestAssemblerErrors(t *testing.T) {
	assert := assert.New(t)

	table := [...]struct {
		lines  []string
		lineno int
		err    error
	}{
		{[]string{"FOO"}, 1, ErrInstructionInvalid},
		{[]string{"NOP", ".bogus"}, 2, ErrDirectiveInvalid},
		{[]string{".equ X"}, 1, ErrEquateSyntax},
		{[]string{".equ X 1", ".equ X 2"}, 2, ErrEquateDuplicate},
		{[]string{"a: NOP", "a: NOP"}, 2, ErrLabelDuplicate},
		{[]string{".org later", "later:"}, 1, ErrOrgSyntax},
		{[]string{".byte"}, 1, ErrDataSyntax},
		{[]string{".byte 256"}, 1, ErrValueRange},
		{[]string{"NOP #1"}, 1, ErrModeInvalid},
		{[]string{"TAX $10"}, 1, ErrModeInvalid},
		{[]string{"STA #1"}, 1, ErrModeInvalid},
		{[]string{"STX $1234,Y"}, 1, ErrModeInvalid},
		{[]string{"LDA ($1234)"}, 1, ErrModeInvalid},
		{[]string{"LDA $10,$20"}, 1, ErrModeInvalid},
		{[]string{"LDA #$100"}, 1, ErrValueRange},
		{[]string{"BEQ $9000"}, 1, ErrBranchRange},
		{[]string{"BEQ far", ".org $9000", "far:"}, 1, ErrBranchRange},
		{[]string{"LDA #$(1 +)"}, 1, ErrParseExpression("1 +")},
		{[]string{"LDA #$zz"}, 1, ErrParseNumber("$zz")},
		{[]string{"BBR0 $10"}, 1, ErrBitMissing},
		{[]string{"BBS7"}, 1, ErrBitMissing},
		{[]string{".org $fffe", "LDA $1234"}, 2, ErrAddressRange},
		{[]string{".org $ffff", ".word $1234"}, 2, ErrAddressRange},
		{[]string{".org $fffe", ".word $1234", "NOP"}, 3, ErrAddressRange},
	}

	for _, entry := range table {
		asm := &Assembler{}
		_, err := asm.Parse(strings.NewReader(strings.Join(entry.lines, "\n")))
		if !assert.Error(err, entry.lines) {
			continue
		}
		assert.ErrorIs(err, entry.err, entry.lines)

		var syntax ErrSyntax
		if assert.True(errors.As(err, &syntax), entry.lines) {
			assert.Equal(entry.lineno, syntax.LineNo, entry.lines)
		}
	}

	asm := &Assembler{}
	_, err := asm.Parse(strings.NewReader("JMP nowhere"))
	assert.ErrorIs(err, ErrLabelMissing("nowhere"))
}

func TestAssemblerEndOfMemory(t *testing.T) {
	assert := assert.New(t)

	prog := assemble(t,
		"        .org $ffff",
		"        NOP",
		"        .org $fffe",
		"        .word $1234",
		"        .org $0000",
		"        NOP",
	)

	assert.Equal([]uint8{0xea, 0x34, 0x12, 0xea}, flatten(prog))
	assert.Equal(uint16(0xffff), prog.Opcodes[0].Address)
	assert.Equal(uint16(0xfffe), prog.Opcodes[1].Address)
	assert.Equal(uint16(0x0000), prog.Opcodes[2].Address)
}
