package emulator

import (
	"context"
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/volve/cpu"
	"github.com/ezrec/volve/loader"
	"github.com/ezrec/volve/memory"
)

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	assert.False(emu.Verbose)
	assert.NotNil(emu.Cpu)
	assert.NotNil(emu.Program)
	assert.Equal(uint8(0xff), emu.Cpu.S)
	assert.Equal(0, emu.LineNo())

	defines := map[string]string{}
	for k, v := range emu.Defines() {
		defines[k] = v
	}
	assert.Equal("0x8000", defines["MAX_IMAGE_SIZE"])
	assert.Equal("0xfffc", defines["VECTOR_RESET"])
	assert.Equal("0x40", defines["FLAG_V"])
}

// doAssemble assembles and loads a program, then resets to it.
func doAssemble(t *testing.T, emu *Emulator, program []string) {
	t.Helper()

	err := emu.Assemble(strings.NewReader(strings.Join(program, "\n")))
	if err != nil {
		t.Fatal(err)
	}
	emu.Reset()
}

func doRunSingle(t *testing.T, emu *Emulator, program []string) {
	assert := assert.New(t)

	doAssemble(t, emu, program)

	for _, op := range emu.Program.Opcodes {
		if emu.Cpu.PC != op.Address {
			continue
		}
		here := program[op.LineNo-1]
		assert.Equal(op.LineNo, emu.LineNo(), here)
		done, err := emu.Tick()
		if err != nil {
			t.Log(emu.Cpu.String())
			t.Fatalf("%v", err)
		}
		assert.False(done, here)
	}
}

func TestEmulatorRun(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	program := []string{
		"        .equ OUT $0200",
		"start:  LDX #$00",
		"loop:   LDA message,X",
		"        BEQ done",
		"        STA OUT,X",
		"        INX",
		"        BNE loop",
		"done:   .byte $02 ; halt",
		"message: .byte 'v', 'o', 'l', 'v', 'e', 0",
		"        .org VECTOR_RESET",
		"        .word start",
	}

	doAssemble(t, emu, program)

	err := emu.Run(context.Background(), 0)
	assert.NoError(err)
	assert.True(emu.Cpu.Halted())
	assert.Equal("volve", string(emu.Cpu.Memory.Slice(0x0200, 5)))
	assert.Equal(8, emu.LineNo())

	// Ticking a halted emulator is done.
	done, err := emu.Tick()
	assert.NoError(err)
	assert.True(done)
}

func TestEmulatorStraightLine(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	program := []string{
		"start: CLC",
		"       LDA #$(0x10 + 0x20)",
		"       ADC #$12",
		"       STA $10",
		"       SED",
		"       LDA #$19",
		"       ADC #$01",
		"       CLD",
		"       TAY",
		"       .org VECTOR_RESET",
		"       .word start",
	}

	doRunSingle(t, emu, program)

	assert.Equal(uint8(0x42), emu.Cpu.Memory.Read(0x10))
	assert.Equal(uint8(0x20), emu.Cpu.Y)
	assert.Equal(9, emu.Ticks())
}

func TestEmulatorStepLimit(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	doAssemble(t, emu, []string{
		"start: JMP start",
		"       .org VECTOR_RESET",
		"       .word start",
	})

	err := emu.Run(context.Background(), 100)
	assert.ErrorIs(err, ErrStepLimit)
	assert.Equal(100, emu.Ticks())

	var runtime *ErrRuntime
	if assert.True(errors.As(err, &runtime)) {
		assert.Equal(uint16(0x8000), runtime.PC)
		assert.Equal(1, runtime.LineNo)
	}
}

func TestEmulatorContext(t *testing.T) {
	assert := assert.New(t)

	// Zeroed memory loops through BRK forever.
	emu := NewEmulator()
	emu.Reset()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := emu.Run(ctx, 0)
	assert.ErrorIs(err, context.Canceled)
	assert.Equal(0, emu.Ticks())
}

func TestEmulatorInterrupts(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	doAssemble(t, emu, []string{
		"start:  LDX #$00",
		"idle:   INX",
		"        CPX #$03",
		"        BNE idle",
		"        CLI",
		"spin:   JMP spin",
		"irq:    LDA #$aa",
		"        .byte $02",
		"nmi:    LDY #$55",
		"        RTI",
		"        .org VECTOR_NMI",
		"        .word nmi, start, irq",
	})

	// Masked until CLI.
	emu.RequestIrq()
	for range 4 {
		done, err := emu.Tick()
		assert.NoError(err)
		assert.False(done)
	}
	assert.Equal(uint8(0x01), emu.Cpu.X)
	assert.Equal(uint8(0x00), emu.Cpu.A)

	// NMI is taken immediately.
	emu.RequestNmi()
	for range 2 {
		_, err := emu.Tick()
		assert.NoError(err)
	}
	assert.Equal(uint8(0x55), emu.Cpu.Y)

	err := emu.Run(context.Background(), 100)
	assert.NoError(err)
	assert.Equal(uint8(0xaa), emu.Cpu.A)
	assert.Equal(8, emu.LineNo())
}

func TestEmulatorTrace(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	doAssemble(t, emu, []string{
		"start: NOP",
		"       LDA #$01",
		"       .byte $02",
		"       .org VECTOR_RESET",
		"       .word start",
	})

	var trace []string
	emu.Trace = func(pc uint16, opcode uint8, text string) error {
		trace = append(trace, text)
		return nil
	}
	assert.NoError(emu.Run(context.Background(), 0))
	assert.Equal([]string{"NOP", "LDA #$01", ".byte $02"}, trace)

	failed := errors.New("trace failed")
	emu.Reset()
	emu.Trace = func(pc uint16, opcode uint8, text string) error {
		if opcode == 0xa9 {
			return failed
		}
		return nil
	}
	err := emu.Run(context.Background(), 0)
	assert.ErrorIs(err, failed)
	var runtime *ErrRuntime
	if assert.True(errors.As(err, &runtime)) {
		assert.Equal(uint16(0x8001), runtime.PC)
		assert.Equal(2, runtime.LineNo)
	}
}

func TestEmulatorLoad(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	err := emu.Load(make([]byte, loader.MAX_IMAGE_SIZE+1))
	assert.ErrorIs(err, loader.ErrImageTooLarge)

	fsys := fstest.MapFS{
		"image.bin": &fstest.MapFile{Data: []byte{0xa9, 0x07, 0x02}},
	}
	err = emu.LoadFile(fsys, "image.bin")
	assert.NoError(err)
	emu.Cpu.Memory.WriteWord(memory.VECTOR_RESET, memory.ROM_LOW)
	emu.Reset()
	assert.NoError(emu.Run(context.Background(), 10))
	assert.Equal(uint8(0x07), emu.Cpu.A)
	assert.Equal(uint16(0x8002), emu.Cpu.PC)
	assert.Equal(0, emu.LineNo())

	err = emu.LoadProgram(&cpu.Program{})
	assert.NoError(err)
}

func TestEmulatorAssembleError(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	err := emu.Assemble(strings.NewReader("NOP\nBOGUS"))
	var syntax cpu.ErrSyntax
	if assert.True(errors.As(err, &syntax)) {
		assert.Equal(2, syntax.LineNo)
	}
	assert.ErrorIs(err, cpu.ErrInstructionInvalid)
}

func TestEmulatorAssembleEndOfMemory(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	err := emu.Assemble(strings.NewReader(".org $fffe\nLDA $1234\n"))
	assert.ErrorIs(err, cpu.ErrAddressRange)

	// Nothing is written, and nothing wraps into the zero page.
	assert.Equal(uint8(0), emu.Cpu.Memory.Read(0xfffe))
	assert.Equal(uint8(0), emu.Cpu.Memory.Read(0x0000))
	assert.Equal(uint8(0), emu.Cpu.Memory.Read(0x0001))

	err = emu.Assemble(strings.NewReader(".org $fffd\nLDA $1234\n"))
	assert.NoError(err)
	assert.Equal([]uint8{0xad, 0x34, 0x12}, emu.Cpu.Memory.Slice(0xfffd, 3))
	assert.Equal(uint8(0), emu.Cpu.Memory.Read(0x0000))
}
