// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/volve/cpu"
	"github.com/ezrec/volve/internal"
	"github.com/ezrec/volve/loader"
)

var _emulator_defines = map[string]string{
	"MAX_IMAGE_SIZE": fmt.Sprintf("%#x", loader.MAX_IMAGE_SIZE),
}

// TraceFunc observes each instruction before it executes. A returned
// error stops execution.
type TraceFunc func(pc uint16, opcode uint8, text string) error

// Emulator state. CPU + memory + program listing.
//
// An Emulator is not safe for concurrent use.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently loaded program listing.

	Trace TraceFunc // If set, called before each instruction.

	irq bool // Latched interrupt request.
	nmi bool // Latched non-maskable interrupt.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(),
		Program: &cpu.Program{},
	}

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.Concat2(maps.All(_emulator_defines),
		emu.Cpu.Memory.Defines(),
		emu.Cpu.Defines(),
	)
}

// Load places a binary image in ROM. The program listing is cleared.
func (emu *Emulator) Load(image []byte) (err error) {
	err = loader.Upload(&emu.Cpu.Memory, image)
	if err != nil {
		return
	}

	emu.Program = &cpu.Program{}

	if emu.Verbose {
		log.Printf("emulator: loaded %d byte image", len(image))
	}

	return
}

// LoadFile reads and loads a binary image from a file system.
func (emu *Emulator) LoadFile(fsys fs.FS, name string) (err error) {
	image, err := loader.ReadFile(fsys, name)
	if err != nil {
		return
	}

	return emu.Load(image)
}

// LoadProgram writes an assembled program into memory at its assembled
// addresses, and keeps it as the listing.
func (emu *Emulator) LoadProgram(prog *cpu.Program) (err error) {
	for addr, value := range prog.Bytes() {
		emu.Cpu.Memory.Write(addr, value)
	}

	emu.Program = prog

	return
}

// Assemble parses assembly source, and loads the program.
func (emu *Emulator) Assemble(input io.Reader) (err error) {
	asm := &cpu.Assembler{Verbose: emu.Verbose}
	for equ, value := range _emulator_defines {
		asm.Predefine(equ, value)
	}

	prog, err := asm.Parse(input)
	if err != nil {
		return
	}

	return emu.LoadProgram(prog)
}

// Reset the CPU from the reset vector, dropping pending interrupts.
func (emu *Emulator) Reset() {
	emu.irq = false
	emu.nmi = false

	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()
}

// RequestIrq latches a maskable interrupt. It is delivered before the
// next instruction once interrupts are enabled.
func (emu *Emulator) RequestIrq() {
	emu.irq = true
}

// RequestNmi latches a non-maskable interrupt, delivered before the next
// instruction.
func (emu *Emulator) RequestNmi() {
	emu.nmi = true
}

// Ticks returns the total instructions executed since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// LineNo returns the source line number of the opcode at PC, or zero.
func (emu *Emulator) LineNo() int {
	dbg := emu.Program.Debug(emu.Cpu.PC)
	if dbg.Opcode == nil {
		return 0
	}

	return dbg.LineNo
}

// deliver takes latched interrupts.
func (emu *Emulator) deliver() {
	if emu.nmi {
		emu.nmi = false
		emu.Cpu.Nmi()
	}

	if emu.irq && emu.Cpu.Irq() {
		emu.irq = false
	}
}

// Tick performs a single instruction of the emulator. done is set when
// the CPU has halted.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	emu.deliver()

	if emu.Cpu.Halted() {
		done = true
		return
	}

	if emu.Trace != nil {
		pc := emu.Cpu.PC
		text, _ := cpu.Disassemble(&emu.Cpu.Memory, pc)
		err = emu.Trace(pc, emu.Cpu.Memory.Read(pc), text)
		if err != nil {
			err = &ErrRuntime{PC: pc, LineNo: emu.LineNo(), Err: err}
			return
		}
	}

	done = emu.Cpu.Step()

	return
}

// Run ticks until the CPU halts, the context is done, or limit
// instructions have executed. A limit of zero or less is unbounded.
func (emu *Emulator) Run(ctx context.Context, limit int) (err error) {
	defer func() {
		if err != nil {
			if _, ok := err.(*ErrRuntime); !ok {
				err = &ErrRuntime{PC: emu.Cpu.PC, LineNo: emu.LineNo(), Err: err}
			}
		}
	}()

	for n := 0; limit <= 0 || n < limit; n++ {
		err = ctx.Err()
		if err != nil {
			return
		}

		var done bool
		done, err = emu.Tick()
		if err != nil || done {
			return
		}
	}

	err = ErrStepLimit
	return
}
