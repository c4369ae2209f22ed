// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/volve/memory"
)

// State is the execution state of the CPU.
type State int

const (
	STATE_RESET   = State(iota) // reset
	STATE_RUNNING               // running
	STATE_HALTED                // halted
)

func (st State) String() string {
	switch st {
	case STATE_RESET:
		return "reset"
	case STATE_RUNNING:
		return "running"
	case STATE_HALTED:
		return "halted"
	}
	return fmt.Sprintf("State(%d)", int(st))
}

var _cpu_defines = map[string]string{
	"FLAG_C": fmt.Sprintf("%#x", uint8(FLAG_CARRY)),
	"FLAG_Z": fmt.Sprintf("%#x", uint8(FLAG_ZERO)),
	"FLAG_I": fmt.Sprintf("%#x", uint8(FLAG_INTERRUPT)),
	"FLAG_D": fmt.Sprintf("%#x", uint8(FLAG_DECIMAL)),
	"FLAG_B": fmt.Sprintf("%#x", uint8(FLAG_BREAK)),
	"FLAG_V": fmt.Sprintf("%#x", uint8(FLAG_OVERFLOW)),
	"FLAG_N": fmt.Sprintf("%#x", uint8(FLAG_NEGATIVE)),
}

// Cpu is the simulation context of the processor and its address space.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	// FixIndirectJump makes JMP (abs) carry into the high byte of the
	// pointer, instead of wrapping within the pointer's page.
	FixIndirectJump bool

	Registers
	Memory memory.Memory // Flat 64KiB address space.

	State State // Execution state.
	Ticks int   // Instructions executed since reset.
}

// NewCpu creates a new CPU with zeroed memory and registers in their
// construction state.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{
		Registers: NewRegisters(),
	}

	return
}

// Defines for the cpu.
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	regs := []string{"pc", "a", "x", "y", "s", "p", "top", "state"}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "pc":
			strval = fmt.Sprintf("%04X", cpu.PC)
		case "a":
			strval = fmt.Sprintf("%02X", cpu.A)
		case "x":
			strval = fmt.Sprintf("%02X", cpu.X)
		case "y":
			strval = fmt.Sprintf("%02X", cpu.Y)
		case "s":
			strval = fmt.Sprintf("%02X", cpu.S)
		case "p":
			strval = fmt.Sprintf("%02X %v", cpu.Status(), statusFlags(cpu.Status()))
		case "top":
			val, ok := cpu.StackTop()
			if ok {
				strval = fmt.Sprintf("%02X", val)
			} else {
				strval = "--"
			}
		case "state":
			strval = cpu.State.String()
		}
		text += fmt.Sprintf("% 5s: %v\n", reg, strval)
	}

	return
}

// statusFlags renders the status register, most significant bit first.
func statusFlags(p uint8) string {
	const names = "NV-BDIZC"
	out := []byte("........")
	for n := range 8 {
		if p&(0x80>>n) != 0 {
			out[n] = names[n]
		}
	}
	return string(out)
}

// Reset loads PC from the reset vector. Registers and memory are not
// otherwise changed.
func (cpu *Cpu) Reset() {
	cpu.PC = cpu.Memory.ReadWord(memory.VECTOR_RESET)
	cpu.State = STATE_RUNNING
	cpu.Ticks = 0

	if cpu.Verbose {
		log.Printf("cpu: reset, pc %04x", cpu.PC)
	}
}

// Step executes a single instruction at PC. If the opcode byte is not
// defined, the CPU halts with PC at the offending byte, and remains
// halted until the next Reset.
//
// A Step before any Reset executes from the current PC.
func (cpu *Cpu) Step() (halted bool) {
	if cpu.State == STATE_HALTED {
		return true
	}
	cpu.State = STATE_RUNNING

	opcode := cpu.Memory.Read(cpu.PC)
	insn, ok := Decode(opcode)
	if !ok {
		if cpu.Verbose {
			log.Printf("cpu: %04x: undefined opcode %02x, halted", cpu.PC, opcode)
		}
		cpu.State = STATE_HALTED
		return true
	}

	if cpu.Verbose {
		text, _ := Disassemble(&cpu.Memory, cpu.PC)
		log.Printf("cpu: %04x: %v", cpu.PC, text)
	}

	cpu.execute(insn)
	cpu.Ticks++

	return false
}

// Run resets the CPU, then steps until it halts.
func (cpu *Cpu) Run() {
	cpu.Reset()
	for !cpu.Step() {
	}
}

// Halted returns true if the CPU has stopped on an undefined opcode.
func (cpu *Cpu) Halted() bool {
	return cpu.State == STATE_HALTED
}

// Irq requests a maskable interrupt. The request is ignored, and taken
// is false, while the interrupt disable flag is set.
func (cpu *Cpu) Irq() (taken bool) {
	if cpu.Flag(FLAG_INTERRUPT) {
		return
	}

	cpu.interrupt(memory.VECTOR_IRQ)
	taken = true
	return
}

// Nmi signals a non-maskable interrupt.
func (cpu *Cpu) Nmi() {
	cpu.interrupt(memory.VECTOR_NMI)
}

// interrupt pushes PC and status with Break clear, then enters the
// handler at vector. Interrupts wake a halted CPU.
func (cpu *Cpu) interrupt(vector uint16) {
	if cpu.Verbose {
		log.Printf("cpu: %04x: interrupt via %04x", cpu.PC, vector)
	}

	cpu.pushWord(cpu.PC)
	cpu.push(cpu.Status() &^ uint8(FLAG_BREAK))
	cpu.SetFlag(FLAG_INTERRUPT, true)
	cpu.PC = cpu.Memory.ReadWord(vector)
	cpu.State = STATE_RUNNING
}
