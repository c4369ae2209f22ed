// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
)

// operand is the resolved operand of the instruction at PC.
type operand struct {
	mode    Mode
	address uint16 // Effective address. For immediates, the operand byte.
	target  uint16 // Branch destination for the relative modes.
	length  uint16 // Instruction length, including the opcode.
}

// relative returns the destination of a signed displacement from the
// address following the instruction.
func relative(next uint16, displacement uint8) uint16 {
	return next + uint16(int16(int8(displacement)))
}

// resolve computes the operand of the instruction at PC. PC is not changed.
func (cpu *Cpu) resolve(mode Mode) (op operand) {
	mem := &cpu.Memory
	pc := cpu.PC

	op.mode = mode
	op.length = mode.Length()

	switch mode {
	case MODE_IMPLIED, MODE_ACCUMULATOR, MODE_STACK:
		// No operand.
	case MODE_IMMEDIATE:
		op.address = pc + 1
	case MODE_ZERO_PAGE:
		op.address = uint16(mem.Read(pc + 1))
	case MODE_ZERO_PAGE_X:
		op.address = uint16(mem.Read(pc+1) + cpu.X)
	case MODE_ZERO_PAGE_Y:
		op.address = uint16(mem.Read(pc+1) + cpu.Y)
	case MODE_ABSOLUTE:
		op.address = mem.ReadWord(pc + 1)
	case MODE_ABSOLUTE_X:
		op.address = mem.ReadWord(pc+1) + uint16(cpu.X)
	case MODE_ABSOLUTE_Y:
		op.address = mem.ReadWord(pc+1) + uint16(cpu.Y)
	case MODE_RELATIVE:
		op.target = relative(pc+op.length, mem.Read(pc+1))
	case MODE_INDIRECT:
		ptr := mem.ReadWord(pc + 1)
		if cpu.FixIndirectJump {
			op.address = mem.ReadWord(ptr)
		} else {
			op.address = mem.ReadWordPageWrap(ptr)
		}
	case MODE_INDEXED_INDIRECT_X:
		op.address = mem.ReadWordZeroPage(mem.Read(pc+1) + cpu.X)
	case MODE_INDIRECT_INDEXED_Y:
		op.address = mem.ReadWordZeroPage(mem.Read(pc+1)) + uint16(cpu.Y)
	case MODE_ZERO_PAGE_INDIRECT:
		op.address = mem.ReadWordZeroPage(mem.Read(pc + 1))
	case MODE_ZERO_PAGE_RELATIVE:
		op.address = uint16(mem.Read(pc + 1))
		op.target = relative(pc+op.length, mem.Read(pc+2))
	default:
		panic(fmt.Sprintf("unknown addressing mode %v", mode))
	}

	return
}

// read returns the operand value.
func (op operand) read(cpu *Cpu) uint8 {
	switch op.mode {
	case MODE_ACCUMULATOR:
		return cpu.A
	case MODE_IMPLIED, MODE_STACK, MODE_RELATIVE:
		panic("attempted to read an operand with no value")
	}
	return cpu.Memory.Read(op.address)
}

// write stores the operand value.
func (op operand) write(cpu *Cpu, value uint8) {
	switch op.mode {
	case MODE_ACCUMULATOR:
		cpu.A = value
		return
	case MODE_IMPLIED, MODE_STACK, MODE_RELATIVE, MODE_IMMEDIATE:
		panic("attempted to write an operand with no location")
	}
	cpu.Memory.Write(op.address, value)
}

// modify performs a read-modify-write of the operand, returning the
// written value.
func (op operand) modify(cpu *Cpu, fn func(value uint8) uint8) (value uint8) {
	value = fn(op.read(cpu))
	op.write(cpu, value)
	return
}
