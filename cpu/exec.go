package cpu

import (
	"fmt"

	"github.com/ezrec/volve/memory"
)

// branchTaken evaluates the condition of a relative branch.
func (cpu *Cpu) branchTaken(op Op) bool {
	switch op {
	case OP_BCC:
		return !cpu.Flag(FLAG_CARRY)
	case OP_BCS:
		return cpu.Flag(FLAG_CARRY)
	case OP_BNE:
		return !cpu.Flag(FLAG_ZERO)
	case OP_BEQ:
		return cpu.Flag(FLAG_ZERO)
	case OP_BPL:
		return !cpu.Flag(FLAG_NEGATIVE)
	case OP_BMI:
		return cpu.Flag(FLAG_NEGATIVE)
	case OP_BVC:
		return !cpu.Flag(FLAG_OVERFLOW)
	case OP_BVS:
		return cpu.Flag(FLAG_OVERFLOW)
	}
	panic(fmt.Sprintf("%v is not a branch", op))
}

// execute performs a decoded instruction at PC, and advances PC to the
// next instruction or the control transfer destination.
func (cpu *Cpu) execute(insn Instruction) {
	op := cpu.resolve(insn.Mode)
	next := cpu.PC + op.length

	switch insn.Op {
	// Arithmetic and logic.
	case OP_ADC:
		cpu.A = cpu.adc(cpu.A, op.read(cpu))
	case OP_SBC:
		cpu.A = cpu.sbc(cpu.A, op.read(cpu))
	case OP_AND:
		cpu.A &= op.read(cpu)
		cpu.setNZ(cpu.A)
	case OP_ORA:
		cpu.A |= op.read(cpu)
		cpu.setNZ(cpu.A)
	case OP_EOR:
		cpu.A ^= op.read(cpu)
		cpu.setNZ(cpu.A)
	case OP_CMP:
		cpu.compare(cpu.A, op.read(cpu))
	case OP_CPX:
		cpu.compare(cpu.X, op.read(cpu))
	case OP_CPY:
		cpu.compare(cpu.Y, op.read(cpu))
	case OP_BIT:
		value := op.read(cpu)
		cpu.SetFlag(FLAG_ZERO, value&cpu.A == 0)
		cpu.SetFlag(FLAG_NEGATIVE, value&0x80 != 0)
		cpu.SetFlag(FLAG_OVERFLOW, value&0x40 != 0)

	// Shifts, rotates, and read-modify-write.
	case OP_ASL:
		op.modify(cpu, cpu.asl)
	case OP_LSR:
		op.modify(cpu, cpu.lsr)
	case OP_ROL:
		op.modify(cpu, cpu.rol)
	case OP_ROR:
		op.modify(cpu, cpu.ror)
	case OP_INC:
		op.modify(cpu, cpu.inc)
	case OP_DEC:
		op.modify(cpu, cpu.dec)
	case OP_INX:
		cpu.X = cpu.inc(cpu.X)
	case OP_INY:
		cpu.Y = cpu.inc(cpu.Y)
	case OP_DEX:
		cpu.X = cpu.dec(cpu.X)
	case OP_DEY:
		cpu.Y = cpu.dec(cpu.Y)

	// Loads, stores, and transfers.
	case OP_LDA:
		cpu.A = op.read(cpu)
		cpu.setNZ(cpu.A)
	case OP_LDX:
		cpu.X = op.read(cpu)
		cpu.setNZ(cpu.X)
	case OP_LDY:
		cpu.Y = op.read(cpu)
		cpu.setNZ(cpu.Y)
	case OP_STA:
		op.write(cpu, cpu.A)
	case OP_STX:
		op.write(cpu, cpu.X)
	case OP_STY:
		op.write(cpu, cpu.Y)
	case OP_TAX:
		cpu.X = cpu.A
		cpu.setNZ(cpu.X)
	case OP_TAY:
		cpu.Y = cpu.A
		cpu.setNZ(cpu.Y)
	case OP_TXA:
		cpu.A = cpu.X
		cpu.setNZ(cpu.A)
	case OP_TYA:
		cpu.A = cpu.Y
		cpu.setNZ(cpu.A)
	case OP_TSX:
		cpu.X = cpu.S
		cpu.setNZ(cpu.X)
	case OP_TXS:
		cpu.S = cpu.X

	// Flags.
	case OP_CLC:
		cpu.SetFlag(FLAG_CARRY, false)
	case OP_SEC:
		cpu.SetFlag(FLAG_CARRY, true)
	case OP_CLD:
		cpu.SetFlag(FLAG_DECIMAL, false)
	case OP_SED:
		cpu.SetFlag(FLAG_DECIMAL, true)
	case OP_CLI:
		cpu.SetFlag(FLAG_INTERRUPT, false)
	case OP_SEI:
		cpu.SetFlag(FLAG_INTERRUPT, true)
	case OP_CLV:
		cpu.SetFlag(FLAG_OVERFLOW, false)

	// Stack.
	case OP_PHA:
		cpu.push(cpu.A)
	case OP_PLA:
		cpu.A = cpu.pull()
		cpu.setNZ(cpu.A)
	case OP_PHP:
		cpu.push(cpu.Status() | uint8(FLAG_BREAK|FLAG_UNUSED))
	case OP_PLP:
		cpu.pullStatus()

	// Control transfer.
	case OP_JMP:
		next = op.address
	case OP_JSR:
		// Return address is the last byte of the JSR.
		cpu.pushWord(cpu.PC + 2)
		next = op.address
	case OP_RTS:
		next = cpu.pullWord() + 1
	case OP_BRK:
		cpu.pushWord(cpu.PC + 2)
		cpu.push(cpu.Status() | uint8(FLAG_BREAK|FLAG_UNUSED))
		cpu.SetFlag(FLAG_INTERRUPT, true)
		next = cpu.Memory.ReadWord(memory.VECTOR_IRQ)
	case OP_RTI:
		cpu.pullStatus()
		next = cpu.pullWord()
	case OP_BCC, OP_BCS, OP_BNE, OP_BEQ, OP_BPL, OP_BMI, OP_BVC, OP_BVS:
		if cpu.branchTaken(insn.Op) {
			next = op.target
		}

	// Bit manipulation.
	case OP_TSB:
		value := op.read(cpu)
		cpu.SetFlag(FLAG_ZERO, value&cpu.A == 0)
		op.write(cpu, value|cpu.A)
	case OP_TRB:
		value := op.read(cpu)
		cpu.SetFlag(FLAG_ZERO, value&cpu.A == 0)
		op.write(cpu, value&^cpu.A)
	case OP_RMB0, OP_RMB1, OP_RMB2, OP_RMB3, OP_RMB4, OP_RMB5, OP_RMB6, OP_RMB7:
		bit, _ := insn.Op.Bit()
		op.modify(cpu, func(value uint8) uint8 { return value &^ (1 << bit) })
	case OP_BBR0, OP_BBR1, OP_BBR2, OP_BBR3, OP_BBR4, OP_BBR5, OP_BBR6, OP_BBR7:
		bit, _ := insn.Op.Bit()
		if op.read(cpu)&(1<<bit) == 0 {
			next = op.target
		}
	case OP_BBS0, OP_BBS1, OP_BBS2, OP_BBS3, OP_BBS4, OP_BBS5, OP_BBS6, OP_BBS7:
		bit, _ := insn.Op.Bit()
		if op.read(cpu)&(1<<bit) != 0 {
			next = op.target
		}

	// Combined read-modify-write then accumulator operations.
	case OP_SLO:
		cpu.A |= op.modify(cpu, cpu.asl)
		cpu.setNZ(cpu.A)
	case OP_RLA:
		cpu.A &= op.modify(cpu, cpu.rol)
		cpu.setNZ(cpu.A)
	case OP_SRE:
		cpu.A ^= op.modify(cpu, cpu.lsr)
		cpu.setNZ(cpu.A)
	case OP_RRA:
		cpu.A = cpu.adc(cpu.A, op.modify(cpu, cpu.ror))
	case OP_DCP:
		cpu.compare(cpu.A, op.modify(cpu, func(value uint8) uint8 { return value - 1 }))
	case OP_ISB:
		cpu.A = cpu.sbc(cpu.A, op.modify(cpu, func(value uint8) uint8 { return value + 1 }))
	case OP_LAX:
		cpu.A = op.read(cpu)
		cpu.X = cpu.A
		cpu.setNZ(cpu.A)
	case OP_SAX:
		op.write(cpu, cpu.A&cpu.X)

	case OP_NOP:
	default:
		panic(fmt.Sprintf("unhandled operation %v", insn.Op))
	}

	cpu.PC = next
}
