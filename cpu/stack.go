package cpu

import (
	"github.com/ezrec/volve/memory"
)

// push writes to the stack page, then decrements S. S wraps silently.
func (cpu *Cpu) push(value uint8) {
	cpu.Memory.Write(memory.STACK_LOW|uint16(cpu.S), value)
	cpu.S--
}

// pull increments S, then reads from the stack page. S wraps silently.
func (cpu *Cpu) pull() uint8 {
	cpu.S++
	return cpu.Memory.Read(memory.STACK_LOW | uint16(cpu.S))
}

// pushWord pushes the high byte first, so the word is little-endian in
// memory.
func (cpu *Cpu) pushWord(value uint16) {
	cpu.push(uint8(value >> 8))
	cpu.push(uint8(value))
}

func (cpu *Cpu) pullWord() uint16 {
	lo := cpu.pull()
	hi := cpu.pull()
	return uint16(hi)<<8 | uint16(lo)
}

// pullStatus restores the status register. Break keeps its current value.
func (cpu *Cpu) pullStatus() {
	p := cpu.pull()
	cpu.SetStatus((p &^ uint8(FLAG_BREAK)) | (cpu.Status() & uint8(FLAG_BREAK)))
}

// StackTop returns the most recently pushed byte.
func (cpu *Cpu) StackTop() (value uint8, ok bool) {
	if cpu.S == 0xff {
		return
	}
	return cpu.Memory.Read(memory.STACK_LOW | uint16(cpu.S+1)), true
}

// StackDepth returns the number of bytes pushed since S was 0xff.
func (cpu *Cpu) StackDepth() int {
	return 0xff - int(cpu.S)
}
