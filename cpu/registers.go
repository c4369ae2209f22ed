package cpu

import (
	"strings"
)

// Flag is a single bit of the processor status register.
type Flag uint8

const (
	FLAG_CARRY     = Flag(1 << 0) // C
	FLAG_ZERO      = Flag(1 << 1) // Z
	FLAG_INTERRUPT = Flag(1 << 2) // I
	FLAG_DECIMAL   = Flag(1 << 3) // D
	FLAG_BREAK     = Flag(1 << 4) // B
	FLAG_UNUSED    = Flag(1 << 5) // -
	FLAG_OVERFLOW  = Flag(1 << 6) // V
	FLAG_NEGATIVE  = Flag(1 << 7) // N
)

// STATUS_DEFAULT is the status register at construction.
const STATUS_DEFAULT = uint8(FLAG_UNUSED | FLAG_BREAK | FLAG_INTERRUPT)

func (f Flag) String() string {
	const names = "CZIDB-VN"
	var sb strings.Builder
	for n := range 8 {
		if f&(1<<n) != 0 {
			sb.WriteByte(names[n])
		}
	}
	return sb.String()
}

// Registers is the programmer-visible register file.
type Registers struct {
	A  uint8  // Accumulator.
	X  uint8  // X index.
	Y  uint8  // Y index.
	S  uint8  // Stack pointer, offset into page one.
	PC uint16 // Program counter.

	p uint8 // Packed status; use Flag/SetFlag.
}

// NewRegisters returns the register file in its construction state.
func NewRegisters() Registers {
	return Registers{
		S: 0xff,
		p: STATUS_DEFAULT,
	}
}

// Flag returns true if the flag is set.
func (reg *Registers) Flag(f Flag) bool {
	return reg.p&uint8(f) != 0
}

// SetFlag sets or clears a flag. The unused bit cannot be cleared.
func (reg *Registers) SetFlag(f Flag, on bool) {
	if on {
		reg.p |= uint8(f)
	} else {
		reg.p &^= uint8(f)
	}
	reg.p |= uint8(FLAG_UNUSED)
}

// Status returns the packed status register.
func (reg *Registers) Status() uint8 {
	return reg.p
}

// SetStatus replaces the packed status register. The unused bit is
// always set.
func (reg *Registers) SetStatus(p uint8) {
	reg.p = p | uint8(FLAG_UNUSED)
}

// setNZ updates Zero and Negative from a result.
func (reg *Registers) setNZ(value uint8) {
	reg.SetFlag(FLAG_ZERO, value == 0)
	reg.SetFlag(FLAG_NEGATIVE, value&0x80 != 0)
}

// carry returns the carry flag as an addend.
func (reg *Registers) carry() uint16 {
	if reg.Flag(FLAG_CARRY) {
		return 1
	}
	return 0
}
