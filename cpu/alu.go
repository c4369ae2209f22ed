package cpu

// adc adds value and carry to a, updating C, V, Z and N.
func (cpu *Cpu) adc(a, value uint8) (result uint8) {
	if cpu.Flag(FLAG_DECIMAL) {
		return cpu.adcDecimal(a, value)
	}

	sum := uint16(a) + uint16(value) + cpu.carry()
	result = uint8(sum)

	cpu.SetFlag(FLAG_CARRY, sum > 0xff)
	// Overflow if both operands have the same sign, and the result differs.
	cpu.SetFlag(FLAG_OVERFLOW, (a^value)&0x80 == 0 && (a^result)&0x80 != 0)
	cpu.setNZ(result)

	return
}

// sbc subtracts value and borrow (inverted carry) from a.
func (cpu *Cpu) sbc(a, value uint8) (result uint8) {
	if cpu.Flag(FLAG_DECIMAL) {
		return cpu.sbcDecimal(a, value)
	}

	diff := uint16(a) + uint16(^value) + cpu.carry()
	result = uint8(diff)

	// Carry clear means a borrow occurred.
	cpu.SetFlag(FLAG_CARRY, diff > 0xff)
	// Overflow if the operands have different signs, and the result
	// sign differs from a.
	cpu.SetFlag(FLAG_OVERFLOW, (a^value)&0x80 != 0 && (a^result)&0x80 != 0)
	cpu.setNZ(result)

	return
}

func (cpu *Cpu) adcDecimal(a, value uint8) (result uint8) {
	acc := uint16(a)
	add := uint16(value)

	lo := (acc & 0x0f) + (add & 0x0f) + cpu.carry()
	var carrylo uint16
	if lo >= 0x0a {
		carrylo = 0x10
		lo -= 0x0a
	}

	hi := (acc & 0xf0) + (add & 0xf0) + carrylo
	carry := hi >= 0xa0
	if carry {
		hi -= 0xa0
	}

	result = uint8(hi) | uint8(lo&0x0f)

	cpu.SetFlag(FLAG_CARRY, carry)
	cpu.SetFlag(FLAG_OVERFLOW, (acc^add)&0x80 == 0 && (a^result)&0x80 != 0)
	cpu.setNZ(result)

	return
}

func (cpu *Cpu) sbcDecimal(a, value uint8) (result uint8) {
	acc := uint16(a)
	sub := uint16(value)

	lo := 0x0f + (acc & 0x0f) - (sub & 0x0f) + cpu.carry()
	var carrylo uint16
	if lo < 0x10 {
		lo -= 0x06
	} else {
		carrylo = 0x10
		lo -= 0x10
	}

	hi := 0xf0 + (acc & 0xf0) - (sub & 0xf0) + carrylo
	carry := hi >= 0x100
	if carry {
		hi -= 0x100
	} else {
		hi -= 0x60
	}

	result = uint8(hi&0xf0) | uint8(lo&0x0f)

	cpu.SetFlag(FLAG_CARRY, carry)
	cpu.SetFlag(FLAG_OVERFLOW, (acc^sub)&0x80 != 0 && (a^result)&0x80 != 0)
	cpu.setNZ(result)

	return
}

// compare sets C, Z and N from reg - value, discarding the difference.
func (cpu *Cpu) compare(reg, value uint8) {
	cpu.SetFlag(FLAG_CARRY, reg >= value)
	cpu.setNZ(reg - value)
}

func (cpu *Cpu) asl(value uint8) (result uint8) {
	result = value << 1
	cpu.SetFlag(FLAG_CARRY, value&0x80 != 0)
	cpu.setNZ(result)
	return
}

func (cpu *Cpu) lsr(value uint8) (result uint8) {
	result = value >> 1
	cpu.SetFlag(FLAG_CARRY, value&0x01 != 0)
	cpu.setNZ(result)
	return
}

func (cpu *Cpu) rol(value uint8) (result uint8) {
	result = value<<1 | uint8(cpu.carry())
	cpu.SetFlag(FLAG_CARRY, value&0x80 != 0)
	cpu.setNZ(result)
	return
}

func (cpu *Cpu) ror(value uint8) (result uint8) {
	result = value>>1 | uint8(cpu.carry())<<7
	cpu.SetFlag(FLAG_CARRY, value&0x01 != 0)
	cpu.setNZ(result)
	return
}

func (cpu *Cpu) inc(value uint8) (result uint8) {
	result = value + 1
	cpu.setNZ(result)
	return
}

func (cpu *Cpu) dec(value uint8) (result uint8) {
	result = value - 1
	cpu.setNZ(result)
	return
}
