// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

// decodeTable maps every opcode byte to its instruction. A nil entry has no
// defined meaning and halts the processor when fetched.
//
// Columns 0x_2 (zero page indirect), 0x_4/0x_C (TSB, TRB), 0x_7 rows 0-7
// (RMBn) and 0x_F (BBRn, BBSn) follow the R65C02; the remaining undocumented
// cells carry the stable NMOS combined opcodes.
var decodeTable = [256]*Instruction{
	// 0x
	0x00: {OP_BRK, MODE_STACK},
	0x01: {OP_ORA, MODE_INDEXED_INDIRECT_X},
	0x03: {OP_SLO, MODE_INDEXED_INDIRECT_X},
	0x04: {OP_TSB, MODE_ZERO_PAGE},
	0x05: {OP_ORA, MODE_ZERO_PAGE},
	0x06: {OP_ASL, MODE_ZERO_PAGE},
	0x07: {OP_RMB0, MODE_ZERO_PAGE},
	0x08: {OP_PHP, MODE_STACK},
	0x09: {OP_ORA, MODE_IMMEDIATE},
	0x0a: {OP_ASL, MODE_ACCUMULATOR},
	0x0c: {OP_TSB, MODE_ABSOLUTE},
	0x0d: {OP_ORA, MODE_ABSOLUTE},
	0x0e: {OP_ASL, MODE_ABSOLUTE},
	0x0f: {OP_BBR0, MODE_ZERO_PAGE_RELATIVE},
	// 1x
	0x10: {OP_BPL, MODE_RELATIVE},
	0x11: {OP_ORA, MODE_INDIRECT_INDEXED_Y},
	0x12: {OP_ORA, MODE_ZERO_PAGE_INDIRECT},
	0x13: {OP_SLO, MODE_INDIRECT_INDEXED_Y},
	0x14: {OP_TRB, MODE_ZERO_PAGE},
	0x15: {OP_ORA, MODE_ZERO_PAGE_X},
	0x16: {OP_ASL, MODE_ZERO_PAGE_X},
	0x17: {OP_RMB1, MODE_ZERO_PAGE},
	0x18: {OP_CLC, MODE_IMPLIED},
	0x19: {OP_ORA, MODE_ABSOLUTE_Y},
	0x1a: {OP_INC, MODE_ACCUMULATOR},
	0x1b: {OP_SLO, MODE_ABSOLUTE_Y},
	0x1c: {OP_TRB, MODE_ABSOLUTE},
	0x1d: {OP_ORA, MODE_ABSOLUTE_X},
	0x1e: {OP_ASL, MODE_ABSOLUTE_X},
	0x1f: {OP_BBR1, MODE_ZERO_PAGE_RELATIVE},
	// 2x
	0x20: {OP_JSR, MODE_ABSOLUTE},
	0x21: {OP_AND, MODE_INDEXED_INDIRECT_X},
	0x23: {OP_RLA, MODE_INDEXED_INDIRECT_X},
	0x24: {OP_BIT, MODE_ZERO_PAGE},
	0x25: {OP_AND, MODE_ZERO_PAGE},
	0x26: {OP_ROL, MODE_ZERO_PAGE},
	0x27: {OP_RMB2, MODE_ZERO_PAGE},
	0x28: {OP_PLP, MODE_STACK},
	0x29: {OP_AND, MODE_IMMEDIATE},
	0x2a: {OP_ROL, MODE_ACCUMULATOR},
	0x2c: {OP_BIT, MODE_ABSOLUTE},
	0x2d: {OP_AND, MODE_ABSOLUTE},
	0x2e: {OP_ROL, MODE_ABSOLUTE},
	0x2f: {OP_BBR2, MODE_ZERO_PAGE_RELATIVE},
	// 3x
	0x30: {OP_BMI, MODE_RELATIVE},
	0x31: {OP_AND, MODE_INDIRECT_INDEXED_Y},
	0x32: {OP_AND, MODE_ZERO_PAGE_INDIRECT},
	0x33: {OP_RLA, MODE_INDIRECT_INDEXED_Y},
	0x34: {OP_BIT, MODE_ZERO_PAGE_X},
	0x35: {OP_AND, MODE_ZERO_PAGE_X},
	0x36: {OP_ROL, MODE_ZERO_PAGE_X},
	0x37: {OP_RMB3, MODE_ZERO_PAGE},
	0x38: {OP_SEC, MODE_IMPLIED},
	0x39: {OP_AND, MODE_ABSOLUTE_Y},
	0x3a: {OP_DEC, MODE_ACCUMULATOR},
	0x3b: {OP_RLA, MODE_ABSOLUTE_Y},
	0x3c: {OP_BIT, MODE_ABSOLUTE_X},
	0x3d: {OP_AND, MODE_ABSOLUTE_X},
	0x3e: {OP_ROL, MODE_ABSOLUTE_X},
	0x3f: {OP_BBR3, MODE_ZERO_PAGE_RELATIVE},
	// 4x
	0x40: {OP_RTI, MODE_STACK},
	0x41: {OP_EOR, MODE_INDEXED_INDIRECT_X},
	0x43: {OP_SRE, MODE_INDEXED_INDIRECT_X},
	0x45: {OP_EOR, MODE_ZERO_PAGE},
	0x46: {OP_LSR, MODE_ZERO_PAGE},
	0x47: {OP_RMB4, MODE_ZERO_PAGE},
	0x48: {OP_PHA, MODE_STACK},
	0x49: {OP_EOR, MODE_IMMEDIATE},
	0x4a: {OP_LSR, MODE_ACCUMULATOR},
	0x4c: {OP_JMP, MODE_ABSOLUTE},
	0x4d: {OP_EOR, MODE_ABSOLUTE},
	0x4e: {OP_LSR, MODE_ABSOLUTE},
	0x4f: {OP_BBR4, MODE_ZERO_PAGE_RELATIVE},
	// 5x
	0x50: {OP_BVC, MODE_RELATIVE},
	0x51: {OP_EOR, MODE_INDIRECT_INDEXED_Y},
	0x52: {OP_EOR, MODE_ZERO_PAGE_INDIRECT},
	0x53: {OP_SRE, MODE_INDIRECT_INDEXED_Y},
	0x55: {OP_EOR, MODE_ZERO_PAGE_X},
	0x56: {OP_LSR, MODE_ZERO_PAGE_X},
	0x57: {OP_RMB5, MODE_ZERO_PAGE},
	0x58: {OP_CLI, MODE_IMPLIED},
	0x59: {OP_EOR, MODE_ABSOLUTE_Y},
	0x5b: {OP_SRE, MODE_ABSOLUTE_Y},
	0x5d: {OP_EOR, MODE_ABSOLUTE_X},
	0x5e: {OP_LSR, MODE_ABSOLUTE_X},
	0x5f: {OP_BBR5, MODE_ZERO_PAGE_RELATIVE},
	// 6x
	0x60: {OP_RTS, MODE_STACK},
	0x61: {OP_ADC, MODE_INDEXED_INDIRECT_X},
	0x63: {OP_RRA, MODE_INDEXED_INDIRECT_X},
	0x65: {OP_ADC, MODE_ZERO_PAGE},
	0x66: {OP_ROR, MODE_ZERO_PAGE},
	0x67: {OP_RMB6, MODE_ZERO_PAGE},
	0x68: {OP_PLA, MODE_STACK},
	0x69: {OP_ADC, MODE_IMMEDIATE},
	0x6a: {OP_ROR, MODE_ACCUMULATOR},
	0x6c: {OP_JMP, MODE_INDIRECT},
	0x6d: {OP_ADC, MODE_ABSOLUTE},
	0x6e: {OP_ROR, MODE_ABSOLUTE},
	0x6f: {OP_BBR6, MODE_ZERO_PAGE_RELATIVE},
	// 7x
	0x70: {OP_BVS, MODE_RELATIVE},
	0x71: {OP_ADC, MODE_INDIRECT_INDEXED_Y},
	0x72: {OP_ADC, MODE_ZERO_PAGE_INDIRECT},
	0x73: {OP_RRA, MODE_INDIRECT_INDEXED_Y},
	0x75: {OP_ADC, MODE_ZERO_PAGE_X},
	0x76: {OP_ROR, MODE_ZERO_PAGE_X},
	0x77: {OP_RMB7, MODE_ZERO_PAGE},
	0x78: {OP_SEI, MODE_IMPLIED},
	0x79: {OP_ADC, MODE_ABSOLUTE_Y},
	0x7b: {OP_RRA, MODE_ABSOLUTE_Y},
	0x7d: {OP_ADC, MODE_ABSOLUTE_X},
	0x7e: {OP_ROR, MODE_ABSOLUTE_X},
	0x7f: {OP_BBR7, MODE_ZERO_PAGE_RELATIVE},
	// 8x
	0x81: {OP_STA, MODE_INDEXED_INDIRECT_X},
	0x83: {OP_SAX, MODE_INDEXED_INDIRECT_X},
	0x84: {OP_STY, MODE_ZERO_PAGE},
	0x85: {OP_STA, MODE_ZERO_PAGE},
	0x86: {OP_STX, MODE_ZERO_PAGE},
	0x87: {OP_SAX, MODE_ZERO_PAGE},
	0x88: {OP_DEY, MODE_IMPLIED},
	0x8a: {OP_TXA, MODE_IMPLIED},
	0x8c: {OP_STY, MODE_ABSOLUTE},
	0x8d: {OP_STA, MODE_ABSOLUTE},
	0x8e: {OP_STX, MODE_ABSOLUTE},
	0x8f: {OP_BBS0, MODE_ZERO_PAGE_RELATIVE},
	// 9x
	0x90: {OP_BCC, MODE_RELATIVE},
	0x91: {OP_STA, MODE_INDIRECT_INDEXED_Y},
	0x92: {OP_STA, MODE_ZERO_PAGE_INDIRECT},
	0x94: {OP_STY, MODE_ZERO_PAGE_X},
	0x95: {OP_STA, MODE_ZERO_PAGE_X},
	0x96: {OP_STX, MODE_ZERO_PAGE_Y},
	0x97: {OP_SAX, MODE_ZERO_PAGE_Y},
	0x98: {OP_TYA, MODE_IMPLIED},
	0x99: {OP_STA, MODE_ABSOLUTE_Y},
	0x9a: {OP_TXS, MODE_IMPLIED},
	0x9d: {OP_STA, MODE_ABSOLUTE_X},
	0x9f: {OP_BBS1, MODE_ZERO_PAGE_RELATIVE},
	// Ax
	0xa0: {OP_LDY, MODE_IMMEDIATE},
	0xa1: {OP_LDA, MODE_INDEXED_INDIRECT_X},
	0xa2: {OP_LDX, MODE_IMMEDIATE},
	0xa3: {OP_LAX, MODE_INDEXED_INDIRECT_X},
	0xa4: {OP_LDY, MODE_ZERO_PAGE},
	0xa5: {OP_LDA, MODE_ZERO_PAGE},
	0xa6: {OP_LDX, MODE_ZERO_PAGE},
	0xa7: {OP_LAX, MODE_ZERO_PAGE},
	0xa8: {OP_TAY, MODE_IMPLIED},
	0xa9: {OP_LDA, MODE_IMMEDIATE},
	0xaa: {OP_TAX, MODE_IMPLIED},
	0xac: {OP_LDY, MODE_ABSOLUTE},
	0xad: {OP_LDA, MODE_ABSOLUTE},
	0xae: {OP_LDX, MODE_ABSOLUTE},
	0xaf: {OP_BBS2, MODE_ZERO_PAGE_RELATIVE},
	// Bx
	0xb0: {OP_BCS, MODE_RELATIVE},
	0xb1: {OP_LDA, MODE_INDIRECT_INDEXED_Y},
	0xb2: {OP_LDA, MODE_ZERO_PAGE_INDIRECT},
	0xb3: {OP_LAX, MODE_INDIRECT_INDEXED_Y},
	0xb4: {OP_LDY, MODE_ZERO_PAGE_X},
	0xb5: {OP_LDA, MODE_ZERO_PAGE_X},
	0xb6: {OP_LDX, MODE_ZERO_PAGE_Y},
	0xb7: {OP_LAX, MODE_ZERO_PAGE_Y},
	0xb8: {OP_CLV, MODE_IMPLIED},
	0xb9: {OP_LDA, MODE_ABSOLUTE_Y},
	0xba: {OP_TSX, MODE_IMPLIED},
	0xbc: {OP_LDY, MODE_ABSOLUTE_X},
	0xbd: {OP_LDA, MODE_ABSOLUTE_X},
	0xbe: {OP_LDX, MODE_ABSOLUTE_Y},
	0xbf: {OP_BBS3, MODE_ZERO_PAGE_RELATIVE},
	// Cx
	0xc0: {OP_CPY, MODE_IMMEDIATE},
	0xc1: {OP_CMP, MODE_INDEXED_INDIRECT_X},
	0xc3: {OP_DCP, MODE_INDEXED_INDIRECT_X},
	0xc4: {OP_CPY, MODE_ZERO_PAGE},
	0xc5: {OP_CMP, MODE_ZERO_PAGE},
	0xc6: {OP_DEC, MODE_ZERO_PAGE},
	0xc7: {OP_DCP, MODE_ZERO_PAGE},
	0xc8: {OP_INY, MODE_IMPLIED},
	0xc9: {OP_CMP, MODE_IMMEDIATE},
	0xca: {OP_DEX, MODE_IMPLIED},
	0xcc: {OP_CPY, MODE_ABSOLUTE},
	0xcd: {OP_CMP, MODE_ABSOLUTE},
	0xce: {OP_DEC, MODE_ABSOLUTE},
	0xcf: {OP_BBS4, MODE_ZERO_PAGE_RELATIVE},
	// Dx
	0xd0: {OP_BNE, MODE_RELATIVE},
	0xd1: {OP_CMP, MODE_INDIRECT_INDEXED_Y},
	0xd2: {OP_CMP, MODE_ZERO_PAGE_INDIRECT},
	0xd3: {OP_DCP, MODE_INDIRECT_INDEXED_Y},
	0xd5: {OP_CMP, MODE_ZERO_PAGE_X},
	0xd6: {OP_DEC, MODE_ZERO_PAGE_X},
	0xd7: {OP_DCP, MODE_ZERO_PAGE_X},
	0xd8: {OP_CLD, MODE_IMPLIED},
	0xd9: {OP_CMP, MODE_ABSOLUTE_Y},
	0xdb: {OP_DCP, MODE_ABSOLUTE_Y},
	0xdd: {OP_CMP, MODE_ABSOLUTE_X},
	0xde: {OP_DEC, MODE_ABSOLUTE_X},
	0xdf: {OP_BBS5, MODE_ZERO_PAGE_RELATIVE},
	// Ex
	0xe0: {OP_CPX, MODE_IMMEDIATE},
	0xe1: {OP_SBC, MODE_INDEXED_INDIRECT_X},
	0xe3: {OP_ISB, MODE_INDEXED_INDIRECT_X},
	0xe4: {OP_CPX, MODE_ZERO_PAGE},
	0xe5: {OP_SBC, MODE_ZERO_PAGE},
	0xe6: {OP_INC, MODE_ZERO_PAGE},
	0xe7: {OP_ISB, MODE_ZERO_PAGE},
	0xe8: {OP_INX, MODE_IMPLIED},
	0xe9: {OP_SBC, MODE_IMMEDIATE},
	0xea: {OP_NOP, MODE_IMPLIED},
	0xec: {OP_CPX, MODE_ABSOLUTE},
	0xed: {OP_SBC, MODE_ABSOLUTE},
	0xee: {OP_INC, MODE_ABSOLUTE},
	0xef: {OP_BBS6, MODE_ZERO_PAGE_RELATIVE},
	// Fx
	0xf0: {OP_BEQ, MODE_RELATIVE},
	0xf1: {OP_SBC, MODE_INDIRECT_INDEXED_Y},
	0xf2: {OP_SBC, MODE_ZERO_PAGE_INDIRECT},
	0xf3: {OP_ISB, MODE_INDIRECT_INDEXED_Y},
	0xf5: {OP_SBC, MODE_ZERO_PAGE_X},
	0xf6: {OP_INC, MODE_ZERO_PAGE_X},
	0xf7: {OP_ISB, MODE_ZERO_PAGE_X},
	0xf8: {OP_SED, MODE_IMPLIED},
	0xf9: {OP_SBC, MODE_ABSOLUTE_Y},
	0xfb: {OP_ISB, MODE_ABSOLUTE_Y},
	0xfd: {OP_SBC, MODE_ABSOLUTE_X},
	0xfe: {OP_INC, MODE_ABSOLUTE_X},
	0xff: {OP_BBS7, MODE_ZERO_PAGE_RELATIVE},
}

// Decode looks up an opcode byte.
func Decode(opcode uint8) (insn Instruction, ok bool) {
	entry := decodeTable[opcode]
	if entry == nil {
		return
	}
	return *entry, true
}

var encodeTable = func() (table map[Instruction]uint8) {
	table = make(map[Instruction]uint8, len(decodeTable))
	for opcode, entry := range decodeTable {
		if entry != nil {
			table[*entry] = uint8(opcode)
		}
	}
	return
}()

// Encode looks up the opcode byte of an instruction.
func Encode(insn Instruction) (opcode uint8, ok bool) {
	opcode, ok = encodeTable[insn]
	return
}
