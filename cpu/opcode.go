// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
)

// Op is an operation mnemonic.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_ADC  = Op(0)  // ADC
	OP_AND  = Op(1)  // AND
	OP_ASL  = Op(2)  // ASL
	OP_BBR0 = Op(3)  // BBR0
	OP_BBR1 = Op(4)  // BBR1
	OP_BBR2 = Op(5)  // BBR2
	OP_BBR3 = Op(6)  // BBR3
	OP_BBR4 = Op(7)  // BBR4
	OP_BBR5 = Op(8)  // BBR5
	OP_BBR6 = Op(9)  // BBR6
	OP_BBR7 = Op(10) // BBR7
	OP_BBS0 = Op(11) // BBS0
	OP_BBS1 = Op(12) // BBS1
	OP_BBS2 = Op(13) // BBS2
	OP_BBS3 = Op(14) // BBS3
	OP_BBS4 = Op(15) // BBS4
	OP_BBS5 = Op(16) // BBS5
	OP_BBS6 = Op(17) // BBS6
	OP_BBS7 = Op(18) // BBS7
	OP_BCC  = Op(19) // BCC
	OP_BCS  = Op(20) // BCS
	OP_BEQ  = Op(21) // BEQ
	OP_BIT  = Op(22) // BIT
	OP_BMI  = Op(23) // BMI
	OP_BNE  = Op(24) // BNE
	OP_BPL  = Op(25) // BPL
	OP_BRK  = Op(26) // BRK
	OP_BVC  = Op(27) // BVC
	OP_BVS  = Op(28) // BVS
	OP_CLC  = Op(29) // CLC
	OP_CLD  = Op(30) // CLD
	OP_CLI  = Op(31) // CLI
	OP_CLV  = Op(32) // CLV
	OP_CMP  = Op(33) // CMP
	OP_CPX  = Op(34) // CPX
	OP_CPY  = Op(35) // CPY
	OP_DCP  = Op(36) // DCP
	OP_DEC  = Op(37) // DEC
	OP_DEX  = Op(38) // DEX
	OP_DEY  = Op(39) // DEY
	OP_EOR  = Op(40) // EOR
	OP_INC  = Op(41) // INC
	OP_INX  = Op(42) // INX
	OP_INY  = Op(43) // INY
	OP_ISB  = Op(44) // ISB
	OP_JMP  = Op(45) // JMP
	OP_JSR  = Op(46) // JSR
	OP_LAX  = Op(47) // LAX
	OP_LDA  = Op(48) // LDA
	OP_LDX  = Op(49) // LDX
	OP_LDY  = Op(50) // LDY
	OP_LSR  = Op(51) // LSR
	OP_NOP  = Op(52) // NOP
	OP_ORA  = Op(53) // ORA
	OP_PHA  = Op(54) // PHA
	OP_PHP  = Op(55) // PHP
	OP_PLA  = Op(56) // PLA
	OP_PLP  = Op(57) // PLP
	OP_RLA  = Op(58) // RLA
	OP_RMB0 = Op(59) // RMB0
	OP_RMB1 = Op(60) // RMB1
	OP_RMB2 = Op(61) // RMB2
	OP_RMB3 = Op(62) // RMB3
	OP_RMB4 = Op(63) // RMB4
	OP_RMB5 = Op(64) // RMB5
	OP_RMB6 = Op(65) // RMB6
	OP_RMB7 = Op(66) // RMB7
	OP_ROL  = Op(67) // ROL
	OP_ROR  = Op(68) // ROR
	OP_RRA  = Op(69) // RRA
	OP_RTI  = Op(70) // RTI
	OP_RTS  = Op(71) // RTS
	OP_SAX  = Op(72) // SAX
	OP_SBC  = Op(73) // SBC
	OP_SEC  = Op(74) // SEC
	OP_SED  = Op(75) // SED
	OP_SEI  = Op(76) // SEI
	OP_SLO  = Op(77) // SLO
	OP_SRE  = Op(78) // SRE
	OP_STA  = Op(79) // STA
	OP_STX  = Op(80) // STX
	OP_STY  = Op(81) // STY
	OP_TAX  = Op(82) // TAX
	OP_TAY  = Op(83) // TAY
	OP_TRB  = Op(84) // TRB
	OP_TSB  = Op(85) // TSB
	OP_TSX  = Op(86) // TSX
	OP_TXA  = Op(87) // TXA
	OP_TXS  = Op(88) // TXS
	OP_TYA  = Op(89) // TYA
)

// Bit returns the bit index of the RMBn, BBRn and BBSn operations.
func (op Op) Bit() (bit uint8, ok bool) {
	switch {
	case op >= OP_RMB0 && op <= OP_RMB7:
		return uint8(op - OP_RMB0), true
	case op >= OP_BBR0 && op <= OP_BBR7:
		return uint8(op - OP_BBR0), true
	case op >= OP_BBS0 && op <= OP_BBS7:
		return uint8(op - OP_BBS0), true
	}
	return
}

// Branch returns true if the operation is a conditional branch.
func (op Op) Branch() bool {
	switch op {
	case OP_BCC, OP_BCS, OP_BEQ, OP_BMI, OP_BNE, OP_BPL, OP_BVC, OP_BVS:
		return true
	}
	return op >= OP_BBR0 && op <= OP_BBS7
}

// Mode is an addressing mode.
type Mode int

//go:generate go tool stringer -linecomment -type=Mode
const (
	MODE_IMPLIED            = Mode(0)  // implied
	MODE_ACCUMULATOR        = Mode(1)  // accumulator
	MODE_STACK              = Mode(2)  // stack
	MODE_IMMEDIATE          = Mode(3)  // immediate
	MODE_ZERO_PAGE          = Mode(4)  // zeropage
	MODE_ZERO_PAGE_X        = Mode(5)  // zeropage,x
	MODE_ZERO_PAGE_Y        = Mode(6)  // zeropage,y
	MODE_ABSOLUTE           = Mode(7)  // absolute
	MODE_ABSOLUTE_X         = Mode(8)  // absolute,x
	MODE_ABSOLUTE_Y         = Mode(9)  // absolute,y
	MODE_RELATIVE           = Mode(10) // relative
	MODE_INDIRECT           = Mode(11) // indirect
	MODE_INDEXED_INDIRECT_X = Mode(12) // (zeropage,x)
	MODE_INDIRECT_INDEXED_Y = Mode(13) // (zeropage),y
	MODE_ZERO_PAGE_INDIRECT = Mode(14) // (zeropage)
	MODE_ZERO_PAGE_RELATIVE = Mode(15) // zeropage,relative
)

// Length is the size in bytes of an instruction using the mode,
// including the opcode.
func (mode Mode) Length() uint16 {
	switch mode {
	case MODE_IMPLIED, MODE_ACCUMULATOR, MODE_STACK:
		return 1
	case MODE_ABSOLUTE, MODE_ABSOLUTE_X, MODE_ABSOLUTE_Y, MODE_INDIRECT, MODE_ZERO_PAGE_RELATIVE:
		return 3
	default:
		return 2
	}
}

// Instruction is a decoded opcode.
type Instruction struct {
	Op   Op
	Mode Mode
}

func (insn Instruction) String() string {
	return fmt.Sprintf("%v %v", insn.Op, insn.Mode)
}
