// Package cpu implements the processor core and assembler for a 6502-family
// microprocessor.
//
// The core consists of an accumulator, two index registers, a stack pointer
// into page one, a 16-bit program counter and a packed status register,
// executing against an owned 64KiB memory. The decode table covers the NMOS
// documented opcodes, the R65C02 bit manipulation extensions (TSB, TRB,
// RMBn, BBRn, BBSn) and the stable NMOS combined opcodes. Fetching a byte
// with no decode table entry halts the processor.
//
// The assembler provides the conventional 6502 assembly syntax with labels,
// equates, data directives and compile-time expression evaluation.
package cpu
