// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package memory implements the flat 64KiB address space of the processor.
//
// The named ranges are address constants only; nothing at the storage
// level prevents a write into ROM or the vectors.
package memory

import (
	"fmt"
	"iter"
	"maps"
)

const (
	SIZE = 0x10000 // Size of the address space.

	ZERO_PAGE_LOW  = uint16(0x0000)
	ZERO_PAGE_HIGH = uint16(0x00ff)
	STACK_LOW      = uint16(0x0100)
	STACK_HIGH     = uint16(0x01ff)
	RAM_LOW        = uint16(0x0000)
	RAM_HIGH       = uint16(0x7fff)
	ROM_LOW        = uint16(0x8000)
	ROM_HIGH       = uint16(0xffff)

	ROM_SIZE = int(ROM_HIGH-ROM_LOW) + 1

	VECTOR_NMI   = uint16(0xfffa) // Non-maskable interrupt vector.
	VECTOR_RESET = uint16(0xfffc) // Reset vector.
	VECTOR_IRQ   = uint16(0xfffe) // IRQ/BRK vector.
)

var _memory_defines = map[string]string{
	"ZERO_PAGE":    fmt.Sprintf("%#x", ZERO_PAGE_LOW),
	"STACK":        fmt.Sprintf("%#x", STACK_LOW),
	"RAM":          fmt.Sprintf("%#x", RAM_LOW),
	"ROM":          fmt.Sprintf("%#x", ROM_LOW),
	"VECTOR_NMI":   fmt.Sprintf("%#x", VECTOR_NMI),
	"VECTOR_RESET": fmt.Sprintf("%#x", VECTOR_RESET),
	"VECTOR_IRQ":   fmt.Sprintf("%#x", VECTOR_IRQ),
}

// Memory is the owned byte array backing the address space.
type Memory struct {
	Data [SIZE]uint8
}

// Defines returns the assembler equates for the named ranges.
func (mem *Memory) Defines() iter.Seq2[string, string] {
	return maps.All(_memory_defines)
}

// Read returns the byte at addr.
func (mem *Memory) Read(addr uint16) uint8 {
	return mem.Data[addr]
}

// Write sets the byte at addr.
func (mem *Memory) Write(addr uint16, value uint8) {
	mem.Data[addr] = value
}

// ReadWord reads a little-endian word. The high byte address wraps
// from 0xffff to 0x0000.
func (mem *Memory) ReadWord(addr uint16) uint16 {
	lo := mem.Data[addr]
	hi := mem.Data[addr+1]
	return uint16(hi)<<8 | uint16(lo)
}

// WriteWord writes a little-endian word, wrapping like ReadWord.
func (mem *Memory) WriteWord(addr uint16, value uint16) {
	mem.Data[addr] = uint8(value)
	mem.Data[addr+1] = uint8(value >> 8)
}

// ReadWordZeroPage reads a pointer held in the zero page. The high byte
// comes from (ptr+1) mod 256, never from page one.
func (mem *Memory) ReadWordZeroPage(ptr uint8) uint16 {
	lo := mem.Data[ptr]
	hi := mem.Data[uint8(ptr+1)]
	return uint16(hi)<<8 | uint16(lo)
}

// ReadWordPageWrap reads a word whose high byte is fetched from the same
// page as the low byte, as the NMOS indirect JMP does.
func (mem *Memory) ReadWordPageWrap(addr uint16) uint16 {
	lo := mem.Data[addr]
	hi := mem.Data[(addr&0xff00)|uint16(uint8(addr)+1)]
	return uint16(hi)<<8 | uint16(lo)
}

// Slice returns a window of at most count bytes starting at addr,
// truncated at the top of the address space.
func (mem *Memory) Slice(addr uint16, count int) []uint8 {
	end := min(int(addr)+count, SIZE)
	return mem.Data[addr:end]
}
