package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisters(t *testing.T) {
	assert := assert.New(t)

	reg := NewRegisters()
	assert.Equal(uint8(0), reg.A)
	assert.Equal(uint8(0), reg.X)
	assert.Equal(uint8(0), reg.Y)
	assert.Equal(uint8(0xff), reg.S)
	assert.Equal(uint16(0), reg.PC)
	assert.Equal(uint8(0x34), reg.Status())
}

func TestRegisters_Flag(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		flag Flag
		bit  uint8
		name string
	}){
		{FLAG_CARRY, 0x01, "C"},
		{FLAG_ZERO, 0x02, "Z"},
		{FLAG_INTERRUPT, 0x04, "I"},
		{FLAG_DECIMAL, 0x08, "D"},
		{FLAG_BREAK, 0x10, "B"},
		{FLAG_OVERFLOW, 0x40, "V"},
		{FLAG_NEGATIVE, 0x80, "N"},
	}

	for _, entry := range table {
		reg := NewRegisters()
		reg.SetStatus(0)

		reg.SetFlag(entry.flag, true)
		assert.True(reg.Flag(entry.flag), entry.name)
		assert.Equal(entry.bit|0x20, reg.Status(), entry.name)

		reg.SetFlag(entry.flag, false)
		assert.False(reg.Flag(entry.flag), entry.name)
		assert.Equal(uint8(0x20), reg.Status(), entry.name)

		assert.Equal(entry.name, entry.flag.String())
	}
}

func TestRegisters_Unused(t *testing.T) {
	assert := assert.New(t)

	reg := NewRegisters()
	reg.SetFlag(FLAG_UNUSED, false)
	assert.True(reg.Flag(FLAG_UNUSED))

	reg.SetStatus(0x00)
	assert.Equal(uint8(0x20), reg.Status())

	reg.SetStatus(0xff)
	assert.Equal(uint8(0xff), reg.Status())
	assert.Equal("CZIDB-VN", Flag(0xff).String())
}

func TestRegisters_setNZ(t *testing.T) {
	assert := assert.New(t)

	reg := NewRegisters()

	reg.setNZ(0)
	assert.True(reg.Flag(FLAG_ZERO))
	assert.False(reg.Flag(FLAG_NEGATIVE))

	reg.setNZ(0x80)
	assert.False(reg.Flag(FLAG_ZERO))
	assert.True(reg.Flag(FLAG_NEGATIVE))

	reg.setNZ(0x7f)
	assert.False(reg.Flag(FLAG_ZERO))
	assert.False(reg.Flag(FLAG_NEGATIVE))
}
