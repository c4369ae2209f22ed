package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack_Push(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	assert.Equal(0, cpu.StackDepth())

	cpu.push(0x12)
	assert.Equal(1, cpu.StackDepth())
	assert.Equal(uint8(0xfe), cpu.S)
	assert.Equal(uint8(0x12), cpu.Memory.Read(0x01ff))
}

func TestStack_Pull(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	cpu.push(0x12)
	cpu.push(0xab)

	assert.Equal(uint8(0xab), cpu.pull())
	assert.Equal(1, cpu.StackDepth())
	assert.Equal(uint8(0x12), cpu.pull())
	assert.Equal(0, cpu.StackDepth())
}

func TestStack_Wrap(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	cpu.S = 0x00
	cpu.push(0x34)
	assert.Equal(uint8(0xff), cpu.S)
	assert.Equal(uint8(0x34), cpu.Memory.Read(0x0100))

	// Pull from an empty stack wraps to the bottom of page one.
	cpu.Memory.Write(0x0100, 0x56)
	assert.Equal(uint8(0x56), cpu.pull())
	assert.Equal(uint8(0x00), cpu.S)
}

func TestStack_Word(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	cpu.pushWord(0xbeef)
	assert.Equal(uint8(0xbe), cpu.Memory.Read(0x01ff))
	assert.Equal(uint8(0xef), cpu.Memory.Read(0x01fe))
	assert.Equal(uint16(0xbeef), cpu.pullWord())
	assert.Equal(uint8(0xff), cpu.S)
}

func TestStack_Top(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	_, ok := cpu.StackTop()
	assert.False(ok)

	cpu.push(0x12)
	cpu.push(0xab)
	val, ok := cpu.StackTop()
	assert.True(ok)
	assert.Equal(uint8(0xab), val)
	assert.Equal(2, cpu.StackDepth())
}
