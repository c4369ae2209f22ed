package monitor

import (
	"encoding/binary"
	"fmt"
)

// Message is a protocol header byte.
type Message uint8

const (
	// Responses
	MSG_ACK  = Message(0x00) // Acknowledged
	MSG_FAIL = Message(0x01) // Failed

	// Session control
	MSG_BYE       = Message(0x10) // Close the connection
	MSG_TRACE_ON  = Message(0x11) // Trace execution enable
	MSG_TRACE_OFF = Message(0x12) // Trace execution disable
	MSG_RESET     = Message(0x13) // Reset the CPU from the reset vector
	MSG_RUN       = Message(0x14) // Run up to a step limit
	MSG_STEP      = Message(0x1f) // Run a single instruction

	// Registers
	MSG_WRITE_A  = Message(0x20) // Accumulator write
	MSG_READ_A   = Message(0x21) // Accumulator read
	MSG_WRITE_X  = Message(0x22) // X register write
	MSG_READ_X   = Message(0x23) // X register read
	MSG_WRITE_Y  = Message(0x24) // Y register write
	MSG_READ_Y   = Message(0x25) // Y register read
	MSG_WRITE_S  = Message(0x26) // Stack pointer write
	MSG_READ_S   = Message(0x27) // Stack pointer read
	MSG_WRITE_P  = Message(0x28) // Status write
	MSG_READ_P   = Message(0x29) // Status read
	MSG_WRITE_PC = Message(0x2a) // PC write
	MSG_READ_PC  = Message(0x2b) // PC read

	// Memory
	MSG_MEM_WRITE = Message(0x30) // Write a byte to an address
	MSG_MEM_READ  = Message(0x31) // Read a byte from an address
	MSG_LOAD      = Message(0x32) // Load an image into ROM

	// Events
	MSG_EVENT_TRACE_EXEC = Message(0x82) // Instruction about to execute
)

var _message_names = map[Message]string{
	MSG_ACK:              "ACK",
	MSG_FAIL:             "FAIL",
	MSG_BYE:              "BYE",
	MSG_TRACE_ON:         "TRACE_ON",
	MSG_TRACE_OFF:        "TRACE_OFF",
	MSG_RESET:            "RESET",
	MSG_RUN:              "RUN",
	MSG_STEP:             "STEP",
	MSG_WRITE_A:          "WRITE_A",
	MSG_READ_A:           "READ_A",
	MSG_WRITE_X:          "WRITE_X",
	MSG_READ_X:           "READ_X",
	MSG_WRITE_Y:          "WRITE_Y",
	MSG_READ_Y:           "READ_Y",
	MSG_WRITE_S:          "WRITE_S",
	MSG_READ_S:           "READ_S",
	MSG_WRITE_P:          "WRITE_P",
	MSG_READ_P:           "READ_P",
	MSG_WRITE_PC:         "WRITE_PC",
	MSG_READ_PC:          "READ_PC",
	MSG_MEM_WRITE:        "MEM_WRITE",
	MSG_MEM_READ:         "MEM_READ",
	MSG_LOAD:             "LOAD",
	MSG_EVENT_TRACE_EXEC: "EVENT_TRACE_EXEC",
}

func (msg Message) String() string {
	name, ok := _message_names[msg]
	if !ok {
		return fmt.Sprintf("Message(%#02x)", uint8(msg))
	}
	return name
}

// MAX_STRING is the longest string payload.
const MAX_STRING = 255

// sendBuf is an outgoing message, sized exactly when created.
type sendBuf struct {
	buf  []uint8
	dest []uint8
}

func newSendBuf(msg Message, restLen int) sendBuf {
	buf := make([]uint8, restLen+1)
	buf[0] = uint8(msg)
	return sendBuf{buf: buf, dest: buf[1:]}
}

func newAck(restLen int) sendBuf {
	return newSendBuf(MSG_ACK, restLen)
}

func newFail() sendBuf {
	return newSendBuf(MSG_FAIL, 0)
}

func (b *sendBuf) appendB(v uint8) {
	b.dest[0] = v
	b.dest = b.dest[1:]
}

func (b *sendBuf) appendW(v uint16) {
	binary.BigEndian.PutUint16(b.dest[0:2], v)
	b.dest = b.dest[2:]
}

// appendS appends a length-prefixed string, truncated to MAX_STRING.
func (b *sendBuf) appendS(s string) {
	s = s[:min(len(s), MAX_STRING)]
	b.appendB(uint8(len(s)))
	b.dest = b.dest[copy(b.dest, s):]
}

// stringLen is the encoded length of appendS(s).
func stringLen(s string) int {
	return 1 + min(len(s), MAX_STRING)
}

func boolByte(v bool) uint8 {
	if v {
		return 1
	}
	return 0
}

// conn is a transport for one client.
type conn interface {
	out(b sendBuf) error
	inB() (uint8, error)
	inW() (uint16, error)
	inN(n int) ([]uint8, error)
	closed() <-chan struct{}
}
