// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package monitor

import (
	"context"
	"errors"
	"log"

	"github.com/ezrec/volve/emulator"
)

// Session serves one client connection against its own emulator.
type Session struct {
	Verbose  bool               // If set, log each command.
	Emulator *emulator.Emulator // Emulator controlled by the client.

	logger *log.Logger
	conn   conn
	closed bool
}

func newSession(emu *emulator.Emulator, c conn, logger *log.Logger) *Session {
	return &Session{
		Emulator: emu,
		logger:   logger,
		conn:     c,
	}
}

// Serve handles commands until the client says goodbye, the context is
// done, or the connection fails. A running emulator is stopped when the
// client disconnects.
func (ss *Session) Serve(ctx context.Context) (err error) {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		select {
		case <-ss.conn.closed():
			cancel()
		case <-runCtx.Done():
		}
	}()

	for !ss.closed {
		err = ctx.Err()
		if err != nil {
			return
		}

		err = ss.serveNext(runCtx)
		if err != nil {
			ss.logger.Printf("closing client connection due to an error: %v", err)
			return
		}
	}

	ss.logger.Printf("closing client connection")
	return
}

func (ss *Session) out(b sendBuf) error {
	if len(b.dest) != 0 {
		return ErrBufferSize
	}
	return ss.conn.out(b)
}

func (ss *Session) ack() error {
	return ss.out(newAck(0))
}

func (ss *Session) fail() error {
	return ss.out(newFail())
}

func (ss *Session) ackB(v uint8) error {
	res := newAck(1)
	res.appendB(v)
	return ss.out(res)
}

func (ss *Session) ackW(v uint16) error {
	res := newAck(2)
	res.appendW(v)
	return ss.out(res)
}

// expectAck reads the client's answer to an event.
func (ss *Session) expectAck() (err error) {
	b, err := ss.conn.inB()
	if err != nil {
		return
	}

	if Message(b) != MSG_ACK {
		err = ErrUnexpected(b)
	}

	return
}

// eventTraceExec reports the instruction about to execute.
func (ss *Session) eventTraceExec(pc uint16, opcode uint8, text string) (err error) {
	event := newSendBuf(MSG_EVENT_TRACE_EXEC, 3+stringLen(text))
	event.appendW(pc)
	event.appendB(opcode)
	event.appendS(text)

	err = ss.out(event)
	if err != nil {
		return
	}

	return ss.expectAck()
}

func (ss *Session) setTrace(enable bool) {
	if enable {
		ss.Emulator.Trace = ss.eventTraceExec
	} else {
		ss.Emulator.Trace = nil
	}
}

// writeB reads a byte argument into a register.
func (ss *Session) writeB(reg *uint8) (err error) {
	val, err := ss.conn.inB()
	if err != nil {
		return
	}

	*reg = val
	return ss.ack()
}

func (ss *Session) serveNext(ctx context.Context) (err error) {
	hdr, err := ss.conn.inB()
	if err != nil {
		return
	}

	msg := Message(hdr)
	if ss.Verbose {
		ss.logger.Printf("%v", msg)
	}

	emu := ss.Emulator
	regs := &emu.Cpu.Registers

	switch msg {
	case MSG_BYE:
		ss.closed = true
	case MSG_TRACE_ON:
		ss.setTrace(true)
		err = ss.ack()
	case MSG_TRACE_OFF:
		ss.setTrace(false)
		err = ss.ack()
	case MSG_RESET:
		emu.Reset()
		err = ss.ack()
	case MSG_RUN:
		var limit uint16
		limit, err = ss.conn.inW()
		if err != nil {
			return
		}
		err = emu.Run(ctx, int(limit))
		if err != nil && !errors.Is(err, emulator.ErrStepLimit) {
			ss.logger.Printf("run: %v", err)
			return ss.fail()
		}
		res := newAck(3)
		res.appendB(boolByte(emu.Cpu.Halted()))
		res.appendW(regs.PC)
		err = ss.out(res)
	case MSG_STEP:
		var done bool
		done, err = emu.Tick()
		if err != nil {
			ss.logger.Printf("step: %v", err)
			return ss.fail()
		}
		err = ss.ackB(boolByte(done))
	case MSG_WRITE_A:
		err = ss.writeB(&regs.A)
	case MSG_READ_A:
		err = ss.ackB(regs.A)
	case MSG_WRITE_X:
		err = ss.writeB(&regs.X)
	case MSG_READ_X:
		err = ss.ackB(regs.X)
	case MSG_WRITE_Y:
		err = ss.writeB(&regs.Y)
	case MSG_READ_Y:
		err = ss.ackB(regs.Y)
	case MSG_WRITE_S:
		err = ss.writeB(&regs.S)
	case MSG_READ_S:
		err = ss.ackB(regs.S)
	case MSG_WRITE_P:
		var val uint8
		val, err = ss.conn.inB()
		if err != nil {
			return
		}
		regs.SetStatus(val)
		err = ss.ack()
	case MSG_READ_P:
		err = ss.ackB(regs.Status())
	case MSG_WRITE_PC:
		var val uint16
		val, err = ss.conn.inW()
		if err != nil {
			return
		}
		regs.PC = val
		err = ss.ack()
	case MSG_READ_PC:
		err = ss.ackW(regs.PC)
	case MSG_MEM_WRITE:
		var addr uint16
		var val uint8
		addr, err = ss.conn.inW()
		if err != nil {
			return
		}
		val, err = ss.conn.inB()
		if err != nil {
			return
		}
		emu.Cpu.Memory.Write(addr, val)
		err = ss.ack()
	case MSG_MEM_READ:
		var addr uint16
		addr, err = ss.conn.inW()
		if err != nil {
			return
		}
		err = ss.ackB(emu.Cpu.Memory.Read(addr))
	case MSG_LOAD:
		var size uint16
		var image []uint8
		size, err = ss.conn.inW()
		if err != nil {
			return
		}
		image, err = ss.conn.inN(int(size))
		if err != nil {
			return
		}
		err = emu.Load(image)
		if err != nil {
			ss.logger.Printf("load: %v", err)
			return ss.fail()
		}
		err = ss.ack()
	default:
		ss.logger.Printf("unrecognized message type %#02x", hdr)
		err = ss.fail()
	}

	return
}
