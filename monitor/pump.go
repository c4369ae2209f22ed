package monitor

import (
	"encoding/binary"
	"sync"
)

// pump receives client data in the background, so that a session can
// see the client go away while the emulator is running.
type pump struct {
	msgs chan []uint8
	done chan struct{} // Closed when the receiver has stopped.
	quit chan struct{}
	once sync.Once
	err  error // Receive error, valid once msgs is closed.
	buf  []uint8
}

func newPump(recv func() ([]uint8, error)) (p *pump) {
	p = &pump{
		msgs: make(chan []uint8, 16),
		done: make(chan struct{}),
		quit: make(chan struct{}),
	}

	go p.run(recv)

	return
}

func (p *pump) run(recv func() ([]uint8, error)) {
	defer close(p.done)
	defer close(p.msgs)

	for {
		msg, err := recv()
		if err != nil {
			p.err = err
			return
		}

		select {
		case p.msgs <- msg:
		case <-p.quit:
			p.err = ErrClosed
			return
		}
	}
}

// closed is done when the client can send nothing more.
func (p *pump) closed() <-chan struct{} {
	return p.done
}

// stop releases the receiver. The transport must also be closed to
// interrupt a receive in progress.
func (p *pump) stop() {
	p.once.Do(func() {
		close(p.quit)
	})
}

func (p *pump) inN(n int) ([]uint8, error) {
	for len(p.buf) < n {
		msg, ok := <-p.msgs
		if !ok {
			return nil, p.err
		}
		p.buf = append(p.buf, msg...)
	}

	res := p.buf[:n:n]
	p.buf = p.buf[n:]
	return res, nil
}

func (p *pump) inB() (uint8, error) {
	res, err := p.inN(1)
	if err != nil {
		return 0, err
	}
	return res[0], nil
}

func (p *pump) inW() (uint16, error) {
	res, err := p.inN(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(res), nil
}
