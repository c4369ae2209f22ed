package monitor

import (
	"net"
)

// TCP_CHUNK is the largest single read from a TCP client.
const TCP_CHUNK = 4096

type tcpConn struct {
	*pump
	conn net.Conn
}

func newTcpConn(nc net.Conn) (tc *tcpConn) {
	tc = &tcpConn{conn: nc}
	tc.pump = newPump(tc.recv)
	return
}

func (tc *tcpConn) recv() ([]uint8, error) {
	buf := make([]uint8, TCP_CHUNK)
	n, err := tc.conn.Read(buf)
	if n > 0 {
		return buf[:n], nil
	}
	return nil, err
}

func (tc *tcpConn) out(b sendBuf) error {
	_, err := tc.conn.Write(b.buf)
	return err
}
