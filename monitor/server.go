// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package monitor

import (
	"context"
	"fmt"
	"log"
	"net"

	"github.com/ezrec/volve/emulator"
)

// Server creates a session, with its own emulator, for each client.
type Server struct {
	Verbose bool // If set, enables verbose logging.

	// Setup, if set, prepares the emulator of each new session.
	Setup func(emu *emulator.Emulator) error
}

func (srv *Server) newSession(c conn, addr string) (ss *Session, err error) {
	emu := emulator.NewEmulator()
	emu.Verbose = srv.Verbose

	if srv.Setup != nil {
		err = srv.Setup(emu)
		if err != nil {
			return
		}
	}

	logger := log.New(log.Writer(), fmt.Sprintf("[client/%s] ", addr), log.Flags())
	ss = newSession(emu, c, logger)
	ss.Verbose = srv.Verbose

	return
}

// ServeConn serves a single TCP client until it disconnects. The
// connection is closed on return.
func (srv *Server) ServeConn(ctx context.Context, nc net.Conn) (err error) {
	defer nc.Close()

	tc := newTcpConn(nc)
	defer tc.stop()

	ss, err := srv.newSession(tc, nc.RemoteAddr().String())
	if err != nil {
		return
	}

	return ss.Serve(ctx)
}

// ServeTCP accepts clients from the listener until the context is done
// or the listener fails. Each client is served concurrently.
func (srv *Server) ServeTCP(ctx context.Context, listener net.Listener) (err error) {
	stop := context.AfterFunc(ctx, func() {
		listener.Close()
	})
	defer stop()

	for {
		var nc net.Conn
		nc, err = listener.Accept()
		if err != nil {
			if ctx.Err() != nil {
				err = ctx.Err()
			}
			return
		}

		if srv.Verbose {
			log.Printf("monitor: new client connection from %v", nc.RemoteAddr())
		}

		go srv.ServeConn(ctx, nc)
	}
}

// ListenAndServeTCP listens on the TCP address, and serves clients.
func (srv *Server) ListenAndServeTCP(ctx context.Context, addr string) (err error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return
	}

	log.Printf("monitor: started TCP server at %v", listener.Addr())

	return srv.ServeTCP(ctx, listener)
}
