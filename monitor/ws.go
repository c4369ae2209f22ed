package monitor

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"
)

// WS_PATH is the conventional path of the WebSocket handler.
const WS_PATH = "/volve"

var wsUpgrader = websocket.Upgrader{}

// wsConn carries the protocol in binary messages. A command may span
// several messages, and a message may hold several commands.
type wsConn struct {
	*pump
	conn *websocket.Conn
}

func newWsConn(conn *websocket.Conn) (wc *wsConn) {
	wc = &wsConn{conn: conn}
	wc.pump = newPump(wc.recv)
	return
}

func (wc *wsConn) recv() ([]uint8, error) {
	tp, msg, err := wc.conn.ReadMessage()
	if err != nil {
		return nil, err
	}
	if tp != websocket.BinaryMessage {
		return nil, ErrMessageType
	}
	return msg, nil
}

func (wc *wsConn) out(b sendBuf) error {
	return wc.conn.WriteMessage(websocket.BinaryMessage, b.buf)
}

// ServeHTTP upgrades the request to a WebSocket, and serves the client
// until it disconnects.
func (srv *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if srv.Verbose {
		log.Printf("monitor: new client connection from %v", r.RemoteAddr)
	}

	conn, err := wsUpgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("monitor: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	wc := newWsConn(conn)
	defer wc.stop()

	ss, err := srv.newSession(wc, r.RemoteAddr)
	if err != nil {
		log.Printf("monitor: %v", err)
		return
	}

	ss.Serve(r.Context())
}
