// Package monitor serves a remote single-step debugging protocol for the
// emulator over TCP and WebSocket connections.
//
// Every message starts with a one byte header. Commands from the client
// are answered with MSG_ACK (and any reply payload), or MSG_FAIL. Words
// are sent big-endian. While tracing is enabled, the server sends a
// MSG_EVENT_TRACE_EXEC event before each instruction executes, which the
// client answers with MSG_ACK or MSG_FAIL.
package monitor
