package monitor

import (
	"errors"

	"github.com/ezrec/volve/translate"
)

var f = translate.From

var (
	ErrMessageType = errors.New(f("expected binary message"))
	ErrBufferSize  = errors.New(f("message buffer size mismatch"))
	ErrClosed      = errors.New(f("session closed"))
)

// ErrUnexpected indicates a reply other than MSG_ACK.
type ErrUnexpected Message

func (err ErrUnexpected) Error() string {
	return f("expected %v, got %v", MSG_ACK, Message(err))
}
