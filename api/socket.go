package api

import (
	"github.com/funkygao/zmq"
)

// Socket adds multipart helpers to a zmq.Socket.  Everything else is
// promoted from the embedded socket unchanged.
type Socket struct {
	*zmq.Socket
}

// NewSocket opens a socket of kind on ctx.
func NewSocket(ctx *zmq.Context, kind zmq.SocketKind) (*Socket, error) {
	if _, ok := zmq.SocketKindByName(kind.String()); !ok {
		return nil, ErrBadKind
	}

	s, err := ctx.Socket(kind)
	if err != nil {
		return nil, err
	}
	return &Socket{Socket: s}, nil
}

// SendMultipart sends parts as one multipart message: every part but the
// last carries SNDMORE.  flags is applied to every part, so DONTWAIT may
// fail with EAGAIN after some parts were queued; libzmq then discards the
// incomplete message when the socket is closed.
func (this *Socket) SendMultipart(parts [][]byte, flags zmq.Flag) error {
	if len(parts) == 0 {
		return ErrEmptyMessage
	}

	last := len(parts) - 1
	for i, part := range parts {
		f := flags &^ zmq.SNDMORE
		if i < last {
			f |= zmq.SNDMORE
		}
		if err := this.Send(part, f); err != nil {
			return err
		}
	}
	return nil
}

// RecvMultipart receives parts until RCVMORE is false.  Only the first
// receive honours DONTWAIT: libzmq delivers multipart messages atomically,
// so the remaining parts are already queued.
func (this *Socket) RecvMultipart(flags zmq.Flag) ([][]byte, error) {
	var parts [][]byte
	for {
		part, err := this.Recv(flags)
		if err != nil {
			return nil, err
		}
		parts = append(parts, part)

		more, err := this.RcvMore()
		if err != nil {
			return nil, err
		}
		if !more {
			return parts, nil
		}
		flags &^= zmq.DONTWAIT
	}
}
