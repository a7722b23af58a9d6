package api

import (
	"errors"
	"time"

	"github.com/funkygao/zmq"
)

var ErrBadPeers = errors.New("sockets cannot forward to each other")

// MinProxyIdle is the shortest pause Proxy takes when nothing moved.
const MinProxyIdle = 100 * time.Microsecond

// Device forwards every message received on from to to, multipart
// boundaries included, until either socket fails.  It blocks; closing
// either socket's context makes it return ETERM.  Both sockets belong to
// the calling goroutine for the duration.
func Device(from, to *zmq.Socket) error {
	for {
		if err := forwardOne(from, to, 0); err != nil {
			return err
		}
	}
}

// forwardOne moves one complete message.  Only the first part honours
// flags: the rest of a multipart message is already queued.
func forwardOne(from, to *zmq.Socket, flags zmq.Flag) error {
	for {
		part, err := from.Recv(flags)
		if err != nil {
			return err
		}
		more, err := from.RcvMore()
		if err != nil {
			return err
		}

		var f zmq.Flag
		if more {
			f = zmq.SNDMORE
		}
		if err = to.Send(part, f); err != nil {
			return err
		}
		if !more {
			return nil
		}
		flags = 0
	}
}

// routes reports which directions a proxy between the two kinds can move
// messages in: a direction needs a side that receives and a side that
// sends.
func routes(frontend, backend zmq.SocketKind) (forward, backward bool) {
	forward = frontend.CanRecv() && backend.CanSend()
	backward = backend.CanRecv() && frontend.CanSend()
	return
}

func proxyIdle(idle time.Duration) time.Duration {
	if idle < MinProxyIdle {
		return MinProxyIdle
	}
	return idle
}

// Proxy shuttles messages between frontend and backend from a single
// goroutine: ROUTER/DEALER and XSUB/XPUB both ways, PULL/PUSH one way.
// Each direction runs only when its receiving side can Recv and its
// sending side can Send; kinds with no usable direction get ErrBadPeers.
// With nothing to move it sleeps for idle, at least MinProxyIdle.  It
// returns the first error other than EAGAIN.
func Proxy(frontend, backend *zmq.Socket, idle time.Duration) error {
	forward, backward := routes(frontend.Kind(), backend.Kind())
	if !forward && !backward {
		return ErrBadPeers
	}
	idle = proxyIdle(idle)

	var pairs [][2]*zmq.Socket
	if forward {
		pairs = append(pairs, [2]*zmq.Socket{frontend, backend})
	}
	if backward {
		pairs = append(pairs, [2]*zmq.Socket{backend, frontend})
	}

	for {
		moved := false
		for _, pair := range pairs {
			err := forwardOne(pair[0], pair[1], zmq.DONTWAIT)
			switch {
			case err == nil:
				moved = true
			case zmq.KindOf(err) != zmq.EAGAIN:
				return err
			}
		}
		if !moved {
			time.Sleep(idle)
		}
	}
}
