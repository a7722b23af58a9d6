package zmq

import (
	"sync/atomic"
	"unsafe"

	"go.uber.org/zap"
)

// Socket is a typed libzmq socket.  Its kind is fixed at creation.
//
// A Socket must only be used by one goroutine at a time and must be closed
// before its Context is terminated.  It must not be copied.
type Socket struct {
	ctx  *Context
	kind SocketKind
	ptr  unsafe.Pointer // nil once closed; accessed atomically
}

// Kind returns the messaging pattern the socket was created with.
func (this *Socket) Kind() SocketKind {
	return this.kind
}

// Context returns the Context the socket was created from.
func (this *Socket) Context() *Context {
	return this.ctx
}

func (this *Socket) String() string {
	return "zmq.Socket(" + this.kind.String() + ")"
}

// handle returns the native socket, or ENOTSOCK once the socket is closed.
func (this *Socket) handle(op string) (unsafe.Pointer, *Error) {
	p := atomic.LoadPointer(&this.ptr)
	if p == nil {
		return nil, kindError(op, ENOTSOCK)
	}
	return p, nil
}

// Bind accepts incoming connections on endpoint, e.g.
// "tcp://127.0.0.1:5555", "ipc:///tmp/feed" or "inproc://feed".  The
// endpoint is passed to libzmq unchanged.
func (this *Socket) Bind(endpoint string) error {
	p, e := this.handle("bind")
	if e != nil {
		e.Endpoint = endpoint
		return e
	}

	if err := this.ctx.lib.bind(p, endpoint); err != nil {
		e := newError("bind", err)
		e.Endpoint = endpoint
		Logger().Debug("bind failed", zap.Stringer("socket", this), zap.String("endpoint", endpoint), zap.Error(e))
		return e
	}

	Logger().Debug("bound", zap.Stringer("socket", this), zap.String("endpoint", endpoint))
	return nil
}

// Connect connects the socket to endpoint.  libzmq connects in the
// background, so success does not mean a peer is reachable.
func (this *Socket) Connect(endpoint string) error {
	p, e := this.handle("connect")
	if e != nil {
		e.Endpoint = endpoint
		return e
	}

	if err := this.ctx.lib.connect(p, endpoint); err != nil {
		e := newError("connect", err)
		e.Endpoint = endpoint
		Logger().Debug("connect failed", zap.Stringer("socket", this), zap.String("endpoint", endpoint), zap.Error(e))
		return e
	}

	Logger().Debug("connected", zap.Stringer("socket", this), zap.String("endpoint", endpoint))
	return nil
}

// Close closes the socket.  Only the first call reaches libzmq; later calls
// return ENOTSOCK.
func (this *Socket) Close() error {
	p := atomic.SwapPointer(&this.ptr, nil)
	if p == nil {
		return kindError("close", ENOTSOCK)
	}

	if err := this.ctx.lib.close(p); err != nil {
		e := newError("close", err)
		Logger().Debug("close failed", zap.Stringer("socket", this), zap.Error(e))
		return e
	}

	Logger().Debug("socket closed", zap.Stringer("socket", this))
	return nil
}
