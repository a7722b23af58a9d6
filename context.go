package zmq

import (
	"sync/atomic"
	"unsafe"

	"go.uber.org/zap"
)

// Context owns libzmq's background I/O threads.  Every Socket is created
// from one and must be closed before, or while, the Context is terminated.
//
// A Context may be used from several goroutines.  It must not be copied.
type Context struct {
	lib       engine
	ptr       unsafe.Pointer // nil once terminated; accessed atomically
	ioThreads int
}

// Init creates a Context running ioThreads background I/O threads.  Zero is
// valid when only inproc endpoints are used.
func Init(ioThreads int) (*Context, error) {
	return initContext(defaultEngine, ioThreads)
}

func initContext(lib engine, ioThreads int) (*Context, error) {
	ptr, err := lib.ctxNew(ioThreads)
	if err != nil {
		e := newError("init", err)
		Logger().Debug("context init failed", zap.Int("io_threads", ioThreads), zap.Error(e))
		return nil, e
	}

	Logger().Debug("context created", zap.Int("io_threads", ioThreads))
	return &Context{lib: lib, ptr: ptr, ioThreads: ioThreads}, nil
}

// IOThreads is the thread count the Context was created with.
func (this *Context) IOThreads() int {
	return this.ioThreads
}

func (this *Context) handle() unsafe.Pointer {
	return atomic.LoadPointer(&this.ptr)
}

// Socket creates a socket of the given kind.
func (this *Context) Socket(kind SocketKind) (*Socket, error) {
	p := this.handle()
	if p == nil {
		return nil, kindError("socket", ETERM)
	}

	s, err := this.lib.socket(p, int(kind))
	if err != nil {
		e := newError("socket", err)
		Logger().Debug("socket failed", zap.Stringer("kind", kind), zap.Error(e))
		return nil, e
	}

	Logger().Debug("socket opened", zap.Stringer("kind", kind))
	return &Socket{ctx: this, kind: kind, ptr: s}, nil
}

// Term destroys the Context.  libzmq blocks until every socket created from
// it has been closed, and makes blocking calls on those sockets fail with
// ETERM.
//
// Only the first call reaches libzmq; later calls return EFAULT, which is
// what libzmq reports for an invalid context.
func (this *Context) Term() error {
	p := atomic.SwapPointer(&this.ptr, nil)
	if p == nil {
		return kindError("term", EFAULT)
	}

	if err := this.lib.ctxTerm(p); err != nil {
		e := newError("term", err)
		if e.Kind == EINTR {
			// interrupted termination may be restarted by the caller
			atomic.StorePointer(&this.ptr, p)
		}
		Logger().Debug("context term failed", zap.Error(e))
		return e
	}

	Logger().Debug("context terminated")
	return nil
}
