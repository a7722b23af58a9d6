//go:build cgo && !zmqstub

package zmq

/*
#cgo !windows pkg-config: libzmq
#cgo windows CFLAGS: -I/usr/local/include
#cgo windows LDFLAGS: -L/usr/local/lib -lzmq
#include <zmq.h>
#include <stdlib.h>
*/
import "C"

import (
	"fmt"
	"syscall"
	"unsafe"
)

// libzmq calls into the linked C library.  Every call that can fail uses
// cgo's two-value form, which captures errno on the calling OS thread right
// after the C function returns.  Calling zmq_errno() afterwards would be a
// second cgo call the goroutine may run on another thread.
type libzmq struct{}

var defaultEngine engine = libzmq{}

func init() {
	if uintptr(C.sizeof_zmq_msg_t) != unsafe.Sizeof(msgT{}) {
		panic(fmt.Sprintf("zmq: zmq_msg_t is %d bytes but the binding was built for %d",
			int(C.sizeof_zmq_msg_t), int(unsafe.Sizeof(msgT{}))))
	}
}

// failed makes sure a failing call always reports some errno, even if the
// C library forgot to set one.
func failed(err error) error {
	if err == nil {
		return syscall.Errno(0)
	}
	return err
}

func cmsg(m *msgT) *C.zmq_msg_t {
	return (*C.zmq_msg_t)(unsafe.Pointer(m))
}

func (libzmq) version() (major, minor, patch int) {
	var maj, min, pat C.int
	C.zmq_version(&maj, &min, &pat)
	return int(maj), int(min), int(pat)
}

func (libzmq) strerror(code int) string {
	s := C.zmq_strerror(C.int(code))
	if s == nil {
		return ""
	}
	return C.GoString(s)
}

func (libzmq) ctxNew(ioThreads int) (unsafe.Pointer, error) {
	ctx, err := C.zmq_init(C.int(ioThreads))
	if ctx == nil {
		return nil, failed(err)
	}
	return ctx, nil
}

func (libzmq) ctxTerm(ctx unsafe.Pointer) error {
	if rc, err := C.zmq_term(ctx); rc != 0 {
		return failed(err)
	}
	return nil
}

func (libzmq) socket(ctx unsafe.Pointer, kind int) (unsafe.Pointer, error) {
	s, err := C.zmq_socket(ctx, C.int(kind))
	if s == nil {
		return nil, failed(err)
	}
	return s, nil
}

func (libzmq) close(s unsafe.Pointer) error {
	if rc, err := C.zmq_close(s); rc != 0 {
		return failed(err)
	}
	return nil
}

func (libzmq) bind(s unsafe.Pointer, endpoint string) error {
	cs := C.CString(endpoint)
	defer C.free(unsafe.Pointer(cs))

	if rc, err := C.zmq_bind(s, cs); rc != 0 {
		return failed(err)
	}
	return nil
}

func (libzmq) connect(s unsafe.Pointer, endpoint string) error {
	cs := C.CString(endpoint)
	defer C.free(unsafe.Pointer(cs))

	if rc, err := C.zmq_connect(s, cs); rc != 0 {
		return failed(err)
	}
	return nil
}

func (libzmq) getsockopt(s unsafe.Pointer, option int, value unsafe.Pointer, size *uintptr) error {
	sz := C.size_t(*size)
	rc, err := C.zmq_getsockopt(s, C.int(option), value, &sz)
	if rc < 0 {
		return failed(err)
	}
	*size = uintptr(sz)
	return nil
}

func (libzmq) setsockopt(s unsafe.Pointer, option int, value unsafe.Pointer, size uintptr) error {
	if rc, err := C.zmq_setsockopt(s, C.int(option), value, C.size_t(size)); rc < 0 {
		return failed(err)
	}
	return nil
}

func (libzmq) msgInit(m *msgT) error {
	if rc, err := C.zmq_msg_init(cmsg(m)); rc != 0 {
		return failed(err)
	}
	return nil
}

func (libzmq) msgInitSize(m *msgT, size int) error {
	if rc, err := C.zmq_msg_init_size(cmsg(m), C.size_t(size)); rc != 0 {
		return failed(err)
	}
	return nil
}

func (libzmq) msgData(m *msgT) unsafe.Pointer {
	return C.zmq_msg_data(cmsg(m))
}

func (libzmq) msgSize(m *msgT) int {
	return int(C.zmq_msg_size(cmsg(m)))
}

func (libzmq) msgClose(m *msgT) error {
	if rc, err := C.zmq_msg_close(cmsg(m)); rc != 0 {
		return failed(err)
	}
	return nil
}

func (libzmq) send(s unsafe.Pointer, m *msgT, flags int) error {
	if rc, err := C.zmq_msg_send(cmsg(m), s, C.int(flags)); rc < 0 {
		return failed(err)
	}
	return nil
}

func (libzmq) recv(s unsafe.Pointer, m *msgT, flags int) error {
	if rc, err := C.zmq_msg_recv(cmsg(m), s, C.int(flags)); rc < 0 {
		return failed(err)
	}
	return nil
}
