package zmq

import (
	"unsafe"
)

// msgT mirrors libzmq's zmq_msg_t: 64 opaque bytes aligned on 8.  libzmq
// keeps small messages inline and a pointer to heap storage otherwise; Go
// never looks inside.  The cgo engine checks the size against zmq.h at
// init.
type msgT struct {
	_ [msgSize / 8]uint64
}

// engine is the boundary to libzmq.  Each method wraps exactly one native
// call.  A failing call returns the errno sampled by that same call as a
// syscall.Errno; no other native call may run in between.
//
// Handles are opaque pointers owned by libzmq.  Option values and messages
// are Go memory that libzmq only reads or writes for the duration of the
// call.
type engine interface {
	version() (major, minor, patch int)
	strerror(code int) string

	// context
	ctxNew(ioThreads int) (unsafe.Pointer, error)
	ctxTerm(ctx unsafe.Pointer) error

	// socket
	socket(ctx unsafe.Pointer, kind int) (unsafe.Pointer, error)
	close(s unsafe.Pointer) error
	bind(s unsafe.Pointer, endpoint string) error
	connect(s unsafe.Pointer, endpoint string) error

	// options; size is in/out for getsockopt
	getsockopt(s unsafe.Pointer, option int, value unsafe.Pointer, size *uintptr) error
	setsockopt(s unsafe.Pointer, option int, value unsafe.Pointer, size uintptr) error

	// messages
	msgInit(m *msgT) error
	msgInitSize(m *msgT, size int) error
	msgData(m *msgT) unsafe.Pointer
	msgSize(m *msgT) int
	msgClose(m *msgT) error
	send(s unsafe.Pointer, m *msgT, flags int) error
	recv(s unsafe.Pointer, m *msgT, flags int) error
}

// Version reports the version of the linked libzmq.
func Version() (major, minor, patch int) {
	return defaultEngine.version()
}
