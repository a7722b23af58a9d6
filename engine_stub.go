//go:build !cgo || zmqstub

package zmq

import (
	"syscall"
	"unsafe"
)

// stubEngine is linked when cgo is unavailable.  Nothing can be created,
// so only the creation calls need to fail; the rest are unreachable.
type stubEngine struct{}

var defaultEngine engine = stubEngine{}

func unsupported() error {
	return syscall.Errno(ENOTSUP.Errno())
}

func (stubEngine) version() (major, minor, patch int) { return 0, 0, 0 }

func (stubEngine) strerror(code int) string { return "" }

func (stubEngine) ctxNew(ioThreads int) (unsafe.Pointer, error) { return nil, unsupported() }

func (stubEngine) ctxTerm(ctx unsafe.Pointer) error { return unsupported() }

func (stubEngine) socket(ctx unsafe.Pointer, kind int) (unsafe.Pointer, error) {
	return nil, unsupported()
}

func (stubEngine) close(s unsafe.Pointer) error { return unsupported() }

func (stubEngine) bind(s unsafe.Pointer, endpoint string) error { return unsupported() }

func (stubEngine) connect(s unsafe.Pointer, endpoint string) error { return unsupported() }

func (stubEngine) getsockopt(s unsafe.Pointer, option int, value unsafe.Pointer, size *uintptr) error {
	return unsupported()
}

func (stubEngine) setsockopt(s unsafe.Pointer, option int, value unsafe.Pointer, size uintptr) error {
	return unsupported()
}

func (stubEngine) msgInit(m *msgT) error { return unsupported() }

func (stubEngine) msgInitSize(m *msgT, size int) error { return unsupported() }

func (stubEngine) msgData(m *msgT) unsafe.Pointer { return nil }

func (stubEngine) msgSize(m *msgT) int { return 0 }

func (stubEngine) msgClose(m *msgT) error { return nil }

func (stubEngine) send(s unsafe.Pointer, m *msgT, flags int) error { return unsupported() }

func (stubEngine) recv(s unsafe.Pointer, m *msgT, flags int) error { return unsupported() }
