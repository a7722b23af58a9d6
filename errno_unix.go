//go:build unix

package zmq

import (
	"syscall"

	"golang.org/x/sys/unix"
)

// hostCodes are the kinds whose value comes from the host errno.h.  zmq.h
// only falls back to HAUSNUMERO+n when errno.h lacks a definition, which
// never happens on unix systems.
var hostCodes = map[Kind]int{
	ENOTSUP:         int(unix.ENOTSUP),
	EPROTONOSUPPORT: int(unix.EPROTONOSUPPORT),
	ENOBUFS:         int(unix.ENOBUFS),
	ENETDOWN:        int(unix.ENETDOWN),
	EADDRINUSE:      int(unix.EADDRINUSE),
	EADDRNOTAVAIL:   int(unix.EADDRNOTAVAIL),
	ECONNREFUSED:    int(unix.ECONNREFUSED),
	EINPROGRESS:     int(unix.EINPROGRESS),
	ENOTSOCK:        int(unix.ENOTSOCK),
	EAGAIN:          int(unix.EAGAIN),
	EINTR:           int(unix.EINTR),
	EINVAL:          int(unix.EINVAL),
	EFAULT:          int(unix.EFAULT),
	EMFILE:          int(unix.EMFILE),
	ENOMEM:          int(unix.ENOMEM),
	ENOENT:          int(unix.ENOENT),
	ENODEV:          int(unix.ENODEV),
	EHOSTUNREACH:    int(unix.EHOSTUNREACH),
}

// errnoName returns the symbolic name of a host errno, e.g. "EPIPE".
func errnoName(code int) string {
	if code <= 0 || code >= HAUSNUMERO {
		return ""
	}
	return unix.ErrnoName(syscall.Errno(code))
}
