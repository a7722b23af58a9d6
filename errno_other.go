//go:build !unix

package zmq

// hostCodes follow zmq.h's fallbacks for runtimes whose errno.h lacks the
// socket errors, and the C runtime values for the rest.
var hostCodes = map[Kind]int{
	ENOTSUP:         HAUSNUMERO + 1,
	EPROTONOSUPPORT: HAUSNUMERO + 2,
	ENOBUFS:         HAUSNUMERO + 3,
	ENETDOWN:        HAUSNUMERO + 4,
	EADDRINUSE:      HAUSNUMERO + 5,
	EADDRNOTAVAIL:   HAUSNUMERO + 6,
	ECONNREFUSED:    HAUSNUMERO + 7,
	EINPROGRESS:     HAUSNUMERO + 8,
	ENOTSOCK:        HAUSNUMERO + 9,
	EHOSTUNREACH:    HAUSNUMERO + 16,
	EAGAIN:          11,
	EINTR:           4,
	EINVAL:          22,
	EFAULT:          14,
	EMFILE:          24,
	ENOMEM:          12,
	ENOENT:          2,
	ENODEV:          19,
}

func errnoName(code int) string {
	return ""
}
