package zmq

import (
	"errors"
	"strconv"
	"syscall"
)

// Kind classifies a libzmq failure.  The set is closed: codes this package
// does not recognize map to KindUnknown and keep their raw value in
// Error.Code.
//
// A Kind is itself an error, so callers can write
//
//	if errors.Is(err, zmq.EAGAIN) { ... }
type Kind int

const (
	KindUnknown Kind = iota

	// libzmq's own taxonomy.  The first nine reuse the host errno value
	// when errno.h defines it and fall back to HAUSNUMERO+n otherwise.
	ENOTSUP
	EPROTONOSUPPORT
	ENOBUFS
	ENETDOWN
	EADDRINUSE
	EADDRNOTAVAIL
	ECONNREFUSED
	EINPROGRESS
	ENOTSOCK
	EFSM
	ENOCOMPATPROTO
	ETERM
	EMTHREAD

	// POSIX codes libzmq reports directly.
	EAGAIN
	EINTR
	EINVAL
	EFAULT
	EMFILE
	ENOMEM
	ENOENT
	ENODEV
	EHOSTUNREACH

	kindCount
)

var kindNames = [...]string{
	KindUnknown:     "UNKNOWN",
	ENOTSUP:         "ENOTSUP",
	EPROTONOSUPPORT: "EPROTONOSUPPORT",
	ENOBUFS:         "ENOBUFS",
	ENETDOWN:        "ENETDOWN",
	EADDRINUSE:      "EADDRINUSE",
	EADDRNOTAVAIL:   "EADDRNOTAVAIL",
	ECONNREFUSED:    "ECONNREFUSED",
	EINPROGRESS:     "EINPROGRESS",
	ENOTSOCK:        "ENOTSOCK",
	EFSM:            "EFSM",
	ENOCOMPATPROTO:  "ENOCOMPATPROTO",
	ETERM:           "ETERM",
	EMTHREAD:        "EMTHREAD",
	EAGAIN:          "EAGAIN",
	EINTR:           "EINTR",
	EINVAL:          "EINVAL",
	EFAULT:          "EFAULT",
	EMFILE:          "EMFILE",
	ENOMEM:          "ENOMEM",
	ENOENT:          "ENOENT",
	ENODEV:          "ENODEV",
	EHOSTUNREACH:    "EHOSTUNREACH",
}

// zmqCodes are the libzmq specific errors, identical on every platform.
var zmqCodes = map[Kind]int{
	EFSM:           HAUSNUMERO + 51,
	ENOCOMPATPROTO: HAUSNUMERO + 52,
	ETERM:          HAUSNUMERO + 53,
	EMTHREAD:       HAUSNUMERO + 54,
}

var (
	kindCodes  [kindCount]int
	codeToKind = make(map[int]Kind, kindCount)
)

func init() {
	for k, code := range hostCodes {
		kindCodes[k] = code
	}
	for k, code := range zmqCodes {
		kindCodes[k] = code
	}
	for k := KindUnknown + 1; k < kindCount; k++ {
		codeToKind[kindCodes[k]] = k
	}
}

// Kinds returns every named kind, excluding KindUnknown.
func Kinds() []Kind {
	kinds := make([]Kind, 0, kindCount-1)
	for k := KindUnknown + 1; k < kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// KindFromErrno translates a native errno value into a Kind.
func KindFromErrno(code int) Kind {
	if k, ok := codeToKind[code]; ok {
		return k
	}
	return KindUnknown
}

// Errno is the native errno value of a named kind.  KindUnknown has no
// code of its own and yields 0.
func (this Kind) Errno() int {
	if this <= KindUnknown || this >= kindCount {
		return 0
	}
	return kindCodes[this]
}

func (this Kind) String() string {
	if this >= 0 && this < kindCount {
		return kindNames[this]
	}
	return "Kind(" + strconv.Itoa(int(this)) + ")"
}

func (this Kind) Error() string {
	if s := describe(this.Errno()); s != "" && this != KindUnknown {
		return s
	}
	return this.String()
}

// Error is a failure reported by libzmq.  It is created at the point of
// failure from the errno sampled by the same native call and never changes
// afterwards.
type Error struct {
	// Op is the native operation that failed, e.g. "bind" or "send".
	Op string

	// Endpoint is set for bind and connect failures.
	Endpoint string

	Kind Kind

	// Code is the errno exactly as libzmq reported it.
	Code int
}

// newError translates the errno an engine call returned.
func newError(op string, err error) *Error {
	code := 0
	var errno syscall.Errno
	if errors.As(err, &errno) {
		code = int(errno)
	}
	return &Error{
		Op:   op,
		Kind: KindFromErrno(code),
		Code: code,
	}
}

// kindError synthesizes an error for a condition detected before reaching
// libzmq, using the code libzmq itself would have reported.
func kindError(op string, k Kind) *Error {
	return &Error{Op: op, Kind: k, Code: k.Errno()}
}

func (this *Error) Error() string {
	s := "zmq " + this.Op
	if this.Endpoint != "" {
		s += " " + this.Endpoint
	}
	s += ": "

	if d := this.Describe(); d != "" {
		return s + d
	}
	if this.Kind == KindUnknown {
		if name := errnoName(this.Code); name != "" {
			return s + name
		}
		return s + "errno " + strconv.Itoa(this.Code)
	}
	return s + this.Kind.String()
}

// Errno translates the error back into the native code.  For named kinds
// this is the exact inverse of KindFromErrno; unknown errors return the code
// they carry.
func (this *Error) Errno() int {
	if this.Kind == KindUnknown {
		return this.Code
	}
	return this.Kind.Errno()
}

// Describe returns libzmq's message for the error, or "" if libzmq has none.
func (this *Error) Describe() string {
	return describe(this.Errno())
}

// Unwrap exposes the native code as a syscall.Errno.
func (this *Error) Unwrap() error {
	return syscall.Errno(this.Errno())
}

// Is matches a Kind, or another *Error of the same kind (and code, for
// unknown errors).
func (this *Error) Is(target error) bool {
	switch t := target.(type) {
	case Kind:
		return t != KindUnknown && this.Kind == t
	case *Error:
		if t == nil {
			return false
		}
		if t.Kind == KindUnknown {
			return this.Kind == KindUnknown && this.Code == t.Code
		}
		return this.Kind == t.Kind
	}
	return false
}

// Timeout reports a non-blocking call that would have blocked, or a native
// send/receive timeout expiring.
func (this *Error) Timeout() bool {
	return this.Kind == EAGAIN
}

func (this *Error) Temporary() bool {
	return this.Kind == EAGAIN || this.Kind == EINTR
}

// KindOf extracts the Kind from err, which may wrap a *Error.  It returns
// KindUnknown for nil or foreign errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	var k Kind
	if errors.As(err, &k) {
		return k
	}
	return KindUnknown
}

// Describe returns libzmq's human readable text for err, or "" when err is
// not a libzmq error or libzmq cannot describe it.
func Describe(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Describe()
	}
	var k Kind
	if errors.As(err, &k) && k != KindUnknown {
		return describe(k.Errno())
	}
	return ""
}

func describe(code int) string {
	return defaultEngine.strerror(code)
}
