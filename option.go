package zmq

import (
	"math"
	"runtime"
	"strconv"
	"strings"
	"unsafe"
)

// Option identifies a typed slot on a socket.  The values are the libzmq
// option numbers.
type Option int

// HWM, SWAP, MCAST_LOOP and RECOVERY_IVL_MSEC exist only in libzmq 2.x;
// libzmq 3 and later reject them with EINVAL.  Use SNDHWM/RCVHWM and
// RECOVERY_IVL instead.  Option.Legacy reports them.
const (
	HWM               Option = 1
	SWAP              Option = 3
	AFFINITY          Option = 4
	IDENTITY          Option = 5
	SUBSCRIBE         Option = 6
	UNSUBSCRIBE       Option = 7
	RATE              Option = 8
	RECOVERY_IVL      Option = 9
	MCAST_LOOP        Option = 10
	SNDBUF            Option = 11
	RCVBUF            Option = 12
	RCVMORE           Option = 13
	FD                Option = 14
	EVENTS            Option = 15
	TYPE              Option = 16
	LINGER            Option = 17
	RECONNECT_IVL     Option = 18
	BACKLOG           Option = 19
	RECOVERY_IVL_MSEC Option = 20
	RECONNECT_IVL_MAX Option = 21
	MAXMSGSIZE        Option = 22
	SNDHWM            Option = 23
	RCVHWM            Option = 24
	MULTICAST_HOPS    Option = 25
	RCVTIMEO          Option = 27
	SNDTIMEO          Option = 28
	LAST_ENDPOINT     Option = 32
	ROUTER_MANDATORY  Option = 33
	TCP_KEEPALIVE     Option = 34
	IMMEDIATE         Option = 39
	XPUB_VERBOSE      Option = 40
	IPV6              Option = 42
)

// OptionShape is the Go type an option is read and written as.
type OptionShape int

const (
	ShapeInt64 OptionShape = iota
	ShapeUint64
	ShapeBytes
)

func (this OptionShape) String() string {
	switch this {
	case ShapeInt64:
		return "int64"
	case ShapeUint64:
		return "uint64"
	case ShapeBytes:
		return "bytes"
	}
	return "OptionShape(" + strconv.Itoa(int(this)) + ")"
}

type optionInfo struct {
	name  string
	shape OptionShape

	// width is the native size of an integer option.  libzmq 3 and later
	// declare most integer options as C int and reject 8-byte values for
	// them, so 8-byte Go values are narrowed with a range check.
	width uintptr

	// legacy options were removed in libzmq 3.
	legacy bool
}

const (
	cInt   = 4
	cInt64 = 8
)

var optionTable = map[Option]optionInfo{
	HWM:               {"hwm", ShapeUint64, cInt64, true},
	SWAP:              {"swap", ShapeInt64, cInt64, true},
	AFFINITY:          {"affinity", ShapeUint64, cInt64, false},
	IDENTITY:          {"identity", ShapeBytes, 0, false},
	SUBSCRIBE:         {"subscribe", ShapeBytes, 0, false},
	UNSUBSCRIBE:       {"unsubscribe", ShapeBytes, 0, false},
	RATE:              {"rate", ShapeInt64, cInt, false},
	RECOVERY_IVL:      {"recovery_ivl", ShapeInt64, cInt, false},
	MCAST_LOOP:        {"mcast_loop", ShapeInt64, cInt64, true},
	SNDBUF:            {"sndbuf", ShapeInt64, cInt, false},
	RCVBUF:            {"rcvbuf", ShapeInt64, cInt, false},
	RCVMORE:           {"rcvmore", ShapeInt64, cInt, false},
	FD:                {"fd", ShapeInt64, fdWidth(), false},
	EVENTS:            {"events", ShapeInt64, cInt, false},
	TYPE:              {"type", ShapeInt64, cInt, false},
	LINGER:            {"linger", ShapeInt64, cInt, false},
	RECONNECT_IVL:     {"reconnect_ivl", ShapeInt64, cInt, false},
	BACKLOG:           {"backlog", ShapeInt64, cInt, false},
	RECOVERY_IVL_MSEC: {"recovery_ivl_msec", ShapeInt64, cInt64, true},
	RECONNECT_IVL_MAX: {"reconnect_ivl_max", ShapeInt64, cInt, false},
	MAXMSGSIZE:        {"maxmsgsize", ShapeInt64, cInt64, false},
	SNDHWM:            {"sndhwm", ShapeInt64, cInt, false},
	RCVHWM:            {"rcvhwm", ShapeInt64, cInt, false},
	MULTICAST_HOPS:    {"multicast_hops", ShapeInt64, cInt, false},
	RCVTIMEO:          {"rcvtimeo", ShapeInt64, cInt, false},
	SNDTIMEO:          {"sndtimeo", ShapeInt64, cInt, false},
	LAST_ENDPOINT:     {"last_endpoint", ShapeBytes, 0, false},
	ROUTER_MANDATORY:  {"router_mandatory", ShapeInt64, cInt, false},
	TCP_KEEPALIVE:     {"tcp_keepalive", ShapeInt64, cInt, false},
	IMMEDIATE:         {"immediate", ShapeInt64, cInt, false},
	XPUB_VERBOSE:      {"xpub_verbose", ShapeInt64, cInt, false},
	IPV6:              {"ipv6", ShapeInt64, cInt, false},
}

// fdWidth is the size of libzmq's fd_t: a SOCKET handle on windows.
func fdWidth() uintptr {
	if runtime.GOOS == "windows" {
		return unsafe.Sizeof(uintptr(0))
	}
	return cInt
}

func (this Option) String() string {
	if info, ok := optionTable[this]; ok {
		return strings.ToUpper(info.name)
	}
	return "Option(" + strconv.Itoa(int(this)) + ")"
}

// Shape reports how the option is marshalled.  Options the binding does
// not know are treated as 8-byte signed integers.
func (this Option) Shape() OptionShape {
	if info, ok := optionTable[this]; ok {
		return info.shape
	}
	return ShapeInt64
}

// Legacy reports an option that only libzmq 2.x understands.
func (this Option) Legacy() bool {
	return optionTable[this].legacy
}

func (this Option) width() uintptr {
	if info, ok := optionTable[this]; ok && info.width != 0 {
		return info.width
	}
	return cInt64
}

// OptionByName looks an option up by name, ignoring case, e.g. "linger".
func OptionByName(name string) (Option, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for o, info := range optionTable {
		if info.name == name {
			return o, true
		}
	}
	return 0, false
}

// GetInt64 reads a signed integer option.
func (this *Socket) GetInt64(o Option) (int64, error) {
	p, e := this.handle("getsockopt")
	if e != nil {
		return 0, e
	}

	if o.width() == cInt {
		var v int32
		size := unsafe.Sizeof(v)
		if err := this.ctx.lib.getsockopt(p, int(o), unsafe.Pointer(&v), &size); err != nil {
			return 0, newError("getsockopt", err)
		}
		return int64(v), nil
	}

	var v int64
	size := unsafe.Sizeof(v)
	if err := this.ctx.lib.getsockopt(p, int(o), unsafe.Pointer(&v), &size); err != nil {
		return 0, newError("getsockopt", err)
	}
	return v, nil
}

// GetUint64 reads an unsigned integer option.
func (this *Socket) GetUint64(o Option) (uint64, error) {
	p, e := this.handle("getsockopt")
	if e != nil {
		return 0, e
	}

	if o.width() == cInt {
		var v int32
		size := unsafe.Sizeof(v)
		if err := this.ctx.lib.getsockopt(p, int(o), unsafe.Pointer(&v), &size); err != nil {
			return 0, newError("getsockopt", err)
		}
		if v < 0 {
			return 0, kindError("getsockopt", EINVAL)
		}
		return uint64(v), nil
	}

	var v uint64
	size := unsafe.Sizeof(v)
	if err := this.ctx.lib.getsockopt(p, int(o), unsafe.Pointer(&v), &size); err != nil {
		return 0, newError("getsockopt", err)
	}
	return v, nil
}

// GetBytes reads a binary option.  At most 255 bytes are returned, the
// limit libzmq places on the socket identity.
func (this *Socket) GetBytes(o Option) ([]byte, error) {
	p, e := this.handle("getsockopt")
	if e != nil {
		return nil, e
	}

	buf := make([]byte, maxBinaryOption)
	size := uintptr(len(buf))
	if err := this.ctx.lib.getsockopt(p, int(o), unsafe.Pointer(&buf[0]), &size); err != nil {
		return nil, newError("getsockopt", err)
	}
	if size > uintptr(len(buf)) {
		size = uintptr(len(buf))
	}
	return buf[:size], nil
}

// GetString reads a binary option as text, without any validation.
func (this *Socket) GetString(o Option) (string, error) {
	b, err := this.GetBytes(o)
	return string(b), err
}

// SetInt64 writes a signed integer option.
func (this *Socket) SetInt64(o Option, value int64) error {
	p, e := this.handle("setsockopt")
	if e != nil {
		return e
	}

	if o.width() == cInt {
		if value < math.MinInt32 || value > math.MaxInt32 {
			return kindError("setsockopt", EINVAL)
		}
		v := int32(value)
		if err := this.ctx.lib.setsockopt(p, int(o), unsafe.Pointer(&v), unsafe.Sizeof(v)); err != nil {
			return newError("setsockopt", err)
		}
		return nil
	}

	if err := this.ctx.lib.setsockopt(p, int(o), unsafe.Pointer(&value), unsafe.Sizeof(value)); err != nil {
		return newError("setsockopt", err)
	}
	return nil
}

// SetUint64 writes an unsigned integer option.
func (this *Socket) SetUint64(o Option, value uint64) error {
	p, e := this.handle("setsockopt")
	if e != nil {
		return e
	}

	if o.width() == cInt {
		if value > math.MaxInt32 {
			return kindError("setsockopt", EINVAL)
		}
		v := int32(value)
		if err := this.ctx.lib.setsockopt(p, int(o), unsafe.Pointer(&v), unsafe.Sizeof(v)); err != nil {
			return newError("setsockopt", err)
		}
		return nil
	}

	if err := this.ctx.lib.setsockopt(p, int(o), unsafe.Pointer(&value), unsafe.Sizeof(value)); err != nil {
		return newError("setsockopt", err)
	}
	return nil
}

// SetBytes writes a binary option such as IDENTITY or SUBSCRIBE.  An empty
// SUBSCRIBE value subscribes to everything.
func (this *Socket) SetBytes(o Option, value []byte) error {
	p, e := this.handle("setsockopt")
	if e != nil {
		return e
	}

	var ptr unsafe.Pointer
	if len(value) > 0 {
		ptr = unsafe.Pointer(&value[0])
	}
	if err := this.ctx.lib.setsockopt(p, int(o), ptr, uintptr(len(value))); err != nil {
		return newError("setsockopt", err)
	}
	return nil
}

// SetString writes text as a binary option.
func (this *Socket) SetString(o Option, value string) error {
	return this.SetBytes(o, []byte(value))
}

// RcvMore reports whether the last part received was followed by more
// parts of the same multipart message.
func (this *Socket) RcvMore() (bool, error) {
	v, err := this.GetInt64(RCVMORE)
	return v != 0, err
}

// Events returns the POLLIN/POLLOUT bits currently signalled on the socket.
func (this *Socket) Events() (int, error) {
	v, err := this.GetInt64(EVENTS)
	return int(v), err
}
