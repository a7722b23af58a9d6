package zmq

import (
	"strconv"
)

// SocketKind is the messaging pattern a Socket is tagged with at creation.
// The values are the libzmq socket type numbers.
type SocketKind int

const (
	PAIR   SocketKind = 0
	PUB    SocketKind = 1
	SUB    SocketKind = 2
	REQ    SocketKind = 3
	REP    SocketKind = 4
	DEALER SocketKind = 5
	ROUTER SocketKind = 6
	PULL   SocketKind = 7
	PUSH   SocketKind = 8
	XPUB   SocketKind = 9
	XSUB   SocketKind = 10
)

var socketKindNames = [...]string{
	PAIR:   "PAIR",
	PUB:    "PUB",
	SUB:    "SUB",
	REQ:    "REQ",
	REP:    "REP",
	DEALER: "DEALER",
	ROUTER: "ROUTER",
	PULL:   "PULL",
	PUSH:   "PUSH",
	XPUB:   "XPUB",
	XSUB:   "XSUB",
}

// SocketKinds lists every kind the binding supports, in numeric order.
var SocketKinds = []SocketKind{PAIR, PUB, SUB, REQ, REP, DEALER, ROUTER, PULL, PUSH, XPUB, XSUB}

func (this SocketKind) String() string {
	if this >= 0 && int(this) < len(socketKindNames) {
		return socketKindNames[this]
	}
	return "SocketKind(" + strconv.Itoa(int(this)) + ")"
}

// SocketKindByName looks a kind up by its name, e.g. "PUSH".  The match is
// case sensitive.
func SocketKindByName(name string) (SocketKind, bool) {
	for i, n := range socketKindNames {
		if n == name {
			return SocketKind(i), true
		}
	}
	return 0, false
}

// Flag modifies a single Send or Recv call.  Flags are or'ed together.
type Flag int

const (
	// DONTWAIT makes the call fail with EAGAIN instead of blocking.
	DONTWAIT Flag = 1

	// SNDMORE marks the part being sent as non-final in a multipart
	// message.  It has no effect on Recv.
	SNDMORE Flag = 2
)

func (this Flag) String() string {
	switch this {
	case 0:
		return "0"
	case DONTWAIT:
		return "DONTWAIT"
	case SNDMORE:
		return "SNDMORE"
	case DONTWAIT | SNDMORE:
		return "DONTWAIT|SNDMORE"
	}
	return "Flag(" + strconv.Itoa(int(this)) + ")"
}

// Event bits reported by the EVENTS socket option.
const (
	POLLIN  = 1
	POLLOUT = 2
	POLLERR = 4
)

// Message flags as libzmq stores them inside a message.
const (
	MSG_MORE   = 1
	MSG_SHARED = 128
)

// HAUSNUMERO is the base libzmq adds to its own error codes so they do not
// collide with errno values of the host system.
const HAUSNUMERO = 156384712

const (
	// maxBinaryOption is the capacity used when reading a byte valued
	// option.  The identity, the only binary option, is at most 255 bytes.
	maxBinaryOption = 255

	// msgSize is the size of zmq_msg_t in libzmq 4.x.
	msgSize = 64
)

// validPeers lists the kinds each kind may exchange messages with, as
// libzmq enforces during the connection handshake.
var validPeers = map[SocketKind][]SocketKind{
	PAIR:   {PAIR},
	PUB:    {SUB, XSUB},
	SUB:    {PUB, XPUB},
	REQ:    {REP, ROUTER},
	REP:    {REQ, DEALER},
	DEALER: {REP, DEALER, ROUTER},
	ROUTER: {REQ, DEALER, ROUTER},
	PULL:   {PUSH},
	PUSH:   {PULL},
	XPUB:   {SUB, XSUB},
	XSUB:   {PUB, XPUB},
}

// ValidPeers reports whether sockets of kinds a and b can talk to each
// other.
func ValidPeers(a, b SocketKind) bool {
	for _, k := range validPeers[a] {
		if k == b {
			return true
		}
	}
	return false
}

// CanSend reports whether sockets of this kind accept Send.
func (this SocketKind) CanSend() bool {
	return this != PULL && this != SUB
}

// CanRecv reports whether sockets of this kind accept Recv.
func (this SocketKind) CanRecv() bool {
	return this != PUSH && this != PUB
}
