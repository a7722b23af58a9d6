package zmq

import (
	"unsafe"
)

// message is a single zmq_msg_t in flight.  It belongs to exactly one Send
// or Recv call, is never shared or reused, and must be released exactly
// once on every path out of that call, including failures.  This file and
// the engine are the only places that touch native memory.
type message struct {
	lib  engine
	m    msgT
	live bool
}

// newMessage prepares an empty message for a receive.
func newMessage(lib engine) (*message, error) {
	msg := &message{lib: lib}
	if err := lib.msgInit(&msg.m); err != nil {
		return nil, newError("msg_init", err)
	}
	msg.live = true
	return msg, nil
}

// newSizedMessage allocates a message able to hold exactly n bytes, for a
// send.
func newSizedMessage(lib engine, n int) (*message, error) {
	if n < 0 {
		return nil, kindError("msg_init_size", EINVAL)
	}

	msg := &message{lib: lib}
	if err := lib.msgInitSize(&msg.m, n); err != nil {
		return nil, newError("msg_init_size", err)
	}
	msg.live = true
	return msg, nil
}

// size is the number of bytes the message holds.
func (this *message) size() int {
	if !this.live {
		return 0
	}
	return this.lib.msgSize(&this.m)
}

// data is a view over the native storage.  It is only valid until release
// and must not be retained.
func (this *message) data() []byte {
	n := this.size()
	if n == 0 {
		return nil
	}
	p := this.lib.msgData(&this.m)
	if p == nil {
		return nil
	}
	return unsafe.Slice((*byte)(p), n)
}

// release closes the native message.  Only the first call reaches libzmq.
func (this *message) release() error {
	if !this.live {
		return nil
	}
	this.live = false
	if err := this.lib.msgClose(&this.m); err != nil {
		return newError("msg_close", err)
	}
	return nil
}
