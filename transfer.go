package zmq

import (
	"bytes"
)

// Send sends data as one message part.  With SNDMORE the part is not the
// last of its multipart message; with DONTWAIT the call fails with EAGAIN
// instead of blocking.
//
// data is copied into a native message, so the caller keeps ownership of
// it.  The native message is released before Send returns, whether or not
// libzmq accepted it.
func (this *Socket) Send(data []byte, flags Flag) (err error) {
	p, e := this.handle("send")
	if e != nil {
		return e
	}

	msg, err := newSizedMessage(this.ctx.lib, len(data))
	if err != nil {
		return err
	}
	defer func() {
		if rerr := msg.release(); rerr != nil && err == nil {
			err = rerr
		}
	}()

	copy(msg.data(), data)

	if serr := this.ctx.lib.send(p, &msg.m, int(flags)); serr != nil {
		return newError("send", serr)
	}

	debugf("%v sent %d bytes, flags %v", this, len(data), flags)
	return nil
}

// SendString sends the bytes of text as one message part.  No terminator
// or framing is added.
func (this *Socket) SendString(text string, flags Flag) error {
	return this.Send([]byte(text), flags)
}

// Recv receives one message part.  Only DONTWAIT is meaningful here.  Use
// RcvMore to learn whether further parts of the same message follow.
func (this *Socket) Recv(flags Flag) (data []byte, err error) {
	err = this.recv(flags, func(b []byte) {
		data = make([]byte, len(b))
		copy(data, b)
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

// RecvString receives one message part as text.  The bytes are not checked
// for valid encoding.
func (this *Socket) RecvString(flags Flag) (string, error) {
	b, err := this.Recv(flags)
	return string(b), err
}

// XRecv is same as Recv except that it appends the part to buf, which can
// come from BufferPoolGet to reduce GC pressure.
func (this *Socket) XRecv(buf *bytes.Buffer, flags Flag) (n int, err error) {
	err = this.recv(flags, func(b []byte) {
		n, _ = buf.Write(b)
	})
	return
}

// recv runs one native receive and hands the received bytes to copyOut
// before the message is released.  copyOut must not retain its argument.
func (this *Socket) recv(flags Flag, copyOut func([]byte)) (err error) {
	p, e := this.handle("recv")
	if e != nil {
		return e
	}

	msg, err := newMessage(this.ctx.lib)
	if err != nil {
		return err
	}
	defer func() {
		if rerr := msg.release(); rerr != nil && err == nil {
			err = rerr
		}
	}()

	if rerr := this.ctx.lib.recv(p, &msg.m, int(flags)); rerr != nil {
		return newError("recv", rerr)
	}

	b := msg.data()
	copyOut(b)

	debugf("%v received %d bytes, flags %v", this, len(b), flags)
	return nil
}
