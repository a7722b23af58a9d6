package zmq

import (
	"strings"
	"sync"
	"syscall"
	"unsafe"
)

// fakeEngine is an in-memory engine.  It follows libzmq's observable rules
// closely enough to exercise the binding: endpoint registry per context,
// one inbox per socket, width-checked options and message accounting.
type fakeEngine struct {
	sync.Mutex

	ctxs    map[unsafe.Pointer]*fakeCtx
	sockets map[unsafe.Pointer]*fakeSocket
	msgs    map[*msgT]*fakeMsg

	msgInits  int
	msgCloses int

	// injected failures
	failCtxTerm  error
	failSend     error
	failRecv     error
	failMsgClose error
	failMsgInit  error
}

type fakeCtx struct {
	bound   map[string]*fakeSocket
	pending map[string][]*fakeSocket
}

type fakeSocket struct {
	ctx     *fakeCtx
	kind    SocketKind
	peers   []*fakeSocket
	inbox   []fakePart
	rcvmore bool
	ints    map[int]int64
	ident   []byte
}

type fakePart struct {
	data []byte
	more bool
}

type fakeMsg struct {
	data []byte
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{
		ctxs:    make(map[unsafe.Pointer]*fakeCtx),
		sockets: make(map[unsafe.Pointer]*fakeSocket),
		msgs:    make(map[*msgT]*fakeMsg),
	}
}

func errnoOf(k Kind) error {
	return syscall.Errno(k.Errno())
}

func (this *fakeEngine) liveMessages() int {
	this.Lock()
	defer this.Unlock()
	return len(this.msgs)
}

func (this *fakeEngine) version() (int, int, int) { return 4, 3, 5 }

func (this *fakeEngine) strerror(code int) string {
	return "fake " + KindFromErrno(code).String()
}

func (this *fakeEngine) ctxNew(ioThreads int) (unsafe.Pointer, error) {
	if ioThreads < 0 {
		return nil, errnoOf(EINVAL)
	}
	this.Lock()
	defer this.Unlock()
	c := &fakeCtx{
		bound:   make(map[string]*fakeSocket),
		pending: make(map[string][]*fakeSocket),
	}
	p := unsafe.Pointer(c)
	this.ctxs[p] = c
	return p, nil
}

func (this *fakeEngine) ctxTerm(ctx unsafe.Pointer) error {
	this.Lock()
	defer this.Unlock()
	if this.failCtxTerm != nil {
		err := this.failCtxTerm
		this.failCtxTerm = nil
		return err
	}
	if _, ok := this.ctxs[ctx]; !ok {
		return errnoOf(EFAULT)
	}
	delete(this.ctxs, ctx)
	return nil
}

func (this *fakeEngine) socket(ctx unsafe.Pointer, kind int) (unsafe.Pointer, error) {
	this.Lock()
	defer this.Unlock()
	c, ok := this.ctxs[ctx]
	if !ok {
		return nil, errnoOf(EFAULT)
	}
	if kind < int(PAIR) || kind > int(XSUB) {
		return nil, errnoOf(EINVAL)
	}
	s := &fakeSocket{ctx: c, kind: SocketKind(kind), ints: make(map[int]int64)}
	p := unsafe.Pointer(s)
	this.sockets[p] = s
	return p, nil
}

func (this *fakeEngine) close(sp unsafe.Pointer) error {
	this.Lock()
	defer this.Unlock()
	s, ok := this.sockets[sp]
	if !ok {
		return errnoOf(ENOTSOCK)
	}
	for ep, b := range s.ctx.bound {
		if b == s {
			delete(s.ctx.bound, ep)
		}
	}
	delete(this.sockets, sp)
	return nil
}

func checkEndpoint(endpoint string) error {
	i := strings.Index(endpoint, "://")
	if i <= 0 || i+3 == len(endpoint) {
		return errnoOf(EINVAL)
	}
	switch endpoint[:i] {
	case "tcp", "ipc", "inproc":
		return nil
	}
	return errnoOf(EPROTONOSUPPORT)
}

func link(a, b *fakeSocket) {
	a.peers = append(a.peers, b)
	b.peers = append(b.peers, a)
}

func (this *fakeEngine) bind(sp unsafe.Pointer, endpoint string) error {
	this.Lock()
	defer this.Unlock()
	s, ok := this.sockets[sp]
	if !ok {
		return errnoOf(ENOTSOCK)
	}
	if err := checkEndpoint(endpoint); err != nil {
		return err
	}
	if _, inuse := s.ctx.bound[endpoint]; inuse {
		return errnoOf(EADDRINUSE)
	}
	s.ctx.bound[endpoint] = s
	for _, c := range s.ctx.pending[endpoint] {
		link(s, c)
	}
	delete(s.ctx.pending, endpoint)
	return nil
}

func (this *fakeEngine) connect(sp unsafe.Pointer, endpoint string) error {
	this.Lock()
	defer this.Unlock()
	s, ok := this.sockets[sp]
	if !ok {
		return errnoOf(ENOTSOCK)
	}
	if err := checkEndpoint(endpoint); err != nil {
		return err
	}
	if b, ok := s.ctx.bound[endpoint]; ok {
		link(s, b)
	} else {
		s.ctx.pending[endpoint] = append(s.ctx.pending[endpoint], s)
	}
	return nil
}

func fakeWidth(option int) uintptr {
	switch Option(option) {
	case HWM, SWAP, AFFINITY, MCAST_LOOP, RECOVERY_IVL_MSEC, MAXMSGSIZE:
		return 8
	}
	return 4
}

func (this *fakeEngine) getsockopt(sp unsafe.Pointer, option int, value unsafe.Pointer, size *uintptr) error {
	this.Lock()
	defer this.Unlock()
	s, ok := this.sockets[sp]
	if !ok {
		return errnoOf(ENOTSOCK)
	}

	switch Option(option) {
	case IDENTITY:
		if *size < uintptr(len(s.ident)) {
			return errnoOf(EINVAL)
		}
		copy(unsafe.Slice((*byte)(value), *size), s.ident)
		*size = uintptr(len(s.ident))
		return nil
	case SUBSCRIBE, UNSUBSCRIBE:
		return errnoOf(EINVAL)
	}

	var v int64
	switch Option(option) {
	case RCVMORE:
		if s.rcvmore {
			v = 1
		}
	case TYPE:
		v = int64(s.kind)
	default:
		v = s.ints[option]
	}

	w := fakeWidth(option)
	if *size != w {
		return errnoOf(EINVAL)
	}
	if w == 4 {
		*(*int32)(value) = int32(v)
	} else {
		*(*int64)(value) = v
	}
	return nil
}

func (this *fakeEngine) setsockopt(sp unsafe.Pointer, option int, value unsafe.Pointer, size uintptr) error {
	this.Lock()
	defer this.Unlock()
	s, ok := this.sockets[sp]
	if !ok {
		return errnoOf(ENOTSOCK)
	}

	switch Option(option) {
	case IDENTITY:
		if size == 0 || size > maxBinaryOption {
			return errnoOf(EINVAL)
		}
		s.ident = append([]byte(nil), unsafe.Slice((*byte)(value), size)...)
		return nil
	case SUBSCRIBE, UNSUBSCRIBE:
		if s.kind != SUB && s.kind != XSUB {
			return errnoOf(EINVAL)
		}
		return nil
	case RCVMORE, TYPE, EVENTS, FD, LAST_ENDPOINT:
		return errnoOf(EINVAL)
	}

	w := fakeWidth(option)
	if size != w {
		return errnoOf(EINVAL)
	}
	if w == 4 {
		s.ints[option] = int64(*(*int32)(value))
	} else {
		s.ints[option] = *(*int64)(value)
	}
	return nil
}

func (this *fakeEngine) msgInit(m *msgT) error {
	return this.msgInitSize(m, 0)
}

func (this *fakeEngine) msgInitSize(m *msgT, size int) error {
	this.Lock()
	defer this.Unlock()
	if this.failMsgInit != nil {
		return this.failMsgInit
	}
	this.msgs[m] = &fakeMsg{data: make([]byte, size)}
	this.msgInits++
	return nil
}

func (this *fakeEngine) msgData(m *msgT) unsafe.Pointer {
	this.Lock()
	defer this.Unlock()
	fm, ok := this.msgs[m]
	if !ok || len(fm.data) == 0 {
		return nil
	}
	return unsafe.Pointer(&fm.data[0])
}

func (this *fakeEngine) msgSize(m *msgT) int {
	this.Lock()
	defer this.Unlock()
	if fm, ok := this.msgs[m]; ok {
		return len(fm.data)
	}
	return 0
}

func (this *fakeEngine) msgClose(m *msgT) error {
	this.Lock()
	defer this.Unlock()
	if _, ok := this.msgs[m]; !ok {
		return errnoOf(EFAULT)
	}
	delete(this.msgs, m)
	this.msgCloses++
	if this.failMsgClose != nil {
		return this.failMsgClose
	}
	return nil
}

func (this *fakeEngine) send(sp unsafe.Pointer, m *msgT, flags int) error {
	this.Lock()
	defer this.Unlock()
	if this.failSend != nil {
		return this.failSend
	}
	s, ok := this.sockets[sp]
	if !ok {
		return errnoOf(ENOTSOCK)
	}
	if !s.kind.CanSend() {
		return errnoOf(ENOTSUP)
	}
	fm, ok := this.msgs[m]
	if !ok {
		return errnoOf(EFAULT)
	}
	if len(s.peers) == 0 {
		return errnoOf(EAGAIN)
	}

	peer := s.peers[0]
	peer.inbox = append(peer.inbox, fakePart{
		data: append([]byte(nil), fm.data...),
		more: flags&int(SNDMORE) != 0,
	})
	// a sent message is left empty, as libzmq does
	fm.data = nil
	return nil
}

func (this *fakeEngine) recv(sp unsafe.Pointer, m *msgT, flags int) error {
	this.Lock()
	defer this.Unlock()
	if this.failRecv != nil {
		return this.failRecv
	}
	s, ok := this.sockets[sp]
	if !ok {
		return errnoOf(ENOTSOCK)
	}
	if !s.kind.CanRecv() {
		return errnoOf(ENOTSUP)
	}
	fm, ok := this.msgs[m]
	if !ok {
		return errnoOf(EFAULT)
	}
	if len(s.inbox) == 0 {
		return errnoOf(EAGAIN)
	}

	part := s.inbox[0]
	s.inbox = s.inbox[1:]
	fm.data = part.data
	s.rcvmore = part.more
	return nil
}
