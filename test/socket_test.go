//go:build cgo && !zmqstub

package test

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funkygao/zmq"
)

func TestEveryKindOpensAndCloses(t *testing.T) {
	ctx := newContext(t)
	for _, kind := range zmq.SocketKinds {
		sock, err := ctx.Socket(kind)
		require.NoError(t, err, kind.String())

		typ, err := sock.GetInt64(zmq.TYPE)
		require.NoError(t, err)
		assert.Equal(t, int64(kind), typ)
		assert.Nil(t, sock.Close(), kind.String())
	}
	assert.Nil(t, ctx.Term())
}

func TestSocketCloseMoreThanOnce(t *testing.T) {
	ctx := newContext(t)
	defer ctx.Term()

	sock, _ := ctx.Socket(zmq.REQ)
	err := sock.Close()
	assert.Equal(t, nil, err)
	err = sock.Close()
	assert.True(t, errors.Is(err, zmq.ENOTSOCK))
}

func TestSocketConcurrentClose(t *testing.T) {
	ctx := newContext(t)
	defer ctx.Term()

	sock, _ := ctx.Socket(zmq.REQ)
	var n int32
	var wg sync.WaitGroup
	const c = 10
	for i := 0; i < c; i++ {
		wg.Add(1)
		go func() {
			if sock.Close() != nil {
				atomic.AddInt32(&n, 1)
			}
			wg.Done()
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(c-1), n)
}

func TestTermMoreThanOnce(t *testing.T) {
	ctx := newContext(t)
	assert.Nil(t, ctx.Term())
	assert.Equal(t, zmq.EFAULT, zmq.KindOf(ctx.Term()))

	_, err := ctx.Socket(zmq.PUSH)
	assert.Equal(t, zmq.ETERM, zmq.KindOf(err))
}

func TestBindAddressInUse(t *testing.T) {
	ctx := newContext(t)
	defer ctx.Term()

	a := newSocket(t, ctx, zmq.PULL)
	defer a.Close()
	b := newSocket(t, ctx, zmq.PULL)
	defer b.Close()

	require.NoError(t, a.Bind("tcp://127.0.0.1:*"))
	ep, err := a.GetString(zmq.LAST_ENDPOINT)
	require.NoError(t, err)
	// LAST_ENDPOINT is NUL terminated
	if n := len(ep); n > 0 && ep[n-1] == 0 {
		ep = ep[:n-1]
	}

	err = b.Bind(ep)
	assert.Equal(t, zmq.EADDRINUSE, zmq.KindOf(err))
	assert.Equal(t, ep, err.(*zmq.Error).Endpoint)

	ipc := inproc("dup")
	require.NoError(t, a.Bind(ipc))
	assert.Equal(t, zmq.EADDRINUSE, zmq.KindOf(b.Bind(ipc)))
}

func TestMalformedEndpoint(t *testing.T) {
	ctx := newContext(t)
	defer ctx.Term()

	sock := newSocket(t, ctx, zmq.PUSH)
	defer sock.Close()

	err := sock.Connect("not an endpoint")
	require.NotNil(t, err)
	assert.Equal(t, zmq.EINVAL, zmq.KindOf(err))

	err = sock.Bind("bogus://x")
	assert.Equal(t, zmq.EPROTONOSUPPORT, zmq.KindOf(err))
}

func TestTermUnblocksRecv(t *testing.T) {
	ctx := newContext(t)
	sock := newSocket(t, ctx, zmq.PULL)
	require.NoError(t, sock.Bind(inproc("term")))

	done := make(chan error, 1)
	go func() {
		_, err := sock.Recv(0)
		done <- err
	}()

	termed := make(chan error, 1)
	time.Sleep(50 * time.Millisecond)
	go func() { termed <- ctx.Term() }()

	select {
	case err := <-done:
		assert.Equal(t, zmq.ETERM, zmq.KindOf(err))
	case <-time.After(5 * time.Second):
		t.Fatal("recv not interrupted by term")
	}
	assert.Nil(t, sock.Close())
	assert.Nil(t, <-termed)
}
