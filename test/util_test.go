//go:build cgo && !zmqstub

package test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funkygao/zmq"
)

// inproc returns a fresh inproc endpoint so tests never share one.
func inproc(name string) string {
	return "inproc://" + name + "-" + uuid.NewString()
}

func newContext(t *testing.T) *zmq.Context {
	t.Helper()
	ctx, err := zmq.Init(1)
	require.NoError(t, err)
	return ctx
}

func newSocket(t *testing.T, ctx *zmq.Context, kind zmq.SocketKind) *zmq.Socket {
	t.Helper()
	s, err := ctx.Socket(kind)
	require.NoError(t, err)
	require.NoError(t, s.SetInt64(zmq.LINGER, 0))
	return s
}

func TestVersion(t *testing.T) {
	major, minor, patch := zmq.Version()
	assert.True(t, major >= 3, "%d.%d.%d", major, minor, patch)
}

func TestDescribeFromLibzmq(t *testing.T) {
	for _, k := range zmq.Kinds() {
		e := &zmq.Error{Op: "test", Kind: k, Code: k.Errno()}
		assert.NotEqual(t, "", e.Describe(), k.String())
	}
}

func TestSplitEndpoint(t *testing.T) {
	transport, addr, err := zmq.SplitEndpoint("tcp://192.168.0.111:5555")
	assert.Equal(t, nil, err)
	assert.Equal(t, "tcp", transport)
	assert.Equal(t, "192.168.0.111:5555", addr)
}

func BenchmarkSplitEndpoint(b *testing.B) {
	var addr = "tcp://192.168.0.111:5555"
	for i := 0; i < b.N; i++ {
		zmq.SplitEndpoint(addr)
	}
}
