package zmq

import (
	"bytes"
	"sync"
)

var bufferPool = sync.Pool{
	New: func() interface{} {
		return &bytes.Buffer{}
	},
}

// BufferPoolGet returns an empty buffer suitable for XRecv.
func BufferPoolGet() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

// BufferPoolPut resets b and returns it to the pool.
func BufferPoolPut(b *bytes.Buffer) {
	b.Reset()
	bufferPool.Put(b)
}
