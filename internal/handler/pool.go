package handler

import (
	"bytes"
	"sync"
)

// Most responses are a character sheet or a short list; buffers that grew
// past maxPooledBuffer for a full catalog dump are dropped instead of pooled.
const (
	initialBufferSize = 1 << 10
	maxPooledBuffer   = 64 << 10
)

var bufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, initialBufferSize))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBuffer {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}
