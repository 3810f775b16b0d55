// SPDX-License-Identifier: MIT

package lzo1x

import "sync"

// matchTablePool stores reusable fingerprint tables to reduce allocations.
// Pooling recycles memory only; every acquire returns a reset table, so no
// state crosses compression calls.
var matchTablePool = sync.Pool{
	New: func() any {
		return &matchTable{}
	},
}

// acquireMatchTable returns a cleared fingerprint table.
func acquireMatchTable() *matchTable {
	table := matchTablePool.Get().(*matchTable)
	table.reset()
	return table
}

// releaseMatchTable returns a fingerprint table back to the pool.
func releaseMatchTable(table *matchTable) {
	if table == nil {
		return
	}

	matchTablePool.Put(table)
}

// encodeBufferPool stores temporary worst-case output buffers used by Compress.
var encodeBufferPool sync.Pool

// encodeBuffer wraps reusable temporary output storage.
type encodeBuffer struct {
	data []byte // data is the temporary encoded stream buffer.
}

// acquireEncodeBuffer returns a temporary output buffer wrapper with at least size bytes.
func acquireEncodeBuffer(size int) *encodeBuffer {
	if buf, ok := encodeBufferPool.Get().(*encodeBuffer); ok {
		if cap(buf.data) >= size {
			buf.data = buf.data[:size]
			return buf
		}
	}

	// Allocate only when the pool does not have enough capacity.
	return &encodeBuffer{data: make([]byte, size)}
}

// releaseEncodeBuffer returns a temporary output buffer wrapper to the pool.
func releaseEncodeBuffer(buf *encodeBuffer) {
	if buf == nil {
		return
	}

	// Keep capacity for reuse; logical length is reset by acquireEncodeBuffer.
	buf.data = buf.data[:cap(buf.data)]
	encodeBufferPool.Put(buf)
}
