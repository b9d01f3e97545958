package utfkit

import "sync"

const (
	// Pool limits to prevent memory bloat
	scratchMaxCap  = 64 * 1024 // max bytes retained per buffer
	scratchInitCap = 512
)

// byte buffer pool for string conversions
var scratchPool = sync.Pool{
	New: func() any {
		buf := make([]byte, 0, scratchInitCap)
		return &buf
	},
}

func getScratch() *[]byte {
	return scratchPool.Get().(*[]byte)
}

func putScratch(buf *[]byte) {
	if buf == nil || cap(*buf) > scratchMaxCap {
		return // reject oversized
	}
	*buf = (*buf)[:0]
	scratchPool.Put(buf)
}
