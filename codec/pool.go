package codec

import "sync"

const (
	// Pool limits to prevent memory bloat
	poolMaxCap  = 64 << 10
	poolInitCap = DefaultStartLength
)

// encode buffer pool for Encode and EncodeWithContext
var encodeBufPool = sync.Pool{
	New: func() any {
		buf := make([]byte, 0, poolInitCap)
		return &buf
	},
}

func getEncodeBuf() *[]byte {
	return encodeBufPool.Get().(*[]byte)
}

func putEncodeBuf(buf *[]byte) {
	if buf == nil || cap(*buf) > poolMaxCap {
		return // reject oversized
	}
	*buf = (*buf)[:0]
	encodeBufPool.Put(buf)
}
