package codec

import (
	"bytes"
	"fmt"
	"strings"
)

// BitVec is a fixed-size sequence of bits packed eight to a byte. Bit i lives
// in byte i/8 at position i%8 (least significant first). Padding bits past
// Len in the last byte are always zero.
type BitVec struct {
	data []byte
	n    int
}

// NewBitVec returns an all-zero vector of n bits.
func NewBitVec(n int) BitVec {
	return BitVec{data: make([]byte, packedLen(n)), n: n}
}

// BitVecFromBytes copies packed bits into a vector of n bits. data must be
// exactly ceil(n/8) bytes long with zero padding bits.
func BitVecFromBytes(data []byte, n int) (BitVec, error) {
	if n < 0 {
		return BitVec{}, fmt.Errorf("negative bit length %d", n)
	}
	if len(data) != packedLen(n) {
		return BitVec{}, fmt.Errorf("%d bits need %d bytes, got %d", n, packedLen(n), len(data))
	}
	if rem := n % 8; rem != 0 && data[len(data)-1]>>rem != 0 {
		return BitVec{}, fmt.Errorf("non-zero padding bits in %#02x", data[len(data)-1])
	}
	return BitVec{data: bytes.Clone(data), n: n}, nil
}

func packedLen(bits int) int {
	return (bits + 7) / 8
}

// Len returns the number of bits.
func (b BitVec) Len() int {
	return b.n
}

// Get reports whether bit i is set. It panics if i is out of range.
func (b BitVec) Get(i int) bool {
	b.checkIndex(i)
	return b.data[i/8]&(1<<(i%8)) != 0
}

// Set assigns bit i. It panics if i is out of range.
func (b *BitVec) Set(i int, v bool) {
	b.checkIndex(i)
	if v {
		b.data[i/8] |= 1 << (i % 8)
	} else {
		b.data[i/8] &^= 1 << (i % 8)
	}
}

func (b BitVec) checkIndex(i int) {
	if i < 0 || i >= b.n {
		panic(fmt.Sprintf("codec: bit index %d out of range [0, %d)", i, b.n))
	}
}

// Count returns the number of set bits.
func (b BitVec) Count() int {
	c := 0
	for i := 0; i < b.n; i++ {
		if b.Get(i) {
			c++
		}
	}
	return c
}

// Bytes returns the packed representation. The slice aliases the vector.
func (b BitVec) Bytes() []byte {
	return b.data
}

// Equal reports whether both vectors hold the same bits.
func (b BitVec) Equal(o BitVec) bool {
	return b.n == o.n && bytes.Equal(b.data, o.data)
}

// String renders the bits in index order, e.g. "0110".
func (b BitVec) String() string {
	var s strings.Builder
	s.Grow(b.n)
	for i := 0; i < b.n; i++ {
		if b.Get(i) {
			s.WriteByte('1')
		} else {
			s.WriteByte('0')
		}
	}
	return s.String()
}
