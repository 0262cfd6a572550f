// Package natural implements the compact variable-length encoding of natural
// numbers used on the wire.
//
// The first byte carries the count l of extra bytes as a run of l leading set
// bits, followed by a zero bit and the most significant bits of the value. The
// l extra bytes carry the remaining bits little-endian. Values at or above
// 2^56 use the prefix 0xFF followed by all eight bytes of the value.
//
//	v < 2^7     [0vvvvvvv]
//	v < 2^14    [10vvvvvv] + 1 byte
//	v < 2^21    [110vvvvv] + 2 bytes
//	...
//	v < 2^56    [11111110] + 7 bytes
//	otherwise   [11111111] + 8 bytes
//
// This is not LEB128: the length is known after reading the first byte.
//
// This package is internal to the codec.
package natural

import (
	"encoding/binary"
	"math/bits"
)

// MaxLen is the longest encoding of a 64-bit value.
const MaxLen = 9

// explicit is the smallest value that needs the 9-byte form.
const explicit = 1 << 56

// Len returns the encoded length of v in bytes.
func Len(v uint64) int {
	if v >= explicit {
		return MaxLen
	}
	for l := 0; l < 8; l++ {
		if v < 1<<(7*(l+1)) {
			return l + 1
		}
	}
	return MaxLen
}

// Put writes v into dst, which must hold at least Len(v) bytes, and returns
// the number of bytes written.
func Put(dst []byte, v uint64) int {
	if v >= explicit {
		dst[0] = 0xFF
		binary.LittleEndian.PutUint64(dst[1:MaxLen], v)
		return MaxLen
	}
	l := Len(v) - 1
	prefix := byte(uint16(0xFF00) >> l)
	dst[0] = prefix | byte(v>>(8*l))
	for i := 0; i < l; i++ {
		dst[1+i] = byte(v >> (8 * i))
	}
	return l + 1
}

// Append appends the encoding of v to dst.
func Append(dst []byte, v uint64) []byte {
	var buf [MaxLen]byte
	n := Put(buf[:], v)
	return append(dst, buf[:n]...)
}

// ExtraBytes returns how many bytes follow a first byte: the number of its
// leading set bits. 0xFF yields 8.
func ExtraBytes(first byte) int {
	return bits.LeadingZeros8(^first)
}

// Decode reads one value from the start of src. It returns the value and the
// number of bytes consumed. ok is false when src is shorter than the length
// announced by its first byte; n then holds the length that was required.
func Decode(src []byte) (v uint64, n int, ok bool) {
	if len(src) == 0 {
		return 0, 1, false
	}
	first := src[0]
	l := ExtraBytes(first)
	if len(src) < 1+l {
		return 0, 1 + l, false
	}
	if l == 8 {
		return binary.LittleEndian.Uint64(src[1:MaxLen]), MaxLen, true
	}
	v = uint64(first&(byte(0xFF)>>l)) << (8 * l)
	for i := 0; i < l; i++ {
		v |= uint64(src[1+i]) << (8 * i)
	}
	return v, 1 + l, true
}
