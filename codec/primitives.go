package codec

import (
	"bytes"
	"strconv"
	"unicode/utf8"

	"github.com/wippyai/jam-codec/errors"
)

// Fixed-width integers, little-endian two's complement.
var (
	U8 = Custom("u8", Exact(1),
		func(e *Encoder, v uint8) error { return e.I8(int64(v)) },
		(*Decoder).U8,
		(*Skipper).I8)
	U16 = Custom("u16", Exact(2),
		func(e *Encoder, v uint16) error { return e.I16(int64(v)) },
		(*Decoder).U16,
		(*Skipper).I16)
	U24 = Custom("u24", Exact(3),
		func(e *Encoder, v uint32) error { return e.I24(int64(v)) },
		(*Decoder).U24,
		(*Skipper).I24)
	U32 = Custom("u32", Exact(4),
		func(e *Encoder, v uint32) error { return e.I32(int64(v)) },
		(*Decoder).U32,
		(*Skipper).I32)
	U64 = Custom("u64", Exact(8),
		(*Encoder).U64,
		(*Decoder).U64,
		(*Skipper).I64)

	I8 = Custom("i8", Exact(1),
		func(e *Encoder, v int8) error { return e.I8(int64(v)) },
		(*Decoder).I8,
		(*Skipper).I8)
	I16 = Custom("i16", Exact(2),
		func(e *Encoder, v int16) error { return e.I16(int64(v)) },
		(*Decoder).I16,
		(*Skipper).I16)
	I24 = Custom("i24", Exact(3),
		func(e *Encoder, v int32) error { return e.I24(int64(v)) },
		(*Decoder).I24,
		(*Skipper).I24)
	I32 = Custom("i32", Exact(4),
		func(e *Encoder, v int32) error { return e.I32(int64(v)) },
		(*Decoder).I32,
		(*Skipper).I32)
	I64 = Custom("i64", Exact(8),
		(*Encoder).I64,
		(*Decoder).I64,
		(*Skipper).I64)
)

// Compact naturals and booleans.
var (
	VarU32 = Custom("varU32", Estimate(4),
		(*Encoder).VarU32,
		(*Decoder).VarU32,
		(*Skipper).VarU32)
	VarU64 = Custom("varU64", Estimate(8),
		(*Encoder).VarU64,
		(*Decoder).VarU64,
		(*Skipper).VarU64)
	Bool = Custom("bool", Exact(1),
		(*Encoder).Bool,
		(*Decoder).Bool,
		(*Skipper).Bool)
)

// Blob is a length-prefixed byte string. Decoded blobs are copies.
var Blob = Custom("BytesBlob", Estimate(5),
	(*Encoder).BytesBlob,
	func(d *Decoder) ([]byte, error) {
		p, err := d.BytesBlob()
		if err != nil {
			return nil, err
		}
		return bytes.Clone(p), nil
	},
	(*Skipper).BytesBlob)

// String is a length-prefixed UTF-8 string.
var String = Custom("string", Estimate(5),
	func(e *Encoder, v string) error {
		if !utf8.ValidString(v) {
			return errors.InvalidUTF8(errors.PhaseEncode, e.offset, []byte(v))
		}
		return e.BytesBlob([]byte(v))
	},
	func(d *Decoder) (string, error) {
		start := d.offset
		p, err := d.BytesBlob()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(p) {
			return "", errors.InvalidUTF8(errors.PhaseDecode, start, p)
		}
		return string(p), nil
	},
	(*Skipper).BytesBlob)

// BitVecVarLen is a bit vector prefixed with its bit count.
var BitVecVarLen = Custom("BitVec", Estimate(1),
	(*Encoder).BitVecVarLen,
	(*Decoder).BitVecVarLen,
	(*Skipper).BitVecVarLen)

var fixedBytes = newKeyedCache(func(n int) *Plain[[]byte] {
	name := "Bytes<" + strconv.Itoa(n) + ">"
	return Custom(name, Exact(n),
		func(e *Encoder, v []byte) error {
			if len(v) != n {
				return errors.LengthRange(errors.PhaseEncode, name, len(v), n, n)
			}
			return e.Bytes(v)
		},
		func(d *Decoder) ([]byte, error) {
			p, err := d.Bytes(n)
			if err != nil {
				return nil, err
			}
			return bytes.Clone(p), nil
		},
		func(s *Skipper) error { return s.Skip(n) })
})

// Bytes returns the descriptor for exactly n raw bytes with no prefix. One
// descriptor is shared per length.
func Bytes(n int) *Plain[[]byte] {
	return fixedBytes.get(n)
}

var fixedBitVecs = newKeyedCache(func(n int) *Plain[BitVec] {
	name := "BitVec<" + strconv.Itoa(n) + ">"
	return Custom(name, Exact(packedLen(n)),
		func(e *Encoder, v BitVec) error {
			if v.n != n {
				return errors.LengthRange(errors.PhaseEncode, name, v.n, n, n)
			}
			return e.BitVecFixLen(v)
		},
		func(d *Decoder) (BitVec, error) { return d.BitVecFixLen(n) },
		func(s *Skipper) error { return s.BitVecFixLen(n) })
})

// BitVecFixLen returns the descriptor for a bit vector of exactly n bits. One
// descriptor is shared per length.
func BitVecFixLen(n int) *Plain[BitVec] {
	return fixedBitVecs.get(n)
}
