package codec

import (
	"encoding/binary"
	"math"

	"github.com/wippyai/jam-codec/codec/internal/natural"
	"github.com/wippyai/jam-codec/errors"
)

// Decoder reads primitives from an immutable byte source. Slices returned by
// Bytes and BytesBlob alias the source.
//
// A Decoder carries the ambient context passed at construction. Clone returns
// an independent cursor at the same position sharing the source and context.
// Decoders are NOT safe for concurrent use; clones are.
type Decoder struct {
	ctx    any
	src    []byte
	offset int
}

// NewDecoder returns a decoder over src carrying ctx (which may be nil).
func NewDecoder(src []byte, ctx any) *Decoder {
	return &Decoder{ctx: ctx, src: src}
}

// Context returns the ambient context attached at construction.
func (d *Decoder) Context() any {
	return d.ctx
}

// BytesRead returns the current offset into the source.
func (d *Decoder) BytesRead() int {
	return d.offset
}

// Remaining returns the number of unread bytes.
func (d *Decoder) Remaining() int {
	return len(d.src) - d.offset
}

// Source returns the whole backing byte range.
func (d *Decoder) Source() []byte {
	return d.src
}

// Clone returns an independent cursor at the same position.
func (d *Decoder) Clone() *Decoder {
	c := *d
	return &c
}

// Finish fails if any bytes remain unread.
func (d *Decoder) Finish() error {
	if n := d.Remaining(); n > 0 {
		return errors.New(errors.PhaseDecode, errors.KindInvalidData).
			Offset(d.offset).
			Detail("%d trailing bytes", n).
			Build()
	}
	return nil
}

func (d *Decoder) take(n int) ([]byte, error) {
	if n < 0 || n > d.Remaining() {
		return nil, errors.OutOfBounds(errors.PhaseDecode, d.offset, n, d.Remaining())
	}
	p := d.src[d.offset : d.offset+n : d.offset+n]
	d.offset += n
	return p, nil
}

func (d *Decoder) advance(n int) error {
	if n < 0 || n > d.Remaining() {
		return errors.OutOfBounds(errors.PhaseSkip, d.offset, n, d.Remaining())
	}
	d.offset += n
	return nil
}

// U8 reads one byte.
func (d *Decoder) U8() (uint8, error) {
	p, err := d.take(1)
	if err != nil {
		return 0, err
	}
	return p[0], nil
}

// I8 reads one byte as a signed value.
func (d *Decoder) I8() (int8, error) {
	v, err := d.U8()
	return int8(v), err
}

// U16 reads two bytes little-endian.
func (d *Decoder) U16() (uint16, error) {
	p, err := d.take(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(p), nil
}

// I16 reads two bytes little-endian as a signed value.
func (d *Decoder) I16() (int16, error) {
	v, err := d.U16()
	return int16(v), err
}

// U24 reads three bytes little-endian.
func (d *Decoder) U24() (uint32, error) {
	p, err := d.take(3)
	if err != nil {
		return 0, err
	}
	return uint32(p[0]) | uint32(p[1])<<8 | uint32(p[2])<<16, nil
}

// I24 reads three bytes little-endian as a signed value.
func (d *Decoder) I24() (int32, error) {
	v, err := d.U24()
	if err != nil {
		return 0, err
	}
	if v&0x800000 != 0 {
		v |= 0xFF000000
	}
	return int32(v), nil
}

// U32 reads four bytes little-endian.
func (d *Decoder) U32() (uint32, error) {
	p, err := d.take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(p), nil
}

// I32 reads four bytes little-endian as a signed value.
func (d *Decoder) I32() (int32, error) {
	v, err := d.U32()
	return int32(v), err
}

// U64 reads eight bytes little-endian.
func (d *Decoder) U64() (uint64, error) {
	p, err := d.take(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(p), nil
}

// I64 reads eight bytes little-endian as a signed value.
func (d *Decoder) I64() (int64, error) {
	v, err := d.U64()
	return int64(v), err
}

// Bool reads a compact natural that must be 0 or 1.
func (d *Decoder) Bool() (bool, error) {
	start := d.offset
	v, err := d.VarU64()
	if err != nil {
		return false, err
	}
	switch v {
	case 0:
		return false, nil
	case 1:
		return true, nil
	}
	return false, errors.New(errors.PhaseDecode, errors.KindInvalidData).
		Type("bool").
		Offset(start).
		Value(v).
		Detail("expected 0 or 1, got %d", v).
		Build()
}

// VarU64 reads a compact natural.
func (d *Decoder) VarU64() (uint64, error) {
	v, n, ok := natural.Decode(d.src[d.offset:])
	if !ok {
		return 0, errors.OutOfBounds(errors.PhaseDecode, d.offset, n, d.Remaining())
	}
	d.offset += n
	return v, nil
}

// VarU32 reads a compact natural that must fit in 32 bits.
func (d *Decoder) VarU32() (uint32, error) {
	start := d.offset
	v, err := d.VarU64()
	if err != nil {
		return 0, err
	}
	if v > math.MaxUint32 {
		d.offset = start
		return 0, errors.New(errors.PhaseDecode, errors.KindOverflow).
			Type("varU32").
			Offset(start).
			Value(v).
			Detail("value %d overflows u32", v).
			Build()
	}
	return uint32(v), nil
}

// Bytes reads n raw bytes.
func (d *Decoder) Bytes(n int) ([]byte, error) {
	return d.take(n)
}

// BytesBlob reads a compact-natural length followed by that many bytes.
func (d *Decoder) BytesBlob() ([]byte, error) {
	n, err := d.VarU32()
	if err != nil {
		return nil, err
	}
	return d.take(int(n))
}

// BitVecFixLen reads a bit vector of bitLen bits.
func (d *Decoder) BitVecFixLen(bitLen int) (BitVec, error) {
	start := d.offset
	p, err := d.take(packedLen(bitLen))
	if err != nil {
		return BitVec{}, err
	}
	v, err := BitVecFromBytes(p, bitLen)
	if err != nil {
		return BitVec{}, errors.InvalidData(errors.PhaseDecode, start, err.Error())
	}
	return v, nil
}

// BitVecVarLen reads a compact-natural bit count followed by the packed bits.
func (d *Decoder) BitVecVarLen() (BitVec, error) {
	n, err := d.VarU32()
	if err != nil {
		return BitVec{}, err
	}
	return d.BitVecFixLen(int(n))
}
