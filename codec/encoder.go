package codec

import (
	"encoding/binary"
	"math"

	"github.com/wippyai/jam-codec/codec/internal/natural"
	"github.com/wippyai/jam-codec/errors"
	"go.uber.org/zap"
)

// Buffer limits for auto-growing encoders.
const (
	DefaultStartLength = 128
	MaxEncodedLength   = 10 << 20 // 10 MiB
)

// Encoder appends encoded primitives to a buffer. It either writes into a
// caller-provided destination, which must already be large enough, or into a
// buffer that doubles on demand up to MaxEncodedLength.
//
// An Encoder carries the ambient context passed at construction; descriptors
// built with Select resolve against it. Encoders are NOT safe for concurrent
// use.
type Encoder struct {
	ctx    any
	buf    []byte
	offset int
	fixed  bool
}

// NewEncoder returns an auto-growing encoder carrying ctx (which may be nil).
func NewEncoder(ctx any) *Encoder {
	return &Encoder{ctx: ctx, buf: make([]byte, DefaultStartLength)}
}

// NewEncoderInto returns an encoder that writes into dst and fails instead of
// growing past len(dst).
func NewEncoderInto(dst []byte, ctx any) *Encoder {
	return &Encoder{ctx: ctx, buf: dst, fixed: true}
}

func newEncoderWithBuffer(buf []byte, ctx any) *Encoder {
	return &Encoder{ctx: ctx, buf: buf[:cap(buf)]}
}

// Context returns the ambient context attached at construction.
func (e *Encoder) Context() any {
	return e.ctx
}

// Offset returns the number of bytes written so far.
func (e *Encoder) Offset() int {
	return e.offset
}

// Result returns the written bytes. The slice aliases the encoder's buffer.
func (e *Encoder) Result() []byte {
	return e.buf[:e.offset]
}

// Prepare nudges the buffer to hold n more bytes. It is advisory: requests the
// encoder cannot satisfy are ignored and the real write reports the failure.
func (e *Encoder) Prepare(hint SizeHint) {
	if hint.Bytes <= 0 {
		return
	}
	if err := e.ensure(hint.Bytes); err != nil {
		Logger().Debug("codec: ignoring size hint",
			zap.Int("hint", hint.Bytes),
			zap.Int("offset", e.offset),
			zap.Error(err))
	}
}

func (e *Encoder) ensure(n int) error {
	need := e.offset + n
	if need <= len(e.buf) {
		return nil
	}
	if e.fixed {
		return errors.Capacity(errors.PhaseEncode, need, len(e.buf))
	}
	if need > MaxEncodedLength {
		return errors.Capacity(errors.PhaseEncode, need, MaxEncodedLength)
	}
	size := len(e.buf) * 2
	if size < DefaultStartLength {
		size = DefaultStartLength
	}
	for size < need {
		size *= 2
	}
	if size > MaxEncodedLength {
		size = MaxEncodedLength
	}
	Logger().Debug("codec: growing encode buffer",
		zap.Int("from", len(e.buf)),
		zap.Int("to", size))
	grown := make([]byte, size)
	copy(grown, e.buf[:e.offset])
	e.buf = grown
	return nil
}

func (e *Encoder) write(p []byte) error {
	if err := e.ensure(len(p)); err != nil {
		return err
	}
	e.offset += copy(e.buf[e.offset:], p)
	return nil
}

// fixedInt writes the low n bytes of v little-endian after checking that v is
// in [-2^(8n-1), 2^(8n)). Both negative numbers and their two's-complement
// positive forms are accepted.
func (e *Encoder) fixedInt(v int64, n int, name string) error {
	bits := uint(8 * n)
	if v < -(int64(1)<<(bits-1)) || v >= int64(1)<<bits {
		return errors.Overflow(errors.PhaseEncode, v, name)
	}
	if err := e.ensure(n); err != nil {
		return err
	}
	u := uint64(v)
	for i := 0; i < n; i++ {
		e.buf[e.offset+i] = byte(u >> (8 * i))
	}
	e.offset += n
	return nil
}

// I8 writes one byte.
func (e *Encoder) I8(v int64) error {
	return e.fixedInt(v, 1, "i8")
}

// I16 writes two bytes little-endian.
func (e *Encoder) I16(v int64) error {
	return e.fixedInt(v, 2, "i16")
}

// I24 writes three bytes little-endian.
func (e *Encoder) I24(v int64) error {
	return e.fixedInt(v, 3, "i24")
}

// I32 writes four bytes little-endian.
func (e *Encoder) I32(v int64) error {
	return e.fixedInt(v, 4, "i32")
}

// I64 writes a signed value as eight bytes little-endian.
func (e *Encoder) I64(v int64) error {
	return e.U64(uint64(v))
}

// U64 writes eight bytes little-endian.
func (e *Encoder) U64(v uint64) error {
	if err := e.ensure(8); err != nil {
		return err
	}
	binary.LittleEndian.PutUint64(e.buf[e.offset:], v)
	e.offset += 8
	return nil
}

// Bool writes the compact natural 0 or 1.
func (e *Encoder) Bool(v bool) error {
	if v {
		return e.VarU64(1)
	}
	return e.VarU64(0)
}

// VarU32 writes v as a compact natural.
func (e *Encoder) VarU32(v uint32) error {
	return e.VarU64(uint64(v))
}

// VarU64 writes v as a compact natural (1 to 9 bytes).
func (e *Encoder) VarU64(v uint64) error {
	n := natural.Len(v)
	if err := e.ensure(n); err != nil {
		return err
	}
	e.offset += natural.Put(e.buf[e.offset:], v)
	return nil
}

// Bytes writes p without a length prefix.
func (e *Encoder) Bytes(p []byte) error {
	return e.write(p)
}

// BytesBlob writes a compact-natural length followed by p.
func (e *Encoder) BytesBlob(p []byte) error {
	if uint64(len(p)) > math.MaxUint32 {
		return errors.Overflow(errors.PhaseEncode, len(p), "blob length")
	}
	if err := e.ensure(natural.Len(uint64(len(p))) + len(p)); err != nil {
		return err
	}
	if err := e.VarU32(uint32(len(p))); err != nil {
		return err
	}
	return e.write(p)
}

// BitVecFixLen writes the packed bits of v without a prefix.
func (e *Encoder) BitVecFixLen(v BitVec) error {
	return e.write(v.data)
}

// BitVecVarLen writes the bit count of v as a compact natural followed by the
// packed bits.
func (e *Encoder) BitVecVarLen(v BitVec) error {
	if uint64(v.n) > math.MaxUint32 {
		return errors.Overflow(errors.PhaseEncode, v.n, "bit vector length")
	}
	if err := e.VarU32(uint32(v.n)); err != nil {
		return err
	}
	return e.write(v.data)
}

// EncodeObject pre-allocates for desc's size hint and encodes v.
func EncodeObject[T, V any](e *Encoder, desc *Descriptor[T, V], v T) error {
	e.Prepare(desc.sizeHint)
	return desc.Encode(e, v)
}

// EncodeOptional writes a presence flag followed by *v when v is non-nil.
func EncodeOptional[T, V any](e *Encoder, desc *Descriptor[T, V], v *T) error {
	if v == nil {
		return e.Bool(false)
	}
	if err := e.Bool(true); err != nil {
		return err
	}
	return desc.Encode(e, *v)
}

// EncodeSequenceFixLen writes each element of vs with no length prefix.
func EncodeSequenceFixLen[T, V any](e *Encoder, desc *Descriptor[T, V], vs []T) error {
	for i := range vs {
		if err := desc.Encode(e, vs[i]); err != nil {
			return errors.WithPath(err, indexPath(i))
		}
	}
	return nil
}

// EncodeSequenceVarLen writes the element count as a compact natural followed
// by each element of vs.
func EncodeSequenceVarLen[T, V any](e *Encoder, desc *Descriptor[T, V], vs []T) error {
	if uint64(len(vs)) > MaxSequenceLength {
		return errors.Overflow(errors.PhaseEncode, len(vs), "sequence length")
	}
	if err := e.VarU32(uint32(len(vs))); err != nil {
		return err
	}
	return EncodeSequenceFixLen(e, desc, vs)
}
