package codec

import (
	"github.com/wippyai/jam-codec/codec/internal/natural"
	"github.com/wippyai/jam-codec/errors"
)

// Skipper advances a Decoder past encoded values without constructing them.
// Every method moves the cursor by exactly the number of bytes the matching
// Encoder method writes.
type Skipper struct {
	d *Decoder
}

// NewSkipper wraps d. Skipping moves d's cursor.
func NewSkipper(d *Decoder) *Skipper {
	return &Skipper{d: d}
}

// Decoder returns the wrapped decoder.
func (s *Skipper) Decoder() *Decoder {
	return s.d
}

// Skip advances by n bytes.
func (s *Skipper) Skip(n int) error {
	return s.d.advance(n)
}

// I8 skips one byte.
func (s *Skipper) I8() error { return s.d.advance(1) }

// I16 skips two bytes.
func (s *Skipper) I16() error { return s.d.advance(2) }

// I24 skips three bytes.
func (s *Skipper) I24() error { return s.d.advance(3) }

// I32 skips four bytes.
func (s *Skipper) I32() error { return s.d.advance(4) }

// I64 skips eight bytes.
func (s *Skipper) I64() error { return s.d.advance(8) }

// Bool skips a compact-natural flag.
func (s *Skipper) Bool() error {
	return s.VarU64()
}

// VarU32 skips a compact natural.
func (s *Skipper) VarU32() error {
	return s.VarU64()
}

// VarU64 skips a compact natural using only its first byte to find its length.
func (s *Skipper) VarU64() error {
	if s.d.Remaining() < 1 {
		return errors.OutOfBounds(errors.PhaseSkip, s.d.offset, 1, 0)
	}
	return s.d.advance(1 + natural.ExtraBytes(s.d.src[s.d.offset]))
}

// BytesBlob skips a length-prefixed byte blob.
func (s *Skipper) BytesBlob() error {
	n, err := s.d.VarU32()
	if err != nil {
		return err
	}
	return s.d.advance(int(n))
}

// BitVecFixLen skips a bit vector of bitLen bits.
func (s *Skipper) BitVecFixLen(bitLen int) error {
	return s.d.advance(packedLen(bitLen))
}

// BitVecVarLen skips a length-prefixed bit vector.
func (s *Skipper) BitVecVarLen() error {
	n, err := s.d.VarU32()
	if err != nil {
		return err
	}
	return s.d.advance(packedLen(int(n)))
}

// SkipOptional skips a presence flag and, if set, one value of desc.
func SkipOptional[T, V any](s *Skipper, desc *Descriptor[T, V]) error {
	present, err := s.d.Bool()
	if err != nil {
		return err
	}
	if !present {
		return nil
	}
	return desc.Skip(s)
}

// SkipSequenceFixLen skips n consecutive values of desc, jumping directly when
// desc has an exact size.
func SkipSequenceFixLen[T, V any](s *Skipper, desc *Descriptor[T, V], n int) error {
	if hint := desc.sizeHint; hint.IsExact {
		if hint.Bytes != 0 && n > s.d.Remaining()/hint.Bytes {
			return errors.OutOfBounds(errors.PhaseSkip, s.d.offset, n*hint.Bytes, s.d.Remaining())
		}
		return s.d.advance(n * hint.Bytes)
	}
	for i := 0; i < n; i++ {
		if err := desc.Skip(s); err != nil {
			return errors.WithPath(err, indexPath(i))
		}
	}
	return nil
}

// SkipSequenceVarLen skips a count-prefixed sequence of desc values.
func SkipSequenceVarLen[T, V any](s *Skipper, desc *Descriptor[T, V]) error {
	n, err := s.d.VarU32()
	if err != nil {
		return err
	}
	return SkipSequenceFixLen(s, desc, int(n))
}
