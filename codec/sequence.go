package codec

import (
	"strconv"

	"github.com/wippyai/jam-codec/codec/internal/natural"
	"github.com/wippyai/jam-codec/errors"
)

// SequenceFixLen describes exactly n values of inner with no length prefix.
func SequenceFixLen[T, V any](inner *Descriptor[T, V], n int) *Descriptor[[]T, *SequenceView[T, V]] {
	desc := &Descriptor[[]T, *SequenceView[T, V]]{
		name:     "Sequence<" + inner.name + ">[" + strconv.Itoa(n) + "]",
		sizeHint: inner.sizeHint.Times(n),
		hasView:  true,
	}
	desc.encode = func(e *Encoder, vs []T) error {
		if len(vs) != n {
			return errors.LengthRange(errors.PhaseEncode, desc.name, len(vs), n, n)
		}
		return EncodeSequenceFixLen(e, inner, vs)
	}
	desc.decode = func(d *Decoder) ([]T, error) {
		return decodeElements(d, inner, n)
	}
	desc.skip = func(s *Skipper) error {
		return SkipSequenceFixLen(s, inner, n)
	}
	desc.view = func(d *Decoder) (*SequenceView[T, V], error) {
		return newSequenceView(desc, inner, d.Clone(), d, n)
	}
	return desc
}

// SequenceVarLen describes a compact-natural element count followed by that
// many values of inner. The count must fall inside r on both encode and
// decode.
func SequenceVarLen[T, V any](inner *Descriptor[T, V], r LengthRange) *Descriptor[[]T, *SequenceView[T, V]] {
	hint := Estimate(natural.Len(uint64(r.Min))).Add(inner.sizeHint.Times(r.Min)).Inexact()
	if r.Min == r.Max && inner.sizeHint.IsExact {
		hint.IsExact = true
	}
	desc := &Descriptor[[]T, *SequenceView[T, V]]{
		name:     "Sequence<" + inner.name + ">",
		sizeHint: hint,
		hasView:  true,
	}
	readCount := func(d *Decoder) (int, error) {
		n, err := d.VarU32()
		if err != nil {
			return 0, err
		}
		if err := r.check(errors.PhaseDecode, desc.name, int(n)); err != nil {
			return 0, err
		}
		return int(n), nil
	}
	desc.encode = func(e *Encoder, vs []T) error {
		if err := r.check(errors.PhaseEncode, desc.name, len(vs)); err != nil {
			return err
		}
		return EncodeSequenceVarLen(e, inner, vs)
	}
	desc.decode = func(d *Decoder) ([]T, error) {
		n, err := readCount(d)
		if err != nil {
			return nil, err
		}
		return decodeElements(d, inner, n)
	}
	desc.skip = func(s *Skipper) error {
		n, err := readCount(s.d)
		if err != nil {
			return err
		}
		return SkipSequenceFixLen(s, inner, n)
	}
	desc.view = func(d *Decoder) (*SequenceView[T, V], error) {
		origin := d.Clone()
		n, err := readCount(d)
		if err != nil {
			return nil, err
		}
		return newSequenceView(desc, inner, origin, d, n)
	}
	return desc
}

func decodeElements[T, V any](d *Decoder, inner *Descriptor[T, V], n int) ([]T, error) {
	// Every element consumes at least one byte unless its size is exactly
	// zero, so the remaining input bounds the allocation.
	capacity := n
	if capacity > d.Remaining() {
		capacity = d.Remaining()
	}
	out := make([]T, 0, capacity)
	for i := 0; i < n; i++ {
		v, err := inner.decode(d)
		if err != nil {
			return nil, errors.WithPath(err, indexPath(i))
		}
		out = append(out, v)
	}
	return out, nil
}
