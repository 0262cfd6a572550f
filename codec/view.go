package codec

import (
	"reflect"

	"github.com/wippyai/jam-codec/errors"
	"github.com/wippyai/jam-codec/hashing"
)

// ObjectView is a lazily decoded record. It holds a cursor at the start of
// the encoded record; each field access skips the fields before it and
// decodes only the requested one. Nothing is cached, so repeated accesses
// repeat the work.
//
// A view is valid as long as the source bytes are not modified. Views are
// safe for concurrent use.
type ObjectView[T any] struct {
	shape  *objectShape[T]
	origin *Decoder
	end    int
}

// Names returns the field names in declaration order.
func (v *ObjectView[T]) Names() []string {
	names := make([]string, len(v.shape.fields))
	for i, f := range v.shape.fields {
		names[i] = f.name
	}
	return names
}

// seek returns a cursor positioned at field i.
func (v *ObjectView[T]) seek(i int) (*Decoder, error) {
	d := v.origin.Clone()
	if off := v.shape.offsets[i]; off >= 0 {
		if err := d.advance(off); err != nil {
			return nil, err
		}
		return d, nil
	}
	s := NewSkipper(d)
	for j := 0; j < i; j++ {
		if err := v.shape.fields[j].skip(s); err != nil {
			return nil, errors.WithPath(err, v.shape.fields[j].name)
		}
	}
	return d, nil
}

func (v *ObjectView[T]) lookup(name string) (int, error) {
	i, ok := v.shape.index[name]
	if !ok {
		return 0, errors.FieldUnknown(errors.PhaseView, v.shape.name, name)
	}
	return i, nil
}

// Get returns the named field in its view representation: a nested view for
// records and sequences, the decoded value otherwise.
func (v *ObjectView[T]) Get(name string) (any, error) {
	i, err := v.lookup(name)
	if err != nil {
		return nil, err
	}
	d, err := v.seek(i)
	if err != nil {
		return nil, err
	}
	val, err := v.shape.fields[i].view(d)
	if err != nil {
		return nil, errors.WithPath(err, name)
	}
	return val, nil
}

// FieldEncoded returns the exact bytes of the named field.
func (v *ObjectView[T]) FieldEncoded(name string) ([]byte, error) {
	i, err := v.lookup(name)
	if err != nil {
		return nil, err
	}
	d, err := v.seek(i)
	if err != nil {
		return nil, err
	}
	start := d.offset
	if err := v.shape.fields[i].skip(NewSkipper(d)); err != nil {
		return nil, errors.WithPath(err, name)
	}
	return d.src[start:d.offset:d.offset], nil
}

// Encoded returns the exact bytes the record occupied in the source.
func (v *ObjectView[T]) Encoded() []byte {
	return v.origin.src[v.origin.offset:v.end:v.end]
}

// Hash returns fn applied to the encoded bytes.
func (v *ObjectView[T]) Hash(fn hashing.Func) hashing.Hash {
	return fn(v.Encoded())
}

// Materialize fully decodes the record.
func (v *ObjectView[T]) Materialize() (T, error) {
	return v.shape.desc.decode(v.origin.Clone())
}

// ViewField returns the named field of v as F. F is the field descriptor's
// view type: *ObjectView[...] for nested records, *SequenceView[...] for
// sequences, the plain value otherwise.
func ViewField[F, T any](v *ObjectView[T], name string) (F, error) {
	var zero F
	val, err := v.Get(name)
	if err != nil {
		return zero, err
	}
	f, ok := val.(F)
	if !ok {
		return zero, errors.New(errors.PhaseView, errors.KindInvalidInput).
			Path(name).
			Type(v.shape.name).
			Detail("field has view type %T, requested %s", val, reflect.TypeFor[F]()).
			Build()
	}
	return f, nil
}

// SequenceView is a lazily decoded sequence. Element access skips the
// elements before it, jumping directly when elements have an exact size.
//
// A view is valid as long as the source bytes are not modified. Views are
// safe for concurrent use.
type SequenceView[T, V any] struct {
	desc   *Descriptor[[]T, *SequenceView[T, V]]
	inner  *Descriptor[T, V]
	origin *Decoder
	elems  *Decoder
	length int
	end    int
}

// newSequenceView builds a view over n elements starting at d's cursor and
// moves d past them. origin marks where the encoding (including any length
// prefix) began.
func newSequenceView[T, V any](desc *Descriptor[[]T, *SequenceView[T, V]], inner *Descriptor[T, V], origin, d *Decoder, n int) (*SequenceView[T, V], error) {
	elems := d.Clone()
	if err := SkipSequenceFixLen(NewSkipper(d), inner, n); err != nil {
		return nil, err
	}
	return &SequenceView[T, V]{
		desc:   desc,
		inner:  inner,
		origin: origin,
		elems:  elems,
		length: n,
		end:    d.offset,
	}, nil
}

// Len returns the number of elements.
func (v *SequenceView[T, V]) Len() int {
	return v.length
}

func (v *SequenceView[T, V]) seek(i int) (*Decoder, error) {
	if i < 0 || i >= v.length {
		return nil, errors.New(errors.PhaseView, errors.KindOutOfBounds).
			Type(v.desc.name).
			Value(i).
			Detail("index %d out of bounds (length %d)", i, v.length).
			Build()
	}
	d := v.elems.Clone()
	if err := SkipSequenceFixLen(NewSkipper(d), v.inner, i); err != nil {
		return nil, err
	}
	return d, nil
}

// Get returns element i in its view representation.
func (v *SequenceView[T, V]) Get(i int) (V, error) {
	d, err := v.seek(i)
	if err != nil {
		var zero V
		return zero, err
	}
	val, err := v.inner.view(d)
	if err != nil {
		return val, errors.WithPath(err, indexPath(i))
	}
	return val, nil
}

// Decode fully decodes element i.
func (v *SequenceView[T, V]) Decode(i int) (T, error) {
	d, err := v.seek(i)
	if err != nil {
		var zero T
		return zero, err
	}
	val, err := v.inner.decode(d)
	if err != nil {
		return val, errors.WithPath(err, indexPath(i))
	}
	return val, nil
}

// ElementEncoded returns the exact bytes of element i.
func (v *SequenceView[T, V]) ElementEncoded(i int) ([]byte, error) {
	d, err := v.seek(i)
	if err != nil {
		return nil, err
	}
	return v.inner.SkipEncoded(NewSkipper(d))
}

// Encoded returns the exact bytes the sequence occupied in the source,
// including its length prefix.
func (v *SequenceView[T, V]) Encoded() []byte {
	return v.origin.src[v.origin.offset:v.end:v.end]
}

// Hash returns fn applied to the encoded bytes.
func (v *SequenceView[T, V]) Hash(fn hashing.Func) hashing.Hash {
	return fn(v.Encoded())
}

// Materialize fully decodes the sequence.
func (v *SequenceView[T, V]) Materialize() ([]T, error) {
	return v.desc.decode(v.origin.Clone())
}
