package codec

import (
	"github.com/wippyai/jam-codec/errors"
)

// Field describes one named member of a record of type T.
type Field[T any] struct {
	name     string
	sizeHint SizeHint
	encode   func(e *Encoder, v *T) error
	decode   func(d *Decoder, v *T) error
	skip     func(s *Skipper) error
	view     func(d *Decoder) (any, error)
}

// FieldOf binds desc to the member of T returned by get. get must return a
// pointer into its argument; it is used both to read the member when encoding
// and to fill it when decoding.
func FieldOf[T, F, V any](name string, desc *Descriptor[F, V], get func(*T) *F) Field[T] {
	return Field[T]{
		name:     name,
		sizeHint: desc.sizeHint,
		encode: func(e *Encoder, v *T) error {
			return desc.encode(e, *get(v))
		},
		decode: func(d *Decoder, v *T) error {
			f, err := desc.decode(d)
			if err != nil {
				return err
			}
			*get(v) = f
			return nil
		},
		skip: desc.skip,
		view: func(d *Decoder) (any, error) {
			return desc.view(d)
		},
	}
}

// Name returns the field name.
func (f Field[T]) Name() string {
	return f.name
}

// objectShape is shared by a record descriptor and every view it creates.
type objectShape[T any] struct {
	name   string
	fields []Field[T]
	index  map[string]int
	// offsets[i] is the byte offset of field i when every field before it
	// has an exact size, otherwise -1.
	offsets []int
	desc    *Descriptor[T, *ObjectView[T]]
}

// Object describes a record as the concatenation of its fields in declaration
// order. Decoding fills a zero T field by field and then passes it to
// fromCodec, when non-nil, to finish construction.
//
// Object panics if two fields share a name.
func Object[T any](name string, fromCodec func(T) (T, error), fields ...Field[T]) *Descriptor[T, *ObjectView[T]] {
	fields = append([]Field[T](nil), fields...)
	shape := &objectShape[T]{
		name:    name,
		fields:  fields,
		index:   make(map[string]int, len(fields)),
		offsets: make([]int, len(fields)),
	}
	hint := Exact(0)
	for i, f := range fields {
		if _, dup := shape.index[f.name]; dup {
			panic("codec: duplicate field " + f.name + " in " + name)
		}
		shape.index[f.name] = i
		if hint.IsExact {
			shape.offsets[i] = hint.Bytes
		} else {
			shape.offsets[i] = -1
		}
		hint = hint.Add(f.sizeHint)
	}

	desc := &Descriptor[T, *ObjectView[T]]{
		name:     name,
		sizeHint: hint,
		hasView:  true,
	}
	shape.desc = desc

	desc.encode = func(e *Encoder, v T) error {
		e.Prepare(hint)
		for i := range fields {
			if err := fields[i].encode(e, &v); err != nil {
				return errors.WithPath(err, fields[i].name)
			}
		}
		return nil
	}
	desc.decode = func(d *Decoder) (T, error) {
		var v T
		start := d.offset
		for i := range fields {
			if err := fields[i].decode(d, &v); err != nil {
				var zero T
				return zero, errors.WithPath(err, fields[i].name)
			}
		}
		if fromCodec == nil {
			return v, nil
		}
		out, err := fromCodec(v)
		if err != nil {
			var zero T
			if _, ok := err.(*errors.Error); ok {
				return zero, err
			}
			return zero, errors.New(errors.PhaseDecode, errors.KindInvalidData).
				Type(name).
				Offset(start).
				Cause(err).
				Detail("construct %s", name).
				Build()
		}
		return out, nil
	}
	desc.skip = func(s *Skipper) error {
		if hint.IsExact {
			return s.Skip(hint.Bytes)
		}
		for i := range fields {
			if err := fields[i].skip(s); err != nil {
				return errors.WithPath(err, fields[i].name)
			}
		}
		return nil
	}
	desc.view = func(d *Decoder) (*ObjectView[T], error) {
		origin := d.Clone()
		if err := desc.skip(NewSkipper(d)); err != nil {
			return nil, err
		}
		return &ObjectView[T]{shape: shape, origin: origin, end: d.offset}, nil
	}
	return desc
}

// Class is Object without a construction hook: the decoded value is the zero
// T with every field filled in.
func Class[T any](name string, fields ...Field[T]) *Descriptor[T, *ObjectView[T]] {
	return Object(name, nil, fields...)
}
