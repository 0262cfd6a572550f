package codec

// Convert adapts a descriptor of T into one of F. to maps values before
// encoding and from maps them after decoding. Name, size hint, skip and view
// are those of inner.
func Convert[F, T, V any](inner *Descriptor[T, V], to func(F) T, from func(T) F) *Descriptor[F, V] {
	return &Descriptor[F, V]{
		name:     inner.name,
		sizeHint: inner.sizeHint,
		encode: func(e *Encoder, v F) error {
			return inner.encode(e, to(v))
		},
		decode: func(d *Decoder) (F, error) {
			v, err := inner.decode(d)
			if err != nil {
				var zero F
				return zero, err
			}
			return from(v), nil
		},
		skip:    inner.skip,
		view:    inner.view,
		hasView: inner.hasView,
	}
}

// Opaque brands a value of T with the phantom type Tag so that identically
// represented values of different meaning do not mix. Tag is never
// instantiated; an empty struct type is conventional.
type Opaque[T, Tag any] struct {
	Value T
}

// Brand wraps v as an Opaque value tagged with Tag.
func Brand[Tag, T any](v T) Opaque[T, Tag] {
	return Opaque[T, Tag]{Value: v}
}

// Unwrap returns the underlying value.
func (o Opaque[T, Tag]) Unwrap() T {
	return o.Value
}

// AsOpaque brands inner's values with Tag without transforming them.
func AsOpaque[Tag, T, V any](inner *Descriptor[T, V]) *Descriptor[Opaque[T, Tag], V] {
	return Convert(inner, Opaque[T, Tag].Unwrap, Brand[Tag, T])
}
