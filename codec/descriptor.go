package codec

import "strconv"

// Descriptor pairs the encode, decode and skip behavior for values of type T,
// plus a view of type V over the same bytes. For most descriptors V is T and
// the view is a plain decode; Object and sequence descriptors expose lazy
// views instead.
//
// Descriptors are immutable and safe for concurrent use. Combinators return
// new descriptors wrapping existing ones.
type Descriptor[T, V any] struct {
	name     string
	sizeHint SizeHint
	encode   func(e *Encoder, v T) error
	decode   func(d *Decoder) (T, error)
	skip     func(s *Skipper) error
	view     func(d *Decoder) (V, error)
	hasView  bool
}

// Plain is a descriptor without a specialized view.
type Plain[T any] = Descriptor[T, T]

// Custom builds a descriptor from bespoke functions. skip must advance the
// cursor by exactly the bytes encode writes.
func Custom[T any](
	name string,
	hint SizeHint,
	encode func(e *Encoder, v T) error,
	decode func(d *Decoder) (T, error),
	skip func(s *Skipper) error,
) *Descriptor[T, T] {
	return &Descriptor[T, T]{
		name:     name,
		sizeHint: hint,
		encode:   encode,
		decode:   decode,
		skip:     skip,
		view:     decode,
	}
}

// Name returns the human-readable descriptor name.
func (c *Descriptor[T, V]) Name() string {
	return c.name
}

// SizeHint returns the advisory encoded size.
func (c *Descriptor[T, V]) SizeHint() SizeHint {
	return c.sizeHint
}

// HasView reports whether View returns something other than a plain decode.
func (c *Descriptor[T, V]) HasView() bool {
	return c.hasView
}

// Named returns a copy of the descriptor under a different name.
func (c *Descriptor[T, V]) Named(name string) *Descriptor[T, V] {
	cp := *c
	cp.name = name
	return &cp
}

// Encode writes v.
func (c *Descriptor[T, V]) Encode(e *Encoder, v T) error {
	return c.encode(e, v)
}

// Decode reads one value.
func (c *Descriptor[T, V]) Decode(d *Decoder) (T, error) {
	return c.decode(d)
}

// Skip advances past one value without decoding it.
func (c *Descriptor[T, V]) Skip(s *Skipper) error {
	return c.skip(s)
}

// View reads one value as its view representation and moves d past it.
func (c *Descriptor[T, V]) View(d *Decoder) (V, error) {
	return c.view(d)
}

// SkipEncoded skips one value and returns the exact bytes it occupied. The
// slice aliases the decoder's source.
func (c *Descriptor[T, V]) SkipEncoded(s *Skipper) ([]byte, error) {
	start := s.d.offset
	if err := c.skip(s); err != nil {
		return nil, err
	}
	return s.d.src[start:s.d.offset:s.d.offset], nil
}

func indexPath(i int) string {
	return "[" + strconv.Itoa(i) + "]"
}
