package codec

// Optional wraps inner with a compact-natural presence flag. Absent values are
// nil pointers. A specialized view of inner is carried through as *V.
func Optional[T, V any](inner *Descriptor[T, V]) *Descriptor[*T, *V] {
	return &Descriptor[*T, *V]{
		name:     "Optional<" + inner.name + ">",
		sizeHint: Estimate(inner.sizeHint.Bytes + 1),
		encode: func(e *Encoder, v *T) error {
			return EncodeOptional(e, inner, v)
		},
		decode: func(d *Decoder) (*T, error) {
			present, err := d.Bool()
			if err != nil || !present {
				return nil, err
			}
			v, err := inner.decode(d)
			if err != nil {
				return nil, err
			}
			return &v, nil
		},
		skip: func(s *Skipper) error {
			return SkipOptional(s, inner)
		},
		view: func(d *Decoder) (*V, error) {
			present, err := d.Bool()
			if err != nil || !present {
				return nil, err
			}
			v, err := inner.view(d)
			if err != nil {
				return nil, err
			}
			return &v, nil
		},
		hasView: inner.hasView,
	}
}
