package codec

import (
	"fmt"
	"reflect"

	"github.com/wippyai/jam-codec/errors"
)

// Select resolves the descriptor to use from the ambient context of the
// active Encoder or Decoder. The context must be non-nil and of type C;
// otherwise the operation fails with a context error. hint describes the
// resolved descriptors' sizes and is advisory only.
//
// Select lets wire formats that depend on network parameters, such as the
// validator count, be nested anywhere without threading those parameters
// through every descriptor constructor.
func Select[C, T, V any](name string, hint SizeHint, choose func(ctx C) (*Descriptor[T, V], error)) *Descriptor[T, V] {
	resolve := func(phase errors.Phase, ctx any) (*Descriptor[T, V], error) {
		if ctx == nil {
			return nil, errors.Context(phase, name, "no context attached")
		}
		c, ok := ctx.(C)
		if !ok {
			return nil, errors.Context(phase, name,
				fmt.Sprintf("context has type %T, want %s", ctx, reflect.TypeFor[C]()))
		}
		desc, err := choose(c)
		if err != nil {
			return nil, errors.New(phase, errors.KindContext).
				Type(name).
				Cause(err).
				Detail("select descriptor").
				Build()
		}
		if desc == nil {
			return nil, errors.Context(phase, name, "chooser returned no descriptor")
		}
		return desc, nil
	}

	return &Descriptor[T, V]{
		name:     name,
		sizeHint: hint,
		encode: func(e *Encoder, v T) error {
			desc, err := resolve(errors.PhaseEncode, e.ctx)
			if err != nil {
				return err
			}
			return desc.encode(e, v)
		},
		decode: func(d *Decoder) (T, error) {
			desc, err := resolve(errors.PhaseDecode, d.ctx)
			if err != nil {
				var zero T
				return zero, err
			}
			return desc.decode(d)
		},
		skip: func(s *Skipper) error {
			desc, err := resolve(errors.PhaseSkip, s.d.ctx)
			if err != nil {
				return err
			}
			return desc.skip(s)
		},
		view: func(d *Decoder) (V, error) {
			desc, err := resolve(errors.PhaseView, d.ctx)
			if err != nil {
				var zero V
				return zero, err
			}
			return desc.view(d)
		},
	}
}
