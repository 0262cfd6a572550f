package codec

import (
	"bytes"
	"math"
	"slices"

	"github.com/wippyai/jam-codec/errors"
	"go.uber.org/zap"
)

// DictionaryOptions configures a Dictionary descriptor.
type DictionaryOptions[K any] struct {
	// SortKeys orders keys on the wire. It must be a strict weak order
	// returning a negative, zero or positive number like cmp.Compare.
	SortKeys func(a, b K) int
	// FixedLength, when non-zero, drops the count prefix and requires
	// exactly this many entries.
	FixedLength int
	// Range bounds the entry count. Nil accepts any count.
	Range *LengthRange
}

// HashOrder orders 32-byte keys lexicographically.
func HashOrder[K ~[32]byte](a, b K) int {
	return bytes.Compare(a[:], b[:])
}

// Dictionary describes a map from K to V encoded as an optional count
// followed by (key, value) pairs in SortKeys order.
//
// Encoding sorts entries first, so any map produces canonical bytes.
// Decoding is strict: keys must be strictly ascending, and an out-of-order or
// duplicate key fails naming that key.
//
// Dictionary panics if opts.SortKeys is nil.
func Dictionary[K comparable, V, KV, VV any](key *Descriptor[K, KV], value *Descriptor[V, VV], opts DictionaryOptions[K]) *Plain[map[K]V] {
	if opts.SortKeys == nil {
		panic("codec: Dictionary requires SortKeys")
	}
	name := "Dictionary<" + key.name + ", " + value.name + ">"
	fixed := opts.FixedLength > 0
	r := AnyLength
	if opts.Range != nil {
		r = *opts.Range
	}
	if fixed {
		r = Exactly(opts.FixedLength)
	}
	entry := key.sizeHint.Add(value.sizeHint)

	hint := Estimate(1)
	if fixed {
		hint = entry.Times(opts.FixedLength)
	}

	readCount := func(d *Decoder) (int, error) {
		if fixed {
			return opts.FixedLength, nil
		}
		n, err := d.VarU32()
		if err != nil {
			return 0, err
		}
		if err := r.check(errors.PhaseDecode, name, int(n)); err != nil {
			return 0, err
		}
		return int(n), nil
	}

	encode := func(e *Encoder, m map[K]V) error {
		if err := r.check(errors.PhaseEncode, name, len(m)); err != nil {
			return err
		}
		keys := make([]K, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		slices.SortFunc(keys, opts.SortKeys)
		if !fixed {
			if uint64(len(keys)) > math.MaxUint32 {
				return errors.Overflow(errors.PhaseEncode, len(keys), "dictionary length")
			}
			if err := e.VarU32(uint32(len(keys))); err != nil {
				return err
			}
		}
		for i, k := range keys {
			if err := key.encode(e, k); err != nil {
				return errors.WithPath(err, indexPath(i))
			}
			if err := value.encode(e, m[k]); err != nil {
				return errors.WithPath(err, indexPath(i))
			}
		}
		return nil
	}

	decode := func(d *Decoder) (map[K]V, error) {
		n, err := readCount(d)
		if err != nil {
			return nil, err
		}
		capacity := n
		if capacity > d.Remaining() {
			capacity = d.Remaining()
		}
		m := make(map[K]V, capacity)
		var prev K
		for i := 0; i < n; i++ {
			start := d.offset
			k, err := key.decode(d)
			if err != nil {
				return nil, errors.WithPath(err, indexPath(i))
			}
			if i > 0 && opts.SortKeys(prev, k) >= 0 {
				Logger().Debug("codec: rejecting unordered dictionary key",
					zap.String("dictionary", name),
					zap.Int("entry", i),
					zap.Int("offset", start))
				return nil, errors.Ordering(errors.PhaseDecode, name, k, start)
			}
			v, err := value.decode(d)
			if err != nil {
				return nil, errors.WithPath(err, indexPath(i))
			}
			m[k] = v
			prev = k
		}
		return m, nil
	}

	skip := func(s *Skipper) error {
		n, err := readCount(s.d)
		if err != nil {
			return err
		}
		if entry.IsExact {
			if entry.Bytes != 0 && n > s.d.Remaining()/entry.Bytes {
				return errors.OutOfBounds(errors.PhaseSkip, s.d.offset, n*entry.Bytes, s.d.Remaining())
			}
			return s.Skip(n * entry.Bytes)
		}
		for i := 0; i < n; i++ {
			if err := key.skip(s); err != nil {
				return errors.WithPath(err, indexPath(i))
			}
			if err := value.skip(s); err != nil {
				return errors.WithPath(err, indexPath(i))
			}
		}
		return nil
	}

	return Custom(name, hint, encode, decode, skip)
}
