package codec

// SizeHint is an advisory estimate of an encoded length. Encoders use it to
// pre-allocate; skippers jump by Bytes when IsExact is set instead of walking
// the structure.
type SizeHint struct {
	Bytes   int
	IsExact bool
}

// Exact returns a hint for encodings that are always n bytes long.
func Exact(n int) SizeHint {
	return SizeHint{Bytes: n, IsExact: true}
}

// Estimate returns an inexact hint of n bytes.
func Estimate(n int) SizeHint {
	return SizeHint{Bytes: n}
}

// Add combines two hints: bytes are summed, exactness requires both.
func (h SizeHint) Add(o SizeHint) SizeHint {
	return SizeHint{Bytes: h.Bytes + o.Bytes, IsExact: h.IsExact && o.IsExact}
}

// Times scales a hint for n repetitions of the same encoding.
func (h SizeHint) Times(n int) SizeHint {
	return SizeHint{Bytes: h.Bytes * n, IsExact: h.IsExact}
}

// Inexact drops exactness, keeping the byte estimate.
func (h SizeHint) Inexact() SizeHint {
	return SizeHint{Bytes: h.Bytes}
}
