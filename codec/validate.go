package codec

import (
	"math"

	"github.com/wippyai/jam-codec/errors"
)

// MaxSequenceLength is the largest element count a length prefix can carry.
const MaxSequenceLength = math.MaxUint32

// LengthRange holds inclusive bounds on the number of elements in a sequence
// or dictionary.
type LengthRange struct {
	Min int
	Max int
}

// AnyLength accepts every count that fits the length prefix.
var AnyLength = LengthRange{Min: 0, Max: MaxSequenceLength}

// AtMost returns a range from zero to n.
func AtMost(n int) LengthRange {
	return LengthRange{Min: 0, Max: n}
}

// Exactly returns a range accepting only n.
func Exactly(n int) LengthRange {
	return LengthRange{Min: n, Max: n}
}

// Contains reports whether n is inside the range.
func (r LengthRange) Contains(n int) bool {
	return n >= r.Min && n <= r.Max
}

func (r LengthRange) check(phase errors.Phase, name string, n int) error {
	if r.Contains(n) {
		return nil
	}
	return errors.LengthRange(phase, name, n, r.Min, r.Max)
}
