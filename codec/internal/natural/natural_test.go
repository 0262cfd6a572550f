package natural

import (
	"bytes"
	"math"
	"testing"
)

func TestPut(t *testing.T) {
	tests := []struct {
		encoded []byte
		value   uint64
	}{
		{[]byte{0x00}, 0},
		{[]byte{0x01}, 1},
		{[]byte{0x7f}, 127},
		{[]byte{0x80, 0x80}, 128},
		{[]byte{0x80, 0xff}, 255},
		{[]byte{0x81, 0x00}, 256},
		{[]byte{0xbf, 0xff}, 1<<14 - 1},
		{[]byte{0xc0, 0x00, 0x40}, 1 << 14},
		{[]byte{0xfe, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, 1<<56 - 1},
		{[]byte{0xff, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01}, 1 << 56},
		{[]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, math.MaxUint64},
	}

	for _, tt := range tests {
		t.Run("", func(t *testing.T) {
			got := Append(nil, tt.value)
			if !bytes.Equal(got, tt.encoded) {
				t.Errorf("encode %d: got %x, want %x", tt.value, got, tt.encoded)
			}
			if Len(tt.value) != len(tt.encoded) {
				t.Errorf("Len(%d) = %d, want %d", tt.value, Len(tt.value), len(tt.encoded))
			}

			v, n, ok := Decode(tt.encoded)
			if !ok {
				t.Fatalf("decode %x: not ok", tt.encoded)
			}
			if v != tt.value || n != len(tt.encoded) {
				t.Errorf("decode %x = (%d, %d), want (%d, %d)", tt.encoded, v, n, tt.value, len(tt.encoded))
			}
		})
	}
}

func TestLenBoundaries(t *testing.T) {
	for l := 0; l < 8; l++ {
		lo := uint64(0)
		if l > 0 {
			lo = 1 << (7 * l)
		}
		hi := uint64(1)<<(7*(l+1)) - 1
		if Len(lo) != l+1 || Len(hi) != l+1 {
			t.Errorf("l=%d: Len(%d)=%d Len(%d)=%d, want %d", l, lo, Len(lo), hi, Len(hi), l+1)
		}
		for _, v := range []uint64{lo, hi} {
			enc := Append(nil, v)
			if ExtraBytes(enc[0]) != l {
				t.Errorf("ExtraBytes(%#x) = %d, want %d", enc[0], ExtraBytes(enc[0]), l)
			}
			got, _, ok := Decode(enc)
			if !ok || got != v {
				t.Errorf("round trip %d: got %d (ok=%v)", v, got, ok)
			}
		}
	}
}

func TestExtraBytes(t *testing.T) {
	tests := []struct {
		first byte
		want  int
	}{
		{0x00, 0},
		{0x7f, 0},
		{0x80, 1},
		{0xbf, 1},
		{0xc0, 2},
		{0xe0, 3},
		{0xf0, 4},
		{0xf8, 5},
		{0xfc, 6},
		{0xfe, 7},
		{0xff, 8},
	}
	for _, tt := range tests {
		if got := ExtraBytes(tt.first); got != tt.want {
			t.Errorf("ExtraBytes(%#x) = %d, want %d", tt.first, got, tt.want)
		}
	}
}

func TestDecodeShort(t *testing.T) {
	tests := []struct {
		src  []byte
		need int
	}{
		{nil, 1},
		{[]byte{0x80}, 2},
		{[]byte{0xc0, 0x00}, 3},
		{[]byte{0xff, 0x01, 0x02}, 9},
	}
	for _, tt := range tests {
		_, n, ok := Decode(tt.src)
		if ok {
			t.Errorf("Decode(%x) should fail", tt.src)
		}
		if n != tt.need {
			t.Errorf("Decode(%x) need = %d, want %d", tt.src, n, tt.need)
		}
	}
}
