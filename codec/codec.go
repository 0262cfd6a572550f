package codec

import "bytes"

// Encode encodes v with desc and no context.
func Encode[T, V any](desc *Descriptor[T, V], v T) ([]byte, error) {
	return EncodeWithContext(desc, v, nil)
}

// EncodeWithContext encodes v with desc. ctx is available to every nested
// descriptor, most notably those built with Select.
func EncodeWithContext[T, V any](desc *Descriptor[T, V], v T, ctx any) ([]byte, error) {
	buf := getEncodeBuf()
	e := newEncoderWithBuffer(*buf, ctx)
	err := EncodeObject(e, desc, v)
	var out []byte
	if err == nil {
		out = bytes.Clone(e.Result())
	}
	*buf = e.buf[:0]
	putEncodeBuf(buf)
	return out, err
}

// Decode decodes exactly one value of desc from data with no context.
func Decode[T, V any](desc *Descriptor[T, V], data []byte) (T, error) {
	return DecodeWithContext(desc, data, nil)
}

// DecodeWithContext decodes exactly one value of desc from data. Trailing
// bytes are an error.
func DecodeWithContext[T, V any](desc *Descriptor[T, V], data []byte, ctx any) (T, error) {
	d := NewDecoder(data, ctx)
	v, err := desc.Decode(d)
	if err != nil {
		var zero T
		return zero, err
	}
	if err := d.Finish(); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// ViewOf returns desc's view over data, which must hold exactly one value.
// The view aliases data.
func ViewOf[T, V any](desc *Descriptor[T, V], data []byte, ctx any) (V, error) {
	d := NewDecoder(data, ctx)
	v, err := desc.View(d)
	if err != nil {
		var zero V
		return zero, err
	}
	if err := d.Finish(); err != nil {
		var zero V
		return zero, err
	}
	return v, nil
}

// EncodedLength returns the number of bytes the value of desc at the start of
// data occupies, without decoding it.
func EncodedLength[T, V any](desc *Descriptor[T, V], data []byte, ctx any) (int, error) {
	d := NewDecoder(data, ctx)
	if err := desc.Skip(NewSkipper(d)); err != nil {
		return 0, err
	}
	return d.BytesRead(), nil
}
