package codec

import (
	stderrors "errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/wippyai/jam-codec/errors"
)

type ticket struct {
	ID      []byte
	Attempt uint8
}

var ticketCodec = Class("Ticket",
	FieldOf("id", Bytes(32), func(t *ticket) *[]byte { return &t.ID }),
	FieldOf("attempt", U8, func(t *ticket) *uint8 { return &t.Attempt }),
)

type header struct {
	Parent  []byte
	Slot    uint32
	Extra   []byte
	Tickets []ticket
	Author  uint16
	Seal    *uint64
}

var headerCodec = Class("Header",
	FieldOf("parent", Bytes(32), func(h *header) *[]byte { return &h.Parent }),
	FieldOf("slot", U32, func(h *header) *uint32 { return &h.Slot }),
	FieldOf("extra", Blob, func(h *header) *[]byte { return &h.Extra }),
	FieldOf("tickets", SequenceVarLen(ticketCodec, AtMost(3)), func(h *header) *[]ticket { return &h.Tickets }),
	FieldOf("author", U16, func(h *header) *uint16 { return &h.Author }),
	FieldOf("seal", Optional(U64), func(h *header) **uint64 { return &h.Seal }),
)

func filled(n int, b byte) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = b
	}
	return out
}

func sampleHeader() header {
	seal := uint64(0xdeadbeef)
	return header{
		Parent: filled(32, 0xaa),
		Slot:   42,
		Extra:  []byte("extra data"),
		Tickets: []ticket{
			{ID: filled(32, 1), Attempt: 0},
			{ID: filled(32, 2), Attempt: 1},
		},
		Author: 7,
		Seal:   &seal,
	}
}

var equateEmpty = cmpopts.EquateEmpty()

func mustEncode[T, V any](t *testing.T, desc *Descriptor[T, V], v T) []byte {
	t.Helper()
	data, err := Encode(desc, v)
	if err != nil {
		t.Fatalf("Encode(%s): %v", desc.Name(), err)
	}
	return data
}

func mustDecode[T, V any](t *testing.T, desc *Descriptor[T, V], data []byte) T {
	t.Helper()
	v, err := Decode(desc, data)
	if err != nil {
		t.Fatalf("Decode(%s, %x): %v", desc.Name(), data, err)
	}
	return v
}

// roundTrip checks decode(encode(v)) == v, exact size hints and skip
// fidelity for one value.
func roundTrip[T, V any](t *testing.T, desc *Descriptor[T, V], v T, opts ...cmp.Option) []byte {
	t.Helper()
	data := mustEncode(t, desc, v)
	got := mustDecode(t, desc, data)
	if diff := cmp.Diff(v, got, append(opts, equateEmpty)...); diff != "" {
		t.Errorf("%s round trip mismatch (-want +got):\n%s", desc.Name(), diff)
	}
	if hint := desc.SizeHint(); hint.IsExact && hint.Bytes != len(data) {
		t.Errorf("%s exact size hint %d, encoded %d bytes", desc.Name(), hint.Bytes, len(data))
	}
	n, err := EncodedLength(desc, data, nil)
	if err != nil {
		t.Fatalf("EncodedLength(%s): %v", desc.Name(), err)
	}
	if n != len(data) {
		t.Errorf("%s skip advanced %d bytes, encoded %d", desc.Name(), n, len(data))
	}
	return data
}

func wantKind(t *testing.T, err error, phase errors.Phase, kind errors.Kind) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected [%s] %s error, got nil", phase, kind)
	}
	if !stderrors.Is(err, &errors.Error{Phase: phase, Kind: kind}) {
		t.Fatalf("expected [%s] %s error, got %v", phase, kind, err)
	}
}
