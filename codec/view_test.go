package codec

import (
	"bytes"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/wippyai/jam-codec/errors"
	"github.com/wippyai/jam-codec/hashing"
)

type ticketsView = *SequenceView[ticket, *ObjectView[ticket]]

func headerView(t *testing.T) (*ObjectView[header], []byte) {
	t.Helper()
	data := mustEncode(t, headerCodec, sampleHeader())
	v, err := ViewOf(headerCodec, data, nil)
	if err != nil {
		t.Fatalf("ViewOf: %v", err)
	}
	return v, data
}

func TestObjectViewEncodedAndMaterialize(t *testing.T) {
	v, data := headerView(t)

	if !bytes.Equal(v.Encoded(), data) {
		t.Errorf("Encoded() = %x, want %x", v.Encoded(), data)
	}
	got, err := v.Materialize()
	if err != nil {
		t.Fatalf("Materialize: %v", err)
	}
	if diff := cmp.Diff(sampleHeader(), got, equateEmpty); diff != "" {
		t.Errorf("Materialize mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"parent", "slot", "extra", "tickets", "author", "seal"}, v.Names()); diff != "" {
		t.Errorf("Names mismatch (-want +got):\n%s", diff)
	}
}

func TestObjectViewFields(t *testing.T) {
	v, _ := headerView(t)
	want := sampleHeader()

	slot, err := ViewField[uint32](v, "slot")
	if err != nil || slot != want.Slot {
		t.Errorf("slot = %d, %v", slot, err)
	}
	extra, err := ViewField[[]byte](v, "extra")
	if err != nil || !bytes.Equal(extra, want.Extra) {
		t.Errorf("extra = %q, %v", extra, err)
	}
	author, err := ViewField[uint16](v, "author")
	if err != nil || author != want.Author {
		t.Errorf("author = %d, %v", author, err)
	}
	seal, err := ViewField[*uint64](v, "seal")
	if err != nil || seal == nil || *seal != *want.Seal {
		t.Errorf("seal = %v, %v", seal, err)
	}

	raw, err := v.FieldEncoded("slot")
	if err != nil || !bytes.Equal(raw, []byte{42, 0, 0, 0}) {
		t.Errorf("FieldEncoded(slot) = %x, %v", raw, err)
	}
	raw, err = v.FieldEncoded("extra")
	if err != nil || !bytes.Equal(raw, append([]byte{byte(len(want.Extra))}, want.Extra...)) {
		t.Errorf("FieldEncoded(extra) = %x, %v", raw, err)
	}
}

func TestObjectViewNested(t *testing.T) {
	v, _ := headerView(t)
	want := sampleHeader()

	tickets, err := ViewField[ticketsView](v, "tickets")
	if err != nil {
		t.Fatalf("tickets: %v", err)
	}
	if tickets.Len() != len(want.Tickets) {
		t.Fatalf("Len() = %d", tickets.Len())
	}

	second, err := tickets.Get(1)
	if err != nil {
		t.Fatalf("Get(1): %v", err)
	}
	id, err := ViewField[[]byte](second, "id")
	if err != nil || !bytes.Equal(id, want.Tickets[1].ID) {
		t.Errorf("tickets[1].id = %x, %v", id, err)
	}
	attempt, err := ViewField[uint8](second, "attempt")
	if err != nil || attempt != 1 {
		t.Errorf("tickets[1].attempt = %d, %v", attempt, err)
	}

	encoded, err := tickets.ElementEncoded(1)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(encoded, second.Encoded()) || !bytes.Equal(encoded, mustEncode(t, ticketCodec, want.Tickets[1])) {
		t.Errorf("ElementEncoded(1) = %x", encoded)
	}

	field, err := v.FieldEncoded("tickets")
	if err != nil || !bytes.Equal(field, tickets.Encoded()) {
		t.Errorf("sequence Encoded() = %x, field bytes %x (%v)", tickets.Encoded(), field, err)
	}

	all, err := tickets.Materialize()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want.Tickets, all); diff != "" {
		t.Errorf("Materialize mismatch (-want +got):\n%s", diff)
	}
	first, err := tickets.Decode(0)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want.Tickets[0], first); diff != "" {
		t.Errorf("Decode(0) mismatch (-want +got):\n%s", diff)
	}
}

func TestObjectViewErrors(t *testing.T) {
	v, _ := headerView(t)

	_, err := v.Get("missing")
	wantKind(t, err, errors.PhaseView, errors.KindFieldUnknown)

	_, err = v.FieldEncoded("missing")
	wantKind(t, err, errors.PhaseView, errors.KindFieldUnknown)

	_, err = ViewField[string](v, "slot")
	wantKind(t, err, errors.PhaseView, errors.KindInvalidInput)

	tickets, err := ViewField[ticketsView](v, "tickets")
	if err != nil {
		t.Fatal(err)
	}
	_, err = tickets.Get(2)
	wantKind(t, err, errors.PhaseView, errors.KindOutOfBounds)
	_, err = tickets.ElementEncoded(-1)
	wantKind(t, err, errors.PhaseView, errors.KindOutOfBounds)
}

func TestViewRejectsMalformed(t *testing.T) {
	data := mustEncode(t, headerCodec, sampleHeader())

	_, err := ViewOf(headerCodec, data[:len(data)-1], nil)
	if err == nil {
		t.Error("view over truncated data should fail")
	}
	_, err = ViewOf(headerCodec, append(data, 0), nil)
	wantKind(t, err, errors.PhaseDecode, errors.KindInvalidData)
}

func TestSequenceViewOfExactElements(t *testing.T) {
	desc := SequenceFixLen(U32, 4)
	data := mustEncode(t, desc, []uint32{10, 20, 30, 40})

	v, err := ViewOf(desc, data, nil)
	if err != nil {
		t.Fatal(err)
	}
	for i, want := range []uint32{10, 20, 30, 40} {
		got, err := v.Get(i)
		if err != nil || got != want {
			t.Errorf("Get(%d) = %d, %v", i, got, err)
		}
	}
	if !bytes.Equal(v.Encoded(), data) {
		t.Errorf("Encoded() = %x", v.Encoded())
	}
}

func TestViewHash(t *testing.T) {
	v, data := headerView(t)
	if v.Hash(hashing.Blake2b256) != hashing.Blake2b256(data) {
		t.Error("object view hash differs from hashing the encoding")
	}

	tickets, err := ViewField[ticketsView](v, "tickets")
	if err != nil {
		t.Fatal(err)
	}
	if tickets.Hash(hashing.Blake3) != hashing.Blake3(tickets.Encoded()) {
		t.Error("sequence view hash differs from hashing the encoding")
	}
	if v.Hash(hashing.Blake2b256) == v.Hash(hashing.Blake3) {
		t.Error("different hash functions agree")
	}
}

func TestViewConcurrentAccess(t *testing.T) {
	v, _ := headerView(t)
	want := sampleHeader()

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tickets, err := ViewField[ticketsView](v, "tickets")
			if err != nil {
				errs <- err
				return
			}
			tk, err := tickets.Decode(i % 2)
			if err != nil {
				errs <- err
				return
			}
			if !bytes.Equal(tk.ID, want.Tickets[i%2].ID) {
				errs <- errors.InvalidData(errors.PhaseView, 0, "wrong ticket")
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}
