package hashing

import (
	"testing"
)

func TestBlake2b256(t *testing.T) {
	// BLAKE2b-256 of the empty input.
	want := "0x0e5751c026e543b2e8ab2eb06099daa1d1e5df47778f7787faab45cdf12fe3a8"
	if got := Blake2b256(nil).String(); got != want {
		t.Errorf("Blake2b256(nil) = %s, want %s", got, want)
	}
}

func TestBlake3(t *testing.T) {
	// BLAKE3 of the empty input.
	want := "0xaf1349b9f5f9a1a6a0404dea36dcc9499bcb25c9adc112b7cc9a93cae41f3262"
	if got := Blake3(nil).String(); got != want {
		t.Errorf("Blake3(nil) = %s, want %s", got, want)
	}
}

func TestByName(t *testing.T) {
	for _, name := range Names() {
		fn, err := ByName(name)
		if err != nil {
			t.Fatalf("ByName(%q): %v", name, err)
		}
		if fn([]byte("jam")) == (Hash{}) {
			t.Errorf("%s digest is zero", name)
		}
	}

	if _, err := ByName("sha1"); err == nil {
		t.Error("ByName(sha1) should fail")
	}
}

func TestDistinctDigests(t *testing.T) {
	data := []byte("header")
	if Blake2b256(data) == Blake3(data) {
		t.Error("blake2b and blake3 digests should differ")
	}
}
