package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wippyai/jam-codec/hashing"
)

func TestRun(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"encode small", []string{"natural", "encode", "127"}, "0x7f\n"},
		{"encode two bytes", []string{"natural", "encode", "128"}, "0x8080\n"},
		{"encode explicit", []string{"natural", "encode", "72057594037927936"}, "0xff0000000000000001\n"},
		{"decode", []string{"natural", "decode", "0xc00040"}, "16384\n"},
		{"decode without prefix", []string{"natural", "decode", "bfff"}, "16383\n"},
		{"bits tiny", []string{"bits", "01"}, "tiny: 1 of 2 cores set\n10\n"},
		{"bits full", []string{"--preset", "full", "bits", "0x" + strings.Repeat("00", 42) + "10"},
			"full: 1 of 341 cores set\n" + strings.Repeat("0", 340) + "1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			if err := run(tt.args, &out); err != nil {
				t.Fatalf("run(%v): %v", tt.args, err)
			}
			if out.String() != tt.want {
				t.Errorf("output = %q, want %q", out.String(), tt.want)
			}
		})
	}
}

func TestRunBlobs(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"--hash", "blake3", "blobs", "0202616200"}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines:\n%s", len(lines), out.String())
	}
	wantTotal := hashing.Blake3([]byte{0x02, 0x02, 0x61, 0x62, 0x00})
	if lines[0] != "2 blobs, digest "+wantTotal.String() {
		t.Errorf("header line = %q", lines[0])
	}
	wantFirst := hashing.Blake3([]byte{0x02, 0x61, 0x62})
	if lines[1] != "[0] 2 bytes 0x6162 digest "+wantFirst.String() {
		t.Errorf("first blob line = %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "[1] 0 bytes 0x digest ") {
		t.Errorf("second blob line = %q", lines[2])
	}
}

func TestRunSpec(t *testing.T) {
	path := filepath.Join(t.TempDir(), "devnet.yaml")
	if err := os.WriteFile(path, []byte("preset: tiny\nname: devnet\ncores_count: 4\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := run([]string{"spec", path}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	for _, want := range []string{"# devnet (validators=6 cores=4 epoch=12)", "# super-majority 5", "cores_count: 4"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}

	out.Reset()
	if err := run([]string{"--chain-spec", path, "bits", "0x09"}, &out); err != nil {
		t.Fatalf("bits with chain spec file: %v", err)
	}
	if out.String() != "devnet: 2 of 4 cores set\n1001\n" {
		t.Errorf("output = %q", out.String())
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no command", nil},
		{"unknown command", []string{"frobnicate"}},
		{"natural missing arg", []string{"natural", "encode"}},
		{"natural bad op", []string{"natural", "twist", "1"}},
		{"natural not a number", []string{"natural", "encode", "-1"}},
		{"bad hex", []string{"natural", "decode", "zz"}},
		{"truncated natural", []string{"natural", "decode", "c000"}},
		{"trailing bytes", []string{"natural", "decode", "0101"}},
		{"unknown hash", []string{"--hash", "md5", "blobs", "00"}},
		{"truncated blobs", []string{"blobs", "0105"}},
		{"bits padding", []string{"bits", "ff"}},
		{"unknown preset", []string{"--preset", "huge", "bits", "00"}},
		{"missing spec file", []string{"spec", "/nonexistent/spec.yaml"}},
		{"unknown flag", []string{"--frob", "natural", "encode", "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			if err := run(tt.args, &out); err == nil {
				t.Errorf("run(%v) should fail, output %q", tt.args, out.String())
			}
		})
	}
}

func TestRunHelp(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"--help"}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "natural encode <n>") || !strings.Contains(out.String(), "--chain-spec") {
		t.Errorf("help output:\n%s", out.String())
	}
}
