// Package hashing provides the digests used to fingerprint encoded values.
//
// Blake2b256 is the protocol hash. Blake3 is offered for local content
// addressing where interoperability with other implementations is not
// required.
package hashing

import (
	"encoding/hex"
	"fmt"
	"sort"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
)

// Size is the length of every digest in bytes.
const Size = 32

// Hash is a 32-byte digest.
type Hash [Size]byte

// String returns the digest as lowercase hex with a 0x prefix.
func (h Hash) String() string {
	return "0x" + hex.EncodeToString(h[:])
}

// Func hashes a byte range.
type Func func(data []byte) Hash

// Blake2b256 returns the BLAKE2b-256 digest of data.
func Blake2b256(data []byte) Hash {
	return blake2b.Sum256(data)
}

// Blake3 returns the 256-bit BLAKE3 digest of data.
func Blake3(data []byte) Hash {
	return blake3.Sum256(data)
}

var byName = map[string]Func{
	"blake2b": Blake2b256,
	"blake3":  Blake3,
}

// ByName looks up a digest function by its name ("blake2b" or "blake3").
func ByName(name string) (Func, error) {
	fn, ok := byName[name]
	if !ok {
		return nil, fmt.Errorf("unknown hash %q (known: %v)", name, Names())
	}
	return fn, nil
}

// Names returns the known digest names in sorted order.
func Names() []string {
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
