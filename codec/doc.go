// Package codec implements the node's canonical binary codec.
//
// Every protocol value is serialized through a Descriptor, which pairs encode,
// decode and skip behavior for a Go type. Descriptors for composite types are
// built by combining smaller ones; the codec itself knows nothing about the
// domain types it serializes.
//
// # Wire Format
//
//	Construct                  Encoding
//	─────────────────────────────────────────────────────────────
//	u8..u64, i8..i64           N/8 bytes, little-endian, two's complement
//	bool                       compact natural 0 or 1
//	varU32, varU64             compact natural, 1-9 bytes
//	BytesBlob                  varU32(len) + bytes
//	Bytes(n)                   n bytes, no prefix
//	BitVecFixLen(n)            ceil(n/8) packed bytes
//	BitVecVarLen               varU32(bits) + packed bytes
//	SequenceFixLen             elements, no prefix
//	SequenceVarLen             varU32(count) + elements
//	Dictionary                 [varU32(count)] + sorted (key, value) pairs
//	Optional                   compact natural 0/1 + value if present
//	Object / Class             fields in declaration order
//
// # Key Types
//
//	Encoder       - Appends primitives to a growable or fixed buffer
//	Decoder       - Reads primitives from an immutable source
//	Skipper       - Advances a Decoder without building values
//	Descriptor    - Encode/decode/skip/view for one type
//	ObjectView    - Lazily decoded record
//	SequenceView  - Lazily decoded sequence
//
// # Declaring Records
//
//	type Header struct {
//		Parent []byte
//		Slot   uint32
//	}
//
//	var HeaderCodec = codec.Class("Header",
//		codec.FieldOf("parent", codec.Bytes(32), func(h *Header) *[]byte { return &h.Parent }),
//		codec.FieldOf("slot", codec.U32, func(h *Header) *uint32 { return &h.Slot }),
//	)
//
//	data, err := codec.Encode(HeaderCodec, h)
//	h, err := codec.Decode(HeaderCodec, data)
//
// # Views
//
// A view reads one field without decoding the rest, and exposes the exact
// source bytes of the structure for hashing or forwarding:
//
//	view, err := codec.ViewOf(HeaderCodec, data, nil)
//	slot, err := codec.ViewField[uint32](view, "slot")
//	digest := view.Hash(hashing.Blake2b256)
//
// # Context
//
// Some encodings depend on network parameters. The context passed to
// EncodeWithContext or DecodeWithContext is visible to every nested
// descriptor, and Select picks a descriptor from it:
//
//	var Votes = codec.Select("votes", codec.Estimate(128),
//		func(spec *chainspec.ChainSpec) (*codec.Plain[codec.BitVec], error) {
//			return codec.BitVecFixLen(spec.ValidatorsCount), nil
//		})
//
// # Thread Safety
//
// Descriptors are immutable and safe for concurrent use. Encoder, Decoder and
// Skipper maintain a cursor and are NOT thread-safe. Views clone their cursor
// on every access and may be shared, provided the source bytes are not
// modified.
//
// # Error Handling
//
// Errors use the structured types from the errors package:
//
//	[decode] out_of_bounds at header.extrinsic (offset 96): need 32 bytes, 4 remaining
//	[encode] length_range at guarantees: type Sequence<Guarantee> - length 3 outside [0, 2]
//	[decode] ordering (offset 41): type Dictionary<u32, BytesBlob> - key 7 is not strictly greater than its predecessor
package codec
