// Package jamcodec is the canonical binary codec for the node's protocol
// values.
//
// Every value that crosses the wire or is hashed into state is serialized
// through a descriptor from the codec package. Equal values always produce
// identical bytes, so encodings may be hashed and compared directly.
//
// # Architecture Overview
//
//	jamcodec/
//	├── codec/           Descriptors, encoder, decoder, skipper and views
//	├── chainspec/       Network parameters used as encoding context
//	├── hashing/         Digest functions applied to encoded bytes
//	├── errors/          Structured error types for debugging
//	└── cmd/jamcodec/    Command-line inspector for encoded values
//
// # Quick Start
//
// Declare a record once and reuse its descriptor:
//
//	type Ticket struct {
//		ID      []byte
//		Attempt uint8
//	}
//
//	var TicketCodec = codec.Class("Ticket",
//		codec.FieldOf("id", codec.Bytes(32), func(t *Ticket) *[]byte { return &t.ID }),
//		codec.FieldOf("attempt", codec.U8, func(t *Ticket) *uint8 { return &t.Attempt }),
//	)
//
//	data, err := codec.Encode(TicketCodec, ticket)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	back, err := codec.Decode(TicketCodec, data)
//
// # Context-Dependent Encodings
//
// Some layouts depend on network parameters such as the number of cores.
// Pass a *chainspec.ChainSpec when encoding or decoding, and build those
// descriptors with codec.Select:
//
//	data, err := codec.EncodeWithContext(desc, v, &chainspec.Tiny)
//
// # Lazy Access
//
// codec.ViewOf returns a view that decodes single fields on demand and
// exposes the exact bytes of any nested structure:
//
//	view, err := codec.ViewOf(TicketCodec, data, nil)
//	attempt, err := codec.ViewField[uint8](view, "attempt")
//	id := view.Hash(hashing.Blake2b256)
//
// # Thread Safety
//
// Descriptors and views are safe for concurrent use. Encoder, Decoder and
// Skipper instances are not.
package jamcodec
