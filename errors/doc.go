// Package errors provides structured error types for the codec.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: descriptor path, descriptor name, byte offset
// and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindInvalidData).
//		Path("header", "epochMarker").
//		Type("bool").
//		Offset(17).
//		Detail("expected 0 or 1, got %d", v).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.OutOfBounds(errors.PhaseDecode, offset, 8, 3)
//	err := errors.LengthRange(errors.PhaseEncode, "guarantees", 3, 0, 2)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
