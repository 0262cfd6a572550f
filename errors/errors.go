package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseEncode Phase = "encode" // value to bytes
	PhaseDecode Phase = "decode" // bytes to value
	PhaseSkip   Phase = "skip"   // cursor advance without decoding
	PhaseView   Phase = "view"   // lazy field access
	PhaseConfig Phase = "config" // chain spec loading
)

// Kind categorizes the error
type Kind string

const (
	KindOverflow     Kind = "overflow"
	KindOutOfBounds  Kind = "out_of_bounds"
	KindLengthRange  Kind = "length_range"
	KindOrdering     Kind = "ordering"
	KindCapacity     Kind = "capacity"
	KindContext      Kind = "context"
	KindInvalidData  Kind = "invalid_data"
	KindInvalidUTF8  Kind = "invalid_utf8"
	KindFieldUnknown Kind = "field_unknown"
	KindInvalidInput Kind = "invalid_input"
)

// Error is the structured error type used throughout the codec
type Error struct {
	Value     any
	Cause     error
	Phase     Phase
	Kind      Kind
	Type      string
	Detail    string
	Path      []string
	Offset    int
	HasOffset bool
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.HasOffset {
		b.WriteString(" (offset ")
		b.WriteString(fmt.Sprint(e.Offset))
		b.WriteByte(')')
	}

	if e.Type != "" {
		b.WriteString(": type ")
		b.WriteString(e.Type)
	}

	if e.Detail != "" {
		if e.Type != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the descriptor path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Type sets the descriptor name
func (b *Builder) Type(t string) *Builder {
	b.err.Type = t
	return b
}

// Offset sets the byte offset the failure was detected at
func (b *Builder) Offset(off int) *Builder {
	b.err.Offset = off
	b.err.HasOffset = true
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// WithPath prepends elem to the path of a structured error. Other errors are
// returned unchanged. Nested descriptors call this while unwinding so the
// final path reads outermost first.
func WithPath(err error, elem string) error {
	e, ok := err.(*Error)
	if !ok || elem == "" {
		return err
	}
	path := make([]string, 0, len(e.Path)+1)
	path = append(path, elem)
	e.Path = append(path, e.Path...)
	return e
}

// Convenience constructors for common error patterns

// Overflow creates an error for an integer that does not fit its wire width
func Overflow(phase Phase, value any, target string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOverflow,
		Type:   target,
		Detail: fmt.Sprintf("value %v overflows %s", value, target),
		Value:  value,
	}
}

// OutOfBounds creates an error for a read past the end of the source
func OutOfBounds(phase Phase, offset, need, have int) *Error {
	return &Error{
		Phase:     phase,
		Kind:      KindOutOfBounds,
		Detail:    fmt.Sprintf("need %d bytes, %d remaining", need, have),
		Value:     need,
		Offset:    offset,
		HasOffset: true,
	}
}

// LengthRange creates an error for a sequence or dictionary whose length is
// outside its declared bounds
func LengthRange(phase Phase, name string, length, minLength, maxLength int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindLengthRange,
		Type:   name,
		Detail: fmt.Sprintf("length %d outside [%d, %d]", length, minLength, maxLength),
		Value:  length,
	}
}

// Ordering creates an error for a dictionary key that is out of order or
// duplicated
func Ordering(phase Phase, name string, key any, offset int) *Error {
	return &Error{
		Phase:     phase,
		Kind:      KindOrdering,
		Type:      name,
		Detail:    fmt.Sprintf("key %v is not strictly greater than its predecessor", key),
		Value:     key,
		Offset:    offset,
		HasOffset: true,
	}
}

// Capacity creates an error for an encode that would exceed the buffer limit
func Capacity(phase Phase, need, limit int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindCapacity,
		Detail: fmt.Sprintf("%d bytes exceeds capacity %d", need, limit),
		Value:  need,
	}
}

// Context creates an error for a missing or mistyped ambient context
func Context(phase Phase, name string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindContext,
		Type:   name,
		Detail: detail,
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, offset int, detail string) *Error {
	return &Error{
		Phase:     phase,
		Kind:      KindInvalidData,
		Detail:    detail,
		Offset:    offset,
		HasOffset: true,
	}
}

// InvalidUTF8 creates an invalid UTF-8 error
func InvalidUTF8(phase Phase, offset int, data []byte) *Error {
	preview := data
	if len(preview) > 32 {
		preview = preview[:32]
	}
	return &Error{
		Phase:     phase,
		Kind:      KindInvalidUTF8,
		Detail:    fmt.Sprintf("invalid UTF-8 sequence: %x", preview),
		Offset:    offset,
		HasOffset: true,
	}
}

// FieldUnknown creates an unknown field error
func FieldUnknown(phase Phase, typeName, fieldName string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindFieldUnknown,
		Type:   typeName,
		Detail: fmt.Sprintf("unknown field %q", fieldName),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
