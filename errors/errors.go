package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Kind categorizes the defect
type Kind string

const (
	KindNotEnoughRoom      Kind = "not_enough_room"
	KindInvalidLead        Kind = "invalid_lead"
	KindIncompleteSequence Kind = "incomplete_sequence"
	KindOverlongSequence   Kind = "overlong_sequence"
	KindInvalidCodePoint   Kind = "invalid_code_point"
	KindInvalidUTF16       Kind = "invalid_utf16"
	KindOutOfRange         Kind = "out_of_range"
	KindRangeMismatch      Kind = "range_mismatch"
)

// Error is the structured defect type used throughout the library.
//
// Offset is the unit offset in the input sequence where the defect was
// found: a byte offset for 8-bit input, a word offset for 16-bit input,
// a codepoint offset for 32-bit input. It is -1 when the failing
// operation has no input sequence (encoding a single codepoint).
//
// Value holds the offending unit or codepoint when one exists: a byte
// for 8-bit defects, a uint16 for 16-bit defects, a rune for codepoint
// defects.
type Error struct {
	Value  any
	Kind   Kind
	Offset int
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Kind))
	b.WriteByte(']')

	if e.Offset >= 0 {
		b.WriteString(" at offset ")
		fmt.Fprintf(&b, "%d", e.Offset)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	return b.String()
}

// Is reports whether target matches this error. Two library errors
// match when they carry the same Kind, so callers can test for a
// defect class with errors.Is(err, &Error{Kind: KindInvalidLead}).
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}

// KindOf returns the defect kind carried by err, unwrapping as needed,
// or the empty Kind when err is not a library defect.
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// Convenience constructors for the defect taxonomy

// NotEnoughRoom reports input that ends before a sequence is complete.
// offset is the start of the truncated sequence.
func NotEnoughRoom(offset int) *Error {
	return &Error{
		Kind:   KindNotEnoughRoom,
		Offset: offset,
		Detail: "input ends before the sequence is complete",
	}
}

// InvalidLead reports a leading unit that matches no sequence-length
// pattern (a continuation-tagged byte, or 0xF8 and above).
func InvalidLead(offset int, lead byte) *Error {
	return &Error{
		Kind:   KindInvalidLead,
		Offset: offset,
		Value:  lead,
		Detail: fmt.Sprintf("%#02x is not a valid lead byte", lead),
	}
}

// IncompleteSequence reports a continuation position holding a unit
// without the 10xxxxxx tag. offset is the start of the sequence; unit
// is the byte found where a continuation was required.
func IncompleteSequence(offset int, unit byte) *Error {
	return &Error{
		Kind:   KindIncompleteSequence,
		Offset: offset,
		Value:  unit,
		Detail: fmt.Sprintf("%#02x is not a continuation byte", unit),
	}
}

// OverlongSequence reports a codepoint encoded in more units than its
// minimal form requires. length is the unit count consumed.
func OverlongSequence(offset int, cp rune, length int) *Error {
	return &Error{
		Kind:   KindOverlongSequence,
		Offset: offset,
		Value:  cp,
		Detail: fmt.Sprintf("%s does not require %d bytes", formatCodePoint(cp), length),
	}
}

// InvalidCodePoint reports a value outside the Unicode scalar range:
// a surrogate, a negative value, or a value beyond U+10FFFF.
func InvalidCodePoint(offset int, cp rune) *Error {
	detail := fmt.Sprintf("%s is beyond the maximum scalar value", formatCodePoint(cp))
	if cp >= 0xD800 && cp <= 0xDFFF {
		detail = fmt.Sprintf("%s is a surrogate codepoint", formatCodePoint(cp))
	}
	return &Error{
		Kind:   KindInvalidCodePoint,
		Offset: offset,
		Value:  cp,
		Detail: detail,
	}
}

// InvalidUTF16 reports a lone surrogate or an unpaired lead surrogate
// in 16-bit input. offset is the word offset of the offending unit.
func InvalidUTF16(offset int, unit uint16) *Error {
	return &Error{
		Kind:   KindInvalidUTF16,
		Offset: offset,
		Value:  unit,
		Detail: fmt.Sprintf("unpaired surrogate unit %#04x", unit),
	}
}

// OutOfRange reports a cursor position outside [0, length].
func OutOfRange(pos, length int) *Error {
	return &Error{
		Kind:   KindOutOfRange,
		Offset: -1,
		Value:  pos,
		Detail: fmt.Sprintf("position %d outside sequence of %d units", pos, length),
	}
}

// RangeMismatch reports a comparison between cursors constructed over
// different underlying sequences.
func RangeMismatch() *Error {
	return &Error{
		Kind:   KindRangeMismatch,
		Offset: -1,
		Detail: "cursors range over different sequences",
	}
}

func formatCodePoint(cp rune) string {
	if cp < 0 {
		return fmt.Sprintf("codepoint %d", cp)
	}
	return fmt.Sprintf("U+%04X", cp)
}
