// Package errors provides structured error types for the utfkit library.
//
// Errors are categorized by Kind (the defect class) and carry the offset of
// the offending sequence plus the value that triggered the failure: the lead
// byte, the decoded codepoint, or the UTF-16 unit, depending on the Kind.
//
// Use the convenience constructors for common patterns:
//
//	err := errors.InvalidLead(pos, lead)
//	err := errors.OverlongSequence(pos, cp, length)
//	err := errors.InvalidUTF16(pos, unit)
//
// All errors implement the standard error interface and support errors.Is/As.
// Matching against a bare Kind compares the category only:
//
//	if errors.Is(err, &errors.Error{Kind: errors.KindNotEnoughRoom}) {
//		// input was truncated mid-sequence
//	}
package errors
