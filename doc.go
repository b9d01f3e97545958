// Package utfkit converts and validates text across the UTF-8, UTF-16,
// and UTF-32 encoding forms.
//
// The root package implements the checked API: every operation verifies
// its input and reports malformed data through structured errors instead
// of producing garbage or reading out of bounds. The unchecked subpackage
// mirrors the same operations without validation for input that has
// already been validated once.
//
// # Architecture Overview
//
// The library is organized into a small set of packages:
//
//	utfkit/              Root package with shared Unicode vocabulary and
//	│                    the checked decode, encode, validation, and
//	│                    transcoding API
//	├── unchecked/       Validation-free mirror of the root API for
//	│                    trusted input
//	├── errors/          Structured error types carrying defect kind,
//	│                    offset, and offending value
//	├── cmd/utfkit/      Command-line transcoder and byte-level inspector
//	└── examples/basic/  Minimal usage example
//
// # Quick Start
//
// Decode a buffer one codepoint at a time:
//
//	p := []byte("héllo")
//	for pos := 0; pos < len(p); {
//	    cp, next, err := utfkit.DecodeNext(p, pos)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Printf("U+%04X\n", cp)
//	    pos = next
//	}
//
// Validate untrusted input and scrub what cannot be decoded:
//
//	if !utfkit.Valid(data) {
//	    data, err = utfkit.ReplaceInvalid(nil, data)
//	}
//
// Convert between encoding forms:
//
//	units, err := utfkit.UTF8To16(nil, []byte("héllo"))
//	back, err := utfkit.UTF16To8(nil, units)
//
// # Checked and Unchecked
//
// Checked operations never panic on malformed input. A failed decode
// returns a position equal to the one passed in, so a caller can resume,
// skip, or substitute without losing its place. The error identifies the
// defect (invalid lead, incomplete sequence, overlong encoding, invalid
// codepoint, truncated input) along with the offset and offending value.
//
// Unchecked operations assume their input was validated beforehand and
// skip every check. They are faster on hot paths that process the same
// data repeatedly, but feeding them malformed input yields unspecified
// codepoints or a runtime bounds panic. The two modes are separate
// packages so the choice is visible at every call site.
//
// # Failure Positions
//
// Error offsets are expressed in the unit of the input being read: byte
// offsets for 8-bit input, word offsets for 16-bit input, and codepoint
// offsets for 32-bit input. The offset of a decode failure is always the
// start of the offending sequence, which is the same position FindInvalid
// reports and the same position a failed cursor step remains at.
//
// # Concurrency
//
// All functions are pure and safe for concurrent use on distinct or
// shared immutable data. A Cursor holds mutable position state and must
// be confined to one goroutine or synchronized externally.
package utfkit
