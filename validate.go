package utfkit

import "unsafe"

// FindInvalid returns the byte offset of the first malformed sequence in
// p, or len(p) when the whole buffer is well formed.
func FindInvalid(p []byte) int {
	for pos := 0; pos < len(p); {
		_, next, err := DecodeNext(p, pos)
		if err != nil {
			return pos
		}
		pos = next
	}
	return len(p)
}

// Valid reports whether p holds nothing but well-formed sequences.
func Valid(p []byte) bool {
	return FindInvalid(p) == len(p)
}

// FindInvalidInString is FindInvalid over the bytes of s.
func FindInvalidInString(s string) int {
	return FindInvalid(byteView(s))
}

// ValidString is Valid over the bytes of s.
func ValidString(s string) bool {
	return Valid(byteView(s))
}

// byteView aliases the bytes of s without copying. The view is read-only
// and must never be written or retained past the caller.
func byteView(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
