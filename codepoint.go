package utfkit

// Codespace boundaries shared by every encoding form.
const (
	// MaxCodePoint is the largest codepoint in the Unicode codespace.
	MaxCodePoint rune = 0x10FFFF

	// ReplacementChar marks undecodable input in scrubbed output.
	ReplacementChar rune = 0xFFFD

	// Surrogate block, reserved for 16-bit pair halves. Codepoints in
	// this range are not scalar values and never appear decoded.
	LeadSurrogateMin  rune = 0xD800
	LeadSurrogateMax  rune = 0xDBFF
	TrailSurrogateMin rune = 0xDC00
	TrailSurrogateMax rune = 0xDFFF
)

// IsLeadSurrogate reports whether r lies in the high-surrogate range
// used for the first half of a 16-bit pair.
func IsLeadSurrogate(r rune) bool {
	return r >= LeadSurrogateMin && r <= LeadSurrogateMax
}

// IsTrailSurrogate reports whether r lies in the low-surrogate range
// used for the second half of a 16-bit pair.
func IsTrailSurrogate(r rune) bool {
	return r >= TrailSurrogateMin && r <= TrailSurrogateMax
}

// IsSurrogate reports whether r lies anywhere in the surrogate block.
func IsSurrogate(r rune) bool {
	return r >= LeadSurrogateMin && r <= TrailSurrogateMax
}

// ValidCodePoint reports whether r is a Unicode scalar value: inside the
// codespace and not a surrogate. Only scalar values can be encoded.
func ValidCodePoint(r rune) bool {
	return r >= 0 && r <= MaxCodePoint && !IsSurrogate(r)
}
