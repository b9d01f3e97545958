package utfkit

// SequenceLength classifies lead by its high bits and returns the total
// length of the sequence it opens: 1 for 0xxxxxxx, 2 for 110xxxxx, 3 for
// 1110xxxx, 4 for 11110xxx. Continuation bytes and the 11111xxx patterns
// open no sequence and yield 0.
func SequenceLength(lead byte) int {
	switch {
	case lead < 0x80:
		return 1
	case lead>>5 == 0x06:
		return 2
	case lead>>4 == 0x0E:
		return 3
	case lead>>3 == 0x1E:
		return 4
	default:
		return 0
	}
}

// IsTrail reports whether b carries the 10xxxxxx continuation tag.
func IsTrail(b byte) bool {
	return b>>6 == 0x02
}

// EncodedLen returns the number of bytes in the minimal encoding of cp,
// or -1 when cp is not a scalar value. A well-formed sequence is exactly
// this long; anything longer is overlong.
func EncodedLen(cp rune) int {
	switch {
	case cp < 0:
		return -1
	case cp < 0x80:
		return 1
	case cp < 0x800:
		return 2
	case IsSurrogate(cp):
		return -1
	case cp < 0x10000:
		return 3
	case cp <= MaxCodePoint:
		return 4
	default:
		return -1
	}
}
