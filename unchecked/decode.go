package unchecked

import "github.com/wippyai/utfkit"

// DecodeNext decodes the sequence at pos and returns its codepoint and
// the position of the following sequence. A truncated sequence at the
// end of p panics on the bounds check.
func DecodeNext(p []byte, pos int) (rune, int) {
	cp := rune(p[pos])
	switch utfkit.SequenceLength(p[pos]) {
	case 2:
		cp = (cp&0x1F)<<6 | rune(p[pos+1]&0x3F)
		return cp, pos + 2
	case 3:
		cp = (cp&0x0F)<<12 | rune(p[pos+1]&0x3F)<<6 | rune(p[pos+2]&0x3F)
		return cp, pos + 3
	case 4:
		cp = (cp&0x07)<<18 | rune(p[pos+1]&0x3F)<<12 | rune(p[pos+2]&0x3F)<<6 | rune(p[pos+3]&0x3F)
		return cp, pos + 4
	default:
		// Lengths 1 and 0 both step one unit; a stray lead yields its
		// own value.
		return cp, pos + 1
	}
}

// PeekNext decodes the sequence at pos without computing an advance.
func PeekNext(p []byte, pos int) rune {
	cp, _ := DecodeNext(p, pos)
	return cp
}

// DecodePrior decodes the sequence that ends immediately before pos and
// returns its codepoint and the position of its lead. A continuation
// run with no lead walks off the front of p and panics.
func DecodePrior(p []byte, pos int) (rune, int) {
	prev := pos - 1
	for utfkit.IsTrail(p[prev]) {
		prev--
	}
	cp, _ := DecodeNext(p, prev)
	return cp, prev
}

// Advance moves pos forward by n sequences. n <= 0 returns pos
// unchanged.
func Advance(p []byte, pos, n int) int {
	for i := 0; i < n; i++ {
		_, pos = DecodeNext(p, pos)
	}
	return pos
}

// Distance counts the sequences in [first, last).
func Distance(p []byte, first, last int) int {
	count := 0
	for pos := first; pos < last; count++ {
		_, pos = DecodeNext(p, pos)
	}
	return count
}
