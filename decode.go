package utfkit

import "github.com/wippyai/utfkit/errors"

// DecodeNext decodes the sequence starting at pos and returns its
// codepoint together with the position of the following sequence. On
// failure the returned position equals pos and the error carries the
// defect kind, the offset of the sequence, and the offending value, so
// callers can resume, skip, or substitute without losing their place.
//
// Positions outside [0, len(p)] report an out-of-range defect; decoding
// at exactly len(p) reports truncated input.
func DecodeNext(p []byte, pos int) (rune, int, error) {
	if pos < 0 || pos > len(p) {
		return 0, pos, errors.OutOfRange(pos, len(p))
	}
	if pos == len(p) {
		return 0, pos, errors.NotEnoughRoom(pos)
	}

	lead := p[pos]
	length := SequenceLength(lead)
	if length == 0 {
		return 0, pos, errors.InvalidLead(pos, lead)
	}

	cp := rune(lead)
	switch length {
	case 2:
		cp &= 0x1F
	case 3:
		cp &= 0x0F
	case 4:
		cp &= 0x07
	}

	next := pos + 1
	for ; next < pos+length; next++ {
		if next == len(p) {
			return 0, pos, errors.NotEnoughRoom(pos)
		}
		b := p[next]
		if !IsTrail(b) {
			return 0, pos, errors.IncompleteSequence(pos, b)
		}
		cp = cp<<6 | rune(b&0x3F)
	}

	// Shape checks run on the decoded value: scalar legality first, then
	// minimality of the encoding.
	if !ValidCodePoint(cp) {
		return 0, pos, errors.InvalidCodePoint(pos, cp)
	}
	if length != EncodedLen(cp) {
		return 0, pos, errors.OverlongSequence(pos, cp, length)
	}
	return cp, next, nil
}

// PeekNext decodes the sequence at pos without computing an advance.
func PeekNext(p []byte, pos int) (rune, error) {
	cp, _, err := DecodeNext(p, pos)
	return cp, err
}

// DecodePrior decodes the sequence that ends immediately before pos and
// returns its codepoint together with the position of its lead byte.
// The lead is found by scanning backward over continuation bytes; when
// the input is malformed the returned lead may sit more than one
// sequence length before pos. pos at the start of the buffer reports
// truncated input; a continuation run reaching the start with no lead
// reports an invalid lead at offset 0.
func DecodePrior(p []byte, pos int) (rune, int, error) {
	if pos < 0 || pos > len(p) {
		return 0, pos, errors.OutOfRange(pos, len(p))
	}
	if pos == 0 {
		return 0, pos, errors.NotEnoughRoom(0)
	}

	prev := pos - 1
	for IsTrail(p[prev]) {
		if prev == 0 {
			return 0, pos, errors.InvalidLead(0, p[0])
		}
		prev--
	}

	// The units between prev and pos bound the decode, so a lead that
	// claims more room than the gap holds is caught here.
	cp, _, err := DecodeNext(p[:pos], prev)
	if err != nil {
		return 0, pos, err
	}
	return cp, prev, nil
}

// Advance moves pos forward by n sequences and returns the resulting
// position. On failure it returns the position reached before the
// failing step together with the defect, mirroring a partially advanced
// cursor. n <= 0 returns pos unchanged.
func Advance(p []byte, pos, n int) (int, error) {
	for i := 0; i < n; i++ {
		_, next, err := DecodeNext(p, pos)
		if err != nil {
			return pos, err
		}
		pos = next
	}
	return pos, nil
}

// Distance counts the sequences in [first, last). On failure it returns
// the count of sequences decoded before the defect.
func Distance(p []byte, first, last int) (int, error) {
	switch {
	case first < 0 || first > len(p):
		return 0, errors.OutOfRange(first, len(p))
	case last < first || last > len(p):
		return 0, errors.OutOfRange(last, len(p))
	}

	count := 0
	for pos := first; pos < last; count++ {
		_, next, err := DecodeNext(p[:last], pos)
		if err != nil {
			return count, err
		}
		pos = next
	}
	return count, nil
}
