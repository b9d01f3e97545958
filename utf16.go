package utfkit

import "github.com/wippyai/utfkit/errors"

// UTF16To8 appends the 8-bit encoding of the 16-bit text in src to dst.
// Surrogate pairs combine into supplementary codepoints; a lead
// surrogate at the end of input, a lead not followed by a trail, and a
// lone trail surrogate each fail with the offending unit and its word
// offset, returning the output written so far.
func UTF16To8(dst []byte, src []uint16) ([]byte, error) {
	for i := 0; i < len(src); {
		unit := src[i]
		cp := rune(unit)
		switch {
		case IsLeadSurrogate(cp):
			if i+1 == len(src) {
				return dst, errors.InvalidUTF16(i, unit)
			}
			trail := src[i+1]
			if !IsTrailSurrogate(rune(trail)) {
				return dst, errors.InvalidUTF16(i+1, trail)
			}
			cp = (cp-LeadSurrogateMin)<<10 | (rune(trail) - TrailSurrogateMin)
			cp += 0x10000
			i += 2
		case IsTrailSurrogate(cp):
			return dst, errors.InvalidUTF16(i, unit)
		default:
			i++
		}
		dst = appendRune(dst, cp)
	}
	return dst, nil
}

// UTF8To16 appends the 16-bit encoding of the 8-bit text in src to dst.
// Codepoints above 0xFFFF split into surrogate pairs. A malformed
// sequence fails with its defect and the output written so far.
func UTF8To16(dst []uint16, src []byte) ([]uint16, error) {
	for pos := 0; pos < len(src); {
		cp, next, err := DecodeNext(src, pos)
		if err != nil {
			return dst, err
		}
		if cp > 0xFFFF {
			cp -= 0x10000
			dst = append(dst,
				uint16(LeadSurrogateMin+(cp>>10)),
				uint16(TrailSurrogateMin+(cp&0x3FF)))
		} else {
			dst = append(dst, uint16(cp))
		}
		pos = next
	}
	return dst, nil
}
