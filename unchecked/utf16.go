package unchecked

import "github.com/wippyai/utfkit"

// UTF16To8 appends the 8-bit encoding of the 16-bit text in src to dst.
// Surrogate pairs must be complete; a lead surrogate at the end of
// input panics on the bounds check, and an unpaired unit produces
// unspecified bytes.
func UTF16To8(dst []byte, src []uint16) []byte {
	for i := 0; i < len(src); i++ {
		cp := rune(src[i])
		if utfkit.IsLeadSurrogate(cp) {
			i++
			trail := rune(src[i])
			cp = (cp-utfkit.LeadSurrogateMin)<<10 | (trail - utfkit.TrailSurrogateMin)
			cp += 0x10000
		}
		dst = AppendRune(dst, cp)
	}
	return dst
}

// UTF8To16 appends the 16-bit encoding of the 8-bit text in src to dst.
// Codepoints above 0xFFFF split into surrogate pairs.
func UTF8To16(dst []uint16, src []byte) []uint16 {
	for pos := 0; pos < len(src); {
		var cp rune
		cp, pos = DecodeNext(src, pos)
		if cp > 0xFFFF {
			cp -= 0x10000
			dst = append(dst,
				uint16(utfkit.LeadSurrogateMin+(cp>>10)),
				uint16(utfkit.TrailSurrogateMin+(cp&0x3FF)))
		} else {
			dst = append(dst, uint16(cp))
		}
	}
	return dst
}
