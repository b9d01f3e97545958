package utfkit

import "github.com/wippyai/utfkit/errors"

// AppendRune appends the minimal-length encoding of cp to dst and
// returns the extended slice. Surrogates and codepoints outside the
// codespace are rejected before anything is written, so dst is returned
// unmodified on failure.
func AppendRune(dst []byte, cp rune) ([]byte, error) {
	if !ValidCodePoint(cp) {
		return dst, errors.InvalidCodePoint(-1, cp)
	}
	return appendRune(dst, cp), nil
}

// appendRune encodes without validating; callers guarantee cp is a
// scalar value.
func appendRune(dst []byte, cp rune) []byte {
	switch {
	case cp < 0x80:
		return append(dst, byte(cp))
	case cp < 0x800:
		return append(dst,
			byte(cp>>6)|0xC0,
			byte(cp)&0x3F|0x80)
	case cp < 0x10000:
		return append(dst,
			byte(cp>>12)|0xE0,
			byte(cp>>6)&0x3F|0x80,
			byte(cp)&0x3F|0x80)
	default:
		return append(dst,
			byte(cp>>18)|0xF0,
			byte(cp>>12)&0x3F|0x80,
			byte(cp>>6)&0x3F|0x80,
			byte(cp)&0x3F|0x80)
	}
}
