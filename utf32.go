package utfkit

import "github.com/wippyai/utfkit/errors"

// UTF32To8 appends the 8-bit encoding of the codepoints in src to dst.
// A surrogate or out-of-codespace unit fails with its codepoint offset
// and the output written so far.
func UTF32To8(dst []byte, src []rune) ([]byte, error) {
	for i, cp := range src {
		if !ValidCodePoint(cp) {
			return dst, errors.InvalidCodePoint(i, cp)
		}
		dst = appendRune(dst, cp)
	}
	return dst, nil
}

// UTF8To32 appends the codepoints of the 8-bit text in src to dst. A
// malformed sequence fails with its defect and the output written so
// far.
func UTF8To32(dst []rune, src []byte) ([]rune, error) {
	for pos := 0; pos < len(src); {
		cp, next, err := DecodeNext(src, pos)
		if err != nil {
			return dst, err
		}
		dst = append(dst, cp)
		pos = next
	}
	return dst, nil
}
