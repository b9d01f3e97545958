package utfkit

import (
	"go.uber.org/zap"

	"github.com/wippyai/utfkit/errors"
)

// ReplaceInvalid copies src to dst substituting U+FFFD for every
// malformed sequence. See ReplaceInvalidWith.
func ReplaceInvalid(dst, src []byte) ([]byte, error) {
	return ReplaceInvalidWith(dst, src, ReplacementChar)
}

// ReplaceInvalidWith copies src to dst substituting the encoding of
// replacement for every malformed sequence. Well-formed sequences pass
// through untouched. An invalid lead byte consumes exactly one marker
// per byte; an incomplete, overlong, or invalid-codepoint sequence
// consumes the lead and its continuation run under a single marker. A
// sequence truncated by the end of src is an error, returned together
// with the output written so far. The replacement itself must be a
// scalar value.
func ReplaceInvalidWith(dst, src []byte, replacement rune) ([]byte, error) {
	marker, err := AppendRune(nil, replacement)
	if err != nil {
		return dst, err
	}

	replaced := 0
	for pos := 0; pos < len(src); {
		_, next, derr := DecodeNext(src, pos)
		if derr == nil {
			dst = append(dst, src[pos:next]...)
			pos = next
			continue
		}

		switch errors.KindOf(derr) {
		case errors.KindNotEnoughRoom:
			return dst, derr
		case errors.KindInvalidLead:
			debugf("replacing invalid lead at offset %d", pos)
			dst = append(dst, marker...)
			replaced++
			pos++
		default:
			// One marker covers the lead and its continuation run.
			debugf("replacing malformed sequence at offset %d", pos)
			dst = append(dst, marker...)
			replaced++
			for pos++; pos < len(src) && IsTrail(src[pos]); pos++ {
			}
		}
	}

	if replaced > 0 {
		Logger().Debug("replaced malformed sequences",
			zap.Int("count", replaced),
			zap.Int("input_bytes", len(src)))
	}
	return dst, nil
}

// ReplaceInvalidInString is ReplaceInvalidWith over the bytes of s with
// the U+FFFD marker.
func ReplaceInvalidInString(s string) (string, error) {
	buf := getScratch()
	defer putScratch(buf)

	out, err := ReplaceInvalidWith((*buf)[:0], byteView(s), ReplacementChar)
	*buf = out
	return string(out), err
}
