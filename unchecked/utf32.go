package unchecked

// UTF32To8 appends the 8-bit encoding of the codepoints in src to dst.
// Every unit must be a scalar value.
func UTF32To8(dst []byte, src []rune) []byte {
	for _, cp := range src {
		dst = AppendRune(dst, cp)
	}
	return dst
}

// UTF8To32 appends the codepoints of the 8-bit text in src to dst.
func UTF8To32(dst []rune, src []byte) []rune {
	for pos := 0; pos < len(src); {
		var cp rune
		cp, pos = DecodeNext(src, pos)
		dst = append(dst, cp)
	}
	return dst
}
