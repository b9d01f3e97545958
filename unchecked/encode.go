package unchecked

// AppendRune appends the encoding of cp to dst and returns the extended
// slice. cp must be a scalar value; surrogates and out-of-codespace
// values produce unspecified bytes.
func AppendRune(dst []byte, cp rune) []byte {
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
